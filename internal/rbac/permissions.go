package rbac

import (
	"strings"

	"game-admin/internal/common/errors"
)

// Wildcard grants every permission
const Wildcard = "*"

// Permission names a resource and an action, written "resource:action"
type Permission struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

const (
	UsersRead    = "users:read"
	UsersWrite   = "users:write"
	RolesRead    = "roles:read"
	RolesWrite   = "roles:write"
	ConfigsRead  = "configs:read"
	ConfigsWrite = "configs:write"
	MailRead     = "mail:read"
	MailWrite    = "mail:write"
	ScoresRead   = "scores:read"
	ScoresWrite  = "scores:write"
)

// Catalog lists every permission that can be granted to a role
var Catalog = []Permission{
	{Wildcard, "All permissions"},
	{UsersRead, "List administrator accounts"},
	{UsersWrite, "Create, update and delete administrator accounts"},
	{RolesRead, "List roles and permissions"},
	{RolesWrite, "Create, update and delete roles"},
	{ConfigsRead, "Read application configuration"},
	{ConfigsWrite, "Change application configuration"},
	{MailRead, "List player mail"},
	{MailWrite, "Send, read and delete player mail"},
	{ScoresRead, "View leaderboards and ranks"},
	{ScoresWrite, "Submit scores and reset leaderboards"},
}

var known = func() map[string]bool {
	m := make(map[string]bool, len(Catalog))
	for _, p := range Catalog {
		m[p.Name] = true
	}
	return m
}()

// Split returns the resource and action of a permission. The wildcard and
// "resource:*" expand to "*" on the missing side.
func Split(perm string) (resource, action string) {
	if perm == Wildcard {
		return Wildcard, Wildcard
	}
	resource, action, found := strings.Cut(perm, ":")
	if !found {
		return resource, Wildcard
	}
	return resource, action
}

// ValidatePermissions rejects names outside the catalog. "resource:*" is
// accepted for any resource in the catalog.
func ValidatePermissions(perms []string) error {
	for _, p := range perms {
		if known[p] {
			continue
		}
		resource, action := Split(p)
		if action == Wildcard && known[resource+":read"] {
			continue
		}
		return errors.ValidationError("unknown permission: " + p).WithReason("invalid_permission")
	}
	return nil
}
