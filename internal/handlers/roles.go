package handlers

import (
	"net/http"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/response"
	"game-admin/internal/common/timefmt"
	"game-admin/internal/rbac"
	"game-admin/internal/storage"
)

// AdminRole is the built-in role holding every permission
const AdminRole = "admin"

type RoleView struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func newRoleView(role *storage.Role) RoleView {
	perms := role.Permissions
	if perms == nil {
		perms = []string{}
	}
	return RoleView{
		Name:        role.Name,
		Description: role.Description,
		Permissions: perms,
		CreatedAt:   timefmt.Format(role.CreatedAt),
		UpdatedAt:   timefmt.Format(role.UpdatedAt),
	}
}

type AddRoleParams struct {
	Name        string   `param:"name" json:"name" validate:"required,role_name"`
	Description string   `param:"description" json:"description" validate:"max=256"`
	Permissions []string `param:"permissions" json:"permissions" validate:"required,min=1"`
}

type UpdateRoleParams struct {
	Name        string    `param:"name" json:"name" validate:"required,role_name"`
	Description *string   `param:"description" json:"description,omitempty" validate:"omitempty,max=256"`
	Permissions *[]string `param:"permissions" json:"permissions,omitempty" validate:"omitempty,min=1"`
}

type RoleNameParams struct {
	Name string `param:"name" json:"name" validate:"required,role_name"`
}

// GetRoleList lists all roles
// @Summary List roles
// @Tags roles
// @Accept json
// @Produce json
// @Param request body signedRequest true "token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=[]RoleView}
// @Failure 403 {object} response.Envelope "4003 permission_denied"
// @Router /rpc/getRoleList [post]
func (h *Handlers) GetRoleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.storage.ListRoles(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	views := make([]RoleView, len(roles))
	for i, role := range roles {
		views[i] = newRoleView(role)
	}
	response.OK(w, views)
}

// GetPermissionList lists the permissions a role can be granted
// @Summary List permissions
// @Tags roles
// @Accept json
// @Produce json
// @Param request body signedRequest true "token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=[]rbac.Permission}
// @Router /rpc/getPermissionList [post]
func (h *Handlers) GetPermissionList(w http.ResponseWriter, r *http.Request) {
	response.OK(w, rbac.Catalog)
}

// AddRole creates a role
// @Summary Add role
// @Description permissions is a comma separated list such as "scores:read,mail:*"
// @Tags roles
// @Accept json
// @Produce json
// @Param request body AddRoleParams true "Role plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=RoleView}
// @Failure 400 {object} response.Envelope "4001 invalid_param, invalid_permission"
// @Failure 409 {object} response.Envelope "4009 role exists"
// @Router /rpc/addRole [post]
func (h *Handlers) AddRole(w http.ResponseWriter, r *http.Request) {
	var p AddRoleParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := rbac.ValidatePermissions(p.Permissions); err != nil {
		response.Error(w, r, err)
		return
	}

	role := &storage.Role{Name: p.Name, Description: p.Description, Permissions: p.Permissions}
	if err := h.storage.CreateRole(r.Context(), role); err != nil {
		response.Error(w, r, err)
		return
	}

	h.reloadGate(r)
	response.OK(w, newRoleView(role))
}

// UpdateRole changes a role's description and/or permissions. The built-in
// admin role cannot be changed.
// @Summary Update role
// @Tags roles
// @Accept json
// @Produce json
// @Param request body UpdateRoleParams true "Changes plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=RoleView}
// @Failure 400 {object} response.Envelope "4001 builtin_role, invalid_permission"
// @Failure 404 {object} response.Envelope "4004 role not found"
// @Router /rpc/updateRole [post]
func (h *Handlers) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var p UpdateRoleParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}
	if p.Name == AdminRole {
		response.Error(w, r, builtinRoleError())
		return
	}

	role, err := h.storage.GetRole(r.Context(), p.Name)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if p.Description != nil {
		role.Description = *p.Description
	}
	if p.Permissions != nil {
		if err := rbac.ValidatePermissions(*p.Permissions); err != nil {
			response.Error(w, r, err)
			return
		}
		role.Permissions = *p.Permissions
	}

	if err := h.storage.UpdateRole(r.Context(), role); err != nil {
		response.Error(w, r, err)
		return
	}

	h.reloadGate(r)
	response.OK(w, newRoleView(role))
}

// DeleteRole removes a role. Users keep the name in their role list but it
// no longer grants anything.
// @Summary Delete role
// @Tags roles
// @Accept json
// @Produce json
// @Param request body RoleNameParams true "name plus token, sign, timestamp"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "4001 builtin_role"
// @Failure 404 {object} response.Envelope "4004 role not found"
// @Router /rpc/deleteRole [post]
func (h *Handlers) DeleteRole(w http.ResponseWriter, r *http.Request) {
	var p RoleNameParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}
	if p.Name == AdminRole {
		response.Error(w, r, builtinRoleError())
		return
	}

	if err := h.storage.DeleteRole(r.Context(), p.Name); err != nil {
		response.Error(w, r, err)
		return
	}

	h.reloadGate(r)
	response.OK(w, nil)
}

func builtinRoleError() error {
	return errors.ValidationError("the admin role cannot be changed").WithReason("builtin_role")
}

// reloadGate refreshes the permission gate after a role change. A failure
// leaves the previous policy in force and is only logged.
func (h *Handlers) reloadGate(r *http.Request) {
	if err := h.gate.Reload(r.Context()); err != nil {
		logging.WithContext(r.Context()).Error("Failed to reload permission policy", err)
	}
}
