package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"game-admin/internal/auth"
	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/pagination"
	"game-admin/internal/common/response"
	"game-admin/internal/common/timefmt"
	"game-admin/internal/storage"
)

type UserView struct {
	UserID    string   `json:"userId"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

func newUserView(u *storage.User) UserView {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserView{
		UserID:    u.ID,
		Username:  u.Username,
		Roles:     roles,
		CreatedAt: timefmt.Format(u.CreatedAt),
		UpdatedAt: timefmt.Format(u.UpdatedAt),
	}
}

type AddUserParams struct {
	Username string   `param:"username" json:"username" validate:"required,username"`
	Password string   `param:"password" json:"password" validate:"required"`
	Roles    []string `param:"roles" json:"roles" validate:"dive,role_name"`
}

type UpdateUserParams struct {
	UserID   string    `param:"userId" json:"userId" validate:"required,uuid"`
	Password *string   `param:"password" json:"password,omitempty"`
	Roles    *[]string `param:"roles" json:"roles,omitempty" validate:"omitempty,dive,role_name"`
}

type UserIDParams struct {
	UserID string `param:"userId" json:"userId" validate:"required,uuid"`
}

// GetUserList pages through administrator accounts
// @Summary List users
// @Tags users
// @Accept json
// @Produce json
// @Param request body pagination.Params true "page, pageSize plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=pagination.Response[UserView]}
// @Failure 403 {object} response.Envelope "4003 permission_denied"
// @Router /rpc/getUserList [post]
func (h *Handlers) GetUserList(w http.ResponseWriter, r *http.Request) {
	req, err := bind(r, nil)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	page := pagination.ParseParams(req)

	users, total, err := h.storage.ListUsers(r.Context(), page.Limit, page.Offset)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = newUserView(u)
	}
	response.OK(w, pagination.NewResponse(views, page, total))
}

// AddUser creates an administrator account
// @Summary Add user
// @Description roles is a comma separated list of existing role names
// @Tags users
// @Accept json
// @Produce json
// @Param request body AddUserParams true "User plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=UserView}
// @Failure 400 {object} response.Envelope "4001 invalid_param, weak_password, unknown_role"
// @Failure 409 {object} response.Envelope "4009 username taken"
// @Router /rpc/addUser [post]
func (h *Handlers) AddUser(w http.ResponseWriter, r *http.Request) {
	var p AddUserParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := auth.ValidatePassword(p.Password); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.checkRoles(r, p.Roles); err != nil {
		response.Error(w, r, err)
		return
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	user := &storage.User{
		ID:           uuid.NewString(),
		Username:     p.Username,
		PasswordHash: hash,
		Roles:        p.Roles,
	}
	if err := h.storage.CreateUser(r.Context(), user); err != nil {
		response.Error(w, r, err)
		return
	}

	logging.WithContext(r.Context()).Info("User created",
		logging.String("new_user", user.Username),
		logging.Any("roles", user.Roles))
	response.OK(w, newUserView(user))
}

// UpdateUser changes a user's password and/or roles
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateUserParams true "Changes plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=UserView}
// @Failure 404 {object} response.Envelope "4004 user not found"
// @Router /rpc/updateUser [post]
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var p UpdateUserParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	user, err := h.storage.GetUser(r.Context(), p.UserID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if p.Password != nil {
		if err := auth.ValidatePassword(*p.Password); err != nil {
			response.Error(w, r, err)
			return
		}
		if user.PasswordHash, err = auth.HashPassword(*p.Password); err != nil {
			response.Error(w, r, err)
			return
		}
	}

	if p.Roles != nil {
		if err := h.checkRoles(r, *p.Roles); err != nil {
			response.Error(w, r, err)
			return
		}
		user.Roles = *p.Roles
	}

	if err := h.storage.UpdateUser(r.Context(), user); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, newUserView(user))
}

// DeleteUser removes an administrator account. Callers cannot delete
// themselves.
// @Summary Delete user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserIDParams true "userId plus token, sign, timestamp"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "4001 cannot_delete_self"
// @Failure 404 {object} response.Envelope "4004 user not found"
// @Router /rpc/deleteUser [post]
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var p UserIDParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	if s, err := session(r); err == nil && s.UserID == p.UserID {
		response.Error(w, r, errors.ValidationError("you cannot delete your own account").WithReason("cannot_delete_self"))
		return
	}

	if err := h.storage.DeleteUser(r.Context(), p.UserID); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, nil)
}

func (h *Handlers) checkRoles(r *http.Request, roles []string) error {
	for _, name := range roles {
		if _, err := h.storage.GetRole(r.Context(), name); err != nil {
			if errors.IsType(err, errors.ErrTypeNotFound) {
				return errors.ValidationError("unknown role: " + name).WithReason("unknown_role")
			}
			return err
		}
	}
	return nil
}
