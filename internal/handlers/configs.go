package handlers

import (
	"net/http"

	"game-admin/internal/common/response"
	"game-admin/internal/common/timefmt"
	"game-admin/internal/storage"
)

type AppConfigView struct {
	AppID     string `json:"appId"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}

func newAppConfigView(c *storage.AppConfig) AppConfigView {
	return AppConfigView{
		AppID:     c.AppID,
		Key:       c.Key,
		Value:     c.Value,
		UpdatedAt: timefmt.Format(c.UpdatedAt),
	}
}

type GetAppConfigParams struct {
	AppID string  `param:"appId" json:"appId" validate:"required,ident,max=64"`
	Key   *string `param:"key" json:"key,omitempty" validate:"omitempty,ident,max=128"`
}

type SetAppConfigParams struct {
	AppID string `param:"appId" json:"appId" validate:"required,ident,max=64"`
	Key   string `param:"key" json:"key" validate:"required,ident,max=128"`
	Value string `param:"value" json:"value" validate:"max=65535"`
}

type AppConfigKeyParams struct {
	AppID string `param:"appId" json:"appId" validate:"required,ident,max=64"`
	Key   string `param:"key" json:"key" validate:"required,ident,max=128"`
}

// GetAppConfig returns one key, or every key of the application when key is
// omitted
// @Summary Get app config
// @Tags configs
// @Accept json
// @Produce json
// @Param request body GetAppConfigParams true "appId, key plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=[]AppConfigView}
// @Failure 404 {object} response.Envelope "4004 app config not found"
// @Router /rpc/getAppConfig [post]
func (h *Handlers) GetAppConfig(w http.ResponseWriter, r *http.Request) {
	var p GetAppConfigParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	if p.Key != nil {
		cfg, err := h.storage.GetAppConfig(r.Context(), p.AppID, *p.Key)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		response.OK(w, newAppConfigView(cfg))
		return
	}

	cfgs, err := h.storage.GetAppConfigs(r.Context(), p.AppID)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	views := make([]AppConfigView, len(cfgs))
	for i, c := range cfgs {
		views[i] = newAppConfigView(c)
	}
	response.OK(w, views)
}

// SetAppConfig creates or replaces a key
// @Summary Set app config
// @Tags configs
// @Accept json
// @Produce json
// @Param request body SetAppConfigParams true "appId, key, value plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=AppConfigView}
// @Router /rpc/setAppConfig [post]
func (h *Handlers) SetAppConfig(w http.ResponseWriter, r *http.Request) {
	var p SetAppConfigParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	cfg := &storage.AppConfig{AppID: p.AppID, Key: p.Key, Value: p.Value}
	if err := h.storage.SetAppConfig(r.Context(), cfg); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, newAppConfigView(cfg))
}

// DeleteAppConfig removes a key
// @Summary Delete app config
// @Tags configs
// @Accept json
// @Produce json
// @Param request body AppConfigKeyParams true "appId, key plus token, sign, timestamp"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "4004 app config not found"
// @Router /rpc/deleteAppConfig [post]
func (h *Handlers) DeleteAppConfig(w http.ResponseWriter, r *http.Request) {
	var p AppConfigKeyParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.storage.DeleteAppConfig(r.Context(), p.AppID, p.Key); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, nil)
}
