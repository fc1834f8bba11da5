package handlers

import (
	"net/http"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/response"
)

type HealthStatus struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Redis   string `json:"redis"`
}

// Health reports whether storage and Redis are reachable
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.Envelope{data=HealthStatus}
// @Failure 503 {object} response.Envelope{data=HealthStatus}
// @Router /health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{Status: "ok", Storage: "ok", Redis: "disabled"}
	healthy := true

	if err := h.storage.Health(); err != nil {
		status.Storage = err.Error()
		healthy = false
	}
	if h.redis != nil {
		status.Redis = "ok"
		if err := h.redis.Health(); err != nil {
			status.Redis = err.Error()
			healthy = false
		}
	}

	if !healthy {
		status.Status = "unhealthy"
		response.JSON(w, http.StatusServiceUnavailable, response.Envelope{
			Code: errors.CodeInternal,
			Msg:  "unhealthy",
			Data: status,
		})
		return
	}
	response.OK(w, status)
}
