package handlers

import (
	"net/http"

	"game-admin/internal/common/pagination"
	"game-admin/internal/common/response"
)

type SubmitScoreParams struct {
	AppID    string `param:"appId" json:"appId" validate:"required,ident,max=64"`
	PlayerID string `param:"playerId" json:"playerId" validate:"required,ident,max=128"`
	Score    int64  `param:"score" json:"score" validate:"min=0,max=9007199254740991"`
	Extra    string `param:"extra" json:"extra,omitempty" validate:"max=1024"`
}

type AppIDParams struct {
	AppID string `param:"appId" json:"appId" validate:"required,ident,max=64"`
}

type ResetResult struct {
	Removed int64 `json:"removed"`
}

// SubmitScore records a score; only a new best replaces the stored one
// @Summary Submit score
// @Tags scores
// @Accept json
// @Produce json
// @Param request body SubmitScoreParams true "Score plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=leaderboard.SubmitResult}
// @Failure 403 {object} response.Envelope "4003 permission_denied"
// @Router /rpc/submitScore [post]
func (h *Handlers) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var p SubmitScoreParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	result, err := h.leaderboard.Submit(r.Context(), p.AppID, p.PlayerID, p.Score, p.Extra)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, result)
}

// GetLeaderboard returns one page of ranked players
// @Summary Leaderboard page
// @Tags scores
// @Accept json
// @Produce json
// @Param request body AppIDParams true "appId, page, pageSize plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=pagination.Response[leaderboard.Entry]}
// @Router /rpc/getLeaderboard [post]
func (h *Handlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var p AppIDParams
	req, err := bind(r, &p)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	page := pagination.ParseParams(req)

	entries, total, err := h.leaderboard.Top(r.Context(), p.AppID, page)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, pagination.NewResponse(entries, page, total))
}

// GetPlayerRank returns a player's rank and best score
// @Summary Player rank
// @Tags scores
// @Accept json
// @Produce json
// @Param request body PlayerParams true "appId, playerId plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=leaderboard.Entry}
// @Failure 404 {object} response.Envelope "4004 score not found"
// @Router /rpc/getPlayerRank [post]
func (h *Handlers) GetPlayerRank(w http.ResponseWriter, r *http.Request) {
	var p PlayerParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	entry, err := h.leaderboard.Rank(r.Context(), p.AppID, p.PlayerID)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, entry)
}

// ResetLeaderboard clears every score of an application
// @Summary Reset leaderboard
// @Tags scores
// @Accept json
// @Produce json
// @Param request body AppIDParams true "appId plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=ResetResult}
// @Router /rpc/resetLeaderboard [post]
func (h *Handlers) ResetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var p AppIDParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	removed, err := h.leaderboard.Reset(r.Context(), p.AppID)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, ResetResult{Removed: removed})
}
