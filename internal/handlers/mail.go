package handlers

import (
	"net/http"
	"time"

	"game-admin/internal/common/pagination"
	"game-admin/internal/common/response"
	"game-admin/internal/mail"
)

type SendMailParams struct {
	AppID       string `param:"appId" json:"appId" validate:"required,ident,max=64"`
	PlayerID    string `param:"playerId" json:"playerId" validate:"required,ident,max=128"`
	Title       string `param:"title" json:"title" validate:"required,max=128"`
	Content     string `param:"content" json:"content" validate:"max=4096"`
	Attachments string `param:"attachments" json:"attachments,omitempty" validate:"max=4096"`
	// ExpireAt is "YYYY-MM-DD HH:mm:ss" or a lifetime such as "7d"
	ExpireAt string `param:"expireAt" json:"expireAt,omitempty"`
}

type PlayerParams struct {
	AppID    string `param:"appId" json:"appId" validate:"required,ident,max=64"`
	PlayerID string `param:"playerId" json:"playerId" validate:"required,ident,max=128"`
}

type MailIDParams struct {
	MailID string `param:"mailId" json:"mailId" validate:"required,uuid"`
}

// SendMail delivers a mail to a player
// @Summary Send mail
// @Tags mail
// @Accept json
// @Produce json
// @Param request body SendMailParams true "Mail plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=mail.View}
// @Failure 400 {object} response.Envelope "4001 invalid_param, invalid_expire_at"
// @Router /rpc/sendMail [post]
func (h *Handlers) SendMail(w http.ResponseWriter, r *http.Request) {
	var p SendMailParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	expireAt, err := mail.ParseExpiry(p.ExpireAt, time.Now())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	view, err := h.mail.Send(r.Context(), mail.Message{
		AppID:       p.AppID,
		PlayerID:    p.PlayerID,
		Title:       p.Title,
		Content:     p.Content,
		Attachments: p.Attachments,
		ExpireAt:    expireAt,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, view)
}

// GetMailList pages through a player's unexpired mail, newest first
// @Summary List mail
// @Tags mail
// @Accept json
// @Produce json
// @Param request body PlayerParams true "appId, playerId, page, pageSize plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=pagination.Response[mail.View]}
// @Router /rpc/getMailList [post]
func (h *Handlers) GetMailList(w http.ResponseWriter, r *http.Request) {
	var p PlayerParams
	req, err := bind(r, &p)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	page := pagination.ParseParams(req)

	views, total, err := h.mail.List(r.Context(), p.AppID, p.PlayerID, page)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, pagination.NewResponse(views, page, total))
}

// ReadMail marks a mail as read
// @Summary Read mail
// @Tags mail
// @Accept json
// @Produce json
// @Param request body MailIDParams true "mailId plus token, sign, timestamp"
// @Success 200 {object} response.Envelope{data=mail.View}
// @Failure 404 {object} response.Envelope "4004 mail not found"
// @Router /rpc/readMail [post]
func (h *Handlers) ReadMail(w http.ResponseWriter, r *http.Request) {
	var p MailIDParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	view, err := h.mail.Read(r.Context(), p.MailID)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, view)
}

// DeleteMail removes a mail
// @Summary Delete mail
// @Tags mail
// @Accept json
// @Produce json
// @Param request body MailIDParams true "mailId plus token, sign, timestamp"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "4004 mail not found"
// @Router /rpc/deleteMail [post]
func (h *Handlers) DeleteMail(w http.ResponseWriter, r *http.Request) {
	var p MailIDParams
	if _, err := bind(r, &p); err != nil {
		response.Error(w, r, err)
		return
	}

	if err := h.mail.Delete(r.Context(), p.MailID); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, nil)
}
