// Package response writes the {code,msg,data} envelope returned by every RPC
// function.
package response

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
)

// Envelope is the body of every RPC response
type Envelope struct {
	Code   int         `json:"code"`
	Msg    string      `json:"msg"`
	Reason string      `json:"reason,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// OK writes a success envelope
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Code: errors.CodeOK, Msg: "ok", Data: data})
}

// Error writes the envelope for err. Internal errors are logged and their
// message is not exposed.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	env := Envelope{
		Code:   errors.APICode(err),
		Msg:    err.Error(),
		Reason: errors.Reason(err),
	}

	if env.Code == errors.CodeInternal {
		logging.WithContext(r.Context()).Error("Request failed", err,
			logging.String("path", r.URL.Path),
		)
		env.Msg = "internal error"
	} else if appErr, ok := asAppError(err); ok {
		env.Msg = appErr.Message
	}

	write(w, errors.HTTPStatus(err), env)
}

func asAppError(err error) (*errors.AppError, bool) {
	var appErr *errors.AppError
	ok := stderrors.As(err, &appErr)
	return appErr, ok
}

// JSON writes env with an explicit HTTP status
func JSON(w http.ResponseWriter, status int, env Envelope) {
	write(w, status, env)
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}
