package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/service"
	"github.com/aussiebroadwan/scholarsync/pkg/httpx"
	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
	"github.com/aussiebroadwan/scholarsync/pkg/slogx"
)

// errorStatus maps a service error to its HTTP status and client message.
// Anything unrecognised is a 500 with a generic message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrPasswordTooLong):
		return http.StatusBadRequest, scholarsdk.MsgPasswordTooLong
	case errors.Is(err, service.ErrBadRequest):
		return http.StatusBadRequest, scholarsdk.MsgMissingFields
	case errors.Is(err, service.ErrUserExists):
		return http.StatusConflict, scholarsdk.MsgUserExists
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, scholarsdk.MsgUserNotFound
	case errors.Is(err, service.ErrAlreadyVerified):
		return http.StatusBadRequest, scholarsdk.MsgAlreadyVerified
	case errors.Is(err, service.ErrInvalidOTP):
		return http.StatusBadRequest, scholarsdk.MsgInvalidOTP
	case errors.Is(err, service.ErrOTPExpired):
		return http.StatusBadRequest, scholarsdk.MsgOTPExpired
	case errors.Is(err, service.ErrNotVerified):
		return http.StatusForbidden, scholarsdk.MsgNotVerified
	case errors.Is(err, service.ErrIncorrectPassword):
		return http.StatusUnauthorized, scholarsdk.MsgWrongPassword
	default:
		return http.StatusInternalServerError, scholarsdk.MsgServerError
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := errorStatus(err)
	if code >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	}
	httpx.WriteError(w, code, msg)
}

func writeInvalidBody(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Debug("invalid request body", slog.Any("error", err))
	httpx.WriteError(w, http.StatusBadRequest, scholarsdk.MsgInvalidBody)
}
