package http

import (
	"net/http"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/service"
	"github.com/aussiebroadwan/scholarsync/pkg/httpx"
	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignup registers a user and emails a verification code.
//
//	@Summary		Sign up
//	@Description	Creates an unverified user and emails a six digit code that expires after ten minutes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scholarsdk.SignupRequest	true	"Name, email and password"
//	@Success		200		{object}	scholarsdk.MessageResponse	"OTP sent"
//	@Failure		400		{object}	scholarsdk.ErrorResponse	"Missing fields or invalid body"
//	@Failure		409		{object}	scholarsdk.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	scholarsdk.ErrorResponse	"Store or mail failure"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w, r, err)
		return
	}

	if err := h.AuthService.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scholarsdk.MessageResponse{
		Success: true,
		Message: scholarsdk.MsgOTPSent,
	})
}

// HandleVerify checks the emailed code and marks the user verified.
//
//	@Summary		Verify email
//	@Description	A wrong code is reported as invalid even after it has expired.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scholarsdk.VerifyRequest	true	"Email and code"
//	@Success		200		{object}	scholarsdk.MessageResponse	"User verified"
//	@Failure		400		{object}	scholarsdk.ErrorResponse	"Already verified, invalid or expired code"
//	@Failure		404		{object}	scholarsdk.ErrorResponse	"Unknown email"
//	@Failure		500		{object}	scholarsdk.ErrorResponse	"Server error"
//	@Router			/api/auth/verify [post].
func (h *AuthHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.VerifyRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w, r, err)
		return
	}

	if err := h.AuthService.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scholarsdk.MessageResponse{
		Success: true,
		Message: scholarsdk.MsgUserVerified,
	})
}

// HandleLogin issues a bearer token to a verified user.
//
//	@Summary		Log in
//	@Description	Returns an HS256 signed token carrying userId and email, valid for JWT_EXPIRES_IN.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		scholarsdk.LoginRequest		true	"Email and password"
//	@Success		200		{object}	scholarsdk.LoginResponse	"Token and profile"
//	@Failure		400		{object}	scholarsdk.ErrorResponse	"Invalid body"
//	@Failure		401		{object}	scholarsdk.ErrorResponse	"Incorrect password"
//	@Failure		403		{object}	scholarsdk.ErrorResponse	"User not verified"
//	@Failure		404		{object}	scholarsdk.ErrorResponse	"Unknown email"
//	@Failure		500		{object}	scholarsdk.ErrorResponse	"Server error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req scholarsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidBody(w, r, err)
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scholarsdk.LoginResponse{
		Success: true,
		Message: scholarsdk.MsgLoginSuccessful,
		Token:   res.Token,
		User: scholarsdk.UserProfile{
			ID:    res.User.ID,
			Email: res.User.Email,
			Name:  res.User.Name,
		},
	})
}
