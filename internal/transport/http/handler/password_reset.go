package handler

import (
	"encoding/json"
	"net/http"

	"github.com/matchday-api/internal/application/auth"
	"github.com/matchday-api/internal/domain"
)

// The forgot-password flow always answers with this message so the
// response cannot be used to probe which emails have accounts.
const resetSentMessage = "If an account with that email exists, a password reset link has been sent."

// PasswordResetHandler handles the forgot/reset password flow.
type PasswordResetHandler struct {
	svc auth.Service
}

func NewPasswordResetHandler(svc auth.Service) *PasswordResetHandler {
	return &PasswordResetHandler{svc: svc}
}

func (h *PasswordResetHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	var req domain.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required.")
		return
	}

	issue, err := h.svc.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		httpError(w, err, "Failed to process password reset request.")
		return
	}
	envelope := ResetIssuedEnvelope{Message: resetSentMessage}
	if issue != nil {
		envelope.Token = issue.Token
		envelope.UserName = issue.UserName
	}
	writeJSON(w, http.StatusOK, envelope)
}

func (h *PasswordResetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req domain.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Token and new password are required.")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		httpError(w, err, "Failed to reset password.")
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{
		Message: "Password has been reset successfully. You can now log in with your new password.",
	})
}
