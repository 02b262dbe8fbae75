package handler

import (
	"encoding/json"
	"net/http"

	"github.com/matchday-api/internal/application/auth"
	"github.com/matchday-api/internal/domain"
)

// VerificationHandler handles the standalone email verification flow.
type VerificationHandler struct {
	svc auth.Service
	// echoCode controls whether the generated code is included in the
	// send-verification response. Enabled outside production only.
	echoCode bool
}

func NewVerificationHandler(svc auth.Service, echoCode bool) *VerificationHandler {
	return &VerificationHandler{svc: svc, echoCode: echoCode}
}

func (h *VerificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required.")
		return
	}

	code, err := h.svc.SendVerification(r.Context(), req.Email)
	if err != nil {
		httpError(w, err, "Failed to send verification code.")
		return
	}
	envelope := VerificationSentEnvelope{Message: "Verification code sent to your email."}
	if h.echoCode {
		envelope.Code = code
	}
	writeJSON(w, http.StatusOK, envelope)
}

func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "Email and code are required.")
		return
	}

	if err := h.svc.VerifyCode(r.Context(), req.Email, req.Code); err != nil {
		httpError(w, err, "Failed to verify code.")
		return
	}
	writeJSON(w, http.StatusOK, VerifiedEnvelope{
		Message:  "Code verified successfully",
		Verified: true,
	})
}
