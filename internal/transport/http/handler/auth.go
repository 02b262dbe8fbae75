package handler

import (
	"encoding/json"
	"net/http"

	"github.com/matchday-api/internal/application/auth"
	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/validate"
)

// AuthHandler handles registration and the two-step OTP sign-in.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Register(r.Context(), req)
	if err != nil {
		httpError(w, err, "Failed to create account.")
		return
	}
	writeJSON(w, http.StatusCreated, RegisteredEnvelope{ID: u.ID, Email: u.Email, Name: u.Name})
}

func (h *AuthHandler) LoginOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	challenge, err := h.svc.StartLoginOTP(r.Context(), req.Email, req.Password)
	if err != nil {
		httpError(w, err, "Failed to process login request.")
		return
	}
	writeJSON(w, http.StatusOK, LoginChallengeEnvelope{
		Message:     "Please verify OTP to complete sign in.",
		RequiresOTP: true,
		Email:       challenge.Email,
		Code:        challenge.Code,
		UserName:    challenge.UserName,
	})
}

func (h *AuthHandler) VerifyLoginOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "Email and code are required.")
		return
	}

	if err := h.svc.VerifyLoginOTP(r.Context(), req.Email, req.Code); err != nil {
		httpError(w, err, "Failed to verify OTP code.")
		return
	}
	writeJSON(w, http.StatusOK, VerifiedEnvelope{
		Message:  "OTP verified successfully. You can now sign in.",
		Verified: true,
		Email:    auth.NormalizeEmail(req.Email),
	})
}
