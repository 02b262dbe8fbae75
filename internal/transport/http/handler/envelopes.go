package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/matchday-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper; the UI reads the
// message field for both success notes and error toasts.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// RegisteredEnvelope is the 201 register response.
type RegisteredEnvelope struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// LoginChallengeEnvelope asks the client to complete the OTP step.
// The code is included so the browser-side email sender can deliver it.
type LoginChallengeEnvelope struct {
	Message     string `json:"message"`
	RequiresOTP bool   `json:"requiresOtp"`
	Email       string `json:"email"`
	Code        string `json:"code"`
	UserName    string `json:"userName,omitempty"`
}

// VerifiedEnvelope confirms a consumed verification code.
type VerifiedEnvelope struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
	Email    string `json:"email,omitempty"`
}

// ResetIssuedEnvelope is the forgot-password response. Token and
// userName are present only when the account exists; the message never
// varies, so the response body is the only difference.
type ResetIssuedEnvelope struct {
	Message  string `json:"message"`
	Token    string `json:"token,omitempty"`
	UserName string `json:"userName,omitempty"`
}

// VerificationSentEnvelope is the send-verification response; the code
// is echoed only outside production.
type VerificationSentEnvelope struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// OrderPlacedEnvelope is the checkout response.
type OrderPlacedEnvelope struct {
	OK             bool   `json:"ok"`
	OrderID        string `json:"orderId"`
	Source         string `json:"source"`
	Message        string `json:"message"`
	AdminReviewURL string `json:"adminReviewUrl"`
	SheetURL       string `json:"sheetUrl,omitempty"`
}

// OrderListEnvelope is the admin order listing.
type OrderListEnvelope struct {
	Orders   []domain.StoredOrder `json:"orders"`
	Source   string               `json:"source"`
	SheetURL string               `json:"sheetUrl,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Message: msg})
}

// httpError maps a service error onto the status taxonomy. Anything not
// wrapping a sentinel is a backend failure: logged server-side, and the
// caller gets only the generic internalMsg.
func httpError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, userMessage(err))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, userMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, userMessage(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, userMessage(err))
	default:
		slog.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}

// userMessage strips the wrapped sentinel suffix so the client sees
// "invalid or expired reset token" rather than "...: bad request".
func userMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrBadRequest, domain.ErrUnauthorized, domain.ErrNotFound, domain.ErrConflict} {
		msg = strings.TrimSuffix(msg, ": "+sentinel.Error())
	}
	return msg
}
