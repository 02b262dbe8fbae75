package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/infrastructure/smtp"
	"golang.org/x/crypto/bcrypt"
)

// LoginChallenge is issued after a correct password; the sign-in only
// completes once the emailed code is verified.
type LoginChallenge struct {
	Email    string
	Code     string
	UserName string
}

// ResetIssue is the outcome of a forgot-password request for an
// account that exists.
type ResetIssue struct {
	Token    string
	UserName string
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.StoredUser, error)
	StartLoginOTP(ctx context.Context, email, password string) (*LoginChallenge, error)
	VerifyLoginOTP(ctx context.Context, email, code string) error
	// ForgotPassword returns (nil, nil) for unknown accounts so the
	// handler can answer with the same generic message either way.
	ForgotPassword(ctx context.Context, email string) (*ResetIssue, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	SendVerification(ctx context.Context, email string) (code string, err error)
	VerifyCode(ctx context.Context, email, code string) error
}

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.StoredUser, error)
	Create(ctx context.Context, payload domain.CreateUserPayload) (*domain.StoredUser, error)
	UpdatePassword(ctx context.Context, email, newHash string) error
}

type codeStore interface {
	Create(ctx context.Context, email string, ttl time.Duration) (*domain.VerificationCode, error)
	FindValid(ctx context.Context, email, code string) (*domain.VerificationCode, error)
	MarkVerified(ctx context.Context, codeID string) error
}

type resetStore interface {
	Create(ctx context.Context, email string, ttl time.Duration) (*domain.PasswordResetToken, error)
	FindValid(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, tokenID string) error
}

type service struct {
	users        userStore
	codes        codeStore
	resets       resetStore
	mailer       smtp.Mailer
	otpTTL       time.Duration
	resetTTL     time.Duration
	publicAppURL string
}

type ServiceDeps struct {
	Users        userStore
	Codes        codeStore
	Resets       resetStore
	Mailer       smtp.Mailer
	OTPTTL       time.Duration
	ResetTTL     time.Duration
	PublicAppURL string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:        deps.Users,
		codes:        deps.Codes,
		resets:       deps.Resets,
		mailer:       deps.Mailer,
		otpTTL:       deps.OTPTTL,
		resetTTL:     deps.ResetTTL,
		publicAppURL: deps.PublicAppURL,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.StoredUser, error) {
	email := NormalizeEmail(req.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with that email already exists: %w", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	var name *string
	if trimmed := strings.TrimSpace(req.FullName); trimmed != "" {
		name = &trimmed
	}
	return s.users.Create(ctx, domain.CreateUserPayload{
		Email:    email,
		Password: string(hash),
		Name:     name,
	})
}

func (s *service) StartLoginOTP(ctx context.Context, email, password string) (*LoginChallenge, error) {
	email = NormalizeEmail(email)
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}

	vc, err := s.codes.Create(ctx, email, s.otpTTL)
	if err != nil {
		return nil, err
	}

	userName := ""
	if u.Name != nil {
		userName = *u.Name
	}
	// Best effort — the code also goes back to the client, which sends
	// the email itself when SMTP is not reachable from the server.
	if err := s.mailer.SendVerificationCode(email, vc.Code, userName); err != nil {
		slog.Warn("could not send OTP email", "email", email, "err", err)
	}
	return &LoginChallenge{Email: email, Code: vc.Code, UserName: userName}, nil
}

func (s *service) VerifyLoginOTP(ctx context.Context, email, code string) error {
	return s.VerifyCode(ctx, email, code)
}

func (s *service) ForgotPassword(ctx context.Context, email string) (*ResetIssue, error) {
	email = NormalizeEmail(email)
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// Account existence must not leak through this flow.
		return nil, nil
	}

	rt, err := s.resets.Create(ctx, email, s.resetTTL)
	if err != nil {
		return nil, err
	}

	userName := ""
	if u.Name != nil {
		userName = *u.Name
	}
	resetURL := s.publicAppURL + "/reset-password?token=" + rt.Token
	if err := s.mailer.SendPasswordReset(email, resetURL, userName); err != nil {
		slog.Warn("could not send reset email", "email", email, "err", err)
	}
	return &ResetIssue{Token: rt.Token, UserName: userName}, nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	rt, err := s.resets.FindValid(ctx, strings.TrimSpace(token))
	if err != nil {
		return err
	}
	if rt == nil {
		return fmt.Errorf("invalid or expired reset token: %w", domain.ErrBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, rt.Email, string(hash)); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, rt.ID)
}

func (s *service) SendVerification(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", fmt.Errorf("no account found with this email: %w", domain.ErrNotFound)
	}

	vc, err := s.codes.Create(ctx, email, s.otpTTL)
	if err != nil {
		return "", err
	}
	userName := ""
	if u.Name != nil {
		userName = *u.Name
	}
	if err := s.mailer.SendVerificationCode(email, vc.Code, userName); err != nil {
		slog.Warn("could not send verification email", "email", email, "err", err)
	}
	return vc.Code, nil
}

func (s *service) VerifyCode(ctx context.Context, email, code string) error {
	email = NormalizeEmail(email)
	vc, err := s.codes.FindValid(ctx, email, strings.TrimSpace(code))
	if err != nil {
		return err
	}
	if vc == nil {
		return fmt.Errorf("invalid or expired verification code: %w", domain.ErrBadRequest)
	}
	return s.codes.MarkVerified(ctx, vc.ID)
}

// NormalizeEmail lowercases and trims an email so every store sees the
// same key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
