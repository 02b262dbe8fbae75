package http

import (
	"context"
	"io"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/infrastructure/smtp"
	"github.com/matchday-api/internal/infrastructure/sns"
)

// UserStore is the minimal interface the router requires from a user store.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.StoredUser, error)
	Create(ctx context.Context, payload domain.CreateUserPayload) (*domain.StoredUser, error)
	UpdatePassword(ctx context.Context, email, newHash string) error
}

// CodeStore is the minimal interface the router requires from a verification
// code store.
type CodeStore interface {
	Create(ctx context.Context, email string, ttl time.Duration) (*domain.VerificationCode, error)
	FindValid(ctx context.Context, email, code string) (*domain.VerificationCode, error)
	MarkVerified(ctx context.Context, codeID string) error
}

// ResetStore is the minimal interface the router requires from a password
// reset token store.
type ResetStore interface {
	Create(ctx context.Context, email string, ttl time.Duration) (*domain.PasswordResetToken, error)
	FindValid(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, tokenID string) error
}

// OrderStore is the minimal interface the router requires from an order store.
type OrderStore interface {
	Append(ctx context.Context, payload domain.OrderPayload) (*domain.StoredOrder, error)
	List(ctx context.Context) ([]domain.StoredOrder, error)
}

// ImageStore is the minimal interface the router requires from an object
// storage backend for product images.
type ImageStore interface {
	PutImage(ctx context.Context, productID string, r io.Reader, contentType string) error
	GetImage(ctx context.Context, productID string) (io.ReadCloser, string, error)
}

// Deps holds all infrastructure dependencies for the router. Optional
// fields (ImageStore, Notifier) stay nil when the backing service is not
// configured.
type Deps struct {
	Users    UserStore
	Codes    CodeStore
	Resets   ResetStore
	Orders   OrderStore
	Images   ImageStore
	Mailer   smtp.Mailer
	Notifier sns.OrderNotifier
}
