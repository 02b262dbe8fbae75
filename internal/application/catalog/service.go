package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/matchday-api/internal/domain"
)

type Service interface {
	List(ctx context.Context) []domain.Product
	Get(ctx context.Context, productID string) (*domain.Product, error)
	GetImage(ctx context.Context, productID string) (io.ReadCloser, string, error)
	UploadImage(ctx context.Context, productID string, r io.Reader, contentType string) error
}

// imageStore is the object storage behind product images.
type imageStore interface {
	PutImage(ctx context.Context, productID string, r io.Reader, contentType string) error
	GetImage(ctx context.Context, productID string) (io.ReadCloser, string, error)
}

type service struct {
	images imageStore // nil when no bucket is configured
}

func NewService(images imageStore) Service {
	return &service{images: images}
}

func (s *service) List(_ context.Context) []domain.Product {
	out := make([]domain.Product, len(kits))
	copy(out, kits)
	return out
}

func (s *service) Get(_ context.Context, productID string) (*domain.Product, error) {
	for i := range kits {
		if kits[i].ID == productID {
			p := kits[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
}

func (s *service) GetImage(ctx context.Context, productID string) (io.ReadCloser, string, error) {
	if _, err := s.Get(ctx, productID); err != nil {
		return nil, "", err
	}
	if s.images == nil {
		return nil, "", fmt.Errorf("image storage not configured: %w", domain.ErrNotFound)
	}
	return s.images.GetImage(ctx, productID)
}

func (s *service) UploadImage(ctx context.Context, productID string, r io.Reader, contentType string) error {
	if _, err := s.Get(ctx, productID); err != nil {
		return err
	}
	if s.images == nil {
		return fmt.Errorf("image storage not configured: %w", domain.ErrBadRequest)
	}
	return s.images.PutImage(ctx, productID, r, contentType)
}
