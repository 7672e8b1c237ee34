package signature

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, s *Signature) error
	// FindByID fails with apperr.ErrNotFound for unknown ids.
	FindByID(ctx context.Context, id uuid.UUID) (Signature, error)
	ListBySigner(ctx context.Context, signerID uuid.UUID) ([]Signature, error)
}
