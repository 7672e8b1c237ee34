package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create fails with apperr.ErrConflict when the username is taken.
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// List returns every user in creation order.
	List(ctx context.Context) ([]User, error)
}

// Transactor runs fn in a single storage transaction. Repositories called with the
// context handed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
