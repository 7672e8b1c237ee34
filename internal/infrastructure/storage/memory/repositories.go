package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"signhub/internal/domain/apperr"
	"signhub/internal/domain/signature"
	"signhub/internal/domain/user"
	"signhub/internal/domain/verification"
)

type UserRepository struct {
	s *Storage
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.byUsername[u.Username]; taken {
		return fmt.Errorf("create user %q: %w", u.Username, apperr.ErrConflict)
	}

	stored := *u
	r.s.users[u.ID] = stored
	r.s.byUsername[u.Username] = u.ID
	r.s.userOrder = append(r.s.userOrder, u.ID)

	record(ctx, func() { r.s.removeUser(stored) })
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.byUsername[username]
	if !ok {
		return user.User{}, fmt.Errorf("find user %q: %w", username, apperr.ErrNotFound)
	}
	return r.s.users[id], nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, fmt.Errorf("find user %s: %w", id, apperr.ErrNotFound)
	}
	return u, nil
}

func (r *UserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.byUsername[username]
	return ok, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]user.User, 0, len(r.s.userOrder))
	for _, id := range r.s.userOrder {
		users = append(users, r.s.users[id])
	}
	return users, nil
}

type SignatureRepository struct {
	s *Storage
}

func (r *SignatureRepository) Create(ctx context.Context, sig *signature.Signature) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[sig.SignerID]; !ok {
		return fmt.Errorf("create signature: signer %s does not exist", sig.SignerID)
	}
	if _, dup := r.s.signatures[sig.ID]; dup {
		return fmt.Errorf("create signature %s: %w", sig.ID, apperr.ErrConflict)
	}

	r.s.signatures[sig.ID] = *sig
	r.s.sigOrder = append(r.s.sigOrder, sig.ID)

	id := sig.ID
	record(ctx, func() {
		delete(r.s.signatures, id)
		r.s.sigOrder = without(r.s.sigOrder, id)
	})
	return nil
}

func (r *SignatureRepository) FindByID(_ context.Context, id uuid.UUID) (signature.Signature, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sig, ok := r.s.signatures[id]
	if !ok {
		return signature.Signature{}, fmt.Errorf("find signature %s: %w", id, apperr.ErrNotFound)
	}
	return sig, nil
}

func (r *SignatureRepository) ListBySigner(_ context.Context, signerID uuid.UUID) ([]signature.Signature, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []signature.Signature
	for _, id := range r.s.sigOrder {
		if sig := r.s.signatures[id]; sig.SignerID == signerID {
			out = append(out, sig)
		}
	}
	return out, nil
}

type LogRepository struct {
	s *Storage
}

func (r *LogRepository) Create(ctx context.Context, l *verification.Log) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry := cloneLog(*l)
	r.s.logs = append(r.s.logs, entry)

	record(ctx, func() {
		for i := range r.s.logs {
			if r.s.logs[i].ID == entry.ID {
				r.s.logs = append(r.s.logs[:i], r.s.logs[i+1:]...)
				return
			}
		}
	})
	return nil
}

func (r *LogRepository) List(_ context.Context) ([]verification.Log, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]verification.Log, len(r.s.logs))
	for i, l := range r.s.logs {
		out[i] = cloneLog(l)
	}
	return out, nil
}

// cloneLog detaches the optional signature reference so stored entries never alias caller memory.
func cloneLog(l verification.Log) verification.Log {
	if l.SignatureID != nil {
		id := *l.SignatureID
		l.SignatureID = &id
	}
	return l
}
