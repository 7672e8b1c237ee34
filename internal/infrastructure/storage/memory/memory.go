package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"signhub/internal/domain/signature"
	"signhub/internal/domain/user"
	"signhub/internal/domain/verification"
)

// Storage keeps every record in process memory. Writes made inside WithinTx are
// visible to other callers before commit and are undone on rollback.
type Storage struct {
	mu sync.RWMutex

	users      map[uuid.UUID]user.User
	byUsername map[string]uuid.UUID
	userOrder  []uuid.UUID

	signatures map[uuid.UUID]signature.Signature
	sigOrder   []uuid.UUID

	logs []verification.Log
}

func New() *Storage {
	return &Storage{
		users:      make(map[uuid.UUID]user.User),
		byUsername: make(map[string]uuid.UUID),
		signatures: make(map[uuid.UUID]signature.Signature),
	}
}

func (s *Storage) Users() user.Repository {
	return &UserRepository{s: s}
}

func (s *Storage) Signatures() signature.Repository {
	return &SignatureRepository{s: s}
}

func (s *Storage) VerificationLogs() verification.LogRepository {
	return &LogRepository{s: s}
}

func (s *Storage) Ping(context.Context) error {
	return nil
}

func (s *Storage) Close() error {
	return nil
}

type txKey struct{}

type undoLog struct {
	mu    sync.Mutex
	steps []func()
}

func (u *undoLog) push(step func()) {
	u.mu.Lock()
	u.steps = append(u.steps, step)
	u.mu.Unlock()
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
func (s *Storage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*undoLog); ok {
		return fn(ctx)
	}

	undo := &undoLog{}
	defer func() {
		if p := recover(); p != nil {
			s.rollback(undo)
			panic(p)
		}
		if err != nil {
			s.rollback(undo)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, undo))
}

func (s *Storage) rollback(undo *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(undo.steps) - 1; i >= 0; i-- {
		undo.steps[i]()
	}
}

// record registers a compensating step when ctx belongs to a transaction.
// Steps run with s.mu already held.
func record(ctx context.Context, step func()) {
	if undo, ok := ctx.Value(txKey{}).(*undoLog); ok {
		undo.push(step)
	}
}

// DeleteUser removes a user and, like the SQL stores' foreign key, all of its signatures.
func (s *Storage) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("delete user %s: %w", id, user.ErrNotFound)
	}
	s.removeUser(u)

	for sigID, sig := range s.signatures {
		if sig.SignerID == id {
			delete(s.signatures, sigID)
			s.sigOrder = without(s.sigOrder, sigID)
		}
	}
	return nil
}

func (s *Storage) removeUser(u user.User) {
	delete(s.users, u.ID)
	delete(s.byUsername, u.Username)
	s.userOrder = without(s.userOrder, u.ID)
}

func without(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
