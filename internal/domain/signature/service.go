package signature

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"signhub/internal/domain/apperr"
	"signhub/internal/domain/user"
)

type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (user.User, error)
}

type Signer interface {
	Sign(message []byte, privateKey string) ([]byte, error)
}

// KeyOpener recovers a private key stored by the user service.
type KeyOpener interface {
	Open(stored string) (string, error)
}

type Servicer interface {
	Sign(ctx context.Context, username, message string) (Result, error)
}

type Service struct {
	repo   Repository
	users  UserFinder
	signer Signer
	keys   KeyOpener
	now    func() time.Time
	log    *slog.Logger
}

func NewService(repo Repository, users UserFinder, signer Signer, keys KeyOpener, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		signer: signer,
		keys:   keys,
		now:    time.Now,
		log:    log.With("component", "signature_service"),
	}
}

// Sign signs the UTF-8 bytes of message with the user's private key and stores the result.
func (s *Service) Sign(ctx context.Context, username, message string) (Result, error) {
	username = user.Normalize(username)
	if username == "" || message == "" {
		return Result{}, ErrFieldsRequired
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Result{}, user.ErrNotFound
		}
		return Result{}, apperr.Internal("find user", err)
	}

	privateKey, err := s.keys.Open(u.PrivateKey)
	if err != nil {
		s.log.Error("stored private key unusable", "user_id", u.ID, "error", err)
		return Result{}, apperr.Internal("open private key", err)
	}

	sig, err := s.signer.Sign([]byte(message), privateKey)
	if err != nil {
		s.log.Error("failed to sign message", "user_id", u.ID, "error", err)
		return Result{}, apperr.Internal("sign message", err)
	}

	encoded := base64.StdEncoding.EncodeToString(sig)
	rec := &Signature{
		ID:        uuid.New(),
		SignerID:  u.ID,
		Text:      message,
		Value:     encoded,
		Timestamp: s.now().Unix(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Error("failed to create signature", "user_id", u.ID, "error", err)
		return Result{}, apperr.Internal("create signature", err)
	}

	s.log.Info("message signed", "signature_id", rec.ID, "user_id", u.ID)

	return Result{
		SignatureID:  rec.ID,
		SignatureB64: encoded,
	}, nil
}
