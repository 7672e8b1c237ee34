package user

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"signhub/internal/domain/apperr"
)

type KeyGenerator interface {
	Generate() (publicKey, privateKey string, err error)
}

type Signer interface {
	Sign(message []byte, privateKey string) ([]byte, error)
}

// KeySealer protects private keys before they are persisted.
type KeySealer interface {
	Seal(privateKey string) (string, error)
}

type Servicer interface {
	Register(ctx context.Context, username string) (Registration, error)
}

type Service struct {
	repo      Repository
	tx        Transactor
	keys      KeyGenerator
	signer    Signer
	sealer    KeySealer
	validator Validator
	now       func() time.Time
	log       *slog.Logger
}

func NewService(
	repo Repository,
	tx Transactor,
	keys KeyGenerator,
	signer Signer,
	sealer KeySealer,
	validator Validator,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		tx:        tx,
		keys:      keys,
		signer:    signer,
		sealer:    sealer,
		validator: validator,
		now:       time.Now,
		log:       log.With("component", "user_service"),
	}
}

// Register creates the user together with its key pair and returns the welcome message
// signed with the new private key. The user row is committed only if signing succeeds.
func (s *Service) Register(ctx context.Context, username string) (Registration, error) {
	username = Normalize(username)
	if err := s.validator.ValidateUsername(username); err != nil {
		s.log.Debug("validation failed", "username", username, "error", err)
		return Registration{}, err
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return Registration{}, apperr.Internal("check username", err)
	}
	if exists {
		return Registration{}, ErrUsernameTaken
	}

	publicKey, privateKey, err := s.keys.Generate()
	if err != nil {
		s.log.Error("key generation failed", "error", err)
		return Registration{}, apperr.Internal("generate key pair", err)
	}

	storedKey, err := s.sealer.Seal(privateKey)
	if err != nil {
		return Registration{}, apperr.Internal("seal private key", err)
	}

	u := &User{
		ID:         uuid.New(),
		Username:   username,
		PublicKey:  publicKey,
		PrivateKey: storedKey,
		CreatedAt:  s.now().UTC(),
	}

	var reg Registration
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, u); err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				return ErrUsernameTaken
			}
			return apperr.Internal("create user", err)
		}

		welcome := WelcomeMessage(username)
		sig, err := s.signer.Sign([]byte(welcome), privateKey)
		if err != nil {
			return apperr.Internal("sign welcome message", err)
		}

		reg = Registration{
			UserID:         u.ID,
			Username:       u.Username,
			WelcomeMessage: welcome,
			SignatureB64:   base64.StdEncoding.EncodeToString(sig),
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperr.ErrConflict) {
			s.log.Error("registration failed", "username", username, "error", err)
		}
		return Registration{}, fmt.Errorf("register %q: %w", username, err)
	}

	s.log.Info("user registered", "user_id", u.ID, "username", u.Username)
	return reg, nil
}
