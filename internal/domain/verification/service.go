package verification

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"signhub/internal/domain/apperr"
	"signhub/internal/domain/signature"
	"signhub/internal/domain/user"
)

type SignatureFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (signature.Signature, error)
}

type UserLister interface {
	FindByID(ctx context.Context, id uuid.UUID) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
}

type Checker interface {
	Check(message, signature []byte, publicKey string) Outcome
}

// Recorder receives one observation per completed verification attempt.
type Recorder interface {
	ObserveVerification(mode string, valid bool)
}

type Servicer interface {
	Verify(ctx context.Context, req Request) (Result, error)
}

type Service struct {
	signatures SignatureFinder
	users      UserLister
	logs       LogRepository
	checker    Checker
	recorder   Recorder
	now        func() time.Time
	log        *slog.Logger
}

func NewService(
	signatures SignatureFinder,
	users UserLister,
	logs LogRepository,
	checker Checker,
	recorder Recorder,
	log *slog.Logger,
) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		signatures: signatures,
		users:      users,
		logs:       logs,
		checker:    checker,
		recorder:   recorder,
		now:        time.Now,
		log:        log.With("component", "verification_service"),
	}
}

// Verify checks a stored signature when SignatureID is set, otherwise the supplied
// text and signature against every known key. Requests carrying neither are rejected
// without an audit entry; every other attempt is logged, including unknown ids.
func (s *Service) Verify(ctx context.Context, req Request) (Result, error) {
	switch {
	case req.SignatureID != "":
		return s.verifyByID(ctx, req.SignatureID)
	case req.OriginalText != "" && req.SignatureB64 != "":
		return s.verifyOffline(ctx, req.OriginalText, req.SignatureB64)
	default:
		return Result{}, ErrInsufficientInput
	}
}

func (s *Service) verifyByID(ctx context.Context, rawID string) (Result, error) {
	sig, err := s.findSignature(ctx, rawID)
	if errors.Is(err, apperr.ErrNotFound) {
		if err := s.audit(ctx, nil, false, ReasonNotFound); err != nil {
			return Result{}, err
		}
		s.recorder.ObserveVerification(string(ModeByID), false)
		return Result{Mode: ModeByID, Message: ErrSignatureNotFound.Message}, ErrSignatureNotFound
	}
	if err != nil {
		return Result{}, apperr.Internal("find signature", err)
	}

	signer, err := s.users.FindByID(ctx, sig.SignerID)
	if err != nil {
		s.log.Error("signer of stored signature missing", "signature_id", sig.ID, "error", err)
		return Result{}, apperr.Internal("find signer", err)
	}

	outcome := Outcome{Reason: "stored signature is not valid base64"}
	if raw, err := base64.StdEncoding.DecodeString(sig.Value); err == nil {
		outcome = s.checker.Check([]byte(sig.Text), raw, signer.PublicKey)
	}
	s.log.Debug("signature checked", "signature_id", sig.ID, "valid", outcome.Valid, "reason", outcome.Reason)

	if err := s.audit(ctx, &sig.ID, outcome.Valid, ReasonByID); err != nil {
		return Result{}, err
	}
	s.recorder.ObserveVerification(string(ModeByID), outcome.Valid)

	return Result{
		Mode:      ModeByID,
		IsValid:   outcome.Valid,
		Message:   verdict(outcome.Valid),
		Signer:    signer.Username,
		Algorithm: Algorithm,
		Timestamp: sig.Timestamp,
	}, nil
}

func (s *Service) findSignature(ctx context.Context, rawID string) (signature.Signature, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return signature.Signature{}, signature.ErrNotFound
	}
	return s.signatures.FindByID(ctx, id)
}

func (s *Service) verifyOffline(ctx context.Context, text, signatureB64 string) (Result, error) {
	signer, valid, err := s.findSigner(ctx, []byte(text), signatureB64)
	if err != nil {
		return Result{}, err
	}

	if err := s.audit(ctx, nil, valid, ReasonOffline); err != nil {
		return Result{}, err
	}
	s.recorder.ObserveVerification(string(ModeOffline), valid)

	return Result{
		Mode:      ModeOffline,
		IsValid:   valid,
		Message:   verdict(valid),
		Signer:    signer,
		Algorithm: Algorithm,
		Timestamp: s.now().Unix(),
	}, nil
}

// findSigner returns the first user, in storage order, whose key validates the pair.
func (s *Service) findSigner(ctx context.Context, message []byte, signatureB64 string) (string, bool, error) {
	raw, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		s.log.Debug("offline signature is not valid base64", "error", err)
		return UnknownSigner, false, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return "", false, apperr.Internal("list users", err)
	}

	for _, u := range users {
		if outcome := s.checker.Check(message, raw, u.PublicKey); outcome.Valid {
			return u.Username, true, nil
		}
	}

	s.log.Debug("no registered key matches offline signature", "candidates", len(users))
	return UnknownSigner, false, nil
}

func (s *Service) audit(ctx context.Context, signatureID *uuid.UUID, valid bool, reason string) error {
	entry := &Log{
		ID:          uuid.New(),
		SignatureID: signatureID,
		IsValid:     valid,
		Reason:      reason,
		Timestamp:   s.now().Unix(),
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		s.log.Error("failed to write verification log", "reason", reason, "error", err)
		return apperr.Internal("write verification log", err)
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveVerification(string, bool) {}
