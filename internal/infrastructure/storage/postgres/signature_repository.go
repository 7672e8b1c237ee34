package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"signhub/internal/domain/apperr"
	"signhub/internal/domain/signature"
)

func NewSignatureRepository(s *Storage) *SignatureRepository {
	return &SignatureRepository{
		s:   s,
		log: s.log.With("component", "signature_repository"),
	}
}

type SignatureRepository struct {
	s   *Storage
	log *slog.Logger
}

const signatureColumns = `id, signer_id, text, signature, timestamp`

func (r *SignatureRepository) Create(ctx context.Context, sig *signature.Signature) error {
	_, err := r.s.conn(ctx).Exec(ctx,
		`INSERT INTO signatures (`+signatureColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		sig.ID, sig.SignerID, sig.Text, sig.Value, sig.Timestamp)
	if err != nil {
		r.log.Error("failed to create signature", "signer_id", sig.SignerID, "error", err)
		return fmt.Errorf("create signature: %w", err)
	}
	return nil
}

func (r *SignatureRepository) FindByID(ctx context.Context, id uuid.UUID) (signature.Signature, error) {
	row := r.s.conn(ctx).QueryRow(ctx,
		`SELECT `+signatureColumns+` FROM signatures WHERE id = $1`, id)
	return scanSignature(row)
}

func (r *SignatureRepository) ListBySigner(ctx context.Context, signerID uuid.UUID) ([]signature.Signature, error) {
	rows, err := r.s.conn(ctx).Query(ctx,
		`SELECT `+signatureColumns+` FROM signatures WHERE signer_id = $1 ORDER BY timestamp, id`, signerID)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()

	var out []signature.Signature
	for rows.Next() {
		sig, err := scanSignature(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sig)
	}
	return out, rows.Err()
}

func scanSignature(row pgx.Row) (signature.Signature, error) {
	var sig signature.Signature
	err := row.Scan(&sig.ID, &sig.SignerID, &sig.Text, &sig.Value, &sig.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sig, fmt.Errorf("find signature: %w", apperr.ErrNotFound)
		}
		return sig, fmt.Errorf("scan signature: %w", err)
	}
	return sig, nil
}
