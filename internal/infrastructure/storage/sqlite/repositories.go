package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"signhub/internal/domain/apperr"
	"signhub/internal/domain/signature"
	"signhub/internal/domain/user"
	"signhub/internal/domain/verification"
)

type scanner interface {
	Scan(dest ...any) error
}

type UserRepository struct {
	s *Storage
}

const userColumns = `id, username, public_key, private_key, created_at`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.s.conn(ctx).ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?)`,
		u.ID.String(), u.Username, u.PublicKey, u.PrivateKey, u.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %q: %w", u.Username, apperr.ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	row := r.s.conn(ctx).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.s.conn(ctx).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.s.conn(ctx).QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.s.conn(ctx).QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row scanner) (user.User, error) {
	var (
		u  user.User
		id string
	)
	err := row.Scan(&id, &u.Username, &u.PublicKey, &u.PrivateKey, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, fmt.Errorf("find user: %w", apperr.ErrNotFound)
		}
		return u, fmt.Errorf("scan user: %w", err)
	}
	if u.ID, err = uuid.Parse(id); err != nil {
		return u, fmt.Errorf("parse user id: %w", err)
	}
	return u, nil
}

type SignatureRepository struct {
	s *Storage
}

const signatureColumns = `id, signer_id, text, signature, timestamp`

func (r *SignatureRepository) Create(ctx context.Context, sig *signature.Signature) error {
	_, err := r.s.conn(ctx).ExecContext(ctx,
		`INSERT INTO signatures (`+signatureColumns+`) VALUES (?, ?, ?, ?, ?)`,
		sig.ID.String(), sig.SignerID.String(), sig.Text, sig.Value, sig.Timestamp)
	if err != nil {
		return fmt.Errorf("create signature: %w", err)
	}
	return nil
}

func (r *SignatureRepository) FindByID(ctx context.Context, id uuid.UUID) (signature.Signature, error) {
	row := r.s.conn(ctx).QueryRowContext(ctx,
		`SELECT `+signatureColumns+` FROM signatures WHERE id = ?`, id.String())
	return scanSignature(row)
}

func (r *SignatureRepository) ListBySigner(ctx context.Context, signerID uuid.UUID) ([]signature.Signature, error) {
	rows, err := r.s.conn(ctx).QueryContext(ctx,
		`SELECT `+signatureColumns+` FROM signatures WHERE signer_id = ? ORDER BY timestamp, rowid`,
		signerID.String())
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

func scanSignature(row scanner) (signature.Signature, error) {
	var (
		sig          signature.Signature
		id, signerID string
	)
	err := row.Scan(&id, &signerID, &sig.Text, &sig.Value, &sig.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sig, fmt.Errorf("find signature: %w", apperr.ErrNotFound)
		}
		return sig, fmt.Errorf("scan signature: %w", err)
	}
	if sig.ID, err = uuid.Parse(id); err != nil {
		return sig, fmt.Errorf("parse signature id: %w", err)
	}
	if sig.SignerID, err = uuid.Parse(signerID); err != nil {
		return sig, fmt.Errorf("parse signer id: %w", err)
	}
	return sig, nil
}

type LogRepository struct {
	s *Storage
}

func (r *LogRepository) Create(ctx context.Context, l *verification.Log) error {
	var signatureID sql.NullString
	if l.SignatureID != nil {
		signatureID = sql.NullString{String: l.SignatureID.String(), Valid: true}
	}

	_, err := r.s.conn(ctx).ExecContext(ctx,
		`INSERT INTO verification_logs (id, signature_id, is_valid, reason, timestamp) VALUES (?, ?, ?, ?, ?)`,
		l.ID.String(), signatureID, l.IsValid, l.Reason, l.Timestamp)
	if err != nil {
		return fmt.Errorf("create verification log: %w", err)
	}
	return nil
}

func (r *LogRepository) List(ctx context.Context) ([]verification.Log, error) {
	rows, err := r.s.conn(ctx).QueryContext(ctx,
		`SELECT id, signature_id, is_valid, reason, timestamp FROM verification_logs ORDER BY timestamp, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list verification logs: %w", err)
	}
	defer rows.Close()

	var out []verification.Log
	for rows.Next() {
		var (
			l           verification.Log
			id          string
			signatureID sql.NullString
		)
		if err := rows.Scan(&id, &signatureID, &l.IsValid, &l.Reason, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan verification log: %w", err)
		}
		if l.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse log id: %w", err)
		}
		if signatureID.Valid {
			sigID, err := uuid.Parse(signatureID.String)
			if err != nil {
				return nil, fmt.Errorf("parse log signature id: %w", err)
			}
			l.SignatureID = &sigID
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
