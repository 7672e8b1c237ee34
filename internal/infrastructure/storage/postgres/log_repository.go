package postgres

import (
	"context"
	"fmt"

	"signhub/internal/domain/verification"
)

func NewLogRepository(s *Storage) *LogRepository {
	return &LogRepository{s: s}
}

// LogRepository only ever inserts; audit rows are never updated or deleted.
type LogRepository struct {
	s *Storage
}

func (r *LogRepository) Create(ctx context.Context, l *verification.Log) error {
	_, err := r.s.conn(ctx).Exec(ctx,
		`INSERT INTO verification_logs (id, signature_id, is_valid, reason, timestamp)
         VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.SignatureID, l.IsValid, l.Reason, l.Timestamp)
	if err != nil {
		return fmt.Errorf("create verification log: %w", err)
	}
	return nil
}

func (r *LogRepository) List(ctx context.Context) ([]verification.Log, error) {
	rows, err := r.s.conn(ctx).Query(ctx,
		`SELECT id, signature_id, is_valid, reason, timestamp FROM verification_logs ORDER BY timestamp, id`)
	if err != nil {
		return nil, fmt.Errorf("list verification logs: %w", err)
	}
	defer rows.Close()

	var out []verification.Log
	for rows.Next() {
		var l verification.Log
		if err := rows.Scan(&l.ID, &l.SignatureID, &l.IsValid, &l.Reason, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan verification log: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
