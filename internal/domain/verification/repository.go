package verification

import "context"

// LogRepository is append-only.
type LogRepository interface {
	Create(ctx context.Context, l *Log) error
	List(ctx context.Context) ([]Log, error)
}
