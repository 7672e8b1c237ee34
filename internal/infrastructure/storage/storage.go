package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"signhub/internal/app/server/config"
	"signhub/internal/domain/signature"
	"signhub/internal/domain/user"
	"signhub/internal/domain/verification"
	"signhub/internal/infrastructure/storage/memory"
	"signhub/internal/infrastructure/storage/postgres"
	"signhub/internal/infrastructure/storage/sqlite"
)

// Storage is the record store behind every service.
type Storage interface {
	Users() user.Repository
	Signatures() signature.Repository
	VerificationLogs() verification.LogRepository
	// WithinTx commits when fn returns nil. Repositories called with the context
	// passed to fn join the transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Storage = (*memory.Storage)(nil)
	_ Storage = (*sqlite.Storage)(nil)
	_ Storage = (*postgres.Storage)(nil)
)

// Open builds the store selected by cfg.DB.Driver.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.DB.DatabaseURI, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.DB.Driver, config.ErrUnknownDriver)
	}
}
