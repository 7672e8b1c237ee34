package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"signhub/internal/app/server/config"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migrator is the subset of *migrate.Migrate used here.
type Migrator interface {
	Up() error
	Version() (version uint, dirty bool, err error)
	Close() (source error, database error)
}

// MigrationEngine builds a Migrator. An empty sourceURL selects the embedded migrations.
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

// Status is the schema state after Up.
type Status struct {
	Version uint
	Applied bool
}

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	if sourceURL != "" {
		return migrate.New(sourceURL, databaseURL)
	}
	src, err := iofs.New(embedded, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// SourceURL is file://<MIGRATIONS_PATH>, or empty when no path is configured.
func (mg *Migration) SourceURL() string {
	if mg.cfg.DB.Migrations == "" {
		return ""
	}
	return "file://" + mg.cfg.DB.Migrations
}

// Up applies every pending migration. Applied is false when the schema was already current.
func (mg *Migration) Up() (st Status, err error) {
	m, err := mg.engine(mg.SourceURL(), mg.cfg.DB.DatabaseURI)
	if err != nil {
		return Status{}, fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			srcErr = fmt.Errorf("close migration source: %w", srcErr)
		}
		if dbErr != nil {
			dbErr = fmt.Errorf("close migration database: %w", dbErr)
		}
		err = errors.Join(err, srcErr, dbErr)
	}()

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
	case err != nil:
		return Status{}, fmt.Errorf("migration up: %w", err)
	default:
		st.Applied = true
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return st, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return st, fmt.Errorf("schema version %d is dirty", version)
	}
	st.Version = version

	return st, nil
}
