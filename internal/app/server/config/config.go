package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	// Zone data for TIME_ZONE on hosts without a system zoneinfo database.
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultRunAddress      = ":8000"
	defaultTimeZone        = "America/Sao_Paulo"
	defaultShutdownTimeout = 10 * time.Second
)

var (
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrMissingDSN    = errors.New("DATABASE_URI is required for this storage driver")
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Crypto Crypto
}

type DB struct {
	Driver      string
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	TimeZone        string
}

type Crypto struct {
	// KeyEncryptionSecret seals private keys at rest when non-empty.
	KeyEncryptionSecret string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("storage_driver", DriverMemory)
	v.SetDefault("time_zone", defaultTimeZone)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:      strings.ToLower(strings.TrimSpace(v.GetString("storage_driver"))),
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
			AllowedOrigins:  splitList(v.GetString("cors_allowed_origins")),
			TimeZone:        v.GetString("time_zone"),
		},
		Crypto: Crypto{
			KeyEncryptionSecret: v.GetString("key_encryption_secret"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("%s: %w", c.DB.Driver, ErrMissingDSN)
		}
	default:
		return fmt.Errorf("%q: %w", c.DB.Driver, ErrUnknownDriver)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	return nil
}

// Location resolves TimeZone, defaulting to America/Sao_Paulo.
func (c *Config) Location() (*time.Location, error) {
	name := c.Server.TimeZone
	if name == "" {
		name = defaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", name, err)
	}
	return loc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
