// POST /api/register          register a user and generate its key pair
// POST /api/sign              sign a message with the user's private key
// POST /api/verify_signature  verify by signature id, or a text and signature pair
// GET  /api/v1/health         liveness plus storage ping
// GET  /metrics               prometheus exposition

package api

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	healthAPI "signhub/internal/app/server/api/http/health"
	"signhub/internal/app/server/api/http/middleware"
	"signhub/internal/app/server/api/http/middleware/cors"
	"signhub/internal/app/server/api/http/response"
	"signhub/internal/app/server/api/http/middleware/logger"
	metricsMW "signhub/internal/app/server/api/http/middleware/metrics"
	signatureAPI "signhub/internal/app/server/api/http/signature"
	userAPI "signhub/internal/app/server/api/http/user"
	verificationAPI "signhub/internal/app/server/api/http/verification"
	"signhub/internal/app/server/config"
	"signhub/internal/app/server/crypto"
	"signhub/internal/app/server/metrics"
	"signhub/internal/domain/signature"
	"signhub/internal/domain/user"
	"signhub/internal/domain/verification"
	"signhub/internal/infrastructure/storage"
)

type Handlers struct {
	Health       *healthAPI.Handler
	User         *userAPI.Handler
	Signature    *signatureAPI.Handler
	Verification *verificationAPI.Handler
}

// New creates the *chi.Mux with every operation registered through huma.
func New(cfg *config.Config, store storage.Storage, m *metrics.Metrics, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	mux.Use(chimw.StripSlashes)
	mux.Use(cors.Handler(cfg.Server.AllowedOrigins))

	response.InstallInvalidBody()
	humaCfg := huma.DefaultConfig("Signhub API", "1.0.0")
	API := humachi.New(mux, humaCfg)

	h, err := handlers(cfg, store, m, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Signature.SetupRoutes(API)
	h.Verification.SetupRoutes(API)

	mux.Handle("/metrics", m.Handler())

	return mux, nil
}

func handlers(cfg *config.Config, store storage.Storage, m *metrics.Metrics, log *slog.Logger) (*Handlers, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	vault, err := crypto.NewKeyVault(cfg.Crypto.KeyEncryptionSecret)
	if err != nil {
		return nil, fmt.Errorf("key vault: %w", err)
	}
	if vault.Enabled() {
		log.Info("private keys are sealed at rest")
	}

	keys := crypto.NewKeyGenerator()
	engine := crypto.NewEngine()

	loggerMW := logger.New(log)
	requestsMW := metricsMW.New(m)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	userService := user.NewService(
		store.Users(), store, keys, engine, vault, user.NewUsernameValidator(), log,
	)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(requestsMW.Middleware())
	userHandler := userAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	signatureService := signature.NewService(store.Signatures(), store.Users(), engine, vault, log)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(requestsMW.Middleware())
	signatureHandler := signatureAPI.NewHandler(signatureService, log, middlewares.GetAllAndClear())

	verificationService := verification.NewService(
		store.Signatures(), store.Users(), store.VerificationLogs(), engine, m, log,
	)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(requestsMW.Middleware())
	verificationHandler := verificationAPI.NewHandler(verificationService, loc, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:       healthHandler,
		User:         userHandler,
		Signature:    signatureHandler,
		Verification: verificationHandler,
	}, nil
}
