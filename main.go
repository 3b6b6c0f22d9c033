package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"snaplink-be/internal/config"
	"snaplink-be/internal/database"
	"snaplink-be/internal/jwt"
	"snaplink-be/internal/keygen"
	"snaplink-be/internal/password"
	"snaplink-be/internal/repository"
	"snaplink-be/internal/server"
	"snaplink-be/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if !cfg.EnvFileLoaded {
		logger.Info("no .env file found, using environment variables or defaults")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		return err
	}
	defer db.Close()

	// Run database migrations
	if cfg.MigrateOnStart {
		if err := database.RunMigrations(ctx, db); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	// Initialize repositories
	urlRepo := repository.NewURLRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	hasher := password.NewBcryptHasher(cfg.BcryptCost)

	authService := service.NewAuthService(userRepo, hasher, jwtService, logger, cfg.DBQueryTimeout)
	urlService := service.NewURLService(urlRepo, keygen.NewRandomGenerator(), service.URLServiceConfig{
		KeyLength:      cfg.KeyLength,
		MaxKeyAttempts: cfg.MaxKeyAttempts,
		QueryTimeout:   cfg.DBQueryTimeout,
	}, logger)

	router := server.NewRouter(server.Dependencies{
		AuthService: authService,
		URLService:  urlService,
		BaseURL:     cfg.BaseURL,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "base_url", cfg.BaseURL, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
