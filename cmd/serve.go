package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RPGLobby/config"
	_ "RPGLobby/config/swagger"
	"RPGLobby/routes"
	"RPGLobby/services/redis"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			log := config.NewLogger(cfg.LogFormat, cfg.LogLevel, os.Stdout)
			slog.SetDefault(log)
			return serve(ctx, cfg, log)
		},
	}
}

// serve runs the API until ctx is cancelled, then drains open requests.
func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log.Info("Setting up server...")
	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectGORM(cfg, log)
	if err != nil {
		return err
	}
	defer config.CloseGORM(db)
	log.Info("GORM connected", "driver", cfg.DBDriver)

	// Only migrate in development or during deployment
	if cfg.Migrate {
		if err := config.MigrateDatabase(db); err != nil {
			log.Warn("database migration failed", "error", err)
		} else {
			log.Info("database migrated")
		}
	}

	revoker, closeRevoker, err := newRevoker(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRevoker()

	router := routes.NewRouter(routes.Options{
		DB:          db,
		Revoker:     revoker,
		JWTSecret:   []byte(cfg.JWTSecret),
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRevoker uses Redis when REDIS_URL is set and an in-process list
// otherwise, which only works for a single instance.
func newRevoker(ctx context.Context, cfg config.Config, log *slog.Logger) (redis.Revoker, func(), error) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not set, revoked tokens are kept in memory")
		return redis.NewMemoryRevoker(), func() {}, nil
	}
	client, err := config.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("connection to Redis successful")
	rc := redis.NewRedisClient(client)
	return rc, func() {
		if err := rc.CloseRedis(); err != nil {
			log.Warn("closing redis", "error", err)
		}
	}, nil
}
