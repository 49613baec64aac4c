package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpContext "github.com/dtroode/postboard-server/internal/api/http/context"
	"github.com/dtroode/postboard-server/internal/api/http/router"
	httpServer "github.com/dtroode/postboard-server/internal/api/http/server"
	"github.com/dtroode/postboard-server/internal/config"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/metrics"
	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/password"
	"github.com/dtroode/postboard-server/internal/repository/postgres"
	"github.com/dtroode/postboard-server/internal/server"
	"github.com/dtroode/postboard-server/internal/service"
	storage "github.com/dtroode/postboard-server/internal/storage/minio"
	"github.com/dtroode/postboard-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Connect to the database, apply pending migrations and serve the API
until SIGINT or SIGTERM is received.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.ConnectRetries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	var objects model.Storage
	if cfg.Storage.Enabled() {
		client, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage client: %w", err)
		}
		objects = client
	} else {
		log.Info("MINIO_ENDPOINT is empty, post attachments are disabled")
	}

	app := buildRouter(cfg, db, objects, metrics.New(), log).Register()
	srv := httpServer.NewHTTPServer(app, fmt.Sprintf(":%s", cfg.HTTP.Port))

	errCh := make(chan error, 1)
	go func(s model.Server) {
		log.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		errCh <- s.Start(server.NewSecurityLayer(cfg.HTTP))
	}(srv)

	log.Info("Build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)

	select {
	case <-ctx.Done():
		log.Info("received interruption signal, shutting down")
	case err := <-errCh:
		if err == nil {
			err = errors.New("server exited unexpectedly")
		}
		return fmt.Errorf("failed to start server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("error during server shutdown", "error", err, "address", srv.Address())
	}
	if err := <-errCh; err != nil {
		log.Error("server stopped with error", "error", err)
	}

	log.Info("shutdown complete")
	return nil
}

// buildRouter wires repositories, services and handlers. objects may be nil.
func buildRouter(cfg *config.Config, db *postgres.Connection, objects model.Storage, m *metrics.Metrics, log *logger.Logger) *router.Router {
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	commentRepo := postgres.NewCommentRepository(db)

	tokenManager := token.NewJWT(token.Options{
		AccessSecret:  cfg.JWT.AccessSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshSecret: cfg.JWT.RefreshSecret,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})

	authService := service.NewAuth(userRepo, userRepo, password.NewBcrypt(0), tokenManager, cfg.JWT.MaxSessions, m, log)
	postService := service.NewPost(postRepo, objects, log)

	opts := router.Options{
		AuthService:    authService,
		UserService:    service.NewUser(userRepo, log),
		PostService:    postService,
		CommentService: service.NewComment(commentRepo, postRepo, log),
		TokenService:   service.NewTokenService(tokenManager, log),
		ContextManager: httpContext.NewManager(),
		Database:       db,
		Metrics:        m,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		BodyLimit:      cfg.HTTP.BodyLimit,
	}
	if objects != nil {
		opts.AttachmentService = service.NewAttachment(postService, objects, log)
	}

	return router.New(opts, log)
}
