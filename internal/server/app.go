// Package server initializes and runs the authentication server: it opens
// the database, applies migrations, selects the file storage backend, wires
// the services, and serves HTTP until shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/dbx"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/logging"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/config"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/httpapi"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/repomanager"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/services"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := dbx.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager(db)
	if err := rm.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	files, uploadDir, err := newFileStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	accounts := services.NewAccountService(rm, cfg, logger)
	pictures := services.NewPictureService(rm, files, logger)
	handlers := httpapi.NewHandlers(accounts, pictures, cfg.TokenTTL, logger)

	srv := httpapi.NewServer(cfg.EndpointAddr, []byte(cfg.SecretKey), uploadDir, handlers, logger)

	return &App{config: cfg, logger: logger, server: srv}, nil
}

// newFileStore selects the picture storage backend. The returned dir is
// non-empty only for the local driver, where the HTTP server also serves it.
func newFileStore(ctx context.Context, cfg *config.Config) (storage.FileStore, string, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverS3:
		s, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		return s, "", err
	default:
		s, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
		return s, cfg.UploadDir, err
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server", "error", err)
	}
}
