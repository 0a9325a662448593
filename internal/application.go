package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/puzzlehub-backend/internal/config"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/repository"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/repository/storage"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/puzzlehub-backend/internal/service"
	"github.com/rocketscienceinc/puzzlehub-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	archive, err := sqlite.New(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = archive.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = archive.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	catalogRepo := repository.NewCatalogRepository()
	scoreRepo := repository.NewScoreRepository(redisStorage)
	sessionRepo := repository.NewSessionRepository(redisStorage)

	catalogService := service.NewCatalogService(catalogRepo)
	scoreService := service.NewScoreService(logger, scoreRepo, archive)
	sessionService := service.NewSessionService(logger, catalogRepo, sessionRepo, scoreService)

	handlers := rest.NewHandlers(logger, catalogService, scoreService, sessionService)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, handlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
