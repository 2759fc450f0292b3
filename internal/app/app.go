package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
)

const (
	ModeServer  = "server"
	ModeWorker  = "worker"
	ModeMigrate = "migrate"
)

// App хранит собранные зависимости и запускает выбранный режим
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	handler  http.Handler
	migrate  func() error
	consumer ports.ResourceEventConsumer
	closers  []func() error
}

// Options содержит зависимости App. Consumer нужен только режиму worker.
type Options struct {
	Config   *config.Config
	Logger   *slog.Logger
	Handler  http.Handler
	Migrate  func() error
	Consumer ports.ResourceEventConsumer
	// Closers вызываются в Shutdown в обратном порядке
	Closers []func() error
}

func NewApp(opts Options) *App {
	return &App{
		cfg:      opts.Config,
		logger:   opts.Logger,
		handler:  opts.Handler,
		migrate:  opts.Migrate,
		consumer: opts.Consumer,
		closers:  opts.Closers,
	}
}

func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run блокируется до SIGINT/SIGTERM или отмены ctx (кроме режима migrate)
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		if err = a.applyMigrations(); err == nil {
			err = runServer(ctx, a.cfg, a.handler, a.logger)
		}
	case ModeWorker:
		err = runWorker(ctx, a.consumer, a.logger)
	case ModeMigrate:
		err = a.applyMigrations()
	default:
		err = fmt.Errorf("unknown mode: %s (use 'server', 'worker' or 'migrate')", mode)
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown finished with errors", "error", closeErr)
	}

	return err
}

func (a *App) applyMigrations() error {
	if a.migrate == nil {
		return nil
	}
	if err := a.migrate(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
