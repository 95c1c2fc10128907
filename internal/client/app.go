package client

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/utils"
)

// defaultShutdownGrace bounds how long a stop signal waits for the UI to
// return while it is blocked reading input.
const defaultShutdownGrace = 2 * time.Second

var errNoUI = errors.New("client ui is not configured")

type App struct {
	ui       UI
	storages io.Closer

	shutdownGrace time.Duration
	logger        *logger.Logger
}

// NewApp assembles the client. storages is closed when Run returns and may
// be nil.
func NewApp(ui UI, storages io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}

	return &App{
		ui:            ui,
		storages:      storages,
		shutdownGrace: defaultShutdownGrace,
		logger:        logger,
	}, nil
}

// Run drives the UI until it returns or SIGINT/SIGTERM/SIGQUIT arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	sessionID := utils.NewUUIDGenerator().Generate()
	log := a.logger.WithSessionID(sessionID)
	ctx = utils.WithSessionID(log.WithContext(ctx), sessionID)

	log.Info().Str("func", "App.run").Msg("client session started")
	defer a.closeStorages(log)

	done := make(chan error, 1)
	go func() {
		done <- a.ui.Run(ctx)
	}()

	select {
	case err := <-done:
		log.Info().Str("func", "App.run").Msg("client session finished")
		return err
	case <-ctx.Done():
		log.Info().Str("func", "App.run").Msg("stop signal received")
	}

	// the UI may be blocked on a read that cancellation cannot interrupt
	select {
	case err := <-done:
		return err
	case <-time.After(a.shutdownGrace):
		log.Warn().Str("func", "App.run").Msg("ui did not return in time, leaving")
		return nil
	}
}

func (a *App) closeStorages(log *logger.Logger) {
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		log.Err(err).Str("func", "App.closeStorages").Msg("error closing storages")
	}
}
