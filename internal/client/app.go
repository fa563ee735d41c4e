package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-counter-client/internal/logger"
)

type App struct {
	counter CounterRuntime
	ui      UI
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(counter CounterRuntime, ui UI, log *logger.Logger) (*App, error) {
	if counter == nil || ui == nil {
		return nil, errors.New("client app: counter and ui are required")
	}

	return &App{
		counter: counter,
		ui:      ui,
		logger:  log.WithComponent("app"),
	}, nil
}

// Run starts the counter sources, shows the UI until the user quits and then
// tears the sources down. Requests already in flight are not waited for. The
// app logger is attached to the context passed to the UI.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.counter.Start(ctx)
	a.logger.Info().Msg("counter client started")

	defer func() {
		a.counter.Stop()
		if err := a.counter.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("close push subscription")
		}
		a.logger.Info().Msg("counter client stopped")
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
