// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the counter in the terminal with bubbletea and turns
// key presses into counter client operations.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-counter-client/internal/counter"
	"github.com/MKhiriev/go-counter-client/internal/logger"
	"github.com/MKhiriev/go-counter-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// CounterClient is the part of [counter.Client] the UI drives.
type CounterClient interface {
	State() models.DisplayState
	PushConnected() bool
	Subscribe(fn counter.Listener) func()
	FetchValue(ctx context.Context)
	PostAction(ctx context.Context, action models.Action) error
}

var _ CounterClient = (*counter.Client)(nil)

// Options describes what the UI shows besides the counter state.
type Options struct {
	// BaseURL is the backend base URL printed in the endpoint help block.
	BaseURL string
	// PushURL is the push channel URL. Empty when push is disabled.
	PushURL      string
	PollInterval time.Duration
	BuildInfo    models.AppBuildInfo
}

type TUI struct {
	client CounterClient
	opts   Options
}

func New(client CounterClient, opts Options) *TUI {
	return &TUI{
		client: client,
		opts:   opts,
	}
}

// Run shows the counter screen and blocks until the user quits or ctx is
// cancelled. State changes of the client are forwarded to the program for
// the whole run. Logs go to the logger attached to ctx.
func (t *TUI) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithComponent("tui")

	model := newCounterModel(ctx, t.client, t.opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// The model re-reads the state on Init, after this listener is in place,
	// so no change between construction and subscription is missed.
	unsubscribe := t.client.Subscribe(func(state models.DisplayState) {
		p.Send(stateChangedMsg{state: state, live: t.client.PushConnected()})
	})
	defer unsubscribe()

	_, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Debug().Msg("ui stopped by context")
			return nil
		}
		return err
	}

	log.Debug().Msg("ui closed by user")
	return nil
}
