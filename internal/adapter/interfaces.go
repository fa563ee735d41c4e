// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the counter client
// and the remote counter backend.
//
// The primary abstraction is [CounterAdapter], which decouples the core from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPCounterAdapter]) built on resty.
//
// Non-2xx responses are returned as [*StatusError] wrapping
// [ErrUnexpectedStatus], so callers can use [errors.As] to get the status code
// and the response body text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-counter-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/counter_adapter_mock.go -package=mock

// CounterAdapter defines transport-agnostic access to the remote counter.
type CounterAdapter interface {
	// Get reads the current counter value (GET /counter).
	Get(ctx context.Context) (models.Counter, error)

	// Apply performs a counter mutation (POST /counter/{action}) and returns
	// the value reported by the backend afterwards. Returns
	// [ErrUnknownAction] without sending anything if action is not one of
	// the supported actions.
	Apply(ctx context.Context, action models.Action) (models.Counter, error)

	// PushURL returns the address of the live push channel derived from the
	// backend base address.
	PushURL() string
}
