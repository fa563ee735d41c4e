// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package push implements the client side of the backend's live push
// channel: a WebSocket connection on which the server sends unsolicited
// counter updates.
//
// A [Subscriber] dials the channel and returns a [Subscription]. Frames are
// delivered to a [Handler] from a single read goroutine, in arrival order.
// The package never reconnects: once the channel is closed the subscription
// is finished and [Handler.OnClose] has been called exactly once.
package push

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/push_mock.go -package=mock

// Handler receives events of a single subscription.
type Handler interface {
	// OnMessage is called with the raw payload of every data frame.
	OnMessage(data []byte)
	// OnClose is called once when the channel is gone. err is nil for a
	// normal closure (including one started by Subscription.Close).
	OnClose(err error)
}

// Subscription is a live push channel handle.
type Subscription interface {
	// Close releases the connection. Safe to call more than once.
	Close() error
	// Done is closed after the read goroutine has exited and OnClose has
	// returned.
	Done() <-chan struct{}
}

// Subscriber opens push subscriptions.
type Subscriber interface {
	// Subscribe dials url and starts delivering frames to h. Returns an
	// error if the channel cannot be established; h is never called in
	// that case.
	Subscribe(ctx context.Context, url string, h Handler) (Subscription, error)
}

// Conn is the subset of a WebSocket connection the subscription needs.
// *websocket.Conn satisfies it.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}
