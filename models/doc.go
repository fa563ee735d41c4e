// Package models holds the data types shared between the transport,
// core and presentation layers of the counter client: wire payloads of
// the backend contract, the closed set of counter actions, and the
// display-state snapshot rendered by the TUI.
package models
