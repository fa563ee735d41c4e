// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Counter is the body of every successful counter endpoint response:
//
//	GET  /counter        -> {"value": 5}
//	POST /counter/{op}   -> {"value": 6}
type Counter struct {
	// Value is the server-side counter value at the time of the response.
	Value int64 `json:"value"`
}

// Action is a remote counter mutation. The set is closed: only the
// constants below are accepted by the backend.
type Action string

const (
	// ActionIncr increments the counter by one.
	ActionIncr Action = "incr"
	// ActionDecr decrements the counter by one.
	ActionDecr Action = "decr"
	// ActionReset sets the counter back to zero.
	ActionReset Action = "reset"
)

// Actions lists every supported [Action] in display order.
var Actions = []Action{ActionIncr, ActionDecr, ActionReset}

// Valid reports whether a is one of the supported actions.
func (a Action) Valid() bool {
	switch a {
	case ActionIncr, ActionDecr, ActionReset:
		return true
	default:
		return false
	}
}

// String returns the action as it appears in the request path.
func (a Action) String() string {
	return string(a)
}
