package tui

import "github.com/MKhiriev/go-counter-client/models"

// stateChangedMsg carries a snapshot published by the counter client.
type stateChangedMsg struct {
	state models.DisplayState
	live  bool
}

// syncStateMsg asks the model to read the client's current state.
type syncStateMsg struct{}

type actionDoneMsg struct {
	action models.Action
	err    error
}

type fetchDoneMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
