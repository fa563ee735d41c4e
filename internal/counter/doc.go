// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package counter implements the counter client core: it keeps a local
// [models.DisplayState] approximately in sync with the remote counter and
// turns user actions into remote mutations.
//
// The state has two independent sources. The pull source reads the value
// once on [Client.Start] and then on every tick of the poll timer. The
// optional push source is a live channel on which the backend announces
// new values. Whichever source reports last wins; by default there is no
// ordering between them, so a slow response to an older request may
// overwrite a newer value. [Options.DiscardStale] enables a sequence-number
// guard that drops such responses instead.
//
// Errors never stop the client. The latest failure replaces the previous
// message in DisplayState.Err; malformed push frames and push-channel setup
// failures are only logged.
package counter
