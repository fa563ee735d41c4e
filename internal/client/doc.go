// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the counter client's background sources
// (initial read, push subscription, poll timer) into a single process
// lifecycle.
package client
