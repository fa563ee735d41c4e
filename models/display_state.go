// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// ValuePlaceholder is rendered instead of the counter value until the
// first successful observation.
const ValuePlaceholder = "—"

// DisplayState is the client's local view of the remote counter plus
// transient status flags. Values of this type are snapshots: mutating a
// copy never affects the owner's state.
type DisplayState struct {
	// Value is the last observed server value. Meaningful only when
	// HasValue is true.
	Value int64
	// HasValue is false until the first value is observed from either
	// the pull or the push source.
	HasValue bool
	// Loading is true while a mutation request is in flight.
	Loading bool
	// Err is the most recent error message, or empty when unset.
	Err string
}

// DisplayValue returns the value formatted for display, or
// [ValuePlaceholder] when no value has been observed yet.
func (s DisplayState) DisplayValue() string {
	if !s.HasValue {
		return ValuePlaceholder
	}
	return strconv.FormatInt(s.Value, 10)
}

// HasError reports whether an error message is set.
func (s DisplayState) HasError() bool {
	return s.Err != ""
}
