package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend settings
	// (for example, an empty or unparsable address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid poll timer settings
	// (for example, a zero or negative poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
