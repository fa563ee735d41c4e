package config

import "time"

const (
	// DefaultHTTPAddress is the backend address used when none is configured.
	DefaultHTTPAddress = "http://localhost:8000"
	// DefaultPollInterval is the period of the poll timer.
	DefaultPollInterval = 3 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
		Workers: Workers{
			PollInterval: DefaultPollInterval,
		},
	}
}
