package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the client log destination; empty means next to the binary.
	LogFile string
}

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base address.
	HTTPAddress string
	// RequestTimeout is the per-request timeout; zero means none.
	RequestTimeout time.Duration
	// DisablePush disables the live push subscription.
	DisablePush bool
}

// ClientWorkers contains the poll timer settings.
type ClientWorkers struct {
	// PollInterval defines how often the counter value is pulled.
	PollInterval time.Duration
	// DiscardStale enables the stale-response guard.
	DiscardStale bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			DisablePush:    cfg.Adapter.DisablePush,
		},
		Workers: ClientWorkers{
			PollInterval: cfg.Workers.PollInterval,
			DiscardStale: cfg.Workers.DiscardStale,
		},
	}

	return clientCfg, clientCfg.validate()
}
