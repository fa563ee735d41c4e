// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] is usable. Field-level
// rules live in [ClientConfig.validate]; the merged config only has to be
// free of negative durations.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Workers.PollInterval < 0 {
		return fmt.Errorf("%w: negative poll interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	address := strings.TrimSpace(cfg.Adapter.HTTPAddress)
	if address == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAdapterConfigs)
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	u, err := url.Parse(address)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: cannot parse address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAdapterConfigs, u.Scheme)
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
