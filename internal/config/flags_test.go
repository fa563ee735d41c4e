package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     BaseAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     BaseAddress{},
			expected: "",
		},
		{
			name:     "default scheme",
			addr:     BaseAddress{Host: "localhost", Port: 8000},
			expected: "http://localhost:8000",
		},
		{
			name:     "https",
			addr:     BaseAddress{Scheme: "https", Host: "10.0.0.1", Port: 443},
			expected: "https://10.0.0.1:443",
		},
		{
			name:     "ipv6 host",
			addr:     BaseAddress{Scheme: "http", Host: "::1", Port: 8000},
			expected: "http://[::1]:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestBaseAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr BaseAddress
	}{
		{
			name:         "host and port",
			input:        "localhost:8000",
			expectedAddr: BaseAddress{Scheme: "http", Host: "localhost", Port: 8000},
		},
		{
			name:         "full url",
			input:        "https://counter.example.com:8443",
			expectedAddr: BaseAddress{Scheme: "https", Host: "counter.example.com", Port: 8443},
		},
		{
			name:        "missing port",
			input:       "localhost",
			expectError: true,
		},
		{
			name:        "non numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://localhost:21",
			expectError: true,
		},
		{
			name:        "empty host",
			input:       ":8000",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr BaseAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8000",
		"-request-timeout", "5s",
		"-no-push",
		"-poll-interval", "2s",
		"-discard-stale",
		"-log-file", "/tmp/counter.log",
		"-c", "/etc/counter.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.DisablePush)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.True(t, cfg.Workers.DiscardStale)
	assert.Equal(t, "/tmp/counter.log", cfg.App.LogFile)
	assert.Equal(t, "/etc/counter.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/etc/counter.json"})

	require.NoError(t, err)
	assert.Equal(t, "/etc/counter.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs_ZeroConfig(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "no-port"})
	assert.Error(t, err)
}
