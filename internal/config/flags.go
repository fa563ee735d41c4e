package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BaseAddress holds the backend base address given on the command line.
// It implements the flag.Value interface.
type BaseAddress struct {
	Scheme string
	Host   string
	Port   int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a backend address in format [scheme://]host:port
//	-request-timeout request timeout (e.g., "5s", "1m")
//	-no-push disable the live push subscription
//	-poll-interval poll timer period (e.g., "3s")
//	-discard-stale drop responses older than the last applied one
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var address BaseAddress
	var requestTimeout time.Duration
	var disablePush bool
	var pollInterval time.Duration
	var discardStale bool
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("counter-client", flag.ContinueOnError)
	fs.Var(&address, "a", "Backend address [scheme://]host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.BoolVar(&disablePush, "no-push", false, "Disable the live push subscription")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval (e.g., 3s)")
	fs.BoolVar(&discardStale, "discard-stale", false, "Discard responses older than the last applied one")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
			DisablePush:    disablePush,
		},
		Workers: Workers{
			PollInterval: pollInterval,
			DiscardStale: discardStale,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the canonical scheme://host:port form of the address,
// or an empty string if nothing was set.
func (a *BaseAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	scheme := a.Scheme
	if scheme == "" {
		scheme = "http"
	}

	return scheme + "://" + net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port" or "http(s)://host:port". The scheme defaults to
// http and the port must be a positive integer.
func (a *BaseAddress) Set(s string) error {
	raw := strings.TrimSpace(s)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("scheme must be http or https")
	}

	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}
	if host == "" {
		return errors.New("host must not be empty")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	a.Scheme = u.Scheme
	a.Host = host
	a.Port = port
	return nil
}
