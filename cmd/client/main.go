package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-counter-client/internal/adapter"
	"github.com/MKhiriev/go-counter-client/internal/client"
	"github.com/MKhiriev/go-counter-client/internal/config"
	"github.com/MKhiriev/go-counter-client/internal/counter"
	"github.com/MKhiriev/go-counter-client/internal/logger"
	"github.com/MKhiriev/go-counter-client/internal/push"
	"github.com/MKhiriev/go-counter-client/internal/tui"
	"github.com/MKhiriev/go-counter-client/internal/utils"
	"github.com/MKhiriev/go-counter-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("counter-client", cfg.App.LogFile)

	counterAdapter, err := adapter.NewHTTPCounterAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create counter adapter")
	}

	var subscriber push.Subscriber
	pushURL := ""
	if !cfg.Adapter.DisablePush {
		subscriber = push.NewWebSocketSubscriber(log)
		pushURL = counterAdapter.PushURL()
	}

	counterClient := counter.New(counterAdapter, subscriber, counter.Options{
		PollInterval: cfg.Workers.PollInterval,
		DisablePush:  cfg.Adapter.DisablePush,
		DiscardStale: cfg.Workers.DiscardStale,
	}, log)

	baseURL, err := utils.NormalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("normalize backend address")
	}

	ui := tui.New(counterClient, tui.Options{
		BaseURL:      baseURL,
		PushURL:      pushURL,
		PollInterval: cfg.Workers.PollInterval,
		BuildInfo:    buildInfo,
	})

	app, err := client.NewApp(counterClient, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
