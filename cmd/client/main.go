package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/client"
	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/session"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/tui"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewClientLogger("ticket-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	holder := session.NewHolder()
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, holder, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	// replaced by the startup probe in App.Run
	monitor := connectivity.NewMonitor(connectivity.Offline, log)
	prober := connectivity.NewProber(monitor, serverAdapter, cfg.Workers.ProbeInterval, cfg.Adapter.RequestTimeout, log)

	services := service.NewClientServices(localStorage, serverAdapter, monitor, holder, log)
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	ui, err := tui.New(services, monitor, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, prober, ui, cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx, flag.Args())
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
