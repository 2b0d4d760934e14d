package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/config"
	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/internal/workers"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type App struct {
	services *service.ClientServices
	prober   Prober
	ui       Watcher

	// state is the result of the startup probe.
	state connectivity.State

	workers   config.ClientWorkers
	location  *time.Location
	buildInfo models.AppBuildInfo

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, prober Prober, ui Watcher, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || prober == nil {
		return nil, errors.New("client app: services and prober are required")
	}
	if cfg == nil {
		return nil, errors.New("client app: config is required")
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	return &App{
		services:  services,
		prober:    prober,
		ui:        ui,
		workers:   cfg.Workers,
		location:  location,
		buildInfo: buildInfo,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logger,
	}, nil
}

// SetOutput redirects command output. Used by tests.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
}

// Run restores the persisted session, seeds the connectivity state from
// one probe and executes args.
func (a *App) Run(ctx context.Context, args []string) error {
	if _, err := a.services.AuthService.RestoreSession(ctx); err != nil && !errors.Is(err, service.ErrNotSignedIn) {
		return fmt.Errorf("restore session: %w", err)
	}
	a.state = a.probe(ctx)

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	return root.ExecuteContext(ctx)
}

// probe refreshes the connectivity state.
func (a *App) probe(ctx context.Context) connectivity.State {
	state := a.prober.Probe(ctx)
	a.logger.Debug().Str("func", "App.probe").Stringer("state", state).Msg("connectivity probed")
	return state
}

// watch opens the status view with the sync job and the prober running
// behind it. The job subscribes before the prober starts, so no transition
// it reports is missed. Both stop when the view closes.
func (a *App) watch(ctx context.Context) error {
	if a.ui == nil {
		return errors.New("watch view is not available")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	background := workers.NewWorkers(a.prober)

	done := make(chan error, 1)
	go func() { done <- background.Run(ctx) }()

	err := a.ui.Watch(ctx)
	cancel()

	if werr := <-done; werr != nil {
		a.logger.Err(werr).Str("func", "App.watch").Msg("background workers failed")
	}
	return err
}
