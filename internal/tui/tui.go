package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type TUI struct {
	services  *service.ClientServices
	monitor   service.ConnectivityObserver
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, monitor service.ConnectivityObserver, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		monitor:   monitor,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Watch runs the live status view until the user quits or ctx is done.
func (t *TUI) Watch(ctx context.Context) error {
	transitions, unsubscribe := t.monitor.Subscribe()
	defer unsubscribe()

	model := newWatchModel(ctx, t.services, t.monitor, transitions, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Watch").Msg("watch view failed")
		return err
	}
	return nil
}
