package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
	"github.com/MKhiriev/go-ticket-keeper/internal/service"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// refreshInterval paces the queue-depth poll.
const refreshInterval = time.Second

// watchModel is the live status view: connectivity, the syncing flag, queue
// depth and the outcome of the last sync or download.
type watchModel struct {
	ctx context.Context

	syncService     service.ClientSyncService
	snapshotService service.ClientSnapshotService
	queueService    service.ClientQueueService
	transitions     <-chan connectivity.Transition

	online   bool
	syncing  bool
	running  string
	counts   models.PendingCounts
	lastSync time.Time

	lastResult   *models.SyncResult
	lastDownload *models.DownloadResult
	status       string
	err          error

	spinner       syncModel
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func newWatchModel(ctx context.Context, services *service.ClientServices, monitor service.ConnectivityStatus, transitions <-chan connectivity.Transition, buildInfo models.AppBuildInfo) watchModel {
	m := watchModel{
		ctx:             ctx,
		syncService:     services.SyncService,
		snapshotService: services.SnapshotService,
		queueService:    services.QueueService,
		transitions:     transitions,
		online:          monitor.IsOnline(),
		spinner:         newSyncModel(),
		buildInfo:       buildInfo,
	}
	if result, ok := services.SyncService.LastResult(); ok {
		m.lastResult = &result
	}
	return m
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.spinner.Tick,
		m.cmdWaitTransition(),
		m.cmdRefresh(),
	)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case transitionMsg:
		if msg.closed {
			return m, nil
		}
		m.online = msg.transition.To == connectivity.Online
		// the sync job reacts to reconnects; the view only refreshes
		return m, tea.Batch(m.cmdWaitTransition(), m.cmdRefresh())

	case refreshMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.counts = msg.counts
			m.lastSync = msg.lastSync
		}
		// a sync started by the background job also shows as syncing
		if m.running == "" {
			m.syncing = msg.syncing
		}
		return m, tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshTickMsg{} })

	case refreshTickMsg:
		return m, m.cmdRefresh()

	case syncDoneMsg:
		m.running = ""
		m.syncing = false
		m.lastResult = &msg.result
		m.status = msg.result.Message
		m.err = nil
		if msg.err != nil {
			m.status = humanizeServerUnavailableError(msg.err)
		}
		return m, m.cmdRefresh()

	case downloadDoneMsg:
		m.running = ""
		m.syncing = false
		m.lastDownload = &msg.result
		m.status = msg.result.Message
		m.err = nil
		if msg.err != nil {
			m.status = humanizeServerUnavailableError(msg.err)
		}
		return m, m.cmdRefresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner.spinner, cmd = m.spinner.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.sync):
		if m.running != "" {
			return m, nil
		}
		m.running = "Syncing..."
		m.syncing = true
		m.status = ""
		return m, m.cmdSync()
	case key.Matches(msg, keys.download):
		if m.running != "" {
			return m, nil
		}
		m.running = "Downloading events..."
		m.syncing = true
		m.status = ""
		return m, m.cmdDownload()
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	connection := offlineStyle.Render("OFFLINE")
	if m.online {
		connection = onlineStyle.Render("ONLINE")
	}
	fmt.Fprintf(&b, "Connection:   %s\n", connection)

	if m.syncing {
		m.spinner.label = m.running
		fmt.Fprintf(&b, "Sync:         %s\n", m.spinner.View())
	} else {
		b.WriteString("Sync:         idle\n")
	}
	fmt.Fprintf(&b, "Last sync:    %s\n", formatTime(m.lastSync))

	b.WriteString("\n")
	fmt.Fprintf(&b, "Pending check-ins:      %d\n", m.counts.Checkins)
	fmt.Fprintf(&b, "Pending registrations:  %d\n", m.counts.Registrations)
	fmt.Fprintf(&b, "Pending validations:    %d\n", m.counts.Validations)

	if m.lastResult != nil {
		b.WriteString("\n")
		b.WriteString(renderSyncResult(*m.lastResult))
	}
	if m.lastDownload != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Last download: %s (%d events, %d participants)\n",
			m.lastDownload.Message, m.lastDownload.Events, m.lastDownload.Participants)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(humanizeServerUnavailableError(m.err)))
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage("TICKET KEEPER", b.String(), "s: sync  d: download  v: about"))
}

// maxShownErrors caps the per-item errors listed under the last result.
const maxShownErrors = 5

func renderSyncResult(r models.SyncResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Last result:  %s\n", r.Message)
	fmt.Fprintf(&b, "  check-ins %d, registrations %d, validations %d, tickets %d\n",
		r.Checkins, r.Registrations, r.Validations, r.TicketsRefreshed)

	for i, e := range r.Errors {
		if i == maxShownErrors {
			fmt.Fprintf(&b, "  ... and %d more\n", len(r.Errors)-maxShownErrors)
			break
		}
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(fitText(e.String(), 70)))
		b.WriteString("\n")
	}

	return b.String()
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m watchModel) cmdWaitTransition() tea.Cmd {
	ch := m.transitions
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-ch
		return transitionMsg{transition: t, closed: !ok}
	}
}

func (m watchModel) cmdRefresh() tea.Cmd {
	ctx, syncSvc, queueSvc := m.ctx, m.syncService, m.queueService
	return func() tea.Msg {
		counts, err := queueSvc.PendingCounts(ctx)
		if err != nil {
			return refreshMsg{err: err, syncing: syncSvc.IsSyncing()}
		}
		lastSync, err := syncSvc.LastSyncTime(ctx)
		return refreshMsg{counts: counts, lastSync: lastSync, syncing: syncSvc.IsSyncing(), err: err}
	}
}

func (m watchModel) cmdSync() tea.Cmd {
	ctx, syncSvc := m.ctx, m.syncService
	return func() tea.Msg {
		result, err := syncSvc.Sync(ctx)
		return syncDoneMsg{result: result, err: err}
	}
}

func (m watchModel) cmdDownload() tea.Cmd {
	ctx, snapshots := m.ctx, m.snapshotService
	return func() tea.Msg {
		result, err := snapshots.DownloadAllData(ctx)
		return downloadDoneMsg{result: result, err: err}
	}
}
