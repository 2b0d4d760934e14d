package connectivity

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
)

// Pinger checks that the remote API answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober drives a Monitor from periodic pings.
type Prober struct {
	monitor  *Monitor
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger
}

// NewProber returns a prober pinging every interval. Each ping is bounded by
// timeout; a non-positive timeout means the interval.
func NewProber(monitor *Monitor, pinger Pinger, interval, timeout time.Duration, log *logger.Logger) *Prober {
	if timeout <= 0 {
		timeout = interval
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Prober{
		monitor:  monitor,
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		logger:   log,
	}
}

// Probe pings once and records the outcome. A ping cut short by the
// caller's cancellation leaves the state unchanged.
func (p *Prober) Probe(ctx context.Context) State {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.pinger.Ping(pingCtx)
	if err != nil && ctx.Err() != nil {
		return p.monitor.State()
	}
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "Prober.Probe").Msg("remote API unreachable")
		p.monitor.Set(Offline)
		return Offline
	}

	p.monitor.Set(Online)
	return Online
}

// Run probes immediately and then every interval until ctx is cancelled.
func (p *Prober) Run(ctx context.Context) error {
	p.Probe(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.Probe(ctx)
		}
	}
}
