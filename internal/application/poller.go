package application

import (
	"context"
	"sync"
	"time"
)

const DefaultPollInterval = 60 * time.Second

// Poller drives TrackerService on a fixed interval. It implements the
// service manager's Service interface.
type Poller struct {
	tracker  TrackerService
	interval time.Duration
	ready    <-chan struct{}
	logger   Logger

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewPoller builds a poller that starts after ready is closed. A nil ready
// channel starts immediately.
func NewPoller(tracker TrackerService, interval time.Duration, ready <-chan struct{}, logger Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		tracker:  tracker,
		interval: interval,
		ready:    ready,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (p *Poller) Init() error {
	return nil
}

func (p *Poller) Run(ctx context.Context) {
	defer close(p.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-p.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	if p.ready != nil {
		select {
		case <-p.ready:
		case <-ctx.Done():
			return
		}
	}

	p.logger.Info("poller started", "interval", p.interval.String())
	p.tracker.CheckForMatch(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return
		case <-ticker.C:
			p.tracker.CheckForMatch(ctx)
		}
	}
}

// Stop cancels the in-flight cycle and waits for Run to return. It must only
// be called after Run was started.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}
