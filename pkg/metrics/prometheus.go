// Package metrics provides Prometheus metrics for the match tracker.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the tracker's Prometheus collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	pollCycles        *prometheus.CounterVec
	pollCycleDuration prometheus.Histogram
	lastCycleUnix     prometheus.Gauge

	riotRequests *prometheus.CounterVec

	notificationsSent   prometheus.Counter
	notificationErrors  prometheus.Counter
	markerWriteFailures prometheus.Counter
	commandsHandled     *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton used by the Record* helpers

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a manager on its own registry unless one is supplied.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "karltracker",
		subsystem:        "tracker",
		histogramBuckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.pollCycles = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "poll_cycles_total",
		Help:      "Poll cycles by outcome",
	}, []string{"outcome"})

	m.pollCycleDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "poll_cycle_duration_seconds",
		Help:      "Wall time of a poll cycle",
		Buckets:   m.histogramBuckets,
	})

	m.lastCycleUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_poll_cycle_timestamp_seconds",
		Help:      "Unix time the last poll cycle finished",
	})

	m.riotRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "riot_requests_total",
		Help:      "Riot API requests by endpoint, HTTP status and result",
	}, []string{"endpoint", "status_code", "result"})

	m.notificationsSent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notifications_sent_total",
		Help:      "Match notifications delivered to the chat channel",
	})

	m.notificationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notification_errors_total",
		Help:      "Match notifications that failed to send",
	})

	m.markerWriteFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "marker_write_failures_total",
		Help:      "Failed writes of the last notified match marker",
	})

	m.commandsHandled = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "commands_handled_total",
		Help:      "Slash commands answered by name",
	}, []string{"command"})
}

// Registry returns the registry this manager's collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Manager) RecordPollCycle(outcome string, duration time.Duration) {
	m.pollCycles.WithLabelValues(outcome).Inc()
	m.pollCycleDuration.Observe(duration.Seconds())
	m.lastCycleUnix.SetToCurrentTime()
}

func (m *Manager) RecordRiotRequest(endpoint string, statusCode int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.riotRequests.WithLabelValues(endpoint, strconv.Itoa(statusCode), result).Inc()
}

func (m *Manager) RecordNotification(err error) {
	if err != nil {
		m.notificationErrors.Inc()
		return
	}
	m.notificationsSent.Inc()
}

func (m *Manager) RecordMarkerWriteFailure() {
	m.markerWriteFailures.Inc()
}

func (m *Manager) RecordCommand(name string) {
	m.commandsHandled.WithLabelValues(name).Inc()
}

// Default returns the process-wide manager.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the registry of the process-wide manager.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}
