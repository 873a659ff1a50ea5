package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"karltracker/internal/models"
)

var errBoom = errors.New("boom")

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

// callLog records the order of side effects across fakes.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(c string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeRiot struct {
	log *callLog

	puuid     string
	puuidErr  error
	matchID   string
	matchErr  error
	detail    *models.MatchInfo
	detailErr error
	rank      string
	rankErr   error
}

func (f *fakeRiot) ResolvePlayerID(_ context.Context, riotID string) (string, error) {
	f.log.add("resolve:" + riotID)
	return f.puuid, f.puuidErr
}

func (f *fakeRiot) MostRecentMatch(_ context.Context, puuid string) (string, error) {
	f.log.add("latest:" + puuid)
	return f.matchID, f.matchErr
}

func (f *fakeRiot) MatchDetail(_ context.Context, matchID string) (*models.MatchInfo, error) {
	f.log.add("detail:" + matchID)
	return f.detail, f.detailErr
}

func (f *fakeRiot) RankedStanding(_ context.Context, puuid string) (string, error) {
	f.log.add("rank:" + puuid)
	return f.rank, f.rankErr
}

type fakeMarker struct {
	log    *callLog
	value  string
	getErr error
	setErr error
}

func (m *fakeMarker) Get(context.Context) (string, error) {
	m.log.add("marker.get")
	return m.value, m.getErr
}

func (m *fakeMarker) Set(_ context.Context, matchID string) error {
	m.log.add("marker.set:" + matchID)
	if m.setErr != nil {
		return m.setErr
	}
	m.value = matchID
	return nil
}

type fakeNotifier struct {
	log      *callLog
	err      error
	messages []string
}

func (n *fakeNotifier) Notify(_ context.Context, message string) error {
	n.log.add("notify")
	n.messages = append(n.messages, message)
	return n.err
}

type fakeRecorder struct {
	outcomes       []string
	notifyErrs     []error
	markerFailures int
}

func (r *fakeRecorder) RecordPollCycle(outcome string, _ time.Duration) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *fakeRecorder) RecordNotification(err error) {
	r.notifyErrs = append(r.notifyErrs, err)
}

func (r *fakeRecorder) RecordMarkerWriteFailure() {
	r.markerFailures++
}

type countingTracker struct {
	mu     sync.Mutex
	count  int
	called chan struct{}
}

func (t *countingTracker) CheckForMatch(ctx context.Context) CycleOutcome {
	t.mu.Lock()
	t.count++
	t.mu.Unlock()
	select {
	case t.called <- struct{}{}:
	default:
	}
	return OutcomeNoChange
}

func (t *countingTracker) calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}
