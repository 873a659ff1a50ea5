package application

import (
	"context"
	"time"

	"karltracker/internal/repository"
	"karltracker/pkg/riot"
)

type Logger interface {
	Error(msg string, v ...interface{})
	Warn(msg string, v ...interface{})
	Info(msg string, v ...interface{})
	Debug(msg string, v ...interface{})
}

// Notifier delivers a rendered match message to the chat channel.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Recorder receives poll loop measurements. A nil Recorder is allowed.
type Recorder interface {
	RecordPollCycle(outcome string, duration time.Duration)
	RecordNotification(err error)
	RecordMarkerWriteFailure()
}

type TrackerService interface {
	CheckForMatch(ctx context.Context) CycleOutcome
}

type Service struct {
	TrackerService TrackerService
}

func NewService(riotID string, client riot.Client, repos *repository.Repository, notifier Notifier, logger Logger, opts ...TrackerOption) *Service {
	return &Service{
		TrackerService: NewTrackerServiceImpl(riotID, client, repos.Marker, notifier, logger, opts...),
	}
}
