package application

import (
	"context"
	"time"

	"karltracker/internal/repository"
	"karltracker/pkg/riot"

	"github.com/google/uuid"
)

type TrackerServiceImpl struct {
	riotID    string
	client    riot.Client
	marker    repository.Marker
	notifier  Notifier
	formatter *Formatter
	recorder  Recorder
	logger    Logger
}

type TrackerOption func(*TrackerServiceImpl)

func WithFormatter(f *Formatter) TrackerOption {
	return func(s *TrackerServiceImpl) {
		if f != nil {
			s.formatter = f
		}
	}
}

func WithRecorder(r Recorder) TrackerOption {
	return func(s *TrackerServiceImpl) {
		s.recorder = r
	}
}

func NewTrackerServiceImpl(riotID string, client riot.Client, marker repository.Marker, notifier Notifier, logger Logger, opts ...TrackerOption) *TrackerServiceImpl {
	s := &TrackerServiceImpl{
		riotID:    riotID,
		client:    client,
		marker:    marker,
		notifier:  notifier,
		formatter: NewFormatter(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckForMatch runs one poll cycle. Every failure ends the cycle early and is
// reported through the returned outcome; none of them is fatal.
func (s *TrackerServiceImpl) CheckForMatch(ctx context.Context) CycleOutcome {
	start := time.Now()
	log := withArgs(s.logger, "cycle_id", uuid.NewString())

	outcome := s.checkForMatch(ctx, log)
	if s.recorder != nil {
		s.recorder.RecordPollCycle(string(outcome), time.Since(start))
	}
	log.Debug("poll cycle finished", "outcome", string(outcome), "took", time.Since(start).String())
	return outcome
}

func (s *TrackerServiceImpl) checkForMatch(ctx context.Context, log Logger) CycleOutcome {
	puuid, err := s.client.ResolvePlayerID(ctx, s.riotID)
	if err != nil {
		log.Error("failed to resolve player", "riot_id", s.riotID, "error", err)
		return OutcomePlayerUnresolved
	}

	matchID, err := s.client.MostRecentMatch(ctx, puuid)
	if err != nil {
		log.Error("no match history", "puuid", puuid, "error", err)
		return OutcomeNoHistory
	}

	cached, err := s.marker.Get(ctx)
	if err != nil {
		log.Warn("failed to read last match marker, assuming none", "error", err)
		cached = ""
	}

	if matchID == cached {
		return OutcomeNoChange
	}

	// The marker moves before anything else can fail, so a match is announced at most once.
	if err := s.marker.Set(ctx, matchID); err != nil {
		log.Error("failed to save last match marker", "match_id", matchID, "error", err)
		if s.recorder != nil {
			s.recorder.RecordMarkerWriteFailure()
		}
	}

	info, err := s.client.MatchDetail(ctx, matchID)
	if err != nil {
		log.Error("failed to fetch match details", "match_id", matchID, "error", err)
		return OutcomeDetailUnavailable
	}

	kda, ok := info.KDAFor(puuid)
	if !ok {
		log.Error("tracked player missing from match", "match_id", matchID, "puuid", puuid)
		return OutcomeParticipantMissing
	}
	win := info.IsWinFor(puuid)

	rank, err := s.client.RankedStanding(ctx, puuid)
	if err != nil {
		log.Warn("failed to fetch ranked standing", "puuid", puuid, "error", err)
		rank = unknownRank
	}

	message := s.formatter.Format(s.riotID, info, kda, win, rank)

	err = s.notifier.Notify(ctx, message)
	if s.recorder != nil {
		s.recorder.RecordNotification(err)
	}
	if err != nil {
		log.Error("failed to send match notification", "match_id", matchID, "error", err)
		return OutcomeNotifyFailed
	}

	log.Info("match notification sent", "match_id", matchID, "win", win)
	return OutcomeNotified
}
