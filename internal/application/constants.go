package application

type CycleOutcome string

const (
	OutcomePlayerUnresolved   CycleOutcome = "player_unresolved"
	OutcomeNoHistory          CycleOutcome = "no_history"
	OutcomeNoChange           CycleOutcome = "no_change"
	OutcomeDetailUnavailable  CycleOutcome = "detail_unavailable"
	OutcomeParticipantMissing CycleOutcome = "participant_missing"
	OutcomeNotified           CycleOutcome = "notified"
	OutcomeNotifyFailed       CycleOutcome = "notify_failed"
)

const (
	// Game mode labels
	classicGameMode = "CLASSIC"
	soloDuoLabel    = "SOLO/DUO"
	aramLabel       = "ARAM"

	// Result lines
	victoryText  = "Victory!"
	defeatText   = "Defeat..."
	victoryEmoji = "🥳🎉"
	defeatEmoji  = "😞"
	winClosing   = "Great job, keep it up!"

	unknownRank = "Unknown"

	secondsPerMinute = 60
)
