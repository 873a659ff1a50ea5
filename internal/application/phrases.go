package application

// LossPhrases closes the message after a defeat.
var LossPhrases = []string{
	"Maybe try a different champion next time?",
	"The enemy jungler sends their regards.",
	"Even the minions were doing more damage.",
	"Have you considered a career in ARAM?",
	"That was a bold strategy. It did not pay off.",
	"Ward more, feed less.",
	"Your team is writing a strongly worded letter.",
	"Somewhere, a bronze player is proud of you.",
	"Dodge next time, it's cheaper.",
	"At least the loading screen looked good.",
	"Gold is earned, not donated to the enemy carry.",
	"Surrender at 15 was an option, you know.",
}
