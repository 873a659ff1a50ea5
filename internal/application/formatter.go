package application

import (
	"fmt"
	"strings"

	"karltracker/internal/models"
)

// PhrasePicker chooses one closing phrase. It is only called for losses.
type PhrasePicker func(phrases []string) string

type Formatter struct {
	phrases []string
	pick    PhrasePicker
}

type FormatterOption func(*Formatter)

func WithPhrasePicker(pick PhrasePicker) FormatterOption {
	return func(f *Formatter) {
		if pick != nil {
			f.pick = pick
		}
	}
}

func WithPhrases(phrases []string) FormatterOption {
	return func(f *Formatter) {
		if len(phrases) > 0 {
			f.phrases = phrases
		}
	}
}

func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		phrases: LossPhrases,
		pick:    randomPhrase,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) Format(summonerName string, info *models.MatchInfo, kda models.KDA, win bool, rank string) string {
	result, emoji, closing := defeatText, defeatEmoji, ""
	if win {
		result, emoji, closing = victoryText, victoryEmoji, winClosing
	} else {
		closing = f.pick(f.phrases)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🎮 **Match Update** for %s!\n\n", summonerName)
	fmt.Fprintf(&sb, "🏆 **Result**: %s %s\n", result, emoji)
	fmt.Fprintf(&sb, "⏱️ **Game Duration**: %d minutes\n", durationMinutes(info.GameDuration))
	fmt.Fprintf(&sb, "🕹️ **Game Mode**: %s\n", gameModeLabel(info.GameMode))
	fmt.Fprintf(&sb, "💀 **KDA**: %d/%d/%d\n", kda.Kills, kda.Deaths, kda.Assists)
	fmt.Fprintf(&sb, "🏅 **Current Rank**: %s\n\n", rank)
	sb.WriteString(closing)

	return sb.String()
}
