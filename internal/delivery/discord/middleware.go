package discord

import (
	"github.com/bwmarrin/discordgo"
)

type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

func (b *Bot) respondMessage(s interactionResponder, i *discordgo.Interaction, msg string) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
		},
	})
	if err != nil {
		b.logger.Error("failed to respond to interaction", "interaction_id", i.ID, "error", err)
	}
}

// recoverHandler keeps a panicking handler from taking down the gateway loop.
func (b *Bot) recoverHandler(name string) {
	if r := recover(); r != nil {
		b.logger.Error("interaction handler panicked", "command", name, "panic", r)
	}
}
