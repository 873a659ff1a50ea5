package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type commandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Commands lists every slash command the bot answers.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: commandPing, Description: "Replies with Pong!"},
	}
}

// RegisterCommands replaces the application's commands. An empty guildID
// registers them globally.
func RegisterCommands(s commandRegistrar, appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
	if appID == "" {
		return nil, fmt.Errorf("register commands: empty application id")
	}
	created, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return nil, fmt.Errorf("register commands: %w", err)
	}
	return created, nil
}
