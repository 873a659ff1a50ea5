// Command deploy registers the bot's slash commands without joining the gateway.
package main

import (
	"os"

	"karltracker/internal/delivery/discord"
	"karltracker/pkg/config"
	"karltracker/pkg/logger"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.DeployConfig{}
	if err := config.ReadDeployConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Error("failed to create discord session", "error", err)
		os.Exit(1)
	}

	appID := cfg.ClientID
	if appID == "" {
		app, err := session.Application("@me")
		if err != nil {
			log.Error("failed to look up application id", "error", err)
			os.Exit(1)
		}
		appID = app.ID
	}

	log.Info("Started refreshing application (/) commands.", "guild_id", cfg.GuildID)
	created, err := discord.RegisterCommands(session, appID, cfg.GuildID)
	if err != nil {
		log.Error("failed to register commands", "error", err)
		os.Exit(1)
	}
	log.Info("Successfully reloaded application (/) commands.", "count", len(created))
}
