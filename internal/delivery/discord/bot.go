package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"karltracker/internal/application"
	"karltracker/pkg/config"

	"github.com/bwmarrin/discordgo"
)

var ErrNoChannel = errors.New("no notification channel configured")

type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// CommandRecorder counts answered commands. Optional.
type CommandRecorder interface {
	RecordCommand(name string)
}

type Bot struct {
	session *discordgo.Session
	sender  messageSender
	logger  application.Logger
	metrics CommandRecorder

	channelID string
	appID     string
	guildID   string

	ready     chan struct{}
	readyOnce sync.Once
}

func NewBot(cfg *config.Config, logger application.Logger, metrics CommandRecorder) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return &Bot{
		session:   s,
		sender:    s,
		logger:    logger,
		metrics:   metrics,
		channelID: cfg.ChannelID,
		appID:     cfg.ClientID,
		guildID:   cfg.GuildID,
		ready:     make(chan struct{}),
	}, nil
}

// Ready is closed once the gateway session is established.
func (b *Bot) Ready() <-chan struct{} {
	return b.ready
}

func (b *Bot) Init() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteraction)
	return nil
}

func (b *Bot) Run(_ context.Context) {
	if err := b.session.Open(); err != nil {
		b.logger.Error("failed to open discord session", "error", err)
		return
	}

	appID := b.appID
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}

	b.logger.Info("Discord Bot Started. Registering slash commands...")
	if _, err := RegisterCommands(b.session, appID, b.guildID); err != nil {
		b.logger.Error("failed to register commands", "error", err)
	} else {
		b.logger.Info("Slash commands registered successfully", "guild_id", b.guildID)
	}
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		b.logger.Warn("failed to close discord session", "error", err)
	}
}

// Notify posts a message to the configured channel.
func (b *Bot) Notify(ctx context.Context, message string) error {
	if b.channelID == "" {
		return ErrNoChannel
	}
	if _, err := b.sender.ChannelMessageSend(b.channelID, truncateMessage(message), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send to channel %s: %w", b.channelID, err)
	}
	return nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.readyOnce.Do(func() {
		username := ""
		if r != nil && r.User != nil {
			username = r.User.Username
		}
		b.logger.Info("Bot is online!", "user", username)
		close(b.ready)
	})
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handleInteraction(s, i.Interaction)
}

func (b *Bot) handleInteraction(s interactionResponder, i *discordgo.Interaction) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	defer b.recoverHandler(name)

	reply, ok := commandReply(name)
	if !ok {
		b.logger.Debug("ignoring unknown command", "command", name)
		return
	}

	b.respondMessage(s, i, reply)
	if b.metrics != nil {
		b.metrics.RecordCommand(name)
	}
}
