package discord

const (
	commandPing = "ping"
	pongReply   = "Pong!"

	// Discord rejects longer message content.
	maxMessageLength     = 2000
	maxMessageTruncation = 1990
)
