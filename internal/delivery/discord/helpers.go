package discord

// truncateMessage keeps content within Discord's message limit, cutting on a
// rune boundary.
func truncateMessage(content string) string {
	runes := []rune(content)
	if len(runes) <= maxMessageLength {
		return content
	}
	return string(runes[:maxMessageTruncation]) + "…"
}

// commandReply returns the fixed reply for a slash command.
func commandReply(name string) (string, bool) {
	switch name {
	case commandPing:
		return pongReply, true
	default:
		return "", false
	}
}
