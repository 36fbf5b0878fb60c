package app

import "strings"

// maxMessageRunes bounds what gets sent upstream; longer messages are
// silently truncated, not rejected.
const maxMessageRunes = 1000

// validate checks the raw request fields in the order the contract
// fixes: message presence, session presence, then emptiness after
// trimming. A raw "" message fails the presence check, so it reports
// "required" rather than "empty".
func validate(input SendInput) (message, sessionID string, err error) {
	rawMessage, ok := input.Message.(string)
	if !ok || rawMessage == "" {
		return "", "", ErrMessageRequired
	}

	rawSession, ok := input.SessionID.(string)
	if !ok || rawSession == "" {
		return "", "", ErrSessionRequired
	}

	trimmed := strings.TrimSpace(rawMessage)
	if runes := []rune(trimmed); len(runes) > maxMessageRunes {
		trimmed = string(runes[:maxMessageRunes])
	}
	if trimmed == "" {
		return "", "", ErrMessageEmpty
	}

	return trimmed, rawSession, nil
}
