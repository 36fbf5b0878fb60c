// Package history is the best-effort boundary in front of the chat
// transcript table. Nothing here returns an error to callers: when the
// backing store is down, reads degrade to empty and writes to no-ops,
// and the chat pipeline keeps going. Failures are logged only.
package history

import (
	"context"

	"github.com/roninc32/smart-portfolio/internal/model"
)

// Store is what the chat orchestrator consumes. The method set
// deliberately exposes no errors; degradation is the contract.
type Store interface {
	// Recent returns up to limit turns of the session, oldest first.
	// Empty on any failure.
	Recent(ctx context.Context, sessionID string, limit int) []model.ChatMessage

	// Append records one turn. A failed append is dropped.
	Append(ctx context.Context, sessionID, content, sender string)

	// Transcript returns the whole session, oldest first, with a flag
	// reporting whether a backend answered at all.
	Transcript(ctx context.Context, sessionID string) ([]model.ChatMessage, bool)

	// Enabled reports whether a persistence backend is configured.
	Enabled() bool
}

// Noop serves deployments without DATABASE_URL: the chat runs with
// zero persisted state.
type Noop struct{}

func NewNoop() Noop {
	return Noop{}
}

func (Noop) Recent(context.Context, string, int) []model.ChatMessage {
	return nil
}

func (Noop) Append(context.Context, string, string, string) {}

func (Noop) Transcript(context.Context, string) ([]model.ChatMessage, bool) {
	return []model.ChatMessage{}, false
}

func (Noop) Enabled() bool {
	return false
}
