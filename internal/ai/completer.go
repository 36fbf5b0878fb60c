package ai

import (
	"context"
	"errors"
)

// Roles at the Completer boundary. "model" mirrors the role name the
// history rows map to when replayed upstream.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior exchange half in provider-neutral shape. Handlers
// and the history store never see provider wire formats.
type Turn struct {
	Role string
	Text string
}

// Completer produces the AI reply for one visitor message. A single
// upstream call is made per message; transient failures are reported,
// not retried.
type Completer interface {
	Complete(ctx context.Context, message string, history []Turn) (string, error)
}

// The three user-facing completion failure categories. Handlers map
// these to response text; raw provider detail never reaches clients.
var (
	ErrMissingCredential   = errors.New("completion credential missing or invalid")
	ErrQuotaExceeded       = errors.New("completion quota exceeded")
	ErrUpstreamUnavailable = errors.New("completion provider unavailable")
)
