package app

import (
	"context"
	"errors"

	"github.com/roninc32/smart-portfolio/internal/ai"
	"github.com/roninc32/smart-portfolio/internal/history"
	"github.com/roninc32/smart-portfolio/internal/model"
)

var (
	ErrMessageRequired = errors.New("Message is required")
	ErrSessionRequired = errors.New("Session ID is required")
	ErrMessageEmpty    = errors.New("Message cannot be empty")
)

// historyLimit is how many prior turns are replayed to the provider.
const historyLimit = 10

// ChatService runs one visitor message through the pipeline:
// validate, fetch history, persist the user turn, complete, persist
// the AI turn. History calls are best-effort and never abort the
// pipeline; only validation and completion failures surface.
type ChatService struct {
	store     history.Store
	completer ai.Completer
}

// SendInput carries the raw decoded request fields. They stay untyped
// until validation so a number or object in either field is rejected
// the same way a missing one is.
type SendInput struct {
	Message   any
	SessionID any
}

type SendResult struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

// TranscriptResult is the history endpoint payload. Note carries the
// advisory text when no persistence backend answered.
type TranscriptResult struct {
	Messages []model.ChatMessage
	Note     string
}

func NewChatService(store history.Store, completer ai.Completer) *ChatService {
	return &ChatService{
		store:     store,
		completer: completer,
	}
}

func (s *ChatService) Send(ctx context.Context, input SendInput) (*SendResult, error) {
	message, sessionID, err := validate(input)
	if err != nil {
		return nil, err
	}

	recent := s.store.Recent(ctx, sessionID, historyLimit)
	turns := toTurns(recent)

	// The user turn is recorded before the upstream call, so a failed
	// completion can leave an unanswered turn behind. Accepted: there
	// is no transaction spanning the store and the provider.
	s.store.Append(ctx, sessionID, message, model.SenderUser)

	reply, err := s.completer.Complete(ctx, message, turns)
	if err != nil {
		return nil, err
	}

	s.store.Append(ctx, sessionID, reply, model.SenderAI)

	return &SendResult{
		Response:  reply,
		SessionID: sessionID,
	}, nil
}

func (s *ChatService) Transcript(ctx context.Context, sessionID string) *TranscriptResult {
	messages, available := s.store.Transcript(ctx, sessionID)
	result := &TranscriptResult{Messages: messages}
	if !available {
		result.Note = "Database not available"
	}
	return result
}

func toTurns(messages []model.ChatMessage) []ai.Turn {
	turns := make([]ai.Turn, 0, len(messages))
	for _, msg := range messages {
		role := ai.RoleModel
		if msg.Sender == model.SenderUser {
			role = ai.RoleUser
		}
		turns = append(turns, ai.Turn{Role: role, Text: msg.Content})
	}
	return turns
}
