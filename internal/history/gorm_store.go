package history

import (
	"context"
	"log"
	"time"

	"github.com/roninc32/smart-portfolio/internal/model"
	"github.com/roninc32/smart-portfolio/internal/repository"
)

// GormStore persists turns through the chat repository, swallowing
// storage failures at this boundary.
type GormStore struct {
	repo *repository.ChatRepository
}

func NewGormStore(repo *repository.ChatRepository) *GormStore {
	return &GormStore{repo: repo}
}

func (s *GormStore) Recent(_ context.Context, sessionID string, limit int) []model.ChatMessage {
	messages, err := s.repo.ListRecent(sessionID, limit)
	if err != nil {
		log.Printf("could not fetch history: %v", err)
		return nil
	}
	return messages
}

func (s *GormStore) Append(_ context.Context, sessionID, content, sender string) {
	msg := &model.ChatMessage{
		SessionID: sessionID,
		Content:   content,
		Sender:    sender,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(msg); err != nil {
		log.Printf("could not save %s message: %v", sender, err)
	}
}

func (s *GormStore) Transcript(_ context.Context, sessionID string) ([]model.ChatMessage, bool) {
	messages, err := s.repo.ListBySession(sessionID)
	if err != nil {
		log.Printf("could not fetch transcript: %v", err)
		return []model.ChatMessage{}, false
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return messages, true
}

func (s *GormStore) Enabled() bool {
	return true
}
