package history

import (
	"context"
	"log"
	"time"

	"github.com/roninc32/smart-portfolio/internal/model"
)

// TurnPublisher hands a chat turn to a durable queue for asynchronous
// persistence.
type TurnPublisher interface {
	Publish(ctx context.Context, msg model.ChatMessage) error
}

// QueueStore reads like GormStore but routes appends through a message
// queue, so a slow database never sits on the request path. A failed
// publish is dropped, same contract as a failed direct write. Reads
// may briefly trail writes while the queue drains.
type QueueStore struct {
	*GormStore
	publisher TurnPublisher
}

func NewQueueStore(reads *GormStore, publisher TurnPublisher) *QueueStore {
	return &QueueStore{GormStore: reads, publisher: publisher}
}

func (s *QueueStore) Append(ctx context.Context, sessionID, content, sender string) {
	msg := model.ChatMessage{
		SessionID: sessionID,
		Content:   content,
		Sender:    sender,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		log.Printf("could not enqueue %s message: %v", sender, err)
	}
}
