package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roninc32/smart-portfolio/internal/model"
)

type stubPublisher struct {
	err       error
	published []model.ChatMessage
}

func (p *stubPublisher) Publish(_ context.Context, msg model.ChatMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

func TestNoopDegrades(t *testing.T) {
	store := NewNoop()
	ctx := context.Background()

	assert.False(t, store.Enabled())
	assert.Empty(t, store.Recent(ctx, "s1", 10))

	messages, available := store.Transcript(ctx, "s1")
	assert.NotNil(t, messages, "transcript must be an empty list, not nil")
	assert.Empty(t, messages)
	assert.False(t, available)

	// Append must be a silent no-op.
	store.Append(ctx, "s1", "hello", model.SenderUser)
}

func TestQueueStorePublishesTurn(t *testing.T) {
	pub := &stubPublisher{}
	store := NewQueueStore(nil, pub)

	store.Append(context.Background(), "s1", "hello", model.SenderUser)

	assert.Len(t, pub.published, 1)
	assert.Equal(t, "s1", pub.published[0].SessionID)
	assert.Equal(t, "hello", pub.published[0].Content)
	assert.Equal(t, model.SenderUser, pub.published[0].Sender)
	assert.False(t, pub.published[0].CreatedAt.IsZero())
}

func TestQueueStoreDropsFailedPublish(t *testing.T) {
	pub := &stubPublisher{err: errors.New("broker down")}
	store := NewQueueStore(nil, pub)

	// Nothing to assert beyond "does not panic, does not surface":
	// a failed enqueue is logged and dropped.
	store.Append(context.Background(), "s1", "hello", model.SenderUser)
	assert.Empty(t, pub.published)
}
