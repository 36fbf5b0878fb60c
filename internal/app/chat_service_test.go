package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roninc32/smart-portfolio/internal/ai"
	"github.com/roninc32/smart-portfolio/internal/history"
	"github.com/roninc32/smart-portfolio/internal/model"
)

type fakeCompleter struct {
	reply       string
	err         error
	gotMessage  string
	gotHistory  []ai.Turn
	invocations int
}

func (f *fakeCompleter) Complete(_ context.Context, message string, turns []ai.Turn) (string, error) {
	f.invocations++
	f.gotMessage = message
	f.gotHistory = turns
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type recordingStore struct {
	recent   []model.ChatMessage
	appended []model.ChatMessage
}

func (s *recordingStore) Recent(_ context.Context, _ string, _ int) []model.ChatMessage {
	return s.recent
}

func (s *recordingStore) Append(_ context.Context, sessionID, content, sender string) {
	s.appended = append(s.appended, model.ChatMessage{
		SessionID: sessionID,
		Content:   content,
		Sender:    sender,
	})
}

func (s *recordingStore) Transcript(_ context.Context, _ string) ([]model.ChatMessage, bool) {
	return s.recent, true
}

func (s *recordingStore) Enabled() bool { return true }

func TestSendEchoesSessionID(t *testing.T) {
	completer := &fakeCompleter{reply: "hello there"}
	svc := NewChatService(history.NewNoop(), completer)

	result, err := svc.Send(context.Background(), SendInput{
		Message:   "What's your tech stack?",
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", result.SessionID)
	assert.Equal(t, "hello there", result.Response)
}

func TestSendValidation(t *testing.T) {
	cases := []struct {
		name    string
		input   SendInput
		wantErr error
	}{
		{"missing message", SendInput{SessionID: "s1"}, ErrMessageRequired},
		{"nil message", SendInput{Message: nil, SessionID: "s1"}, ErrMessageRequired},
		{"non-string message", SendInput{Message: 42, SessionID: "s1"}, ErrMessageRequired},
		{"empty string message", SendInput{Message: "", SessionID: "s1"}, ErrMessageRequired},
		{"missing session", SendInput{Message: "hi"}, ErrSessionRequired},
		{"non-string session", SendInput{Message: "hi", SessionID: 7}, ErrSessionRequired},
		{"empty session", SendInput{Message: "hi", SessionID: ""}, ErrSessionRequired},
		{"whitespace message", SendInput{Message: "   ", SessionID: "s1"}, ErrMessageEmpty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			completer := &fakeCompleter{reply: "unused"}
			svc := NewChatService(history.NewNoop(), completer)

			_, err := svc.Send(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, completer.invocations, "validation failure must not reach upstream")
		})
	}
}

func TestSendTrimsAndTruncates(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := NewChatService(history.NewNoop(), completer)

	long := "  " + strings.Repeat("x", 5000) + "  "
	_, err := svc.Send(context.Background(), SendInput{Message: long, SessionID: "s1"})
	require.NoError(t, err)
	assert.Len(t, []rune(completer.gotMessage), 1000)
	assert.False(t, strings.HasPrefix(completer.gotMessage, " "))
}

func TestSendPersistsBothTurns(t *testing.T) {
	store := &recordingStore{}
	completer := &fakeCompleter{reply: "I use the PERN stack"}
	svc := NewChatService(store, completer)

	_, err := svc.Send(context.Background(), SendInput{Message: "stack?", SessionID: "s1"})
	require.NoError(t, err)

	require.Len(t, store.appended, 2)
	assert.Equal(t, model.SenderUser, store.appended[0].Sender)
	assert.Equal(t, "stack?", store.appended[0].Content)
	assert.Equal(t, model.SenderAI, store.appended[1].Sender)
	assert.Equal(t, "I use the PERN stack", store.appended[1].Content)
	assert.Equal(t, "s1", store.appended[0].SessionID)
}

func TestSendReplaysHistoryAsTurns(t *testing.T) {
	store := &recordingStore{
		recent: []model.ChatMessage{
			{Sender: model.SenderUser, Content: "hi"},
			{Sender: model.SenderAI, Content: "hello!"},
		},
	}
	completer := &fakeCompleter{reply: "again"}
	svc := NewChatService(store, completer)

	_, err := svc.Send(context.Background(), SendInput{Message: "more", SessionID: "s1"})
	require.NoError(t, err)

	require.Len(t, completer.gotHistory, 2)
	assert.Equal(t, ai.RoleUser, completer.gotHistory[0].Role)
	assert.Equal(t, "hi", completer.gotHistory[0].Text)
	assert.Equal(t, ai.RoleModel, completer.gotHistory[1].Role)
}

func TestSendCompletionFailureSurfaces(t *testing.T) {
	store := &recordingStore{}
	completer := &fakeCompleter{err: ai.ErrQuotaExceeded}
	svc := NewChatService(store, completer)

	_, err := svc.Send(context.Background(), SendInput{Message: "hi", SessionID: "s1"})
	assert.ErrorIs(t, err, ai.ErrQuotaExceeded)

	// The user turn was already recorded; that partial state is accepted.
	require.Len(t, store.appended, 1)
	assert.Equal(t, model.SenderUser, store.appended[0].Sender)
}

func TestSendWorksWithoutPersistence(t *testing.T) {
	completer := &fakeCompleter{reply: "still here"}
	svc := NewChatService(history.NewNoop(), completer)

	result, err := svc.Send(context.Background(), SendInput{Message: "hi", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "still here", result.Response)
	assert.Empty(t, completer.gotHistory)
}

func TestTranscriptAdvisoryNote(t *testing.T) {
	svc := NewChatService(history.NewNoop(), &fakeCompleter{})

	result := svc.Transcript(context.Background(), "s1")
	assert.Empty(t, result.Messages)
	assert.Equal(t, "Database not available", result.Note)

	svc = NewChatService(&recordingStore{}, &fakeCompleter{})
	result = svc.Transcript(context.Background(), "s1")
	assert.Empty(t, result.Note)
}

func TestSendErrorsAreUserVisibleText(t *testing.T) {
	for _, sentinel := range []error{ErrMessageRequired, ErrSessionRequired, ErrMessageEmpty} {
		assert.False(t, errors.Is(sentinel, ai.ErrUpstreamUnavailable))
		assert.NotEmpty(t, sentinel.Error())
	}
}
