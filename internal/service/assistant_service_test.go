package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"ai-lifeboard-be/internal/dto"
	"ai-lifeboard-be/internal/repository/memory"
	"ai-lifeboard-be/pkg/assistant/modules"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
	"ai-lifeboard-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider returns a fixed response, or an error, without a network.
type scriptedProvider struct {
	response string
	err      error

	gotMessages []llm.Message
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.gotMessages = history
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

func newTestService(t *testing.T, provider llm.LLMProvider) (IAssistantService, *memory.Store) {
	t.Helper()

	registry, err := modules.DefaultRegistry(resolve.NewSubstring())
	require.NoError(t, err)

	dispatcher := router.NewDispatcher(registry, log.New(io.Discard, "", 0))
	store := memory.NewStore()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	svc := NewAssistantService(provider, registry, dispatcher, store, store, pubSub, noopLogger{})
	return svc, store
}

func TestHandleMessageBatchExpenses(t *testing.T) {
	provider := &scriptedProvider{
		response: `{"actions": [
			{"action": "ADD_EXPENSE", "data": {"amount": 200, "category": "Food", "description": "coffee"}},
			{"action": "ADD_EXPENSE", "data": {"amount": 500, "category": "Food", "description": "groceries"}}
		], "response_text": "Logged both expenses under Food."}`,
	}
	svc, store := newTestService(t, provider)
	userId := uuid.New()

	res, err := svc.HandleMessage(context.Background(), userId, &dto.AssistantMessageRequest{
		Message: "I spent 200 on coffee and 500 on groceries",
	})
	require.NoError(t, err)

	assert.Equal(t, "Logged both expenses under Food.", res.Reply)
	require.Len(t, res.Outcomes, 2)
	for _, o := range res.Outcomes {
		assert.Equal(t, "ADD_EXPENSE", o.Action)
		assert.Equal(t, string(router.StatusApplied), o.Status)
	}

	// Both turns persisted
	msgs, err := store.Recent(context.Background(), userId, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "assistant", msgs[1].Role)
}

func TestHandleMessageProviderFailureDegradesToApology(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("connection refused")}
	svc, _ := newTestService(t, provider)

	res, err := svc.HandleMessage(context.Background(), uuid.New(), &dto.AssistantMessageRequest{
		Message: "log 50 for lunch",
	})
	require.NoError(t, err, "provider failure must not become a request error")

	assert.Contains(t, res.Reply, "trouble processing")
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, string(router.StatusUnhandled), res.Outcomes[0].Status)
}

func TestHandleMessageChatIsNoOp(t *testing.T) {
	provider := &scriptedProvider{
		response: `{"action": "CHAT", "data": {}, "response_text": "You've spent 700 this week."}`,
	}
	svc, _ := newTestService(t, provider)

	res, err := svc.HandleMessage(context.Background(), uuid.New(), &dto.AssistantMessageRequest{
		Message: "how much did I spend this week?",
	})
	require.NoError(t, err)

	assert.Equal(t, "You've spent 700 this week.", res.Reply)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, string(router.StatusUnhandled), res.Outcomes[0].Status)
	assert.Empty(t, res.NavigateTo)
}

func TestHandleMessageNavigate(t *testing.T) {
	provider := &scriptedProvider{
		response: `{"action": "NAVIGATE", "data": {"page": "finance"}, "response_text": "Taking you to finance."}`,
	}
	svc, _ := newTestService(t, provider)

	res, err := svc.HandleMessage(context.Background(), uuid.New(), &dto.AssistantMessageRequest{
		Message: "open my finance page",
	})
	require.NoError(t, err)

	assert.Equal(t, "finance", res.NavigateTo)
}

func TestHandleMessageSendsSystemPromptAndHistory(t *testing.T) {
	provider := &scriptedProvider{
		response: `{"action": "CHAT", "data": {}, "response_text": "Hi!"}`,
	}
	svc, _ := newTestService(t, provider)
	userId := uuid.New()

	_, err := svc.HandleMessage(context.Background(), userId, &dto.AssistantMessageRequest{
		Message:     "hello",
		PageContext: "viewing: dashboard",
	})
	require.NoError(t, err)

	require.NotEmpty(t, provider.gotMessages)
	assert.Equal(t, "system", provider.gotMessages[0].Role)
	assert.Contains(t, provider.gotMessages[0].Content, "AVAILABLE ACTIONS:")
	assert.Contains(t, provider.gotMessages[0].Content, "viewing: dashboard")
	assert.Equal(t, "hello", provider.gotMessages[len(provider.gotMessages)-1].Content)

	// Second message carries the first exchange as history
	_, err = svc.HandleMessage(context.Background(), userId, &dto.AssistantMessageRequest{Message: "thanks"})
	require.NoError(t, err)

	var sawHistory bool
	for _, m := range provider.gotMessages {
		if m.Role == "assistant" && m.Content == "Hi!" {
			sawHistory = true
		}
	}
	assert.True(t, sawHistory, "previous assistant turn should be resent as history")
}

func TestHandleMessageBatchWithMiss(t *testing.T) {
	provider := &scriptedProvider{
		response: `{"actions": [
			{"action": "ADD_EXPENSE", "data": {"amount": 100, "category": "Food"}},
			{"action": "COMPLETE_TASK", "data": {"title": "nonexistent task"}}
		], "response_text": "Done."}`,
	}
	svc, _ := newTestService(t, provider)

	res, err := svc.HandleMessage(context.Background(), uuid.New(), &dto.AssistantMessageRequest{
		Message: "log 100 for food and finish the report",
	})
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 2)
	assert.Equal(t, string(router.StatusApplied), res.Outcomes[0].Status)
	assert.Equal(t, string(router.StatusNotFound), res.Outcomes[1].Status)
	assert.Equal(t, "nonexistent task", res.Outcomes[1].Reference)
}
