package service

import (
	"context"
	"encoding/json"

	"ai-lifeboard-be/internal/dto"
	"ai-lifeboard-be/internal/pkg/logger"
	"ai-lifeboard-be/internal/repository/contract"
	"ai-lifeboard-be/pkg/assistant/intent"
	"ai-lifeboard-be/pkg/assistant/prompt"
	"ai-lifeboard-be/pkg/assistant/router"
	"ai-lifeboard-be/pkg/events"
	"ai-lifeboard-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// historyWindow bounds how many prior conversation turns are resent with each
// completion request.
const historyWindow = 10

type IAssistantService interface {
	HandleMessage(ctx context.Context, userId uuid.UUID, req *dto.AssistantMessageRequest) (*dto.AssistantMessageResponse, error)
}

type assistantService struct {
	provider      llm.LLMProvider
	registry      *router.Registry
	dispatcher    *router.Dispatcher
	store         contract.DomainStore
	conversations contract.ConversationStore
	pubSub        *gochannel.GoChannel
	logger        logger.ILogger
}

func NewAssistantService(
	provider llm.LLMProvider,
	registry *router.Registry,
	dispatcher *router.Dispatcher,
	store contract.DomainStore,
	conversations contract.ConversationStore,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		provider:      provider,
		registry:      registry,
		dispatcher:    dispatcher,
		store:         store,
		conversations: conversations,
		pubSub:        pubSub,
		logger:        log,
	}
}

func (s *assistantService) HandleMessage(ctx context.Context, userId uuid.UUID, req *dto.AssistantMessageRequest) (*dto.AssistantMessageResponse, error) {
	// 1. Assemble the completion request: system prompt + trailing history + new turn
	history, err := s.conversations.Recent(ctx, userId, historyWindow)
	if err != nil {
		s.logger.Warn("assistant", "failed to load conversation history, continuing without", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		history = nil
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: prompt.BuildSystemPrompt(s.registry, req.PageContext),
	})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	// 2. Ask the model; a provider failure degrades to the apology intent
	intents := s.complete(ctx, userId, messages)

	// 3. Dispatch every intent in order against a fresh capability bundle
	outcomes := s.dispatcher.RunBatch(ctx, intents, s.store.Hooks(userId))

	// 4. Persist both turns. History is best-effort: a write failure must not
	// undo mutations that already happened.
	s.appendTurn(ctx, userId, "user", req.Message)
	s.appendTurn(ctx, userId, "assistant", intents[0].ResponseText)

	// 5. Publish one event per outcome for the consumer side
	s.publishOutcomes(userId, outcomes)

	return s.buildResponse(intents, outcomes), nil
}

// complete runs the chat completion and parses the response into intents. It
// never returns an empty slice: provider or parse trouble yields the fallback.
func (s *assistantService) complete(ctx context.Context, userId uuid.UUID, messages []llm.Message) []intent.Intent {
	raw, err := s.provider.Chat(ctx, messages,
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(512),
		llm.WithJSONOutput(),
	)
	if err != nil {
		s.logger.Error("assistant", "llm completion failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return intent.Fallback()
	}
	return intent.Parse(raw)
}

func (s *assistantService) appendTurn(ctx context.Context, userId uuid.UUID, role, content string) {
	if err := s.conversations.Append(ctx, userId, role, content); err != nil {
		s.logger.Warn("assistant", "failed to persist conversation turn", map[string]interface{}{
			"user_id": userId.String(),
			"role":    role,
			"error":   err.Error(),
		})
	}
}

func (s *assistantService) publishOutcomes(userId uuid.UUID, outcomes []router.Outcome) {
	for _, o := range outcomes {
		evt := events.NewIntentDispatched(userId.String(), o.Action, string(o.Status), o.Reference)
		payload, err := json.Marshal(evt.Payload())
		if err != nil {
			continue
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := s.pubSub.Publish(events.TopicAssistantOutcomes, msg); err != nil {
			s.logger.Warn("assistant", "failed to publish outcome event", map[string]interface{}{
				"action": o.Action,
				"error":  err.Error(),
			})
		}
	}
}

func (s *assistantService) buildResponse(intents []intent.Intent, outcomes []router.Outcome) *dto.AssistantMessageResponse {
	res := &dto.AssistantMessageResponse{
		Reply:    intents[0].ResponseText,
		Outcomes: make([]dto.OutcomeDTO, 0, len(outcomes)),
	}

	for i, o := range outcomes {
		res.Outcomes = append(res.Outcomes, dto.OutcomeDTO{
			Action:    o.Action,
			Status:    string(o.Status),
			Reference: o.Reference,
			Detail:    o.Detail,
		})
		if intents[i].Action == intent.ActionNavigate {
			if page, ok := intents[i].Data["page"].(string); ok {
				res.NavigateTo = page
			}
		}
	}

	return res
}
