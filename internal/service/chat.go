package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_provider_client.go -package=mocks routine-advisor/internal/service ProviderClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_context_gatherer.go -package=mocks routine-advisor/internal/service ContextGatherer
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService routine-advisor/internal/service ChatService

import (
	"context"
	"encoding/json"

	"routine-advisor/internal/contextutil"
	"routine-advisor/internal/conversation"
	"routine-advisor/internal/llm"
	"routine-advisor/internal/search"
)

// ProviderClient is an interface for the downstream chat completions API.
// This interface is defined from the service layer's perspective
// (consumer-first).
type ProviderClient interface {
	// ChatCompletion forwards messages to the provider and returns the
	// provider's raw response payload.
	ChatCompletion(ctx context.Context, messages []llm.Message, params llm.Params) (json.RawMessage, error)
}

// ContextGatherer produces external search context for one enrichment
// call. Implementations never fail: degraded context carries a fallback
// sentence instead.
type ContextGatherer interface {
	Gather(ctx context.Context, query string) search.Context
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Messages     []llm.Message
	UseWebSearch bool
	MaxTokens    int
	Temperature  float64
}

// ChatService proxies conversations to the chat completions provider,
// optionally enriching them with web search context first.
type ChatService interface {
	// ProcessChat runs one conversational turn and returns the provider's
	// raw response payload for verbatim relay.
	ProcessChat(ctx context.Context, req ChatRequest) (json.RawMessage, error)
}

// Generation defaults applied when the inbound request leaves them unset.
const (
	defaultMaxTokens   = 500
	enrichedMaxTokens  = 600
	defaultTemperature = 0.7
)

// chatService implements ChatService.
type chatService struct {
	provider ProviderClient
	gatherer ContextGatherer
}

// NewChatService creates a ChatService that enriches requests carrying the
// web-search flag using the given gatherer.
func NewChatService(provider ProviderClient, gatherer ContextGatherer) ChatService {
	return &chatService{
		provider: provider,
		gatherer: gatherer,
	}
}

// NewPassthroughService creates a ChatService that never enriches:
// a pure relay to the chat completions provider.
func NewPassthroughService(provider ProviderClient) ChatService {
	return &chatService{provider: provider}
}

// ProcessChat runs the enrichment-and-proxy pipeline. Every invocation is
// stateless: nothing is remembered across calls.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	logger := contextutil.LoggerFromContext(ctx)

	messages := req.Messages
	enriched := false

	if req.UseWebSearch && s.gatherer != nil {
		question := conversation.LastUserContent(req.Messages)
		sc := s.gatherer.Gather(ctx, search.BiasQuery(question))
		system := llm.Message{
			Role:    llm.RoleSystem,
			Content: conversation.BuildSystemPrompt(sc),
		}
		messages = conversation.Inject(req.Messages, system)
		enriched = true

		logger.InfoContext(ctx, "conversation enriched with search context",
			"status", sc.Status, "sources", len(sc.SourceURLs))
	}

	params := llm.Params{
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if params.MaxTokens <= 0 {
		if enriched {
			params.MaxTokens = enrichedMaxTokens
		} else {
			params.MaxTokens = defaultMaxTokens
		}
	}
	if params.Temperature <= 0 {
		params.Temperature = defaultTemperature
	}

	raw, err := s.provider.ChatCompletion(ctx, messages, params)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get provider response", "error", err)
		return nil, WrapError(err, "failed to get provider response")
	}

	logger.InfoContext(ctx, "chat request processed successfully",
		"messages", len(messages), "enriched", enriched)
	return raw, nil
}
