package ai

import (
	"context"
	"errors"
	"time"

	"carebot/carebot/utils/logging"

	openai "github.com/sashabaranov/go-openai"
)

// openaiPersona is deliberately English-only: this variant is stateless and
// trades localization for a richer persona. Screen output tolerates the
// markdown it may produce.
const openaiPersona = `You are Dr. CareBot, a compassionate and knowledgeable health assistant. You provide warm, supportive, and medically sound advice for everyday health concerns.

Guidelines:
- Ask clarifying questions when symptoms are vague.
- Suggest simple home care measures where appropriate.
- Always recommend seeing a doctor for severe, persistent, or worsening symptoms.
- Never diagnose conditions or prescribe medication.
- Keep a reassuring, conversational tone.`

// openaiClient is the token-based chat-completion variant.
type openaiClient struct {
	cli         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

func newOpenAIClient(apiKey string, settings ProviderSettings) (*openaiClient, error) {
	if apiKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	cfg := openai.DefaultConfig(apiKey)
	if settings.OpenAIBaseURL != "" {
		cfg.BaseURL = settings.OpenAIBaseURL
	}
	return &openaiClient{
		cli:         openai.NewClientWithConfig(cfg),
		model:       settings.OpenAIModel,
		temperature: settings.Temperature,
		maxTokens:   settings.MaxTokens,
		timeout:     settings.Timeout(),
	}, nil
}

func (c *openaiClient) Name() string { return "openai" }

func (c *openaiClient) Answer(ctx context.Context, message string, userID int, lang string) (string, error) {
	defer logging.LogDuration(ctx, "openai_answer")()

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.cli.CreateChatCompletion(cctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openaiPersona},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", classifyOpenAIErr(err)
	}
	if len(resp.Choices) == 0 {
		return "", providerErr("openai", ReasonMalformed, errors.New("no choices returned"))
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIErr(err error) *ProviderError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus("openai", apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus("openai", reqErr.HTTPStatusCode, reqErr.Error())
	}
	return classifyTransport("openai", err)
}
