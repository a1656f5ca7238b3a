package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carebot/carebot/utils/logging"

	"google.golang.org/genai"
)

// geminiClient is the generative-model variant. It sends one localized
// single-shot prompt per message: persona instruction, response-language
// directive, then the user message.
type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newGeminiClient(ctx context.Context, apiKey string, settings ProviderSettings) (*geminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiClient{
		client:  client,
		model:   settings.GeminiModel,
		timeout: settings.Timeout(),
	}, nil
}

func (c *geminiClient) Name() string { return "gemini" }

func (c *geminiClient) Answer(ctx context.Context, message string, userID int, lang string) (string, error) {
	defer logging.LogDuration(ctx, "gemini_answer")()

	tpl := promptFor(lang)
	prompt := fmt.Sprintf("%s\n\n%s\n\nUser: %s\n\nAssistant:", tpl.System, tpl.ResponseLanguage, message)

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(cctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiErr(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", providerErr("gemini", ReasonMalformed, errors.New("empty completion"))
	}
	return text, nil
}

func classifyGeminiErr(err error) *ProviderError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus("gemini", apiErr.Code, apiErr.Message)
	}
	return classifyTransport("gemini", err)
}
