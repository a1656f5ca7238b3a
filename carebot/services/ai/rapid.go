package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"carebot/carebot/config"
	"carebot/carebot/utils/httputils"
	"carebot/carebot/utils/logging"
)

// rapidClient is the third-party aggregator variant. The provider takes only
// the latest message as a flat text field, so the per-user context window is
// kept locally and cleared whenever a call fails.
type rapidClient struct {
	url     string
	host    string
	key     string
	client  *http.Client
	timeout time.Duration

	temperature float32
	maxTokens   int
	history     *contextWindow
}

func newRapidClient(cfg config.Config, settings ProviderSettings) (*rapidClient, error) {
	if cfg.RapidAPIKey == "" {
		return nil, errors.New("missing RAPIDAPI_KEY")
	}
	return &rapidClient{
		url:         cfg.RapidAPIURL,
		host:        cfg.RapidAPIHost,
		key:         cfg.RapidAPIKey,
		client:      &http.Client{},
		timeout:     settings.Timeout(),
		temperature: settings.Temperature,
		maxTokens:   settings.MaxTokens,
		history:     newContextWindow(settings.HistoryWindow),
	}, nil
}

func (c *rapidClient) Name() string { return "rapidapi" }

func (c *rapidClient) Answer(ctx context.Context, message string, userID int, lang string) (string, error) {
	defer logging.LogDuration(ctx, "rapidapi_answer")()

	c.history.Append(userID, message)

	body := map[string]interface{}{
		"text":        message,
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}
	headers := map[string]string{
		"X-RapidAPI-Key":  c.key,
		"X-RapidAPI-Host": c.host,
	}

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status, respBody, err := httputils.PostJSON(cctx, c.client, c.url, headers, body)
	if err != nil {
		c.history.Clear(userID)
		return "", classifyTransport("rapidapi", err)
	}
	if status != http.StatusOK {
		c.history.Clear(userID)
		return "", classifyStatus("rapidapi", status, string(respBody))
	}

	text, perr := parseRapidEnvelope(respBody)
	if perr != nil {
		c.history.Clear(userID)
		return "", perr
	}

	c.history.Append(userID, text)
	return text, nil
}

// parseRapidEnvelope tries each known response shape in priority order:
// {result,status}, OpenAI-style {choices[].message}, flat {response}, then a
// raw string. Explicit error envelopes and unrecognized shapes come back as
// typed malformed-response errors.
func parseRapidEnvelope(body []byte) (string, *ProviderError) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", providerErr("rapidapi", ReasonMalformed, errors.New("empty body"))
	}

	var errEnv struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(trimmed, &errEnv) == nil && errEnv.Error != "" {
		return "", providerErr("rapidapi", ReasonMalformed, fmt.Errorf("API error: %s", errEnv.Error))
	}

	var resultEnv struct {
		Result json.RawMessage `json:"result"`
		Status *bool           `json:"status"`
	}
	if json.Unmarshal(trimmed, &resultEnv) == nil && resultEnv.Result != nil {
		if resultEnv.Status != nil && !*resultEnv.Status {
			return "", providerErr("rapidapi", ReasonMalformed, errors.New("error status in result envelope"))
		}
		var list []string
		if json.Unmarshal(resultEnv.Result, &list) == nil {
			if len(list) > 0 && strings.TrimSpace(list[0]) != "" {
				return strings.TrimSpace(list[0]), nil
			}
			return "", providerErr("rapidapi", ReasonMalformed, errors.New("empty result list"))
		}
		var single string
		if json.Unmarshal(resultEnv.Result, &single) == nil && strings.TrimSpace(single) != "" {
			return strings.TrimSpace(single), nil
		}
		return "", providerErr("rapidapi", ReasonMalformed, errors.New("unusable result field"))
	}

	var choicesEnv struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if json.Unmarshal(trimmed, &choicesEnv) == nil && len(choicesEnv.Choices) > 0 {
		if content := strings.TrimSpace(choicesEnv.Choices[0].Message.Content); content != "" {
			return content, nil
		}
		return "", providerErr("rapidapi", ReasonMalformed, errors.New("empty choice content"))
	}

	var flatEnv struct {
		Response string `json:"response"`
	}
	if json.Unmarshal(trimmed, &flatEnv) == nil && strings.TrimSpace(flatEnv.Response) != "" {
		return strings.TrimSpace(flatEnv.Response), nil
	}

	var raw string
	if json.Unmarshal(trimmed, &raw) == nil && strings.TrimSpace(raw) != "" {
		return strings.TrimSpace(raw), nil
	}

	// Some upstreams reply with bare text and a JSON content type.
	if !json.Valid(trimmed) {
		return string(trimmed), nil
	}

	return "", providerErr("rapidapi", ReasonMalformed, errors.New("unrecognized response shape"))
}
