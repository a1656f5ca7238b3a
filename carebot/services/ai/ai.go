// Package ai is the orchestration layer between the realtime chat and the
// language-model providers. One provider variant is selected at startup;
// every provider failure is recovered here by the canned fallback responder
// so the caller always gets a usable reply.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carebot/carebot/config"
	"carebot/carebot/utils/logging"

	"go.uber.org/zap"
)

// Assistant answers a health query. The returned text is always non-empty
// on a nil error; a non-nil error only happens when a provider variant
// violates its own contract (defensive path).
type Assistant interface {
	Answer(ctx context.Context, message string, userID int, lang string) (string, error)
}

// provider is one concrete backend integration. Failures come back as
// *ProviderError so the adapter can log the reason before falling back.
type provider interface {
	Name() string
	Answer(ctx context.Context, message string, userID int, lang string) (string, error)
}

// HealthAssistant wraps one provider with the fallback combinator.
type HealthAssistant struct {
	provider provider
}

// New builds the assistant for the configured provider. An unknown or empty
// AI_PROVIDER leaves the assistant unconfigured: every answer comes from the
// fallback tables.
func New(ctx context.Context, cfg config.Config, settings ProviderSettings) *HealthAssistant {
	var p provider
	var err error

	switch cfg.AIProvider {
	case "gemini":
		p, err = newGeminiClient(ctx, cfg.GeminiAPIKey, settings)
	case "openai":
		p, err = newOpenAIClient(cfg.OpenAIAPIKey, settings)
	case "rapidapi":
		p, err = newRapidClient(cfg, settings)
	case "":
		logging.AppLogger.Warn("no AI provider configured, responses come from fallback tables")
	default:
		err = fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
	if err != nil {
		logging.ErrorLogger.Error("AI provider init failed, responses come from fallback tables",
			zap.String("provider", cfg.AIProvider), zap.Error(err))
		p = nil
	}

	return &HealthAssistant{provider: p}
}

// Answer runs the provider call and maps any provider error to the fallback
// responder. This is the single place fallback-on-error happens; the
// variants just return typed errors.
func (a *HealthAssistant) Answer(ctx context.Context, message string, userID int, lang string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.ErrorLogger.Error("adapter panic", zap.Any("panic", r))
			err = fmt.Errorf("adapter panic: %v", r)
		}
	}()

	if a.provider == nil {
		perr := providerErr("none", ReasonUnconfigured, errors.New("no provider configured"))
		return a.fallback(perr, message, lang), nil
	}

	text, answerErr := a.provider.Answer(ctx, message, userID, lang)
	if answerErr != nil {
		return a.fallback(answerErr, message, lang), nil
	}
	if strings.TrimSpace(text) == "" {
		perr := providerErr(a.provider.Name(), ReasonMalformed, errors.New("empty completion"))
		return a.fallback(perr, message, lang), nil
	}
	return text, nil
}

func (a *HealthAssistant) fallback(cause error, message, lang string) string {
	var perr *ProviderError
	if errors.As(cause, &perr) {
		logging.AppLogger.Warn("provider failed, using fallback response",
			zap.String("provider", perr.Provider),
			zap.String("reason", string(perr.Reason)),
			zap.Error(perr.Err))
	} else {
		logging.AppLogger.Warn("provider failed, using fallback response", zap.Error(cause))
	}
	return Respond(message, lang)
}
