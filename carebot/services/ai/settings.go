package ai

import (
	"os"
	"time"

	"carebot/carebot/utils/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ProviderSettings carries the tunables shared by the adapter variants.
// Loaded from providers.yaml; every field has a working default so a missing
// file is not an error.
type ProviderSettings struct {
	GeminiModel    string  `yaml:"gemini_model"`
	OpenAIModel    string  `yaml:"openai_model"`
	Temperature    float32 `yaml:"temperature"`
	MaxTokens      int     `yaml:"max_tokens"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	HistoryWindow  int     `yaml:"history_window"`

	// OpenAIBaseURL overrides the API endpoint, mainly for tests.
	OpenAIBaseURL string `yaml:"openai_base_url"`
}

func DefaultSettings() ProviderSettings {
	return ProviderSettings{
		GeminiModel:    "gemini-1.5-flash",
		OpenAIModel:    "gpt-3.5-turbo",
		Temperature:    0.7,
		MaxTokens:      500,
		TimeoutSeconds: 15,
		HistoryWindow:  6,
	}
}

// LoadSettings reads the yaml settings file, filling gaps with defaults.
func LoadSettings(path string) ProviderSettings {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		logging.AppLogger.Info("provider settings file not found, using defaults", zap.String("path", path))
		return settings
	}
	var loaded ProviderSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		logging.ErrorLogger.Error("provider settings parse error, using defaults", zap.Error(err))
		return settings
	}
	if loaded.GeminiModel != "" {
		settings.GeminiModel = loaded.GeminiModel
	}
	if loaded.OpenAIModel != "" {
		settings.OpenAIModel = loaded.OpenAIModel
	}
	if loaded.Temperature > 0 {
		settings.Temperature = loaded.Temperature
	}
	if loaded.MaxTokens > 0 {
		settings.MaxTokens = loaded.MaxTokens
	}
	if loaded.TimeoutSeconds > 0 {
		settings.TimeoutSeconds = loaded.TimeoutSeconds
	}
	if loaded.HistoryWindow > 0 {
		settings.HistoryWindow = loaded.HistoryWindow
	}
	if loaded.OpenAIBaseURL != "" {
		settings.OpenAIBaseURL = loaded.OpenAIBaseURL
	}
	return settings
}

func (s ProviderSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}
