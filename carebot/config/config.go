package config

import (
	"os"
)

type Config struct {
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string

	// AIProvider selects the backend: "gemini", "openai" or "rapidapi".
	// Empty or unknown values leave the assistant unconfigured and every
	// reply comes from the canned fallback tables.
	AIProvider string

	GeminiAPIKey string
	OpenAIAPIKey string
	RapidAPIKey  string
	RapidAPIHost string
	RapidAPIURL  string

	// ProviderSettingsFile points at the optional providers.yaml with model
	// names and sampling parameters.
	ProviderSettingsFile string
}

func LoadConfig() Config {
	return Config{
		Port:       getEnv("PORT", "5000"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", ""),
		DBName:     getEnv("DB_NAME", ""),
		JWTSecret:  getEnv("JWT_SECRET", ""),

		AIProvider: getEnv("AI_PROVIDER", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		RapidAPIKey:  getEnv("RAPIDAPI_KEY", ""),
		RapidAPIHost: getEnv("RAPIDAPI_HOST", "chatgpt-42.p.rapidapi.com"),
		RapidAPIURL:  getEnv("RAPIDAPI_URL", "https://chatgpt-42.p.rapidapi.com/aitohuman"),

		ProviderSettingsFile: getEnv("PROVIDER_SETTINGS_FILE", "carebot/services/ai/providers.yaml"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
