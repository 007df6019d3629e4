package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	LLMProvider  string
	LLMModel     string
	CohereAPIKey string
	OpenAIAPIKey string
}

// Load reads configuration from the environment, after a best-effort .env
// load for local development. Required values are enforced in main.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  os.Getenv("DB_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		LLMProvider:  getEnv("LLM_PROVIDER", "cohere"),
		LLMModel:     os.Getenv("LLM_MODEL"),
		CohereAPIKey: os.Getenv("COHERE_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
