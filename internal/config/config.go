package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider string // "openai" or "ollama"
	LLMModel    string // e.g. "gpt-4o-mini", "llama3"
	LLMBaseURL  string
	LLMApiKey   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider: getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:    getEnv("LLM_MODEL", "llama3"),
			LLMBaseURL:  getEnv("LLM_BASE_URL", ""),
			LLMApiKey:   getEnv("LLM_API_KEY", ""),
		},
	}
}

// Validate fails fast on configuration that would only surface later as
// opaque runtime errors (e.g. unauthenticated completion calls).
func (c *Config) Validate() error {
	if c.Ai.LLMProvider == "openai" && c.Ai.LLMApiKey == "" {
		return fmt.Errorf("LLM_PROVIDER=openai requires LLM_API_KEY to be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
