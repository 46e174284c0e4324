package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Prediction PredictionConfig
	Chat       ChatConfig
	Ai         AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	LLMLogFilePath     string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type PredictionConfig struct {
	JosaaYear     int
	JosaaRound    int
	CsabYear      int
	CsabRound     int
	ChatLimit     int
	Limit         int
	ChatQuota     string
	ChatGender    string
	ExcludeFamily string
}

type ChatConfig struct {
	DefaultLanguage string
	Languages       []string
	SessionTTL      time.Duration
	PageCacheTTL    time.Duration
}

type AIConfig struct {
	LLMProvider     string // "gemini", "ollama" or "none"
	LLMModel        string
	GeminiAPIKey    string
	OllamaBaseURL   string
	MaxOutputTokens int
	Timeout         time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			LLMLogFilePath:     getEnv("LLM_LOG_FILE_PATH", "logs/llm.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Prediction: PredictionConfig{
			JosaaYear:     getEnvAsInt("JOSAA_PREDICTION_YEAR", 2024),
			JosaaRound:    getEnvAsInt("JOSAA_PREDICTION_ROUND", 6),
			CsabYear:      getEnvAsInt("CSAB_PREDICTION_YEAR", 2024),
			CsabRound:     getEnvAsInt("CSAB_PREDICTION_ROUND", 2),
			ChatLimit:     getEnvAsInt("CHAT_PREDICTION_LIMIT", 3),
			Limit:         getEnvAsInt("PREDICTION_LIMIT", 100),
			ChatQuota:     getEnv("CHAT_QUOTA", "AI"),
			ChatGender:    getEnv("CHAT_GENDER", "Gender-Neutral"),
			ExcludeFamily: getEnv("PREDICTION_EXCLUDE_BRANCH", "architecture"),
		},
		Chat: ChatConfig{
			DefaultLanguage: getEnv("CHAT_DEFAULT_LANGUAGE", "en"),
			Languages:       getEnvAsList("CHAT_LANGUAGES", []string{"en", "hi-en", "te-en"}),
			SessionTTL:      getEnvAsDuration("CHAT_SESSION_TTL", time.Hour),
			PageCacheTTL:    getEnvAsDuration("CONTENT_CACHE_TTL", 5*time.Minute),
		},
		Ai: AIConfig{
			LLMProvider:     getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:        getEnv("LLM_MODEL", ""),
			GeminiAPIKey:    getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			MaxOutputTokens: getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 200),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(strValue, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
