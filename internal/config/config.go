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
	Server     ServerConfig
	TextGen    TextGenConfig
	Gemini     GeminiConfig
	Scheduling SchedulingConfig
	Agent      AgentConfig
	Storage    StorageConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	AllowOrigins string
}

// TextGenConfig selects the text-generation provider and holds the
// chat-completion endpoint settings.
type TextGenConfig struct {
	Provider        string
	Endpoint        string
	APIKey          string
	Deployment      string
	APIVersion      string
	MaxOutputTokens int
	Timeout         time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type SchedulingConfig struct {
	BaseURL       string
	APIKey        string
	PhoneNumberID string
	Timeout       time.Duration
}

// AgentConfig describes the voice agent placed on dispatched calls.
type AgentConfig struct {
	Name          string
	ModelProvider string
	Model         string
	Company       string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

const (
	ProviderAzureOpenAI = "azure_openai"
	ProviderGemini      = "gemini"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Env:          getEnv("ENV", "development"),
			AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
		},
		TextGen: TextGenConfig{
			Provider:        strings.ToLower(getEnv("TEXTGEN_PROVIDER", ProviderAzureOpenAI)),
			Endpoint:        strings.TrimRight(getEnv("TEXTGEN_ENDPOINT", ""), "/"),
			APIKey:          getEnv("TEXTGEN_API_KEY", ""),
			Deployment:      getEnv("TEXTGEN_DEPLOYMENT", "o3-mini"),
			APIVersion:      getEnv("TEXTGEN_API_VERSION", "2025-01-01-preview"),
			MaxOutputTokens: getEnvAsInt("TEXTGEN_MAX_OUTPUT_TOKENS", 800),
			Timeout:         getEnvAsDuration("TEXTGEN_TIMEOUT", "30s"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Scheduling: SchedulingConfig{
			BaseURL:       strings.TrimRight(getEnv("VAPI_BASE_URL", "https://api.vapi.ai"), "/"),
			APIKey:        getEnv("VAPI_API_KEY", ""),
			PhoneNumberID: getEnv("VAPI_PHONE_NUMBER_ID", ""),
			Timeout:       getEnvAsDuration("VAPI_TIMEOUT", "15s"),
		},
		Agent: AgentConfig{
			Name:          getEnv("AGENT_NAME", "Neha"),
			ModelProvider: getEnv("AGENT_MODEL_PROVIDER", "openai"),
			Model:         getEnv("AGENT_MODEL", "gpt-4o"),
			Company:       getEnv("AGENT_COMPANY", "EvalEase"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

// DemoMode reports whether call logs come from the built-in sample data
// because no scheduling credential is configured.
func (c *Config) DemoMode() bool {
	return c.Scheduling.APIKey == ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
