package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Groq     GroqConfig
	Scraper  ScraperConfig
	Cache    CacheConfig
	Postgres PostgresConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// GroqConfig holds the OpenAI-compatible LLM API configuration
type GroqConfig struct {
	APIKey         string
	APIBase        string
	IntentModel    string // model for query interpretation
	AnalyzerModel  string // model for product analysis / ranking
	Temperature    float64
	MaxTokens      int
	Timeout        time.Duration
	Enabled        bool
}

// ScraperConfig holds the render-capable scraping API configuration
type ScraperConfig struct {
	APIKey       string
	APIBase      string
	RenderWaitMs int
	CountryCode  string
	Timeout      time.Duration
	Enabled      bool
}

// CacheConfig holds product fetch cache settings
type CacheConfig struct {
	TTL         time.Duration
	SweepPeriod time.Duration
}

// PostgresConfig holds the optional trend/search-log database configuration.
// An empty DSN disables persistence entirely.
type PostgresConfig struct {
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	groqKey := getEnv("GROQ_API_KEY", "")
	scraperKey := getEnv("SCRAPINGBEE_API_KEY", "")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 3000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Groq: GroqConfig{
			APIKey:        groqKey,
			APIBase:       getEnv("GROQ_API_BASE", "https://api.groq.com/openai/v1"),
			IntentModel:   getEnv("GROQ_INTENT_MODEL", "llama-3.3-70b-versatile"),
			AnalyzerModel: getEnv("GROQ_ANALYZER_MODEL", "llama-3.3-70b-versatile"),
			Temperature:   getEnvAsFloat("GROQ_TEMPERATURE", 0.3),
			MaxTokens:     getEnvAsInt("GROQ_MAX_TOKENS", 4096),
			Timeout:       time.Duration(getEnvAsInt("GROQ_TIMEOUT", 30)) * time.Second,
			Enabled:       groqKey != "" && groqKey != "dummy_key",
		},
		Scraper: ScraperConfig{
			APIKey:       scraperKey,
			APIBase:      getEnv("SCRAPINGBEE_API_BASE", "https://app.scrapingbee.com/api/v1"),
			RenderWaitMs: getEnvAsInt("SCRAPER_RENDER_WAIT_MS", 5000),
			CountryCode:  getEnv("SCRAPER_COUNTRY_CODE", "in"),
			Timeout:      time.Duration(getEnvAsInt("SCRAPER_TIMEOUT", 45)) * time.Second,
			Enabled:      scraperKey != "" && scraperKey != "dummy_key" && scraperKey != "your_scrapingbee_key_here",
		},
		Cache: CacheConfig{
			TTL:         time.Duration(getEnvAsInt("PRODUCT_CACHE_TTL_SECONDS", 600)) * time.Second,
			SweepPeriod: time.Duration(getEnvAsInt("PRODUCT_CACHE_SWEEP_SECONDS", 120)) * time.Second,
		},
		Postgres: PostgresConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
