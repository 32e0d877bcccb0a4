package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// Google Cloud
	ProjectID string

	// Gemini
	GeminiModel      string
	EmbeddingModel   string
	GeminiAPIKeyFile string

	// Job context resolution
	JobResolverMode string // "scrape" or "bucket"
	JobPostBucket   string
	ShortLinkHost   string

	// Rate limiting
	RateLimitPerHour      int
	RateLimitGlobalPerDay int

	// Request handling
	MaxMessageLength   int
	HTTPTimeoutSeconds int

	// Content filter
	FilterMode          string // "off" or "embedding"
	SimilarityThreshold float64

	// Policies
	RefusalStatusOK         bool // refusal as 200 + canned text instead of 400
	MinJobDescriptionLength int

	// CORS allow-list; empty means wildcard
	AllowedOrigins []string
}

// Job resolver modes
const (
	JobResolverScrape = "scrape"
	JobResolverBucket = "bucket"
)

// Content filter modes
const (
	FilterOff       = "off"
	FilterEmbedding = "embedding"
)

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		ProjectID: getEnv("PROJECT_ID", ""),

		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "text-embedding-004"),
		GeminiAPIKeyFile: getEnv("GEMINI_API_KEY_FILE", ""),

		JobResolverMode: getEnv("JOB_RESOLVER_MODE", JobResolverScrape),
		JobPostBucket:   getEnv("JOB_POST_BUCKET", "job_posts_resume"),
		ShortLinkHost:   getEnv("SHORT_LINK_HOST", "https://tinyurl.com"),

		RateLimitPerHour:      getEnvInt("RATE_LIMIT_PER_HOUR", 50),
		RateLimitGlobalPerDay: getEnvInt("RATE_LIMIT_GLOBAL_PER_DAY", 1000),

		MaxMessageLength:   getEnvInt("MAX_MESSAGE_LENGTH", 500),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 10),

		FilterMode:          getEnv("FILTER_MODE", FilterOff),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.58),

		RefusalStatusOK:         getEnvBool("REFUSAL_STATUS_OK", true),
		MinJobDescriptionLength: getEnvInt("MIN_JOB_DESCRIPTION_LENGTH", 20),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
	}
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.JobResolverMode != JobResolverScrape && c.JobResolverMode != JobResolverBucket {
		return &ConfigError{Field: "JOB_RESOLVER_MODE", Message: "JOB_RESOLVER_MODE must be \"scrape\" or \"bucket\""}
	}
	if c.JobResolverMode == JobResolverBucket && c.JobPostBucket == "" {
		return &ConfigError{Field: "JOB_POST_BUCKET", Message: "JOB_POST_BUCKET is required in bucket resolver mode"}
	}
	if c.FilterMode != FilterOff && c.FilterMode != FilterEmbedding {
		return &ConfigError{Field: "FILTER_MODE", Message: "FILTER_MODE must be \"off\" or \"embedding\""}
	}
	if c.RateLimitPerHour <= 0 || c.RateLimitGlobalPerDay <= 0 {
		return &ConfigError{Field: "RATE_LIMIT_PER_HOUR", Message: "rate limit ceilings must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
