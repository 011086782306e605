package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Rate limiting (requests per period per client IP)
	RateLimitPeriod   time.Duration
	RateLimitRequests int64

	// Admin assistant
	AssistantModelURL     string
	AssistantAPIKey       string
	AssistantMaxToolRound int
	AssistantMaxAttempts  int
	AssistantRetryBackoff time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 300)
	viper.SetDefault("ASSISTANT_MODEL_URL", "")
	viper.SetDefault("ASSISTANT_API_KEY", "")
	viper.SetDefault("ASSISTANT_MAX_TOOL_ROUNDS", 5)
	viper.SetDefault("ASSISTANT_MAX_ATTEMPTS", 3)
	viper.SetDefault("ASSISTANT_RETRY_BACKOFF", "500ms")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	rateLimitPeriod, err := time.ParseDuration(viper.GetString("RATE_LIMIT_PERIOD"))
	if err != nil {
		rateLimitPeriod = time.Minute
		log.Printf("Warning: Invalid value for RATE_LIMIT_PERIOD. Defaulting to %s.\n", rateLimitPeriod)
	}
	cfg.RateLimitPeriod = rateLimitPeriod
	cfg.RateLimitRequests = viper.GetInt64("RATE_LIMIT_REQUESTS")

	cfg.AssistantModelURL = viper.GetString("ASSISTANT_MODEL_URL")
	cfg.AssistantAPIKey = viper.GetString("ASSISTANT_API_KEY")
	cfg.AssistantMaxToolRound = viper.GetInt("ASSISTANT_MAX_TOOL_ROUNDS")
	cfg.AssistantMaxAttempts = viper.GetInt("ASSISTANT_MAX_ATTEMPTS")

	retryBackoff, err := time.ParseDuration(viper.GetString("ASSISTANT_RETRY_BACKOFF"))
	if err != nil {
		retryBackoff = 500 * time.Millisecond
	}
	cfg.AssistantRetryBackoff = retryBackoff

	return cfg, nil
}
