package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// TransactionSource selects where transaction records are read from.
type TransactionSource string

const (
	SourceAPI      TransactionSource = "api"
	SourcePostgres TransactionSource = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string
	JWTSecret    string
	JWTIssuer    string

	FrontendBaseURL string

	// Upstream finance API
	UpstreamBaseURL      string
	UpstreamServiceToken string
	UpstreamTimeout      time.Duration
	UpstreamPageSize     int
	UpstreamMaxPages     int

	// Fetch cache
	CacheTTL  time.Duration
	CacheSize int

	TransactionSource TransactionSource
	DatabaseURL       string
	EnableDBCheck     bool

	RateLimit     string
	APIKeyHashes  []string
	PosthogAPIKey string
	PosthogHost   string

	MigrationsPath string
	// MirrorViewerID is the user whose visibility the service token carries during mirror sync.
	MirrorViewerID string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:3333")
	viper.SetDefault("UPSTREAM_SERVICE_TOKEN", "")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("UPSTREAM_PAGE_SIZE", 100)
	viper.SetDefault("UPSTREAM_MAX_PAGES", 50)
	viper.SetDefault("CACHE_TTL", "30s")
	viper.SetDefault("CACHE_SIZE", 256)
	viper.SetDefault("TRANSACTION_SOURCE", string(SourceAPI))
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("API_KEY_HASHES", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_HOST", "https://us.i.posthog.com")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.UpstreamBaseURL = strings.TrimRight(viper.GetString("UPSTREAM_BASE_URL"), "/")
	if cfg.UpstreamBaseURL == "" {
		log.Println("Warning: UPSTREAM_BASE_URL not set. Upstream API calls will fail.")
	}
	cfg.UpstreamServiceToken = viper.GetString("UPSTREAM_SERVICE_TOKEN")
	cfg.UpstreamTimeout = parseDuration("UPSTREAM_TIMEOUT", 10*time.Second)

	cfg.UpstreamPageSize = viper.GetInt("UPSTREAM_PAGE_SIZE")
	if cfg.UpstreamPageSize <= 0 {
		cfg.UpstreamPageSize = 100
		log.Printf("Warning: Invalid UPSTREAM_PAGE_SIZE. Defaulting to %d.\n", cfg.UpstreamPageSize)
	}
	cfg.UpstreamMaxPages = viper.GetInt("UPSTREAM_MAX_PAGES")
	if cfg.UpstreamMaxPages <= 0 {
		cfg.UpstreamMaxPages = 50
		log.Printf("Warning: Invalid UPSTREAM_MAX_PAGES. Defaulting to %d.\n", cfg.UpstreamMaxPages)
	}

	cfg.CacheTTL = parseDuration("CACHE_TTL", 30*time.Second)
	cfg.CacheSize = viper.GetInt("CACHE_SIZE")

	switch source := TransactionSource(strings.ToLower(viper.GetString("TRANSACTION_SOURCE"))); source {
	case SourceAPI, SourcePostgres:
		cfg.TransactionSource = source
	default:
		log.Printf("Warning: Invalid value for TRANSACTION_SOURCE ('%s'). Defaulting to %s.\n", source, SourceAPI)
		cfg.TransactionSource = SourceAPI
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.TransactionSource == SourcePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.APIKeyHashes = splitList(viper.GetString("API_KEY_HASHES"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogHost = viper.GetString("POSTHOG_HOST")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.MirrorViewerID = strings.TrimSpace(viper.GetString("MIRROR_VIEWER_ID"))

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
