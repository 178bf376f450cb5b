package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultOpenAIModel = "gpt-4o"
	defaultGeminiModel = "gemini-1.5-flash-latest"
)

var (
	ErrSecretKeyMissing  = errors.New("SECRET_KEY is required")
	ErrSecretKeyInsecure = errors.New("SECRET_KEY uses an insecure placeholder")
	ErrSecretKeyTooShort = errors.New("SECRET_KEY must be at least 32 characters")
	ErrInvalidPort       = errors.New("PORT must be an integer between 1 and 65535")
	ErrInvalidProvider   = errors.New("GENERATION_PROVIDER must be one of none, openai, gemini")
)

var insecureSecretPlaceholders = []string{
	"change_me_in_production",
	"replace_with_at_least_32_random_characters",
	"secret",
}

type Config struct {
	Env          string
	Port         int
	DBPath       string
	SecretKey    string
	Location     *time.Location
	CookieSecure bool

	GenerationProvider string
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIBaseURL      string
	GeminiAPIKey       string
	GeminiModel        string

	RedisURL       string
	ChatSessionTTL time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	LoadEnvFile()

	secret, err := ResolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	port, err := ResolvePort()
	if err != nil {
		return Config{}, err
	}
	location, err := time.LoadLocation(getEnv("TZ", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TZ: %w", err)
	}
	chatTTL, err := time.ParseDuration(getEnv("CHAT_SESSION_TTL", "2h"))
	if err != nil || chatTTL <= 0 {
		return Config{}, fmt.Errorf("invalid CHAT_SESSION_TTL %q", os.Getenv("CHAT_SESSION_TTL"))
	}

	cfg := Config{
		Env:           strings.ToLower(getEnv("APP_ENV", "development")),
		Port:          port,
		DBPath:        ResolveDBPath(),
		SecretKey:     secret,
		Location:      location,
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:   getEnv("OPENAI_MODEL", defaultOpenAIModel),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnv("GEMINI_MODEL", defaultGeminiModel),
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),

		ChatSessionTTL: chatTTL,
	}

	provider, err := resolveProvider(cfg)
	if err != nil {
		return Config{}, err
	}
	cfg.GenerationProvider = provider
	return cfg, nil
}

// LoadEnvFile applies ./.env when present without overriding variables that
// are already set.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func (cfg Config) IsProduction() bool {
	return cfg.Env == "production" || cfg.Env == "prod"
}

func ResolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", ErrSecretKeyMissing
	}
	for _, placeholder := range insecureSecretPlaceholders {
		if strings.EqualFold(secret, placeholder) {
			return "", ErrSecretKeyInsecure
		}
	}
	if len(secret) < 32 {
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

func ResolveDBPath() string {
	return getEnv("DB_PATH", filepath.Join("data", "luna.db"))
}

func ResolvePort() (int, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, ErrInvalidPort
	}
	return port, nil
}

// An empty GENERATION_PROVIDER picks whichever credential is present, OpenAI first.
func resolveProvider(cfg Config) (string, error) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("GENERATION_PROVIDER")))
	switch provider {
	case "":
		switch {
		case cfg.OpenAIAPIKey != "":
			return ProviderOpenAI, nil
		case cfg.GeminiAPIKey != "":
			return ProviderGemini, nil
		default:
			return ProviderNone, nil
		}
	case ProviderNone, ProviderOpenAI, ProviderGemini:
		return provider, nil
	default:
		return "", ErrInvalidProvider
	}
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
