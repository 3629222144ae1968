package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	IntentProviderLLM     = "llm"
	IntentProviderKeyword = "keyword"

	ReplyProviderLLM      = "llm"
	ReplyProviderTemplate = "template"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	LLM            LLMConfig
	Ledger         LedgerConfig
	Security       SecurityConfig
	CircuitBreaker CircuitBreakerConfig
}

type ServerConfig struct {
	Host            string
	Port            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Seed            bool
	MigrationsPath  string
	SeedsPath       string
}

// LLMConfig points at an OpenAI-compatible chat completion endpoint.
type LLMConfig struct {
	BaseURL           string
	APIKey            string
	Model             string
	Timeout           time.Duration
	IntentTemperature float64
	ReplyTemperature  float64
}

// LedgerConfig is built once at start and shared read-only.
type LedgerConfig struct {
	IntentProvider    string
	ReplyProvider     string
	ReportingCurrency string
	// TypeSynonyms holds extra label -> canonical type pairs on top of the built-in table.
	TypeSynonyms map[string]string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	JWTSecret          string
	JWTIssuer          string
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to read .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Host:            getEnv("API_HOST", "0.0.0.0"),
			Port:            getEnv("API_PORT", "5000"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			Seed:            getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		LLM: LLMConfig{
			BaseURL:           strings.TrimRight(getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"), "/"),
			APIKey:            os.Getenv("GROQ_API_KEY"),
			Model:             getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
			Timeout:           getDurationEnv("LLM_TIMEOUT", 30*time.Second),
			IntentTemperature: getFloatEnv("LLM_INTENT_TEMPERATURE", 0.1),
			ReplyTemperature:  getFloatEnv("LLM_REPLY_TEMPERATURE", 0.7),
		},
		Ledger: LedgerConfig{
			IntentProvider:    strings.ToLower(getEnv("INTENT_PROVIDER", IntentProviderLLM)),
			ReplyProvider:     strings.ToLower(getEnv("REPLY_PROVIDER", ReplyProviderLLM)),
			ReportingCurrency: strings.ToUpper(getEnv("REPORTING_CURRENCY", "CNY")),
			TypeSynonyms:      parseSynonyms(os.Getenv("TYPE_SYNONYMS")),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			JWTSecret:          os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer:          getEnv("AUTH_JWT_ISSUER", "ledger-agent"),
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures:     getIntEnv("CB_MAX_FAILURES", 5),
			ResetTimeout:    getDurationEnv("CB_RESET_TIMEOUT", 30*time.Second),
			HalfOpenMaxSucc: getIntEnv("CB_HALF_OPEN_SUCCESSES", 3),
		},
	}

	return config
}

// Validate reports every missing or inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.usesLLM() && c.LLM.APIKey == "" {
		errs = append(errs, errors.New("missing required environment variable: GROQ_API_KEY"))
	}
	if c.usesLLM() && c.LLM.Model == "" {
		errs = append(errs, errors.New("missing required environment variable: GROQ_MODEL"))
	}

	switch c.Ledger.IntentProvider {
	case IntentProviderLLM, IntentProviderKeyword:
	default:
		errs = append(errs, fmt.Errorf("INTENT_PROVIDER must be %q or %q, got %q", IntentProviderLLM, IntentProviderKeyword, c.Ledger.IntentProvider))
	}

	switch c.Ledger.ReplyProvider {
	case ReplyProviderLLM, ReplyProviderTemplate:
	default:
		errs = append(errs, fmt.Errorf("REPLY_PROVIDER must be %q or %q, got %q", ReplyProviderLLM, ReplyProviderTemplate, c.Ledger.ReplyProvider))
	}

	if len(c.Ledger.ReportingCurrency) != 3 {
		errs = append(errs, fmt.Errorf("REPORTING_CURRENCY must be a 3-letter code, got %q", c.Ledger.ReportingCurrency))
	}

	for label, canonical := range c.Ledger.TypeSynonyms {
		if canonical != "income" && canonical != "expense" {
			errs = append(errs, fmt.Errorf("TYPE_SYNONYMS: label %q maps to unknown type %q", label, canonical))
		}
	}

	if c.Database.Host == "" || c.Database.Name == "" {
		errs = append(errs, errors.New("DB_HOST and DB_NAME are required"))
	}

	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) usesLLM() bool {
	return c.Ledger.IntentProvider == IntentProviderLLM || c.Ledger.ReplyProvider == ReplyProviderLLM
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL is the postgres:// form used by the migration tool.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func (c *Config) AuthEnabled() bool {
	return c.Security.JWTSecret != ""
}

// parseSynonyms reads "label:canonical,label:canonical".
func parseSynonyms(raw string) map[string]string {
	synonyms := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		label, canonical, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		label = strings.ToLower(strings.TrimSpace(label))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if label == "" || canonical == "" {
			continue
		}
		synonyms[label] = canonical
	}
	return synonyms
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
