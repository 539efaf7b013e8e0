package storefront

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	platformobservability "github.com/Apurer/go-storefront/internal/platform/observability"
	"github.com/Apurer/go-storefront/internal/shared/money"
)

// Config carries environment-driven settings for the storefront processes.
type Config struct {
	Port              string
	PostgresDSN       string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	CurrencySymbol    string
	LogLevel          string
	Environment       string
	OTLPEndpoint      string
	OTLPInsecure      bool
}

// LoadConfig preloads STOREFRONT_ENV_FILE (default .env) when present, then
// reads environment variables, applies defaults, and validates them. Variables
// already set in the environment win over the file.
func LoadConfig() (Config, error) {
	envFile := envDefault("STOREFRONT_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		CurrencySymbol:    envDefault("CURRENCY_SYMBOL", money.DefaultSymbol),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		Environment:       envDefault("ENVIRONMENT", "local"),
		OTLPEndpoint:      strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		OTLPInsecure:      strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE")) != "0",
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be a valid TCP port, got %q", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Observability returns the reporting options for the named process.
func (c Config) Observability(serviceName string) platformobservability.Options {
	return platformobservability.Options{
		ServiceName:  serviceName,
		Environment:  c.Environment,
		LogLevel:     c.LogLevel,
		OTLPEndpoint: c.OTLPEndpoint,
		OTLPInsecure: c.OTLPInsecure,
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
