package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CatalogSourceMemory   = "memory"
	CatalogSourceYAML     = "yaml"
	CatalogSourceDynamoDB = "dynamodb"
)

// Config is the process configuration, read from the environment
// (a local .env is autoloaded by the entrypoints).
type Config struct {
	Port int

	StageCatalogSource string
	StageCatalogFile   string
	StageCatalogTable  string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	RedisURL       string
	IdempotencyTTL time.Duration

	Debug     bool
	LogFormat string
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Load reads the configuration and rejects values the service cannot run with.
func Load() (*Config, error) {
	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", port)
	}

	ttl := 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("IDEMPOTENCY_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid IDEMPOTENCY_TTL: %q", v)
		}
		ttl = d
	}

	cfg := &Config{
		Port:               port,
		StageCatalogSource: strings.ToLower(getEnv("STAGE_CATALOG_SOURCE", CatalogSourceMemory)),
		StageCatalogFile:   getEnv("STAGE_CATALOG_FILE", ""),
		StageCatalogTable:  getEnv("STAGE_CATALOG_TABLE", "pipeline_stages"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		IdempotencyTTL:     ttl,
		Debug:              getEnvBool("DEBUG"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	switch cfg.StageCatalogSource {
	case CatalogSourceMemory, CatalogSourceDynamoDB:
	case CatalogSourceYAML:
		if cfg.StageCatalogFile == "" {
			return nil, fmt.Errorf("STAGE_CATALOG_SOURCE=yaml requires STAGE_CATALOG_FILE")
		}
	default:
		return nil, fmt.Errorf("invalid STAGE_CATALOG_SOURCE: %q", cfg.StageCatalogSource)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
