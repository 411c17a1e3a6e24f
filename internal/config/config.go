package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

type Config struct {
	Port string

	SGPBaseURL string
	SGPTimeout time.Duration

	RedisAddr string

	KafkaBroker  string
	KafkaGroupID string

	JWTSecret string

	RBACModelPath  string
	RBACPolicyPath string

	RateLimitRPS   rate.Limit
	RateLimitBurst int
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg := Config{
		Port:           getEnv("PORT", "3000"),
		SGPBaseURL:     strings.TrimRight(os.Getenv("SGP_BASE_URL"), "/"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "go-solicitudes-breakdown-cache"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RBACModelPath:  getEnv("RBAC_MODEL_PATH", filepath.Join("internal", "rbac", "infra", "model.conf")),
		RBACPolicyPath: getEnv("RBAC_POLICY_PATH", filepath.Join("internal", "rbac", "infra", "policy.csv")),
	}

	var err error
	if cfg.SGPTimeout, err = time.ParseDuration(getEnv("SGP_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SGP_TIMEOUT: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be a positive number")
	}
	cfg.RateLimitRPS = rate.Limit(rps)

	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "30")); err != nil || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer")
	}

	return cfg, nil
}

// ValidateAPI checks what the HTTP server cannot start without.
func (c Config) ValidateAPI() error {
	if c.SGPBaseURL == "" {
		return fmt.Errorf("SGP_BASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func (c Config) ValidateConsumer() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
