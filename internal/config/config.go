package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret                string
	AccessTokenExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// RedisConfig configures the rule set cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	RulesTTL time.Duration
}

// KafkaConfig configures the outbox relay. With no brokers events stay in
// the outbox table.
type KafkaConfig struct {
	Brokers        []string
	Topic          string
	OutboxInterval time.Duration
	OutboxBatch    int
}

type PayrollConfig struct {
	Timezone             string
	LoanProposalInterval time.Duration
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:                getEnv("JWT_SECRET_KEY", ""),
		AccessTokenExpiration: getEnv("JWT_ACCESS_TOKEN_EXPIRATION", "1h"),
	}
	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRATION: %w", err)
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	rulesTTL, err := time.ParseDuration(getEnv("REDIS_RULES_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_RULES_TTL: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
		RulesTTL: rulesTTL,
	}

	// Kafka configuration
	outboxInterval, err := time.ParseDuration(getEnv("OUTBOX_POLL_INTERVAL", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_INTERVAL: %w", err)
	}
	outboxBatch, err := strconv.Atoi(getEnv("OUTBOX_BATCH_SIZE", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_BATCH_SIZE: %w", err)
	}

	config.Kafka = KafkaConfig{
		Brokers:        getEnvSlice("KAFKA_BROKERS"),
		Topic:          getEnv("KAFKA_PAYROLL_TOPIC", "hris.payroll.events"),
		OutboxInterval: outboxInterval,
		OutboxBatch:    outboxBatch,
	}

	// Payroll configuration
	proposalInterval, err := time.ParseDuration(getEnv("LOAN_PROPOSAL_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOAN_PROPOSAL_INTERVAL: %w", err)
	}

	config.Payroll = PayrollConfig{
		Timezone:             getEnv("PAYROLL_TIMEZONE", "Asia/Jakarta"),
		LoanProposalInterval: proposalInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_PAYROLL_TOPIC is required when KAFKA_BROKERS is set")
	}
	if c.Kafka.OutboxInterval <= 0 {
		return fmt.Errorf("OUTBOX_POLL_INTERVAL must be positive")
	}
	if c.Payroll.LoanProposalInterval <= 0 {
		return fmt.Errorf("LOAN_PROPOSAL_INTERVAL must be positive")
	}
	if _, err := time.LoadLocation(c.Payroll.Timezone); err != nil {
		return fmt.Errorf("invalid PAYROLL_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location resolves the payroll timezone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Payroll.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
