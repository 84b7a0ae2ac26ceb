package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBDSN           string
	LogFile         string
	Timezone        string
	BodyLimit       int
	RateLimitPerMin int

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Load reads the environment, after loading a .env file if one is present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		DBDSN:           getEnv("DB_DSN", "phonedash.db"), // sqlite file in project root
		LogFile:         getEnv("LOG_FILE", ""),
		Timezone:        getEnv("TIMEZONE", "America/Santiago"),
		BodyLimit:       getEnvInt("BODY_LIMIT", 1<<20),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 60),
		AMQPURL:         getEnv("AMQP_URL", ""),
		AMQPExchange:    getEnv("AMQP_EXCHANGE", "phonedash"),
		AMQPQueue:       getEnv("AMQP_QUEUE", "ventas"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TIMEZONE=%s AMQP=%t",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.Timezone, cfg.AMQPURL != "")
	return cfg
}

// Location resolves Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}
	if c.DBDSN == "" {
		errs = append(errs, "DB_DSN cannot be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}
	if c.BodyLimit < 1024 {
		errs = append(errs, fmt.Sprintf("invalid body limit %d: must be at least 1024 bytes", c.BodyLimit))
	}
	if c.RateLimitPerMin < 1 {
		errs = append(errs, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.RateLimitPerMin))
	}
	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}
		if c.AMQPExchange == "" || c.AMQPQueue == "" {
			errs = append(errs, "AMQP exchange and queue are required when AMQP_URL is set")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
