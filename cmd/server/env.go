package main

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment   string
	ServerAddress string
	LogLevel      string

	UpstreamBaseURL string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	CacheTTL      time.Duration
	CacheCapacity int
}

// LoadEnvironment reads env vars and applies defaults
func LoadEnvironment() Environment {
	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),
		LogLevel:      os.Getenv("LOG_LEVEL"),

		UpstreamBaseURL: os.Getenv("UPSTREAM_BASE_URL"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CacheTTL:      time.Hour,
		CacheCapacity: 200,
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal().Str("CACHE_TTL", raw).Msg("invalid CACHE_TTL duration")
		}
		env.CacheTTL = ttl
	}

	if raw := os.Getenv("CACHE_CAPACITY"); raw != "" {
		capacity, err := parsePositiveInt(raw)
		if err != nil {
			log.Fatal().Str("CACHE_CAPACITY", raw).Msg("invalid CACHE_CAPACITY")
		}
		env.CacheCapacity = capacity
	}

	return env
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}
