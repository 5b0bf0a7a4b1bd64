package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appcache "github.com/iftarbd/ramadan-api/internal/cache"
	"github.com/iftarbd/ramadan-api/internal/districts"
	"github.com/iftarbd/ramadan-api/internal/schedule"
	"github.com/iftarbd/ramadan-api/internal/upstream"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	env := LoadEnvironment()
	configureLogging(env)

	registry := districts.NewRegistry()
	store := initCache(env)
	client := upstream.NewClient(env.UpstreamBaseURL)
	svc := schedule.NewService(registry, store, client)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, registry, svc)

	log.Info().
		Str("address", env.ServerAddress).
		Int("districts", registry.Count()).
		Msg("starting iftar time api")

	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// initCache selects the configured cache backend: Redis when an address
// is set, otherwise the in-process bounded store.
func initCache(env Environment) appcache.Store {
	if env.RedisAddress == "" {
		log.Info().
			Dur("ttl", env.CacheTTL).
			Int("capacity", env.CacheCapacity).
			Msg("using in-memory schedule cache")
		return appcache.NewMemory(env.CacheTTL, env.CacheCapacity)
	}

	store, err := appcache.NewRedis(context.Background(),
		env.RedisAddress, env.RedisUsername, env.RedisPassword, env.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Str("address", env.RedisAddress).Msg("failed to connect to redis")
	}
	log.Info().Str("address", env.RedisAddress).Msg("using redis schedule cache")
	return store
}

func configureLogging(env Environment) {
	level := zerolog.InfoLevel
	if env.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(env.LogLevel)
		if err != nil {
			log.Fatal().Str("LOG_LEVEL", env.LogLevel).Msg("invalid LOG_LEVEL")
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
}
