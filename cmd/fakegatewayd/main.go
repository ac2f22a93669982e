// Command fakegatewayd runs a local stand-in for the hosted helpdesk backend
// so the client can be developed and tested without network access to the
// demo deployment.
package main

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/faveomobile/helpdesk-client/internal/fakegateway"
	"github.com/faveomobile/helpdesk-client/internal/fakegateway/store"
	"github.com/faveomobile/helpdesk-client/pkg/logger"
)

type gatewayConfig struct {
	Port      string `env:"PORT,       default=8080"`
	JWTSecret string `env:"JWT_SECRET, default=dev-only-secret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	SeedCount int    `env:"SEED_COUNT, default=35"`

	// MongoURI, when set, switches the directory to MongoDB-backed storage.
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB, default=helpdesk_fake"`
}

func main() {
	ctx := context.Background()

	var cfg gatewayConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	var directory store.Directory
	if cfg.MongoURI != "" {
		mongoDir, err := store.ConnectMongo(ctx, store.MongoConfig{URI: cfg.MongoURI, Database: cfg.MongoDB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo")
		}
		directory = mongoDir
		log.Info().Str("db", cfg.MongoDB).Msg("using mongo-backed directory")
	} else {
		memDir := store.NewMemoryDirectory()
		if err := memDir.Seed(cfg.SeedCount); err != nil {
			log.Fatal().Err(err).Msg("failed to seed directory")
		}
		directory = memDir
		log.Info().Int("seed_count", cfg.SeedCount).Msg("using in-memory directory")
	}

	e := fakegateway.NewRouter(directory, cfg.JWTSecret, log)
	log.Info().Str("port", cfg.Port).Msg("fake gateway listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
