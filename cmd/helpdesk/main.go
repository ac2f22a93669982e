package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/faveomobile/helpdesk-client/internal/cli"
	"github.com/faveomobile/helpdesk-client/internal/core/ports"
	"github.com/faveomobile/helpdesk-client/internal/core/service"
	"github.com/faveomobile/helpdesk-client/internal/infrastructure/config"
	"github.com/faveomobile/helpdesk-client/internal/infrastructure/gateway"
	"github.com/faveomobile/helpdesk-client/internal/infrastructure/kvstore"
	"github.com/faveomobile/helpdesk-client/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open key-value store")
	}

	gw := gateway.NewClient(cfg.GatewayBaseURL, cfg.HTTPTimeout, log)

	authSvc := service.NewAuthService(gw, store, log)
	directorySvc := service.NewDirectoryService(gw, authSvc, log, service.WithDebounce(cfg.SearchDebounce))
	localSvc := service.NewLocalUserService(store, log)
	cartSvc := service.NewCartService()

	app := cli.NewApp(authSvc, directorySvc, localSvc, cartSvc, os.Stdin, os.Stdout, cfg.SearchDebounce, log)
	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client exited with error")
	}
}

func openStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return kvstore.ConnectRedis(ctx, kvstore.RedisConfig{
			Addr: cfg.Storage.Redis.Addr,
			DB:   cfg.Storage.Redis.DB,
		})
	case "memory":
		return kvstore.NewMemory(), nil
	default:
		return kvstore.OpenFile(cfg.Storage.Path)
	}
}
