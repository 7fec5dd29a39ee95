package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danceapp/events-api/internal/api"
	"github.com/danceapp/events-api/internal/cache"
	"github.com/danceapp/events-api/internal/config"
	"github.com/danceapp/events-api/internal/db"
	"github.com/danceapp/events-api/internal/logger"
	"github.com/danceapp/events-api/internal/pkg/notify"
	"github.com/danceapp/events-api/internal/pkg/storage"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	loader := config.NewLoader(configPath)
	conf, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	adCache, err := initCache(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize redis -> %w", err)
	}

	notifier, err := initNotifier(ctx, conf.Firebase)
	if err != nil {
		return fmt.Errorf("failed to initialize firebase -> %w", err)
	}

	s := api.NewServer(conf, api.Deps{
		DB:       postgresDB,
		Cache:    adCache,
		Notifier: notifier,
		Files:    storage.NewFileStorage(conf.Upload.Dir, conf.Upload.URLPrefix),
	})

	loader.Watch(func(c *config.AppConfig) {
		s.Events.SetProximityDegrees(c.Filter.ProximityDegrees)
	})

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func initCache(ctx context.Context, conf *config.RedisConfig) (*cache.Cache, error) {
	if conf.Addr == "" {
		zap.L().Info("redis.addr not set, advertisement cache disabled")
		return nil, nil
	}

	client, err := cache.NewRedisClient(ctx, cache.Config{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err != nil {
		return nil, err
	}

	return cache.New(client), nil
}

func initNotifier(ctx context.Context, conf *config.FirebaseConfig) (notify.Notifier, error) {
	if !conf.Enabled {
		zap.L().Info("firebase disabled, push notifications are only logged")
		return notify.Log{}, nil
	}

	return notify.NewFCM(ctx, conf.CredentialsFile)
}
