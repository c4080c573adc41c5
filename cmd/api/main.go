package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/config"
	"github.com/sngm3741/menu-studio/api/internal/infrastructure/cache"
	"github.com/sngm3741/menu-studio/api/internal/logger"
	"github.com/sngm3741/menu-studio/api/internal/server"
)

// memoryURI runs the API without MongoDB.
const memoryURI = "memory"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	var client *mongo.Client
	if cfg.MongoURI != memoryURI {
		clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
		client, err = mongo.Connect(ctx, clientOptions)
		if err != nil {
			log.Fatal("mongo connect failed", zap.Error(err))
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.NewClient(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			// storefront reads fall through to the database
			log.Warn("menu cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app, err := server.New(ctx, cfg, server.Deps{Logger: log, Mongo: client, Redis: rdb})
	if err != nil {
		log.Fatal("server setup failed", zap.Error(err))
	}
	if err := app.Run(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
