package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"savora.app/api/internal/bootstrap"
	"savora.app/api/internal/config"
	"savora.app/api/internal/server"
	"savora.app/api/pkg/database"
	"savora.app/api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	// Redis is optional: without it logout falls back to client-side
	// token discard.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
	}

	var imageStorage storage.ImageStorage
	if cfg.CloudinaryURL != "" {
		imageStorage, err = storage.NewCloudinaryStorage(cfg.CloudinaryURL)
	} else {
		imageStorage, err = storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
	}
	if err != nil {
		log.Fatalf("failed to initialize image storage: %v", err)
	}

	srv := server.NewServer(cfg, db, rdb, imageStorage)
	defer srv.Close()

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
