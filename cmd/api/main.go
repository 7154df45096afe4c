package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/labelforge/annotate-backend/config"
	httpapi "github.com/labelforge/annotate-backend/internal/api/http"
	"github.com/labelforge/annotate-backend/internal/api/http/middleware"
	"github.com/labelforge/annotate-backend/internal/api/http/routes"
	"github.com/labelforge/annotate-backend/internal/storage/postgres"
	"github.com/labelforge/annotate-backend/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, dashboard cache disabled: %v", err)
		rdb = nil
	}

	media, err := uploads.NewS3Store(context.Background(), &cfg.Media)
	if err != nil {
		log.Fatalf("media store: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	httpapi.NewHealthHandler("annotate-backend", cfg.App.Version, db).RegisterRoutes(r)

	routes.Register(r, routes.Deps{
		DB:    db,
		Redis: rdb,
		Media: media,
		Cfg:   cfg,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
