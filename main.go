package main

import (
	"context"
	"log"

	httpapi "github.com/falvarado7/grubdash/internal/api/http"
	"github.com/falvarado7/grubdash/internal/config"
	"github.com/falvarado7/grubdash/internal/service"
	"github.com/falvarado7/grubdash/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var cache service.DishCache
	if cfg.RedisEnabled {
		redisClient := config.MustInitRedis()
		defer redisClient.Close()
		cache = storage.NewRedisDishCache(redisClient, cfg.CacheTTL)
		log.Println("[grubdash] dish cache enabled")
	}

	dishSvc := service.NewDishService(repo, cache)
	orderSvc := service.NewOrderService(repo)

	handler := httpapi.NewHandler(dishSvc, orderSvc)
	router := httpapi.NewRouter(handler, cfg.AllowedOrigins)

	httpapi.StartServer(":"+cfg.Port, router)
}
