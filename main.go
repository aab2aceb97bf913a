package main

import (
	"log"
	"time"

	"menu-svc/config"
	httpapi "menu-svc/internal/api/http"
	"menu-svc/internal/service"
	"menu-svc/internal/storage"
)

const (
	menuCacheTTL  = 5 * time.Minute
	adminTokenTTL = 7 * 24 * time.Hour
	eventsTopic   = "menu-events"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedDefaultAllergens(); err != nil {
		log.Fatal("Failed to seed allergens:", err)
	}

	var cache service.MenuCache
	if client := config.InitRedis(); client != nil {
		cache = storage.NewRedisCache(client, menuCacheTTL)
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(eventsTopic); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	menuService := service.NewMenuService(repo, cache)
	catalogService := service.NewCatalogService(repo, cache, publisher)
	suggestionService := service.NewSuggestionService(repo, publisher)
	authService := service.NewAuthService(cfg.AdminUser, cfg.AdminPassword, []byte(cfg.JWTSecret), adminTokenTTL)
	qrGenerator := &service.DefaultQRGenerator{MenuURL: cfg.PublicMenuURL}

	handler := httpapi.NewHandler(menuService, catalogService, suggestionService, authService, qrGenerator)
	router := httpapi.NewRouter(handler, authService)

	httpapi.StartServer(":"+cfg.Port, router)
}
