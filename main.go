package main

import (
	"log"
	"questbook/config"
	_ "questbook/config/swagger"
	"questbook/middleware"
	"questbook/routes"
	"questbook/services/booking"
	"questbook/services/catalog"
	"questbook/services/i18n"
	"questbook/services/upstream"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Questbook API
// @version 1.0
// @description Gin-Gonic front-end service for the Questbook escape room catalog and booking wizard
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	cfg := config.Load()

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	i18nSvc, err := i18n.New()
	if err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	var drafts booking.DraftStore
	if cfg.RedisURL != "" {
		redisClient, err := config.Connect_redis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Error connecting to Redis: %v", err)
		}
		log.Println("Connection to Redis successful")
		defer redisClient.Close()
		drafts = booking.NewRedisStore(redisClient)
	} else {
		log.Println("REDIS_URL not set, keeping booking drafts in memory")
		drafts = booking.NewMemoryStore()
	}

	client := upstream.NewClient(cfg.UpstreamURL)
	cat := catalog.NewService(client, cfg.DemoFallback)
	i18nSvc.Subscribe(cat.OnLanguageChange)

	wizard := booking.NewWizard(drafts, client)

	r := gin.Default()

	middleware.SetUpMiddleware(r, cfg)

	routes.SetupRoutes(r, client, cat, wizard, i18nSvc)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
