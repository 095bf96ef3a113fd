package main

import (
	"log"

	"medal-service/internal/auth"
	"medal-service/internal/cache"
	"medal-service/internal/config"
	"medal-service/internal/handlers"
	"medal-service/internal/logging"
	"medal-service/internal/metrics"
	"medal-service/internal/models"
	"medal-service/internal/prefs"
	"medal-service/internal/repository"
	"medal-service/internal/services"
	"medal-service/internal/storage"

	_ "medal-service/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// @title Medal Compass API
// @version 1.0
// @description Location-based medal registration, discovery, collection and moderation service
// @BasePath /api/medal/v1
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := InitConfig()
	logger := logging.New()
	defer logger.Sync()

	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	redisClient := InitRedisClient(cfg)

	m := metrics.New()
	searchCache := cache.NewSearchCache(redisClient, cfg.SearchCacheTTL, logger, m)
	prefStore := prefs.NewStore(redisClient, logger)

	medalRepo := repository.NewMedalRepository(db)
	reportRepo := repository.NewReportRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)

	medalService := services.NewMedalService(medalRepo, logger, cfg.DefaultRadiusKm, cfg.MaxSearchRows)
	moderationService := services.NewModerationService(medalRepo, reportRepo, logger, cfg.MedalReportThreshold, cfg.UserBanThreshold)
	collectionService := services.NewCollectionService(collectionRepo, logger)

	medalHandler := handlers.NewMedalHandler(medalService, searchCache, m, logger, cfg.DefaultRadiusKm, cfg.RequestTimeout)
	moderationHandler := handlers.NewModerationHandler(moderationService, m, logger, cfg.RequestTimeout)
	collectionHandler := handlers.NewCollectionHandler(collectionService, m, logger, cfg.RequestTimeout)
	preferenceHandler := handlers.NewPreferenceHandler(prefStore, logger, cfg.RequestTimeout)
	authHandler := handlers.NewAuthHandler()

	app := fiber.New()

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/medal")
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	v1 := api.Group("/v1")
	v1.Post("/auth/precheck", authHandler.SignUpPrecheck)

	verifier := auth.NewVerifier(cfg.JWTSecret)
	v1.Use(auth.Middleware(verifier))

	v1.Post("/medals", medalHandler.RegisterMedal)
	v1.Get("/medals", medalHandler.SearchMedals)
	v1.Get("/medals/mine", medalHandler.ListMyMedals)
	v1.Delete("/medals/:medalNo", medalHandler.DeleteMedal)

	v1.Post("/medals/:medalNo/reports", moderationHandler.ReportMedal)
	v1.Get("/medals/:medalNo/reports/me", moderationHandler.HasReported)

	v1.Post("/collections", collectionHandler.Collect)
	v1.Get("/collections", collectionHandler.ListCollections)
	v1.Get("/collections/:medalNo", collectionHandler.IsCollected)
	v1.Delete("/collections/:medalNo", collectionHandler.Uncollect)

	v1.Get("/preferences", preferenceHandler.GetPreferences)
	v1.Put("/preferences", preferenceHandler.SavePreferences)

	routes := app.GetRoutes()
	logger.Infow("registered routes", "count", len(routes))

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		logger.Infow("defaulting port", "port", port)
	}
	logger.Infow("server listening", "port", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Medal{}, &models.MedalReport{}, &models.MedalCollection{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

// InitRedisClient connects to Redis. The search cache and preference store
// degrade gracefully without it, so a connection failure is not fatal.
func InitRedisClient(cfg *config.Config) *storage.RedisClient {
	if cfg.RedisHost == "" {
		log.Println("Redis not configured, running without cache")
		return nil
	}
	client, err := storage.NewRedisClient(cfg.RedisHost, cfg.RedisPort)
	if err != nil {
		log.Printf("Redis connection failed, running without cache: %v", err)
		return nil
	}
	return client
}
