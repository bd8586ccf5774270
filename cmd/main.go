package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"foodcart/internal/caching"
	"foodcart/internal/config"
	"foodcart/internal/events"
	"foodcart/internal/geocoder"
	"foodcart/internal/handlers"
	"foodcart/internal/jobs"
	"foodcart/internal/metrics"
	"foodcart/internal/repositories"
	"foodcart/internal/services"
	"foodcart/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Repositories
	restaurantRepo := repositories.NewRestaurantRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	menuItemRepo := repositories.NewMenuItemRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	geoPointRepo := repositories.NewGeoPointRepo(pool)
	bannerRepo := repositories.NewBannerRepo(pool)

	// Infrastructure
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	registry := metrics.NewRegistry()
	provider := geocoder.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderAPIKey, cfg.GeocoderTimeout)

	var publisher events.Publisher
	if cfg.KafkaAddress != "" {
		producer := events.NewProducer(cfg.KafkaAddress, cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
	} else {
		log.Println("KAFKA_ADDRESS not set, order events disabled")
	}

	// Services
	geoCacheSvc := services.NewGeoCacheService(geoPointRepo, provider, registry)
	availabilitySvc := services.NewAvailabilityService(menuItemRepo, productRepo)
	matchingSvc := services.NewMatchingService(availabilitySvc)
	rankingSvc := services.NewRankingService(restaurantRepo, geoCacheSvc)
	productSvc := services.NewProductService(productRepo, menuItemRepo, cacheSvc)
	orderSvc := services.NewOrderService(orderRepo, productRepo, matchingSvc, rankingSvc, publisher, registry)

	// Background geopoint refresh
	scheduler, err := jobs.NewScheduler(geoCacheSvc, cfg.GeopointRefreshAge, cfg.GeopointRefreshInterval)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Handlers
	bannerHandlers := handlers.NewBannerHandlers(bannerRepo)
	categoryHandlers := handlers.NewCategoryHandlers(categoryRepo)
	productHandlers := handlers.NewProductHandlers(productSvc)
	restaurantHandlers := handlers.NewRestaurantHandlers(restaurantRepo, menuItemRepo, productSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/metrics", echo.WrapHandler(registry.Handler()))

	// Customer-facing API
	api := e.Group("/api")
	api.GET("/banners", bannerHandlers.ListBanners)
	api.GET("/products", productHandlers.ListAvailableProducts)
	api.POST("/order", orderHandlers.RegisterOrder)

	// Catalog management
	e.GET("/categories", categoryHandlers.ListCategories)
	e.POST("/categories", categoryHandlers.CreateCategory)
	e.DELETE("/categories/:id", categoryHandlers.DeleteCategory)

	e.GET("/products", productHandlers.ListProducts)
	e.POST("/products", productHandlers.CreateProduct)
	e.GET("/products/:id", productHandlers.GetProduct)
	e.PUT("/products/:id", productHandlers.UpdateProduct)
	e.DELETE("/products/:id", productHandlers.DeleteProduct)

	e.GET("/restaurants", restaurantHandlers.ListRestaurants)
	e.POST("/restaurants", restaurantHandlers.CreateRestaurant)
	e.GET("/restaurants/:id", restaurantHandlers.GetRestaurant)
	e.PUT("/restaurants/:id", restaurantHandlers.UpdateRestaurant)
	e.DELETE("/restaurants/:id", restaurantHandlers.DeleteRestaurant)
	e.GET("/restaurants/:id/menu", restaurantHandlers.ListMenu)
	e.PUT("/restaurants/:id/menu", restaurantHandlers.SetMenuItem)

	// Operator workflow
	e.GET("/orders", orderHandlers.ListOrders)
	e.GET("/orders/:id", orderHandlers.GetOrder)
	e.PUT("/orders/:id/status", orderHandlers.UpdateStatus)
	e.PUT("/orders/:id/restaurant", orderHandlers.AssignRestaurant)
	e.POST("/orders/:id/called", orderHandlers.MarkCalled)
	e.POST("/orders/:id/delivered", orderHandlers.MarkDelivered)
	e.GET("/orders/:id/restaurants", orderHandlers.RankCandidates)

	log.Printf("Foodcart server starting on port %d", cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
