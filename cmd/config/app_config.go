package config

import (
	"HomeLedger-Backend/internal/api/handlers"
	"HomeLedger-Backend/internal/api/routes"
	"HomeLedger-Backend/internal/middleware"
	"HomeLedger-Backend/internal/utils"
	"HomeLedger-Backend/internal/utils/storage"
	"HomeLedger-Backend/pkg/grocery"
	"HomeLedger-Backend/pkg/subscription"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Paris",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	groceryRepository := grocery.NewGroceryRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	groceryService := grocery.NewGroceryService(groceryRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, s3)

	// Handler
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		GroceryHandler:      groceryHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
