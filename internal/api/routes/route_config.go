package routes

import (
	"HomeLedger-Backend/internal/api/handlers"
	"HomeLedger-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	GroceryHandler      handlers.GroceryHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Groceries()
	c.Subscriptions()
	c.GuestRoute()
}

func (c *Config) Groceries() {
	groceries := c.App.Group("/groceries")
	{
		groceries.Get("/summary/:userId", c.GroceryHandler.GetGrocerySummary)
		groceries.Get("/:userId", c.GroceryHandler.GetGroceries)
		groceries.Post("", c.GroceryHandler.AddGrocery)
		groceries.Patch("/:id/toggle", c.GroceryHandler.ToggleGrocery)
		groceries.Put("/:id", c.GroceryHandler.UpdateGrocery)
		groceries.Delete("/:id", c.GroceryHandler.DeleteGrocery)
		groceries.Delete("", c.GroceryHandler.ClearGroceries)
	}
}

func (c *Config) Subscriptions() {
	subscriptions := c.App.Group("/subscriptions")
	{
		subscriptions.Get("/summary/:userId", c.SubscriptionHandler.GetSubscriptionSummary)
		subscriptions.Get("/:userId", c.SubscriptionHandler.GetSubscriptions)
		subscriptions.Post("", c.SubscriptionHandler.CreateSubscription)
		subscriptions.Delete("/:id", c.SubscriptionHandler.DeleteSubscription)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
