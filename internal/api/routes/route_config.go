package routes

import (
	"Supply-Map-Dashboard/internal/api/handlers"
	"Supply-Map-Dashboard/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	MapHandler      handlers.MapHandler
	SupplyHandler   handlers.SupplyHandler
	ActivityHandler handlers.ActivityHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Maps()
	c.SupplyRequests()
	c.ActivityLogs()
	c.GuestRoute()
}

func (c *Config) Maps() {
	maps := c.App.Group("/api/maps")
	{
		maps.Get("", c.MapHandler.GetMaps)
		maps.Get("/:name/items", c.MapHandler.GetMapItems)
		maps.Get("/:name/stats", c.MapHandler.GetMapStats)
	}
}

func (c *Config) SupplyRequests() {
	c.App.Post("/api/supply_request", c.SupplyHandler.CreateSupplyRequest)
	c.App.Get("/api/supply_requests", c.SupplyHandler.GetSupplyRequests)
}

func (c *Config) ActivityLogs() {
	c.App.Get("/api/logs", c.ActivityHandler.GetLogs)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
