package config

import (
	"Supply-Map-Dashboard/internal/api/handlers"
	"Supply-Map-Dashboard/internal/api/routes"
	"Supply-Map-Dashboard/internal/middleware"
	"Supply-Map-Dashboard/internal/utils"
	"Supply-Map-Dashboard/pkg/activity"
	"Supply-Map-Dashboard/pkg/mapdata"
	"Supply-Map-Dashboard/pkg/supply"
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// static dashboard resources
	mapsDir := utils.GetConfig("MAPS_DIR")
	if mapsDir == "" {
		mapsDir = "./maps"
	}
	dataDir := utils.GetConfig("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	app.Static("/maps", mapsDir)
	app.Static("/data", dataDir)

	// Repository
	activityRepository := activity.NewActivityRepository(db)
	supplyRepository := supply.NewSupplyRepository(db)
	mapRepository := mapdata.NewMapRepository(mapsDir, dataDir)

	// Service
	activityService := activity.NewActivityService(activityRepository)
	supplyService := supply.NewSupplyService(supplyRepository, activityService)
	mapService := mapdata.NewMapService(mapRepository, activityService)

	// Handler
	mapHandler := handlers.NewMapHandler(mapService)
	supplyHandler := handlers.NewSupplyHandler(supplyService, validator)
	activityHandler := handlers.NewActivityHandler(activityService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		MapHandler:      mapHandler,
		SupplyHandler:   supplyHandler,
		ActivityHandler: activityHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
