package main

import (
	"lingo/config"
	"lingo/database"
	authRoutes "lingo/routers/authRoutes"
	catalogRoutes "lingo/routers/catalogRoutes"
	orderRoutes "lingo/routers/orderRoutes"
	resourceRoutes "lingo/routers/resourceRoutes"
	studentRoutes "lingo/routers/studentRoutes"
	testRoutes "lingo/routers/testRoutes"
	"lingo/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.ClientURL,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	testRoutes.SetupTestRoutes(app)
	resourceRoutes.SetupResourceRoutes(app)

	// Converges confirmed orders whose fan-out did not fully apply
	utils.InitializeFulfillmentReconciler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
