package resourceRoutes

import (
	resourceController "lingo/controllers/resource"
	"lingo/middleware"
	resourceValidator "lingo/validators/resource"

	"github.com/gofiber/fiber/v2"
)

func SetupResourceRoutes(app *fiber.App) {
	resourceGroup := app.Group("/resource")

	resourceGroup.Get("/list", middleware.JWTMiddleware, resourceController.GetResources)
	resourceGroup.Get("/:id", middleware.JWTMiddleware, resourceValidator.GetResource(), resourceController.GetResourceByID)
	resourceGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), resourceValidator.CreateResource(), resourceController.CreateResource)
}
