package orderRoutes

import (
	orderController "lingo/controllers/order"
	"lingo/middleware"
	orderValidator "lingo/validators/order"

	"github.com/gofiber/fiber/v2"
)

// SetupOrderRoutes wires the fulfillment workflow endpoints
func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/order")

	orderGroup.Post("/", middleware.JWTMiddleware, orderValidator.CreateOrder(), orderController.CreateOrder)
	orderGroup.Post("/capture", middleware.JWTMiddleware, orderValidator.Capture(), orderController.CapturePayment)
}
