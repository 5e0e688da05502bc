package testRoutes

import (
	testController "lingo/controllers/test"
	"lingo/middleware"
	testValidator "lingo/validators/test"

	"github.com/gofiber/fiber/v2"
)

func SetupTestRoutes(app *fiber.App) {
	testGroup := app.Group("/test")

	testGroup.Get("/list", middleware.JWTMiddleware, testController.GetTests)
	testGroup.Get("/results", middleware.JWTMiddleware, testController.GetMyResults)
	testGroup.Get("/:id", middleware.JWTMiddleware, testValidator.GetTest(), testController.GetTestByID)
	testGroup.Post("/:id/submit", middleware.JWTMiddleware, testValidator.SubmitTest(), testController.SubmitTest)

	instructorGroup := app.Group("/instructor")
	instructorGroup.Post("/test", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), testValidator.CreateTest(), testController.CreateTest)
}
