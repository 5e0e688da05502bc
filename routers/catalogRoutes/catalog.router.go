package catalogRoutes

import (
	catalogController "lingo/controllers/catalog"
	"lingo/middleware"
	catalogValidator "lingo/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes wires course and test-series browsing plus the
// instructor authoring endpoints
func SetupCatalogRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")
	courseGroup.Get("/list", middleware.JWTMiddleware, catalogController.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, catalogValidator.GetCourseDetail(), catalogController.GetCourseDetails)

	seriesGroup := app.Group("/test-series")
	seriesGroup.Get("/list", middleware.JWTMiddleware, catalogController.GetAllTestSeries)
	seriesGroup.Get("/:id", middleware.JWTMiddleware, catalogValidator.GetSeriesDetail(), catalogController.GetTestSeriesDetails)

	instructorGroup := app.Group("/instructor")
	instructorGroup.Post("/course", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), catalogValidator.CreateCourse(), catalogController.CreateCourse)
	instructorGroup.Post("/test-series", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), catalogValidator.CreateTestSeries(), catalogController.CreateTestSeries)
}
