package studentRoutes

import (
	studentController "lingo/controllers/student"
	"lingo/middleware"
	studentValidator "lingo/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes wires the "my learning" and progress-tracking endpoints
func SetupStudentRoutes(app *fiber.App) {
	app.Get("/users/:userId/entitlements", middleware.JWTMiddleware, studentValidator.EntitlementList(), studentController.GetEntitlements)

	progressGroup := app.Group("/courses/:courseId/progress")
	progressGroup.Get("/", middleware.JWTMiddleware, studentValidator.CourseProgress(), studentController.GetCourseProgress)
	progressGroup.Post("/lectures/:lectureId/viewed", middleware.JWTMiddleware, studentValidator.MarkLectureViewed(), studentController.MarkLectureViewed)
	progressGroup.Post("/reset", middleware.JWTMiddleware, studentValidator.CourseProgress(), studentController.ResetCourseProgress)
}
