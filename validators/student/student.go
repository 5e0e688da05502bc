package studentValidator

import (
	"lingo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func EntitlementList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("userId"))
		if userIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		if itemType := c.Query("type"); itemType != "" && itemType != "Course" && itemType != "TestSeries" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Type must be Course or TestSeries!", nil)
		}

		c.Locals("targetUserId", uint(userID))
		return c.Next()
	}
}

func CourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("courseId"))
		if _, err := uuid.Parse(courseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		if queryUser := c.Query("userId"); queryUser != "" {
			queryUserID, err := strconv.Atoi(queryUser)
			if err != nil || queryUserID <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
			}
			c.Locals("queryUserId", uint(queryUserID))
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func MarkLectureViewed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("courseId"))
		if _, err := uuid.Parse(courseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		lectureID := strings.TrimSpace(c.Params("lectureId"))
		if _, err := uuid.Parse(lectureID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lecture ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("lectureID", lectureID)
		return c.Next()
	}
}
