package catalogValidator

import (
	"lingo/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Subtitle    string  `json:"subtitle"`
			Description string  `json:"description"`
			Category    string  `json:"category"`
			Level       string  `json:"level"`
			Price       float64 `json:"price"`
			Image       string  `json:"image"`
			IsPublished bool    `json:"is_published"`
			Lectures    []struct {
				Title       string `json:"title"`
				VideoURL    string `json:"video_url"`
				FreePreview bool   `json:"free_preview"`
			} `json:"lectures"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if reqData.Level != "" && reqData.Level != "Beginner" && reqData.Level != "Intermediate" && reqData.Level != "Advanced" {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}

		for _, lecture := range reqData.Lectures {
			if strings.TrimSpace(lecture.Title) == "" {
				errors["lectures"] = "Every lecture needs a title!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CreateTestSeries() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string   `json:"title"`
			Subtitle    string   `json:"subtitle"`
			Description string   `json:"description"`
			Category    string   `json:"category"`
			Level       string   `json:"level"`
			Price       float64  `json:"price"`
			Image       string   `json:"image"`
			IsPublished bool     `json:"is_published"`
			TestIDs     []string `json:"test_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		for _, testID := range reqData.TestIDs {
			if _, err := uuid.Parse(testID); err != nil {
				errors["test_ids"] = "Test IDs must be valid identifiers!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestSeries", reqData)
		return c.Next()
	}
}

func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if _, err := uuid.Parse(courseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func GetSeriesDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		seriesID := strings.TrimSpace(c.Params("id"))
		if _, err := uuid.Parse(seriesID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Test Series ID!", nil)
		}

		c.Locals("seriesID", seriesID)
		return c.Next()
	}
}
