package resourceValidator

import (
	"lingo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validLanguages = map[string]bool{
	"English":  true,
	"Japanese": true,
	"German":   true,
	"Sanskrit": true,
}

var validCategories = map[string]bool{
	"Alphabet":         true,
	"Grammar":          true,
	"Vocabulary":       true,
	"Stories":          true,
	"AdvancedPractice": true,
}

func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Language string `json:"language"`
			Category string `json:"category"`
			Level    int    `json:"level"`
			SubType  string `json:"sub_type"`
			IsFree   bool   `json:"is_free"`
			Title    string `json:"title"`
			Entries  []struct {
				Term               string `json:"term"`
				Pronunciation      string `json:"pronunciation"`
				TranslationHindi   string `json:"translation_hindi"`
				TranslationMarathi string `json:"translation_marathi"`
				TranslationEnglish string `json:"translation_english"`
				Definition         string `json:"definition"`
				ExampleSentence    string `json:"example_sentence"`
				AudioURL           string `json:"audio_url"`
				Image              string `json:"image"`
			} `json:"entries"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !validLanguages[reqData.Language] {
			errors["language"] = "Language must be English, Japanese, German or Sanskrit!"
		}

		if !validCategories[reqData.Category] {
			errors["category"] = "Category must be Alphabet, Grammar, Vocabulary, Stories or AdvancedPractice!"
		}

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

func GetResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resourceIDStr := strings.TrimSpace(c.Params("id"))
		if resourceIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource ID is required!", nil)
		}

		resourceID, err := strconv.Atoi(resourceIDStr)
		if err != nil || resourceID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Resource ID!", nil)
		}

		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}
