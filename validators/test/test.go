package testValidator

import (
	"lingo/middleware"
	"lingo/models/catalog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func validQuestionType(t string) bool {
	switch t {
	case catalog.QuestionTypeMCQ, catalog.QuestionTypeMSQ, catalog.QuestionTypeSpeaking,
		catalog.QuestionTypeWriting, catalog.QuestionTypeListening:
		return true
	}
	return false
}

func CreateTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string  `json:"title"`
			Category     string  `json:"category"`
			Level        string  `json:"level"`
			Price        float64 `json:"price"`
			IsPublished  bool    `json:"is_published"`
			TimeLimit    int     `json:"time_limit"`
			PassingScore int     `json:"passing_score"`
			Questions    []struct {
				Type              string `json:"type"`
				QuestionText      string `json:"question_text"`
				MediaURL          string `json:"media_url"`
				CorrectAnswerText string `json:"correct_answer_text"`
				Points            int    `json:"points"`
				Options           []struct {
					Text      string `json:"text"`
					IsCorrect bool   `json:"is_correct"`
				} `json:"options"`
			} `json:"questions"`
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

		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}

		for _, q := range reqData.Questions {
			if strings.TrimSpace(q.QuestionText) == "" {
				errors["questions"] = "Every question needs text!"
				break
			}
			if !validQuestionType(q.Type) {
				errors["questions"] = "Question type must be MCQ, MSQ, Speaking, Writing or Listening!"
				break
			}
			if q.Type == catalog.QuestionTypeMCQ || q.Type == catalog.QuestionTypeMSQ || q.Type == catalog.QuestionTypeListening {
				if len(q.Options) < 2 {
					errors["questions"] = "Choice questions need at least two options!"
					break
				}
				hasCorrect := false
				for _, opt := range q.Options {
					if opt.IsCorrect {
						hasCorrect = true
						break
					}
				}
				if !hasCorrect {
					errors["questions"] = "Choice questions need at least one correct option!"
					break
				}
			}
		}

		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTest", reqData)
		return c.Next()
	}
}

func GetTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		testID := strings.TrimSpace(c.Params("id"))
		if _, err := uuid.Parse(testID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Test ID!", nil)
		}

		c.Locals("testID", testID)
		return c.Next()
	}
}

func SubmitTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		testID := strings.TrimSpace(c.Params("id"))
		if _, err := uuid.Parse(testID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Test ID!", nil)
		}

		reqData := new(struct {
			Answers []struct {
				QuestionID        uint   `json:"question_id"`
				SelectedOptionIDs []uint `json:"selected_option_ids"`
				ResponseText      string `json:"response_text"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "At least one answer is required!",
			})
		}

		c.Locals("testID", testID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
