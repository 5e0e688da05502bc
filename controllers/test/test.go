package testController

import (
	"encoding/json"
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/models/catalog"
	"lingo/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTest lets an instructor author a mock test with its questions
func CreateTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedTest").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	test := catalog.MockTest{
		PublicID:       uuid.NewString(),
		InstructorID:   user.ID,
		InstructorName: user.Name,
		Title:          reqData.Title,
		Category:       reqData.Category,
		Level:          reqData.Level,
		Price:          reqData.Price,
		IsPublished:    reqData.IsPublished,
	}
	if reqData.TimeLimit > 0 {
		test.TimeLimit = reqData.TimeLimit
	}
	if reqData.PassingScore > 0 {
		test.PassingScore = reqData.PassingScore
	}

	for _, q := range reqData.Questions {
		question := catalog.Question{
			Type:              q.Type,
			QuestionText:      q.QuestionText,
			MediaURL:          q.MediaURL,
			CorrectAnswerText: q.CorrectAnswerText,
			Points:            q.Points,
		}
		if question.Points <= 0 {
			question.Points = 1
		}
		for _, opt := range q.Options {
			question.Options = append(question.Options, catalog.QuestionOption{
				Text:      opt.Text,
				IsCorrect: opt.IsCorrect,
			})
		}
		test.Questions = append(test.Questions, question)
	}

	if err := database.Database.Db.Create(&test).Error; err != nil {
		log.Printf("Error creating test for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test created!", test)
}

// GetTests lists published tests with optional category/level filters
func GetTests(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&catalog.MockTest{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}

	var tests []catalog.MockTest
	if err := db.Order("created_at desc").Find(&tests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tests fetched successfully!", fiber.Map{
		"tests": tests,
	})
}

// canAccessTest reports whether the user may take a test: free tests are
// open, instructors see their own tests, everything else requires an
// entitlement for the series the test belongs to
func canAccessTest(db *gorm.DB, userID uint, test *catalog.MockTest) bool {
	if test.Price == 0 {
		return true
	}
	if test.InstructorID == userID {
		return true
	}
	if test.SeriesID == nil {
		return false
	}
	var series catalog.TestSeries
	if err := db.Where("id = ?", *test.SeriesID).First(&series).Error; err != nil {
		return false
	}
	return utils.HasEntitlement(db, userID, series.PublicID)
}

// GetTestByID returns one test for the player. Answer keys are stripped for
// anyone who is not the owning instructor.
func GetTestByID(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testID := c.Locals("testID").(string)
	db := database.Database.Db

	var test catalog.MockTest
	if err := db.Preload("Questions.Options").
		Where("public_id = ? AND is_deleted = ? AND is_published = ?", testID, false, true).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test not found!", nil)
	}

	if !canAccessTest(db, userID, &test) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Purchase the test series to unlock this test!", nil)
	}

	if test.InstructorID != userID {
		for i := range test.Questions {
			test.Questions[i].CorrectAnswerText = ""
			for j := range test.Questions[i].Options {
				test.Questions[i].Options[j].IsCorrect = false
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test fetched successfully!", test)
}

// SubmitTest grades the submitted answers and stores the attempt.
// MCQ/MSQ/Listening questions are auto-graded against the option keys.
// Writing and Speaking responses earn zero points here; they are recorded
// for manual review, which happens outside this system.
func SubmitTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	testID := c.Locals("testID").(string)

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers []struct {
			QuestionID        uint   `json:"question_id"`
			SelectedOptionIDs []uint `json:"selected_option_ids"`
			ResponseText      string `json:"response_text"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var test catalog.MockTest
	if err := db.Preload("Questions.Options").
		Where("public_id = ? AND is_deleted = ? AND is_published = ?", testID, false, true).First(&test).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test not found!", nil)
	}

	if !canAccessTest(db, userID, &test) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Purchase the test series to unlock this test!", nil)
	}

	answersByQuestion := make(map[uint]struct {
		SelectedOptionIDs []uint
		ResponseText      string
	})
	for _, a := range reqData.Answers {
		answersByQuestion[a.QuestionID] = struct {
			SelectedOptionIDs []uint
			ResponseText      string
		}{a.SelectedOptionIDs, a.ResponseText}
	}

	score := 0
	totalPoints := 0
	var detailedAnswers []models.TestAnswer

	for _, question := range test.Questions {
		totalPoints += question.Points

		answer, answered := answersByQuestion[question.ID]
		pointsEarned := 0
		isCorrect := false
		rawResponse := ""

		if answered {
			switch question.Type {
			case catalog.QuestionTypeMCQ, catalog.QuestionTypeMSQ, catalog.QuestionTypeListening:
				correctIDs := make(map[uint]bool)
				for _, opt := range question.Options {
					if opt.IsCorrect {
						correctIDs[opt.ID] = true
					}
				}
				matched := 0
				for _, selected := range answer.SelectedOptionIDs {
					if correctIDs[selected] {
						matched++
					}
				}
				if matched == len(correctIDs) && len(answer.SelectedOptionIDs) == len(correctIDs) && len(correctIDs) > 0 {
					isCorrect = true
					pointsEarned = question.Points
				}
				if selectedJSON, err := json.Marshal(answer.SelectedOptionIDs); err == nil {
					rawResponse = string(selectedJSON)
				}
			case catalog.QuestionTypeWriting, catalog.QuestionTypeSpeaking:
				// Zero points until manually reviewed
				rawResponse = answer.ResponseText
			}
		}

		score += pointsEarned
		detailedAnswers = append(detailedAnswers, models.TestAnswer{
			QuestionID:   question.ID,
			Response:     rawResponse,
			IsCorrect:    isCorrect,
			PointsEarned: pointsEarned,
		})
	}

	accuracy := 0.0
	if totalPoints > 0 {
		accuracy = float64(score) / float64(totalPoints) * 100
	}

	resultStatus := "Failed"
	if accuracy >= float64(test.PassingScore) {
		resultStatus = "Passed"
	}

	result := models.TestResult{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		TestID:       test.PublicID,
		TestTitle:    test.Title,
		Score:        score,
		TotalPoints:  totalPoints,
		Accuracy:     accuracy,
		ResultStatus: resultStatus,
		Answers:      detailedAnswers,
		AttemptedAt:  time.Now(),
	}

	if err := db.Create(&result).Error; err != nil {
		log.Printf("Error saving test result for user %d test %s: %v", userID, testID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit test!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test submitted successfully!", result)
}

// GetMyResults lists the user's past attempts
func GetMyResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var results []models.TestResult
	if err := database.Database.Db.Where("user_id = ?", userID).
		Order("attempted_at desc").Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", fiber.Map{
		"results": results,
	})
}
