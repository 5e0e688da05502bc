package catalogController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/models/catalog"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTestSeries lets an instructor bundle existing mock tests into a
// purchasable series
func CreateTestSeries(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedTestSeries").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	series := catalog.TestSeries{
		PublicID:       uuid.NewString(),
		Title:          reqData.Title,
		Subtitle:       reqData.Subtitle,
		Description:    reqData.Description,
		Category:       reqData.Category,
		Level:          reqData.Level,
		Price:          reqData.Price,
		Image:          reqData.Image,
		InstructorID:   user.ID,
		InstructorName: user.Name,
		IsPublished:    reqData.IsPublished,
	}

	if err := db.Create(&series).Error; err != nil {
		log.Printf("Error creating test series for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test series!", nil)
	}

	// Attach only the instructor's own tests to the bundle
	if len(reqData.TestIDs) > 0 {
		if err := db.Model(&catalog.MockTest{}).
			Where("public_id IN ? AND instructor_id = ? AND is_deleted = ?", reqData.TestIDs, user.ID, false).
			Update("series_id", series.ID).Error; err != nil {
			log.Printf("Error attaching tests to series %d: %v", series.ID, err)
		}
	}

	db.Preload("Tests").First(&series, series.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test series created successfully!", series)
}

// GetAllTestSeries lists published test series with optional category filter
func GetAllTestSeries(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&catalog.TestSeries{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var seriesList []catalog.TestSeries
	if err := db.Preload("Tests", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "series_id", "public_id", "title", "level").Where("is_deleted = false")
	}).Order("created_at desc").Find(&seriesList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test series!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test series fetched successfully!", fiber.Map{
		"testSeries": seriesList,
	})
}

// GetTestSeriesDetails returns one published series with its tests
func GetTestSeriesDetails(c *fiber.Ctx) error {
	seriesID := c.Locals("seriesID").(string)

	var series catalog.TestSeries
	if err := database.Database.Db.Preload("Tests", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_deleted = false")
	}).Where("public_id = ? AND is_deleted = ? AND is_published = ?", seriesID, false, true).First(&series).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test series not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test series details fetched successfully!", series)
}
