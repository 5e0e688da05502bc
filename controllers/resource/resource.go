package resourceController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CreateResource lets an instructor publish a language resource with its
// entries in one request
func CreateResource(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource := models.Resource{
		Language: reqData.Language,
		Category: reqData.Category,
		Level:    reqData.Level,
		SubType:  reqData.SubType,
		IsFree:   reqData.IsFree,
		Title:    reqData.Title,
	}
	if resource.Level < 1 {
		resource.Level = 1
	}
	if resource.SubType == "" {
		resource.SubType = "General"
	}
	for _, entry := range reqData.Entries {
		resource.Entries = append(resource.Entries, models.ResourceEntry{
			Term:               entry.Term,
			Pronunciation:      entry.Pronunciation,
			TranslationHindi:   entry.TranslationHindi,
			TranslationMarathi: entry.TranslationMarathi,
			TranslationEnglish: entry.TranslationEnglish,
			Definition:         entry.Definition,
			ExampleSentence:    entry.ExampleSentence,
			AudioURL:           entry.AudioURL,
			Image:              entry.Image,
		})
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		log.Printf("Error creating resource for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// GetResources lists resources filtered by language, category and level.
// Entries are not included in the listing; fetch a single resource for them.
func GetResources(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Resource{}).Where("is_deleted = ?", false)

	if language := c.Query("language"); language != "" {
		db = db.Where("language = ?", language)
	}
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		if levelInt, err := strconv.Atoi(level); err == nil {
			db = db.Where("level = ?", levelInt)
		}
	}

	var resources []models.Resource
	if err := db.Order("level asc, created_at asc").Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}

// GetResourceByID returns one resource with all its entries
func GetResourceByID(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(int)

	var resource models.Resource
	if err := database.Database.Db.Preload("Entries").
		Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully!", resource)
}
