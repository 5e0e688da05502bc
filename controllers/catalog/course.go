package catalogController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/models/catalog"
	"lingo/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCourse lets an instructor author a course together with its
// curriculum in one request
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := catalog.Course{
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
	for i, lecture := range reqData.Lectures {
		course.Curriculum = append(course.Curriculum, catalog.Lecture{
			PublicID:    uuid.NewString(),
			Title:       lecture.Title,
			VideoURL:    lecture.VideoURL,
			FreePreview: lecture.FreePreview,
			OrderIndex:  i,
		})
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course for instructor %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses lists published courses with optional category filter and
// pagination
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&catalog.Course{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var total int64
	db.Count(&total)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var courses []catalog.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns one published course with its curriculum. Video
// URLs of non-preview lectures are hidden until the user owns the course.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(string)

	db := database.Database.Db

	var course catalog.Course
	if err := db.Preload("Curriculum", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_deleted = false").Order("order_index asc")
	}).Where("public_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	isOwned := utils.HasEntitlement(db, userID, course.PublicID)
	if !isOwned {
		for i := range course.Curriculum {
			if !course.Curriculum[i].FreePreview {
				course.Curriculum[i].VideoURL = ""
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":   course,
		"is_owned": isOwned,
	})
}
