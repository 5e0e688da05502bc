package studentController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"

	"github.com/gofiber/fiber/v2"
)

// GetEntitlements lists the "my learning" projection rows for a user,
// optionally filtered by item type. Reads only the denormalized projection;
// the catalog is never joined here.
func GetEntitlements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID, ok := c.Locals("targetUserId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	role, _ := c.Locals("role").(string)
	if targetUserID != userID && role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own purchases!", nil)
	}

	db := database.Database.Db.Where("user_id = ?", targetUserID)

	if itemType := c.Query("type"); itemType != "" {
		db = db.Where("item_type = ?", itemType)
	}

	var projections []models.EnrollmentProjection
	if err := db.Order("purchase_date desc").Find(&projections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", fiber.Map{
		"entitlements": projections,
	})
}
