package orderController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/models/catalog"
	orderModels "lingo/models/order"
	"lingo/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder resolves the target catalog item, prices it server-side and
// persists a pending order with a single snapshot line. Retrying creates a
// new pending order; only capture mutates state beyond the ledger.
func CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedOrder").(*struct {
		UserID         uint    `json:"userId"`
		UserName       string  `json:"userName"`
		UserEmail      string  `json:"userEmail"`
		ItemID         string  `json:"itemId"`
		ItemTitle      string  `json:"itemTitle"`
		ItemImage      string  `json:"itemImage"`
		InstructorID   uint    `json:"instructorId"`
		InstructorName string  `json:"instructorName"`
		Price          float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.UserID != 0 && reqData.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Order purchaser does not match the logged in user!", nil)
	}

	db := database.Database.Db

	// Resolve the item against the catalog, courses first then test series.
	// Title, price and instructor always come from the resolved item; the
	// client-supplied fields are advisory display data at best.
	var (
		itemType       string
		title          string
		price          float64
		image          string
		instructorID   uint
		instructorName string
	)

	var course catalog.Course
	if err := db.Where("public_id = ? AND is_deleted = ? AND is_published = ?", reqData.ItemID, false, true).First(&course).Error; err == nil {
		itemType = models.ItemTypeCourse
		title = course.Title
		price = course.Price
		image = course.Image
		instructorID = course.InstructorID
		instructorName = course.InstructorName
	} else {
		var series catalog.TestSeries
		if err := db.Where("public_id = ? AND is_deleted = ? AND is_published = ?", reqData.ItemID, false, true).First(&series).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
		}
		itemType = models.ItemTypeTestSeries
		title = series.Title
		price = series.Price
		image = series.Image
		instructorID = series.InstructorID
		instructorName = series.InstructorName
	}

	if image == "" {
		image = reqData.ItemImage
	}

	newOrder := orderModels.Order{
		UserID:            user.ID,
		UserName:          user.Name,
		UserEmail:         user.Email,
		OrderStatus:       orderModels.OrderStatusPending,
		PaymentMethod:     "mock-gateway",
		PaymentStatus:     orderModels.PaymentStatusPending,
		OrderDate:         time.Now(),
		TotalAmount:       price,
		FulfillmentStatus: orderModels.FulfillmentPending,
		Lines: []orderModels.OrderLine{{
			ItemID:         reqData.ItemID,
			ItemType:       itemType,
			Title:          title,
			Price:          price,
			Image:          image,
			InstructorID:   instructorID,
			InstructorName: instructorName,
		}},
	}

	if err := db.Create(&newOrder).Error; err != nil {
		log.Printf("Error creating order for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order initiated", fiber.Map{
		"orderId":   newOrder.ID,
		"amount":    price,
		"itemTitle": title,
	})
}

// CapturePayment confirms the payment for a pending order and applies the
// fulfillment fan-out. Re-invoking with the same payment token converges any
// subordinate state that did not apply the first time; a different token on
// a confirmed order is rejected.
func CapturePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCapture").(*struct {
		OrderID      uint   `json:"orderId"`
		PaymentToken string `json:"paymentToken"`
		UserID       uint   `json:"userId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var ord orderModels.Order
	if err := db.Preload("Lines").Where("id = ?", reqData.OrderID).First(&ord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if ord.UserID != userID || (reqData.UserID != 0 && reqData.UserID != ord.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Order does not belong to this user!", nil)
	}

	if len(ord.Lines) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Corrupted order!", nil)
	}

	newlyConfirmed := false

	if ord.OrderStatus == orderModels.OrderStatusConfirmed {
		if ord.PaymentID != reqData.PaymentToken {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order already confirmed with a different payment!", nil)
		}
		// Same token retried: fall through and converge the fan-out.
	} else {
		payerID, err := utils.VerifyPayment(reqData.PaymentToken, ord.UserID)
		if err != nil {
			log.Printf("Payment verification failed for order %d: %v", ord.ID, err)
			ord.PaymentStatus = orderModels.PaymentStatusFailed
			if saveErr := db.Save(&ord).Error; saveErr != nil {
				log.Printf("Error recording failed payment for order %d: %v", ord.ID, saveErr)
			}
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed!", nil)
		}

		ord.PaymentStatus = orderModels.PaymentStatusPaid
		ord.OrderStatus = orderModels.OrderStatusConfirmed
		ord.PaymentID = reqData.PaymentToken
		ord.PayerID = payerID
		if err := db.Save(&ord).Error; err != nil {
			log.Printf("Error confirming order %d: %v", ord.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm order!", nil)
		}
		newlyConfirmed = true
	}

	// Subordinate steps are best-effort: a failure here is logged, the order
	// stays partial and the reconciler converges it later. The payment result
	// above is already durable and is reported accurately either way.
	if utils.FinalizeOrderFulfillment(db, &ord) {
		ord.FulfillmentStatus = orderModels.FulfillmentComplete
	} else {
		ord.FulfillmentStatus = orderModels.FulfillmentPartial
	}
	if err := db.Model(&ord).Update("fulfillment_status", ord.FulfillmentStatus).Error; err != nil {
		log.Printf("Error updating fulfillment status for order %d: %v", ord.ID, err)
	}

	if newlyConfirmed {
		line := ord.Lines[0]
		go utils.SendPurchaseReceipt(ord.UserEmail, ord.UserName, line.Title, ord.TotalAmount, ord.ID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order confirmed", fiber.Map{
		"order": ord,
	})
}
