package orderValidator

import (
	"lingo/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ItemID) == "" {
			errors["itemId"] = "Item ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}

func Capture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OrderID      uint   `json:"orderId"`
			PaymentToken string `json:"paymentToken"`
			UserID       uint   `json:"userId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OrderID == 0 {
			errors["orderId"] = "Order ID is required!"
		}

		if strings.TrimSpace(reqData.PaymentToken) == "" {
			errors["paymentToken"] = "Payment token is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCapture", reqData)
		return c.Next()
	}
}
