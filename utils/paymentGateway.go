package utils

import (
	"encoding/json"
	"fmt"
	"lingo/config"
	"log"

	"github.com/go-resty/resty/v2"
)

// VerifyPayment checks a payment confirmation token with the sandbox
// gateway and returns the payer ID. In mock mode (the default, matching the
// front-end's mock checkout) any non-empty token is accepted.
func VerifyPayment(paymentID string, userID uint) (string, error) {
	if paymentID == "" {
		return "", fmt.Errorf("payment id is empty")
	}

	if config.AppConfig.PaymentMockMode || config.AppConfig.SandboxApiKey == "" {
		return fmt.Sprintf("MOCK_PAYER_%d", userID), nil
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.SandboxApiKey).
		Get(config.AppConfig.SandboxApiURL + "payments/" + paymentID)
	if err != nil {
		log.Printf("[PAYMENT] Error verifying payment %s: %v", paymentID, err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("[PAYMENT] Verification failed for %s: %s", paymentID, resp.String())
		return "", fmt.Errorf("payment verification failed, code: %d", resp.StatusCode())
	}

	var payment struct {
		Status  string `json:"status"`
		PayerID string `json:"payer_id"`
	}
	if err := json.Unmarshal(resp.Body(), &payment); err != nil {
		return "", fmt.Errorf("invalid gateway response: %w", err)
	}
	if payment.Status != "captured" {
		return "", fmt.Errorf("payment not captured, status: %s", payment.Status)
	}

	return payment.PayerID, nil
}
