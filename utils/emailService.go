package utils

import (
	"fmt"
	"lingo/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendPurchaseReceipt emails the purchase confirmation after a successful
// capture. Best effort: callers run it in a goroutine and a failure never
// affects the order flow.
func SendPurchaseReceipt(toEmail, toName, itemTitle string, amount float64, orderID uint) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("[EMAIL] Sendgrid key not configured, skipping receipt for order %d", orderID)
		return nil
	}

	from := mail.NewEmail("LingoLeap", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("Your purchase is confirmed: %s", itemTitle)

	plain := fmt.Sprintf("Hi %s,\n\nYour order #%d for %s (₹%.2f) is confirmed. It is now available under My Learning.\n\n- LingoLeap", toName, orderID, itemTitle, amount)
	html := getReceiptTemplate(toName, itemTitle, amount, orderID)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending receipt for order %d: %v", orderID, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] Sendgrid rejected receipt for order %d: %d %s", orderID, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	log.Printf("[EMAIL] Receipt sent for order %d to %s", orderID, toEmail)
	return nil
}

func getReceiptTemplate(name, itemTitle string, amount float64, orderID uint) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>LingoLeap</h1></div>
			<div class="content">
				<h2>Purchase confirmed</h2>
				<p>Hi %s,</p>
				<p>Thank you for your purchase. Your order is confirmed and the content is unlocked under <b>My Learning</b>.</p>
				<div class="info-box">
					<p><b>Order:</b> #%d<br/>
					<b>Item:</b> %s<br/>
					<b>Amount:</b> ₹%.2f</p>
				</div>
			</div>
			<div class="footer">This is an automated email, please do not reply.</div>
		</div>
	</body>
	</html>`, name, orderID, itemTitle, amount)
}
