package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"

	"dmac_back_end/internal/models"
)

// smtpConfigured indique si l'envoi de mails est activé. Tout est optionnel :
// sans SMTP on log et on continue.
func smtpConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("SMTP_USERNAME") != ""
}

func sendMail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@dmaclifestyle.co.zw"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}

func orderItemsHTML(items []models.OrderItem) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, it := range items {
		fmt.Fprintf(&b, "<li>%s × %d — $%.2f</li>", it.ProductName, it.Quantity, it.Price*float64(it.Quantity))
	}
	b.WriteString("</ul>")
	return b.String()
}

// NotifyManualOrder prévient l'équipe qu'une commande attend un paiement
// manuel (passerelle absente ou injoignable). Appelé en goroutine.
func NotifyManualOrder(order *models.Order, items []models.OrderItem) {
	if !smtpConfigured() {
		return
	}
	opsEmail := os.Getenv("OPS_EMAIL")
	if opsEmail == "" {
		return
	}

	body := fmt.Sprintf(
		"<h2>Commande en attente de paiement manuel</h2>"+
			"<p>Commande <b>%s</b> — %s (%s, %s)</p>%s<p>Total : <b>$%.2f</b></p>",
		order.ID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		orderItemsHTML(items), order.TotalAmount)

	if err := sendMail(opsEmail, "⚠️ Commande à suivre manuellement — "+order.ID, body); err != nil {
		log.Println("⚠️ Erreur envoi mail ops:", err)
	}
}

// SendPaymentConfirmation confirme au client que son paiement est passé.
// Appelé en goroutine depuis le webhook et le polling.
func SendPaymentConfirmation(order *models.Order, items []models.OrderItem) {
	if !smtpConfigured() {
		return
	}

	body := fmt.Sprintf(
		"<h2>Thank you %s!</h2>"+
			"<p>Your payment for order <b>%s</b> has been received.</p>%s"+
			"<p>Total paid: <b>$%.2f</b></p>"+
			"<p>— DMAC Lifestyle Centre</p>",
		order.CustomerName, order.ID, orderItemsHTML(items), order.TotalAmount)

	if err := sendMail(order.CustomerEmail, "Payment received — DMAC Lifestyle Centre", body); err != nil {
		log.Println("⚠️ Erreur envoi confirmation paiement:", err)
	}
}
