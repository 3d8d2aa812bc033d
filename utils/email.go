package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendBookingConfirmationEmail sends a plain-text booking confirmation.
// When SMTP env vars are not configured the message is logged instead, so
// local development never needs a mail server. Callers treat failures as
// best-effort: a booking is never rolled back because mail bounced.
func SendBookingConfirmationEmail(
	recipientEmail,
	guestName,
	referenceCode,
	roomTypeName,
	checkInDate,
	checkOutDate string,
	nights int,
) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Reservations")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s booking:%s room:%s stay:%s..%s (%d nights)",
			recipientEmail, referenceCode, roomTypeName, checkInDate, checkOutDate, nights)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	guestName = safe(guestName)
	referenceCode = safe(referenceCode)
	roomTypeName = safe(roomTypeName)

	subject := fmt.Sprintf("Booking Confirmation %s", referenceCode)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for booking with us! Here are your booking details:\n\n"+
			"Booking Reference: %s\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n\n"+
			"If you have any questions, feel free to contact us.\n\n"+
			"Best regards,\n%s",
		guestName, referenceCode, roomTypeName, checkInDate, checkOutDate, nights, fromName,
	)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipientEmail}, []byte(sb.String())); err != nil {
		log.Printf("❌ Failed to send confirmation email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("📨 Confirmation email sent to %s (booking %s)", recipientEmail, referenceCode)
	return nil
}
