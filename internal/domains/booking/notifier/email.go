package notifier

import (
	"bloom/infras/mail"
	"context"
	"fmt"
	"strings"
)

const (
	emailSubject = "Konfirmasi Booking – Bloom Studio"
	defaultName  = "Pelanggan"
)

const emailBody = `
Halo %s 👋

Terima kasih telah melakukan booking di Bloom Studio ✨

Detail booking Anda:
━━━━━━━━━━━━━━━━━━
📌 ID Booking : %s
📦 Paket      : %s
📅 Tanggal    : %s
⏰ Waktu      : %s
━━━━━━━━━━━━━━━━━━

Simpan ID Booking ini untuk pengecekan status booking.

Salam,
Bloom Studio
`

type emailNotifier struct {
	mailer mail.Mailer
}

func NewEmail(mailer mail.Mailer) Notifier {
	return &emailNotifier{mailer: mailer}
}

// RenderEmail builds the confirmation mail for c.
func RenderEmail(c Confirmation) mail.Mail {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = defaultName
	}

	return mail.Mail{
		To:      c.Email,
		Subject: emailSubject,
		Body:    fmt.Sprintf(emailBody, name, c.Code, c.Package, c.Date, c.Time),
	}
}

// Notify does nothing when the customer left no email.
func (n *emailNotifier) Notify(ctx context.Context, c Confirmation) error {
	if strings.TrimSpace(c.Email) == "" {
		return nil
	}

	if err := n.mailer.Send(ctx, RenderEmail(c)); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}
