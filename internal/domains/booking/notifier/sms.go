package notifier

import (
	"bloom/infras/twilio"
	"context"
	"fmt"
	"strings"
)

const smsBody = "Bloom Studio: booking %s (%s) tanggal %s jam %s sudah kami terima. Simpan ID Booking ini untuk cek status."

type smsNotifier struct {
	sender twilio.Sender
}

func NewSMS(sender twilio.Sender) Notifier {
	return &smsNotifier{sender: sender}
}

func RenderSMS(c Confirmation) string {
	return fmt.Sprintf(smsBody, c.Code, c.Package, c.Date, c.Time)
}

func (n *smsNotifier) Notify(ctx context.Context, c Confirmation) error {
	if strings.TrimSpace(c.Phone) == "" {
		return nil
	}

	if _, err := n.sender.Send(ctx, c.Phone, RenderSMS(c)); err != nil {
		return fmt.Errorf("failed to send confirmation sms: %w", err)
	}

	return nil
}
