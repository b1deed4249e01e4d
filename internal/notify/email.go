package notify

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"

	"careadmin/internal/telemetry"
	"careadmin/internal/transition"
	"careadmin/pkg/config"
)

// EmailNotifier delivers status-change mail over SMTP. Delivery is best
// effort: a failed send is counted and logged, never surfaced, because the
// transition it announces has already committed.
type EmailNotifier struct {
	cfg config.SMTPConfig
}

func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

func (n *EmailNotifier) Notify(_ context.Context, msg transition.Notification) {
	if n.cfg.Host == "" || msg.Recipient == "" {
		return
	}

	subject := fmt.Sprintf("Your account status is now %s", msg.ToStatus)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "An administrator changed your account status from %s to %s.\r\n", msg.FromStatus, msg.ToStatus)
	if msg.Reason != "" {
		fmt.Fprintf(&b, "\r\nReason: %s\r\n", msg.Reason)
	}
	b.WriteString("\r\nIf you believe this is a mistake, reply to this email.\r\n")

	addr := net.JoinHostPort(n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{msg.Recipient}, []byte(b.String())); err != nil {
		telemetry.NotifyFailures.Inc()
		log.Printf("[notify] email to %s (%s %s -> %s) failed: %v", msg.Recipient, msg.EntityKind, msg.FromStatus, msg.ToStatus, err)
	}
}
