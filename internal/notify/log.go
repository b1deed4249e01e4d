package notify

import (
	"context"
	"log"

	"careadmin/internal/transition"
)

// LogNotifier writes would-be notifications to the process log. Used in dev
// when SMTP is not configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, msg transition.Notification) {
	log.Printf("[notify] %s %s: status %s -> %s (to %s)", msg.EntityKind, msg.EntityID, msg.FromStatus, msg.ToStatus, msg.Recipient)
}
