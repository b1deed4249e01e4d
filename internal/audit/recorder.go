package audit

import (
	"context"
	"log"

	"github.com/google/uuid"

	"careadmin/internal/telemetry"
	"careadmin/internal/transition"
)

// Store is the persistence sink for audit records; tests swap in fakes.
type Store interface {
	Insert(ctx context.Context, rec Record) error
}

// Recorder persists transition audit entries. It never fails the caller: the
// status change has already committed by the time Record runs, so a failed
// insert is retried once against the store and then logged and dropped.
type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) Record(ctx context.Context, e transition.Entry) {
	rec := Record{
		ID:         uuid.NewString(),
		AdminID:    e.AdminID,
		Action:     e.Action,
		EntityKind: e.EntityKind,
		EntityID:   e.EntityID,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Reason:     e.Reason,
		OccurredAt: e.OccurredAt,
	}
	if err := r.store.Insert(ctx, rec); err != nil {
		if err = r.store.Insert(ctx, rec); err != nil {
			telemetry.AuditWriteFailures.Inc()
			log.Printf("[audit] dropping entry %s %s/%s after retry: %v", rec.Action, rec.EntityKind, rec.EntityID, err)
		}
	}
}
