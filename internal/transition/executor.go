package transition

import (
	"context"
	"log"
	"time"

	"careadmin/internal/telemetry"
)

// Entity is the minimal view of a transitionable record: jobs, bookings,
// users, and payments all satisfy it.
type Entity interface {
	EntityID() string
	EntityStatus() string
}

// Notifiable marks entities whose owner should hear about status changes.
// Only user accounts carry a recipient in the current surface.
type Notifiable interface {
	NotifyRecipient() string
}

// Repository is the storage collaborator for one entity kind. Adapters map
// their backend's not-found into ErrNotFound.
type Repository interface {
	FindByID(ctx context.Context, id string) (Entity, error)
	UpdateStatus(ctx context.Context, id, status string) (Entity, error)
}

// Entry is the audit record of one committed transition.
type Entry struct {
	AdminID    string
	Action     string
	EntityKind string
	EntityID   string
	FromStatus string
	ToStatus   string
	Reason     *string
	OccurredAt time.Time
}

// Recorder appends audit entries. It has no error return: persistence
// problems are the recorder's to absorb, never the transition's.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Notification is a human-facing status-change message.
type Notification struct {
	EntityKind string
	EntityID   string
	Recipient  string
	FromStatus string
	ToStatus   string
	Reason     string
}

// Notifier delivers notifications best effort. The signature returns nothing
// so an implementation structurally cannot fail the transition that already
// committed.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Request names a single transition: which entity, where to, who asked, and
// under which operation's rules. A nil AllowedFrom permits any current status.
type Request struct {
	EntityID    string
	Target      string
	AdminID     string
	Reason      string
	AllowedFrom []string
	Action      string
	Hint        string
}

// Executor runs the canonical single-entity workflow: fetch, guard, persist,
// audit, notify. One executor is wired per entity kind.
type Executor struct {
	Kind     string
	Repo     Repository
	Audit    Recorder
	Notifier Notifier // nil when the kind has no notification policy
}

// Execute performs one guarded transition. It returns the updated entity, or
// ErrNotFound / *InvalidTransitionError. Exactly one repository mutation, at
// most one audit write, and at most one notification attempt happen per call;
// the executor never retries.
func (e *Executor) Execute(ctx context.Context, req Request) (Entity, error) {
	ent, err := e.Repo.FindByID(ctx, req.EntityID)
	if err != nil {
		if err == ErrNotFound {
			telemetry.Transitions.WithLabelValues(e.Kind, req.Action, "not_found").Inc()
		}
		return nil, err
	}
	from := ent.EntityStatus()

	if d := Decide(e.Kind, from, req.Target, req.AllowedFrom, req.Hint); !d.Allowed {
		telemetry.Transitions.WithLabelValues(e.Kind, req.Action, "denied").Inc()
		return nil, &InvalidTransitionError{Hint: d.Reason}
	}

	updated, err := e.Repo.UpdateStatus(ctx, req.EntityID, req.Target)
	if err != nil {
		return nil, err
	}

	// The status update has committed; everything below is best effort and
	// must not turn the call into a failure.
	var reason *string
	if req.Reason != "" {
		r := req.Reason
		reason = &r
	}
	if e.Audit != nil {
		shielded("audit", func() {
			e.Audit.Record(ctx, Entry{
				AdminID:    req.AdminID,
				Action:     req.Action,
				EntityKind: e.Kind,
				EntityID:   req.EntityID,
				FromStatus: from,
				ToStatus:   req.Target,
				Reason:     reason,
				OccurredAt: time.Now(),
			})
		})
	}
	if e.Notifier != nil {
		if n, ok := updated.(Notifiable); ok {
			if to := n.NotifyRecipient(); to != "" {
				shielded("notify", func() {
					e.Notifier.Notify(ctx, Notification{
						EntityKind: e.Kind,
						EntityID:   req.EntityID,
						Recipient:  to,
						FromStatus: from,
						ToStatus:   req.Target,
						Reason:     req.Reason,
					})
				})
			}
		}
	}

	telemetry.Transitions.WithLabelValues(e.Kind, req.Action, "allowed").Inc()
	return updated, nil
}

// shielded runs a side effect that must never take down a committed
// transition, even if the implementation panics.
func shielded(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[transition] %s side effect panicked: %v", name, r)
		}
	}()
	fn()
}
