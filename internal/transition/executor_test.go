package transition

import (
	"context"
	"errors"
	"testing"
)

type fakeEntity struct {
	id     string
	status string
	email  string
}

func (f *fakeEntity) EntityID() string     { return f.id }
func (f *fakeEntity) EntityStatus() string { return f.status }
func (f *fakeEntity) NotifyRecipient() string {
	return f.email
}

type fakeRepo struct {
	entities map[string]*fakeEntity
	updates  int
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (Entity, error) {
	e, ok := r.entities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id, status string) (Entity, error) {
	e, ok := r.entities[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.status = status
	r.updates++
	return e, nil
}

type fakeRecorder struct {
	entries []Entry
}

func (r *fakeRecorder) Record(_ context.Context, e Entry) { r.entries = append(r.entries, e) }

type panicRecorder struct{}

func (panicRecorder) Record(context.Context, Entry) { panic("audit store down") }

type fakeNotifier struct {
	sent []Notification
}

func (n *fakeNotifier) Notify(_ context.Context, msg Notification) { n.sent = append(n.sent, msg) }

type panicNotifier struct{}

func (panicNotifier) Notify(context.Context, Notification) { panic("smtp exploded") }

func newJobExecutor(repo *fakeRepo, rec Recorder) *Executor {
	return &Executor{Kind: "job", Repo: repo, Audit: rec}
}

func TestExecute_ApproveJobSucceedsAndAuditsOnce(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{"j1": {id: "j1", status: "open"}}}
	rec := &fakeRecorder{}
	ex := newJobExecutor(repo, rec)

	ent, err := ex.Execute(context.Background(), Request{
		EntityID:    "j1",
		Target:      "confirmed",
		AdminID:     "a1",
		AllowedFrom: []string{"pending", "open", "active"},
		Action:      "APPROVE_JOB",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ent.EntityStatus(); got != "confirmed" {
		t.Fatalf("expected status confirmed, got %s", got)
	}
	if len(rec.entries) != 1 {
		t.Fatalf("expected exactly one audit entry, got %d", len(rec.entries))
	}
	e := rec.entries[0]
	if e.Action != "APPROVE_JOB" || e.FromStatus != "open" || e.ToStatus != "confirmed" {
		t.Fatalf("audit entry mismatch: %+v", e)
	}
	if e.Reason != nil {
		t.Fatalf("expected nil reason, got %q", *e.Reason)
	}
	if e.EntityKind != "job" || e.EntityID != "j1" || e.AdminID != "a1" {
		t.Fatalf("audit identity mismatch: %+v", e)
	}
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{}}
	rec := &fakeRecorder{}
	ex := newJobExecutor(repo, rec)

	_, err := ex.Execute(context.Background(), Request{EntityID: "missing", Target: "confirmed", Action: "APPROVE_JOB"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(rec.entries) != 0 {
		t.Fatalf("not-found must not audit, got %d entries", len(rec.entries))
	}
}

func TestExecute_DeniedTransitionLeavesNoTrace(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{"j1": {id: "j1", status: "completed"}}}
	rec := &fakeRecorder{}
	ex := newJobExecutor(repo, rec)

	_, err := ex.Execute(context.Background(), Request{
		EntityID:    "j1",
		Target:      "confirmed",
		AllowedFrom: []string{"pending", "open", "active"},
		Action:      "APPROVE_JOB",
		Hint:        "Only pending or open jobs can be approved",
	})

	var inv *InvalidTransitionError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if inv.Hint != "Only pending or open jobs can be approved" {
		t.Fatalf("unexpected hint: %q", inv.Hint)
	}
	if repo.entities["j1"].status != "completed" {
		t.Fatalf("denied transition must not mutate the entity")
	}
	if repo.updates != 0 {
		t.Fatalf("expected zero repository updates, got %d", repo.updates)
	}
	if len(rec.entries) != 0 {
		t.Fatalf("denied transition must not audit, got %d entries", len(rec.entries))
	}
}

func TestExecute_ReasonIsCarriedIntoAudit(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{"j1": {id: "j1", status: "open"}}}
	rec := &fakeRecorder{}
	ex := newJobExecutor(repo, rec)

	if _, err := ex.Execute(context.Background(), Request{
		EntityID:    "j1",
		Target:      "cancelled",
		Reason:      "duplicate posting",
		AllowedFrom: []string{"open"},
		Action:      "CANCEL_JOB",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.entries[0].Reason == nil || *rec.entries[0].Reason != "duplicate posting" {
		t.Fatalf("expected audit reason 'duplicate posting', got %+v", rec.entries[0].Reason)
	}
}

func TestExecute_PanickingRecorderDoesNotFailTheTransition(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{"j1": {id: "j1", status: "open"}}}
	ex := newJobExecutor(repo, panicRecorder{})

	ent, err := ex.Execute(context.Background(), Request{
		EntityID:    "j1",
		Target:      "confirmed",
		AllowedFrom: []string{"open"},
		Action:      "APPROVE_JOB",
	})
	if err != nil {
		t.Fatalf("recorder failure must not surface, got %v", err)
	}
	if ent.EntityStatus() != "confirmed" {
		t.Fatalf("expected committed status, got %s", ent.EntityStatus())
	}
}

func TestExecute_PanickingNotifierDoesNotFailTheTransition(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{"u1": {id: "u1", status: "active", email: "u1@example.com"}}}
	ex := &Executor{Kind: "user", Repo: repo, Audit: &fakeRecorder{}, Notifier: panicNotifier{}}

	ent, err := ex.Execute(context.Background(), Request{
		EntityID: "u1",
		Target:   "suspended",
		Action:   "UPDATE_USER_STATUS",
	})
	if err != nil {
		t.Fatalf("notifier failure must not surface, got %v", err)
	}
	if ent.EntityStatus() != "suspended" {
		t.Fatalf("expected committed status, got %s", ent.EntityStatus())
	}
}

func TestExecute_NotifiesRecipientWithStatusChange(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{"u1": {id: "u1", status: "active", email: "u1@example.com"}}}
	notifier := &fakeNotifier{}
	ex := &Executor{Kind: "user", Repo: repo, Audit: &fakeRecorder{}, Notifier: notifier}

	if _, err := ex.Execute(context.Background(), Request{
		EntityID: "u1",
		Target:   "banned",
		Reason:   "repeated no-shows",
		Action:   "UPDATE_USER_STATUS",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	msg := notifier.sent[0]
	if msg.Recipient != "u1@example.com" || msg.FromStatus != "active" || msg.ToStatus != "banned" || msg.Reason != "repeated no-shows" {
		t.Fatalf("notification mismatch: %+v", msg)
	}
}

func TestExecute_NoNotificationWithoutRecipient(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{"u1": {id: "u1", status: "active"}}}
	notifier := &fakeNotifier{}
	ex := &Executor{Kind: "user", Repo: repo, Audit: &fakeRecorder{}, Notifier: notifier}

	if _, err := ex.Execute(context.Background(), Request{EntityID: "u1", Target: "suspended", Action: "UPDATE_USER_STATUS"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("entity without a recipient must not notify")
	}
}
