package transition

import (
	"context"
	"errors"
	"testing"
)

func TestExecuteBulk_EmptyBatchFailsFast(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{}}
	ex := newJobExecutor(repo, &fakeRecorder{})

	if _, err := ex.ExecuteBulk(context.Background(), nil, Request{Target: "cancelled"}, nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestExecuteBulk_FaultIsolationPreservesOrder(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{
		"A": {id: "A", status: "open"},
		"B": {id: "B", status: "completed"}, // guard will deny
		"C": {id: "C", status: "pending"},
	}}
	rec := &fakeRecorder{}
	ex := newJobExecutor(repo, rec)

	out, err := ex.ExecuteBulk(context.Background(), []string{"A", "B", "C"}, Request{
		Target:      "cancelled",
		AllowedFrom: []string{"pending", "open", "active"},
		Action:      "REJECT_JOB",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Succeeded) != 2 || out.Succeeded[0].EntityID() != "A" || out.Succeeded[1].EntityID() != "C" {
		t.Fatalf("expected succeeded [A C], got %+v", out.Succeeded)
	}
	if len(out.Failed) != 1 || out.Failed[0].ID != "B" {
		t.Fatalf("expected failed [B], got %+v", out.Failed)
	}
	if out.Failed[0].Reason == "" {
		t.Fatalf("failure must carry a reason")
	}
	if out.Processed != 2 {
		t.Fatalf("expected processedCount 2, got %d", out.Processed)
	}
	// Audit entries follow iteration order and exist only for successes.
	if len(rec.entries) != 2 || rec.entries[0].EntityID != "A" || rec.entries[1].EntityID != "C" {
		t.Fatalf("expected audit entries for A then C, got %+v", rec.entries)
	}
}

func TestExecuteBulk_MissingIDsAreSkippedSilently(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{
		"A": {id: "A", status: "open"},
	}}
	ex := newJobExecutor(repo, &fakeRecorder{})

	out, err := ex.ExecuteBulk(context.Background(), []string{"ghost", "A"}, Request{
		Target:      "cancelled",
		AllowedFrom: []string{"open"},
		Action:      "CANCEL_JOB",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Succeeded) != 1 || out.Succeeded[0].EntityID() != "A" {
		t.Fatalf("expected only A to succeed, got %+v", out.Succeeded)
	}
	if len(out.Failed) != 0 {
		t.Fatalf("missing ids must not be reported as failures, got %+v", out.Failed)
	}
	if out.Processed != 1 {
		t.Fatalf("expected processedCount 1, got %d", out.Processed)
	}
}

func TestExecuteBulk_PermitPredicateSkipsSilently(t *testing.T) {
	repo := &fakeRepo{entities: map[string]*fakeEntity{
		"u1": {id: "u1", status: "active"},
		"u2": {id: "u2", status: "active", email: "admin@example.com"}, // stands in for a privileged account
		"u3": {id: "u3", status: "active"},
	}}
	ex := &Executor{Kind: "user", Repo: repo, Audit: &fakeRecorder{}}

	out, err := ex.ExecuteBulk(context.Background(), []string{"u1", "u2", "u3"}, Request{
		Target: "suspended",
		Action: "UPDATE_USER_STATUS",
	}, func(ent Entity) bool {
		return ent.EntityID() != "u2"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Succeeded) != 2 || out.Succeeded[0].EntityID() != "u1" || out.Succeeded[1].EntityID() != "u3" {
		t.Fatalf("expected succeeded [u1 u3], got %+v", out.Succeeded)
	}
	if len(out.Failed) != 0 {
		t.Fatalf("permit skips must not appear in failedIds, got %+v", out.Failed)
	}
	if repo.entities["u2"].status != "active" {
		t.Fatalf("skipped entity must not be mutated")
	}
}
