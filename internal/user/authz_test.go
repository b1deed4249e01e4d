package user

import (
	"context"
	"testing"

	"careadmin/internal/admin"
	"careadmin/internal/transition"
)

type memStore struct {
	users map[string]*User
}

func (s memStore) FindByID(_ context.Context, id string) (transition.Entity, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, transition.ErrNotFound
	}
	return u, nil
}

func (s memStore) UpdateStatus(_ context.Context, id, status string) (transition.Entity, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, transition.ErrNotFound
	}
	u.Status = Status(status)
	return u, nil
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, transition.Entry) {}

func TestBulkStatus_AdminAccountSkippedForNonSuperadmin(t *testing.T) {
	store := memStore{users: map[string]*User{
		"u1": {ID: "u1", Role: "caregiver", Status: StatusActive},
		"u2": {ID: "u2", Role: "admin", Status: StatusActive},
		"u3": {ID: "u3", Role: "family", Status: StatusActive},
	}}
	ex := &transition.Executor{Kind: "user", Repo: store, Audit: nopRecorder{}}
	caller := &admin.Admin{ID: "a1", Role: admin.RoleAdmin}

	out, err := ex.ExecuteBulk(context.Background(), []string{"u1", "u2", "u3"}, transition.Request{
		Target:  "suspended",
		AdminID: caller.ID,
		Action:  "UPDATE_USER_STATUS",
	}, PermittedBy(caller))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Succeeded) != 2 || out.Succeeded[0].EntityID() != "u1" || out.Succeeded[1].EntityID() != "u3" {
		t.Fatalf("expected succeeded [u1 u3], got %+v", out.Succeeded)
	}
	if len(out.Failed) != 0 {
		t.Fatalf("skipped admin account must not be reported as a failure, got %+v", out.Failed)
	}
	if out.Processed != 2 {
		t.Fatalf("expected processedCount 2, got %d", out.Processed)
	}
	if store.users["u2"].Status != StatusActive {
		t.Fatalf("admin account must be untouched")
	}
}

func TestBulkStatus_SuperadminMayAlterAdminAccounts(t *testing.T) {
	store := memStore{users: map[string]*User{
		"u2": {ID: "u2", Role: "admin", Status: StatusActive},
	}}
	ex := &transition.Executor{Kind: "user", Repo: store, Audit: nopRecorder{}}
	caller := &admin.Admin{ID: "a1", Role: admin.RoleSuperadmin}

	out, err := ex.ExecuteBulk(context.Background(), []string{"u2"}, transition.Request{
		Target:  "suspended",
		AdminID: caller.ID,
		Action:  "UPDATE_USER_STATUS",
	}, PermittedBy(caller))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Processed != 1 || store.users["u2"].Status != StatusSuspended {
		t.Fatalf("superadmin should be able to suspend an admin account, got %+v", out)
	}
}

func TestAdminSettable(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusSuspended, StatusBanned} {
		if !AdminSettable(s) {
			t.Fatalf("%s should be settable", s)
		}
	}
	if AdminSettable(StatusPending) {
		t.Fatalf("pending must not be settable by hand")
	}
}
