package user

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusBanned    Status = "banned"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusSuspended, StatusBanned:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown user status: %s", s)
	}
}

// AdminSettable reports whether an administrator may set the status directly.
// Pending is reached only through signup, never by hand.
func AdminSettable(s Status) bool {
	switch s {
	case StatusActive, StatusSuspended, StatusBanned:
		return true
	default:
		return false
	}
}
