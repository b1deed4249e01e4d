package job

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusOpen      Status = "open"
	StatusActive    Status = "active"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusInactive  Status = "inactive"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusOpen, StatusActive, StatusConfirmed, StatusCompleted, StatusCancelled, StatusInactive:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown job status: %s", s)
	}
}
