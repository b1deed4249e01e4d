package job

import "careadmin/internal/transition"

// Operation is one admin verb over a job: its audit action, destination
// status, and the statuses it may start from. Allow-lists overlap across
// verbs on purpose; they do not form a single transition graph.
type Operation struct {
	Action      string
	Target      Status
	AllowedFrom []Status
	Hint        string
}

var operations = map[string]Operation{
	"approve": {
		Action:      "APPROVE_JOB",
		Target:      StatusConfirmed,
		AllowedFrom: []Status{StatusPending, StatusOpen, StatusActive},
		Hint:        "Only pending or open jobs can be approved",
	},
	"reject": {
		Action:      "REJECT_JOB",
		Target:      StatusCancelled,
		AllowedFrom: []Status{StatusPending, StatusOpen, StatusActive},
	},
	"cancel": {
		Action:      "CANCEL_JOB",
		Target:      StatusCancelled,
		AllowedFrom: []Status{StatusOpen, StatusConfirmed, StatusPending, StatusActive},
	},
	"complete": {
		Action:      "COMPLETE_JOB",
		Target:      StatusCompleted,
		AllowedFrom: []Status{StatusConfirmed, StatusOpen, StatusActive},
	},
	"reopen": {
		Action:      "REOPEN_JOB",
		Target:      StatusOpen,
		AllowedFrom: []Status{StatusCancelled, StatusCompleted, StatusInactive},
	},
}

func (op Operation) request(id, adminID, reason string) transition.Request {
	return transition.Request{
		EntityID:    id,
		Target:      string(op.Target),
		AdminID:     adminID,
		Reason:      reason,
		AllowedFrom: statusStrings(op.AllowedFrom),
		Action:      op.Action,
		Hint:        op.Hint,
	}
}

// statusStrings keeps nil as nil: a nil allow-list means any origin.
func statusStrings(in []Status) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
