package booking

import "careadmin/internal/transition"

type Operation struct {
	Action      string
	Target      Status
	AllowedFrom []Status
	Hint        string
}

var operations = map[string]Operation{
	"confirm": {
		Action:      "CONFIRM_BOOKING",
		Target:      StatusConfirmed,
		AllowedFrom: []Status{StatusPending},
	},
	"start": {
		Action:      "START_BOOKING",
		Target:      StatusInProgress,
		AllowedFrom: []Status{StatusConfirmed},
	},
	"complete": {
		Action:      "COMPLETE_BOOKING",
		Target:      StatusCompleted,
		AllowedFrom: []Status{StatusInProgress, StatusConfirmed},
	},
	"cancel": {
		Action:      "CANCEL_BOOKING",
		Target:      StatusCancelled,
		AllowedFrom: []Status{StatusPending, StatusConfirmed, StatusInProgress},
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
