package payment

import "careadmin/internal/transition"

type Operation struct {
	Action      string
	Target      Status
	AllowedFrom []Status
	Hint        string
}

var operations = map[string]Operation{
	"mark-paid": {
		Action:      "MARK_PAYMENT_PAID",
		Target:      StatusPaid,
		AllowedFrom: []Status{StatusPending, StatusFailed},
		Hint:        "Only pending or failed payments can be marked paid",
	},
	"refund": {
		Action:      "REFUND_PAYMENT",
		Target:      StatusRefunded,
		AllowedFrom: []Status{StatusPaid},
		Hint:        "Only paid payments can be refunded",
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
