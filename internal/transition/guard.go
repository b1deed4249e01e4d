package transition

import "fmt"

// Decision is the outcome of a guard check. Reason is set only when denied.
type Decision struct {
	Allowed bool
	Reason  string
}

// Decide reports whether an entity currently in status current may move to
// target. Legality is expressed per operation as an explicit allow-list of
// origin statuses, not as one global transition graph: the same destination
// is legal from different origins depending on the verb.
//
// A nil allowedFrom permits every current status (unconditional overwrite,
// used by direct admin "set status" operations). current == target is allowed
// as long as the allow-list includes it, so re-applying a status is a no-op
// rather than an error.
//
// hint, when non-empty, replaces the generated denial message.
func Decide(kind, current, target string, allowedFrom []string, hint string) Decision {
	if allowedFrom == nil {
		return Decision{Allowed: true}
	}
	for _, s := range allowedFrom {
		if s == current {
			return Decision{Allowed: true}
		}
	}
	reason := hint
	if reason == "" {
		reason = fmt.Sprintf("Cannot transition %s from %s to %s", kind, current, target)
	}
	return Decision{Reason: reason}
}
