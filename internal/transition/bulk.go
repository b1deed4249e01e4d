package transition

import (
	"context"
	"errors"
	"log"
)

// Failure is one item that errored inside a bulk run.
type Failure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Outcome summarizes a bulk run. Skipped ids (not found, or rejected by the
// permit predicate) appear in neither list; Processed counts successes only.
type Outcome struct {
	Succeeded []Entity  `json:"succeeded"`
	Failed    []Failure `json:"failedIds"`
	Processed int       `json:"processedCount"`
}

// ExecuteBulk applies the same transition to each id with per-item fault
// isolation: one bad record never aborts the rest of the batch. Items run
// strictly in order so audit entries land in a reproducible sequence and the
// repository is not hit by a burst of concurrent writes.
//
// Missing ids are skipped silently rather than failed, as are items the
// permit predicate rejects; mixed-permission batches still go through for the
// permitted subset. Skips are logged for operators.
func (e *Executor) ExecuteBulk(ctx context.Context, ids []string, req Request, permit func(Entity) bool) (*Outcome, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyBatch
	}

	out := &Outcome{Succeeded: []Entity{}, Failed: []Failure{}}
	for _, id := range ids {
		ent, err := e.Repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				log.Printf("[transition] bulk %s %s: id %s not found, skipped", e.Kind, req.Action, id)
				continue
			}
			out.Failed = append(out.Failed, Failure{ID: id, Reason: err.Error()})
			continue
		}
		if permit != nil && !permit(ent) {
			log.Printf("[transition] bulk %s %s: id %s not permitted for caller, skipped", e.Kind, req.Action, id)
			continue
		}

		item := req
		item.EntityID = id
		updated, err := e.Execute(ctx, item)
		if err != nil {
			out.Failed = append(out.Failed, Failure{ID: id, Reason: err.Error()})
			continue
		}
		out.Succeeded = append(out.Succeeded, updated)
	}

	out.Processed = len(out.Succeeded)
	return out, nil
}
