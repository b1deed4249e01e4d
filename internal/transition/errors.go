package transition

import "errors"

var (
	// ErrNotFound means the entity id did not resolve. Repository adapters
	// translate their storage-level not-found into this.
	ErrNotFound = errors.New("entity not found")

	// ErrUnauthorized means a role restriction blocks the change
	// (e.g. a non-superadmin altering an admin account).
	ErrUnauthorized = errors.New("not authorized to change this account")

	// ErrEmptyBatch is returned by ExecuteBulk before any entity is touched.
	ErrEmptyBatch = errors.New("at least one entity id is required")
)

// InvalidTransitionError is a guard denial. Hint is safe to show to the
// administrator who issued the request.
type InvalidTransitionError struct {
	Hint string
}

func (e *InvalidTransitionError) Error() string { return e.Hint }
