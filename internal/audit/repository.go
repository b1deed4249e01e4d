package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, rec Record) error {
	const q = `
INSERT INTO audit_log (id, admin_id, action, entity_kind, entity_id, from_status, to_status, reason, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := r.db.Exec(ctx, q,
		rec.ID, rec.AdminID, rec.Action, rec.EntityKind, rec.EntityID,
		rec.FromStatus, rec.ToStatus, rec.Reason, rec.OccurredAt,
	)
	return err
}

func (r *Repository) ListByEntity(ctx context.Context, entityKind, entityID string) ([]Record, error) {
	const q = `
SELECT id, admin_id, action, entity_kind, entity_id, from_status, to_status, reason, occurred_at
FROM audit_log
WHERE entity_kind = $1 AND entity_id = $2
ORDER BY occurred_at ASC, created_at ASC
`
	rows, err := r.db.Query(ctx, q, entityKind, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.AdminID, &rec.Action, &rec.EntityKind, &rec.EntityID,
			&rec.FromStatus, &rec.ToStatus, &rec.Reason, &rec.OccurredAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	const q = `
SELECT id, admin_id, action, entity_kind, entity_id, from_status, to_status, reason, occurred_at
FROM audit_log
ORDER BY occurred_at DESC, created_at DESC
LIMIT $1
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.AdminID, &rec.Action, &rec.EntityKind, &rec.EntityID,
			&rec.FromStatus, &rec.ToStatus, &rec.Reason, &rec.OccurredAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
