package job

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Job is a care request posted by a family: e.g. "overnight care for my
// mother, Tuesdays". The engine only ever touches Status; the rest is payload.
type Job struct {
	ID          string    `json:"id"`
	FamilyID    string    `json:"familyId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (j *Job) EntityID() string     { return j.ID }
func (j *Job) EntityStatus() string { return string(j.Status) }

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Job, error) {
	const q = `
SELECT id, family_id, title, COALESCE(description,''), COALESCE(city,''), status, created_at, updated_at
FROM jobs
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.FamilyID, &j.Title, &j.Description, &j.City, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Job, error) {
	const q = `
SELECT id, family_id, title, COALESCE(description,''), COALESCE(city,''), status, created_at, updated_at
FROM jobs
WHERE id = $1
`
	var j Job
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&j.ID, &j.FamilyID, &j.Title, &j.Description, &j.City, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, next Status) (*Job, error) {
	const q = `
UPDATE jobs
SET status = $1, updated_at = NOW()
WHERE id = $2
RETURNING id, family_id, title, COALESCE(description,''), COALESCE(city,''), status, created_at, updated_at
`
	var j Job
	if err := r.db.QueryRow(ctx, q, string(next), id).Scan(
		&j.ID, &j.FamilyID, &j.Title, &j.Description, &j.City, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}
