package booking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Booking is a scheduled engagement between a caregiver and a job. Amount is
// the agreed total as a decimal string; the engine never touches it.
type Booking struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	CaregiverID    string    `json:"caregiverId"`
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (b *Booking) EntityID() string     { return b.ID }
func (b *Booking) EntityStatus() string { return string(b.Status) }

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Booking, error) {
	const q = `
SELECT id, job_id, caregiver_id, scheduled_start, scheduled_end, amount::text, currency, status, created_at, updated_at
FROM bookings
ORDER BY scheduled_start DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.JobID, &b.CaregiverID, &b.ScheduledStart, &b.ScheduledEnd,
			&b.Amount, &b.Currency, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Booking, error) {
	const q = `
SELECT id, job_id, caregiver_id, scheduled_start, scheduled_end, amount::text, currency, status, created_at, updated_at
FROM bookings
WHERE id = $1
`
	var b Booking
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.JobID, &b.CaregiverID, &b.ScheduledStart, &b.ScheduledEnd,
		&b.Amount, &b.Currency, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, next Status) (*Booking, error) {
	const q = `
UPDATE bookings
SET status = $1, updated_at = NOW()
WHERE id = $2
RETURNING id, job_id, caregiver_id, scheduled_start, scheduled_end, amount::text, currency, status, created_at, updated_at
`
	var b Booking
	if err := r.db.QueryRow(ctx, q, string(next), id).Scan(
		&b.ID, &b.JobID, &b.CaregiverID, &b.ScheduledStart, &b.ScheduledEnd,
		&b.Amount, &b.Currency, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
