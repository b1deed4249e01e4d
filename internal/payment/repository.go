package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Payment is money owed or moved for a booking. Amounts are decimals, never
// floats; the column is numeric and travels as text.
type Payment struct {
	ID          string          `json:"id"`
	BookingID   string          `json:"bookingId"`
	PayerID     string          `json:"payerId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      Status          `json:"status"`
	ProviderRef string          `json:"providerRef,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Payment) EntityID() string     { return p.ID }
func (p *Payment) EntityStatus() string { return string(p.Status) }

const paymentColumns = `id, booking_id, payer_id, amount::text, currency, status, COALESCE(provider_ref,''), created_at, updated_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	var amount string
	if err := row.Scan(
		&p.ID, &p.BookingID, &p.PayerID, &amount, &p.Currency, &p.Status, &p.ProviderRef, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("bad amount for payment %s: %w", p.ID, err)
	}
	p.Amount = amt
	return &p, nil
}

func (r *Repository) List(ctx context.Context) ([]Payment, error) {
	const q = `
SELECT ` + paymentColumns + `
FROM payments
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Payment, error) {
	const q = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
`
	return scanPayment(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, next Status) (*Payment, error) {
	const q = `
UPDATE payments
SET status = $1, updated_at = NOW()
WHERE id = $2
RETURNING ` + paymentColumns + `
`
	return scanPayment(r.db.QueryRow(ctx, q, string(next), id))
}
