package admin

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

func (r *Repository) FindByID(ctx context.Context, id string) (*Admin, error) {
	const q = `
SELECT id, email, COALESCE(full_name,''), role, COALESCE(password_hash,''), created_at
FROM users
WHERE id = $1 AND role IN ('admin','superadmin') AND status = 'active'
`
	a := &Admin{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Email, &a.FullName, &a.Role, &a.PasswordHash, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	const q = `
SELECT id, email, COALESCE(full_name,''), role, COALESCE(password_hash,''), created_at
FROM users
WHERE email = $1 AND role IN ('admin','superadmin') AND status = 'active'
`
	a := &Admin{}
	if err := r.db.QueryRow(ctx, q, email).Scan(
		&a.ID, &a.Email, &a.FullName, &a.Role, &a.PasswordHash, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}
