package user

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"careadmin/internal/admin"
)

// User is any account on the marketplace: families, caregivers, and the
// admins themselves. Admin accounts are protected from non-superadmins.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) EntityID() string        { return u.ID }
func (u *User) EntityStatus() string    { return string(u.Status) }
func (u *User) NotifyRecipient() string { return u.Email }

// IsPrivileged reports whether the account carries back-office powers.
func (u *User) IsPrivileged() bool {
	return u.Role == admin.RoleAdmin || u.Role == admin.RoleSuperadmin
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]User, error) {
	const q = `
SELECT id, email, COALESCE(full_name,''), role, status, created_at, updated_at
FROM users
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	const q = `
SELECT id, email, COALESCE(full_name,''), role, status, created_at, updated_at
FROM users
WHERE id = $1
`
	var u User
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&u.ID, &u.Email, &u.FullName, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, next Status) (*User, error) {
	const q = `
UPDATE users
SET status = $1, updated_at = NOW()
WHERE id = $2
RETURNING id, email, COALESCE(full_name,''), role, status, created_at, updated_at
`
	var u User
	if err := r.db.QueryRow(ctx, q, string(next), id).Scan(
		&u.ID, &u.Email, &u.FullName, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
