package admin

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Admin is the acting back-office identity. Admins live in the users table
// alongside the accounts they manage; only the admin roles may log in here.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *Admin) IsSuperadmin() bool {
	return a.Role == RoleSuperadmin
}
