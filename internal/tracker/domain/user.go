package domain

import "time"

// Roles a user can hold. There are exactly two; clients additionally own a
// Client profile row.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC encoded
	Role         string // RoleAdmin or RoleClient
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
