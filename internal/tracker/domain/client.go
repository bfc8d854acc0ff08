package domain

import "time"

// Client is the profile extension of a User with RoleClient. Exactly one
// profile exists per backing user; the registration and deletion writers
// maintain that invariant transactionally.
type Client struct {
	ID        string
	UserID    string // Foreign key to users, unique
	FirstName string
	LastName  string
	DOB       string // ISO date, e.g. "1990-04-21"

	// Username is the backing user's login name, joined in on reads and
	// ignored on writes.
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Name returns the display form sent in client listings.
func (c Client) Name() string {
	return c.FirstName + " " + c.LastName
}
