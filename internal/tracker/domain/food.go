package domain

import "time"

// FoodEntry is one logged food consumption record. Entries are written by
// the owning client and read by the client or an admin; they are never
// updated or deleted through the API.
type FoodEntry struct {
	ID        string
	ClientID  string // Foreign key to clients
	FoodItem  string
	Quantity  string // free-form, e.g. "2 slices", "300g"
	Date      string // ISO date the food was consumed
	CreatedAt time.Time
	UpdatedAt time.Time
}
