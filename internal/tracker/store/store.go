package store

import (
	"context"
	"errors"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transactional scope for the two multi-statement writers
// (client registration and client deletion).
type Store interface {
	Users() Users
	Clients() Clients
	FoodEntries() FoodEntries

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle the multi-statement writers: acquisition is
	// scoped and release happens on every exit path, including panics.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate username surfaces as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes the identity row. Returns the number of rows
	// affected so the deletion writer can detect a missing identity.
	DeleteUser(ctx context.Context, userID string) (int64, error)

	// IsEmpty returns true if there are no users. Drives admin seeding.
	IsEmpty(ctx context.Context) (bool, error)
}

type Clients interface {
	// GetClientByID fetches a profile by its own id.
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// GetClientByUserID fetches the profile owned by a user, for the
	// self-service endpoints.
	GetClientByUserID(ctx context.Context, userID string) (domain.Client, error)

	// ListClients returns all profiles ordered by creation date (newest first).
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient inserts a new profile referencing an existing user.
	CreateClient(ctx context.Context, c domain.Client) error

	// DeleteClient removes the profile row. Food entries cascade per
	// schema. Returns the number of rows affected.
	DeleteClient(ctx context.Context, clientID string) (int64, error)
}

type FoodEntries interface {
	// CreateFoodEntry records one consumption entry for a profile.
	CreateFoodEntry(ctx context.Context, e domain.FoodEntry) error

	// ListFoodEntriesByClient returns a profile's entries, newest date first.
	ListFoodEntriesByClient(ctx context.Context, clientID string) ([]domain.FoodEntry, error)
}
