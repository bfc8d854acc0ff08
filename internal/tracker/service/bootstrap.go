package service

import (
	"context"
	"fmt"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
	"github.com/fitnesslabs/fittrack/internal/tracker/store"
	"github.com/fitnesslabs/fittrack/pkg/cryptox"
	"github.com/fitnesslabs/fittrack/pkg/idx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
)

// BootstrapService seeds the initial admin account so a fresh deployment is
// usable without manual database edits.
type BootstrapService struct {
	Store store.Store
}

// EnsureAdmin creates the admin user when the users table is empty and does
// nothing otherwise. Returns the admin's user id, or "" when seeding was
// skipped.
func (s *BootstrapService) EnsureAdmin(
	ctx context.Context,
	username, password string,
) (string, error) {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return "", fmt.Errorf("check users: %w", err)
	}
	if !empty {
		return "", nil
	}

	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}

	adminID := idx.New().String()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Re-check inside the transaction; two instances may race on a
		// shared database file.
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			adminID = ""
			return nil
		}

		return tx.Users().CreateUser(ctx, domain.User{
			ID:           adminID,
			Username:     username,
			PasswordHash: passHash,
			Role:         domain.RoleAdmin,
		})
	})
	if err != nil {
		return "", fmt.Errorf("seed admin: %w", err)
	}

	if adminID != "" {
		l.Info("seeded initial admin user", "user_id", adminID, "username", username)
	}
	return adminID, nil
}
