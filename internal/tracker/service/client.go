package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
	"github.com/fitnesslabs/fittrack/internal/tracker/store"
	"github.com/fitnesslabs/fittrack/pkg/cryptox"
	"github.com/fitnesslabs/fittrack/pkg/idx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrNoProfile      = errors.New("no profile for user")
)

type ClientService struct {
	Store store.Store
}

// RegisterParams carries the already-validated registration input. Handlers
// reject missing fields before any write is attempted.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	DOB       string
}

// Register performs the two-step client registration as a single atomic
// unit: insert the login identity with role fixed to client, then insert the
// profile referencing it. Any failure in either insert, including a username
// uniqueness violation, rolls the whole thing back so no partial record is
// ever visible.
func (s *ClientService) Register(
	ctx context.Context,
	p RegisterParams,
) (clientID, userID string, err error) {
	l := slogx.FromContext(ctx)

	// Hash outside the transaction; argon2 is deliberately slow and the
	// connection shouldn't be held for it.
	passHash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	userID = idx.New().String()
	clientID = idx.New().String()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			ID:           userID,
			Username:     p.Username,
			PasswordHash: passHash,
			Role:         domain.RoleClient,
		}); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}

		if err := tx.Clients().CreateClient(ctx, domain.Client{
			ID:        clientID,
			UserID:    userID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			DOB:       p.DOB,
		}); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}

		return nil
	})
	if err != nil {
		l.Warn("client registration rolled back", "username", p.Username, "error", err)
		return "", "", err
	}

	l.Info("client registered", "client_id", clientID, "user_id", userID)
	return clientID, userID, nil
}

// Delete removes a client profile and its backing identity in one
// transaction, profile first so the foreign key is never dangling. Either
// delete affecting zero rows aborts the transaction and reports
// ErrClientNotFound, leaving both tables untouched.
func (s *ClientService) Delete(ctx context.Context, clientID string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		client, err := tx.Clients().GetClientByID(ctx, clientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		n, err := tx.Clients().DeleteClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if n == 0 {
			return ErrClientNotFound
		}

		n, err = tx.Users().DeleteUser(ctx, client.UserID)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if n == 0 {
			return ErrClientNotFound
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrClientNotFound) {
			l.Error("client deletion rolled back", "client_id", clientID, "error", err)
		}
		return err
	}

	l.Info("client deleted", "client_id", clientID)
	return nil
}

// List returns all client profiles, newest first.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// GetByUserID returns the profile owned by the given user, for the
// self-service endpoints.
func (s *ClientService) GetByUserID(ctx context.Context, userID string) (domain.Client, error) {
	client, err := s.Store.Clients().GetClientByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrNoProfile
		}
		return domain.Client{}, err
	}
	return client, nil
}
