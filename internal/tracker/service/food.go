package service

import (
	"context"
	"errors"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
	"github.com/fitnesslabs/fittrack/internal/tracker/store"
	"github.com/fitnesslabs/fittrack/pkg/idx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
)

type FoodService struct {
	Store store.Store
}

// Log records one food consumption entry for the profile owned by userID.
// The profile must exist at write time; a user without one gets ErrNoProfile.
func (s *FoodService) Log(
	ctx context.Context,
	userID, foodItem, quantity, date string,
) (domain.FoodEntry, error) {
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.FoodEntry{}, ErrNoProfile
		}
		return domain.FoodEntry{}, err
	}

	entry := domain.FoodEntry{
		ID:       idx.New().String(),
		ClientID: client.ID,
		FoodItem: foodItem,
		Quantity: quantity,
		Date:     date,
	}
	if err := s.Store.FoodEntries().CreateFoodEntry(ctx, entry); err != nil {
		return domain.FoodEntry{}, err
	}

	l.Info("food entry logged", "client_id", client.ID, "entry_id", entry.ID)
	return entry, nil
}

// ListForClient returns a client's entries for the admin view. The client
// must exist; an unknown id is ErrClientNotFound rather than an empty list.
func (s *FoodService) ListForClient(ctx context.Context, clientID string) ([]domain.FoodEntry, error) {
	if _, err := s.Store.Clients().GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.Store.FoodEntries().ListFoodEntriesByClient(ctx, clientID)
}

// ListOwn returns the entries of the profile owned by userID.
func (s *FoodService) ListOwn(ctx context.Context, userID string) ([]domain.FoodEntry, error) {
	client, err := s.Store.Clients().GetClientByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return s.Store.FoodEntries().ListFoodEntriesByClient(ctx, client.ID)
}
