package service

import (
	"context"
	"testing"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
	"github.com/fitnesslabs/fittrack/internal/tracker/store"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	st := newTestStore(t)
	svc := &ClientService{Store: st}
	ctx := context.Background()

	clientID, userID, err := svc.Register(ctx, RegisterParams{
		Username:  "jane",
		Password:  "hunter22",
		FirstName: "Jane",
		LastName:  "Doe",
		DOB:       "1990-04-01",
	})
	require.NoError(t, err)

	user, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "jane", user.Username)
	require.Equal(t, domain.RoleClient, user.Role)
	require.NotEqual(t, "hunter22", user.PasswordHash)

	client, err := st.Clients().GetClientByID(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, userID, client.UserID)
	require.Equal(t, "jane", client.Username)
	require.Equal(t, "Jane Doe", client.Name())
}

func TestRegisterDuplicateUsernameRollsBack(t *testing.T) {
	st := newTestStore(t)
	svc := &ClientService{Store: st}
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterParams{
		Username: "jane", Password: "hunter22",
		FirstName: "Jane", LastName: "Doe", DOB: "1990-04-01",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterParams{
		Username: "jane", Password: "other",
		FirstName: "Janet", LastName: "Roe", DOB: "1991-05-02",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// The failed attempt must leave no trace in either table.
	clients, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "Jane", clients[0].FirstName)
}

func TestDeleteRemovesUserAndProfile(t *testing.T) {
	st := newTestStore(t)
	svc := &ClientService{Store: st}
	ctx := context.Background()

	clientID, userID, err := svc.Register(ctx, RegisterParams{
		Username: "jane", Password: "hunter22",
		FirstName: "Jane", LastName: "Doe", DOB: "1990-04-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, clientID))

	_, err = st.Clients().GetClientByID(ctx, clientID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByID(ctx, userID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUnknownClient(t *testing.T) {
	st := newTestStore(t)
	svc := &ClientService{Store: st}
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterParams{
		Username: "jane", Password: "hunter22",
		FirstName: "Jane", LastName: "Doe", DOB: "1990-04-01",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")
	require.ErrorIs(t, err, ErrClientNotFound)

	// Existing rows are untouched.
	clients, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestGetByUserID(t *testing.T) {
	st := newTestStore(t)
	svc := &ClientService{Store: st}
	ctx := context.Background()

	clientID, userID, err := svc.Register(ctx, RegisterParams{
		Username: "jane", Password: "hunter22",
		FirstName: "Jane", LastName: "Doe", DOB: "1990-04-01",
	})
	require.NoError(t, err)

	client, err := svc.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, clientID, client.ID)

	admin := createUser(t, st, "admin", "adminpass", domain.RoleAdmin)
	_, err = svc.GetByUserID(ctx, admin.ID)
	require.ErrorIs(t, err, ErrNoProfile)
}
