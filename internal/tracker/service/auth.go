package service

import (
	"context"
	"errors"
	"time"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
	"github.com/fitnesslabs/fittrack/internal/tracker/store"
	"github.com/fitnesslabs/fittrack/pkg/cryptox"
	"github.com/fitnesslabs/fittrack/pkg/jwtx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so login responses can't be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// dummyHash keeps the work factor of a failed lookup comparable to a real
// password check.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type AuthService struct {
	Signer    jwtx.Signer
	Store     store.Store
	Issuer    string
	AccessTTL time.Duration
}

// Login verifies the credentials and mints a session token carrying the
// user's identity id and role.
func (s *AuthService) Login(
	ctx context.Context,
	username, password string,
) (token string, user domain.User, err error) {
	l := slogx.FromContext(ctx)

	user, err = s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", "username", username)
		return "", domain.User{}, ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(
		user.ID, user.Role, user.Username,
		s.Issuer, s.AccessTTL, time.Now(),
	)
	token, err = s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, err
	}

	l.Info("login succeeded", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}
