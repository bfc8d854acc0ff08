package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Contains(t, parts[3], "m=")
	require.Contains(t, parts[3], "t=")
	require.Contains(t, parts[3], "p=")
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	a, err := HashPassword("samepassword")
	require.NoError(t, err)
	b, err := HashPassword("samepassword")
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	require.NoError(t, VerifyPassword("samepassword", a))
	require.NoError(t, VerifyPassword("samepassword", b))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("adminpass")
	require.NoError(t, err)

	require.NoError(t, VerifyPassword("adminpass", hash))
	require.ErrorIs(t, VerifyPassword("wrongpass", hash), ErrPasswordMismatch)
	require.ErrorIs(t, VerifyPassword("", hash), ErrPasswordMismatch)
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456,t=2,p=1$onlyfourparts",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$bogus$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!$aGFzaA",
	}
	for _, c := range cases {
		err := VerifyPassword("whatever", c)
		require.Error(t, err, "hash %q should be rejected", c)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	}
}
