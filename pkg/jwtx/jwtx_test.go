package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "fittrack-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestPair(t *testing.T) (*HS256Signer, *HS256Verifier) {
	t.Helper()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret, testIssuer)
	require.NoError(t, err)
	return signer, verifier
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, verifier := newTestPair(t)

	claims := NewAccessClaims("01ARZ3NDEKTSV4RRFFQ69G5FAV", "admin", "admin", testIssuer,
		DefaultAccessTokenTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", got.Subject)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, "admin", got.Username)
	require.NotEmpty(t, got.ID) // jti
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, verifier := newTestPair(t)

	issued := time.Now().Add(-2 * DefaultAccessTokenTTL)
	claims := NewAccessClaims("user-id", "client", "jane", testIssuer,
		DefaultAccessTokenTTL, issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	t.Parallel()

	signer, verifier := newTestPair(t)

	claims := NewAccessClaims("user-id", "client", "jane", testIssuer,
		DefaultAccessTokenTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = verifier.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, _ := newTestPair(t)

	other, err := NewVerifierHS256([]byte("ffffffffffffffffffffffffffffffff"), testIssuer)
	require.NoError(t, err)

	claims := NewAccessClaims("user-id", "client", "jane", testIssuer,
		DefaultAccessTokenTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, verifier := newTestPair(t)

	claims := NewAccessClaims("user-id", "client", "jane", "someone-else",
		DefaultAccessTokenTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, verifier := newTestPair(t)

	_, err := verifier.Verify("not.a.token")
	require.Error(t, err)

	_, err = verifier.Verify("")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestShortSecretRejected(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHS256([]byte("tooshort"))
	require.Error(t, err)

	_, err = NewVerifierHS256([]byte("tooshort"), testIssuer)
	require.Error(t, err)
}
