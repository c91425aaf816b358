package auth_test

import (
	"strings"
	"testing"
	"time"

	"jobboard/internal/auth"
	"jobboard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(auth.Options{
		AccessSecret:  "access-secret",
		AccessTTL:     time.Minute,
		RefreshSecret: "refresh-secret",
		RefreshTTL:    time.Hour,
	})
}

func TestTokenManager_AccessRoundTrip(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.IssueAccessToken("actor-1", "a@acme.com", "acme")
	require.NoError(t, err)

	claims, err := tm.VerifyAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "actor-1", claims.Subject)
	require.Equal(t, "a@acme.com", claims.Email)
	require.Equal(t, "acme", claims.Name)
}

func TestTokenManager_RefreshCarriesOnlySubject(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.IssueRefreshToken("actor-1")
	require.NoError(t, err)

	claims, err := tm.VerifyRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, "actor-1", claims.Subject)
	require.Empty(t, claims.Email)
	require.Empty(t, claims.Name)
}

// Consecutive issuances must yield distinct tokens even when they fall into
// the same one-second JWT timestamp, otherwise rotating a refresh token can
// hand back the very token it replaces.
func TestTokenManager_RefreshTokensAreUnique(t *testing.T) {
	tm := newTestTokenManager()

	first, err := tm.IssueRefreshToken("actor-1")
	require.NoError(t, err)
	second, err := tm.IssueRefreshToken("actor-1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	for _, token := range []string{first, second} {
		claims, err := tm.VerifyRefreshToken(token)
		require.NoError(t, err)
		require.Equal(t, "actor-1", claims.Subject)
		require.NotEmpty(t, claims.ID)
	}
}

func TestTokenManager_SecretsAreNotInterchangeable(t *testing.T) {
	tm := newTestTokenManager()

	access, err := tm.IssueAccessToken("actor-1", "a@acme.com", "acme")
	require.NoError(t, err)
	refresh, err := tm.IssueRefreshToken("actor-1")
	require.NoError(t, err)

	_, err = tm.VerifyRefreshToken(access)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	_, err = tm.VerifyAccessToken(refresh)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestTokenManager_TamperedPayloadFails(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.IssueAccessToken("actor-1", "a@acme.com", "acme")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// flip the payload, keep header and signature
	tampered := parts[0] + ".eyJzdWIiOiJhY3Rvci0yIn0." + parts[2]

	_, err = tm.VerifyAccessToken(tampered)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestTokenManager_ExpiredTokenFails(t *testing.T) {
	tm := auth.NewTokenManager(auth.Options{
		AccessSecret:  "access-secret",
		AccessTTL:     -time.Minute,
		RefreshSecret: "refresh-secret",
		RefreshTTL:    time.Hour,
	})

	token, err := tm.IssueAccessToken("actor-1", "a@acme.com", "acme")
	require.NoError(t, err)

	_, err = tm.VerifyAccessToken(token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestTokenManager_MalformedTokenFails(t *testing.T) {
	tm := newTestTokenManager()

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tm.VerifyAccessToken(token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized, "token %q", token)
	}
}

func TestTokenManager_IssuePair(t *testing.T) {
	tm := newTestTokenManager()

	pair, err := tm.IssuePair("actor-1", "a@acme.com", "acme")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}
