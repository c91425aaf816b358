package auth_test

import (
	"strings"
	"testing"

	"jobboard/internal/auth"
	"jobboard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := auth.NewPasswordHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)
	require.False(t, strings.Contains(hash, "s3cret-password"))

	require.True(t, h.Verify("s3cret-password", hash))
	require.False(t, h.Verify("wrong-password", hash))
	require.False(t, h.Verify("", hash))
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	h := auth.NewPasswordHasher(4)

	_, err := h.Hash("")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestPasswordHasher_HashesDiffer(t *testing.T) {
	h := auth.NewPasswordHasher(4)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// salted: two hashes of the same password are distinct, both verify
	require.NotEqual(t, first, second)
	require.True(t, h.Verify("same-password", first))
	require.True(t, h.Verify("same-password", second))
}

func TestPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	h := auth.NewPasswordHasher(99)

	hash, err := h.Hash("pw")
	require.NoError(t, err)
	require.True(t, h.Verify("pw", hash))
}
