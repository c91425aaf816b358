package upload_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jobboard/pkg/serrors"
	"jobboard/pkg/upload"
)

func newStore(t *testing.T) (upload.Store, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := upload.NewLocalStore(dir, "https://files.test/uploads/", 1024)
	require.NoError(t, err)

	return store, dir
}

func TestSave(t *testing.T) {
	store, dir := newStore(t)

	uri, err := store.Save(context.Background(), "resume.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "https://files.test/uploads/"))
	require.True(t, strings.HasSuffix(uri, ".pdf"))

	name := filepath.Base(uri)
	require.NotEqual(t, "resume.pdf", name)

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Equal(t, "content", string(stored))
}

func TestSave_RandomizedNames(t *testing.T) {
	store, _ := newStore(t)

	first, err := store.Save(context.Background(), "resume.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "resume.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestSave_SizeCap(t *testing.T) {
	store, dir := newStore(t)

	uri, err := store.Save(context.Background(), "big.pdf", strings.NewReader(strings.Repeat("x", 1024)))
	require.NoError(t, err)
	require.NotEmpty(t, uri)

	_, err = store.Save(context.Background(), "big.pdf", strings.NewReader(strings.Repeat("x", 1025)))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	// only the accepted upload remains on disk
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSave_SuspiciousExtensionDropped(t *testing.T) {
	store, _ := newStore(t)

	uri, err := store.Save(context.Background(), "weird.p!f", strings.NewReader("content"))
	require.NoError(t, err)
	require.False(t, strings.Contains(filepath.Base(uri), "."))
}
