package scholarsdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSessionStore(t *testing.T) {
	t.Parallel()

	store := FileSessionStore{Path: filepath.Join(t.TempDir(), "nested", "session.json")}

	s, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, s)

	want := StoredSession{Token: "tok", User: UserProfile{ID: "u1", Email: "ada@example.com", Name: "Ada"}}
	require.NoError(t, store.Save(want))

	info, err := os.Stat(store.Path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, want, *got)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	s, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestFileSessionStoreRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := FileSessionStore{Path: path}.Load()
	require.Error(t, err)
}
