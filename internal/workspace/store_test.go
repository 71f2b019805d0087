package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExt = ".lab-workspace"

func TestStore_WriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "workspaces")
	store := NewStore(dir, testExt)

	assert.False(t, store.Exists("lab-1234"))

	path, err := store.Write("lab-1234", []byte(`{"data":{}}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lab-1234"+testExt), path)
	assert.True(t, store.Exists("lab-1234"))

	got, err := store.Read("lab-1234")
	require.NoError(t, err)
	assert.Equal(t, `{"data":{}}`, string(got))
}

func TestStore_WriteOverwrites(t *testing.T) {
	store := NewStore(t.TempDir(), testExt)

	_, err := store.Write("a", []byte("first version, longer than the second"))
	require.NoError(t, err)
	_, err = store.Write("a", []byte("second"))
	require.NoError(t, err)

	got, err := store.Read("a")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	// No temporary files are left behind.
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_ReadNotFound(t *testing.T) {
	store := NewStore(t.TempDir(), testExt)

	_, err := store.Read("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ExistsIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "odd"+testExt), 0755))

	assert.False(t, NewStore(dir, testExt).Exists("odd"))
}

func TestStore_WriteError(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission checks do not apply")
	}
	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0555))
	t.Cleanup(func() { os.Chmod(parent, 0755) })

	store := NewStore(filepath.Join(parent, "workspaces"), testExt)
	_, err := store.Write("a", []byte("{}"))
	require.Error(t, err)

	var werr *StoreWriteError
	require.True(t, errors.As(err, &werr))
	assert.ErrorIs(t, err, ErrStoreWrite)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, testExt)

	_, err := store.Write("b-slug", []byte(`{"data":{},"metadata":{"id":"/lab/workspaces/b"}}`))
	require.NoError(t, err)
	_, err = store.Write("a-slug", []byte(`{"data":{},"metadata":{"id":"/lab"}}`))
	require.NoError(t, err)
	_, err = store.Write("c-corrupt", []byte(`{not json`))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"+testExt), []byte("{}"), 0644))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "a-slug", entries[0].Slug)
	assert.Equal(t, "/lab", entries[0].ID)
	assert.Equal(t, "b-slug", entries[1].Slug)
	assert.Equal(t, "/lab/workspaces/b", entries[1].ID)
	assert.Equal(t, "c-corrupt", entries[2].Slug)
	assert.Empty(t, entries[2].ID)
	assert.Equal(t, int64(len(`{not json`)), entries[2].Size)
}

func TestStore_ListMissingDirectory(t *testing.T) {
	entries, err := NewStore(filepath.Join(t.TempDir(), "absent"), testExt).List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
