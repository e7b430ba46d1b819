package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_EmptyOnFirstRun(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get(KeyHost)
	assert.False(t, ok)
	assert.Empty(t, store.GetString(KeyHost))
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyHost, "example.atlassian.net"))
	require.NoError(t, store.Set(KeyBrowserURLTemplate, "https://%s/wiki%s"))

	// A fresh store sees the persisted values
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.atlassian.net", reloaded.GetString(KeyHost))
	assert.Equal(t, "https://%s/wiki%s", reloaded.GetString(KeyBrowserURLTemplate))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[confluence]\nhost = \"example.atlassian.net\"\nnetrc = \"/tmp/netrc\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "example.atlassian.net", store.GetString(KeyHost))
	assert.Equal(t, "/tmp/netrc", store.GetString(KeyNetrc))
}

func TestConfigStore_RoundTripsDotNotation(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyNetrc, "/tmp/netrc"))
	require.NoError(t, store.Set(KeyHost, "example.atlassian.net"))

	// The file holds nested tables, not literal dotted keys
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[confluence]")

	require.NoError(t, store.Load())
	assert.Equal(t, "/tmp/netrc", store.GetString(KeyNetrc))
}

func TestConfigStore_GetStringWrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("some.number", int64(7)))

	assert.Empty(t, store.GetString("some.number"))
}
