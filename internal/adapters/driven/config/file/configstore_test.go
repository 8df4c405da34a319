package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStoreDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dev-meeting-log", store.GetString(KeyCorpusPath))
	assert.Equal(t, "_site", store.GetString(KeyOutputDir))
	assert.Equal(t, "127.0.0.1:8797", store.GetString(KeyListenAddr))
	assert.Equal(t, 200, store.GetInt(KeyDebounceMS))

	_, ok := store.Get("unknown.key")
	assert.False(t, ok)
}

func TestConfigStoreSetPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyCorpusPath, "/srv/meeting-log"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/meeting-log", reopened.GetString(KeyCorpusPath))
}

func TestConfigStoreSetDoesNotPersistDefaults(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("serve.rate_limit", int64(5)))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "dev-meeting-log")
	assert.Contains(t, string(raw), "rate_limit")
}

func TestConfigStoreLoadNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[corpus]\npath = \"/data/logs\"\n\n[search]\ndebounce_ms = 150\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/data/logs", store.GetString(KeyCorpusPath))
	assert.Equal(t, 150, store.GetInt(KeyDebounceMS))
}

func TestConfigStoreTypeMismatches(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("some.number", int64(7)))

	assert.Empty(t, store.GetString("some.number"))
	assert.False(t, store.GetBool("some.number"))
	assert.Nil(t, store.GetStringSlice("some.number"))
	assert.Equal(t, 7, store.GetInt("some.number"))
}

func TestConfigStoreStringSlice(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.ignore", []any{"drafts", "tmp"}))

	assert.Equal(t, []string{"drafts", "tmp"}, store.GetStringSlice("corpus.ignore"))
}

func TestConfigStorePath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
