package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockConfigStore implements driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
	path   string
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return m.path }

func TestRunConfigGet(t *testing.T) {
	store := &mockConfigStore{values: map[string]any{"confluence.host": "example.atlassian.net"}}
	withServices(t, &Services{Config: store})

	cmd, buf := newOutputCommand()
	require.NoError(t, runConfigGet(cmd, []string{"confluence.host"}))
	assert.Contains(t, buf.String(), "example.atlassian.net")
}

func TestRunConfigGet_Missing(t *testing.T) {
	withServices(t, &Services{Config: &mockConfigStore{values: map[string]any{}}})

	cmd, _ := newOutputCommand()
	assert.ErrorContains(t, runConfigGet(cmd, []string{"nope"}), "not set")
}

func TestRunConfigSet(t *testing.T) {
	store := &mockConfigStore{values: map[string]any{}}
	withServices(t, &Services{Config: store})

	cmd, buf := newOutputCommand()
	require.NoError(t, runConfigSet(cmd, []string{"confluence.host", "wiki.example.com"}))

	assert.Equal(t, "wiki.example.com", store.values["confluence.host"])
	assert.Contains(t, buf.String(), "confluence.host = wiki.example.com")
}

func TestRunConfigPath(t *testing.T) {
	withServices(t, &Services{Config: &mockConfigStore{path: "/home/u/.confluence-reader/config.toml"}})

	cmd, buf := newOutputCommand()
	require.NoError(t, runConfigPath(cmd, nil))
	assert.Contains(t, buf.String(), "/home/u/.confluence-reader/config.toml")
}
