package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedFile struct {
	Users []struct {
		Username string `json:"username"`
		Admin    bool   `json:"admin"`
	} `json:"users"`
}

func TestLoadJSON(t *testing.T) {
	t.Run("loads valid JSON file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"users":[{"username":"admin","admin":true}]}`), 0o600))

		var seed seedFile
		require.NoError(t, LoadJSON(path, &seed))
		require.Len(t, seed.Users, 1)
		assert.Equal(t, "admin", seed.Users[0].Username)
		assert.True(t, seed.Users[0].Admin)
	})

	t.Run("missing file", func(t *testing.T) {
		var seed seedFile
		err := LoadJSON("/nonexistent/seed.json", &seed)
		assert.ErrorContains(t, err, "failed to read file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"users":`), 0o600))

		var seed seedFile
		assert.ErrorContains(t, LoadJSON(path, &seed), "failed to unmarshal")
	})
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, SaveJSON(path, map[string]int{"matches": 3}))

	var got map[string]int
	require.NoError(t, LoadJSON(path, &got))
	assert.Equal(t, 3, got["matches"])
}
