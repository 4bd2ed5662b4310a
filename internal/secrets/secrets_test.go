// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "serpapi-api-key", "  sk_abc123  \n")
				writeFile(t, dir, "google-books-api-key", "bk_xyz789")
				writeFile(t, dir, "scholar-cookie", "GSP=ID=deadbeef\n")
				return dir
			},
			want: map[string]string{
				"serpapi-api-key":      "sk_abc123",
				"google-books-api-key": "bk_xyz789",
				"scholar-cookie":       "GSP=ID=deadbeef",
			},
		},
		{
			name:  "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent") },
			want:  map[string]string{},
		},
		{
			name: "skips dotfiles and empty values",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitignore", "*")
				writeFile(t, dir, "empty-key", "   \n")
				writeFile(t, dir, "serpapi-api-key", "sk_abc")
				return dir
			},
			want: map[string]string{"serpapi-api-key": "sk_abc"},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				writeFile(t, dir, "serpapi-api-key", "sk_abc")
				return dir
			},
			want: map[string]string{"serpapi-api-key": "sk_abc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGet(t *testing.T) {
	secrets := map[string]string{"serpapi-api-key": "from_file"}

	assert.Equal(t, "from_file", Get(secrets, "serpapi-api-key", "SERPAPI_KEY"))

	t.Setenv("GOOGLE_BOOKS_API_KEY", "from_env")
	assert.Equal(t, "from_env", Get(secrets, "google-books-api-key", "GOOGLE_BOOKS_API_KEY"))

	assert.Equal(t, "", Get(secrets, "missing", ""))
}
