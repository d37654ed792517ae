package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := writeConfig(t, `{
		"backend_url": "http://search.internal:8000",
		"timeout_seconds": 10,
		"session_id": "team-a"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://search.internal:8000", cfg.BackendURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, "team-a", cfg.SessionID)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{broken`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv(EnvBackendURL, "http://env-backend:9000")
	t.Setenv(EnvSessionDB, "/tmp/env-session.db")

	cfg := Config{BackendURL: "http://file-backend:8000"}
	cfg.ApplyEnv()

	assert.Equal(t, "http://env-backend:9000", cfg.BackendURL)
	assert.Equal(t, "/tmp/env-session.db", cfg.SessionDB)
}

func TestApplyEnv_EmptyEnvKeepsExisting(t *testing.T) {
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvSessionDB, "")

	cfg := Config{BackendURL: "http://file-backend:8000", SessionDB: "/tmp/file.db"}
	cfg.ApplyEnv()

	assert.Equal(t, "http://file-backend:8000", cfg.BackendURL)
	assert.Equal(t, "/tmp/file.db", cfg.SessionDB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BackendURL: "http://localhost:8000", TimeoutSeconds: 30}, false},
		{"empty url allowed", Config{}, false},
		{"scheme missing", Config{BackendURL: "localhost:8000"}, true},
		{"host missing", Config{BackendURL: "http://"}, true},
		{"negative timeout", Config{TimeoutSeconds: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{BackendURL: "http://custom:8000"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "http://custom:8000", merged.BackendURL)
	assert.Equal(t, 30, merged.TimeoutSeconds)
	assert.Equal(t, "default", merged.SessionID)
	assert.NotEmpty(t, merged.SessionDB)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "http://localhost:8000", d.BackendURL)
	assert.Equal(t, 30, d.TimeoutSeconds)
	assert.Equal(t, "default", d.SessionID)
	assert.Contains(t, d.SessionDB, "session.db")
}
