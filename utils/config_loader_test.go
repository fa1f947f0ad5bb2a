package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `
http:
  port: 9100
  read_timeout_s: 10
upstream:
  base_url: https://api.example.test/v1
  token_env: FIELDTRACK_TOKEN
  timeout_s: 12
geolocation:
  timeout_ms: 2500
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadServerConfig(t *testing.T) {
	cfg, err := LoadServerConfig(writeConfig(t, configYAML))
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "https://api.example.test/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, 2500*time.Millisecond, cfg.LocateTimeout())

	t.Setenv("FIELDTRACK_TOKEN", "tok-xyz")
	assert.Equal(t, "tok-xyz", cfg.BearerToken())
}

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := LoadServerConfig(writeConfig(t, "upstream:\n  base_url: http://up\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, 5*time.Second, cfg.LocateTimeout())
	assert.Empty(t, cfg.BearerToken())
}

func TestLoadServerConfigErrors(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadServerConfig(writeConfig(t, "http: [not a map"))
	assert.Error(t, err)
}
