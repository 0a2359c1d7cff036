package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SourceAPI, cfg.TransactionSource)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 100, cfg.UpstreamPageSize)
	assert.Equal(t, 50, cfg.UpstreamMaxPages)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Empty(t, cfg.APIKeyHashes)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.com/")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("TRANSACTION_SOURCE", "POSTGRES")
	t.Setenv("PGSQL_URL", "postgres://localhost/finance")
	t.Setenv("API_KEY_HASHES", " hash-one , ,hash-two")
	t.Setenv("MIRROR_VIEWER_ID", " user_1 ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.UpstreamBaseURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, SourcePostgres, cfg.TransactionSource)
	assert.Equal(t, "postgres://localhost/finance", cfg.DatabaseURL)
	assert.Equal(t, []string{"hash-one", "hash-two"}, cfg.APIKeyHashes)
	assert.Equal(t, "user_1", cfg.MirrorViewerID)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")
	t.Setenv("UPSTREAM_PAGE_SIZE", "-5")
	t.Setenv("TRANSACTION_SOURCE", "carrier-pigeon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 100, cfg.UpstreamPageSize)
	assert.Equal(t, SourceAPI, cfg.TransactionSource)
}
