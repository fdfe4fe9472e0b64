package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medi-vault.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ─────────────────────────────────────────────
// precedence
// ─────────────────────────────────────────────

func TestBuilder_Precedence(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {"token_issuer": "from-json", "token_sign_key": "json-key"},
		"server": {"http_address": "10.0.0.1:9000"},
		"workers": {"sync_interval": "1m"}
	}`)

	t.Setenv("APP_TOKEN_ISSUER", "from-env")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-token-issuer", "from-flags", "-a", "127.0.0.1:7000", "-sync-interval", "2m"}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenIssuer, "env wins over flags and file")
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress, "flags win over file")
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey, "file fills what env and flags left")
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration, "defaults fill the rest")
	assert.Equal(t, defaultLocalDSN, cfg.Storage.Client.DSN)
}

func TestBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestBuilder_NoLayers(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// ─────────────────────────────────────────────
// JSON layer
// ─────────────────────────────────────────────

func TestBuilder_JSONPathFromFlags(t *testing.T) {
	path := writeConfigFile(t, `{"storage": {"client_db": {"dsn": "/srv/vault.db"}}}`)

	cfg, err := newConfigBuilder().
		withFlags([]string{"-config", path}).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "/srv/vault.db", cfg.Storage.Client.DSN)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestBuilder_NoJSONPath(t *testing.T) {
	b := newConfigBuilder().withFlags(nil).withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.layers, 1)
}

// ─────────────────────────────────────────────
// errors
// ─────────────────────────────────────────────

func TestBuilder_CollectsErrorsFromEverySource(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "often")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}).
		withJSON().
		build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "env:")
	assert.Contains(t, err.Error(), "json:")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuilder_BadFlag(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-a", "no-port"}).build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flags:")
}

// ─────────────────────────────────────────────
// process views
// ─────────────────────────────────────────────

func TestNewClientConfig_Projection(t *testing.T) {
	cfg := newClientConfig(validStructuredConfig())

	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "session.json", cfg.Storage.SessionFile)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.NoError(t, cfg.validate())
}

func TestNewServerConfig_DropsClientSettings(t *testing.T) {
	cfg := newServerConfig(validStructuredConfig())

	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Client.DSN)
	assert.Empty(t, cfg.Storage.SessionFile)
	assert.NoError(t, cfg.validate())
}
