package inits

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-sathi/app/server/constants"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_CONN", "postgres://localhost/krishi")
	t.Setenv("REDIS_CONN", "redis://localhost:6379/0")
	t.Setenv("ENCRYPT_SECRET_KEY", strings.Repeat("k", 32))
	t.Setenv("SIGNATURE_SECRET_KEY", "signature")
}

func TestConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Config()
	require.NoError(t, err)

	assert.False(t, cfg.System.IsProd)
	assert.Equal(t, ":3000", cfg.System.Listen)
	assert.Equal(t, "http://localhost:5173", cfg.System.FrontendURL)
	assert.Equal(t, constants.AuthStoreTimeout, cfg.System.StoreTimeout)
	assert.Equal(t, "postgres://localhost/krishi", cfg.System.DBConnectionString)
	assert.Equal(t, "signature", cfg.Security.SignatureSecretKey)
}

func TestConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MODE", "production")
	t.Setenv("LISTEN", ":8080")
	t.Setenv("FRONTEND_URL", "https://krishi.example")
	t.Setenv("STORE_TIMEOUT", "2s")

	cfg, err := Config()
	require.NoError(t, err)

	assert.True(t, cfg.System.IsProd)
	assert.Equal(t, ":8080", cfg.System.Listen)
	assert.Equal(t, "https://krishi.example", cfg.System.FrontendURL)
	assert.Equal(t, 2*time.Second, cfg.System.StoreTimeout)
}

func TestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"short encrypt key", "ENCRYPT_SECRET_KEY", "short"},
		{"empty signature key", "SIGNATURE_SECRET_KEY", ""},
		{"bad timeout", "STORE_TIMEOUT", "soon"},
		{"negative timeout", "STORE_TIMEOUT", "-1s"},
		{"admin email only", "ADMIN_EMAIL", "root@krishi.example"},
		{"admin password only", "ADMIN_PASSWORD", "long-enough"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Config()
			assert.Error(t, err)
		})
	}
}

func TestConfig_Admin(t *testing.T) {
	setRequiredEnv(t)
	// t.Setenv 会在结束时恢复原值
	for _, key := range []string{"ADMIN_EMAIL", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Config()
	require.NoError(t, err)
	assert.Empty(t, cfg.Admin.Email)
	assert.Empty(t, cfg.Admin.Password)

	t.Setenv("ADMIN_EMAIL", "  Root@Krishi.Example ")
	t.Setenv("ADMIN_PASSWORD", "s3cret-pass")
	cfg, err = Config()
	require.NoError(t, err)
	assert.Equal(t, "root@krishi.example", cfg.Admin.Email)
	assert.Equal(t, "s3cret-pass", cfg.Admin.Password)
}

func TestConfig_AdminInvalid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "s3cret-pass"},
		{"short password", "root@krishi.example", "12345"},
		{"empty password", "root@krishi.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("ADMIN_EMAIL", tt.email)
			t.Setenv("ADMIN_PASSWORD", tt.password)

			_, err := Config()
			assert.Error(t, err)
		})
	}
}
