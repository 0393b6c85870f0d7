//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Quantum: QuantumConfig{
			Endpoint: "http://quantum:9696/v1.0/tenants/tenant-1",
			Timeout:  DefaultTimeout,
		},
		Auth: AuthConfig{
			Mode:     AuthModeUserPass,
			URL:      "http://keystone:5000/v2.0/",
			Username: "admin",
			Password: "secret",
		},
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidConfig", func(t *testing.T) {
		configContent := `logging:
  level: debug
  format: compact

quantum:
  endpoint: http://quantum:9696/v1.0/tenants/tenant-1
  timeout: 10s

auth:
  mode: USERPASS-V3
  url: http://keystone:5000/v3/
  username: admin
  password: secret
  tenant_name: demo
  domain: default

transport:
  retries: 3
  retry_delay: 250ms
  metrics: true
`
		configFile := filepath.Join(tempDir, "valid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "compact", config.Logging.Format)
		assert.Equal(t, "http://quantum:9696/v1.0/tenants/tenant-1", config.Quantum.Endpoint)
		assert.Equal(t, 10*time.Second, config.Quantum.Timeout)
		assert.Equal(t, AuthModeUserPassV3, config.Auth.Mode)
		assert.Equal(t, "demo", config.Auth.TenantName)
		assert.Equal(t, "default", config.Auth.Domain)
		assert.Equal(t, 3, config.Transport.Retries)
		assert.Equal(t, 250*time.Millisecond, config.Transport.RetryDelay)
		assert.True(t, config.Transport.Metrics)
		assert.NoError(t, config.Validate())
	})

	t.Run("Defaults", func(t *testing.T) {
		configContent := `quantum:
  endpoint: http://quantum:9696/v1.0/tenants/tenant-1
auth:
  mode: none
`
		configFile := filepath.Join(tempDir, "defaults.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, config.Quantum.Timeout)
		assert.Equal(t, DefaultRetryDelay, config.Transport.RetryDelay)
		assert.Equal(t, 0, config.Transport.Retries)
		assert.NoError(t, config.Validate())
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configContent := `invalid: yaml: content: [
`
		configFile := filepath.Join(tempDir, "invalid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		_, err = Load(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("MissingEndpoint", func(t *testing.T) {
		config := validConfig()
		config.Quantum.Endpoint = ""

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "quantum endpoint is required")
	})

	t.Run("RelativeEndpoint", func(t *testing.T) {
		config := validConfig()
		config.Quantum.Endpoint = "v1.0/tenants/tenant-1"

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not an absolute URL")
	})

	t.Run("NegativeRetries", func(t *testing.T) {
		config := validConfig()
		config.Transport.Retries = -1

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "retries must not be negative")
	})

	t.Run("UnknownAuthMode", func(t *testing.T) {
		config := validConfig()
		config.Auth.Mode = "kerberos"

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown auth mode")
	})

	t.Run("TokenModeWithoutToken", func(t *testing.T) {
		config := validConfig()
		config.Auth = AuthConfig{Mode: AuthModeToken}

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("UserPassWithoutPassword", func(t *testing.T) {
		config := validConfig()
		config.Auth.Password = ""

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "username and password are required")
	})

	t.Run("UserPassFromEnv", func(t *testing.T) {
		config := validConfig()
		config.Auth = AuthConfig{Mode: AuthModeUserPass, FromEnv: true}

		assert.NoError(t, config.Validate())
	})

	t.Run("MissingAuthURL", func(t *testing.T) {
		config := validConfig()
		config.Auth.URL = ""

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "url is required")
	})
}
