package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"quantum-portctl/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Authentication modes
const (
	AuthModeUserPass   = "userpass"
	AuthModeUserPassV3 = "userpass-v3"
	AuthModeKeyPair    = "keypair"
	AuthModeLegacy     = "legacy"
	AuthModeToken      = "token"
	AuthModeNone       = "none"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryDelay = 500 * time.Millisecond
)

// QuantumConfig represents the Quantum API endpoint configuration
type QuantumConfig struct {
	// Endpoint is the tenant scoped base URL, e.g. http://quantum:9696/v1.0/tenants/TENANT
	Endpoint           string        `yaml:"endpoint"`
	Timeout            time.Duration `yaml:"timeout"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
}

// AuthConfig represents Keystone credentials
type AuthConfig struct {
	Mode          string `yaml:"mode"`
	FromEnv       bool   `yaml:"from_env"`
	URL           string `yaml:"url"`
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	TenantName    string `yaml:"tenant_name"`
	TenantID      string `yaml:"tenant_id"`
	Region        string `yaml:"region"`
	Domain        string `yaml:"domain"`
	UserDomain    string `yaml:"user_domain"`
	ProjectDomain string `yaml:"project_domain"`
	Token         string `yaml:"token"`
}

// TransportConfig represents HTTP transport behaviour
type TransportConfig struct {
	Retries    int           `yaml:"retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
	Metrics    bool          `yaml:"metrics"`
}

// Config represents the main configuration structure
type Config struct {
	Logging   logging.LogConfig `yaml:"logging"`
	Quantum   QuantumConfig     `yaml:"quantum"`
	Auth      AuthConfig        `yaml:"auth"`
	Transport TransportConfig   `yaml:"transport"`
}

// Load loads configuration from a YAML file and fills in defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Quantum.Timeout == 0 {
		c.Quantum.Timeout = DefaultTimeout
	}
	if c.Transport.RetryDelay == 0 {
		c.Transport.RetryDelay = DefaultRetryDelay
	}
	if c.Auth.Mode == "" {
		c.Auth.Mode = AuthModeUserPass
	}
	c.Auth.Mode = strings.ToLower(c.Auth.Mode)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Quantum.Endpoint == "" {
		return fmt.Errorf("quantum endpoint is required")
	}
	u, err := url.Parse(c.Quantum.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("quantum endpoint %q is not an absolute URL", c.Quantum.Endpoint)
	}
	if c.Quantum.Timeout < 0 {
		return fmt.Errorf("quantum timeout must not be negative")
	}
	if c.Transport.Retries < 0 {
		return fmt.Errorf("transport retries must not be negative")
	}
	return validateAuthConfig(&c.Auth)
}

func validateAuthConfig(auth *AuthConfig) error {
	switch auth.Mode {
	case AuthModeNone:
		return nil
	case AuthModeToken:
		if auth.Token == "" {
			return fmt.Errorf("auth mode %s: token is required", auth.Mode)
		}
		return nil
	case AuthModeUserPass, AuthModeUserPassV3, AuthModeKeyPair, AuthModeLegacy:
	default:
		return fmt.Errorf("unknown auth mode %q", auth.Mode)
	}

	// Environment credentials are merged later, so only an explicit config can be checked here
	if auth.FromEnv {
		return nil
	}
	if auth.URL == "" {
		return fmt.Errorf("auth mode %s: url is required", auth.Mode)
	}
	if auth.Username == "" || auth.Password == "" {
		return fmt.Errorf("auth mode %s: username and password are required", auth.Mode)
	}
	return nil
}
