// Package keystone provides Authenticator adapters backed by the OpenStack identity service.
package keystone

import (
	"fmt"

	"quantum-portctl/internal/pkg/config"
	"quantum-portctl/internal/port"

	"github.com/go-goose/goose/v5/client"
	gooseerrors "github.com/go-goose/goose/v5/errors"
	"github.com/go-goose/goose/v5/identity"
)

// authenticatingClient is the part of goose's client.AuthenticatingClient used here.
type authenticatingClient interface {
	Authenticate() error
	Token() string
}

// Authenticator is an adapter that implements the Authenticator port using a goose client.
type Authenticator struct {
	client authenticatingClient
}

// Ensure Authenticator implements the Authenticator port
var _ port.Authenticator = (*Authenticator)(nil)

// NewAuthenticator builds the authenticator for the configured mode.
// Mode "none" returns a nil Authenticator: requests are sent without a token.
func NewAuthenticator(cfg config.AuthConfig, insecureSkipVerify bool) (port.Authenticator, error) {
	switch cfg.Mode {
	case config.AuthModeNone:
		return nil, nil
	case config.AuthModeToken:
		return NewStaticToken(cfg.Token), nil
	}

	creds, mode, err := credentials(cfg)
	if err != nil {
		return nil, err
	}

	var c client.AuthenticatingClient
	if insecureSkipVerify {
		c = client.NewNonValidatingClient(creds, mode, nil)
	} else {
		c = client.NewClient(creds, mode, nil)
	}
	return &Authenticator{client: c}, nil
}

// Authenticate obtains a token from Keystone.
func (a *Authenticator) Authenticate() error {
	if err := a.client.Authenticate(); err != nil {
		if gooseerrors.IsUnauthorised(err) {
			return fmt.Errorf("keystone rejected the credentials, check the username, password and tenant: %w", err)
		}
		return fmt.Errorf("keystone authentication failed: %w", err)
	}
	return nil
}

// Token returns the current token.
func (a *Authenticator) Token() string {
	return a.client.Token()
}

// credentials maps the auth configuration onto goose credentials and auth mode,
// merging OS_* environment variables when from_env is set.
func credentials(cfg config.AuthConfig) (*identity.Credentials, identity.AuthMode, error) {
	creds := &identity.Credentials{
		URL:           cfg.URL,
		User:          cfg.Username,
		Secrets:       cfg.Password,
		Region:        cfg.Region,
		TenantName:    cfg.TenantName,
		TenantID:      cfg.TenantID,
		Domain:        cfg.Domain,
		UserDomain:    cfg.UserDomain,
		ProjectDomain: cfg.ProjectDomain,
	}

	if cfg.FromEnv {
		env, err := identity.CredentialsFromEnv()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read credentials from environment: %w", err)
		}
		creds.URL = firstNonEmpty(creds.URL, env.URL)
		creds.User = firstNonEmpty(creds.User, env.User)
		creds.Secrets = firstNonEmpty(creds.Secrets, env.Secrets)
		creds.Region = firstNonEmpty(creds.Region, env.Region)
		creds.TenantName = firstNonEmpty(creds.TenantName, env.TenantName)
		creds.TenantID = firstNonEmpty(creds.TenantID, env.TenantID)
		creds.Domain = firstNonEmpty(creds.Domain, env.Domain)
		creds.UserDomain = firstNonEmpty(creds.UserDomain, env.UserDomain)
		creds.ProjectDomain = firstNonEmpty(creds.ProjectDomain, env.ProjectDomain)
	}

	if creds.URL == "" {
		return nil, 0, fmt.Errorf("keystone url is required")
	}
	if creds.User == "" || creds.Secrets == "" {
		return nil, 0, fmt.Errorf("keystone username and password are required")
	}

	var mode identity.AuthMode
	switch cfg.Mode {
	case config.AuthModeUserPass:
		mode = identity.AuthUserPass
	case config.AuthModeUserPassV3:
		mode = identity.AuthUserPassV3
		creds.Version = 3
	case config.AuthModeKeyPair:
		mode = identity.AuthKeyPair
	case config.AuthModeLegacy:
		mode = identity.AuthLegacy
	default:
		return nil, 0, fmt.Errorf("unsupported keystone auth mode %q", cfg.Mode)
	}
	return creds, mode, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
