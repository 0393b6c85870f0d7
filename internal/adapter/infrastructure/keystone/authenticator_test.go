//go:build unit

package keystone

import (
	"testing"

	"quantum-portctl/internal/pkg/config"

	gooseerrors "github.com/go-goose/goose/v5/errors"
	"github.com/go-goose/goose/v5/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	err   error
	token string
}

func (f *fakeClient) Authenticate() error {
	if f.err != nil {
		return f.err
	}
	f.token = "issued"
	return nil
}

func (f *fakeClient) Token() string { return f.token }

func TestNewAuthenticator(t *testing.T) {
	t.Run("None", func(t *testing.T) {
		auth, err := NewAuthenticator(config.AuthConfig{Mode: config.AuthModeNone}, false)
		require.NoError(t, err)
		assert.Nil(t, auth)
	})

	t.Run("Token", func(t *testing.T) {
		auth, err := NewAuthenticator(config.AuthConfig{Mode: config.AuthModeToken, Token: "abc"}, false)
		require.NoError(t, err)
		require.IsType(t, &StaticToken{}, auth)
		assert.Equal(t, "abc", auth.Token())
	})

	t.Run("UserPass", func(t *testing.T) {
		auth, err := NewAuthenticator(config.AuthConfig{
			Mode:       config.AuthModeUserPass,
			URL:        "https://keystone:5000/v2.0",
			Username:   "admin",
			Password:   "secret",
			TenantName: "demo",
		}, true)
		require.NoError(t, err)
		require.IsType(t, &Authenticator{}, auth)
		assert.Empty(t, auth.Token())
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		_, err := NewAuthenticator(config.AuthConfig{
			Mode: config.AuthModeUserPass,
			URL:  "https://keystone:5000/v2.0",
		}, false)
		assert.EqualError(t, err, "keystone username and password are required")
	})
}

func TestAuthenticator_Authenticate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		auth := &Authenticator{client: &fakeClient{}}
		require.NoError(t, auth.Authenticate())
		assert.Equal(t, "issued", auth.Token())
	})

	t.Run("Rejected", func(t *testing.T) {
		cause := gooseerrors.NewUnauthorisedf(nil, "", "invalid credentials")
		auth := &Authenticator{client: &fakeClient{err: cause}}

		err := auth.Authenticate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keystone rejected the credentials")
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, auth.Token())
	})

	t.Run("Unreachable", func(t *testing.T) {
		auth := &Authenticator{client: &fakeClient{err: assert.AnError}}

		err := auth.Authenticate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keystone authentication failed")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCredentials(t *testing.T) {
	base := config.AuthConfig{
		URL:        "https://keystone:5000/v3",
		Username:   "admin",
		Password:   "secret",
		TenantName: "demo",
		Region:     "RegionOne",
	}

	t.Run("Modes", func(t *testing.T) {
		tests := []struct {
			mode    string
			want    identity.AuthMode
			version int
		}{
			{config.AuthModeUserPass, identity.AuthUserPass, 0},
			{config.AuthModeUserPassV3, identity.AuthUserPassV3, 3},
			{config.AuthModeKeyPair, identity.AuthKeyPair, 0},
			{config.AuthModeLegacy, identity.AuthLegacy, 0},
		}
		for _, tt := range tests {
			t.Run(tt.mode, func(t *testing.T) {
				cfg := base
				cfg.Mode = tt.mode

				creds, mode, err := credentials(cfg)
				require.NoError(t, err)
				assert.Equal(t, tt.want, mode)
				assert.Equal(t, tt.version, creds.Version)
				assert.Equal(t, "admin", creds.User)
				assert.Equal(t, "secret", creds.Secrets)
				assert.Equal(t, "demo", creds.TenantName)
				assert.Equal(t, "RegionOne", creds.Region)
			})
		}
	})

	t.Run("UnknownMode", func(t *testing.T) {
		cfg := base
		cfg.Mode = "kerberos"
		_, _, err := credentials(cfg)
		assert.EqualError(t, err, `unsupported keystone auth mode "kerberos"`)
	})

	t.Run("MissingURL", func(t *testing.T) {
		cfg := base
		cfg.Mode = config.AuthModeUserPass
		cfg.URL = ""
		_, _, err := credentials(cfg)
		assert.EqualError(t, err, "keystone url is required")
	})

	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("OS_AUTH_URL", "https://env-keystone:5000/v2.0")
		t.Setenv("OS_USERNAME", "env-user")
		t.Setenv("OS_PASSWORD", "env-secret")
		t.Setenv("OS_TENANT_NAME", "env-tenant")
		t.Setenv("OS_REGION_NAME", "env-region")

		creds, mode, err := credentials(config.AuthConfig{
			Mode:    config.AuthModeUserPass,
			FromEnv: true,
			Region:  "RegionTwo",
		})
		require.NoError(t, err)
		assert.Equal(t, identity.AuthUserPass, mode)
		assert.Equal(t, "https://env-keystone:5000/v2.0", creds.URL)
		assert.Equal(t, "env-user", creds.User)
		assert.Equal(t, "env-secret", creds.Secrets)
		assert.Equal(t, "env-tenant", creds.TenantName)
		assert.Equal(t, "RegionTwo", creds.Region, "configured values win over the environment")
	})
}

func TestStaticToken(t *testing.T) {
	t.Run("SingleUse", func(t *testing.T) {
		tok := NewStaticToken("abc")
		require.NoError(t, tok.Authenticate())
		assert.Equal(t, "abc", tok.Token())

		err := tok.Authenticate()
		assert.EqualError(t, err, "static token was rejected and cannot be refreshed")
	})

	t.Run("Empty", func(t *testing.T) {
		err := NewStaticToken("").Authenticate()
		assert.EqualError(t, err, "no token configured")
	})
}
