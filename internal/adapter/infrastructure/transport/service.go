package transport

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"quantum-portctl/internal/pkg/logging"
	"quantum-portctl/internal/pkg/version"
	"quantum-portctl/internal/port"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/juju/errors"
)

// AuthTokenHeader carries the Keystone token on Quantum requests.
const AuthTokenHeader = "X-Auth-Token"

// NewServiceClient returns a gophercloud service client for a tenant scoped Quantum endpoint,
// e.g. http://quantum:9696/v1.0/tenants/TENANT. Requests go through the client built by New.
//
// With an Authenticator, the provider re-authenticates once and replays the request when the
// server answers 401. The first token is obtained by Authenticate.
func NewServiceClient(endpoint string, opts Options) (*gophercloud.ServiceClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme and host are required", endpoint)
	}

	provider := &gophercloud.ProviderClient{
		HTTPClient: *New(opts),
	}
	provider.UseTokenLock()
	provider.UserAgent.Prepend(version.UserAgent())
	if opts.Authenticator != nil {
		provider.ReauthFunc = reauthFunc(provider, opts.Authenticator)
	}

	return &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       strings.TrimRight(endpoint, "/") + "/",
		Type:           "network",
	}, nil
}

// Authenticate obtains the first token for service. It does nothing when the service has no
// authenticator or already holds a token.
func Authenticate(ctx context.Context, service *gophercloud.ServiceClient) error {
	if service.ReauthFunc == nil || service.Token() != "" {
		return nil
	}
	return service.Reauthenticate(ctx, "")
}

func reauthFunc(provider *gophercloud.ProviderClient, auth port.Authenticator) func(context.Context) error {
	return func(ctx context.Context) error {
		logging.WithComponent("auth").Debug("Requesting a new token")
		if err := auth.Authenticate(); err != nil {
			return errors.NewUnauthorized(err, "authentication failed")
		}
		provider.SetToken(auth.Token())
		return nil
	}
}
