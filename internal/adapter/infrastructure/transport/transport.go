// Package transport provides the gophercloud service client the Quantum client sends
// requests through. Retries and metrics are layered as http.RoundTripper decorators under
// gophercloud, which attaches the token and re-authenticates on 401.
package transport

import (
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"time"

	"quantum-portctl/internal/port"

	"github.com/juju/clock"
)

// Defaults taken from the net/http default transport.
const (
	DefaultDialTimeout         = 30 * time.Second
	DefaultDialKeepalive       = 30 * time.Second
	DefaultTLSHandshakeTimeout = 10 * time.Second
)

// Options configures the transport chain.
type Options struct {
	// Timeout bounds a whole request, including retries and re-authentication
	Timeout            time.Duration
	InsecureSkipVerify bool
	// Authenticator supplies X-Auth-Token; nil sends requests without a token
	Authenticator port.Authenticator
	// Base is the innermost RoundTripper; nil uses an http.Transport with the default timeouts
	Base http.RoundTripper
	// Retries is the number of extra attempts for idempotent requests
	Retries    int
	RetryDelay time.Duration
	// Metrics instruments every attempt on the wire; nil disables instrumentation
	Metrics *Collector
	Clock   clock.Clock
}

// New returns an *http.Client whose transport applies the configured decorators.
func New(opts Options) *http.Client {
	base := opts.Base
	if base == nil {
		base = defaultTransport(opts.InsecureSkipVerify)
	}
	return &http.Client{
		Transport: Chain(base, opts),
		Timeout:   opts.Timeout,
	}
}

func defaultTransport(insecureSkipVerify bool) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   DefaultDialTimeout,
			KeepAlive: DefaultDialKeepalive,
		}).DialContext,
		TLSHandshakeTimeout: DefaultTLSHandshakeTimeout,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecureSkipVerify,
		},
	}
}

// Chain wraps base with, from the outside in: retry, metrics.
func Chain(base http.RoundTripper, opts Options) http.RoundTripper {
	rt := base
	if opts.Metrics != nil {
		rt = opts.Metrics.Wrap(rt)
	}
	if opts.Retries > 0 {
		clk := opts.Clock
		if clk == nil {
			clk = clock.WallClock
		}
		rt = NewRetryRoundTripper(rt, opts.Retries, opts.RetryDelay, clk)
	}
	return rt
}

// rewind returns a copy of req with a fresh body, for replaying it.
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
	}
	return clone, nil
}

// replayable reports whether the request body can be sent again.
func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

func discard(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
