package cmd

import (
	"fmt"
	"io"

	"quantum-portctl/internal/adapter/infrastructure/keystone"
	"quantum-portctl/internal/adapter/infrastructure/transport"
	"quantum-portctl/internal/adapter/quantum"
	"quantum-portctl/internal/pkg/config"
	"quantum-portctl/internal/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// session is everything a command needs to talk to Quantum.
type session struct {
	cfg      *config.Config
	client   *quantum.Client
	async    *quantum.AsyncClient
	registry *prometheus.Registry
	printer  *printer
	stderr   io.Writer
}

// newSession loads the configuration and wires the client, its transport and the authenticator.
func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	p, err := newPrinter(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return nil, err
	}
	if opts.configPath == "" {
		return nil, fmt.Errorf("a config file is required, pass it with --config")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	logging.InitLogger(cfg.Logging)
	logger := logging.GetLogger()

	auth, err := keystone.NewAuthenticator(cfg.Auth, cfg.Quantum.InsecureSkipVerify)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	s := &session{
		cfg:     cfg,
		printer: p,
		stderr:  cmd.ErrOrStderr(),
	}

	var collector *transport.Collector
	if cfg.Transport.Metrics {
		collector = transport.NewMetricsCollector()
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(collector)
	}

	service, err := transport.NewServiceClient(cfg.Quantum.Endpoint, transport.Options{
		Timeout:            cfg.Quantum.Timeout,
		InsecureSkipVerify: cfg.Quantum.InsecureSkipVerify,
		Authenticator:      auth,
		Retries:            cfg.Transport.Retries,
		RetryDelay:         cfg.Transport.RetryDelay,
		Metrics:            collector,
	})
	if err != nil {
		return nil, err
	}

	client, err := quantum.NewClient(service)
	if err != nil {
		return nil, err
	}
	s.client = client
	s.async = quantum.NewAsyncClient(client)

	logger.WithFields(map[string]interface{}{
		"endpoint":  client.Endpoint(),
		"auth_mode": cfg.Auth.Mode,
		"retries":   cfg.Transport.Retries,
	}).Debug("Quantum client ready")
	return s, nil
}

// close writes the collected request metrics, in the Prometheus text format, to stderr.
func (s *session) close() {
	if s.registry == nil {
		return
	}
	families, err := s.registry.Gather()
	if err != nil {
		logging.WithError(err).Warn("Failed to gather request metrics")
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(s.stderr, mf); err != nil {
			logging.WithError(err).Warn("Failed to write request metrics")
			return
		}
	}
}

// run wraps a command body with session setup and teardown.
func run(opts *rootOptions, fn func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, opts)
		if err != nil {
			return err
		}
		defer s.close()
		return fn(cmd, s, args)
	}
}
