package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"quantum-portctl/internal/pkg/logging"

	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	output     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "portctl",
		Short:         "portctl manages ports and attachments of a Quantum network service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "f", "", "Path to config file (YAML)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "Output format: table or json")

	cmd.AddCommand(newPortsCmd(opts))
	cmd.AddCommand(newAttachmentCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func Execute() {
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.GetLogger().WithField("signal", sig.String()).Info("Received shutdown signal, cancelling requests")
		cancel()
	}()

	cobra.CheckErr(newRootCmd().ExecuteContext(ctx))
}
