package cmd

import (
	"quantum-portctl/internal/adapter/infrastructure/network"
	"quantum-portctl/internal/adapter/vif"
	"quantum-portctl/internal/pkg/logging"
	"quantum-portctl/internal/port"
	"quantum-portctl/internal/types"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
)

func newAttachmentCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachment",
		Short: "Manage the attachment plugged into a port",
	}
	cmd.AddCommand(
		newAttachmentShowCmd(opts),
		newAttachmentPlugCmd(opts, network.NewManagerAdapter()),
		newAttachmentUnplugCmd(opts),
	)
	return cmd
}

func newAttachmentShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NETWORK PORT",
		Short: "Show the attachment plugged into a port",
		Args:  cobra.ExactArgs(2),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			networkID, portID := args[0], args[1]

			a, err := s.client.ShowAttachment(cmd.Context(), networkID, portID)
			if err != nil {
				return err
			}
			if a == nil {
				return s.printer.message(nil, "Port %s has no attachment", portID)
			}
			return s.printer.print(a, []any{"ATTACHMENT"}, [][]any{{a.ID}})
		}),
	}
}

func newAttachmentPlugCmd(opts *rootOptions, networkMgr port.NetworkManager) *cobra.Command {
	var attachmentID, iface string

	cmd := &cobra.Command{
		Use:   "plug NETWORK PORT",
		Short: "Plug an attachment into a port",
		Long: "Plug an attachment into a port. The attachment id is taken from --id, derived from a " +
			"local interface with --interface, or generated when neither is given.",
		Args: cobra.ExactArgs(2),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			networkID, portID := args[0], args[1]
			logger := logging.WithComponentAndNetwork("cli", networkID)

			switch {
			case attachmentID != "":
			case iface != "":
				id, err := vif.NewResolver(networkMgr).AttachmentID(iface)
				if err != nil {
					return err
				}
				attachmentID = id
				logger.WithField("interface", iface).WithField("attachment", id).Info("Resolved attachment from interface")
			default:
				attachmentID = uuid.NewString()
				logger.WithField("attachment", attachmentID).Info("Generated attachment id")
			}

			ok, err := s.client.PlugAttachment(cmd.Context(), networkID, portID, attachmentID)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NotFoundf("port %s on network %s", portID, networkID)
			}
			return s.printer.message(types.Attachment{ID: attachmentID}, "Plugged %s into port %s", attachmentID, portID)
		}),
	}
	cmd.Flags().StringVar(&attachmentID, "id", "", "Attachment (VIF) id to plug")
	cmd.Flags().StringVar(&iface, "interface", "", "Local interface whose alias or MAC address is the attachment id")
	cmd.MarkFlagsMutuallyExclusive("id", "interface")
	return cmd
}

func newAttachmentUnplugCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unplug NETWORK PORT",
		Short: "Unplug the attachment from a port",
		Args:  cobra.ExactArgs(2),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			networkID, portID := args[0], args[1]

			ok, err := s.client.UnplugAttachment(cmd.Context(), networkID, portID)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NotFoundf("port %s on network %s", portID, networkID)
			}
			return s.printer.message(types.Reference{ID: portID}, "Unplugged the attachment from port %s", portID)
		}),
	}
}
