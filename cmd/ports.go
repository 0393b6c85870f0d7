package cmd

import (
	"context"
	"fmt"

	"quantum-portctl/internal/adapter/quantum"
	"quantum-portctl/internal/pkg/logging"
	"quantum-portctl/internal/types"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newPortsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ports",
		Aliases: []string{"port"},
		Short:   "Manage the ports of a network",
	}
	cmd.AddCommand(
		newPortsListCmd(opts),
		newPortsShowCmd(opts),
		newPortsCreateCmd(opts),
		newPortsUpdateCmd(opts),
		newPortsDeleteCmd(opts),
	)
	return cmd
}

// portRow is a port as listed with --attachments.
type portRow struct {
	ID         string          `json:"id"`
	State      types.PortState `json:"state,omitempty"`
	Attachment string          `json:"attachment,omitempty"`
}

func newPortsListCmd(opts *rootOptions) *cobra.Command {
	var detail, attachments bool

	cmd := &cobra.Command{
		Use:   "list NETWORK",
		Short: "List the ports of a network",
		Args:  cobra.ExactArgs(1),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			ctx := cmd.Context()
			networkID := args[0]

			if !detail && !attachments {
				refs, err := s.client.ListReferences(ctx, networkID)
				if err != nil {
					return err
				}
				rows := lo.Map(refs, func(r types.Reference, _ int) []any { return []any{r.ID} })
				return s.printer.print(refs, []any{"ID"}, rows)
			}

			ports, err := s.client.List(ctx, networkID)
			if err != nil {
				return err
			}
			if !attachments {
				rows := lo.Map(ports, func(p types.Port, _ int) []any { return []any{p.ID, p.State} })
				return s.printer.print(ports, []any{"ID", "STATE"}, rows)
			}

			listed, err := withAttachments(ctx, s.async, networkID, ports)
			if err != nil {
				return err
			}
			rows := lo.Map(listed, func(p portRow, _ int) []any {
				return []any{p.ID, p.State, lo.Ternary(p.Attachment == "", "-", p.Attachment)}
			})
			return s.printer.print(listed, []any{"ID", "STATE", "ATTACHMENT"}, rows)
		}),
	}
	cmd.Flags().BoolVar(&detail, "detail", false, "Include the state of each port")
	cmd.Flags().BoolVar(&attachments, "attachments", false, "Include the attachment of each port, fetched concurrently")
	return cmd
}

// withAttachments fetches the attachment of every port concurrently and joins the results
// in the order of ports.
func withAttachments(ctx context.Context, async *quantum.AsyncClient, networkID string, ports []types.Port) ([]portRow, error) {
	futures := lo.Map(ports, func(p types.Port, _ int) *quantum.Future[*types.Attachment] {
		return async.ShowAttachment(ctx, networkID, p.ID)
	})

	rows := make([]portRow, 0, len(ports))
	for i, p := range ports {
		attachment, err := futures[i].Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to show attachment of port %s: %w", p.ID, err)
		}
		row := portRow{ID: p.ID, State: p.State}
		if attachment != nil {
			row.Attachment = attachment.ID
		}
		rows = append(rows, row)
	}
	logging.WithComponentAndNetwork("cli", networkID).WithField("ports", len(rows)).Debug("Fetched port attachments")
	return rows, nil
}

func newPortsShowCmd(opts *rootOptions) *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "show NETWORK PORT",
		Short: "Show a port",
		Args:  cobra.ExactArgs(2),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			networkID, portID := args[0], args[1]

			if !detail {
				p, err := s.client.Show(cmd.Context(), networkID, portID)
				if err != nil {
					return err
				}
				if p == nil {
					return errors.NotFoundf("port %s on network %s", portID, networkID)
				}
				return s.printer.print(p, []any{"ID", "STATE"}, [][]any{{p.ID, p.State}})
			}

			d, err := s.client.ShowDetails(cmd.Context(), networkID, portID)
			if err != nil {
				return err
			}
			if d == nil {
				return errors.NotFoundf("port %s on network %s", portID, networkID)
			}
			attachment := "-"
			if d.Attachment != nil {
				attachment = d.Attachment.ID
			}
			return s.printer.print(d, []any{"ID", "NAME", "STATE", "ATTACHMENT"}, [][]any{{d.ID, d.Name, d.State, attachment}})
		}),
	}
	cmd.Flags().BoolVar(&detail, "detail", false, "Show the extended representation, including the attachment")
	return cmd
}

func newPortsCreateCmd(opts *rootOptions) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "create NETWORK",
		Short: "Create a port",
		Args:  cobra.ExactArgs(1),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			networkID := args[0]

			if state == "" {
				ref, err := s.client.Create(cmd.Context(), networkID)
				if err != nil {
					return err
				}
				return s.printer.print(ref, []any{"ID"}, [][]any{{ref.ID}})
			}

			portState, err := types.ParsePortState(state)
			if err != nil {
				return err
			}
			p, err := s.client.CreateWithState(cmd.Context(), networkID, portState)
			if err != nil {
				return err
			}
			return s.printer.print(p, []any{"ID", "STATE"}, [][]any{{p.ID, p.State}})
		}),
	}
	cmd.Flags().StringVar(&state, "state", "", "Initial state of the port (ACTIVE, DOWN, BUILD or ERROR)")
	return cmd
}

func newPortsUpdateCmd(opts *rootOptions) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "update NETWORK PORT",
		Short: "Change the state of a port",
		Args:  cobra.ExactArgs(2),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			networkID, portID := args[0], args[1]

			portState, err := types.ParsePortState(state)
			if err != nil {
				return err
			}
			ok, err := s.client.Update(cmd.Context(), networkID, portID, portState)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NotFoundf("port %s on network %s", portID, networkID)
			}
			return s.printer.message(types.Port{ID: portID, State: portState}, "Port %s is now %s", portID, portState)
		}),
	}
	cmd.Flags().StringVar(&state, "state", "", "New state of the port (ACTIVE, DOWN, BUILD or ERROR)")
	if err := cmd.MarkFlagRequired("state"); err != nil {
		panic(err) // This should never happen during initialization
	}
	return cmd
}

func newPortsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NETWORK PORT",
		Short: "Delete a port",
		Args:  cobra.ExactArgs(2),
		RunE: run(opts, func(cmd *cobra.Command, s *session, args []string) error {
			networkID, portID := args[0], args[1]

			ok, err := s.client.Delete(cmd.Context(), networkID, portID)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NotFoundf("port %s on network %s", portID, networkID)
			}
			return s.printer.message(types.Reference{ID: portID}, "Port %s deleted", portID)
		}),
	}
}
