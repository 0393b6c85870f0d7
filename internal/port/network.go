package port

import (
	"context"

	"quantum-portctl/internal/types"
)

// PortClient is the primary port for the Quantum port resource family.
// Every method performs exactly one HTTP request against the network's ports collection.
//
// Read methods treat a missing network or port as "does not exist": collections come back
// empty and single entities come back nil, without an error. Boolean methods report
// false without an error when the target does not exist.
type PortClient interface {
	ListReferences(ctx context.Context, networkID string) ([]types.Reference, error)
	List(ctx context.Context, networkID string) ([]types.Port, error)
	Show(ctx context.Context, networkID, portID string) (*types.Port, error)
	ShowDetails(ctx context.Context, networkID, portID string) (*types.PortDetails, error)
	Create(ctx context.Context, networkID string) (*types.Reference, error)
	CreateWithState(ctx context.Context, networkID string, state types.PortState) (*types.Port, error)
	Update(ctx context.Context, networkID, portID string, state types.PortState) (bool, error)
	Delete(ctx context.Context, networkID, portID string) (bool, error)
	ShowAttachment(ctx context.Context, networkID, portID string) (*types.Attachment, error)
	PlugAttachment(ctx context.Context, networkID, portID, attachmentID string) (bool, error)
	UnplugAttachment(ctx context.Context, networkID, portID string) (bool, error)
}
