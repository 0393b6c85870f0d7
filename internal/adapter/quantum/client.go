// Package quantum implements the Quantum v1.0 port resource client.
package quantum

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quantum-portctl/internal/adapter/infrastructure/transport"
	"quantum-portctl/internal/pkg/logging"
	"quantum-portctl/internal/port"
	"quantum-portctl/internal/types"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// maxErrorBody bounds how much of an error response is kept in HTTPError.
const maxErrorBody = 4096

const mediaTypeJSON = "application/json"

// successCodes are handed to gophercloud as OkCodes so that every non-2xx status is reported
// as ErrUnexpectedResponseCode and interpreted here.
var successCodes = lo.RangeFrom(200, 100)

// Client is the synchronous port resource client. It holds no mutable state of its own;
// tokens, retries and timeouts belong to the injected service client.
type Client struct {
	service *gophercloud.ServiceClient
}

// Ensure Client implements the PortClient port
var _ port.PortClient = (*Client)(nil)

// NewClient creates a client that sends requests through service, whose endpoint is the
// tenant scoped base URL, e.g. http://quantum:9696/v1.0/tenants/TENANT/.
func NewClient(service *gophercloud.ServiceClient) (*Client, error) {
	if service == nil || service.ProviderClient == nil {
		return nil, fmt.Errorf("a service client is required")
	}
	return &Client{service: service}, nil
}

// Endpoint returns the base URL requests are made against.
func (c *Client) Endpoint() string {
	return strings.TrimRight(c.service.Endpoint, "/")
}

type portPayload struct {
	State types.PortState `json:"state"`
}

type attachmentPayload struct {
	ID string `json:"id"`
}

// ListReferences returns the identifiers of all ports on the network.
func (c *Client) ListReferences(ctx context.Context, networkID string) ([]types.Reference, error) {
	if err := requireIDs(networkID); err != nil {
		return nil, err
	}
	var refs []types.Reference
	if _, err := c.call(ctx, opListReferences, networkID, nil, &refs, "net", networkID); err != nil {
		return nil, err
	}
	return uniqueByID(refs, func(r types.Reference) string { return r.ID }), nil
}

// List returns all ports on the network with their state.
func (c *Client) List(ctx context.Context, networkID string) ([]types.Port, error) {
	if err := requireIDs(networkID); err != nil {
		return nil, err
	}
	var ports []types.Port
	if _, err := c.call(ctx, opList, networkID, nil, &ports, "net", networkID); err != nil {
		return nil, err
	}
	return uniqueByID(ports, func(p types.Port) string { return p.ID }), nil
}

// Show returns the port, or nil if it does not exist.
func (c *Client) Show(ctx context.Context, networkID, portID string) (*types.Port, error) {
	if err := requireIDs(networkID, portID); err != nil {
		return nil, err
	}
	var p types.Port
	res, err := c.call(ctx, opShow, networkID, nil, &p, "net", networkID, "id", portID)
	if err != nil || res == outcomeAbsent {
		return nil, err
	}
	return &p, nil
}

// ShowDetails returns the extended port representation, or nil if it does not exist.
func (c *Client) ShowDetails(ctx context.Context, networkID, portID string) (*types.PortDetails, error) {
	if err := requireIDs(networkID, portID); err != nil {
		return nil, err
	}
	var d types.PortDetails
	res, err := c.call(ctx, opShowDetails, networkID, nil, &d, "net", networkID, "id", portID)
	if err != nil || res == outcomeAbsent {
		return nil, err
	}
	return &d, nil
}

// Create creates a port with the server's default state.
func (c *Client) Create(ctx context.Context, networkID string) (*types.Reference, error) {
	if err := requireIDs(networkID); err != nil {
		return nil, err
	}
	var ref types.Reference
	if _, err := c.call(ctx, opCreate, networkID, nil, &ref, "net", networkID); err != nil {
		return nil, err
	}
	return &ref, nil
}

// CreateWithState creates a port in the given state.
func (c *Client) CreateWithState(ctx context.Context, networkID string, state types.PortState) (*types.Port, error) {
	if err := requireIDs(networkID); err != nil {
		return nil, err
	}
	var p types.Port
	if _, err := c.call(ctx, opCreateWithState, networkID, portPayload{State: state}, &p, "net", networkID); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update sets the port state. It reports false without an error if the port does not exist.
func (c *Client) Update(ctx context.Context, networkID, portID string, state types.PortState) (bool, error) {
	if err := requireIDs(networkID, portID); err != nil {
		return false, err
	}
	res, err := c.call(ctx, opUpdate, networkID, portPayload{State: state}, nil, "net", networkID, "id", portID)
	return res == outcomeSuccess, err
}

// Delete removes the port. It reports false without an error if the port does not exist.
func (c *Client) Delete(ctx context.Context, networkID, portID string) (bool, error) {
	if err := requireIDs(networkID, portID); err != nil {
		return false, err
	}
	res, err := c.call(ctx, opDelete, networkID, nil, nil, "net", networkID, "id", portID)
	return res == outcomeSuccess, err
}

// ShowAttachment returns the attachment plugged into the port, or nil if there is none.
func (c *Client) ShowAttachment(ctx context.Context, networkID, portID string) (*types.Attachment, error) {
	if err := requireIDs(networkID, portID); err != nil {
		return nil, err
	}
	var a types.Attachment
	res, err := c.call(ctx, opShowAttachment, networkID, nil, &a, "net", networkID, "portId", portID)
	if err != nil || res == outcomeAbsent {
		return nil, err
	}
	return &a, nil
}

// PlugAttachment binds the attachment to the port.
func (c *Client) PlugAttachment(ctx context.Context, networkID, portID, attachmentID string) (bool, error) {
	if err := requireIDs(networkID, portID, attachmentID); err != nil {
		return false, err
	}
	payload := attachmentPayload{ID: attachmentID}
	res, err := c.call(ctx, opPlugAttachment, networkID, payload, nil, "net", networkID, "portId", portID)
	return res == outcomeSuccess, err
}

// UnplugAttachment removes whatever attachment is bound to the port.
func (c *Client) UnplugAttachment(ctx context.Context, networkID, portID string) (bool, error) {
	if err := requireIDs(networkID, portID); err != nil {
		return false, err
	}
	res, err := c.call(ctx, opUnplugAttachment, networkID, nil, nil, "net", networkID, "portId", portID)
	return res == outcomeSuccess, err
}

// call performs one request for op and interprets its status under op's policy.
// On success, if op selects a response field and dst is not nil, the field is decoded into dst;
// a null field is reported as outcomeAbsent.
func (c *Client) call(ctx context.Context, op operation, networkID string, payload, dst any, params ...string) (outcome, error) {
	logger := logging.WithComponentAndNetwork("quantum", networkID).WithField("operation", op.name)

	if err := transport.Authenticate(ctx, c.service); err != nil {
		return outcomeFailure, fmt.Errorf("%s: %w", op.name, err)
	}

	target := c.service.ServiceURL(strings.TrimPrefix(op.expand(params...), "/"))
	opts := &gophercloud.RequestOpts{
		OkCodes:     successCodes,
		MoreHeaders: map[string]string{"Accept": mediaTypeJSON},
	}
	if op.wrap != "" {
		opts.JSONBody = envelope(op.wrap, payload)
	}
	var body map[string]any
	if dst != nil && op.unwrap != "" {
		opts.JSONResponse = &body
	}

	start := time.Now()
	resp, err := c.service.Request(ctx, op.method, target, opts)
	status, httpErr := statusOf(op, target, resp, err)
	if status == 0 {
		logger.WithError(err).Debug("Quantum request failed")
		return outcomeFailure, fmt.Errorf("%s: %s %s failed: %w", op.name, op.method, target, err)
	}

	result := interpret(status, op.policy)
	logger.WithFields(logrus.Fields{
		"method":   op.method,
		"url":      target,
		"status":   status,
		"duration": time.Since(start).String(),
	}).Debug("Quantum request completed")

	switch result {
	case outcomeAbsent:
		return outcomeAbsent, nil
	case outcomeFailure:
		return outcomeFailure, httpErr
	}

	if opts.JSONResponse != nil {
		present, err := unwrap(body, op.unwrap, dst)
		if err != nil {
			return outcomeFailure, fmt.Errorf("%s: %w", op.name, err)
		}
		if !present {
			return outcomeAbsent, nil
		}
	}
	return outcomeSuccess, nil
}

// statusOf extracts the response status from the outcome of a gophercloud request. A zero
// status means no response was received. For non-2xx statuses the matching HTTPError is
// returned as well.
func statusOf(op operation, target string, resp *http.Response, err error) (int, *HTTPError) {
	if err == nil {
		if resp == nil {
			return 0, nil
		}
		return resp.StatusCode, nil
	}

	var codeErr gophercloud.ErrUnexpectedResponseCode
	if !stderrors.As(err, &codeErr) {
		return 0, nil
	}
	body := codeErr.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return codeErr.Actual, &HTTPError{
		Operation:  op.name,
		Method:     op.method,
		URL:        target,
		StatusCode: codeErr.Actual,
		Body:       strings.TrimSpace(string(body)),
	}
}

// requireIDs rejects identifiers that would produce a malformed path or, as a "." or ".."
// segment, be resolved by the server to a different resource.
func requireIDs(ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return errors.NotValidf("empty identifier")
		}
		for _, segment := range strings.Split(id, "/") {
			if segment == "." || segment == ".." {
				return errors.NotValidf("identifier %q with dot segment", id)
			}
		}
	}
	return nil
}

// uniqueByID drops duplicate ids and never returns a nil slice.
func uniqueByID[T any](items []T, id func(T) string) []T {
	if len(items) == 0 {
		return []T{}
	}
	return lo.UniqBy(items, id)
}
