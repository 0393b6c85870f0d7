package quantum

import (
	"context"
	"fmt"

	"quantum-portctl/internal/port"
	"quantum-portctl/internal/types"
)

// Future is the eventual result of an asynchronous operation.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Done is closed once the operation has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get waits for the operation to complete and returns its result.
// Giving up on ctx does not cancel the operation; cancel the context passed to the call for that.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("operation panicked: %v", r)
			}
		}()
		f.value, f.err = fn(ctx)
	}()
	return f
}

// AsyncClient runs each PortClient operation on its own goroutine and returns a Future.
// Concurrent operations are independent; their completion order is not defined.
type AsyncClient struct {
	client port.PortClient
}

// NewAsyncClient wraps a synchronous client.
func NewAsyncClient(client port.PortClient) *AsyncClient {
	return &AsyncClient{client: client}
}

func (a *AsyncClient) ListReferences(ctx context.Context, networkID string) *Future[[]types.Reference] {
	return start(ctx, func(ctx context.Context) ([]types.Reference, error) {
		return a.client.ListReferences(ctx, networkID)
	})
}

func (a *AsyncClient) List(ctx context.Context, networkID string) *Future[[]types.Port] {
	return start(ctx, func(ctx context.Context) ([]types.Port, error) {
		return a.client.List(ctx, networkID)
	})
}

func (a *AsyncClient) Show(ctx context.Context, networkID, portID string) *Future[*types.Port] {
	return start(ctx, func(ctx context.Context) (*types.Port, error) {
		return a.client.Show(ctx, networkID, portID)
	})
}

func (a *AsyncClient) ShowDetails(ctx context.Context, networkID, portID string) *Future[*types.PortDetails] {
	return start(ctx, func(ctx context.Context) (*types.PortDetails, error) {
		return a.client.ShowDetails(ctx, networkID, portID)
	})
}

func (a *AsyncClient) Create(ctx context.Context, networkID string) *Future[*types.Reference] {
	return start(ctx, func(ctx context.Context) (*types.Reference, error) {
		return a.client.Create(ctx, networkID)
	})
}

func (a *AsyncClient) CreateWithState(ctx context.Context, networkID string, state types.PortState) *Future[*types.Port] {
	return start(ctx, func(ctx context.Context) (*types.Port, error) {
		return a.client.CreateWithState(ctx, networkID, state)
	})
}

func (a *AsyncClient) Update(ctx context.Context, networkID, portID string, state types.PortState) *Future[bool] {
	return start(ctx, func(ctx context.Context) (bool, error) {
		return a.client.Update(ctx, networkID, portID, state)
	})
}

func (a *AsyncClient) Delete(ctx context.Context, networkID, portID string) *Future[bool] {
	return start(ctx, func(ctx context.Context) (bool, error) {
		return a.client.Delete(ctx, networkID, portID)
	})
}

func (a *AsyncClient) ShowAttachment(ctx context.Context, networkID, portID string) *Future[*types.Attachment] {
	return start(ctx, func(ctx context.Context) (*types.Attachment, error) {
		return a.client.ShowAttachment(ctx, networkID, portID)
	})
}

func (a *AsyncClient) PlugAttachment(ctx context.Context, networkID, portID, attachmentID string) *Future[bool] {
	return start(ctx, func(ctx context.Context) (bool, error) {
		return a.client.PlugAttachment(ctx, networkID, portID, attachmentID)
	})
}

func (a *AsyncClient) UnplugAttachment(ctx context.Context, networkID, portID string) *Future[bool] {
	return start(ctx, func(ctx context.Context) (bool, error) {
		return a.client.UnplugAttachment(ctx, networkID, portID)
	})
}
