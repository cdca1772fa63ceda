package endpoint

import (
	"context"
)

// DeleteInput identifies the endpoint to delete.
type DeleteInput struct {
	// EndpointID is the endpoint identifier.
	EndpointID string `json:"endpoint_id"`
}

// DeleteOutput is empty because delete has no return entity.
type DeleteOutput struct{}

// Delete removes an endpoint; empty ID is a no-op.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.EndpointID == "" { // idempotent no-op
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.Endpoint.Delete(ctx, in.EndpointID); err != nil {
		return nil, err
	}
	u.refreshCache(ctx)
	return &DeleteOutput{}, nil
}
