package main

import (
	"context"

	"github.com/kompox/kubeconfigure/internal/logging"
)

// withCmdRunLogger implements the Span pattern for CLI command logging.
// It emits CMD:<operation>/S with resourceId attached to the context logger
// and returns a cleanup emitting /EOK or /EFAIL.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "configure.apply", endpointID)
//	defer func() { cleanup(err) }()
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	return logging.Span(ctx, "CMD", operation, "resourceId", resourceID)
}
