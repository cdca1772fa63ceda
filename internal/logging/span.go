package logging

import (
	"context"
	"time"
)

// Span emits a start line "<kind>:<operation>/S" and returns a context whose
// logger carries kv, plus a function emitting the matching end line.
// End lines are "/EOK" or "/EFAIL" with err and elapsed attributes.
// All lines use INFO level.
//
// Usage:
//
//	ctx, end := logging.Span(ctx, "UC", "configure.apply", "endpointId", id)
//	defer func() { end(err) }()
func Span(ctx context.Context, kind, operation string, kv ...any) (context.Context, func(err error)) {
	startAt := time.Now()
	logger := FromContext(ctx)
	if len(kv) > 0 {
		logger = logger.With(kv...)
	}
	ctx = WithLogger(ctx, logger)
	prefix := kind + ":" + operation
	logger.Info(ctx, prefix+"/S")

	return ctx, func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err != nil {
			logger.Info(ctx, prefix+"/EFAIL", "err", Truncate(err.Error(), 64), "elapsed", elapsed)
			return
		}
		logger.Info(ctx, prefix+"/EOK", "err", "", "elapsed", elapsed)
	}
}

// Truncate shortens s to at most n bytes, marking the cut with "...".
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
