// Package ui implements the user facing notification and confirmation ports
// for the command line.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/logging"
)

// Notifier prints notifications as single lines and records them in the log.
type Notifier struct {
	// Out receives the notifications. Defaults to os.Stderr.
	Out io.Writer
}

func (n *Notifier) out() io.Writer {
	if n.Out == nil {
		return os.Stderr
	}
	return n.Out
}

func (n *Notifier) Success(ctx context.Context, title, msg string) {
	logging.FromContext(ctx).Info(ctx, msg, "notification", title)
	fmt.Fprintf(n.out(), "%s: %s\n", title, msg)
}

func (n *Notifier) Error(ctx context.Context, title string, err error, msg string) {
	logging.FromContext(ctx).Warn(ctx, msg, "notification", title, "err", err)
	if err != nil {
		fmt.Fprintf(n.out(), "%s: %s: %v\n", title, msg, err)
		return
	}
	fmt.Fprintf(n.out(), "%s: %s\n", title, msg)
}

var _ model.Notifier = (*Notifier)(nil)
