package model

import "context"

// Notifier reports user-facing outcomes.
type Notifier interface {
	Success(ctx context.Context, title, msg string)
	Error(ctx context.Context, title string, err error, msg string)
}

// Confirmer asks the user to confirm a potentially destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, msg string) (bool, error)
}
