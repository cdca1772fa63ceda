package configure

import "context"

const notifyFailureTitle = "Failure"

func (u *UseCase) notifyError(ctx context.Context, err error, msg string) {
	if u.Notifier != nil {
		u.Notifier.Error(ctx, notifyFailureTitle, err, msg)
	}
}

func (u *UseCase) notifySuccess(ctx context.Context, msg string) {
	if u.Notifier != nil {
		u.Notifier.Success(ctx, "Success", msg)
	}
}
