package ui

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/kompox/kubeconfigure/domain/model"
)

var (
	// ErrAborted is returned when the prompt is interrupted.
	ErrAborted = errors.New("confirmation aborted")
	// ErrNotInteractive is returned when a confirmation is needed without a terminal.
	ErrNotInteractive = errors.New("confirmation required but input is not a terminal; use --yes")
)

// AskFunc asks a yes/no question.
type AskFunc func(msg string, def bool) (bool, error)

// Confirmer asks the user through a terminal prompt.
type Confirmer struct {
	// AssumeYes answers every prompt with yes.
	AssumeYes bool
	// Interactive reports whether a prompt can be shown.
	Interactive bool
	// Ask overrides the prompt implementation. Defaults to a survey confirm prompt.
	Ask AskFunc
}

func (c *Confirmer) Confirm(ctx context.Context, msg string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.AssumeYes {
		return true, nil
	}
	if !c.Interactive {
		return false, ErrNotInteractive
	}
	ask := c.Ask
	if ask == nil {
		ask = surveyAsk
	}
	return ask(msg, false)
}

func surveyAsk(msg string, def bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: msg, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

var _ model.Confirmer = (*Confirmer)(nil)
