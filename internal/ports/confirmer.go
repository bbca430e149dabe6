package ports

import "context"

type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Confirmed answers yes without asking. Used once the user already agreed
// through another surface, such as a --yes flag or a TUI dialog.
var Confirmed Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})
