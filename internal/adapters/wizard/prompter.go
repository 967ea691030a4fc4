package wizard

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Prompter implements ports.Prompter with huh forms on the terminal.
type Prompter struct {
	interactive func() bool
	accessible  bool
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithInteractive replaces the terminal check.
func WithInteractive(check func() bool) Option {
	return func(p *Prompter) {
		p.interactive = check
	}
}

// WithAccessible renders forms in accessible mode, without the TUI.
func WithAccessible(accessible bool) Option {
	return func(p *Prompter) {
		p.accessible = accessible
	}
}

// NewPrompter creates a Prompter for the process terminal.
func NewPrompter(opts ...Option) *Prompter {
	p := &Prompter{
		interactive: stdinIsTerminal,
		accessible:  os.Getenv("ACCESSIBLE") != "",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

// Preferences runs the preference form.
func (p *Prompter) Preferences(ctx context.Context) (domain.Preferences, error) {
	if !p.interactive() {
		return nil, domain.ErrNotInteractive
	}

	answers := DefaultAnswers()
	if err := p.run(ctx, answers.Form()); err != nil {
		return nil, err
	}
	return answers.Preferences(), nil
}

// Confirm asks question with yes preselected.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if !p.interactive() {
		return false, domain.ErrNotInteractive
	}

	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := p.run(ctx, form); err != nil {
		return false, err
	}
	return ok, nil
}

func (p *Prompter) run(ctx context.Context, form *huh.Form) error {
	err := form.
		WithTheme(huh.ThemeCharm()).
		WithAccessible(p.accessible).
		WithOutput(os.Stderr).
		RunWithContext(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return zerr.Wrap(context.Canceled, "prompt aborted")
	}
	return zerr.Wrap(err, "prompt failed")
}
