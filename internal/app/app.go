// Package app implements the application layer for stacky.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
	"go.trai.ch/stacky/internal/engine/transformer"
	"go.trai.ch/zerr"
)

const (
	// ConfirmQuestion gates execution of the proposed commands.
	ConfirmQuestion = "Would you like me to run these commands for you?"

	notExecutedMessage = "Commands were not executed. You can run them manually."
)

// App represents the main application logic.
type App struct {
	provider    ports.PlanProvider
	sanity      ports.SanityChecker
	validator   ports.CommandValidator
	executor    ports.CommandExecutor
	prompter    ports.Prompter
	cache       ports.PlanCache
	docs        ports.DocsLookup
	logger      ports.Logger
	sanityFirst bool
	out         io.Writer
}

// New creates a new App instance.
func New(
	provider ports.PlanProvider,
	sanity ports.SanityChecker,
	validator ports.CommandValidator,
	executor ports.CommandExecutor,
	prompter ports.Prompter,
	cache ports.PlanCache,
	docs ports.DocsLookup,
	log ports.Logger,
) *App {
	return &App{
		provider:  provider,
		sanity:    sanity,
		validator: validator,
		executor:  executor,
		prompter:  prompter,
		cache:     cache,
		docs:      docs,
		logger:    log,
		out:       os.Stdout,
	}
}

// WithOutput sets where proposed commands and listings are printed.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithSanityCheck makes Create run the sanity check first.
func (a *App) WithSanityCheck(enabled bool) *App {
	a.sanityFirst = enabled
	return a
}

// CreateOptions configuration for the Create method.
type CreateOptions struct {
	// Preferences skips the interactive form when set.
	Preferences domain.Preferences
	// Yes skips the confirmation prompt.
	Yes bool
	// DryRun stops after printing the proposed commands.
	DryRun bool
}

// Create runs the scaffolding pipeline for projectName: preferences, plan,
// transform, validate, confirm and execute.
//
//nolint:cyclop // orchestration function
func (a *App) Create(ctx context.Context, projectName string, opts CreateOptions) error {
	if a.sanityFirst {
		if _, err := a.Sanity(ctx); err != nil {
			return err
		}
	}

	prefs := opts.Preferences
	if prefs == nil {
		var err error
		if prefs, err = a.prompter.Preferences(ctx); err != nil {
			return zerr.Wrap(err, "failed to collect preferences")
		}
	}

	runID := uuid.NewString()
	a.logger.Debug(fmt.Sprintf("run %s: scaffolding %q", runID, projectName))
	a.logger.Info("thinking...")

	plan, err := a.provider.GetScaffoldingPlan(ctx, prefs)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "planning failed"), "run", runID)
	}
	plan.Commands = transformer.TransformCommands(plan.Commands)
	a.logger.Info("got it!")
	a.logger.Debug(fmt.Sprintf("run %s: plan %s with %d commands", runID, plan.Fingerprint(), len(plan.Commands)))

	if missing := a.missingCommands(ctx, plan.Commands); len(missing) > 0 {
		a.logger.Info("The following required commands are not available in your environment:")
		for _, c := range missing {
			label := c.Command
			if label == "" {
				label = c.Name
			}
			a.logger.Info("- " + label)
		}
		a.logger.Info("Please install the missing dependencies and try again.")
		return domain.ErrMissingCommands
	}

	a.logger.Info("Proposed commands:")
	for _, c := range plan.Commands {
		_, _ = fmt.Fprintln(a.out, c.Command)
	}

	if opts.DryRun {
		a.logger.Info(notExecutedMessage)
		return nil
	}

	confirmed := opts.Yes
	if !confirmed {
		if confirmed, err = a.prompter.Confirm(ctx, ConfirmQuestion); err != nil {
			return zerr.Wrap(err, "failed to confirm")
		}
	}
	if !confirmed {
		a.logger.Info(notExecutedMessage)
		return nil
	}

	if err := a.executor.ExecuteCommands(ctx, projectName, plan.Commands, prefs.Docker()); err != nil {
		return err
	}
	a.logger.Info("✨ Project successfully scaffolded!")
	return nil
}

func (a *App) missingCommands(ctx context.Context, commands []domain.Command) []domain.Command {
	var missing []domain.Command
	for _, r := range a.validator.ValidateCommands(ctx, commands) {
		if !r.Exists {
			missing = append(missing, r.Command)
		}
	}
	return missing
}

// Sanity checks the configured backend and reports what it found.
func (a *App) Sanity(ctx context.Context) (*domain.SanityReport, error) {
	report, err := a.sanity.SanityCheck(ctx)
	if err != nil {
		a.logger.Warn("❌ sanity check")
		return nil, err
	}

	if len(report.Models) > 0 {
		a.logger.Info("models:")
		for _, m := range report.Models {
			a.logger.Info(m)
		}
	}
	if report.Version != "" {
		a.logger.Debug("server version " + report.Version)
	}
	a.logger.Info(report.Reply)
	a.logger.Info("✅ sanity check")
	return report, nil
}

// Clean removes the response cache.
func (a *App) Clean(_ context.Context) error {
	a.logger.Info("removing response cache...")
	if err := a.cache.Clear(); err != nil {
		return err
	}
	a.logger.Info("removed response cache")
	return nil
}

// Frameworks prints the frameworks that have reference docs, one per line.
func (a *App) Frameworks(_ context.Context) []string {
	names := a.docs.Frameworks()
	if len(names) == 0 {
		a.logger.Info("no framework docs found")
		return names
	}
	for _, name := range names {
		_, _ = fmt.Fprintln(a.out, name)
	}
	return names
}
