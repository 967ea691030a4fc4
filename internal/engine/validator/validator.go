// Package validator checks that the executables of plan commands are available.
package validator

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// fixedBuiltins are treated as present even when the shell cannot be queried.
var fixedBuiltins = []string{"cd", "pwd", "mkdir", "rm", "cp", "mv", "ls", "echo"}

// proxyRunners maps package-runner aliases to the package manager that provides them.
var proxyRunners = map[string]string{
	"npx":  "npm",
	"pnpx": "pnpm",
	"bunx": "bun",
}

// LookPathFunc reports whether an executable is resolvable on the search path.
type LookPathFunc func(name string) bool

// Validator implements ports.CommandValidator.
type Validator struct {
	builtins ports.BuiltinSource
	lookPath LookPathFunc
	logger   ports.Logger

	once  sync.Once
	known map[string]struct{}
}

// New creates a Validator. The builtin source is queried at most once.
func New(builtins ports.BuiltinSource, lookPath LookPathFunc, logger ports.Logger) *Validator {
	return &Validator{
		builtins: builtins,
		lookPath: lookPath,
		logger:   logger,
	}
}

// ValidateCommands checks every command concurrently and returns results in command order.
func (v *Validator) ValidateCommands(ctx context.Context, commands []domain.Command) []domain.ValidationResult {
	v.loadBuiltins(ctx)

	results := make([]domain.ValidationResult, len(commands))
	var g errgroup.Group
	for i, c := range commands {
		g.Go(func() error {
			results[i] = domain.ValidationResult{
				Command: c,
				Exists:  v.exists(c.Command),
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (v *Validator) exists(command string) bool {
	base := BaseCommand(command)
	if base == "" {
		return false
	}

	if _, ok := v.known[base]; ok {
		return true
	}

	if manager, ok := proxyRunners[base]; ok {
		return v.found(base, manager)
	}

	return v.found(base, base)
}

func (v *Validator) found(base, executable string) bool {
	if v.lookPath(executable) {
		return true
	}
	v.logger.Debug("didn't find base command: `" + base + "`")
	return false
}

func (v *Validator) loadBuiltins(ctx context.Context) {
	v.once.Do(func() {
		v.known = make(map[string]struct{}, len(fixedBuiltins))
		for _, b := range fixedBuiltins {
			v.known[b] = struct{}{}
		}

		if v.builtins == nil {
			return
		}
		names, err := v.builtins.Builtins(ctx)
		if err != nil {
			v.logger.Debug("shell builtins unavailable, using the fixed set: " + err.Error())
			return
		}
		for _, n := range names {
			v.known[n] = struct{}{}
		}
	})
}

// BaseCommand returns the executable a shell statement starts with,
// skipping leading environment assignments.
func BaseCommand(command string) string {
	for _, field := range strings.Fields(command) {
		if isAssignment(field) {
			continue
		}
		return field
	}
	return ""
}

func isAssignment(field string) bool {
	name, _, ok := strings.Cut(field, "=")
	if !ok || name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
