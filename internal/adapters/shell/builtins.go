package shell

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// BuiltinQuery reports shell builtins by asking bash for them.
type BuiltinQuery struct {
	shell string
}

// NewBuiltinQuery creates a BuiltinQuery using bash.
func NewBuiltinQuery() *BuiltinQuery {
	return &BuiltinQuery{shell: "bash"}
}

// Builtins returns the names listed by `compgen -b`.
func (q *BuiltinQuery) Builtins(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, q.shell, "-c", "compgen -b").Output() //nolint:gosec // fixed arguments
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to query shell builtins"), "shell", q.shell)
	}
	return parseBuiltins(string(out)), nil
}

func parseBuiltins(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}
