// Package transformer normalizes plan commands into a uniform, unattended shape.
package transformer

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/stacky/internal/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nonInteractiveRule appends Flag to any command containing Match that lacks it.
type nonInteractiveRule struct {
	Match string
	Flag  string
}

var rules = []nonInteractiveRule{
	{Match: "npx create-react-app", Flag: "--yes"},
}

// TransformCommands returns a normalized copy of commands. It never fails.
func TransformCommands(commands []domain.Command) []domain.Command {
	out := make([]domain.Command, 0, len(commands))
	for _, c := range commands {
		out = append(out, TransformCommand(c))
	}
	return out
}

// TransformCommand normalizes a single command and applies the non-interactive rewrites.
func TransformCommand(c domain.Command) domain.Command {
	c = normalize(c)
	for _, r := range rules {
		if strings.Contains(c.Command, r.Match) && !strings.Contains(c.Command, r.Flag) {
			c.Command += " " + r.Flag
		}
	}
	return c
}

func normalize(c domain.Command) domain.Command {
	c.Command = strings.TrimSpace(c.Command)
	if c.Name == "" {
		c.Name = DeriveName(c.Command)
	}
	return c
}

// DeriveName builds a label from the leading tokens of a command.
func DeriveName(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	second := func(fallback string) string {
		if len(fields) > 1 {
			return fields[1]
		}
		return fallback
	}

	switch fields[0] {
	case "npm":
		return "NPM " + second("Command")
	case "npx":
		return "Execute " + second("Package")
	default:
		return capitalize(fields[0])
	}
}

// capitalize upper-cases the first rune of s and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
