package domain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Plan is the structured output of a backend: a description plus an ordered
// command sequence. Order is execution order.
type Plan struct {
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	Commands    []Command      `json:"commands"`
}

// Command is a single shell statement with a human readable label.
//
// Content, File and Path are only set for raw "write this file" entries
// returned by a backend, before they are rewritten into a shell statement.
type Command struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Content string `json:"content,omitempty"`
	File    string `json:"file,omitempty"`
	Path    string `json:"path,omitempty"`
}

// UnmarshalJSON accepts either a command object or a bare command string.
func (c *Command) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = Command{Command: s}
		return nil
	}

	type plain Command
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*c = Command(p)
	return nil
}

// IsContent reports whether the entry carries file content instead of a command.
func (c Command) IsContent() bool {
	return c.Command == "" && c.Content != "" && c.Target() != ""
}

// Target returns the file a content entry should be written to.
func (c Command) Target() string {
	if c.File != "" {
		return c.File
	}
	return c.Path
}

// Fingerprint returns a short digest of the command sequence.
func (p *Plan) Fingerprint() string {
	h := xxhash.New()
	for _, c := range p.Commands {
		_, _ = h.WriteString(c.Command)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// ValidationResult reports whether the executable of a command is available.
type ValidationResult struct {
	Command Command
	Exists  bool
}
