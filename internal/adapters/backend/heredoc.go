package backend

import (
	"path"
	"regexp"
	"strings"

	"go.trai.ch/stacky/internal/core/domain"
)

// knownConfigFiles are the files an `echo '...' > file` command may be rewritten for.
var knownConfigFiles = map[string]struct{}{
	".prettierrc":        {},
	".prettierrc.json":   {},
	".eslintrc":          {},
	".eslintrc.json":     {},
	".eslintrc.js":       {},
	"tsconfig.json":      {},
	"jsconfig.json":      {},
	"tailwind.config.js": {},
	"tailwind.config.ts": {},
	"postcss.config.js":  {},
	"vite.config.js":     {},
	"vite.config.ts":     {},
	"next.config.js":     {},
	".babelrc":           {},
	"babel.config.js":    {},
	".gitignore":         {},
	".env":               {},
	".editorconfig":      {},
	"jest.config.js":     {},
	"vitest.config.ts":   {},
}

var echoRedirect = regexp.MustCompile(`^echo\s+(?:'([^']*)'|"((?:[^"\\]|\\.)*)")\s*>\s*(\S+)$`)

var doubleQuoteEscapes = strings.NewReplacer(`\"`, `"`, `\\`, `\`, `\$`, `$`, "\\`", "`")

// RewriteContent turns file-writing entries into heredoc statements. Content
// entries always become a heredoc; `echo '<text>' > <file>` does when file is a
// known config file. Everything else passes through unchanged.
func RewriteContent(commands []domain.Command) []domain.Command {
	out := make([]domain.Command, len(commands))
	for i, c := range commands {
		out[i] = rewriteCommand(c)
	}
	return out
}

// RewriteContentEntries turns content entries into heredoc statements and
// leaves every command as it is.
func RewriteContentEntries(commands []domain.Command) []domain.Command {
	out := make([]domain.Command, len(commands))
	for i, c := range commands {
		if c.IsContent() {
			c = domain.Command{Name: c.Name, Command: Heredoc(c.Target(), c.Content)}
		}
		out[i] = c
	}
	return out
}

func rewriteCommand(c domain.Command) domain.Command {
	if c.IsContent() {
		return domain.Command{Name: c.Name, Command: Heredoc(c.Target(), c.Content)}
	}

	m := echoRedirect.FindStringSubmatch(strings.TrimSpace(c.Command))
	if m == nil {
		return c
	}

	file := m[3]
	if _, ok := knownConfigFiles[path.Base(file)]; !ok {
		return c
	}

	text := m[1]
	if text == "" && m[2] != "" {
		text = doubleQuoteEscapes.Replace(m[2])
	}
	c.Command = Heredoc(file, text)
	return c
}

// Heredoc returns a shell statement writing content to file verbatim. Any EOF
// in content is replaced with EOF_REPLACED so it cannot end the document early.
func Heredoc(file, content string) string {
	safe := strings.ReplaceAll(content, "EOF", "EOF_REPLACED")
	stmt := "cat << 'EOF' > " + shellQuote(file) + "\n" + safe + "\nEOF"

	if dir := path.Dir(file); dir != "." && dir != "/" {
		stmt = "mkdir -p " + shellQuote(dir) + " && " + stmt
	}
	return stmt
}

var plainWord = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./~-]+$`)

// shellQuote single-quotes s unless it is a plain word.
func shellQuote(s string) string {
	if plainWord.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
