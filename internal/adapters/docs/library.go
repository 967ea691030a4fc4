// Package docs serves framework reference text from a local docs tree or
// from configured URLs.
package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 2 << 20
)

var excessiveLines = regexp.MustCompile(`\n{4,}`)

// Library implements ports.DocsLookup.
type Library struct {
	dir       string
	urls      map[string]string
	http      *http.Client
	converter *md.Converter
}

// NewLibrary creates a Library reading dir/<framework>/README.md and falling
// back to urls. A nil client uses a client with a 15s timeout.
func NewLibrary(dir string, urls map[string]string, client *http.Client) *Library {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	converter.Remove("script", "style", "nav", "footer")

	return &Library{
		dir:       dir,
		urls:      urls,
		http:      client,
		converter: converter,
	}
}

// Lookup returns the reference text for framework.
func (l *Library) Lookup(ctx context.Context, framework string) (string, error) {
	framework = strings.ToLower(strings.TrimSpace(framework))
	if framework == "" || strings.ContainsAny(framework, `/\`) || framework == ".." {
		return "", notFound(framework)
	}

	text, err := l.local(framework)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	url, ok := l.urls[framework]
	if !ok {
		return "", notFound(framework)
	}
	return l.remote(ctx, url)
}

func notFound(framework string) error {
	return zerr.With(zerr.Wrap(domain.ErrDocsNotFound, "lookup docs"), "framework", framework)
}

func (l *Library) local(framework string) (string, error) {
	if l.dir == "" {
		return "", fs.ErrNotExist
	}

	file := filepath.Join(l.dir, framework, domain.DocsReadme)
	data, err := os.ReadFile(file) //nolint:gosec // file is built from the configured docs dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		return "", zerr.With(zerr.Wrap(err, "read framework docs"), "path", file)
	}
	return string(data), nil
}

func (l *Library) remote(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrDocsFetchFailed, err), "url", url)
	}
	req.Header.Set("Accept", "text/html, text/markdown;q=0.9, text/plain;q=0.8")

	resp, err := l.http.Do(req)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrDocsFetchFailed, err), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New(fmt.Sprintf("unexpected status %d", resp.StatusCode)), "status", resp.StatusCode)
		return "", zerr.With(errors.Join(domain.ErrDocsFetchFailed, statusErr), "url", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrDocsFetchFailed, err), "url", url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "html") {
		return strings.TrimSpace(string(body)), nil
	}

	markdown, err := l.converter.ConvertString(string(body))
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrDocsFetchFailed, err), "url", url)
	}
	return strings.TrimSpace(excessiveLines.ReplaceAllString(markdown, "\n\n\n")), nil
}

// Frameworks lists the frameworks with reference text: local directories that
// hold a README.md and every configured URL, sorted.
func (l *Library) Frameworks() []string {
	seen := map[string]struct{}{}

	if l.dir != "" {
		matches, err := doublestar.Glob(os.DirFS(l.dir), "*/"+domain.DocsReadme)
		if err == nil {
			for _, m := range matches {
				seen[path.Dir(m)] = struct{}{}
			}
		}
	}
	for name := range l.urls {
		seen[strings.ToLower(name)] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
