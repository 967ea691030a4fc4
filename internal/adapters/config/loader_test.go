package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stacky/internal/adapters/config"
	"go.trai.ch/stacky/internal/core/domain"
)

var envNames = []string{
	"USE_OLLAMA", "DO_SANITY_CHECK", "DEBUG_LEVEL", "STACKY_LOG_JSON",
	"OLLAMA_HOST", "OLLAMA_MODEL", "OLLAMA_MIN_VERSION",
	"DEEPSEEK_API_KEY", "DEEPSEEK_BASE_URL", "DEEPSEEK_MODEL",
	"STACKY_DOCS_DIR", "STACKY_PROJECTS_DIR",
}

// isolate clears stacky's environment and points the user config dir at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	for _, name := range envNames {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return t.TempDir()
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)
	t.Setenv("USE_OLLAMA", "true")

	settings, err := config.NewLoader(dir).Load()
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.UseOllama = true
	assert.Equal(t, want.Ollama, settings.Ollama)
	assert.Equal(t, want.Hosted, settings.Hosted)
	assert.Equal(t, want.Retry, settings.Retry)
	assert.Equal(t, want.Executor, settings.Executor)
	assert.Equal(t, domain.LogLevelInfo, settings.LogLevel)
	assert.True(t, settings.UseOllama)
	assert.False(t, settings.SanityCheck)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	dir := isolate(t)

	_, err := config.NewLoader(dir).Load()
	require.ErrorIs(t, err, domain.ErrMissingAPIKey)
	assert.Equal(t, "DEEPSEEK_API_KEY is required when USE_OLLAMA is false", err.Error())
}

func TestLoad_Environment(t *testing.T) {
	dir := isolate(t)
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("DEEPSEEK_MODEL", "deepseek-coder")
	t.Setenv("OLLAMA_MODEL", "llama3")
	t.Setenv("DEBUG_LEVEL", "VERBOSE")
	t.Setenv("DO_SANITY_CHECK", "true")
	t.Setenv("STACKY_PROJECTS_DIR", "/tmp/projects")

	settings, err := config.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.False(t, settings.UseOllama)
	assert.Equal(t, "sk-test", settings.Hosted.APIKey)
	assert.Equal(t, "deepseek-coder", settings.Hosted.Model)
	assert.Equal(t, "llama3", settings.Ollama.Model)
	assert.Equal(t, domain.LogLevelVerbose, settings.LogLevel)
	assert.True(t, settings.SanityCheck)
	assert.Equal(t, "/tmp/projects", settings.Executor.BaseDir)
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, "stacky.yaml"), `
use_ollama: true
ollama:
  host: http://yaml-host:11434
  model: yaml-model
retry:
  attempts: 5
  base_delay: 250ms
executor:
  command_delay: 0s
docs:
  urls:
    react: https://react.dev/learn
`)
	write(t, filepath.Join(dir, ".env"), "OLLAMA_MODEL=env-file-model\nOLLAMA_HOST=http://dotenv-host:11434\n")
	t.Setenv("OLLAMA_HOST", "http://process-host:11434")

	settings, err := config.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.True(t, settings.UseOllama)
	assert.Equal(t, "http://process-host:11434", settings.Ollama.Host)
	assert.Equal(t, "env-file-model", settings.Ollama.Model)
	assert.Equal(t, 5, settings.Retry.Attempts)
	assert.Equal(t, 250*time.Millisecond, settings.Retry.BaseDelay)
	assert.Equal(t, time.Duration(0), settings.Executor.CommandDelay)
	assert.Equal(t, "https://react.dev/learn", settings.Docs.URLs["react"])
}

func TestLoad_UserConfigDir(t *testing.T) {
	dir := isolate(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	write(t, filepath.Join(xdg, "stacky", "stacky.yml"), "use_ollama: true\nlog_level: none\n")

	settings, err := config.NewLoader(dir).Load()
	require.NoError(t, err)

	assert.True(t, settings.UseOllama)
	assert.Equal(t, domain.LogLevelNone, settings.LogLevel)
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown log level", yaml: "use_ollama: true\nlog_level: loud\n"},
		{name: "too many attempts", yaml: "use_ollama: true\nretry:\n  attempts: 50\n"},
		{name: "bad host", yaml: "use_ollama: true\nollama:\n  host: not a url\n"},
		{name: "bad docs url", yaml: "use_ollama: true\ndocs:\n  urls:\n    react: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			write(t, filepath.Join(dir, "stacky.yaml"), tt.yaml)

			_, err := config.NewLoader(dir).Load()
			require.ErrorIs(t, err, domain.ErrConfigInvalid)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, "stacky.yaml"), "use_ollama: [\n")

	_, err := config.NewLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoad_IgnoresBinaryNamedLikeConfig(t *testing.T) {
	dir := isolate(t)
	t.Setenv("USE_OLLAMA", "true")
	write(t, filepath.Join(dir, "stacky"), "\x7fELF")

	_, err := config.NewLoader(dir).Load()
	require.NoError(t, err)
}
