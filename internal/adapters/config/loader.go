// Package config loads stacky's settings from defaults, files and the environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

// envBindings maps environment variables onto settings keys.
var envBindings = map[string]string{
	"USE_OLLAMA":          "use_ollama",
	"DO_SANITY_CHECK":     "sanity_check",
	"DEBUG_LEVEL":         "log_level",
	"STACKY_LOG_JSON":     "log_json",
	"OLLAMA_HOST":         "ollama.host",
	"OLLAMA_MODEL":        "ollama.model",
	"OLLAMA_MIN_VERSION":  "ollama.min_version",
	"DEEPSEEK_API_KEY":    "hosted.api_key",
	"DEEPSEEK_BASE_URL":   "hosted.base_url",
	"DEEPSEEK_MODEL":      "hosted.model",
	"STACKY_DOCS_DIR":     "docs.dir",
	"STACKY_PROJECTS_DIR": "executor.base_dir",
}

// Loader reads settings. Later sources win: defaults, stacky.yaml, .env, then
// the process environment.
type Loader struct {
	dir       string
	configDir string
	validate  *validator.Validate
}

// NewLoader creates a Loader that looks for stacky.yaml and .env in dir.
func NewLoader(dir string) *Loader {
	l := &Loader{
		dir:      dir,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	if userDir, err := os.UserConfigDir(); err == nil {
		l.configDir = filepath.Join(userDir, "stacky")
	}
	l.validate.RegisterStructValidation(backendValidation, domain.Settings{})
	return l
}

// Load resolves and validates the settings.
func (l *Loader) Load() (domain.Settings, error) {
	v := viper.New()
	setDefaults(v, domain.DefaultSettings())

	if path := l.configFile(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
	}

	if err := l.mergeDotEnv(v); err != nil {
		return domain.Settings{}, err
	}

	for env, key := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "source", v.ConfigFileUsed())
	}
	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))

	if err := l.Validate(settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// configFile returns the first stacky.yaml or stacky.yml found in the working
// directory or the user config directory.
func (l *Loader) configFile() string {
	dirs := []string{l.dir}
	if l.configDir != "" {
		dirs = append(dirs, l.configDir)
	}
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, domain.ConfigFileName+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// Validate checks settings against their field rules.
func (l *Loader) Validate(settings domain.Settings) error {
	err := l.validate.Struct(settings)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == apiKeyTag {
			return domain.ErrMissingAPIKey
		}
		fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
	}
	sort.Strings(fields)

	return zerr.With(errors.Join(domain.ErrConfigInvalid, err), "fields", strings.Join(fields, ", "))
}

const apiKeyTag = "required_without_ollama"

func backendValidation(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(domain.Settings)
	if !ok {
		return
	}
	if !s.UseOllama && strings.TrimSpace(s.Hosted.APIKey) == "" {
		sl.ReportError(s.Hosted.APIKey, "Hosted.APIKey", "APIKey", apiKeyTag, "")
	}
}

// mergeDotEnv layers recognized variables from a .env file over the config file.
func (l *Loader) mergeDotEnv(v *viper.Viper) error {
	path := filepath.Join(l.dir, domain.DotEnvFile)
	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // a missing .env is not an error
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	overrides := map[string]any{}
	for name, key := range envBindings {
		if !env.IsSet(name) {
			continue
		}
		setNested(overrides, key, env.GetString(name))
	}
	if len(overrides) == 0 {
		return nil
	}
	return v.MergeConfigMap(overrides)
}

func setNested(m map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		child, ok := m[p].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[p] = child
		}
		m = child
	}
	m[parts[len(parts)-1]] = value
}

func setDefaults(v *viper.Viper, d domain.Settings) {
	v.SetDefault("use_ollama", d.UseOllama)
	v.SetDefault("sanity_check", d.SanityCheck)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_json", d.LogJSON)
	v.SetDefault("ollama.host", d.Ollama.Host)
	v.SetDefault("ollama.model", d.Ollama.Model)
	v.SetDefault("ollama.min_version", d.Ollama.MinVersion)
	v.SetDefault("hosted.api_key", d.Hosted.APIKey)
	v.SetDefault("hosted.base_url", d.Hosted.BaseURL)
	v.SetDefault("hosted.model", d.Hosted.Model)
	v.SetDefault("retry.attempts", d.Retry.Attempts)
	v.SetDefault("retry.base_delay", d.Retry.BaseDelay)
	v.SetDefault("docs.dir", d.Docs.Dir)
	v.SetDefault("docs.framework", d.Docs.Framework)
	v.SetDefault("docs.urls", map[string]string{})
	v.SetDefault("executor.base_dir", d.Executor.BaseDir)
	v.SetDefault("executor.command_delay", d.Executor.CommandDelay)
	v.SetDefault("executor.pty", d.Executor.PTY)
}
