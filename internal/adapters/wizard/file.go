package wizard

import (
	"errors"
	"os"

	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a preference record from a YAML or JSON file.
func LoadFile(path string) (domain.Preferences, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrPreferencesReadFailed, err), "path", path)
	}

	prefs := domain.Preferences{}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrPreferencesParseFailed, err), "path", path)
	}
	if prefs == nil {
		prefs = domain.Preferences{}
	}
	return prefs, nil
}
