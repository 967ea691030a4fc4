package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDockerBaseImage is the base image offered when docker is requested.
const DefaultDockerBaseImage = "node:18-alpine"

// DefaultDockerPort is the port offered when docker is requested.
const DefaultDockerPort = "3000"

// Preferences is the record of user-selected scaffolding options.
// Any subset of keys may be absent.
type Preferences map[string]any

// DockerConfig holds the container settings used to render Docker artifacts.
type DockerConfig struct {
	BaseImage string `json:"baseImage" yaml:"baseImage"`
	Port      string `json:"port,omitempty" yaml:"port,omitempty"`
}

// String returns the value of key if it is a non-empty string.
func (p Preferences) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Bool returns the value of key if it is a boolean.
func (p Preferences) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Docker returns the container settings if docker was requested, otherwise nil.
func (p Preferences) Docker() *DockerConfig {
	if !p.Bool("docker") {
		return nil
	}

	cfg := &DockerConfig{BaseImage: DefaultDockerBaseImage}
	raw, ok := p["dockerConfig"].(map[string]any)
	if !ok {
		return cfg
	}
	if base, ok := raw["baseImage"].(string); ok && strings.TrimSpace(base) != "" {
		cfg.BaseImage = strings.TrimSpace(base)
	}
	cfg.Port = portString(raw["port"])
	return cfg
}

// Framework returns the framework identifier named by the record, if any.
func (p Preferences) Framework() string {
	if fw := p.String("framework"); fw != "" {
		return fw
	}
	if fw := p.String("metaFramework"); fw != "none" {
		return fw
	}
	return ""
}

// ParsePort validates a port entered as text. An empty value is allowed.
func ParsePort(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > 65535 {
		return "", ErrInvalidPort
	}
	return strconv.Itoa(n), nil
}

func portString(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(p)
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	case int:
		return strconv.Itoa(p)
	default:
		return fmt.Sprint(p)
	}
}
