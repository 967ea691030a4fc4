package executor

import (
	"bytes"
	"embed"
	"errors"
	"os"
	"path/filepath"
	"text/template"

	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var dockerTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Artifact is a generated file.
type Artifact struct {
	Name    string
	Content []byte
}

var artifactTemplates = []struct {
	file     string
	template string
}{
	{file: "Dockerfile", template: "Dockerfile.tmpl"},
	{file: "docker-compose.yml", template: "docker-compose.yml.tmpl"},
	{file: ".dockerignore", template: "dockerignore.tmpl"},
}

// RenderDockerArtifacts renders the Dockerfile, docker-compose.yml and
// .dockerignore for cfg, in that order.
func RenderDockerArtifacts(cfg domain.DockerConfig) ([]Artifact, error) {
	out := make([]Artifact, 0, len(artifactTemplates))
	for _, at := range artifactTemplates {
		var buf bytes.Buffer
		if err := dockerTemplates.ExecuteTemplate(&buf, at.template, cfg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "render docker artifact"), "file", at.file)
		}
		out = append(out, Artifact{Name: at.file, Content: buf.Bytes()})
	}
	return out, nil
}

// writeDockerArtifacts writes the rendered artifacts into dir and returns the
// names of the files created.
func writeDockerArtifacts(dir string, cfg domain.DockerConfig) ([]string, error) {
	artifacts, err := RenderDockerArtifacts(cfg)
	if err != nil {
		return nil, errors.Join(domain.ErrArtifactWriteFailed, err)
	}

	created := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, a.Content, domain.FilePerm); err != nil {
			return created, zerr.With(errors.Join(domain.ErrArtifactWriteFailed, err), "file", a.Name)
		}
		created = append(created, a.Name)
	}
	return created, nil
}
