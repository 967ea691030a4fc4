package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stacky/internal/adapters/backend"
	"go.trai.ch/stacky/internal/core/domain"
)

func TestSanityCheck_Ollama(t *testing.T) {
	fake, srv := newFakeOllama(t, reply{content: "Rayleigh scattering."})

	checker, err := backend.NewSanity(ollamaSettings(srv.URL))
	require.NoError(t, err)

	report, err := checker.SanityCheck(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"codellama:latest"}, report.Models)
	assert.Equal(t, "0.5.7", report.Version)
	assert.Equal(t, "Rayleigh scattering.", report.Reply)

	req := fake.lastRequest()
	require.Len(t, req.Messages, 1)
	assert.Equal(t, backend.SanityPrompt, req.Messages[0].Content)
}

func TestSanityCheck_NoRunningModels(t *testing.T) {
	fake, srv := newFakeOllama(t, reply{content: "unused"})
	fake.mu.Lock()
	fake.models = nil
	fake.mu.Unlock()

	checker, err := backend.NewSanity(ollamaSettings(srv.URL))
	require.NoError(t, err)

	_, err = checker.SanityCheck(t.Context())
	require.ErrorIs(t, err, domain.ErrSanityCheckFailed)
	assert.ErrorIs(t, err, domain.ErrNoRunningModels)
	assert.Zero(t, fake.calls())
}

func TestSanityCheck_OldServer(t *testing.T) {
	fake, srv := newFakeOllama(t, reply{content: "unused"})
	fake.mu.Lock()
	fake.version = "0.1.9"
	fake.mu.Unlock()

	checker, err := backend.NewSanity(ollamaSettings(srv.URL))
	require.NoError(t, err)

	_, err = checker.SanityCheck(t.Context())
	require.ErrorIs(t, err, domain.ErrSanityCheckFailed)
	assert.ErrorIs(t, err, domain.ErrBackendVersionUnsupported)
	assert.Contains(t, err.Error(), "server version 0.1.9 is older than 0.1.14")
}

func TestSanityCheck_NoMinimumVersion(t *testing.T) {
	fake, srv := newFakeOllama(t, reply{content: "blue"})
	fake.mu.Lock()
	fake.version = "not-a-version"
	fake.mu.Unlock()

	settings := ollamaSettings(srv.URL)
	settings.Ollama.MinVersion = ""
	checker, err := backend.NewSanity(settings)
	require.NoError(t, err)

	report, err := checker.SanityCheck(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "not-a-version", report.Version)
}

func TestSanityCheck_Hosted(t *testing.T) {
	srv, calls, _ := newFakeHosted(t, "Because of Rayleigh scattering.")

	checker, err := backend.NewSanity(hostedSettings(srv.URL))
	require.NoError(t, err)

	report, err := checker.SanityCheck(t.Context())
	require.NoError(t, err)
	assert.Empty(t, report.Models)
	assert.Equal(t, "Because of Rayleigh scattering.", report.Reply)
	assert.Equal(t, int32(1), calls.Load())
}
