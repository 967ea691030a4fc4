package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stacky/internal/adapters/logger"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("[stderr] npm WARN deprecated")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("didn't find base command: `pnpm`")
	assert.Empty(t, buf.String(), "debug records are hidden at the info level")

	lg.SetLevel(domain.LogLevelVerbose)
	lg.Debug("didn't find base command: `pnpm`")

	g := goldie.New(t)
	g.Assert(t, "debug_verbose", buf.Bytes())
}

func TestLogger_LevelNone(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(domain.LogLevelNone)

	lg.Debug("debug")
	lg.Info("info")
	lg.Warn("warn")

	assert.Equal(t, "! warn\n", buf.String())
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.LevelFor(domain.LogLevelVerbose))
	assert.Equal(t, slog.LevelInfo, logger.LevelFor(domain.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, logger.LevelFor(domain.LogLevelNone))
	assert.Equal(t, slog.LevelInfo, logger.LevelFor(""))
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("connection refused"), "backend request failed"),
				"failed to fetch scaffolding plan",
			),
			goldenName: "error_chain_zerr_three",
		},
		{
			name: "metadata on main error",
			err: func() error {
				err := zerr.Wrap(errors.New("exit status 1"), "command failed")
				err = zerr.With(err, "command", "npm install")
				return zerr.With(err, "index", 1)
			}(),
			goldenName: "error_metadata_main",
		},
		{
			name: "joined sentinel",
			err: errors.Join(
				domain.ErrCommandFailed,
				zerr.With(zerr.Wrap(errors.New("exit status 2"), "npm install failed"), "index", 0),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf chains are printed whole.
	innerErr := errors.New("connection refused")
	middleErr := fmt.Errorf("failed to connect to backend: %w", innerErr)
	outerErr := fmt.Errorf("failed to fetch plan: %w", middleErr)

	lg, buf := newTestLogger(t)
	lg.Error(outerErr)

	g := goldie.New(t)
	g.Assert(t, "error_chain_stdlib", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("connection refused"), "backend request failed"), "attempt", 3))

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"error":"backend request failed: connection refused"`)
	assert.Contains(t, output, `"attempt":3`)
	assert.NotContains(t, output, "✗")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("error in json mode"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPrettyOutput := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.NotContains(t, prettyOutput, `"error"`)
	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")
	assert.Contains(t, backToPrettyOutput, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New()
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			lg.Info("concurrent info")
		}()
		go func() {
			defer wg.Done()
			lg.Warn("concurrent warn")
		}()
		go func() {
			defer wg.Done()
			lg.SetLevel(domain.LogLevelInfo)
		}()
	}
	wg.Wait()

	assert.NotEmpty(t, buf.String())
}
