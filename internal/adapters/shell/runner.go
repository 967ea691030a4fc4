// Package shell provides a shell-based runner for plan commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/stacky/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultShell is the interpreter plan commands are passed to with -c.
const DefaultShell = "sh"

// Runner implements ports.CommandRunner using os/exec, optionally behind a PTY.
type Runner struct {
	logger ports.Logger
	shell  string
	usePTY bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithPTY runs commands attached to a pseudo terminal. Tools that prompt when
// they see a terminal will block, so this is only useful for colored output
// from tools that ignore FORCE_COLOR.
func WithPTY(enabled bool) Option {
	return func(r *Runner) {
		r.usePTY = enabled
	}
}

// WithShell overrides the interpreter.
func WithShell(shell string) Option {
	return func(r *Runner) {
		r.shell = shell
	}
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logger,
		shell:  DefaultShell,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes command through the shell in dir and waits for it to exit.
func (r *Runner) Run(ctx context.Context, dir, command string, env []string, stdout, stderr io.Writer) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if env == nil {
		env = os.Environ()
	}

	stdoutLog := &logWriter{logger: r.logger, prefix: "[stdout] "}
	stderrLog := &logWriter{logger: r.logger, prefix: "[stderr] ", warn: true}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	finalStdout := io.MultiWriter(stdoutLog, stdout)
	finalStderr := io.MultiWriter(stderrLog, stderr)

	var err error
	if r.usePTY {
		err = r.runPTY(ctx, dir, command, env, finalStdout)
		if errors.Is(err, errPTYUnavailable) {
			r.logger.Debug("pty unavailable, falling back to pipes")
			err = r.runPipes(ctx, dir, command, env, finalStdout, finalStderr)
		}
	} else {
		err = r.runPipes(ctx, dir, command, env, finalStdout, finalStderr)
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", ExitCode(err))
	}
	return nil
}

var errPTYUnavailable = errors.New("pty unavailable")

func (r *Runner) command(ctx context.Context, dir, command string, env []string) *exec.Cmd {
	executable := r.shell
	if !filepath.IsAbs(executable) {
		if lp, err := LookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, "-c", command) //nolint:gosec // plan commands are confirmed by the user
	cmd.Args[0] = r.shell
	cmd.Dir = dir
	cmd.Env = env
	return cmd
}

func (r *Runner) runPipes(ctx context.Context, dir, command string, env []string, stdout, stderr io.Writer) error {
	cmd := r.command(ctx, dir, command, env)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

func (r *Runner) runPTY(ctx context.Context, dir, command string, env []string, stdout io.Writer) error {
	cmd := r.command(ctx, dir, command, env)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		if cmd.Process == nil {
			return errors.Join(errPTYUnavailable, err)
		}
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// PTY merges stdout and stderr.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

// ExitCode extracts the exit status from err, or -1 if the process did not exit normally.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type logWriter struct {
	logger ports.Logger
	prefix string
	warn   bool
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}

	if w.warn {
		w.logger.Warn(w.prefix + msg)
	} else {
		w.logger.Info(w.prefix + msg)
	}
}

// LookPath searches for an executable in the directories named by the PATH entry of env.
func LookPath(file string, env []string) (string, error) {
	if strings.Contains(file, "/") {
		if err := findExecutable(file); err != nil {
			return "", err
		}
		return file, nil
	}

	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
