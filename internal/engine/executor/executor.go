// Package executor runs a confirmed plan against a project directory.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
	"go.trai.ch/zerr"
)

// colorEnv asks tools to keep colored output when not attached to a terminal.
const colorEnv = "FORCE_COLOR=1"

// Executor implements ports.CommandExecutor.
type Executor struct {
	runner  ports.CommandRunner
	logger  ports.Logger
	tracer  ports.Tracer
	baseDir string
	delay   time.Duration
	stdout  io.Writer
	stderr  io.Writer
	environ func() []string
}

// Option configures an Executor.
type Option func(*Executor)

// WithDelay sets the pause between successive subprocesses.
func WithDelay(d time.Duration) Option {
	return func(e *Executor) {
		e.delay = d
	}
}

// WithOutput sets where subprocess output is streamed.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithEnviron replaces the source of the inherited environment.
func WithEnviron(environ func() []string) Option {
	return func(e *Executor) {
		e.environ = environ
	}
}

// New creates an Executor that creates projects below baseDir.
func New(runner ports.CommandRunner, logger ports.Logger, tracer ports.Tracer, baseDir string, opts ...Option) *Executor {
	e := &Executor{
		runner:  runner,
		logger:  logger,
		tracer:  tracer,
		baseDir: baseDir,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProjectDir returns the directory a project named projectName is created in.
func (e *Executor) ProjectDir(projectName string) (string, error) {
	return filepath.Abs(filepath.Join(e.baseDir, projectName))
}

// ExecuteCommands runs commands in order inside the project directory, then
// writes the Docker artifacts when docker is set. It stops at the first failure.
func (e *Executor) ExecuteCommands(
	ctx context.Context,
	projectName string,
	commands []domain.Command,
	docker *domain.DockerConfig,
) error {
	ctx, span := e.tracer.Start(ctx, "executor.execute")
	defer span.End()
	span.SetAttribute("project", projectName)
	span.SetAttribute("commands", len(commands))

	err := e.execute(ctx, projectName, commands, docker)
	span.RecordError(err)
	return err
}

func (e *Executor) execute(ctx context.Context, projectName string, commands []domain.Command, docker *domain.DockerConfig) error {
	projectDir, err := e.ProjectDir(projectName)
	if err != nil {
		return errors.Join(domain.ErrProjectDirCreateFailed, err)
	}
	if err := os.MkdirAll(projectDir, domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrProjectDirCreateFailed, err), "path", projectDir)
	}

	env := append(e.environ(), colorEnv)

	wd := projectDir
	spawned := 0
	for i, c := range commands {
		line := strings.TrimSpace(c.Command)
		if line == "" {
			continue
		}

		target, rest, ok := parseCd(line)
		if !ok && isCd(line) {
			e.logger.Warn(fmt.Sprintf("%q runs in a subshell, working directory stays %s", line, wd))
		}
		if ok {
			next, err := changeDir(wd, target)
			if err != nil {
				return zerr.With(zerr.With(errors.Join(domain.ErrDirectoryChangeFailed, err), "dir", target), "index", i)
			}
			wd = next
			e.logger.Debug("working directory is now " + wd)
			if rest == "" {
				continue
			}
			line = rest
		}

		if spawned > 0 {
			if err := sleep(ctx, e.delay); err != nil {
				return err
			}
		}
		spawned++

		if err := e.run(ctx, i, line, wd, env); err != nil {
			failed := errors.Join(domain.ErrCommandFailed, zerr.With(zerr.With(
				zerr.Wrap(err, fmt.Sprintf("failed to execute command: %s", c.Command)),
				"command", c.Command), "index", i))
			e.logger.Error(failed)
			return failed
		}
	}

	if docker == nil {
		return nil
	}

	created, err := writeDockerArtifacts(projectDir, *docker)
	for _, name := range created {
		e.logger.Info("Created " + name)
	}
	if err != nil {
		return err
	}
	e.logger.Debug("Docker files created in " + projectDir)
	return nil
}

func (e *Executor) run(ctx context.Context, index int, line, dir string, env []string) error {
	ctx, span := e.tracer.Start(ctx, "executor.command")
	defer span.End()
	span.SetAttribute("index", index)
	span.SetAttribute("command", line)
	span.SetAttribute("dir", dir)

	e.logger.Info(fmt.Sprintf("Executing: %s in directory: %s", line, dir))

	err := e.runner.Run(ctx, dir, line, env, e.stdout, e.stderr)
	if err != nil {
		span.RecordError(err)
		return err
	}
	e.logger.Debug("Command succeeded: " + line)
	return nil
}

// parseCd recognizes "cd <dir>" optionally followed by "&& <rest>" or
// "; <rest>". A bare "cd" targets the home directory. A cd combined with
// pipes, "||", redirections or substitutions is not interpreted.
func parseCd(line string) (target, rest string, ok bool) {
	if !isCd(line) {
		return "", "", false
	}

	head, rest := cutSequence(line)
	head = strings.TrimSpace(head)
	if strings.ContainsAny(head, ";|&<>`$(") {
		return "", "", false
	}

	target = strings.TrimSpace(strings.TrimPrefix(head, "cd"))
	if target == "" {
		target = "~"
	}
	if len(target) >= 2 && (target[0] == '"' || target[0] == '\'') && target[len(target)-1] == target[0] {
		target = target[1 : len(target)-1]
	}
	return target, rest, true
}

func isCd(line string) bool {
	return line == "cd" || strings.HasPrefix(line, "cd ") || strings.HasPrefix(line, "cd\t")
}

// cutSequence splits line at its first unquoted "&&" or ";".
func cutSequence(line string) (head, rest string) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ';':
			return line[:i], strings.TrimSpace(line[i+1:])
		case c == '&' && i+1 < len(line) && line[i+1] == '&':
			return line[:i], strings.TrimSpace(line[i+2:])
		}
	}
	return line, ""
}

// changeDir resolves target against wd and checks it is a directory.
func changeDir(wd, target string) (string, error) {
	if target == "~" || strings.HasPrefix(target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		target = filepath.Join(home, strings.TrimPrefix(target, "~"))
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(wd, target)
	}
	target = filepath.Clean(target)

	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", zerr.New("not a directory")
	}
	return target, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
