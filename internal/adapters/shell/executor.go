// Package shell runs toolchain processes with os/exec.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultWaitDelay bounds how long output pipes stay open after cancellation.
// Toolchain children that outlive a killed parent keep the pipes open until then.
const DefaultWaitDelay = 5 * time.Second

// Executor implements ports.Toolchain and ports.CommandRunner.
type Executor struct {
	logger    ports.Logger
	environ   func() []string
	waitDelay time.Duration
}

// NewExecutor creates a new Executor inheriting the process environment.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger:    logger,
		environ:   os.Environ,
		waitDelay: DefaultWaitDelay,
	}
}

type pipeProcess struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser

	exited   chan struct{}
	exitOnce sync.Once
}

func (p *pipeProcess) Stdout() io.Reader { return p.stdout }
func (p *pipeProcess) Stderr() io.Reader { return p.stderr }

// closeAfterCancel closes both pipes once delay has passed after ctx is done,
// unblocking readers held up by orphaned children.
func (p *pipeProcess) closeAfterCancel(ctx context.Context, delay time.Duration) {
	select {
	case <-ctx.Done():
	case <-p.exited:
		return
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		_ = p.stdout.Close()
		_ = p.stderr.Close()
	case <-p.exited:
	}
}

func (p *pipeProcess) Wait() error {
	defer p.exitOnce.Do(func() { close(p.exited) })
	if err := p.cmd.Wait(); err != nil {
		return withExitCode(err)
	}
	return nil
}

func (p *pipeProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

// Spawn starts cmd with stdout and stderr piped. The caller must drain both
// streams before calling Wait. Cancelling ctx kills the process and closes
// both streams after the wait delay.
func (e *Executor) Spawn(ctx context.Context, cmd domain.Command) (ports.Process, error) {
	c := e.command(ctx, cmd)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to pipe stdout")
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to pipe stderr")
	}

	if err := c.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start command"), "program", cmd.Program)
	}
	e.logger.Debug("spawned " + cmd.Program)

	p := &pipeProcess{cmd: c, stdout: stdout, stderr: stderr, exited: make(chan struct{})}
	go p.closeAfterCancel(ctx, e.waitDelay)
	return p, nil
}

// Output runs cmd to completion and returns its stdout.
// On failure the captured stderr becomes part of the error.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) ([]byte, error) {
	c := e.command(ctx, cmd)

	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		err = withExitCode(err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.Wrap(err, msg)
		}
		return nil, zerr.With(err, "program", cmd.Program)
	}
	return out, nil
}

// Run runs cmd to completion with its output attached to stdout and stderr.
func (e *Executor) Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	c := e.command(ctx, cmd)
	c.Stdin = os.Stdin
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		return zerr.With(withExitCode(err), "program", cmd.Program)
	}
	return nil
}

func (e *Executor) command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	env := resolveEnvironment(e.environ(), cmd.Env)

	executable := cmd.Program
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // toolchain command assembled by weld
	c.Args[0] = cmd.Program
	c.Dir = cmd.Dir
	c.Env = env
	c.WaitDelay = e.waitDelay
	return c
}

func withExitCode(err error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
}

// resolveEnvironment layers the command variables over the inherited environment.
// Later command variables win over earlier ones. The result is sorted by key.
func resolveEnvironment(sysEnv []string, cmdEnv []domain.EnvVar) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			envMap[k] = v
		}
	}
	for _, v := range cmdEnv {
		envMap[v.Key] = v.Value
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the PATH of env rather than of the current process.
func lookPath(file string, env []string) (string, error) {
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
