// Package linker performs the link step when weld runs as the toolchain's linker.
package linker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// ArgsFileName holds the arguments of the last unstripped link, kept for later patching.
const ArgsFileName = "link-args.json"

// Delegate implements ports.Linker by running the platform linker named in the intent.
type Delegate struct {
	runner ports.CommandRunner
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewDelegate creates a Delegate forwarding linker output to the process streams.
func NewDelegate(runner ports.CommandRunner, logger ports.Logger) *Delegate {
	return &Delegate{
		runner: runner,
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects the linker's output streams.
func (d *Delegate) WithOutput(stdout, stderr io.Writer) *Delegate {
	d.stdout = stdout
	d.stderr = stderr
	return d
}

// Link runs intent.Linker with args. Unstripped links also record args in the
// incremental directory. Thin links are refused.
func (d *Delegate) Link(ctx context.Context, intent domain.LinkIntent, args []string) error {
	if intent.Action == domain.LinkActionThin {
		return zerr.With(domain.ErrThinLinkUnsupported, "platform", intent.Platform.String())
	}
	if intent.Linker == "" {
		return zerr.With(domain.ErrLinkerNotConfigured, "platform", intent.Platform.String())
	}

	if !intent.Strip && intent.IncrementalDir != "" {
		if err := recordArgs(intent.IncrementalDir, args); err != nil {
			d.logger.Warn(fmt.Sprintf("could not record link arguments: %v", err))
		}
	}

	linkArgs := append([]string(nil), args...)
	if intent.Strip && stripSupported(intent.Platform) {
		linkArgs = append(linkArgs, "-s")
	}

	cmd := domain.Command{Program: intent.Linker, Args: linkArgs}
	d.logger.Debug(fmt.Sprintf("linking with %s", cmd))

	if err := d.runner.Run(ctx, cmd, d.stdout, d.stderr); err != nil {
		return errors.Join(domain.ErrLinkFailed, err)
	}
	return nil
}

func stripSupported(p domain.Platform) bool {
	return p != domain.PlatformWeb && p != domain.PlatformWindows
}

func recordArgs(dir string, args []string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}
	data, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ArgsFileName), data, domain.FilePerm)
}
