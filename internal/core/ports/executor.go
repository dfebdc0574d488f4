// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/weld/internal/core/domain"
)

// Process is a running toolchain child with both output streams piped.
type Process interface {
	Stdout() io.Reader
	Stderr() io.Reader
	// Wait blocks until the process exits and its pipes are closed.
	Wait() error
	// Kill terminates the process. Wait must still be called to reap it.
	Kill() error
}

// Toolchain defines the interface for starting toolchain processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Toolchain interface {
	// Spawn starts cmd and returns once the process is running.
	Spawn(ctx context.Context, cmd domain.Command) (Process, error)
}

// CommandRunner runs short lived commands to completion.
type CommandRunner interface {
	// Output runs cmd and returns its standard output.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)
	// Run runs cmd with its output streams attached to stdout and stderr.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
