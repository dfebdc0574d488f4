// Package main is the entry point for the weld build tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/cmd/weld/commands"
	"go.trai.ch/weld/internal/app"
	"go.trai.ch/weld/internal/core/domain"
	_ "go.trai.ch/weld/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	provider := func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}

	// The toolchain runs weld as its linker with the intent in the environment.
	if payload := os.Getenv(domain.LinkActionEnv); payload != "" {
		os.Exit(link(context.Background(), payload, os.Args[1:], os.Stderr, provider))
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provider))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

func link(
	ctx context.Context,
	payload string,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	components, cleanup, err := provider(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if err := components.App.Link(ctx, payload, args); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
