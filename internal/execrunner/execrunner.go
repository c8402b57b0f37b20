// Package execrunner implements host.CommandRunner on top of os/exec: named
// commands are resolved to argv through the panel registry's command table
// and run as child processes.
package execrunner

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// Runner resolves command names to argv and executes them.
type Runner struct {
	commands map[string][]string
	lookPath func(string) (string, error)
	execute  func(ctx context.Context, argv []string) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLookPath overrides binary resolution, for tests.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Runner) { r.lookPath = fn }
}

// WithExecute overrides process execution, for tests.
func WithExecute(fn func(ctx context.Context, argv []string) error) Option {
	return func(r *Runner) { r.execute = fn }
}

// New returns a Runner over the given command table.
func New(commands map[string][]string, opts ...Option) *Runner {
	r := &Runner{
		commands: commands,
		lookPath: exec.LookPath,
		execute: func(ctx context.Context, argv []string) error {
			return exec.CommandContext(ctx, argv[0], argv[1:]...).Run()
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named command, returning an error on any failure
// including an unknown name.
func (r *Runner) Run(ctx context.Context, name string) error {
	argv, ok := r.commands[name]
	if !ok || len(argv) == 0 {
		return fmt.Errorf("unknown command %q", name)
	}
	if err := r.execute(ctx, argv); err != nil {
		return fmt.Errorf("command %q: %w", name, err)
	}
	slog.Debug("command executed", "name", name)
	return nil
}

// Exists reports whether the named command's binary resolves on this host.
func (r *Runner) Exists(name string) bool {
	argv, ok := r.commands[name]
	if !ok || len(argv) == 0 {
		return false
	}
	_, err := r.lookPath(argv[0])
	return err == nil
}
