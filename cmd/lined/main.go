// Package main is the entry point for the lined editor.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/lined/internal/app"
	"github.com/dshills/lined/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd(runEditor)
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runEditor creates the application on a real terminal and runs it.
func runEditor(opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(term); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	return application.Run()
}
