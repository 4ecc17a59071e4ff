package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/lined/internal/app"
)

// newRootCmd builds the lined command. run receives the parsed options.
func newRootCmd(run func(app.Options) error) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "lined [flags] [files...]",
		Short: "A modal terminal line editor",
		Long: `lined edits one or more files in a vi-like modal interface.

Each file opens in its own window; "n" cycles between them. A file name
of "-" reads the buffer from piped standard input.`,
		Example: `  lined                 Open an empty scratch window
  lined notes.txt       Open (or create) a file
  lined a.txt b.txt     Open two windows
  ls | lined -          Edit piped text`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.LogLevel {
			case "", "debug", "info", "warn", "error":
			default:
				return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
			}

			opts.Files = args
			opts.Stdin = cmd.InOrStdin()
			opts.StdinIsTerminal = stdinIsTerminal
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: ~/.config/lined/config.toml)")
	flags.BoolVarP(&opts.Debug, "debug", "d", false, "enable debug logging")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")

	return cmd
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
