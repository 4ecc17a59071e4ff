package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/lined/internal/app"
)

func execute(t *testing.T, args ...string) (app.Options, error) {
	t.Helper()
	var got app.Options
	cmd := newRootCmd(func(opts app.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader("input"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return got, err
}

func TestRootCmd_Flags(t *testing.T) {
	opts, err := execute(t, "-c", "/tmp/cfg.toml", "--log-level", "warn", "--log-file", "/tmp/l.log", "-d", "a.txt", "-")
	require.NoError(t, err)

	require.Equal(t, "/tmp/cfg.toml", opts.ConfigPath)
	require.Equal(t, "warn", opts.LogLevel)
	require.Equal(t, "/tmp/l.log", opts.LogFile)
	require.True(t, opts.Debug)
	require.Equal(t, []string{"a.txt", "-"}, opts.Files)
	require.NotNil(t, opts.Stdin)
	require.NotNil(t, opts.StdinIsTerminal)
}

func TestRootCmd_NoArgs(t *testing.T) {
	opts, err := execute(t)
	require.NoError(t, err)
	require.Empty(t, opts.Files)
	require.False(t, opts.Debug)
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}

func TestRootCmd_Version(t *testing.T) {
	var ran bool
	cmd := newRootCmd(func(app.Options) error {
		ran = true
		return nil
	})
	cmd.Version = "1.2.3"
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	require.False(t, ran)
	require.Contains(t, out.String(), "1.2.3")
}
