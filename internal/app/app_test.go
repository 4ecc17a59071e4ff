package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dshills/lined/internal/config"
	"github.com/dshills/lined/internal/editor"
	"github.com/dshills/lined/internal/renderer"
	"github.com/dshills/lined/internal/renderer/backend"
)

// isolate keeps tests away from the user's config and environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LINED_WATCH_FILES", "false")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func keyEvent(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func TestNew_OpensFiles(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	existing := writeFile(t, dir, "a.txt", "one\ntwo\n")
	missing := filepath.Join(dir, "new.txt")

	app, err := New(Options{Files: []string{existing, missing}})
	require.NoError(t, err)
	defer app.Shutdown()

	windows := app.Windows().All()
	require.Len(t, windows, 2)
	require.Equal(t, []string{"one\n", "two\n"}, windows[0].Buffer.Live().Lines())
	require.Equal(t, existing, windows[0].Path)
	require.Equal(t, []string{""}, windows[1].Buffer.Live().Lines())
	require.Equal(t, missing, windows[1].Path)
}

func TestNew_ScratchWindowWithoutFiles(t *testing.T) {
	isolate(t)
	app, err := New(Options{})
	require.NoError(t, err)
	defer app.Shutdown()

	require.Equal(t, 1, app.Windows().Len())
	require.Equal(t, "[scratch]", app.Windows().Current().Name())
}

func TestNew_UnreadableFileIsFatal(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := New(Options{Files: []string{dir}})
	require.Error(t, err)

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, "open", opErr.Op)
	require.Equal(t, dir, opErr.Target)
}

func TestNew_Stdin(t *testing.T) {
	isolate(t)
	app, err := New(Options{
		Files:           []string{"-"},
		Stdin:           strings.NewReader("piped\ntext"),
		StdinIsTerminal: func() bool { return false },
	})
	require.NoError(t, err)
	defer app.Shutdown()

	w := app.Windows().Current()
	require.Equal(t, []string{"piped\n", "text"}, w.Buffer.Live().Lines())
	require.Empty(t, w.Path)
}

func TestNew_StdinTerminalRefused(t *testing.T) {
	isolate(t)
	_, err := New(Options{
		Files:           []string{"-"},
		Stdin:           strings.NewReader(""),
		StdinIsTerminal: func() bool { return true },
	})
	require.ErrorIs(t, err, ErrStdinIsTerminal)
}

func TestNew_ConfigFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[editor]\ntab_width = 2\nundo_levels = 5\n")

	app, err := New(Options{ConfigPath: path})
	require.NoError(t, err)
	defer app.Shutdown()

	require.Equal(t, 2, app.Config().Editor.TabWidth)
	require.Equal(t, 5, app.Windows().Current().History.MaxEntries())
}

func TestNew_InvalidConfig(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[editor]\ntab_width = 0\n")

	_, err := New(Options{ConfigPath: path})
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	require.Equal(t, "config", initErr.Component)
	require.ErrorIs(t, err, config.ErrValidationFailed)
}

func TestNew_LogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "lined.log")

	app, err := New(Options{LogFile: logPath, LogLevel: "debug"})
	require.NoError(t, err)
	app.Shutdown()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "starting")
	require.Contains(t, string(data), "shutdown: uptime=")
}

func TestRun_NoBackend(t *testing.T) {
	isolate(t)
	app, err := New(Options{})
	require.NoError(t, err)
	defer app.Shutdown()

	require.ErrorIs(t, app.Run(), ErrNoBackend)
}

func TestRun_EditAndQuit(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "a.txt", "abc\n")
	app, err := New(Options{Files: []string{path}})
	require.NoError(t, err)
	defer app.Shutdown()

	b := backend.NewNullBackend(20, 5)
	require.NoError(t, app.SetBackend(b))
	b.PostEvent(keyEvent('x'))
	b.PostEvent(backend.Event{Type: backend.EventResize, Width: 20, Height: 5})
	b.PostEvent(keyEvent('q'))
	b.PostEvent(keyEvent('y'))

	require.NoError(t, app.Run())
	require.False(t, app.IsRunning())

	require.Equal(t, []string{"bc\n"}, app.Windows().Current().Buffer.Live().Lines())
	require.Equal(t, "bc", strings.TrimRight(b.Row(0), " "))
	require.True(t, strings.HasPrefix(b.Row(4), "unsaved changes"))

	s := app.Metrics().Snapshot()
	require.Equal(t, uint64(3), s.Inputs)
	require.Positive(t, s.Renders)

	// The file on disk is untouched until written.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "abc\n", string(data))
}

func TestRun_WriteFailureIsFatal(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "missing", "a.txt")
	app, err := New(Options{Files: []string{path}})
	require.NoError(t, err)
	defer app.Shutdown()

	b := backend.NewNullBackend(20, 5)
	require.NoError(t, app.SetBackend(b))
	b.PostEvent(keyEvent('w'))
	b.PostEvent(keyEvent('y'))

	err = app.Run()
	require.Error(t, err)
	require.True(t, editor.IsFatal(err))
}

func TestRun_AlreadyRunning(t *testing.T) {
	isolate(t)
	app, err := New(Options{})
	require.NoError(t, err)

	b := backend.NewNullBackend(20, 5)
	require.NoError(t, app.SetBackend(b))

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	require.Eventually(t, app.IsRunning, time.Second, 5*time.Millisecond)
	require.ErrorIs(t, app.Run(), ErrAlreadyRunning)
	require.ErrorIs(t, app.SetBackend(b), ErrAlreadyRunning)

	app.Shutdown()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestHandleBackendEvent_InterruptNotifies(t *testing.T) {
	isolate(t)
	app, err := New(Options{})
	require.NoError(t, err)
	defer app.Shutdown()

	b := backend.NewNullBackend(20, 5)
	require.NoError(t, b.Init())
	r := renderer.New(b, renderer.DefaultOptions())

	require.NoError(t, app.handleBackendEvent(backend.Event{
		Type:    backend.EventInterrupt,
		Payload: "a.txt changed on disk",
	}, r))
	require.Equal(t, "a.txt changed on disk", app.Editor().Message())

	// Empty interrupts only wake the loop.
	require.NoError(t, app.handleBackendEvent(backend.Event{Type: backend.EventInterrupt}, r))
	require.Equal(t, "a.txt changed on disk", app.Editor().Message())
}

func TestWatcherStartsForFiles(t *testing.T) {
	isolate(t)
	t.Setenv("LINED_WATCH_FILES", "true")
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "x\n")

	app, err := New(Options{Files: []string{path}})
	require.NoError(t, err)
	defer app.Shutdown()

	require.NotNil(t, app.watcher)
	require.True(t, app.watcher.IsWatching(path))

	other := filepath.Join(dir, "b.txt")
	app.beforeWrite(other)
	require.True(t, app.watcher.IsWatching(other))
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   backend.Event
		want editor.Key
		ok   bool
	}{
		{keyEvent('a'), editor.Rune('a'), true},
		{backend.Event{Key: backend.KeyEscape}, editor.Special(editor.KeyEscape), true},
		{backend.Event{Key: backend.KeyEnter}, editor.Special(editor.KeyEnter), true},
		{backend.Event{Key: backend.KeyBackspace}, editor.Special(editor.KeyBackspace), true},
		{backend.Event{Key: backend.KeyCtrlC}, editor.Special(editor.KeyCtrlC), true},
		{backend.Event{Key: backend.KeyNone}, editor.Key{}, false},
	}
	for _, tt := range tests {
		got, ok := convertKey(tt.in)
		require.Equal(t, tt.ok, ok)
		require.Equal(t, tt.want, got)
	}
}

func TestRendererOptions(t *testing.T) {
	cfg := config.Default()
	opts, err := rendererOptions(cfg)
	require.NoError(t, err)
	require.False(t, opts.StatusStyle.Background.IsDefault())
	require.Equal(t, uint8(0xc0), opts.StatusStyle.Background.R)
	require.True(t, opts.TextStyle.Foreground.IsDefault())

	cfg.UI.StatusFg, cfg.UI.StatusBg = "", ""
	opts, err = rendererOptions(cfg)
	require.NoError(t, err)
	require.NotZero(t, opts.StatusStyle.Attributes)

	cfg.UI.TextFg = "not-a-color"
	_, err = rendererOptions(cfg)
	require.Error(t, err)
}

func TestShutdownIsIdempotent(t *testing.T) {
	isolate(t)
	app, err := New(Options{})
	require.NoError(t, err)
	app.Shutdown()
	app.Shutdown()
	require.ErrorIs(t, app.Run(), ErrNoBackend)
}
