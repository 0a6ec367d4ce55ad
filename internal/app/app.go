// Package app connects the editor core to the terminal. It owns the tcell
// screen, translates key events into editor commands through the keymap,
// loads and saves the file and applies live config changes.
//
// All editor state is touched only from the goroutine running Run. Other
// goroutines (config watcher, context cancellation) reach it by posting
// tcell interrupt events.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/taskpad/internal/config"
	"github.com/dshills/taskpad/internal/editor"
	"github.com/dshills/taskpad/internal/engine/document"
	"github.com/dshills/taskpad/internal/engine/history"
	"github.com/dshills/taskpad/internal/renderer"
)

// App is one editing session on one file.
type App struct {
	screen   tcell.Screen
	editor   *editor.Editor
	renderer *renderer.Renderer
	keymap   *Keymap
	cfg      *config.Config
	logger   *slog.Logger

	path  string
	saved string // document text as last loaded or saved

	quitPending bool
	pasting     bool
	paste       []rune

	configPath string
	running    atomic.Bool
}

// Options configures the application.
type Options struct {
	// Path is the file being edited. A missing file starts empty.
	Path string

	// Config is the initial configuration. nil uses config.Default().
	Config *config.Config

	// ConfigPath is watched for changes when set.
	ConfigPath string

	Logger    *slog.Logger
	Clipboard editor.Clipboard
	Clock     history.Clock
}

// New loads the file and builds the editor. The screen is initialized by
// Run.
func New(screen tcell.Screen, opts Options) (*App, error) {
	if screen == nil {
		return nil, &InitError{Component: "screen", Err: errors.New("nil screen")}
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	text, err := LoadFile(opts.Path)
	if err != nil {
		return nil, &InitError{Component: "document", Err: err}
	}

	edOpts := []editor.Option{
		editor.WithLogger(logger),
		editor.WithGroupingInterval(cfg.Undo.GroupingInterval.Std()),
		editor.WithMaxEntries(cfg.Undo.MaxEntries),
		editor.WithTabWidth(cfg.Editor.TabWidth),
		editor.WithIndentWidth(cfg.Editor.IndentWidth),
		editor.WithClipboard(opts.Clipboard),
	}
	if opts.Clock != nil {
		edOpts = append(edOpts, editor.WithClock(opts.Clock))
	}
	ed := editor.New(document.New(text), edOpts...)

	a := &App{
		screen:     screen,
		editor:     ed,
		renderer:   renderer.New(screen, rendererOptions(cfg)),
		cfg:        cfg,
		logger:     logger,
		path:       opts.Path,
		saved:      ed.Document().Text(),
		configPath: opts.ConfigPath,
	}
	a.keymap = a.buildKeymap(cfg)
	ed.OnModeChange(func(_, _ editor.Mode) {
		a.quitPending = false
	})
	return a, nil
}

func rendererOptions(cfg *config.Config) renderer.Options {
	opts := renderer.DefaultOptions()
	opts.TaskPaneRatio = cfg.Editor.TaskPaneRatio
	return opts
}

func (a *App) buildKeymap(cfg *config.Config) *Keymap {
	km, err := NewKeymap(cfg.Keymap)
	if err != nil {
		a.logger.Warn("keymap", "err", err)
		a.editor.SetStatus(fmt.Sprintf("Keymap: %v", err))
	}
	return km
}

// Editor returns the editor.
func (a *App) Editor() *editor.Editor {
	return a.editor
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Modified reports whether the document differs from the file.
func (a *App) Modified() bool {
	return a.editor.Document().Text() != a.saved
}

// Run initializes the screen and processes events until the user quits or
// ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer a.screen.Fini()
	a.screen.EnablePaste()

	if a.configPath != "" {
		w, err := config.NewWatcher(a.configPath, config.WithWatchLogger(a.logger))
		if err != nil {
			a.logger.Warn("config watcher disabled", "path", a.configPath, "err", err)
		} else {
			defer w.Close()
			go a.forwardConfig(w)
		}
	}

	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
	})
	defer stop()

	a.logger.Info("session started", "path", a.path, "lines", a.editor.Document().LineCount())
	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.HandleEvent(ev) {
			a.logger.Info("session ended", "path", a.path)
			return nil
		}
	}
}

// forwardConfig posts watcher output to the event loop until the watcher
// is closed.
func (a *App) forwardConfig(w *config.Watcher) {
	changes, errs := w.Changes(), w.Errors()
	for changes != nil || errs != nil {
		select {
		case cfg, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(cfg))
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(err))
		}
	}
}

// Draw renders the current state.
func (a *App) Draw() {
	a.renderer.Render(a.editor, a.title())
}

func (a *App) title() string {
	name := "[scratch]"
	if a.path != "" {
		name = filepath.Base(a.path)
	}
	if a.Modified() {
		name += " *"
	}
	return name
}

// HandleEvent processes one event and reports whether the session should
// end.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventPaste:
		a.handlePaste(ev)
	case *tcell.EventKey:
		return a.report(a.handleKey(ev))
	case *tcell.EventInterrupt:
		return a.handleInterrupt(ev.Data())
	}
	return false
}

func (a *App) handleInterrupt(data any) bool {
	switch v := data.(type) {
	case *config.Config:
		a.ApplyConfig(v)
	case error:
		if errors.Is(v, context.Canceled) || errors.Is(v, context.DeadlineExceeded) {
			return true
		}
		a.editor.SetStatus("Config: " + v.Error())
	}
	return false
}

// report handles the result of a command. It returns true for ErrQuit.
func (a *App) report(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrQuit):
		return true
	case expected(err):
		a.logger.Debug("command", "err", err)
	default:
		a.logger.Warn("command failed", "err", err)
		if a.editor.Status() == "" {
			a.editor.SetStatus(err.Error())
		}
	}
	return false
}

// expected reports errors whose outcome the editor already shows in the
// status line.
func expected(err error) bool {
	for _, target := range []error{
		editor.ErrInvalidMode,
		editor.ErrNoMatch,
		editor.ErrNoTasks,
		editor.ErrNoSelection,
		editor.ErrEmptyUndoStack,
		editor.ErrEmptyRedoStack,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ApplyConfig applies the settings that can change at runtime: the undo
// grouping interval, the keymap and the pane ratio. An invalid config is
// rejected as a whole.
func (a *App) ApplyConfig(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		a.logger.Warn("config rejected", "err", err)
		a.editor.SetStatus("Config rejected: " + err.Error())
		return
	}
	a.cfg = cfg
	a.editor.SetGroupingInterval(cfg.Undo.GroupingInterval.Std())
	a.renderer.SetOptions(rendererOptions(cfg))
	a.editor.SetStatus("Config reloaded.")
	a.keymap = a.buildKeymap(cfg)
	a.logger.Info("config applied", "grouping_interval", cfg.Undo.GroupingInterval.String())
}

// Save writes the document to its file.
func (a *App) Save() error {
	if a.path == "" {
		a.editor.SetStatus("No file name.")
		return nil
	}
	if err := SaveFile(a.path, a.editor.Document()); err != nil {
		a.editor.SetStatus("Save failed: " + err.Error())
		return err
	}
	a.saved = a.editor.Document().Text()
	a.editor.SetStatus("Wrote " + a.path)
	a.logger.Info("saved", "path", a.path, "lines", a.editor.Document().LineCount())
	return nil
}
