package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last file event before the
// config is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file when it changes.
//
// The containing directory is watched rather than the file so that editors
// which replace the file on save are followed.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher

	changes chan *Config
	errors  chan error

	debounce time.Duration
	logger   *slog.Logger

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger for dropped or failed reloads.
func WithWatchLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher starts watching the config file at path.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := FormatOf(abs); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		changes:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Changes delivers each successfully reloaded and validated config.
// A change is dropped if the previous one has not been received.
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

// Errors delivers reload and watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. Both channels are closed afterwards.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.wg.Wait()
		err = w.fsw.Close()
		close(w.changes)
		close(w.errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		w.sendError(err)
		return
	}
	select {
	case w.changes <- cfg:
		w.logger.Debug("config reloaded", "path", w.path)
	default:
		w.logger.Warn("config change dropped", "path", w.path)
	}
}

func (w *Watcher) sendError(err error) {
	w.logger.Warn("config reload failed", "path", w.path, "err", err)
	select {
	case w.errors <- err:
	default:
		w.logger.Debug("config error dropped", "err", err)
	}
}
