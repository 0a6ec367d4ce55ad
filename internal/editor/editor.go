package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dshills/taskpad/internal/engine/document"
	"github.com/dshills/taskpad/internal/engine/history"
	"github.com/dshills/taskpad/internal/engine/word"
	"github.com/dshills/taskpad/internal/task"
)

// Position is an alias for document.Position for convenience.
type Position = document.Position

// Default layout settings.
const (
	DefaultTabWidth    = 4
	DefaultIndentWidth = 2
)

// actionKind classifies edits for undo grouping.
type actionKind uint8

const (
	actionNone actionKind = iota
	actionInsert
	actionDelete
	actionNewline
	actionLineMove
	actionComment
	actionOther
)

// Editor is the mode controller for one document.
type Editor struct {
	doc     *document.Document
	history *history.History
	clock   history.Clock
	logger  *slog.Logger
	clip    Clipboard

	cursor   Position
	desiredX int // sticky display column for vertical motion
	marker   *Position

	mode      Mode
	callbacks []ModeChangeCallback

	lastAction  actionKind
	lastWasKill bool
	killBuffer  string

	status string

	// Configuration
	tabWidth    int
	indentWidth int
	histOpts    []history.Option
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock sets the clock used to time commits.
func WithClock(c history.Clock) Option {
	return func(e *Editor) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithGroupingInterval sets the undo batching window.
func WithGroupingInterval(d time.Duration) Option {
	return func(e *Editor) {
		e.histOpts = append(e.histOpts, history.WithGroupingInterval(d))
	}
}

// WithMaxEntries caps the number of undo groups.
func WithMaxEntries(n int) Option {
	return func(e *Editor) {
		e.histOpts = append(e.histOpts, history.WithMaxEntries(n))
	}
}

// WithClipboard sets the clipboard for kill and yank. nil disables it.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) {
		e.clip = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTabWidth sets the display width of a tab.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithIndentWidth sets the number of spaces used by indent and outdent.
func WithIndentWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.indentWidth = n
		}
	}
}

// New creates an editor for doc with the cursor at the start.
func New(doc *document.Document, opts ...Option) *Editor {
	if doc == nil {
		doc = document.New("")
	}
	e := &Editor{
		doc:         doc,
		clock:       history.SystemClock{},
		logger:      slog.New(slog.DiscardHandler),
		mode:        Normal{},
		tabWidth:    DefaultTabWidth,
		indentWidth: DefaultIndentWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = history.New(e.histOpts...)
	e.histOpts = nil
	return e
}

// Document returns the edited document.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// History returns the undo history.
func (e *Editor) History() *history.History {
	return e.history
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() Position {
	return e.cursor
}

// SetCursor moves the cursor to the closest valid position to pos.
// It is used by the persistence layer to restore a saved cursor.
func (e *Editor) SetCursor(pos Position) {
	e.setCursor(pos)
	e.history.Break()
}

// Mode returns the active mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// OnModeChange registers a callback invoked after every mode change.
func (e *Editor) OnModeChange(cb ModeChangeCallback) {
	e.callbacks = append(e.callbacks, cb)
}

// Status returns the status message of the last command.
func (e *Editor) Status() string {
	return e.status
}

// SetStatus replaces the status message.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
}

// TabWidth returns the display width of a tab.
func (e *Editor) TabWidth() int {
	return e.tabWidth
}

// SetGroupingInterval changes the undo batching window.
func (e *Editor) SetGroupingInterval(d time.Duration) {
	e.history.SetGroupingInterval(d)
}

// Reload replaces the document content, clears history and resets the
// editor to Normal mode with the cursor at the start.
func (e *Editor) Reload(text string) {
	e.doc.Load(text)
	e.history.Clear()
	e.marker = nil
	e.killBuffer = ""
	e.lastAction = actionNone
	e.lastWasKill = false
	e.setMode(Normal{})
	e.setCursor(Position{})
}

// ScanTasks returns the unchecked tasks from the line of from to the end
// of the document.
func (e *Editor) ScanTasks(from Position) []task.Task {
	return task.Scan(e.doc, from.Line)
}

// Classify returns the word category of r.
func (e *Editor) Classify(r rune) word.Category {
	return word.Classify(r)
}

// DisplayColumn returns the screen column of the cursor.
func (e *Editor) DisplayColumn() int {
	return e.doc.DisplayColumn(e.cursor.Line, e.cursor.Column, e.tabWidth)
}

// setCursor moves the cursor and records its display column as the sticky
// column.
func (e *Editor) setCursor(pos Position) {
	e.cursor = e.doc.Clamp(pos)
	e.desiredX = e.doc.DisplayColumn(e.cursor.Line, e.cursor.Column, e.tabWidth)
}

func (e *Editor) setMode(m Mode) {
	from := e.mode
	e.mode = m
	if from.Name() != m.Name() {
		e.history.Break()
		e.logger.Debug("mode change", "from", from.Name(), "to", m.Name())
	}
	for _, cb := range e.callbacks {
		if cb != nil {
			cb(from, m)
		}
	}
}

func (e *Editor) requireNormal() error {
	if _, ok := e.mode.(Normal); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMode, e.mode.Name())
	}
	return nil
}

// edit applies one change at pos, commits it and leaves the cursor after
// the inserted text.
func (e *Editor) edit(kind actionKind, pos Position, added, deleted string) error {
	return e.editPlace(kind, pos, added, deleted, nil)
}

// editPlace is edit with the final cursor chosen by place, which receives
// the position after the inserted text. A nil place keeps that position.
func (e *Editor) editPlace(kind actionKind, pos Position, added, deleted string, place func(end Position) Position) error {
	before := e.cursor
	end, err := e.doc.Modify(pos, added, deleted, false)
	if err != nil {
		return err
	}
	after := end
	if place != nil {
		after = place(end)
	}

	if kind != e.lastAction {
		e.history.Break()
	}
	e.lastAction = kind
	e.lastWasKill = false

	e.history.Commit(history.NewRecord(pos, added, deleted).WithCursor(before, after), e.clock.Now())
	e.setCursor(after)
	return nil
}

// editAlone is editPlace committed as a group of its own.
func (e *Editor) editAlone(kind actionKind, pos Position, added, deleted string, place func(end Position) Position) error {
	e.history.Break()
	if err := e.editPlace(kind, pos, added, deleted, place); err != nil {
		return err
	}
	e.history.Break()
	return nil
}

// resetAction ends the current run of edits; the next edit starts a new
// undo group.
func (e *Editor) resetAction() {
	e.history.Break()
	e.lastAction = actionNone
	e.lastWasKill = false
}

// Undo reverts the most recent undo group and restores the cursor.
func (e *Editor) Undo() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	pos, err := e.history.Undo(e.doc)
	if err != nil {
		return e.replayFailed("undo", err)
	}
	e.resetAction()
	e.setCursor(pos)
	e.status = "Undo."
	return nil
}

// Redo reapplies the most recently undone group.
func (e *Editor) Redo() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	pos, err := e.history.Redo(e.doc)
	if err != nil {
		return e.replayFailed("redo", err)
	}
	e.resetAction()
	e.setCursor(pos)
	e.status = "Redo."
	return nil
}

func (e *Editor) replayFailed(op string, err error) error {
	switch {
	case errors.Is(err, ErrEmptyUndoStack):
		e.status = "Nothing to undo."
	case errors.Is(err, ErrEmptyRedoStack):
		e.status = "Nothing to redo."
	default:
		var re *history.ReplayError
		if errors.As(err, &re) {
			e.logger.Warn("history replay failed", "op", op, "applied", re.Applied, "err", re.Err)
		}
		e.status = fmt.Sprintf("%s failed: %v", op, err)
		// The document may have changed under the cursor.
		e.setCursor(e.cursor)
	}
	return err
}
