package history

import (
	"errors"
	"fmt"
	"time"
)

// Errors returned by history operations.
var (
	ErrEmptyUndoStack = errors.New("nothing to undo")
	ErrEmptyRedoStack = errors.New("nothing to redo")
)

// DefaultGroupingInterval is the production batching window.
const DefaultGroupingInterval = 500 * time.Millisecond

// DefaultMaxEntries is the default undo depth.
const DefaultMaxEntries = 1000

// ReplayError reports a record that failed during undo or redo.
// The group stays on its originating stack and the records applied before
// the failure have been rolled back.
type ReplayError struct {
	Op      string // "undo" or "redo"
	Applied int    // Records applied, then rolled back, before the failure
	Err     error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("%s failed after %d record(s): %v", e.Op, e.Applied, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

// History manages the undo and redo stacks for one document.
// It is not safe for concurrent use; it belongs to the editing goroutine.
type History struct {
	undoStack []Group
	redoStack []Group

	lastCommit time.Time
	breakNext  bool

	// Configuration
	interval   time.Duration
	maxEntries int
}

// Option configures a History.
type Option func(*History)

// WithGroupingInterval sets the batching window.
func WithGroupingInterval(d time.Duration) Option {
	return func(h *History) {
		if d >= 0 {
			h.interval = d
		}
	}
}

// WithMaxEntries caps the number of undo groups kept.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.maxEntries = n
		}
	}
}

// New creates an empty history.
func New(opts ...Option) *History {
	h := &History{
		interval:   DefaultGroupingInterval,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Commit records an already-applied edit.
// The record joins the top group when the undo stack is non-empty, no break
// was signaled and now is less than the grouping interval after the
// previous commit. Otherwise it starts a new group. The redo stack is
// always cleared.
func (h *History) Commit(rec Record, now time.Time) {
	if h.joinable(now) {
		top := len(h.undoStack) - 1
		h.undoStack[top] = append(h.undoStack[top], rec)
	} else {
		h.push(Group{rec})
	}
	h.redoStack = nil
	h.lastCommit = now
	h.breakNext = false
}

// CommitGroup records several already-applied edits as one group of their
// own, regardless of timing. Records are given in application order.
func (h *History) CommitGroup(now time.Time, recs ...Record) {
	if len(recs) == 0 {
		return
	}
	g := make(Group, len(recs))
	copy(g, recs)
	h.push(g)
	h.redoStack = nil
	h.lastCommit = now
	h.breakNext = true
}

func (h *History) joinable(now time.Time) bool {
	if len(h.undoStack) == 0 || h.breakNext {
		return false
	}
	elapsed := now.Sub(h.lastCommit)
	return elapsed >= 0 && elapsed < h.interval
}

// push adds a group and enforces the entry cap.
func (h *History) push(g Group) {
	h.undoStack = append(h.undoStack, g)
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Break makes the next commit start a new group.
func (h *History) Break() {
	h.breakNext = true
}

// SetGroupingInterval changes the batching window.
func (h *History) SetGroupingInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	h.interval = d
}

// GroupingInterval returns the batching window.
func (h *History) GroupingInterval() time.Duration {
	return h.interval
}

// Undo reverts the top undo group by applying its records in reverse order.
// On success the group moves to the redo stack. If a record fails to apply,
// the records already reverted are reapplied, the group stays on the undo
// stack and a *ReplayError is returned.
func (h *History) Undo(a Applier) (Position, error) {
	if len(h.undoStack) == 0 {
		return Position{}, ErrEmptyUndoStack
	}
	g := h.undoStack[len(h.undoStack)-1]

	var pos Position
	for i := len(g) - 1; i >= 0; i-- {
		p, err := g[i].Apply(a, true)
		if err != nil {
			return pos, rollback(a, "undo", g[i+1:], false, err)
		}
		pos = p
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, g)
	h.breakNext = true
	return pos, nil
}

// Redo reapplies the top redo group in original order and moves it back to
// the undo stack. Failures behave as in Undo.
func (h *History) Redo(a Applier) (Position, error) {
	if len(h.redoStack) == 0 {
		return Position{}, ErrEmptyRedoStack
	}
	g := h.redoStack[len(h.redoStack)-1]

	var pos Position
	for i, rec := range g {
		p, err := rec.Apply(a, false)
		if err != nil {
			return pos, rollback(a, "redo", g[:i], true, err)
		}
		pos = p
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.push(g)
	h.breakNext = true
	return pos, nil
}

// rollback restores the records a failed replay already applied so the
// document is left as it was before the call. Undo applies records newest
// first, so restoring them runs oldest first; redo is the reverse. invert
// selects undo direction for the restore.
func rollback(a Applier, op string, applied Group, invert bool, cause error) error {
	re := &ReplayError{Op: op, Applied: len(applied), Err: cause}
	if invert {
		for i := len(applied) - 1; i >= 0; i-- {
			if _, err := applied[i].Apply(a, true); err != nil {
				re.Err = errors.Join(cause, fmt.Errorf("rollback: %w", err))
				return re
			}
		}
		return re
	}
	for _, rec := range applied {
		if _, err := rec.Apply(a, false); err != nil {
			re.Err = errors.Join(cause, fmt.Errorf("rollback: %w", err))
			return re
		}
	}
	return re
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo groups available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo groups available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo returns a copy of the group the next Undo would revert.
func (h *History) PeekUndo() (Group, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	return append(Group(nil), h.undoStack[len(h.undoStack)-1]...), true
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.lastCommit = time.Time{}
	h.breakNext = false
}

// MaxEntries returns the maximum number of undo groups.
func (h *History) MaxEntries() int {
	return h.maxEntries
}
