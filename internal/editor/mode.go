package editor

import (
	"github.com/dshills/taskpad/internal/engine/document"
	"github.com/dshills/taskpad/internal/search"
	"github.com/dshills/taskpad/internal/search/fuzzy"
	"github.com/dshills/taskpad/internal/task"
)

// Mode names.
const (
	ModeNormal        = "normal"
	ModeSearch        = "search"
	ModeTaskSelection = "task"
	ModeFuzzySearch   = "fuzzy"
)

// Mode is the active editor mode. The set of modes is closed: Normal,
// *Search, *TaskSelection and *FuzzySearch.
type Mode interface {
	// Name returns the unique mode identifier.
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	isMode()
}

// ModeChangeCallback is called after the mode changes.
type ModeChangeCallback func(from, to Mode)

// Normal is the editing mode.
type Normal struct{}

func (Normal) Name() string        { return ModeNormal }
func (Normal) DisplayName() string { return "NORMAL" }
func (Normal) isMode()             {}

// Search holds the state of an incremental search.
type Search struct {
	Direction search.Direction
	Query     string

	// Anchor is the cursor position when the search began.
	Anchor document.Position

	// Match is the current match, nil until the query first matches.
	Match *search.Match

	// Failed is set when the current query has no match.
	Failed bool
}

func (*Search) Name() string { return ModeSearch }

func (s *Search) DisplayName() string {
	if s.Direction == search.Backward {
		return "I-SEARCH BACKWARD"
	}
	return "I-SEARCH"
}

func (*Search) isMode() {}

// TaskSelection holds the task list of task selection mode.
type TaskSelection struct {
	// Tasks is rescanned after every move; indices are never reused.
	Tasks []task.Task

	Selected int
	Offset   int

	// Entry is the cursor position when the mode was entered. Moved
	// tasks are inserted at the start of its line.
	Entry document.Position
}

func (*TaskSelection) Name() string        { return ModeTaskSelection }
func (*TaskSelection) DisplayName() string { return "TASKS" }
func (*TaskSelection) isMode()             {}

// Current returns the selected task.
func (t *TaskSelection) Current() task.Task {
	return t.Tasks[t.Selected]
}

// EnsureVisible adjusts the display offset so that the selected task is
// within a window of height rows.
func (t *TaskSelection) EnsureVisible(height int) {
	if height <= 0 {
		return
	}
	if t.Selected < t.Offset {
		t.Offset = t.Selected
	}
	if t.Selected >= t.Offset+height {
		t.Offset = t.Selected - height + 1
	}
}

// FuzzySearch holds the state of a fuzzy line search.
type FuzzySearch struct {
	Query    string
	Results  []fuzzy.Result
	Selected int

	// Origin is the cursor position restored on cancel.
	Origin document.Position

	ranker *fuzzy.Ranker
}

func (*FuzzySearch) Name() string        { return ModeFuzzySearch }
func (*FuzzySearch) DisplayName() string { return "FUZZY" }
func (*FuzzySearch) isMode()             {}

// Current returns the selected result, if any.
func (f *FuzzySearch) Current() (fuzzy.Result, bool) {
	if f.Selected < 0 || f.Selected >= len(f.Results) {
		return fuzzy.Result{}, false
	}
	return f.Results[f.Selected], true
}
