package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/taskpad/internal/search"
)

func TestModeChangeCallback(t *testing.T) {
	e, _ := newTestEditor(t, "text")

	var changes []string
	e.OnModeChange(func(from, to Mode) {
		changes = append(changes, from.Name()+">"+to.Name())
	})

	require.NoError(t, e.BeginSearch(search.Forward))
	require.NoError(t, e.CancelSearch())
	require.NoError(t, e.BeginFuzzySearch())
	require.NoError(t, e.ConfirmFuzzy())

	assert.Equal(t, []string{
		"normal>search", "search>normal",
		"normal>fuzzy", "fuzzy>normal",
	}, changes)
}

func TestOperationsRequireMode(t *testing.T) {
	e, _ := newTestEditor(t, "- [ ] a")

	assert.ErrorIs(t, e.TaskUp(), ErrInvalidMode)
	assert.ErrorIs(t, e.AppendQuery("x"), ErrInvalidMode)
	assert.ErrorIs(t, e.FuzzyDown(), ErrInvalidMode)
	assert.ErrorIs(t, e.ExitTaskMode(), ErrInvalidMode)

	require.NoError(t, e.BeginSearch(search.Forward))
	assert.ErrorIs(t, e.InsertText("x"), ErrInvalidMode)
	assert.ErrorIs(t, e.Undo(), ErrInvalidMode)
	assert.ErrorIs(t, e.EnterTaskMode(), ErrInvalidMode)
	assert.ErrorIs(t, e.MoveDown(), ErrInvalidMode)
	require.NoError(t, e.CancelSearch())

	require.NoError(t, e.EnterTaskMode())
	assert.ErrorIs(t, e.Backspace(), ErrInvalidMode)
	assert.ErrorIs(t, e.BeginFuzzySearch(), ErrInvalidMode)
	assert.Equal(t, "- [ ] a", e.Document().Text())
}

// Task selection

func TestMoveSelectedTaskScenario(t *testing.T) {
	e, _ := newTestEditor(t, "- [ ] buy milk\nnote\n- [ ] pay bill")
	e.SetCursor(pos(0, 3))

	require.NoError(t, e.EnterTaskMode())
	ts, ok := e.Mode().(*TaskSelection)
	require.True(t, ok)
	require.Len(t, ts.Tasks, 2)
	assert.Equal(t, "- [ ] buy milk", ts.Tasks[0].Text)
	assert.Equal(t, "- [ ] pay bill", ts.Tasks[1].Text)

	require.NoError(t, e.TaskDown())
	require.NoError(t, e.MoveSelectedTask())
	assert.Equal(t, []string{"- [ ] pay bill", "- [ ] buy milk", "note"}, e.Document().Lines())
	assert.Equal(t, pos(0, 0), e.Cursor())

	// The list is rescanned and the moved task stays selected.
	require.Len(t, ts.Tasks, 2)
	assert.Equal(t, 0, ts.Tasks[0].Line)
	assert.Equal(t, "- [ ] pay bill", ts.Current().Text)

	require.NoError(t, e.ExitTaskMode())
	assert.Equal(t, ModeNormal, e.Mode().Name())

	assert.Equal(t, 1, e.History().UndoCount())
	require.NoError(t, e.Undo())
	assert.Equal(t, []string{"- [ ] buy milk", "note", "- [ ] pay bill"}, e.Document().Lines())
	assert.Equal(t, pos(0, 3), e.Cursor())

	require.NoError(t, e.Redo())
	assert.Equal(t, []string{"- [ ] pay bill", "- [ ] buy milk", "note"}, e.Document().Lines())
}

func TestMoveSelectedTaskRepeated(t *testing.T) {
	e, _ := newTestEditor(t, "top\n- [ ] a\n- [ ] b\n- [ ] c")
	e.SetCursor(pos(1, 0))

	require.NoError(t, e.EnterTaskMode())
	ts := e.Mode().(*TaskSelection)

	require.NoError(t, e.TaskDown())
	require.NoError(t, e.TaskDown())
	require.NoError(t, e.MoveSelectedTask())
	assert.Equal(t, []string{"top", "- [ ] c", "- [ ] a", "- [ ] b"}, e.Document().Lines())

	require.NoError(t, e.TaskDown())
	require.NoError(t, e.TaskDown())
	assert.Equal(t, "- [ ] b", ts.Current().Text)
	require.NoError(t, e.MoveSelectedTask())
	assert.Equal(t, []string{"top", "- [ ] b", "- [ ] c", "- [ ] a"}, e.Document().Lines())

	require.NoError(t, e.ExitTaskMode())
	assert.Equal(t, 2, e.History().UndoCount(), "each move is its own group")

	require.NoError(t, e.Undo())
	require.NoError(t, e.Undo())
	assert.Equal(t, []string{"top", "- [ ] a", "- [ ] b", "- [ ] c"}, e.Document().Lines())
	assert.Equal(t, pos(1, 0), e.Cursor())
}

func TestMoveSelectedTaskAlreadyAtTop(t *testing.T) {
	e, _ := newTestEditor(t, "- [ ] a\n- [ ] b")

	require.NoError(t, e.EnterTaskMode())
	require.NoError(t, e.MoveSelectedTask())
	assert.Equal(t, "- [ ] a\n- [ ] b", e.Document().Text())
	assert.False(t, e.History().CanUndo())
}

func TestTaskSelectionClamps(t *testing.T) {
	e, _ := newTestEditor(t, "- [ ] a\n- [ ] b")

	require.NoError(t, e.EnterTaskMode())
	ts := e.Mode().(*TaskSelection)

	require.NoError(t, e.TaskUp())
	assert.Equal(t, 0, ts.Selected)
	require.NoError(t, e.TaskDown())
	require.NoError(t, e.TaskDown())
	assert.Equal(t, 1, ts.Selected)
}

func TestTaskSelectionEnsureVisible(t *testing.T) {
	ts := &TaskSelection{Selected: 5}
	ts.EnsureVisible(3)
	assert.Equal(t, 3, ts.Offset)

	ts.Selected = 1
	ts.EnsureVisible(3)
	assert.Equal(t, 1, ts.Offset)
}

func TestEnterTaskModeScansFromCursorLine(t *testing.T) {
	e, _ := newTestEditor(t, "- [ ] a\n- [ ] b\n- [x] done\n- [ ] c")
	e.SetCursor(pos(1, 2))

	require.NoError(t, e.EnterTaskMode())
	ts := e.Mode().(*TaskSelection)
	require.Len(t, ts.Tasks, 2)
	assert.Equal(t, 1, ts.Tasks[0].Line)
	assert.Equal(t, 3, ts.Tasks[1].Line)
	assert.Equal(t, pos(1, 2), ts.Entry)
}

func TestEnterTaskModeNoTasks(t *testing.T) {
	e, _ := newTestEditor(t, "- [ ] above\nnote\n- [x] done")
	e.SetCursor(pos(1, 0))

	assert.ErrorIs(t, e.EnterTaskMode(), ErrNoTasks)
	assert.Equal(t, ModeNormal, e.Mode().Name())
	assert.Equal(t, "No unchecked tasks found below current line.", e.Status())
}

// Incremental search

func TestSearchScenario(t *testing.T) {
	e, _ := newTestEditor(t, "- [ ] buy milk\nnote\n- [ ] pay bill")

	require.NoError(t, e.BeginSearch(search.Forward))
	require.NoError(t, e.AppendQuery("b"))
	assert.Equal(t, pos(0, 6), e.Cursor())

	for _, r := range "ill" {
		require.NoError(t, e.AppendQuery(string(r)))
	}
	assert.Equal(t, pos(2, 10), e.Cursor())

	s := e.Mode().(*Search)
	require.NotNil(t, s.Match)
	assert.Equal(t, 4, s.Match.Len)
	assert.Equal(t, "I-SEARCH: bill", e.Status())

	require.NoError(t, e.CancelSearch())
	assert.Equal(t, pos(0, 0), e.Cursor())
	assert.Equal(t, ModeNormal, e.Mode().Name())
}

func TestSearchConfirmKeepsMatch(t *testing.T) {
	e, _ := newTestEditor(t, "alpha\nbeta")

	require.NoError(t, e.BeginSearch(search.Forward))
	require.NoError(t, e.UpdateQuery("BET"))
	require.NoError(t, e.ConfirmSearch())
	assert.Equal(t, pos(1, 0), e.Cursor())
	assert.Equal(t, ModeNormal, e.Mode().Name())
}

func TestSearchNoMatch(t *testing.T) {
	e, _ := newTestEditor(t, "alpha\nbeta")
	e.SetCursor(pos(0, 1))

	require.NoError(t, e.BeginSearch(search.Forward))
	require.NoError(t, e.AppendQuery("be"))
	assert.Equal(t, pos(1, 0), e.Cursor())

	assert.ErrorIs(t, e.AppendQuery("x"), ErrNoMatch)
	s := e.Mode().(*Search)
	assert.True(t, s.Failed)
	assert.Equal(t, "bex", s.Query)
	assert.Equal(t, pos(1, 0), e.Cursor())
	assert.Equal(t, "I-SEARCH: bex (No match)", e.Status())

	require.NoError(t, e.BackspaceQuery())
	assert.False(t, s.Failed)
	assert.Equal(t, pos(1, 0), e.Cursor())

	require.NoError(t, e.UpdateQuery(""))
	assert.Equal(t, pos(0, 1), e.Cursor())
}

func TestSearchNextWraps(t *testing.T) {
	e, _ := newTestEditor(t, "foo\nfoo")

	require.NoError(t, e.BeginSearch(search.Forward))
	require.NoError(t, e.UpdateQuery("foo"))
	assert.Equal(t, pos(1, 0), e.Cursor(), "a match at the anchor is skipped")

	require.NoError(t, e.SearchNext())
	assert.Equal(t, pos(0, 0), e.Cursor())
	assert.Equal(t, "I-SEARCH: foo (wrapped)", e.Status())

	require.NoError(t, e.SearchPrev())
	assert.Equal(t, pos(1, 0), e.Cursor())
}

func TestSearchBackward(t *testing.T) {
	e, _ := newTestEditor(t, "one two\none two")
	e.SetCursor(pos(1, 7))

	require.NoError(t, e.BeginSearch(search.Backward))
	assert.Equal(t, "I-SEARCH BACKWARD: ", e.Status())
	require.NoError(t, e.UpdateQuery("one"))
	assert.Equal(t, pos(1, 0), e.Cursor())

	require.NoError(t, e.SearchPrev())
	assert.Equal(t, pos(0, 0), e.Cursor())
}

func TestSearchMatches(t *testing.T) {
	e, _ := newTestEditor(t, "ab ab\nAB")
	assert.Empty(t, e.Matches())

	require.NoError(t, e.BeginSearch(search.Forward))
	require.NoError(t, e.UpdateQuery("ab"))
	assert.Len(t, e.Matches(), 3)
}

// Fuzzy search

func TestFuzzyScenario(t *testing.T) {
	e, _ := newTestEditor(t, "the day yesterday\ntoday")

	require.NoError(t, e.BeginFuzzySearch())
	f := e.Mode().(*FuzzySearch)
	require.Len(t, f.Results, 2)
	assert.Equal(t, 0, f.Results[0].Score)

	results, err := e.RankedResults("tdy")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "today", results[0].Text)
	assert.Greater(t, results[0].Score, results[1].Score)

	require.NoError(t, e.ConfirmFuzzy())
	assert.Equal(t, pos(1, 0), e.Cursor())
	assert.Equal(t, ModeNormal, e.Mode().Name())
}

func TestFuzzyNavigationWraps(t *testing.T) {
	e, _ := newTestEditor(t, "a\nb\nc")

	require.NoError(t, e.BeginFuzzySearch())
	f := e.Mode().(*FuzzySearch)

	require.NoError(t, e.FuzzyUp())
	assert.Equal(t, 2, f.Selected)
	require.NoError(t, e.FuzzyDown())
	assert.Equal(t, 0, f.Selected)
}

func TestFuzzyQueryEditing(t *testing.T) {
	e, _ := newTestEditor(t, "apple\nbanana\napricot")

	require.NoError(t, e.BeginFuzzySearch())
	require.NoError(t, e.AppendFuzzyQuery("ap"))
	f := e.Mode().(*FuzzySearch)
	assert.Len(t, f.Results, 2)
	assert.Equal(t, "Fuzzy: ap", e.Status())

	require.NoError(t, e.AppendFuzzyQuery("z"))
	assert.Empty(t, f.Results)

	require.NoError(t, e.BackspaceFuzzyQuery())
	require.NoError(t, e.BackspaceFuzzyQuery())
	require.NoError(t, e.BackspaceFuzzyQuery())
	require.NoError(t, e.BackspaceFuzzyQuery())
	assert.Equal(t, "", f.Query)
	assert.Len(t, f.Results, 3)
}

func TestFuzzyCancelRestoresCursor(t *testing.T) {
	e, _ := newTestEditor(t, "one\ntwo")
	e.SetCursor(pos(1, 2))

	require.NoError(t, e.BeginFuzzySearch())
	_, err := e.RankedResults("one")
	require.NoError(t, err)
	require.NoError(t, e.CancelFuzzy())
	assert.Equal(t, pos(1, 2), e.Cursor())

	require.NoError(t, e.BeginFuzzySearch())
	_, err = e.RankedResults("zzz")
	require.NoError(t, err)
	require.NoError(t, e.ConfirmFuzzy())
	assert.Equal(t, pos(1, 2), e.Cursor(), "no result keeps the cursor")
}

func TestClassify(t *testing.T) {
	e, _ := newTestEditor(t, "")
	assert.Equal(t, "word", e.Classify('a').String())
}
