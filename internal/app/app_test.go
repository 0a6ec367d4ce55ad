package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/taskpad/internal/config"
	"github.com/dshills/taskpad/internal/editor"
	"github.com/dshills/taskpad/internal/engine/document"
	"github.com/dshills/taskpad/internal/engine/history"
)

type testApp struct {
	*App
	screen tcell.SimulationScreen
	path   string
}

// newTestApp opens a session on a file containing text. An empty text
// leaves the file missing.
func newTestApp(t *testing.T, text string, cfg *config.Config) *testApp {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	if text != "" {
		require.NoError(t, os.WriteFile(path, []byte(text+"\n"), 0o644))
	}

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 12)
	t.Cleanup(s.Fini)

	a, err := New(s, Options{
		Path:      path,
		Config:    cfg,
		Clipboard: &editor.MemoryClipboard{},
		Clock:     history.NewManualClock(time.Time{}),
	})
	require.NoError(t, err)
	return &testApp{App: a, screen: s, path: path}
}

func (ta *testApp) key(k tcell.Key) bool {
	return ta.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (ta *testApp) alt(r rune) bool {
	return ta.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt))
}

func (ta *testApp) typeText(s string) {
	for _, r := range s {
		ta.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func (ta *testApp) statusRow() string {
	cells, w, h := ta.screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[(h-1)*w+x]
		if len(c.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimSpace(b.String())
}

func TestNewRequiresScreen(t *testing.T) {
	_, err := New(nil, Options{})
	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "screen", ie.Component)
}

func TestNewLoadsFile(t *testing.T) {
	ta := newTestApp(t, "- [ ] one\n- [ ] two", nil)

	assert.Equal(t, "- [ ] one\n- [ ] two", ta.Editor().Document().Text())
	assert.False(t, ta.Modified())
	assert.Equal(t, config.Default(), ta.Config())
}

func TestTypeAndSave(t *testing.T) {
	ta := newTestApp(t, "", nil)

	ta.typeText("hi")
	ta.key(tcell.KeyEnter)
	ta.typeText("there")
	assert.True(t, ta.Modified())

	ta.Draw()
	assert.Contains(t, ta.statusRow(), "notes.md *")

	assert.False(t, ta.alt('s'))
	assert.False(t, ta.Modified())
	assert.Equal(t, "Wrote "+ta.path, ta.Editor().Status())

	data, err := os.ReadFile(ta.path)
	require.NoError(t, err)
	assert.Equal(t, "hi\nthere\n", string(data))
}

func TestUndoKey(t *testing.T) {
	ta := newTestApp(t, "", nil)
	ta.typeText("abc")

	ta.key(tcell.KeyCtrlUnderscore)
	assert.Equal(t, "", ta.Editor().Document().Text())

	ta.alt('_')
	assert.Equal(t, "abc", ta.Editor().Document().Text())
}

func TestQuit(t *testing.T) {
	t.Run("unmodified", func(t *testing.T) {
		ta := newTestApp(t, "text", nil)
		assert.True(t, ta.key(tcell.KeyCtrlX))
	})

	t.Run("modified asks twice", func(t *testing.T) {
		ta := newTestApp(t, "text", nil)
		ta.typeText("!")

		assert.False(t, ta.key(tcell.KeyCtrlX))
		assert.Contains(t, ta.Editor().Status(), "Unsaved changes")
		assert.True(t, ta.key(tcell.KeyCtrlX))
	})

	t.Run("other key cancels", func(t *testing.T) {
		ta := newTestApp(t, "text", nil)
		ta.typeText("!")

		assert.False(t, ta.key(tcell.KeyCtrlX))
		ta.key(tcell.KeyLeft)
		assert.False(t, ta.key(tcell.KeyCtrlX))
	})
}

func TestSearchKeys(t *testing.T) {
	ta := newTestApp(t, "alpha\nbeta\nalphabet", nil)

	ta.key(tcell.KeyCtrlS)
	require.IsType(t, &editor.Search{}, ta.Editor().Mode())
	ta.typeText("alph")
	assert.Equal(t, document.Position{Line: 2, Column: 0}, ta.Editor().Cursor())

	ta.key(tcell.KeyEnter)
	assert.Equal(t, editor.Normal{}, ta.Editor().Mode())
	assert.Equal(t, document.Position{Line: 2, Column: 0}, ta.Editor().Cursor())

	ta.key(tcell.KeyCtrlR)
	ta.typeText("beta")
	assert.Equal(t, document.Position{Line: 1, Column: 0}, ta.Editor().Cursor())
	ta.key(tcell.KeyEscape)
	assert.Equal(t, document.Position{Line: 2, Column: 0}, ta.Editor().Cursor())
}

func TestSearchOtherKeyConfirms(t *testing.T) {
	ta := newTestApp(t, "alpha\nbeta", nil)

	ta.key(tcell.KeyCtrlS)
	ta.typeText("beta")
	ta.key(tcell.KeyRight)

	assert.Equal(t, editor.Normal{}, ta.Editor().Mode())
	assert.Equal(t, document.Position{Line: 1, Column: 1}, ta.Editor().Cursor())
}

func TestSearchNoMatchIsQuiet(t *testing.T) {
	ta := newTestApp(t, "alpha", nil)

	ta.key(tcell.KeyCtrlS)
	ta.typeText("zz")
	assert.Equal(t, "I-SEARCH: zz (No match)", ta.Editor().Status())
}

func TestTaskKeys(t *testing.T) {
	ta := newTestApp(t, "- [ ] a\nnote\n- [ ] b", nil)

	ta.alt('t')
	tm, ok := ta.Editor().Mode().(*editor.TaskSelection)
	require.True(t, ok)
	assert.Len(t, tm.Tasks, 2)

	ta.key(tcell.KeyDown)
	assert.Equal(t, 1, tm.Selected)

	ta.typeText(" ")
	assert.Equal(t, "- [ ] b\n- [ ] a\nnote", ta.Editor().Document().Text())

	ta.key(tcell.KeyEscape)
	assert.Equal(t, editor.Normal{}, ta.Editor().Mode())
}

func TestTaskCommandKey(t *testing.T) {
	ta := newTestApp(t, "\n- [ ] a", nil)
	ta.typeText("/task")
	ta.key(tcell.KeyEnter)

	require.IsType(t, &editor.TaskSelection{}, ta.Editor().Mode())
	assert.Equal(t, "\n- [ ] a", ta.Editor().Document().Text())
}

func TestTaskModeWithoutTasks(t *testing.T) {
	ta := newTestApp(t, "plain", nil)

	assert.False(t, ta.alt('t'))
	assert.Equal(t, editor.Normal{}, ta.Editor().Mode())
	assert.Equal(t, "No unchecked tasks found below current line.", ta.Editor().Status())
}

func TestFuzzyKeys(t *testing.T) {
	ta := newTestApp(t, "alpha\nbeta", nil)

	ta.key(tcell.KeyCtrlF)
	require.IsType(t, &editor.FuzzySearch{}, ta.Editor().Mode())
	ta.typeText("bt")
	ta.key(tcell.KeyEnter)

	assert.Equal(t, editor.Normal{}, ta.Editor().Mode())
	assert.Equal(t, document.Position{Line: 1, Column: 0}, ta.Editor().Cursor())
}

func TestPaste(t *testing.T) {
	ta := newTestApp(t, "", nil)

	ta.HandleEvent(tcell.NewEventPaste(true))
	ta.typeText("a")
	ta.key(tcell.KeyEnter)
	ta.typeText("b")
	ta.HandleEvent(tcell.NewEventPaste(false))

	assert.Equal(t, "a\nb", ta.Editor().Document().Text())
	assert.Equal(t, 1, ta.Editor().History().UndoCount())
}

func TestApplyConfig(t *testing.T) {
	ta := newTestApp(t, "text", nil)

	cfg := config.Default()
	cfg.Undo.GroupingInterval = config.Duration(2 * time.Second)
	cfg.Keymap = map[string]string{"ctrl-o": "save"}
	ta.HandleEvent(tcell.NewEventInterrupt(cfg))

	assert.Equal(t, 2*time.Second, ta.Editor().History().GroupingInterval())
	assert.Equal(t, "Config reloaded.", ta.Editor().Status())
	assert.Same(t, cfg, ta.Config())

	ta.typeText("!")
	ta.key(tcell.KeyCtrlO)
	assert.False(t, ta.Modified())
}

func TestApplyConfigRejectsInvalid(t *testing.T) {
	ta := newTestApp(t, "text", nil)

	cfg := config.Default()
	cfg.Editor.TabWidth = 0
	ta.ApplyConfig(cfg)

	assert.True(t, strings.HasPrefix(ta.Editor().Status(), "Config rejected"))
	assert.NotSame(t, cfg, ta.Config())
}

func TestUnknownKeymapAction(t *testing.T) {
	cfg := config.Default()
	cfg.Keymap = map[string]string{"ctrl-o": "explode"}
	ta := newTestApp(t, "text", cfg)

	assert.Contains(t, ta.Editor().Status(), "Keymap")
	assert.Contains(t, ta.Editor().Status(), "explode")
}

func TestInterrupts(t *testing.T) {
	ta := newTestApp(t, "text", nil)

	assert.False(t, ta.HandleEvent(tcell.NewEventInterrupt(errors.New("boom"))))
	assert.Equal(t, "Config: boom", ta.Editor().Status())

	assert.True(t, ta.HandleEvent(tcell.NewEventInterrupt(context.Canceled)))
}

func TestRunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[undo]\ngrouping_interval = \"1s\"\n"), 0o644))

	s := tcell.NewSimulationScreen("UTF-8")
	s.SetSize(40, 10)
	a, err := New(s, Options{Path: filepath.Join(dir, "notes.md"), ConfigPath: cfgPath})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
