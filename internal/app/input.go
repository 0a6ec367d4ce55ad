package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/taskpad/internal/editor"
)

// handleKey routes a key to the handler of the active mode.
func (a *App) handleKey(ev *tcell.EventKey) error {
	if a.pasting {
		a.pasteKey(ev)
		return nil
	}
	name := KeyName(ev)
	switch a.editor.Mode().(type) {
	case *editor.Search:
		return a.searchKey(ev, name)
	case *editor.TaskSelection:
		return a.taskKey(name)
	case *editor.FuzzySearch:
		return a.fuzzyKey(ev, name)
	default:
		return a.normalKey(ev, name)
	}
}

// plainRune returns the rune of an unmodified character key.
func plainRune(ev *tcell.EventKey) (rune, bool) {
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return 0, false
	}
	return ev.Rune(), true
}

func (a *App) normalKey(ev *tcell.EventKey, name string) error {
	action, ok := a.keymap.Lookup(name)
	if action != ActionQuit {
		a.quitPending = false
	}
	if ok {
		return a.run(action)
	}
	if r, ok := plainRune(ev); ok {
		return a.editor.InsertText(string(r))
	}
	if name != "" {
		a.logger.Debug("unbound key", "key", name)
	}
	return nil
}

func (a *App) searchKey(ev *tcell.EventKey, name string) error {
	switch name {
	case "esc", "ctrl-g":
		return a.editor.CancelSearch()
	case "enter":
		return a.editor.ConfirmSearch()
	case "ctrl-s":
		return a.editor.SearchNext()
	case "ctrl-r":
		return a.editor.SearchPrev()
	case "backspace":
		return a.editor.BackspaceQuery()
	}
	if r, ok := plainRune(ev); ok {
		return a.editor.AppendQuery(string(r))
	}
	// Any other key ends the search at the match and runs as usual.
	if err := a.editor.ConfirmSearch(); err != nil {
		return err
	}
	return a.normalKey(ev, name)
}

func (a *App) taskKey(name string) error {
	var err error
	switch name {
	case "up", "ctrl-p", "k":
		err = a.editor.TaskUp()
	case "down", "ctrl-n", "j":
		err = a.editor.TaskDown()
	case " ", "m":
		err = a.editor.MoveSelectedTask()
	case "esc", "enter", "ctrl-g", "q":
		return a.editor.ExitTaskMode()
	default:
		return nil
	}
	if t, ok := a.editor.Mode().(*editor.TaskSelection); ok {
		t.EnsureVisible(a.renderer.PaneItemRows(t))
	}
	return err
}

func (a *App) fuzzyKey(ev *tcell.EventKey, name string) error {
	switch name {
	case "up", "ctrl-p":
		return a.editor.FuzzyUp()
	case "down", "ctrl-n":
		return a.editor.FuzzyDown()
	case "enter":
		return a.editor.ConfirmFuzzy()
	case "esc", "ctrl-g":
		return a.editor.CancelFuzzy()
	case "backspace":
		return a.editor.BackspaceFuzzyQuery()
	}
	if r, ok := plainRune(ev); ok {
		return a.editor.AppendFuzzyQuery(string(r))
	}
	return nil
}

// handlePaste collects the keys of a bracketed paste and inserts them as
// one edit when the paste ends.
func (a *App) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		a.pasting = true
		a.paste = a.paste[:0]
		return
	}
	a.pasting = false
	if len(a.paste) == 0 {
		return
	}
	text := string(a.paste)
	a.paste = a.paste[:0]

	var err error
	switch a.editor.Mode().(type) {
	case editor.Normal:
		err = a.editor.InsertText(text)
	case *editor.Search:
		err = a.editor.AppendQuery(text)
	case *editor.FuzzySearch:
		err = a.editor.AppendFuzzyQuery(text)
	}
	a.report(err)
}

func (a *App) pasteKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		a.paste = append(a.paste, ev.Rune())
	case tcell.KeyEnter:
		a.paste = append(a.paste, '\n')
	case tcell.KeyTab:
		a.paste = append(a.paste, '\t')
	}
}
