package app

import (
	"errors"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action names a Normal mode command.
type Action string

// Actions available for binding.
const (
	ActionSave           Action = "save"
	ActionQuit           Action = "quit"
	ActionMoveUp         Action = "move_up"
	ActionMoveDown       Action = "move_down"
	ActionMoveLeft       Action = "move_left"
	ActionMoveRight      Action = "move_right"
	ActionLineStart      Action = "line_start"
	ActionLineEnd        Action = "line_end"
	ActionWordLeft       Action = "word_left"
	ActionWordRight      Action = "word_right"
	ActionPageUp         Action = "page_up"
	ActionPageDown       Action = "page_down"
	ActionFileStart      Action = "file_start"
	ActionFileEnd        Action = "file_end"
	ActionNextSection    Action = "next_section"
	ActionPrevSection    Action = "prev_section"
	ActionMoveLineUp     Action = "move_line_up"
	ActionMoveLineDown   Action = "move_line_down"
	ActionNewline        Action = "newline"
	ActionBackspace      Action = "backspace"
	ActionDeleteForward  Action = "delete_forward"
	ActionDeleteWord     Action = "delete_word"
	ActionKillLine       Action = "kill_line"
	ActionYank           Action = "yank"
	ActionUndo           Action = "undo"
	ActionRedo           Action = "redo"
	ActionIndent         Action = "indent"
	ActionOutdent        Action = "outdent"
	ActionToggleComment  Action = "toggle_comment"
	ActionToggleCheckbox Action = "toggle_checkbox"
	ActionSetMarker      Action = "set_marker"
	ActionClearMarker    Action = "clear_marker"
	ActionCutSelection   Action = "cut_selection"
	ActionCopySelection  Action = "copy_selection"
	ActionSearch         Action = "search"
	ActionReverseSearch  Action = "reverse_search"
	ActionFuzzySearch    Action = "fuzzy_search"
	ActionTaskMode       Action = "task_mode"
)

var knownActions = map[Action]bool{}

func init() {
	for _, a := range []Action{
		ActionSave, ActionQuit,
		ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
		ActionLineStart, ActionLineEnd, ActionWordLeft, ActionWordRight,
		ActionPageUp, ActionPageDown, ActionFileStart, ActionFileEnd,
		ActionNextSection, ActionPrevSection, ActionMoveLineUp, ActionMoveLineDown,
		ActionNewline, ActionBackspace, ActionDeleteForward, ActionDeleteWord,
		ActionKillLine, ActionYank, ActionUndo, ActionRedo,
		ActionIndent, ActionOutdent, ActionToggleComment, ActionToggleCheckbox,
		ActionSetMarker, ActionClearMarker, ActionCutSelection, ActionCopySelection,
		ActionSearch, ActionReverseSearch, ActionFuzzySearch, ActionTaskMode,
	} {
		knownActions[a] = true
	}
}

// IsAction reports whether name is a known action.
func IsAction(name string) bool {
	return knownActions[Action(name)]
}

// Keymap maps key names to Normal mode actions.
type Keymap struct {
	bindings map[string]Action
}

// DefaultKeymap returns the built-in Emacs-style bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{bindings: map[string]Action{
		"alt-s":  ActionSave,
		"ctrl-x": ActionQuit,

		"up":        ActionMoveUp,
		"down":      ActionMoveDown,
		"left":      ActionMoveLeft,
		"right":     ActionMoveRight,
		"ctrl-a":    ActionLineStart,
		"home":      ActionLineStart,
		"ctrl-e":    ActionLineEnd,
		"end":       ActionLineEnd,
		"alt-f":     ActionWordRight,
		"alt-right": ActionWordRight,
		"alt-b":     ActionWordLeft,
		"ctrl-b":    ActionWordLeft,
		"alt-left":  ActionWordLeft,
		"alt-up":    ActionMoveLineUp,
		"alt-down":  ActionMoveLineDown,
		"ctrl-v":    ActionPageDown,
		"pagedown":  ActionPageDown,
		"alt-v":     ActionPageUp,
		"pageup":    ActionPageUp,
		"ctrl-n":    ActionNextSection,
		"ctrl-p":    ActionPrevSection,
		"alt->":     ActionFileEnd,
		"alt-<":     ActionFileStart,

		"enter":         ActionNewline,
		"backspace":     ActionBackspace,
		"delete":        ActionDeleteForward,
		"ctrl-d":        ActionDeleteForward,
		"alt-backspace": ActionDeleteWord,
		"ctrl-k":        ActionKillLine,
		"ctrl-y":        ActionYank,
		"ctrl-_":        ActionUndo,
		"alt-_":         ActionRedo,
		"tab":           ActionIndent,
		"shift-tab":     ActionOutdent,
		"alt-/":         ActionToggleComment,
		"ctrl-t":        ActionToggleCheckbox,

		"ctrl-space": ActionSetMarker,
		"ctrl-g":     ActionClearMarker,
		"ctrl-w":     ActionCutSelection,
		"alt-w":      ActionCopySelection,

		"ctrl-s": ActionSearch,
		"ctrl-r": ActionReverseSearch,
		"ctrl-f": ActionFuzzySearch,
		"alt-t":  ActionTaskMode,
	}}
}

// NewKeymap returns the default bindings with overrides applied. Overrides
// naming an unknown action are skipped and reported together as
// *UnknownActionError values; the returned keymap is usable either way.
func NewKeymap(overrides map[string]string) (*Keymap, error) {
	km := DefaultKeymap()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		if err := km.Bind(k, Action(overrides[k])); err != nil {
			errs = append(errs, err)
		}
	}
	return km, errors.Join(errs...)
}

// Bind binds key to action.
func (k *Keymap) Bind(key string, action Action) error {
	key = normalizeKey(key)
	if !knownActions[action] {
		return &UnknownActionError{Key: key, Action: string(action)}
	}
	k.bindings[key] = action
	return nil
}

// Lookup returns the action bound to key.
func (k *Keymap) Lookup(key string) (Action, bool) {
	a, ok := k.bindings[normalizeKey(key)]
	return a, ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// normalizeKey lowercases modifier prefixes, leaving the key itself alone
// so that "alt-B" and "alt-b" stay distinct.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	for _, p := range []string{"ctrl-", "alt-", "shift-"} {
		if len(key) > len(p) && strings.EqualFold(key[:len(p)], p) {
			return p + normalizeKey(key[len(p):])
		}
	}
	return key
}

// KeyName returns the keymap name of a key event, e.g. "ctrl-s", "alt-f",
// "enter" or a single character.
func KeyName(ev *tcell.EventKey) string {
	mod := ev.Modifiers()
	alt := ""
	if mod&tcell.ModAlt != 0 {
		alt = "alt-"
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if mod&tcell.ModCtrl != 0 {
			// Terminals with extended key reporting send ctrl chords as runes.
			if r == ' ' {
				return "ctrl-space"
			}
			return alt + "ctrl-" + strings.ToLower(string(r))
		}
		return alt + string(r)
	case k == tcell.KeyCtrlSpace:
		return "ctrl-space"
	case k == tcell.KeyTab:
		return "tab"
	case k == tcell.KeyBacktab:
		return "shift-tab"
	case k == tcell.KeyEnter:
		return "enter"
	case k == tcell.KeyEscape:
		return "esc"
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return alt + "backspace"
	case k == tcell.KeyCtrlUnderscore:
		return "ctrl-_"
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return "ctrl-" + string(rune('a'+k-tcell.KeyCtrlA))
	}

	name, ok := specialKeys[k]
	if !ok {
		return ""
	}
	return alt + name
}

var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyHome:   "home",
	tcell.KeyEnd:    "end",
	tcell.KeyPgUp:   "pageup",
	tcell.KeyPgDn:   "pagedown",
	tcell.KeyDelete: "delete",
	tcell.KeyInsert: "insert",
}
