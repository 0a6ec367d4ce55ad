package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings.
type Config struct {
	Undo   UndoConfig   `toml:"undo" yaml:"undo"`
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Log    LogConfig    `toml:"log" yaml:"log"`

	// Keymap maps key names such as "ctrl-s" to action names. Entries
	// override the default bindings.
	Keymap map[string]string `toml:"keymap" yaml:"keymap"`
}

// UndoConfig configures undo grouping.
type UndoConfig struct {
	// GroupingInterval is the maximum gap between edits that are undone
	// together.
	GroupingInterval Duration `toml:"grouping_interval" yaml:"grouping_interval"`

	// MaxEntries caps the number of undo groups kept.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// EditorConfig configures editing and layout.
type EditorConfig struct {
	TabWidth    int  `toml:"tab_width" yaml:"tab_width"`
	IndentWidth int  `toml:"indent_width" yaml:"indent_width"`
	Clipboard   bool `toml:"clipboard" yaml:"clipboard"`

	// TaskPaneRatio is the share of the screen height used by the task
	// and fuzzy panes.
	TaskPaneRatio float64 `toml:"task_pane_ratio" yaml:"task_pane_ratio"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Undo: UndoConfig{
			GroupingInterval: Duration(500 * time.Millisecond),
			MaxEntries:       1000,
		},
		Editor: EditorConfig{
			TabWidth:      4,
			IndentWidth:   2,
			Clipboard:     true,
			TaskPaneRatio: 0.4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LogLevels are the accepted values of Log.Level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks every setting and returns all problems found, each as a
// *ValidationError.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.Undo.GroupingInterval < 0 {
		add("undo.grouping_interval", "must not be negative", c.Undo.GroupingInterval)
	}
	if c.Undo.MaxEntries <= 0 {
		add("undo.max_entries", "must be positive", c.Undo.MaxEntries)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		add("editor.tab_width", "must be between 1 and 16", c.Editor.TabWidth)
	}
	if c.Editor.IndentWidth < 1 || c.Editor.IndentWidth > 16 {
		add("editor.indent_width", "must be between 1 and 16", c.Editor.IndentWidth)
	}
	if c.Editor.TaskPaneRatio <= 0 || c.Editor.TaskPaneRatio >= 1 {
		add("editor.task_pane_ratio", "must be between 0 and 1 exclusive", c.Editor.TaskPaneRatio)
	}
	if !validLevel(c.Log.Level) {
		add("log.level", "must be one of "+strings.Join(LogLevels, ", "), c.Log.Level)
	}
	for k, v := range c.Keymap {
		if strings.TrimSpace(k) == "" {
			add("keymap", "empty key", k)
		}
		if strings.TrimSpace(v) == "" {
			add("keymap."+k, "empty action", v)
		}
	}
	return errors.Join(errs...)
}

func validLevel(s string) bool {
	for _, l := range LogLevels {
		if strings.EqualFold(s, l) {
			return true
		}
	}
	return false
}

// Duration is a time.Duration written as a string such as "500ms".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
