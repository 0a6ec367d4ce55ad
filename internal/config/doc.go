// Package config loads taskpad settings.
//
// Settings come from a single file, TOML or YAML by extension, laid over
// built-in defaults. A missing file is not an error. Keys the file does not
// set keep their default values; unknown keys are rejected so typos surface
// at load time.
//
//	[undo]
//	grouping_interval = "500ms"
//	max_entries = 1000
//
//	[editor]
//	tab_width = 4
//	indent_width = 2
//	clipboard = true
//	task_pane_ratio = 0.4
//
//	[log]
//	level = "info"
//	file = "/tmp/taskpad.log"
//
//	[keymap]
//	"ctrl-o" = "save"
//
// A Watcher reloads the file when it changes and delivers validated
// configurations on a channel.
package config
