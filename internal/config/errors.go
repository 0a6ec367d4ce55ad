package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnsupportedFormat is returned for a config file whose extension is
// neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ParseError reports a config file that could not be decoded. Line and
// Column are 1-based and zero when the decoder gave no position.
type ParseError struct {
	Path         string
	Line, Column int
	Message      string
	Err          error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			loc += ":" + strconv.Itoa(e.Column)
		}
	}
	return "config " + loc + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a setting with an invalid value.
type ValidationError struct {
	Path    string // dotted setting path, e.g. "editor.tab_width"
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Path, e.Value, e.Message)
}
