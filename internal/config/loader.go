package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskpad", "config.toml"), nil
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults. The result is not validated.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data, format)
}

// Parse decodes data over the defaults. source names the data in errors.
func Parse(source string, data []byte, format Format) (*Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatTOML:
		err = parseTOML(data, cfg)
	case FormatYAML:
		err = parseYAML(data, cfg)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, newParseError(source, err)
	}
	return cfg, nil
}

func parseTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func parseYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
		pe.Message = derr.Error()
	}
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) && len(serr.Errors) > 0 {
		pe.Line, pe.Column = serr.Errors[0].Position()
		pe.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
	}
	return pe
}
