package editor

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no system clipboard is available.
var ErrClipboardUnsupported = errors.New("clipboard unsupported")

// Clipboard exchanges killed text with the outside world.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard.
type SystemClipboard struct{}

// ReadAll returns the clipboard contents.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard contents.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard is an in-process clipboard.
type MemoryClipboard struct {
	text string
}

// ReadAll returns the stored text.
func (c *MemoryClipboard) ReadAll() (string, error) {
	return c.text, nil
}

// WriteAll stores text.
func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}
