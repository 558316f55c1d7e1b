// Package clipboard copies generated text to a clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer places text on a clipboard
type Writer interface {
	Copy(text string) error
}

// System writes to the operating system clipboard
type System struct{}

// NewSystem returns the OS clipboard, or ErrUnsupported when none is usable
// (for example xclip/xsel/wl-copy missing on Linux).
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnsupported
	}
	return &System{}, nil
}

// Copy implements Writer
func (s *System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard used by tests and headless runs
type Memory struct {
	mu     sync.Mutex
	text   string
	copies int
}

// Copy implements Writer
func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.text = text
	m.copies++
	return nil
}

// Text returns the last copied text
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Copies returns how many times Copy was called
func (m *Memory) Copies() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copies
}
