package clipboard

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility or session exists.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Reader reads the current text.
type Reader interface {
	ReadText() (string, error)
}

// Writer replaces the current text.
type Writer interface {
	WriteText(text string) error
}

// ReadWriter is a clipboard that can be read and written.
type ReadWriter interface {
	Reader
	Writer
}

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard, or ErrUnavailable if the platform
// has no usable backend (e.g. Linux without xclip, xsel or wl-clipboard).
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

func (s *System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int

	// ReadErr and WriteErr, when set, are returned instead of touching text.
	ReadErr  error
	WriteErr error
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.text = text
	m.writes++
	return nil
}

// Text returns the current contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Stream reads all of In once and writes text plus a newline to Out.
type Stream struct {
	In  io.Reader
	Out io.Writer
}

func (s *Stream) ReadText() (string, error) {
	data, err := io.ReadAll(s.In)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

func (s *Stream) WriteText(text string) error {
	if _, err := fmt.Fprintln(s.Out, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
