package clipboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMemory_ReadWrite(t *testing.T) {
	m := NewMemory("with(a,1));")

	got, err := m.ReadText()
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	if got != "with(a,1));" {
		t.Errorf("ReadText = %q", got)
	}
	if m.Writes() != 0 {
		t.Errorf("Writes = %d, want 0", m.Writes())
	}

	if err := m.WriteText("cost!(a:1)"); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	if m.Text() != "cost!(a:1)" {
		t.Errorf("Text = %q, want %q", m.Text(), "cost!(a:1)")
	}
	if m.Writes() != 1 {
		t.Errorf("Writes = %d, want 1", m.Writes())
	}
}

func TestMemory_Errors(t *testing.T) {
	readErr := errors.New("no session")
	m := NewMemory("keep")
	m.ReadErr = readErr
	if _, err := m.ReadText(); !errors.Is(err, readErr) {
		t.Errorf("ReadText error = %v, want %v", err, readErr)
	}

	writeErr := errors.New("denied")
	m = NewMemory("keep")
	m.WriteErr = writeErr
	if err := m.WriteText("new"); !errors.Is(err, writeErr) {
		t.Errorf("WriteText error = %v, want %v", err, writeErr)
	}
	if m.Text() != "keep" || m.Writes() != 0 {
		t.Errorf("failed write changed clipboard: text=%q writes=%d", m.Text(), m.Writes())
	}
}

func TestStream(t *testing.T) {
	var out bytes.Buffer
	s := &Stream{In: strings.NewReader("line one\nline two"), Out: &out}

	got, err := s.ReadText()
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	if got != "line one\nline two" {
		t.Errorf("ReadText = %q", got)
	}

	if err := s.WriteText("cost!(X:1)"); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	if out.String() != "cost!(X:1)\n" {
		t.Errorf("output = %q, want %q", out.String(), "cost!(X:1)\n")
	}
}

func TestInterfaces(t *testing.T) {
	var _ ReadWriter = (*System)(nil)
	var _ ReadWriter = (*Memory)(nil)
	var _ ReadWriter = (*Stream)(nil)
}
