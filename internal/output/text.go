package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/costclip/internal/rewrite"
)

// TextWriter outputs the macro call. With Explain set it first lists the
// extracted body and the rewritten body.
type TextWriter struct {
	Explain bool
}

func (t *TextWriter) Write(w io.Writer, res rewrite.Result) error {
	ew := &errWriter{w: w}

	if t.Explain {
		ew.printf("body:      %s\n", res.Body)
		ew.printf("rewritten: %s\n", res.Output)
		ew.printf("pairs:     %d\n", res.Pairs)
		ew.println(strings.Repeat("─", 40))
	}
	ew.println(res.Formatted)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
