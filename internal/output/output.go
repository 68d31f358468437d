package output

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/dshills/costclip/internal/rewrite"
)

// Formats lists the accepted format names.
var Formats = []string{"text", "explain", "json"}

// Writer writes a result in a specific format.
type Writer interface {
	Write(w io.Writer, res rewrite.Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "explain":
		return &TextWriter{Explain: true}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult writes the result to the specified output (file path or stdout).
func WriteResult(res rewrite.Result, format, outPath string) (err error) {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writer.Write(os.Stdout, res)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return writer.Write(f, res)
}
