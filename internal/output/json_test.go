package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/costclip/internal/rewrite"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	// Verify it's valid JSON
	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if parsed["formatted"] != "cost!(Copper: 75, Lead: 30)" {
		t.Errorf("formatted = %v", parsed["formatted"])
	}
	if parsed["body"] != ".copper, 75, .lead, 30" {
		t.Errorf("body = %v", parsed["body"])
	}
	if parsed["pairs"] != float64(2) {
		t.Errorf("pairs = %v, want 2", parsed["pairs"])
	}
	if _, ok := parsed["Input"]; ok {
		t.Error("raw input should not be serialized")
	}
}

func TestWriteResult_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteResult(sampleResult(), "json", path); err != nil {
		t.Fatalf("WriteResult error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var parsed rewrite.Result
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.Output != "Copper: 75, Lead: 30" {
		t.Errorf("Output = %q", parsed.Output)
	}
}

func TestWriteResult_BadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteResult(sampleResult(), "xml", path); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("output file should not be created for an unsupported format")
	}
}
