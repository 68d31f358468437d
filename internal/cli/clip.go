package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/costclip/internal/clipboard"
	"github.com/dshills/costclip/internal/redact"
	"github.com/dshills/costclip/internal/rewrite"
)

var flagDryRun bool

// openClipboard is replaced in tests.
var openClipboard = func() (clipboard.ReadWriter, error) {
	sys, err := clipboard.NewSystem()
	if err != nil {
		return nil, err
	}
	return sys, nil
}

func runClipboard(cmd *cobra.Command, args []string) error {
	s, err := newSession(buildOverrides())
	if err != nil {
		return err
	}
	defer s.close()

	cb, err := openClipboard()
	if err != nil {
		s.log.Error("Clipboard unavailable", zap.Error(err))
		exitCode = ExitRuntimeError
		return nil
	}

	if flagDryRun {
		return dryRun(cmd, cb, s)
	}

	if _, err := transformText(cb, cb, s.rw, s.log); err != nil {
		exitCode = exitCodeFor(err)
		return nil
	}
	return nil
}

// dryRun prints the result in the configured format instead of storing it.
func dryRun(cmd *cobra.Command, src clipboard.Reader, s *session) error {
	res, err := readAndTransform(src, s.rw, s.log)
	if err != nil {
		exitCode = exitCodeFor(err)
		return nil
	}
	if err := writeConverted(cmd.OutOrStdout(), res, s.cfg.Format, ""); err != nil {
		s.log.Error("Unable to write output", zap.Error(err))
		exitCode = ExitRuntimeError
	}
	return nil
}

// transformText reads src once, transforms it and writes the macro call to
// dst once. Nothing is written when reading or the transform fails.
func transformText(src clipboard.Reader, dst clipboard.Writer, rw *rewrite.Rewriter, log *zap.Logger) (rewrite.Result, error) {
	res, err := readAndTransform(src, rw, log)
	if err != nil {
		return rewrite.Result{}, err
	}
	if err := dst.WriteText(res.Formatted); err != nil {
		log.Error("Unable to write result", zap.Error(err))
		return rewrite.Result{}, fmt.Errorf("storing result: %w", err)
	}
	log.Info("Converted", zap.String("result", res.Formatted))
	return res, nil
}

func readAndTransform(src clipboard.Reader, rw *rewrite.Rewriter, log *zap.Logger) (rewrite.Result, error) {
	raw, err := src.ReadText()
	if err != nil {
		log.Error("Unable to read input", zap.Error(err))
		return rewrite.Result{}, err
	}
	log.Debug("Input read", zap.Int("bytes", len(raw)), zap.Int("runes", utf8.RuneCountInString(raw)))

	res, err := rw.Transform(raw)
	if err != nil {
		log.Error("Transform failed", zap.Error(err))
		log.Debug("Input preview", zap.String("text", redact.Preview(raw, redact.DefaultPreviewRunes)))
		return rewrite.Result{}, err
	}
	log.Debug("Arguments rewritten",
		zap.String("body", res.Body),
		zap.String("rewritten", res.Output),
		zap.Int("pairs", res.Pairs))
	return res, nil
}

// stdinIsTerminal reports whether stdin is an interactive terminal rather
// than a pipe or file.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
