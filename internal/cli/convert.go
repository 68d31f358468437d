package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dshills/costclip/internal/clipboard"
	"github.com/dshills/costclip/internal/output"
	"github.com/dshills/costclip/internal/rewrite"
)

var (
	flagIn     string
	flagOut    string
	flagFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert text from stdin or a file instead of the clipboard",
	Long: `Convert reads the whole input, runs the same transform as the root command and
prints the result. The clipboard is never touched.

  echo 'with(Items.copper, 75));' | costclip convert
  costclip convert --in Blocks.java --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := buildOverrides()
		if flagFormat != "" {
			overrides["format"] = flagFormat
		}
		s, err := newSession(overrides)
		if err != nil {
			return err
		}
		defer s.close()

		in, closeIn, err := openInput(cmd, flagIn)
		if err != nil {
			s.log.Error("Unable to open input", zap.Error(err))
			exitCode = ExitRuntimeError
			return nil
		}
		if in == os.Stdin && stdinIsTerminal() {
			s.log.Info("Reading from terminal, finish with Ctrl-D")
		}

		res, err := readAndTransform(&clipboard.Stream{In: in}, s.rw, s.log)
		if cerr := closeIn(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("closing input: %w", cerr))
		}
		if err != nil {
			exitCode = exitCodeFor(err)
			return nil
		}

		if err := writeConverted(cmd.OutOrStdout(), res, s.cfg.Format, flagOut); err != nil {
			s.log.Error("Unable to write output", zap.Error(err))
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func writeConverted(stdout io.Writer, res rewrite.Result, format, outPath string) error {
	if outPath != "" {
		return output.WriteResult(res, format, outPath)
	}
	w, err := output.GetWriter(format)
	if err != nil {
		return err
	}
	return w.Write(stdout, res)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, f.Close, nil
}

func init() {
	convertCmd.Flags().StringVar(&flagIn, "in", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	convertCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, explain, json)")
}
