package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/costclip/internal/config"
	"github.com/dshills/costclip/internal/logging"
	"github.com/dshills/costclip/internal/rewrite"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess        = 0
	ExitTransformError = 1
	ExitUsageError     = 2
	ExitRuntimeError   = 4
)

// Flags shared by every command that runs the transform.
var (
	flagCall    string
	flagStrip   string
	flagMacro   string
	flagVerbose bool
	flagQuiet   bool
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "costclip",
	Short: "Rewrite a with(...) requirement list on the clipboard as a cost!(...) call",
	Long: `costclip reads the clipboard, finds the first with(...)); call, and replaces the
clipboard with the same arguments rewritten as a cost!(...) macro call:

  requirements(Category.crafting, with(Items.copper, 75, Items.lead, 30));
  cost!(Copper: 75, Lead: 30)

The clipboard is left untouched if no call is found or the arguments are malformed.`,
	Args: cobra.NoArgs,
	RunE: runClipboard,
}

// Run executes the root command and returns an exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print costclip version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "costclip version %s\n", version)
	},
}

// exitCodeFor maps a failed run to its exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case rewrite.IsTransformError(err):
		return ExitTransformError
	default:
		return ExitRuntimeError
	}
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagCall != "" {
		m["call"] = flagCall
	}
	if flagStrip != "" {
		m["strip"] = flagStrip
	}
	if flagMacro != "" {
		m["macro"] = flagMacro
	}
	switch {
	case flagVerbose:
		m["logLevel"] = logging.LevelDebug
	case flagQuiet:
		m["logLevel"] = logging.LevelNone
	}
	if flagLogFile != "" {
		m["logFile"] = flagLogFile
	}
	return m
}

// session is everything a transform command needs after flags are parsed.
type session struct {
	cfg     config.Config
	log     *zap.Logger
	rw      *rewrite.Rewriter
	cleanup func() error
}

func newSession(overrides map[string]string) (*session, error) {
	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, err
	}
	log, cleanup, err := logging.New(logging.Config{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return nil, fmt.Errorf("preparing logs: %w", err)
	}
	rw, err := rewrite.New(cfg.Rewrite())
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	log.Debug("Configuration loaded",
		zap.String("call", cfg.Call),
		zap.String("strip", cfg.Strip),
		zap.String("macro", cfg.Macro),
		zap.String("format", cfg.Format))
	return &session{cfg: cfg, log: log, rw: rw, cleanup: cleanup}, nil
}

// close flushes the logger. Errors go straight to stderr since the logger
// is no longer usable.
func (s *session) close() {
	if err := s.cleanup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing log: %v\n", err)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCall, "call", "", "Name of the call whose arguments are extracted (default \"with\")")
	pf.StringVar(&flagStrip, "strip", "", "Literal removed from the arguments (default \"Items\")")
	pf.StringVar(&flagMacro, "macro", "", "Macro the result is wrapped in (default \"cost\")")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log every stage of the transform")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Log nothing")
	pf.StringVar(&flagLogFile, "log-file", "", "Also write debug logs to this file")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "Print the result in the configured format instead of writing it to the clipboard")
}
