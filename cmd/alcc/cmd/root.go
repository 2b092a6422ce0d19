package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/alcc/foundation/core/config"
	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/foundation/rlang"
	"github.com/msto63/alcc/internal/render"
	"github.com/msto63/alcc/pkg/core/logging"
)

// sampleSource is evaluated when no source is given
const sampleSource = "1 + (10 /     100 -              1) "

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("diagnostics reported")

// app holds what every command needs after the configuration is loaded
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg      *config.Config
	logger   *alcclog.Logger
	engine   *rlang.Engine
	renderer *render.Renderer
}

// Execute runs the alcc command line
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "alcc",
		Short: "alcc - rlang toolchain",
		Long: `alcc tokenizes, parses and evaluates rlang, a small language of
integer arithmetic expressions:

  1 + (10 / 100 - 1); 2 * 3

Commands:
  tokens   - show the tokens of a source
  parse    - show the syntax tree of a source
  eval     - evaluate a source
  repl     - interactive read-eval-print loop
  serve    - WebSocket playground`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: alcc.toml|yaml in ., ./config, ~/.config/alcc)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newEvalCmd(a),
		newReplCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup loads the configuration and builds logger, engine and renderer
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(validationRules).Err(); err != nil {
		return err
	}
	a.cfg = cfg

	lc := logging.FromConfig("alcc", cfg)
	lc.Output = cmd.ErrOrStderr()
	if a.verbose {
		lc.Level = alcclog.LevelDebug.String()
	}
	a.logger = logging.NewLogger(lc)

	a.engine = rlang.NewEngine(rlang.Options{
		Logger:          a.logger,
		MaxSourceLength: cfg.GetInt("engine.max_source_length"),
		MaxDepth:        cfg.GetInt("engine.max_depth"),
	})
	a.renderer = render.New(cfg.GetBool("output.color") && !a.noColor)

	a.logger.Debug("configuration loaded", alcclog.Fields{
		"file":   cfg.FilePath(),
		"format": cfg.Format().String(),
	})
	return nil
}

// readSource returns the source given on the command line: the joined
// arguments, standard input for "-", or the sample without arguments
func readSource(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 0:
		return sampleSource, nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	default:
		return strings.Join(args, " "), nil
	}
}

// report prints the diagnostics of err and marks it as reported
func (a *app) report(cmd *cobra.Command, source string, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), a.renderer.Diagnostics(source, err))
	return errReported
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// stdinIsTerminal reports whether standard input is an interactive terminal
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
