// Command fourcc decodes little-endian 32-bit integers into four-character codes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"fourcc/cmd/fourcc/ui"
	"fourcc/internal/config"
	"fourcc/internal/fourcc"
	"fourcc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK         = 0
	exitUsage      = 1 // missing or invalid argument, bad flags, bad config
	exitOutOfRange = 2
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Global flags
	verbose    bool
	configPath string
	format     string

	cfg      *config.Config
	log      *logging.Logger
	registry *fourcc.Registry
	styles   ui.Styles
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	a := &app{}
	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(negativesAsPositional(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	code := exitCode(err)
	if err != nil {
		a.log.Get(logging.CategoryCLI).Debug("command failed", zap.Error(err), zap.Int("exit_code", code))
		fmt.Fprintf(stderr, "fourcc: %v\n", err)
	}
	_ = a.log.Sync()
	return code
}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// negativesAsPositional moves arguments like "-1" behind a "--" so cobra
// hands them to the value parser instead of rejecting them as flags.
// Arguments already after a "--" are left alone.
func negativesAsPositional(args []string) []string {
	var flags, values []string
	for i, arg := range args {
		if arg == "--" {
			if len(values) == 0 {
				return args
			}
			return append(append(append(flags, "--"), values...), args[i+1:]...)
		}
		if negativeNumber.MatchString(arg) {
			values = append(values, arg)
			continue
		}
		flags = append(flags, arg)
	}
	if len(values) == 0 {
		return args
	}
	return append(append(flags, "--"), values...)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, fourcc.ErrOutOfRange):
		return exitOutOfRange
	default:
		return exitUsage
	}
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fourcc <decimal-integer>",
		Short: "Decode a 32-bit integer into its FourCC",
		Long: `Prints the four-character code stored in a little-endian 32-bit integer.

The least significant byte becomes the first character. Every byte is printed
as-is, including NUL and other control bytes; use --format quoted or hex to
see them escaped.

Negative values are rejected as out of range.`,
		Example: `  fourcc 875708993          # AB24
  fourcc --format hex 65     # 0x41 0x00 0x00 0x00
  fourcc encode AB24         # 875708993`,
		Args:              oneValue(fourcc.ErrMissingArgument),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDecode,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $FOURCC_CONFIG or <user config dir>/fourcc/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format: raw, quoted or hex (overrides config)")

	rootCmd.AddCommand(a.newEncodeCmd(), a.newDescribeCmd(), a.newKnownCmd(), a.newConfigCmd())
	return rootCmd
}

// oneValue requires exactly one positional argument, reporting missing as
// the given error.
func oneValue(missing error) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			return missing
		case 1:
			return nil
		default:
			return fmt.Errorf("expected exactly one argument, got %d", len(args))
		}
	}
}

// setup loads config, builds the logger and the known-code registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.log, err = logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: a.verbose,
		Filter:  &cfg.Logging,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.registry, err = fourcc.NewRegistry(cfg.Codes)
	if err != nil {
		return err
	}
	a.styles = ui.DefaultStyles()

	a.log.Get(logging.CategoryConfig).Debug("configuration loaded",
		zap.String("path", path),
		zap.String("format", cfg.Output.Format),
		zap.Int("known_codes", a.registry.Len()),
	)
	return nil
}

func (a *app) runDecode(cmd *cobra.Command, args []string) error {
	log := a.log.Get(logging.CategoryDecode)

	code, err := fourcc.DecodeString(args[0])
	if err != nil {
		log.Debug("rejected input", zap.String("input", args[0]), zap.Stringer("kind", fourcc.KindOf(err)))
		return err
	}
	log.Debug("decoded",
		zap.Uint32("value", code.Uint32()),
		zap.String("code", code.Format(fourcc.FormatQuoted)),
	)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), code.Format(a.cfg.OutputFormat()))
	return err
}
