package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/paisley/rocdate/foundation/core/config"
	"github.com/paisley/rocdate/foundation/core/log"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

// app is the state shared by all commands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	lang      string
	logFormat string

	settings config.Settings
	locale   language.Tag
	logger   *log.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rocdate",
		Short: "Gregorian and ROC (Minguo) date conversion",
		Long: `rocdate converts between text, Gregorian dates and the ROC (民國)
calendar using Java-style date patterns.

Patterns:
  yyyy-MM-dd          2024-01-31
  yyy/MM/dd           113/01/31   (ROC year with toroc/toad)
  Gy年M月d日          民國113年1月31日
  yyyy-MM-dd HH:mm:ss 2024-01-31 15:04:05

Configuration is read from rocdate.toml or rocdate.yaml in the working
directory, ./configs or the user config directory. Every key can be
overridden with a ROCDATE_ environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered rocdate.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&a.lang, "lang", "zh-TW", "language for month, weekday and era names")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json or logfmt (overrides config)")

	root.AddCommand(
		newNowCmd(a),
		newFormatCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newToRocCmd(a),
		newToAdCmd(a),
		newReformatCmd(a),
		newBetweenCmd(a),
		newMonthCmd(a),
		newNumberCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI against os.Args
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error: "+err.Error()))
}

// setup loads configuration and builds the invocation logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.settings, err = cfg.Settings(); err != nil {
		return err
	}

	if a.logFormat != "" {
		if a.settings.LogFormat, err = log.ParseFormat(a.logFormat); err != nil {
			return err
		}
	}
	level := a.settings.LogLevel
	if a.verbose {
		level = log.LevelDebug
	}

	if a.locale, err = language.Parse(a.lang); err != nil {
		return fmt.Errorf("invalid --lang %q: %w", a.lang, err)
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: a.settings.LogFormat,
		Output: cmd.ErrOrStderr(),
		Name:   cmd.Name(),
	}).WithCorrelationID(uuid.NewString())

	a.logger.Debug("configuration loaded", log.Fields{
		"config":  cfg.FilePath(),
		"zone":    a.settings.Zone.String(),
		"locale":  a.locale.String(),
		"pattern": a.settings.DatePattern,
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.EnvPrefix,
			Defaults:  config.DefaultValues(),
		})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// fail logs err with its code and severity and hands it back to cobra
func (a *app) fail(err error) error {
	a.logger.LogError(err)
	return err
}

// compile validates a user-supplied pattern before it reaches the
// panicking package-level helpers
func (a *app) compile(patterns ...string) error {
	for _, p := range patterns {
		if _, err := timex.CompilePattern(p); err != nil {
			return a.fail(err)
		}
	}
	return nil
}

// formatter builds a formatter for the --lang locale
func (a *app) formatter(pattern string, chrono timex.Chronology) (*timex.Formatter, error) {
	f, err := timex.NewFormatter(pattern, timex.WithLocale(a.locale), timex.WithChronology(chrono))
	if err != nil {
		return nil, a.fail(err)
	}
	return f, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
