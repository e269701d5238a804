package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	pi "github.com/hellpig/calculate-pi"
	"github.com/hellpig/calculate-pi/internal/config"
	"github.com/hellpig/calculate-pi/internal/logging"
)

// flags holds the command line flags of the root command.
type flags struct {
	cfgFile  string
	verbose  bool
	backend  string
	rounding string
	progress bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	f := &flags{}
	c := &cobra.Command{
		Use:   "calculate-pi <digits> [base]",
		Short: "Prints the digits of pi in any base",
		Long: `calculate-pi prints pi to the requested number of fractional digits
in any base from 2 to 62, using the Bailey-Borwein-Plouffe series.

Both arguments are given in base 10. The base defaults to 10.
Digits above 9 are written 0-9A-Z up to base 36, and 0-9A-Za-z above.
Running time grows with the square of the digit count.

Examples:
  calculate-pi 10        # 3.1415926535
  calculate-pi 8 16      # 3.243F6A88
  calculate-pi 16 2      # 11.0010010000111111`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	c.PersistentFlags().StringVar(&f.cfgFile, "config", "", "config file, TOML or YAML (default: $"+config.EnvPath+")")
	c.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	c.Flags().StringVar(&f.backend, "backend", "", "arithmetic backend (default: float)")
	c.Flags().StringVar(&f.rounding, "round", "", "rounding of the last digit: truncate or half-even (default: truncate)")
	c.Flags().BoolVar(&f.progress, "progress", false, "report summation progress on stderr")

	c.AddCommand(newVersionCmd())
	return c
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := config.Load(config.Path(f.cfgFile))
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if f.verbose {
		level = "debug"
	}
	logger, err := logging.NewWithWriter(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync()
	pi.SetLogger(logger)

	base := strconv.Itoa(cfg.Base)
	if len(args) > 1 {
		base = args[1]
	}
	req, err := pi.ParseRequest(args[0], base)
	if err != nil {
		return err
	}

	opts, err := options(cmd, f, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	d, err := pi.Calculate(req, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
	report(cmd.OutOrStdout(), start, time.Now())
	return nil
}

// options merges the flags over the config file settings.
func options(cmd *cobra.Command, f *flags, cfg *config.Config) (pi.Options, error) {
	backend := cfg.Backend
	if cmd.Flags().Changed("backend") {
		backend = f.backend
	}
	rounding := cfg.Rounding
	if cmd.Flags().Changed("round") {
		rounding = f.rounding
	}
	mode, err := pi.ParseRoundingMode(rounding)
	if err != nil {
		return pi.Options{}, err
	}
	opts := pi.Options{Backend: backend, Rounding: mode}
	if cfg.Progress || f.progress {
		opts.Progress = progressPrinter(cmd.ErrOrStderr())
	}
	return opts, nil
}

// progressPrinter rewrites a percentage line on w.
func progressPrinter(w io.Writer) pi.ProgressReporter {
	return func(p float64) {
		fmt.Fprintf(w, "\r%3.0f%%", p*100)
		if p >= 1 {
			fmt.Fprintln(w)
		}
	}
}

// report writes the wall-clock time elapsed between start and end.
func report(w io.Writer, start, end time.Time) {
	fmt.Fprintf(w, "    Running took %e seconds\n", end.Sub(start).Seconds())
}
