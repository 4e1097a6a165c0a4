package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/hanoi/internal/cli"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/spf13/cobra"
)

// execute runs the animation; replaced in tests.
var execute = cli.Execute

const longHelp = `Solves the tower of hanoi in your terminal!

The whole tower starts on the left peg and is moved, one disk at a time, to the
right peg. The drawing is refreshed after every move.

Log levels (not case sensitive):
  none      print nothing
  minimal   only print the number of moves taken
  all       print moves taken, tower height and delay

Values from --config are used unless the matching flag is given.`

func newRootCmd() *cobra.Command {
	level := config.LogMinimal

	cmd := &cobra.Command{
		Use:           "hanoi [OPTION...]",
		Short:         "Solves the tower of hanoi in your terminal!",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, level)
			if err != nil {
				return err
			}
			return execute(cli.RunOptions{Config: cfg, Out: cmd.OutOrStdout()})
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.UintP("delay", "D", defaults.DelayMS, "Delay between disk moves in milliseconds")
	flags.UintP("height", "N", defaults.Height, "Height of the tower")
	flags.VarP(&level, "loglevel", "L", "Summary printed at the end: none, minimal or all")
	flags.StringP("config", "c", "", "YAML file with delay, height, loglevel, debug, metrics_addr and events")
	flags.Bool("debug", false, "Write debug logs to stderr")
	flags.String("metrics-addr", "", "Serve /frame and /metrics on this address while animating")
	flags.String("events", "", "Append start and move events as JSON Lines to this file")

	cmd.PersistentFlags().BoolP("help", "H", false, "Displays help")

	cmd.AddCommand(newMovesCmd(), newVersionCmd())
	return cmd
}

// resolveConfig layers the config file under the flags that were set explicitly.
func resolveConfig(cmd *cobra.Command, level config.LogLevel) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if flags.Changed("delay") {
		cfg.DelayMS, _ = flags.GetUint("delay")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetUint("height")
	}
	if flags.Changed("loglevel") {
		cfg.LogLevel = level
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("events") {
		cfg.EventsFile, _ = flags.GetString("events")
	}

	return cfg, cfg.Validate()
}

// reportError prints err with a pointer to the help text.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	fmt.Fprintln(w, "Run 'hanoi --help' for more information.")
}

// Execute runs the root command and exits non-zero on invalid input.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		reportError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
