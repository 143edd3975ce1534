// Command headless inspects route templates and hosts tab layouts described
// by a headless.yaml file.
package main

import (
	"os"

	"github.com/spf13/cobra"

	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/internal/logger"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	human      bool
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		herrors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "headless",
		Short: "Route-aware tabs and validated forms",
		Long: `headless matches and synthesizes route templates and hosts
tabbed layouts whose tabs share route parameters.

A layout is described in headless.yaml (see 'headless config init').
It can be served over HTTP or explored in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				herrors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "headless.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&flags.human, "human", false, "Human-readable log output")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		matchCmd(),
		synthCmd(),
		switchCmd(flags),
		serveCmd(flags),
		tuiCmd(flags),
		configCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// newLogger builds the logger from the config, with flag overrides.
func newLogger(flags *globalFlags, level string, human bool) (*logger.Logger, error) {
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: human || flags.human,
		Writer:        os.Stderr,
	})
}
