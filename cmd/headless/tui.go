package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/config"
	"github.com/vango-dev/headless/internal/logger"
	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/router"
	"github.com/vango-dev/headless/pkg/ui/term"
)

func tuiCmd(flags *globalFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore the configured layout in the terminal",
		Long: `Explore the configured layout in the terminal.

Use ←/→ (or h/l) to change tabs, b to go back and q to quit. The
current location is shown under the layout.

Examples:
  headless tui
  headless tui --path /items/42/history`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			// Log lines would tear the alternate screen.
			log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
			if err != nil {
				return err
			}

			tabs, err := buildTabs(cfg.Layout, textView)
			if err != nil {
				return err
			}
			if path == "" {
				path = startPath(cfg.Layout)
			}
			hist := router.NewHistory(path)
			c, err := layout.NewController(tabs, cfg.Layout.DefaultTab, hist.Endpoint, hist.Navigate,
				controllerOptions(cfg.Layout, log.Zerolog())...)
			if err != nil {
				return err
			}

			_, err = term.NewProgram(c, hist, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Start path (default: the default tab with the defaults)")
	return cmd
}
