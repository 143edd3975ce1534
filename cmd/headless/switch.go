package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/config"
	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/router"
)

func switchCmd(flags *globalFlags) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "switch --from <path> --to <key> [name=value...]",
		Short: "Compute the path a tab change leads to",
		Long: `Load the configured layout, place it at --from and change to the
tab --to. The destination path is printed.

Without parameters this is a plain tab change: the configured
defaults, overlaid by the params of --from, are carried over. With
parameters they override the carried values.

Examples:
  headless switch --from /items/7/overview --to history
  headless switch --from /items/7/overview --to history id=8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			params, err := parseAssignments(args)
			if err != nil {
				return err
			}
			log, err := newLogger(flags, cfg.Log.Level, cfg.Log.Human)
			if err != nil {
				return err
			}

			tabs, err := buildTabs(cfg.Layout, textView)
			if err != nil {
				return err
			}
			hist := router.NewHistory(from)
			c, err := layout.NewController(tabs, cfg.Layout.DefaultTab, hist.Endpoint, hist.Navigate,
				controllerOptions(cfg.Layout, log.Zerolog())...)
			if err != nil {
				return err
			}
			if !c.Sync(from) {
				return herrors.New("H004").
					WithDetail(fmt.Sprintf("no tab template has the shape of %q", from)).
					WithLocation(flags.configPath, 0)
			}

			if len(params) > 0 {
				err = c.Navigate(cmd.Context(), to, params)
			} else {
				err = c.Change(cmd.Context(), to)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hist.Endpoint())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Current path")
	cmd.Flags().StringVar(&to, "to", "", "Destination tab key")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
