package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/config"
	"github.com/vango-dev/headless/pkg/routepath"
	"github.com/vango-dev/headless/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured layout over HTTP",
		Long: `Serve the configured layout over HTTP.

Every path owned by a tab renders the layout with that tab active.
Tab headers post to the server, which redirects to the destination
path; live clients can navigate over the websocket instead.

Examples:
  headless serve
  headless serve --addr :9000 --config demo.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(flags, cfg.Log.Level, cfg.Log.Human)
			if err != nil {
				return err
			}

			tabs, err := buildTabs(cfg.Layout, htmlView)
			if err != nil {
				return err
			}

			sc := server.DefaultConfig()
			sc.Title = cfg.Name
			sc.Address = cfg.Server.Address
			if addr != "" {
				sc.Address = addr
			}
			sc.MetricsPath = cfg.Server.MetricsPath
			sc.LivePath = cfg.Server.LivePath
			sc.Tabs = tabs
			sc.DefaultTab = cfg.Layout.DefaultTab
			sc.Defaults = routepath.Params(cfg.Layout.Defaults)
			sc.Strict = cfg.Layout.Strict

			srv, err := server.New(sc, server.WithLogger(log.Zerolog()))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			log.WithFields(map[string]any{"start": startPath(cfg.Layout)}).Info("open the start path in a browser")
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	return cmd
}
