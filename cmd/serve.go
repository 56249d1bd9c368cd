package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/M0hammad-yasin/portfolio/internal/config"
	"github.com/M0hammad-yasin/portfolio/internal/content"
	"github.com/M0hammad-yasin/portfolio/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr        string
		contentFile string
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page",
		Long: `Serves the portfolio over HTTP. Content comes from the embedded manifest
unless --content (or content_file in the config) points at a YAML file;
with --watch that file is reloaded whenever it changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("content") {
				cfg.ContentFile = contentFile
			}
			if cmd.Flags().Changed("watch") {
				cfg.Watch = watch
			}

			store, err := content.NewStore(cfg.ContentFile)
			if err != nil {
				return fmt.Errorf("loading content: %w", err)
			}

			srv, err := server.New(cfg, store)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&contentFile, "content", "", "content manifest (YAML); empty uses the embedded one")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the content manifest when it changes")
	return cmd
}
