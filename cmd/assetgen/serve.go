package main

import (
	"github.com/spf13/cobra"

	"assetgen/internal/http/handlers"
	httpapi "assetgen/internal/http/httpapi"
	"assetgen/internal/infra"
	"assetgen/internal/storage"
)

func (c *cli) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP view of the catalog and generated assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.flags.port != "" {
				c.cfg.Port = c.flags.port
			}
			return c.runServe(cmd)
		},
	}
	cmd.Flags().StringVar(&c.flags.port, "port", "", "Listen port (default from PORT)")
	return cmd
}

func (c *cli) runServe(cmd *cobra.Command) error {
	cat, err := c.filtered()
	if err != nil {
		return err
	}
	store, err := storage.NewFileStore(c.cfg.AssetsDir)
	if err != nil {
		return err
	}

	app := handlers.NewApp(cat, store, &c.logger)
	router := httpapi.NewRouter(app, httpapi.RouterOptions{RateLimitPerMin: c.cfg.RateLimitPerMin})
	server := infra.NewHTTPServer(c.cfg, router)

	c.logger.Info().Str("addr", server.Addr()).Str("assets_dir", store.BasePath()).Msg("http: listening")
	if err := server.Start(cmd.Context()); err != nil {
		return err
	}
	c.logger.Info().Msg("http: server stopped")
	return nil
}
