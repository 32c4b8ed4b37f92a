package main

import (
	"github.com/spf13/cobra"

	"assetgen/internal/catalog"
	"assetgen/internal/storage"
)

func (c *cli) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all assets and whether they already exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd)
		},
	}
}

func (c *cli) runList(cmd *cobra.Command) error {
	cat, err := c.filtered()
	if err != nil {
		return err
	}
	store, err := storage.NewFileStore(c.cfg.AssetsDir)
	if err != nil {
		return err
	}
	report, err := catalog.List(cat, store)
	if err != nil {
		return err
	}
	printReport(c.stdout, report)
	return nil
}
