package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"assetgen/internal/catalog"
	"assetgen/internal/storage"
)

func (c *cli) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Export every asset's JSON spec for manual generation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runExport(cmd, dir, c.flags.zipPath)
		},
	}
	cmd.Flags().StringVar(&c.flags.zipPath, "zip", "", "Write the specs into a single zip archive at this path")
	return cmd
}

func (c *cli) runExport(cmd *cobra.Command, dir, zipPath string) error {
	if dir == "" && zipPath == "" {
		return errors.New("export needs a directory or --zip <file>")
	}
	cat, err := c.filtered()
	if err != nil {
		return err
	}

	if dir != "" {
		n, err := catalog.Export(cat, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "Exported %d specs to %s\n", n, dir)
	}

	if zipPath != "" {
		var buf bytes.Buffer
		n, err := catalog.ExportArchive(cat, &buf)
		if err != nil {
			return err
		}
		if err := storage.WriteFileAtomic(zipPath, buf.Bytes()); err != nil {
			return fmt.Errorf("export: write archive: %w", err)
		}
		fmt.Fprintf(c.stdout, "Exported %d specs to %s\n", n, zipPath)
	}
	return nil
}
