package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/errmsg"
	"github.com/llehouerou/mcsounds/internal/export"
)

func exportCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "export <id> [dest]",
		Short: "Save a copy of a sound file",
		Long: `Save a copy of a sound file.

dest is a directory, or a file name ending in the sound's extension. It
defaults to export_dir from the config, then to the download directory.
Existing files are never overwritten.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			dest := cfg.ExportDir
			if len(args) == 2 {
				dest = args[1]
			}
			return runExport(loadCatalog(cfg, consoleLogger(cfg)), args[0], dest, cmd.OutOrStdout())
		},
	}
}

func runExport(cat *catalog.Catalog, id, dest string, out io.Writer) error {
	track, ok := cat.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown sound %q", id)
	}
	path, err := export.Sound(track, dest)
	if err != nil {
		return fmt.Errorf("%s %q: %w", errmsg.OpSoundExport, id, err)
	}
	fmt.Fprintf(out, "Saved %s to %s\n", track.DisplayName(), path)
	return nil
}
