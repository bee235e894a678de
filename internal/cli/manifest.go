package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/config"
	"github.com/llehouerou/mcsounds/internal/errmsg"
)

func manifestCmd(_ *globals) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "manifest <dir>",
		Short: "Scan a sound directory and write its manifest",
		Long: `Scan a sound directory and write manifest.json.

Every .ogg, .mp3, .flac and .wav file below <dir> is listed. The first
directory under <dir> is the sound's category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(args[0], output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "manifest path (default <dir>/manifest.json)")
	return cmd
}

func runManifest(dir, output string, out io.Writer) error {
	m, err := catalog.Scan(dir)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpCatalogScan, err)
	}
	if output == "" {
		output = filepath.Join(dir, config.ManifestFileName)
	}
	if err := rebase(&m, dir, filepath.Dir(output)); err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpManifestWrite, err)
	}
	if err := catalog.WriteManifest(output, m); err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpManifestWrite, err)
	}

	fmt.Fprintf(out, "Wrote %s %s in %s to %s\n",
		humanize.Comma(int64(len(m.Sounds))), english.PluralWord(len(m.Sounds), "sound", ""),
		english.Plural(len(m.Categories), "category", "categories"),
		output,
	)
	return nil
}

// rebase makes sound paths relative to the manifest's own directory, which
// is what LoadManifest resolves them against.
func rebase(m *catalog.Manifest, root, manifestDir string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	absDir, err := filepath.Abs(manifestDir)
	if err != nil {
		return err
	}
	if absRoot == absDir {
		return nil
	}
	for i := range m.Sounds {
		rel, err := filepath.Rel(absDir, filepath.Join(absRoot, filepath.FromSlash(m.Sounds[i].Path)))
		if err != nil {
			return err
		}
		m.Sounds[i].Path = filepath.ToSlash(rel)
	}
	return nil
}
