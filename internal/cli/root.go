// Package cli holds the mcsounds cobra commands.
package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// globals are the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string
	database   string
	ephemeral  bool
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand opens the browser.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "mcsounds",
		Short: "Browse, queue and play a library of sound clips",
		Long: `mcsounds is a terminal browser for a categorized sound library.

Sounds are listed from a manifest (see "mcsounds manifest"). Favorites and
the last queue are kept in a SQLite database under the XDG data directory.`,
		Version:       appVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), g)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&g.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/mcsounds/config.toml)")
	flags.StringVar(&g.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&g.database, "database", "", "state database path (overrides config)")
	flags.BoolVar(&g.ephemeral, "ephemeral", false, "keep favorites and queue in memory only")

	root.AddCommand(
		browseCmd(g),
		playCmd(g),
		manifestCmd(g),
		favoritesCmd(g),
		exportCmd(g),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "dev"
	}
	return bi.Main.Version
}
