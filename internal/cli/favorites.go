package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/favorites"
)

func favoritesCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Inspect and edit favorite sounds",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorite sounds",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withFavorites(g, func(store *favorites.Store, cat *catalog.Catalog) error {
					listFavorites(store, cat, cmd.OutOrStdout())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Add or remove a sound from the favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFavorites(g, func(store *favorites.Store, cat *catalog.Catalog) error {
					return toggleFavorite(store, cat, args[0], cmd.OutOrStdout())
				})
			},
		},
	)
	return cmd
}

// withFavorites opens the state database and catalog around fn.
func withFavorites(g *globals, fn func(*favorites.Store, *catalog.Catalog) error) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger := consoleLogger(cfg)

	st, err := g.openState(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	store := favorites.New(st, logger)
	store.Initialize()
	return fn(store, loadCatalog(cfg, logger))
}

func listFavorites(store *favorites.Store, cat *catalog.Catalog, out io.Writer) {
	ids := store.List()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No favorites.")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Category"})
	for _, id := range ids {
		if track, ok := cat.Lookup(id); ok {
			t.AppendRow(table.Row{id, track.DisplayName(), track.Category})
		} else {
			t.AppendRow(table.Row{id, text.FgHiBlack.Sprint("not in catalog"), ""})
		}
	}
	t.Render()
}

func toggleFavorite(store *favorites.Store, cat *catalog.Catalog, id string, out io.Writer) error {
	t, known := cat.Lookup(id)
	if !known && cat.Len() > 0 && !store.IsFavorite(id) {
		return fmt.Errorf("unknown sound %q", id)
	}
	name := id
	if known {
		name = t.DisplayName()
	}
	if store.Toggle(id) {
		fmt.Fprintf(out, "★ %s added to favorites\n", name)
	} else {
		fmt.Fprintf(out, "%s removed from favorites\n", name)
	}
	return nil
}
