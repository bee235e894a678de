package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mcsounds/internal/app"
	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/config"
	"github.com/llehouerou/mcsounds/internal/errmsg"
	"github.com/llehouerou/mcsounds/internal/mpris"
	"github.com/llehouerou/mcsounds/internal/notify"
	"github.com/llehouerou/mcsounds/internal/player"
	"github.com/llehouerou/mcsounds/internal/stderr"
)

func browseCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the sound browser (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), g)
		},
	}
}

func runBrowse(ctx context.Context, g *globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger, logCloser := fileLogger(cfg)
	defer logCloser.Close()

	st, err := g.openState(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	bridge := app.NewBridge()
	defer bridge.Close()

	core := app.NewCore(app.Options{
		Media:        player.NewBackend(player.PosterFunc(bridge.Post)),
		State:        st,
		Catalog:      loadCatalog(cfg, logger),
		Gap:          cfg.GetSequentialGap(),
		After:        bridge.AfterFunc,
		PersistQueue: true,
		ExportDir:    cfg.ExportDir,
		Logger:       logger,
	})
	core.Restore()
	defer core.Close()

	if cfg.Notifications {
		if n, err := notify.New(); err != nil {
			logger.Warn().Err(err).Msg("desktop notifications unavailable")
		} else {
			core.EnableNotifications(n)
		}
	}

	var lines <-chan string
	capture, err := stderr.Start()
	if err != nil {
		logger.Warn().Err(err).Msg("stderr capture unavailable")
	} else {
		defer capture.Close()
		lines = capture.Lines()
	}

	p := tea.NewProgram(app.New(core, lines), tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.Attach(p.Send)

	if cfg.WatchManifest {
		if w := watchManifest(cfg, bridge, core, logger); w != nil {
			defer w.Close()
		}
	}
	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(bridge.Call, core.Queue, core.Engine)
		if err != nil {
			logger.Warn().Err(err).Msg("MPRIS unavailable")
		} else {
			defer adapter.Close()
		}
	}

	start := time.Now()
	_, err = p.Run()
	logger.Info().Dur("session", time.Since(start)).Msg("browser closed")
	return err
}

// watchManifest reloads the catalog on the UI goroutine whenever the
// manifest file changes.
func watchManifest(cfg *config.Config, bridge *app.Bridge, core *app.Core, logger zerolog.Logger) *catalog.Watcher {
	w, err := catalog.Watch(cfg.ManifestPath(),
		func(cat *catalog.Catalog) {
			bridge.Post(func() {
				core.SetCatalog(cat)
				logger.Info().Int("sounds", cat.Len()).Msg("catalog reloaded")
			})
		},
		func(err error) {
			logger.Warn().Err(err).Msg(errmsg.Format(errmsg.OpCatalogReload, err))
		},
	)
	if err != nil {
		logger.Warn().Err(err).Msg("manifest watcher unavailable")
		return nil
	}
	return w
}
