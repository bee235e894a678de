package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/mcsounds/internal/app"
	"github.com/llehouerou/mcsounds/internal/errmsg"
	"github.com/llehouerou/mcsounds/internal/loop"
	"github.com/llehouerou/mcsounds/internal/playback"
	"github.com/llehouerou/mcsounds/internal/player"
	"github.com/llehouerou/mcsounds/internal/sequence"
)

func playCmd(g *globals) *cobra.Command {
	var loopAll bool
	cmd := &cobra.Command{
		Use:   "play <category>",
		Short: "Play every sound of a category in order, without the browser",
		Long: `Play every sound of a category in catalog order and exit when the last
one ends. With --loop the category repeats until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), g, args[0], loopAll, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&loopAll, "loop", "l", false, "repeat the category until interrupted")
	return cmd
}

func runPlay(ctx context.Context, g *globals, category string, loopAll bool, out io.Writer) error {
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

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := loop.New()
	core := app.NewCore(app.Options{
		Media:   player.NewBackend(player.PosterFunc(l.Post)),
		State:   st,
		Catalog: loadCatalog(cfg, logger),
		Gap:     cfg.GetSequentialGap(),
		After:   loopAfter(l),
		Logger:  logger,
	})

	return playHeadless(ctx, l, core, category, loopAll, out)
}

// playHeadless drives one sequential session on l until it finishes or ctx
// is cancelled. core is closed before returning.
func playHeadless(ctx context.Context, l *loop.Loop, core *app.Core, category string, loopAll bool, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result error
	l.Post(func() {
		core.Engine.Subscribe(func(ev playback.Event) {
			switch ev.Kind { //nolint:exhaustive // only sounds starting and failing are reported
			case playback.EventStarted:
				if p, ok := core.Sequence.Progress(); ok {
					fmt.Fprintf(out, "▶ %s (%d/%d)\n", ev.Track.DisplayName(), p.Position, p.Total)
				}
			case playback.EventFailed:
				fmt.Fprintln(out, errmsg.FormatWith(errmsg.OpPlaybackStart, ev.Track.DisplayName(), ev.Err))
			}
		})
		core.Sequence.Subscribe(func(ev sequence.Event) {
			if ev.Kind == sequence.EventFinished {
				cancel()
			}
		})

		core.Queue.SetLoop(loopAll)
		if err := core.Sequence.Start(category); err != nil {
			result = fmt.Errorf("%s %q: %w", errmsg.OpSequentialGo, category, err)
			cancel()
		}
	})

	err := l.Run(ctx)
	core.Close()
	if result != nil {
		return result
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loopAfter schedules fn on l once d has elapsed.
func loopAfter(l *loop.Loop) sequence.AfterFunc {
	return func(d time.Duration, fn func()) func() {
		t := time.AfterFunc(d, func() { l.Post(fn) })
		return func() { t.Stop() }
	}
}
