package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-drift/slider/cmd/slider/internal/config"
	"github.com/go-drift/slider/cmd/slider/internal/watch"
	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/host"
	"github.com/go-drift/slider/pkg/slider"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-render whenever slider.yaml changes",
		Long: `Watch slider.yaml and re-render the page every time it is saved.

Each save reloads the file, applies its options to a fresh mount, replays
the steps and writes the page like "slider render". A file that fails to
load is logged and the previous output is kept. Stop with Ctrl+C.

Usage:
  slider watch -o out.html
  slider watch -o out.html gallery.yaml`,
		Usage: "slider watch [-o FILE] [slider.yaml]",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	path, out, err := fileArgs(args)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	changes, err := watch.NewFileWatcher(path).Watch(ctx)
	if err != nil {
		return err
	}

	loop := host.NewLoop()
	w := &watcher{path: path, out: out, logger: logger}
	go func() {
		for range changes {
			loop.Dispatch(w.reload)
		}
	}()

	logger.Info("watching", zap.String("config", path))
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// watcher re-renders on the loop goroutine, one reload at a time.
type watcher struct {
	path    string
	out     string
	logger  *zap.Logger
	renders int
}

func (w *watcher) reload() {
	res, err := config.Resolve(w.path)
	if err != nil {
		w.logger.Warn("reload failed, keeping previous output", zap.Error(err))
		return
	}

	ss, err := newSession(res, w.logger, slider.WithAnimator(animation.NopAnimator{}))
	if err != nil {
		w.logger.Warn("mount failed, keeping previous output", zap.Error(err))
		return
	}
	if err := ss.replay(res.Steps); err != nil {
		w.logger.Warn("replay failed, keeping previous output", zap.Error(err))
		return
	}
	if err := writeOutput(w.out, ss.html()); err != nil {
		w.logger.Error("write failed", zap.Error(err))
		return
	}

	w.renders++
	w.logger.Info("rendered",
		zap.Int("render", w.renders),
		zap.Int("current", ss.slider.Current()),
		zap.Any("config", ss.slider.Config()),
	)
}
