package cmd

import (
	"github.com/go-drift/slider/cmd/slider/internal/config"
	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/slider"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the host page with the slider mounted",
		Long: `Render the host page described by slider.yaml with the slider mounted.

The configured options are applied, the slider is appended to the selector
and the scripted steps are replayed as clicks on the rendered controls. The
resulting page is written to stdout, or to the file given with -o.

Usage:
  slider render                     # ./slider.yaml to stdout
  slider render -o out.html site.yaml`,
		Usage: "slider render [-o FILE] [slider.yaml]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	path, out, err := fileArgs(args)
	if err != nil {
		return err
	}
	res, err := config.Resolve(path)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Static output: effects would only leave a half-faded inline opacity.
	ss, err := newSession(res, logger, slider.WithAnimator(animation.NopAnimator{}))
	if err != nil {
		return err
	}
	if err := ss.replay(res.Steps); err != nil {
		return err
	}

	logger.Debug("rendered",
		zap.String("config", res.Path),
		zap.Int("steps", len(res.Steps)),
		zap.Int("current", ss.slider.Current()),
	)
	return writeOutput(out, ss.html())
}
