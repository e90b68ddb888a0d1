package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/slider/cmd/slider/internal/config"
	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/slider"
	"go.uber.org/zap"
)

// session is one slider mounted into a freshly parsed host page.
type session struct {
	res    *config.Resolved
	doc    *dom.HTMLDocument
	slider *slider.Slider
}

func newSession(res *config.Resolved, logger *zap.Logger, opts ...slider.Option) (*session, error) {
	doc, err := dom.ParseString(res.PageHTML)
	if err != nil {
		return nil, err
	}

	base := []slider.Option{slider.WithDocument(doc), slider.WithLogger(logger)}
	s, err := slider.New(res.Height, res.Width, res.Images, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	s.UpdateConfig(res.Options)
	if err := s.Append(res.Selector); err != nil {
		return nil, err
	}
	return &session{res: res, doc: doc, slider: s}, nil
}

// replay applies each step in order and stops at the first failure.
func (ss *session) replay(steps []config.Step) error {
	for i, step := range steps {
		if err := ss.apply(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
	}
	return nil
}

// apply clicks the control for step inside the slider, or calls the slider
// directly when that control was not rendered. Click failures are reported
// to the errors handler like any other click.
func (ss *session) apply(step config.Step) error {
	var sel string
	var call func() error
	switch step.Kind {
	case config.StepNext:
		sel, call = "."+slider.ClassNext, ss.slider.Next
	case config.StepPrev:
		sel, call = "."+slider.ClassPrev, ss.slider.Prev
	default:
		sel = fmt.Sprintf(`.%s-ld[data-count="%d"]`, ss.slider.ID(), step.Index)
		call = func() error { return ss.slider.JumpTo(step.Index) }
	}

	root, err := ss.doc.QuerySelector(fmt.Sprintf(`[data-slider="%s"]`, ss.slider.ID()))
	if err != nil {
		return err
	}
	if root != nil {
		if el, err := root.QuerySelector(sel); err == nil && el != nil {
			el.Click()
			return nil
		}
	}
	return call()
}

func (ss *session) html() string {
	return ss.doc.String()
}

// fileArgs parses "[-o FILE] [slider.yaml]".
func fileArgs(args []string) (path, out string, err error) {
	path = config.DefaultFile
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("%s requires a file path", arg)
			}
			out = args[i+1]
			i++
		case strings.HasPrefix(arg, "--output="):
			out = strings.TrimPrefix(arg, "--output=")
		case strings.HasPrefix(arg, "-"):
			return "", "", fmt.Errorf("unknown flag %q", arg)
		default:
			positional = append(positional, arg)
		}
	}
	switch len(positional) {
	case 0:
	case 1:
		path = positional[0]
	default:
		return "", "", fmt.Errorf("expected at most one config file, got %d", len(positional))
	}
	return path, out, nil
}

// writeOutput writes html to out, or to stdout when out is empty.
func writeOutput(out, html string) error {
	if out == "" {
		_, err := fmt.Fprintln(os.Stdout, html)
		return err
	}
	if err := os.WriteFile(out, []byte(html+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}
