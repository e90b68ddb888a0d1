package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-drift/slider/cmd/slider/internal/config"
	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/errors"
	"github.com/go-drift/slider/pkg/host"
	"github.com/go-drift/slider/pkg/slider"
	"github.com/zoobzio/capitan"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Browse the slider in the terminal",
		Long: `Mount the slider from slider.yaml into an in-memory page and browse it
in the terminal. The view is read back from the mounted elements, so it
shows exactly what the page contains, including fades in progress.

Keys:
  ←/h, →/l   previous / next image
  1-9        jump to an image
  a          toggle auto-advance (interval from "auto", default 1s)
  c          toggle showCounter
  f          cycle imageFit
  q          quit

With --verbose, logs are written to slider-preview.log.`,
		Usage: "slider preview [slider.yaml]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	path, out, err := fileArgs(args)
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("preview does not write output files")
	}
	res, err := config.Resolve(path)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = newLogger("slider-preview.log"); err != nil {
			return err
		}
		defer logger.Sync()
	}
	status := &statusHandler{next: errors.CurrentHandler()}
	defer errors.SetHandler(errors.SetHandler(status))

	loop := host.NewLoop()
	ss, err := newSession(res, logger, slider.WithScheduler(loop))
	if err != nil {
		return err
	}
	if err := ss.replay(res.Steps); err != nil {
		return err
	}
	defer capitan.Shutdown()
	for _, l := range status.follow(ss.slider) {
		defer l.Close()
	}

	m := newPreviewModel(ss, loop, status)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// statusHandler keeps the latest asynchronous error or slider event for the
// status line.
type statusHandler struct {
	mu   sync.Mutex
	last string
	next errors.Handler
}

func (h *statusHandler) HandleError(err *errors.SliderError) {
	h.set(err.Error())
	if verbose && h.next != nil {
		h.next.HandleError(err)
	}
}

func (h *statusHandler) HandlePanic(err *errors.PanicError) {
	h.set(err.Error())
	if verbose && h.next != nil {
		h.next.HandlePanic(err)
	}
}

// follow reports the slider's transitions and rolled-back updates on the
// status line. Listeners run on capitan's workers, hence the mutex in set.
func (h *statusHandler) follow(s *slider.Slider) []*capitan.Listener {
	mine := func(e *capitan.Event) bool {
		id, _ := slider.KeySlider.From(e)
		return id == s.ID()
	}
	return []*capitan.Listener{
		capitan.Hook(slider.SliderTransitioned, func(_ context.Context, e *capitan.Event) {
			if !mine(e) {
				return
			}
			index, _ := slider.KeyIndex.From(e)
			total, _ := slider.KeyTotal.From(e)
			h.set(fmt.Sprintf("showing image %d of %d", index+1, total))
		}),
		capitan.Hook(slider.SliderUpdateFailed, func(_ context.Context, e *capitan.Event) {
			if !mine(e) {
				return
			}
			index, _ := slider.KeyIndex.From(e)
			msg, _ := slider.KeyError.From(e)
			h.set(fmt.Sprintf("update failed, staying on image %d: %s", index+1, msg))
		}),
	}
}

func (h *statusHandler) set(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
}

func (h *statusHandler) take() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	msg := h.last
	h.last = ""
	return msg
}

var fits = []slider.ImageFit{slider.FitCover, slider.FitContain, slider.FitFill, slider.FitNone}

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(host.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// previewModel drives the host loop from bubbletea's update goroutine, which
// makes that goroutine the slider's UI goroutine.
type previewModel struct {
	ss       *session
	loop     *host.Loop
	status   *statusHandler
	auto     slider.Handle
	interval time.Duration
	message  string
}

func newPreviewModel(ss *session, loop *host.Loop, status *statusHandler) previewModel {
	interval := ss.res.Auto
	if interval <= 0 {
		interval = slider.DefaultAutoInterval
	}
	return previewModel{ss: ss, loop: loop, status: status, interval: interval}
}

// Init implements tea.Model.
func (m previewModel) Init() tea.Cmd {
	return nextFrame()
}

// Update implements tea.Model.
func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.ss.slider
	switch msg := msg.(type) {
	case frameMsg:
		m.loop.Frame()
		if msg := m.status.take(); msg != "" {
			m.message = msg
		}
		return m, nextFrame()

	case tea.KeyMsg:
		m.message = ""
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			if m.auto != nil {
				m.auto.Stop()
			}
			return m, tea.Quit
		case "left", "h":
			m.try(s.Prev())
		case "right", "l", " ":
			m.try(s.Next())
		case "a":
			if m.auto != nil {
				m.auto.Stop()
				m.auto = nil
				m.message = "auto-advance off"
			} else {
				m.auto = s.Auto(m.interval)
				m.message = "auto-advance every " + m.interval.String()
			}
		case "c":
			show := !s.Config().ShowCounter
			s.UpdateConfig(slider.ConfigUpdate{ShowCounter: slider.Bool(show)})
			m.message = fmt.Sprintf("showCounter=%v", show)
		case "f":
			fit := fits[0]
			for i, f := range fits {
				if f == s.Config().ImageFit {
					fit = fits[(i+1)%len(fits)]
				}
			}
			s.UpdateConfig(slider.ConfigUpdate{ImageFit: slider.Fit(fit)})
			m.message = "imageFit=" + string(fit) + " (applies on the next image change)"
		default:
			if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
				m.try(s.JumpTo(n - 1))
			}
		}
	}
	return m, nil
}

func (m *previewModel) try(err error) {
	if err != nil {
		m.message = err.Error()
	}
}

// View implements tea.Model.
func (m previewModel) View() string {
	s := m.ss.slider
	var b strings.Builder

	fmt.Fprintf(&b, "%s  (slider %s)\n\n", m.ss.res.Title, s.ID())

	root, _ := m.ss.doc.QuerySelector(fmt.Sprintf(`[data-slider="%s"]`, s.ID()))
	if root == nil {
		b.WriteString("slider is not mounted\n")
		return b.String()
	}

	img := first(root, "img."+slider.ClassImage)
	if img != nil {
		src, _ := img.Attr("src")
		alt, _ := img.Attr("alt")
		fit := "?"
		for _, c := range img.Classes() {
			if v, ok := strings.CutPrefix(c, slider.ClassImageStyle); ok {
				fit = v
			}
		}
		fmt.Fprintf(&b, "  image    %s\n", src)
		if alt != "" {
			fmt.Fprintf(&b, "  alt      %s\n", alt)
		}
		fmt.Fprintf(&b, "  fit      %s\n", fit)
		if op := img.Style("opacity"); op != "" {
			fmt.Fprintf(&b, "  opacity  %s\n", op)
		}
	}
	b.WriteString("\n")

	var line []string
	if first(root, "."+slider.ClassPrev) != nil {
		line = append(line, "❮")
	}
	if counter := first(root, "."+slider.ClassCounter); counter != nil {
		line = append(line, counter.Text())
	}
	if first(root, "."+slider.ClassNext) != nil {
		line = append(line, "❯")
	}
	if len(line) > 0 {
		b.WriteString("  " + strings.Join(line, "   ") + "\n")
	}

	if dots, _ := root.QuerySelectorAll("." + slider.ClassDot); len(dots) > 0 {
		marks := make([]string, len(dots))
		for i, dot := range dots {
			marks[i] = "○"
			if dot.HasClass(slider.ClassActive) {
				marks[i] = "●"
			}
		}
		b.WriteString("  " + strings.Join(marks, " ") + "\n")
	}

	auto := "off"
	if m.auto != nil {
		auto = m.interval.String()
	}
	fmt.Fprintf(&b, "\n  auto: %s\n", auto)
	if m.message != "" {
		fmt.Fprintf(&b, "  %s\n", m.message)
	}
	b.WriteString("\n  ←/→ navigate · 1-9 jump · a auto · c counter · f fit · q quit\n")
	return b.String()
}

func first(root dom.Element, sel string) dom.Element {
	el, err := root.QuerySelector(sel)
	if err != nil {
		return nil
	}
	return el
}
