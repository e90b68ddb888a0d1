package slider

import (
	"context"
	stderrors "errors"
	"slices"
	"sync"
	"time"

	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/errors"
	"github.com/go-drift/slider/pkg/host"
	"github.com/zoobzio/capitan"
	"go.uber.org/zap"
)

// DefaultAutoInterval is used by Auto when no positive interval is given.
const DefaultAutoInterval = time.Second

// ErrNoScheduler is reported by Auto on a slider built without WithScheduler.
var ErrNoScheduler = stderrors.New("no scheduler: construct the slider WithScheduler to use Auto")

// Slider is one carousel instance.
type Slider struct {
	id     string
	height string
	width  string
	images []Image
	config Config

	current int
	roots   []dom.Element

	doc       dom.Document
	animator  animation.Animator
	scheduler host.Scheduler
	logger    *zap.Logger
	newID     func() string
}

// Option configures a Slider at construction.
type Option func(*Slider)

// WithDocument sets the host document. Defaults to dom.Default().
func WithDocument(doc dom.Document) Option {
	return func(s *Slider) { s.doc = doc }
}

// WithAnimator sets the visual-effect collaborator used for fades.
// Defaults to a FrameAnimator when the scheduler is a *host.Loop, whose
// frames step it, and to animation.NopAnimator otherwise.
func WithAnimator(a animation.Animator) Option {
	return func(s *Slider) { s.animator = a }
}

// WithScheduler sets the scheduler used by Auto. Without one, Auto reports
// ErrNoScheduler and schedules nothing.
func WithScheduler(sch host.Scheduler) Option {
	return func(s *Slider) { s.scheduler = sch }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Slider) { s.logger = logger }
}

// WithIDGenerator replaces the instance identifier generator.
// Identifiers must be unique per page and valid CSS identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(s *Slider) { s.newID = fn }
}

// New constructs a slider. height and width are CSS dimensions applied to
// the slider frame. At least one image is required; image sources are
// checked when each image is first rendered, not here.
func New(height, width string, images []Image, opts ...Option) (*Slider, error) {
	if len(images) == 0 {
		return nil, &errors.SliderError{
			Op:   "slider.New",
			Kind: errors.KindValidation,
			Err:  &errors.ValidationError{Field: "images", Index: -1, Reason: "at least one image is required"},
		}
	}

	s := &Slider{
		height: height,
		width:  width,
		images: slices.Clone(images),
		config: DefaultConfig(),
		newID:  newID,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.animator == nil {
		s.animator = animation.NopAnimator{}
		if _, ok := s.scheduler.(*host.Loop); ok {
			s.animator = animation.NewFrameAnimator()
		}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.id = s.newID()
	s.logger = s.logger.With(zap.String("slider", s.id))
	return s, nil
}

// ID returns the instance identifier that scopes the slider's element ids.
func (s *Slider) ID() string { return s.id }

// Current returns the index of the displayed image.
func (s *Slider) Current() int { return s.current }

// Len returns the number of images.
func (s *Slider) Len() int { return len(s.images) }

// Images returns a copy of the image set.
func (s *Slider) Images() []Image { return slices.Clone(s.images) }

// Config returns a copy of the current configuration.
func (s *Slider) Config() Config { return s.config.Clone() }

// Mounted returns the number of mounted copies.
func (s *Slider) Mounted() int { return len(s.roots) }

func (s *Slider) document() dom.Document {
	if s.doc == nil {
		s.doc = dom.Default()
	}
	return s.doc
}

// Append builds the slider and appends it to the first element matching
// selector. It fails with a NotFoundError when nothing matches and with a
// ValidationError when the current image has no source; in both cases
// nothing is mounted. Appending again mounts another copy that shares this
// slider's index and configuration.
func (s *Slider) Append(selector string) error {
	const op = "slider.Append"
	doc := s.document()

	parent, err := doc.QuerySelector(selector)
	if err != nil {
		return s.fail(op, errors.KindValidation, &errors.ValidationError{Field: "selector", Index: -1, Reason: err.Error()})
	}
	if parent == nil {
		return s.fail(op, errors.KindNotFound, &errors.NotFoundError{Selector: selector})
	}

	img, err := s.resolve(s.current)
	if err != nil {
		return s.fail(op, errors.KindValidation, err)
	}

	root := s.build(doc, img)
	parent.Append(root)
	s.roots = append(s.roots, root)

	s.logger.Debug("slider mounted", zap.String("selector", selector), zap.Int("copies", len(s.roots)))
	capitan.Emit(context.Background(), SliderMounted,
		KeySlider.Field(s.id),
		KeySelector.Field(selector),
		KeyTotal.Field(len(s.images)),
	)
	return nil
}

// UpdateConfig merges u into the configuration. It never fails and does not
// touch the DOM; see the package documentation for when each key applies.
func (s *Slider) UpdateConfig(u ConfigUpdate) {
	s.config.Merge(u)
	if u.ImageFit != nil && !s.config.ImageFit.Known() {
		s.logger.Debug("unrecognized image fit passed through", zap.String("fit", string(s.config.ImageFit)))
	}
	s.logger.Debug("config updated", zap.Any("config", s.config))
	capitan.Emit(context.Background(), SliderConfigUpdated, KeySlider.Field(s.id))
}

// Handle stops an auto-advance started by Auto.
type Handle interface {
	Stop()
}

// Auto advances the slider every interval (DefaultAutoInterval when
// interval <= 0) on the configured scheduler. Stopping the returned handle
// is the caller's responsibility. On a slider without a scheduler, Auto
// reports ErrNoScheduler to the errors handler and returns an inert handle.
func (s *Slider) Auto(interval time.Duration) Handle {
	if interval <= 0 {
		interval = DefaultAutoInterval
	}
	if s.scheduler == nil {
		s.logger.Warn("auto-advance requested without a scheduler")
		errors.Report(&errors.SliderError{
			Op:     "slider.Auto",
			Kind:   errors.KindConfig,
			Slider: s.id,
			Err:    ErrNoScheduler,
		})
		return inert{}
	}

	h := &autoHandle{slider: s, interval: interval}
	h.inner = s.scheduler.Every(interval, func() {
		defer errors.Recover("slider.auto")
		if err := s.Next(); err != nil {
			errors.ReportError("slider.auto", errors.KindRender, s.id, err)
		}
	})

	s.logger.Debug("auto-advance started", zap.Duration("interval", interval))
	capitan.Emit(context.Background(), SliderAutoStarted,
		KeySlider.Field(s.id),
		KeyInterval.Field(interval),
	)
	return h
}

type inert struct{}

func (inert) Stop() {}

type autoHandle struct {
	slider   *Slider
	interval time.Duration
	inner    host.Handle
	once     sync.Once
}

func (h *autoHandle) Stop() {
	h.once.Do(h.stop)
}

func (h *autoHandle) stop() {
	h.inner.Stop()
	h.slider.logger.Debug("auto-advance stopped", zap.Duration("interval", h.interval))
	capitan.Emit(context.Background(), SliderAutoStopped,
		KeySlider.Field(h.slider.id),
		KeyInterval.Field(h.interval),
	)
}

func (s *Slider) fail(op string, kind errors.ErrorKind, err error) error {
	return &errors.SliderError{Op: op, Kind: kind, Slider: s.id, Err: err}
}
