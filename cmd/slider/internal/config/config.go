package config

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/slider/pkg/slider"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up when none is given.
const DefaultFile = "slider.yaml"

// Config represents a slider.yaml file.
type Config struct {
	Title    string              `yaml:"title,omitempty"`
	Height   string              `yaml:"height,omitempty"`
	Width    string              `yaml:"width,omitempty"`
	Selector string              `yaml:"selector,omitempty"`
	Page     string              `yaml:"page,omitempty"`
	Images   []slider.Image      `yaml:"images"`
	Options  slider.ConfigUpdate `yaml:"options,omitempty"`
	Steps    []string            `yaml:"steps,omitempty"`
	Auto     time.Duration       `yaml:"auto,omitempty"`
}

// StepKind is a scripted interaction.
type StepKind int

const (
	StepNext StepKind = iota
	StepPrev
	StepJump
)

// Step is one parsed entry of Config.Steps.
type Step struct {
	Kind  StepKind
	Index int
}

func (s Step) String() string {
	switch s.Kind {
	case StepNext:
		return "next"
	case StepPrev:
		return "prev"
	default:
		return "jump:" + strconv.Itoa(s.Index)
	}
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path       string
	Dir        string
	ModulePath string
	Title      string
	Height     string
	Width      string
	Selector   string
	PageHTML   string
	Images     []slider.Image
	Options    slider.ConfigUpdate
	Steps      []Step
	Auto       time.Duration
}

// Load reads and parses a slider.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads path and fills in defaults. Relative page paths are
// resolved against the config file's directory.
func Resolve(path string) (*Resolved, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Load(abs)
	if err != nil {
		return nil, err
	}
	if len(cfg.Images) == 0 {
		return nil, fmt.Errorf("%s: at least one image is required", path)
	}

	steps := make([]Step, 0, len(cfg.Steps))
	for _, raw := range cfg.Steps {
		step, err := ParseStep(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		steps = append(steps, step)
	}

	dir := filepath.Dir(abs)
	modPath := ""
	if root, err := FindModuleRoot(dir); err == nil {
		if modPath, err = modulePath(root); err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(modPath, dir)
	}

	page := DefaultPage(title)
	if cfg.Page != "" {
		pagePath := cfg.Page
		if !filepath.IsAbs(pagePath) {
			pagePath = filepath.Join(dir, pagePath)
		}
		data, err := os.ReadFile(pagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read page: %w", err)
		}
		page = string(data)
	}

	return &Resolved{
		Path:       abs,
		Dir:        dir,
		ModulePath: modPath,
		Title:      title,
		Height:     orDefault(cfg.Height, "350px"),
		Width:      orDefault(cfg.Width, "350px"),
		Selector:   orDefault(cfg.Selector, "#root"),
		PageHTML:   page,
		Images:     cfg.Images,
		Options:    cfg.Options,
		Steps:      steps,
		Auto:       cfg.Auto,
	}, nil
}

// ParseStep parses "next", "prev" or "jump:<index>".
func ParseStep(raw string) (Step, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "next":
		return Step{Kind: StepNext}, nil
	case "prev":
		return Step{Kind: StepPrev}, nil
	}
	if rest, ok := strings.CutPrefix(s, "jump:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return Step{}, fmt.Errorf("invalid jump index in step %q", raw)
		}
		return Step{Kind: StepJump, Index: n}, nil
	}
	return Step{}, fmt.Errorf("unknown step %q (use next, prev or jump:<n>)", raw)
}

// DefaultPage is the host page used when the config names none.
func DefaultPage(title string) string {
	return `<!DOCTYPE html><html><head><title>` + html.EscapeString(title) +
		`</title></head><body><div id="root"></div></body></html>`
}

// FindModuleRoot walks up from dir to find go.mod.
func FindModuleRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "slider"
	}
	return base
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
