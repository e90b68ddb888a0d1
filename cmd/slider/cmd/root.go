// Package cmd implements the slider CLI: a small registry of subcommands
// (render, watch, preview) sharing a global --verbose flag.
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/go-drift/slider/pkg/errors"
	"go.uber.org/zap"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command is one subcommand of the slider CLI.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

const overview = `slider builds an image carousel from a slider.yaml file, mounts it into
a host page and lets you render, watch or preview the result.`

// registry holds commands in registration order.
var registry []*Command

// verbose is set by the global --verbose flag.
var verbose bool

// RegisterCommand adds a command to the CLI. Names must be unique.
func RegisterCommand(c *Command) {
	if lookup(c.Name) != nil {
		panic("slider: duplicate command " + c.Name)
	}
	registry = append(registry, c)
}

func lookup(name string) *Command {
	i := slices.IndexFunc(registry, func(c *Command) bool { return c.Name == name })
	if i < 0 {
		return nil
	}
	return registry[i]
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func isVersion(arg string) bool {
	return arg == "-v" || arg == "--version" || arg == "version"
}

func execute(args []string) error {
	// --verbose may appear anywhere; everything else is positional.
	rest := args[:0:0]
	for _, arg := range args {
		if arg == "--verbose" {
			verbose = true
			continue
		}
		rest = append(rest, arg)
	}

	if len(rest) == 0 || isHelp(rest[0]) {
		usage(os.Stdout)
		return nil
	}
	if isVersion(rest[0]) {
		fmt.Printf("slider version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	c := lookup(rest[0])
	if c == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", rest[0])
		usage(os.Stderr)
		return fmt.Errorf("unknown command: %s", rest[0])
	}
	if slices.ContainsFunc(rest[1:], isHelp) {
		commandUsage(os.Stdout, c)
		return nil
	}
	return c.Run(rest[1:])
}

// newLogger builds the CLI logger and routes asynchronous slider errors to
// it. Output goes to stderr unless paths are given.
func newLogger(paths ...string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	if len(paths) > 0 {
		cfg.OutputPaths = paths
		cfg.ErrorOutputPaths = paths
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return logger, nil
}

func usage(w io.Writer) {
	var b strings.Builder
	b.WriteString(overview + "\n\nUsage:\n  slider <command> [flags] [slider.yaml]\n\nCommands:\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	for _, c := range registry {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Name, c.Short)
	}
	tw.Flush()

	b.WriteString(`
Flags:
  -h, --help      Show help for a command
  -v, --version   Show version information
  --verbose       Debug logging with stack traces

Examples:
  slider render                 Print the page for ./slider.yaml
  slider watch -o out.html      Re-render out.html on every save
  slider preview gallery.yaml   Browse the slider in the terminal

Use "slider <command> --help" for more information about a command.
`)
	io.WriteString(w, b.String())
}

func commandUsage(w io.Writer, c *Command) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", c.Long, c.Usage)
}
