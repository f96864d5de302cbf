// Command marky converts markdown documents to styled terminal output or
// JSON, or opens them in a scrollable viewer.
//
// Usage:
//
//	marky [flags] [pattern ...]
//
// Patterns are doublestar globs (e.g. docs/**/*.md). With no patterns the
// document is read from stdin.
//
// Flags:
//
//	-width int         Render width in columns (default 80)
//	-format string     Output format: ansi, json (default ansi)
//	-out string        Write JSON output to this file instead of stdout
//	-view              Open the documents in the viewer
//	-concurrency int   Maximum parallel conversions per level (0 = unlimited)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fwojciec/marky"
	bt "github.com/fwojciec/marky/bubbletea"
	"github.com/fwojciec/marky/fs"
	"github.com/fwojciec/marky/goldmark"
	markyjson "github.com/fwojciec/marky/json"
	"github.com/fwojciec/marky/lipgloss"
	"github.com/fwojciec/marky/markdown"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "marky: %v\n", err)
		stop()
		os.Exit(1)
	}
}

type config struct {
	width       int
	format      string
	out         string
	view        bool
	concurrency int
	patterns    []string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fset := flag.NewFlagSet("marky", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.IntVar(&cfg.width, "width", 80, "Render width in columns")
	fset.StringVar(&cfg.format, "format", "ansi", "Output format: ansi, json")
	fset.StringVar(&cfg.out, "out", "", "Write JSON output to this file instead of stdout")
	fset.BoolVar(&cfg.view, "view", false, "Open the documents in the viewer")
	fset.IntVar(&cfg.concurrency, "concurrency", 0, "Maximum parallel conversions per level (0 = unlimited)")
	if err := fset.Parse(args); err != nil {
		return config{}, err
	}
	cfg.patterns = fset.Args()

	if cfg.width <= 0 {
		return config{}, fmt.Errorf("width must be positive, got %d: %w", cfg.width, marky.ErrValidation)
	}
	if cfg.concurrency < 0 {
		return config{}, fmt.Errorf("concurrency must be non-negative, got %d: %w", cfg.concurrency, marky.ErrValidation)
	}
	switch cfg.format {
	case "ansi", "json":
	default:
		return config{}, fmt.Errorf("format %q: %w", cfg.format, marky.ErrUnsupportedFormat)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	theme := marky.DefaultTheme()
	if err := theme.Table.Validate(); err != nil {
		return fmt.Errorf("table style: %w", err)
	}

	sources, err := readSources(cfg.patterns, stdin)
	if err != nil {
		return err
	}

	converter := goldmark.New(goldmark.WithConcurrency(cfg.concurrency))
	nodes, err := convertAll(ctx, converter, sources, cfg.concurrency)
	if err != nil {
		return err
	}

	switch {
	case cfg.view:
		m := bt.New(nodes, theme).WithTitle(title(sources))
		if err := bt.Run(ctx, m); err != nil {
			return fmt.Errorf("viewer: %w", err)
		}
		return nil

	case cfg.format == "json":
		doc := markdown.Layout(nodes, cfg.width, theme)
		if cfg.out != "" {
			if err := markyjson.Save(cfg.out, doc); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			return nil
		}
		data, err := markyjson.MarshalDocument(doc)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err

	default:
		out := lipgloss.Render(nodes, cfg.width, theme)
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(stdout, out)
		return err
	}
}

func readSources(patterns []string, stdin io.Reader) ([]fs.Source, error) {
	if len(patterns) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []fs.Source{{Path: "-", Content: string(data)}}, nil
	}
	paths, err := fs.Glob(patterns)
	if err != nil {
		return nil, err
	}
	return fs.Read(paths)
}

// convertAll converts every source and joins the documents with a rule
// between them.
func convertAll(ctx context.Context, c *goldmark.Converter, sources []fs.Source, limit int) ([]marky.Composable, error) {
	results := make([][]marky.Composable, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, src := range sources {
		g.Go(func() error {
			nodes, err := c.Convert(ctx, []byte(src.Content))
			if err != nil {
				return fmt.Errorf("convert %s: %w", src.Path, err)
			}
			results[i] = nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var nodes []marky.Composable
	for _, r := range results {
		if len(r) == 0 {
			continue
		}
		if len(nodes) > 0 {
			nodes = append(nodes, marky.Rule{})
		}
		nodes = append(nodes, r...)
	}
	return nodes, nil
}

func title(sources []fs.Source) string {
	paths := make([]string, len(sources))
	for i, s := range sources {
		paths[i] = s.Path
	}
	return strings.Join(paths, ", ")
}
