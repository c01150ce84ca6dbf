// grid-ui renders a demo screen composed with the grid layout engine.
//
// It loads a pane description from TOML, carves the configured surface
// into regions, fills each region's section buffer through its trim
// policy, and renders the result either as ANSI positioned output or as
// a pane-by-pane plain-text preview.
//
// Usage:
//
//	grid-ui [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/grid-ui/config.toml)
//	-preset string  Replace configured panes with a named preset (demo, status, log)
//	-width int      Surface width override (0 = use config)
//	-height int     Surface height override (0 = use config)
//	-ansi           Emit positioned ANSI output instead of the plain preview
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/grid-ui/pkg/config"
	"gitlab.com/tinyland/lab/grid-ui/pkg/grid"
	"gitlab.com/tinyland/lab/grid-ui/pkg/out"
	"gitlab.com/tinyland/lab/grid-ui/pkg/section"
	"gitlab.com/tinyland/lab/grid-ui/pkg/trim"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// paneTitle styles the heading above each pane in the plain preview.
var paneTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		preset      = flag.String("preset", "", "Replace configured panes with a named preset (demo, status, log)")
		width       = flag.Int("width", 0, "Surface width override (0 = use config)")
		height      = flag.Int("height", 0, "Surface height override (0 = use config)")
		ansiOut     = flag.Bool("ansi", false, "Emit positioned ANSI output instead of the plain preview")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("grid-ui %s (%s)\n", version, commit)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Screen.Width = *width
	}
	if *height > 0 {
		cfg.Screen.Height = *height
	}
	if *preset != "" {
		cfg.Panes = config.ScreenPreset(*preset)
	}

	buffers, names, err := composeScreen(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compose screen: %v\n", err)
		os.Exit(1)
	}

	if *ansiOut {
		handler := out.NewANSIHandler(os.Stdout)
		for i, b := range buffers {
			if err := b.Print(handler); err != nil {
				fmt.Fprintf(os.Stderr, "render failed on pane %q: %v\n", names[i], err)
				os.Exit(1)
			}
		}
		if err := handler.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "render flush failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for i, b := range buffers {
		var h out.StringHandler
		b.PrintSafe(&h)
		fmt.Println(paneTitle.Render(names[i]))
		fmt.Print(h.String())
	}
}

// composeScreen carves the configured surface pane by pane and fills
// each resulting section buffer with its content. Panes that cannot be
// carved (surface exhausted or minimum unmet) are skipped with a
// warning; content that overflows its pane is logged at debug level
// with the reconstructed leftover.
func composeScreen(cfg *config.Config, logger *slog.Logger) ([]*section.Buffer, []string, error) {
	frame := grid.NewFrame(0, 0, cfg.Screen.Width, cfg.Screen.Height)
	rect := frame.NextFrame()

	var (
		buffers []*section.Buffer
		names   []string
	)
	for _, pane := range cfg.Panes {
		strategy, err := pane.SplitStrategy()
		if err != nil {
			return nil, nil, err
		}
		divider, err := pane.DividerStrategy()
		if err != nil {
			return nil, nil, err
		}
		policy, err := pane.TrimPolicy()
		if err != nil {
			return nil, nil, err
		}
		side, err := pane.ContentSide()
		if err != nil {
			return nil, nil, err
		}

		piece, ok := strategy.Apply(&rect)
		if !ok {
			logger.Warn("pane does not fit, skipping", "pane", pane.Name,
				"remaining_width", rect.Width(), "remaining_height", rect.Height())
			continue
		}
		logger.Debug("carved pane", "pane", pane.Name,
			"x", piece.StartX, "y", piece.StartY,
			"width", piece.Width(), "height", piece.Height())

		buf := section.New(piece, divider)
		for i, err := range section.AddLines(buf, pane.Content, policy, side) {
			if err == nil {
				continue
			}
			var noSpace *trim.NoSpaceError[string]
			if errors.As(err, &noSpace) {
				logger.Debug("pane content overflow", "pane", pane.Name,
					"entry", i, "leftover", noSpace.Input)
				continue
			}
			return nil, nil, fmt.Errorf("pane %q entry %d: %w", pane.Name, i, err)
		}
		buffers = append(buffers, buf)
		names = append(names, pane.Name)
	}
	return buffers, names, nil
}
