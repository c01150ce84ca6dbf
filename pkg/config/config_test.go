package config

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/grid-ui/pkg/grid"
	"gitlab.com/tinyland/lab/grid-ui/pkg/trim"
)

const sampleTOML = `
[general]
log_level = "debug"

[screen]
width = 120
height = 40

[[panes]]
name = "header"
axis = "y"
size = 3
align = "minus"
trim = "truncate"
content = ["status"]

[[panes]]
name = "log"
divider = "end"
trim = "split"
side = "minus"
`

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("log level: got %q, want %q", cfg.General.LogLevel, "debug")
	}
	if cfg.Screen.Width != 120 || cfg.Screen.Height != 40 {
		t.Errorf("screen: got %dx%d, want 120x40", cfg.Screen.Width, cfg.Screen.Height)
	}
	if len(cfg.Panes) != 2 {
		t.Fatalf("panes: got %d, want 2", len(cfg.Panes))
	}
	if cfg.Panes[0].Name != "header" || cfg.Panes[1].Name != "log" {
		t.Errorf("pane names: got %q, %q", cfg.Panes[0].Name, cfg.Panes[1].Name)
	}
}

func TestDefaultConfigResolves(t *testing.T) {
	cfg := DefaultConfig()
	for _, p := range cfg.Panes {
		if _, err := p.SplitStrategy(); err != nil {
			t.Errorf("pane %q split: %v", p.Name, err)
		}
		if _, err := p.DividerStrategy(); err != nil {
			t.Errorf("pane %q divider: %v", p.Name, err)
		}
		if _, err := p.TrimPolicy(); err != nil {
			t.Errorf("pane %q trim: %v", p.Name, err)
		}
		if _, err := p.ContentSide(); err != nil {
			t.Errorf("pane %q side: %v", p.Name, err)
		}
	}
}

func TestResolveHeaderPane(t *testing.T) {
	p := PaneConfig{Name: "header", Axis: "y", Size: 3, Align: "minus", Trim: "truncate"}
	s, err := p.SplitStrategy()
	if err != nil {
		t.Fatal(err)
	}
	r := grid.NewRect(0, 0, 80, 24)
	piece, ok := s.Apply(&r)
	if !ok {
		t.Fatal("header strategy should carve")
	}
	if piece.Height() != 3 || piece.Width() != 80 {
		t.Errorf("header piece: got %dx%d, want 80x3", piece.Width(), piece.Height())
	}
	policy, err := p.TrimPolicy()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := policy.(trim.Truncate); !ok {
		t.Errorf("trim policy: got %T, want trim.Truncate", policy)
	}
}

func TestResolveRejectsUnknownValues(t *testing.T) {
	if _, err := (PaneConfig{Axis: "z", Align: "minus"}).SplitStrategy(); err == nil {
		t.Error("unknown axis should fail")
	}
	if _, err := (PaneConfig{Axis: "x", Size: 5, Align: "sideways"}).SplitStrategy(); err == nil {
		t.Error("unknown alignment should fail")
	}
	if _, err := (PaneConfig{Divider: "nowhere"}).DividerStrategy(); err == nil {
		t.Error("unknown divider should fail")
	}
	if _, err := (PaneConfig{Trim: "shred"}).TrimPolicy(); err == nil {
		t.Error("unknown trim policy should fail")
	}
	if _, err := (PaneConfig{Divider: "at", DividerPos: -3}).DividerStrategy(); err == nil {
		t.Error("negative divider_pos should fail")
	}
}

func TestScreenPresets(t *testing.T) {
	tests := []struct {
		name      string
		wantPanes []string
	}{
		{"demo", []string{"header", "body"}},
		{"status", []string{"header", "sidebar", "log", "body"}},
		{"log", []string{"log"}},
		{"no-such-preset", []string{"header", "body"}},
	}
	for _, tt := range tests {
		panes := ScreenPreset(tt.name)
		if len(panes) != len(tt.wantPanes) {
			t.Errorf("%s: got %d panes, want %d", tt.name, len(panes), len(tt.wantPanes))
			continue
		}
		for i, p := range panes {
			if p.Name != tt.wantPanes[i] {
				t.Errorf("%s: pane %d is %q, want %q", tt.name, i, p.Name, tt.wantPanes[i])
			}
			if _, err := p.SplitStrategy(); err != nil {
				t.Errorf("%s: pane %q split: %v", tt.name, p.Name, err)
			}
			if _, err := p.DividerStrategy(); err != nil {
				t.Errorf("%s: pane %q divider: %v", tt.name, p.Name, err)
			}
			if _, err := p.TrimPolicy(); err != nil {
				t.Errorf("%s: pane %q trim: %v", tt.name, p.Name, err)
			}
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRID_UI_LOG_LEVEL", "warn")
	t.Setenv("GRID_UI_WIDTH", "132")
	cfg, err := LoadFromReader(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("env log level: got %q, want %q", cfg.General.LogLevel, "warn")
	}
	if cfg.Screen.Width != 132 {
		t.Errorf("env width: got %d, want 132", cfg.Screen.Width)
	}
}
