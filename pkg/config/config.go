// Package config loads the demo screen description: overall surface
// size plus an ordered list of panes, each carved from the remaining
// surface by a split rule and filled with content through a trim
// policy. Configuration lives in TOML.
package config

// Config is the root configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Screen  ScreenConfig  `toml:"screen"`
	Panes   []PaneConfig  `toml:"panes"`
}

// GeneralConfig holds settings that are not part of the screen layout.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// ScreenConfig fixes the surface the frame starts from. Zero values
// mean "use the defaults" (80x24).
type ScreenConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// PaneConfig describes one region: how to carve it and what to put in
// it. Axis is "x", "y", or "" for a pane that consumes the whole
// remainder. Align and Side accept "minus" or "plus"; Trim accepts
// "ignore", "truncate", or "split"; Divider accepts "beginning", "end",
// "halfway", or a non-negative row offset via DividerPos.
type PaneConfig struct {
	Name       string   `toml:"name"`
	Axis       string   `toml:"axis"`
	Size       int      `toml:"size"`
	Align      string   `toml:"align"`
	MinWidth   int      `toml:"min_width"`
	MinHeight  int      `toml:"min_height"`
	Divider    string   `toml:"divider"`
	DividerPos int      `toml:"divider_pos"`
	Trim       string   `toml:"trim"`
	Side       string   `toml:"side"`
	Content    []string `toml:"content"`
}

// DefaultConfig returns an 80x24 surface with the "demo" screen preset.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Screen: ScreenConfig{
			Width:  80,
			Height: 24,
		},
		Panes: ScreenPreset("demo"),
	}
}
