package config

// ScreenPreset returns the pane configuration for a named preset.
// If the name is not recognized, the "demo" preset is returned.
func ScreenPreset(name string) []PaneConfig {
	switch name {
	case "status":
		return statusPreset()
	case "log":
		return logPreset()
	case "demo":
		return demoPreset()
	default:
		return demoPreset()
	}
}

// demoPreset returns the default two-pane screen: a header strip and a
// body whose content wraps and accumulates up from the bottom.
func demoPreset() []PaneConfig {
	return []PaneConfig{
		{
			Name:    "header",
			Axis:    "y",
			Size:    3,
			Align:   "minus",
			Divider: "beginning",
			Trim:    "truncate",
			Side:    "plus",
			Content: []string{"grid-ui demo", "two-sided section buffers"},
		},
		{
			Name:    "body",
			Divider: "end",
			Trim:    "split",
			Side:    "minus",
			Content: []string{
				"Content on the minus side accumulates upward from the divider",
				"while still reading top to bottom.",
			},
		},
	}
}

// statusPreset returns a four-region screen: header strip, left
// sidebar, bottom log growing upward, and the remaining body.
func statusPreset() []PaneConfig {
	return []PaneConfig{
		{
			Name:    "header",
			Axis:    "y",
			Size:    3,
			Align:   "minus",
			Divider: "beginning",
			Trim:    "truncate",
			Side:    "plus",
			Content: []string{"status"},
		},
		{
			Name:     "sidebar",
			Axis:     "x",
			Size:     24,
			Align:    "minus",
			MinWidth: 24,
			Divider:  "beginning",
			Trim:     "truncate",
			Side:     "plus",
			Content:  []string{"nav: overview", "nav: panes", "nav: about"},
		},
		{
			Name:    "log",
			Axis:    "y",
			Size:    6,
			Align:   "plus",
			Divider: "end",
			Trim:    "split",
			Side:    "minus",
			Content: []string{"started", "listening", "ready"},
		},
		{
			Name:    "body",
			Divider: "halfway",
			Trim:    "split",
			Side:    "plus",
			Content: []string{"body content begins at the halfway divider"},
		},
	}
}

// logPreset returns a single full-surface pane that fills like a
// scrollback: newest entries pushed on the minus side of an end
// divider.
func logPreset() []PaneConfig {
	return []PaneConfig{
		{
			Name:    "log",
			Divider: "end",
			Trim:    "split",
			Side:    "minus",
			Content: []string{"log preset: pass -config to supply real content"},
		},
	}
}
