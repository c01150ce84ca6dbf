package config

import (
	"fmt"

	"gitlab.com/tinyland/lab/grid-ui/pkg/grid"
	"gitlab.com/tinyland/lab/grid-ui/pkg/trim"
)

// SplitStrategy translates the pane's carve rule into a grid strategy.
func (p PaneConfig) SplitStrategy() (grid.SplitStrategy, error) {
	s := grid.NewSplitStrategy()
	if p.MinWidth > 0 {
		s = s.WithMinX(p.MinWidth)
	}
	if p.MinHeight > 0 {
		s = s.WithMinY(p.MinHeight)
	}
	switch p.Axis {
	case "":
		return s, nil
	case "x":
		align, err := parseAlignment(p.Align)
		if err != nil {
			return s, fmt.Errorf("pane %q: %w", p.Name, err)
		}
		return s.WithMaxX(p.Size, align)
	case "y":
		align, err := parseAlignment(p.Align)
		if err != nil {
			return s, fmt.Errorf("pane %q: %w", p.Name, err)
		}
		return s.WithMaxY(p.Size, align)
	default:
		return s, fmt.Errorf("pane %q: unknown axis %q", p.Name, p.Axis)
	}
}

// DividerStrategy translates the pane's divider setting.
func (p PaneConfig) DividerStrategy() (grid.DividerStrategy, error) {
	switch p.Divider {
	case "", "beginning":
		return grid.Beginning{}, nil
	case "end":
		return grid.End{}, nil
	case "halfway":
		return grid.Halfway{}, nil
	case "at":
		if p.DividerPos < 0 {
			return nil, fmt.Errorf("pane %q: divider_pos must be non-negative, got %d", p.Name, p.DividerPos)
		}
		return grid.At{Pos: p.DividerPos}, nil
	default:
		return nil, fmt.Errorf("pane %q: unknown divider %q", p.Name, p.Divider)
	}
}

// TrimPolicy translates the pane's trim setting.
func (p PaneConfig) TrimPolicy() (trim.Strategy[string], error) {
	switch p.Trim {
	case "", "truncate":
		return trim.Truncate{}, nil
	case "ignore":
		return trim.Ignore{}, nil
	case "split":
		return trim.Split{}, nil
	default:
		return nil, fmt.Errorf("pane %q: unknown trim policy %q", p.Name, p.Trim)
	}
}

// ContentSide translates the pane's fill side.
func (p PaneConfig) ContentSide() (grid.Alignment, error) {
	if p.Side == "" {
		return grid.Plus, nil
	}
	a, err := parseAlignment(p.Side)
	if err != nil {
		return a, fmt.Errorf("pane %q: %w", p.Name, err)
	}
	return a, nil
}

// parseAlignment maps "minus"/"plus" onto the grid alignment values.
func parseAlignment(s string) (grid.Alignment, error) {
	switch s {
	case "minus":
		return grid.Minus, nil
	case "plus":
		return grid.Plus, nil
	default:
		return grid.Minus, fmt.Errorf("unknown alignment %q", s)
	}
}
