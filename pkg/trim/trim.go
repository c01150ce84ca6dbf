// Package trim converts logical text into width-exact display lines and
// back. A Strategy turns one piece of input into zero or more lines
// whose visual length equals the target width, and reconstructs a
// best-effort original from the lines a section buffer could not place.
//
// Width is measured in grapheme clusters throughout — user-perceived
// characters, not bytes or runes — so combining marks and multi-byte
// sequences count once.
package trim

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"gitlab.com/tinyland/lab/grid-ui/pkg/grid"
)

// Line is a display-ready string produced by a Strategy. A section
// buffer only accepts Lines, so all text entering a buffer has passed
// through some strategy. It is opaque; user-defined strategies mint
// Lines with NewLine.
type Line struct {
	text string
}

// NewLine wraps already-processed text as a Line. Only Strategy
// implementations should call this.
func NewLine(text string) Line {
	return Line{text: text}
}

// Text returns the display-ready string.
func (l Line) Text() string {
	return l.text
}

// Strategy converts a logical input into width-exact display lines and
// reconstructs unused lines back into an input for error reporting. T
// is the logical input type; the built-in strategies all use string.
//
// Trim must orient its output so that for Plus the lines read top to
// bottom in slice order, and for Minus the slice is pre-reversed: the
// buffer appends lines one at a time and renders the minus side in
// reverse storage order, so a pre-reversed slice comes out reading top
// to bottom again.
type Strategy[T any] interface {
	// Trim converts input into zero or more lines of exactly width
	// grapheme clusters (policies may document exceptions).
	Trim(input T, width int, align grid.Alignment) []Line
	// Back folds leftover lines into a best-effort reconstruction of
	// the unconsumed input. Fidelity depends on the policy.
	Back(lines []Line, width int, align grid.Alignment) T
}

// NoSpaceError reports that a side of a section buffer ran out of rows.
// Input holds the strategy's reconstruction of everything that did not
// fit; lines placed before space ran out stay committed.
type NoSpaceError[T any] struct {
	Input T
}

func (e *NoSpaceError[T]) Error() string {
	return fmt.Sprintf("trim: no space left for %v", e.Input)
}

// graphemes splits s into grapheme clusters.
func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// padToWidth extends s with trailing spaces until it spans exactly
// width grapheme clusters. s must not already exceed width.
func padToWidth(s string, have, width int) string {
	if have >= width {
		return s
	}
	return s + strings.Repeat(" ", width-have)
}

// Ignore passes input through untouched as a single line, with no width
// guarantee. Useful for debugging or quick code; a too-long line will
// spill into whatever lies right of the owning rect and corrupt
// neighboring regions. Bad formatting is exactly what this module
// exists to prevent — use Ignore at your own risk.
type Ignore struct{}

// Trim wraps input verbatim as one Line.
func (Ignore) Trim(input string, _ int, _ grid.Alignment) []Line {
	return []Line{NewLine(input)}
}

// Back unwraps the single line.
func (Ignore) Back(lines []Line, _ int, _ grid.Alignment) string {
	return lines[0].text
}

// Truncate produces exactly one line of exactly width grapheme
// clusters: short input is padded with trailing spaces, long input is
// cut. The cut tail is gone for good — Back returns the trimmed line as
// is.
type Truncate struct{}

// Trim pads or cuts input to exactly width clusters.
func (Truncate) Trim(input string, width int, _ grid.Alignment) []Line {
	gs := graphemes(input)
	if len(gs) > width {
		gs = gs[:width]
	}
	return []Line{NewLine(padToWidth(strings.Join(gs, ""), len(gs), width))}
}

// Back unwraps the single line. Anything Trim cut off is lost.
func (Truncate) Back(lines []Line, _ int, _ grid.Alignment) string {
	return lines[0].text
}

// Split breaks input into consecutive chunks of exactly width grapheme
// clusters, padding only the final chunk with trailing spaces. Empty
// input becomes a single all-blank line so it still occupies a row.
// Under Minus the chunk order is reversed before return, per the
// Strategy orientation contract.
type Split struct{}

// Trim chunks input at width-cluster boundaries. A non-positive width
// yields no lines; there is no chunk size to make progress with.
func (Split) Trim(input string, width int, align grid.Alignment) []Line {
	if width <= 0 {
		return nil
	}
	gs := graphemes(input)
	if len(gs) == 0 {
		gs = []string{" "}
	}
	var lines []Line
	for start := 0; start < len(gs); start += width {
		end := start + width
		if end >= len(gs) {
			// Final chunk: pad out to exact width.
			chunk := strings.Join(gs[start:], "")
			lines = append(lines, NewLine(padToWidth(chunk, len(gs)-start, width)))
			break
		}
		lines = append(lines, NewLine(strings.Join(gs[start:end], "")))
	}
	if align == grid.Minus {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}

// Back concatenates leftover chunks into one string, prepending under
// Minus and appending under Plus so the reconstruction reads in the
// original order. Padding added to the final chunk survives the round
// trip.
func (Split) Back(lines []Line, _ int, align grid.Alignment) string {
	var b strings.Builder
	if align == grid.Minus {
		for i := len(lines) - 1; i >= 0; i-- {
			b.WriteString(lines[i].text)
		}
		return b.String()
	}
	for _, l := range lines {
		b.WriteString(l.text)
	}
	return b.String()
}
