// Package section implements two-sided text accumulation inside one
// grid rect. A Buffer owns the rect's worth of layout state: a divider
// row splits the rect into a minus zone filling upward from the divider
// and a plus zone filling downward, each holding width-exact lines
// produced by a trim strategy. Rendering flattens the content into an
// ordered stream of move/print actions covering every row of the rect,
// so stale content from a previous pass can never leak through.
package section

import (
	"strings"

	"gitlab.com/tinyland/lab/grid-ui/pkg/grid"
	"gitlab.com/tinyland/lab/grid-ui/pkg/out"
	"gitlab.com/tinyland/lab/grid-ui/pkg/trim"
)

// Buffer accumulates lines on both sides of a movable divider inside a
// fixed rect. The geometry is frozen at construction; a rect consumed
// into a Buffer should not be retained and mutated elsewhere. Two
// invariants hold across every mutation: len(minus) <= divider and
// len(plus) <= height-divider.
type Buffer struct {
	startX, startY int
	endX, endY     int
	divider        int
	minus, plus    []trim.Line
	blank          string // exactly width spaces, reused for fill rows
}

// New derives a buffer from rect, placing the initial divider according
// to strategy. A divider resolving outside [0, height] is clamped to the
// nearest edge so both side quotas stay non-negative.
func New(rect grid.Rect, strategy grid.DividerStrategy) *Buffer {
	divider := grid.ResolveDivider(strategy, rect.Height())
	if divider < 0 {
		divider = 0
	}
	if h := rect.Height(); divider > h {
		divider = h
	}
	return &Buffer{
		startX:  rect.StartX,
		startY:  rect.StartY,
		endX:    rect.EndX,
		endY:    rect.EndY,
		divider: divider,
		blank:   strings.Repeat(" ", rect.Width()),
	}
}

// Width returns the number of characters that fit on one line.
func (b *Buffer) Width() int { return b.endX - b.startX }

// Height returns the number of lines that fit in the buffer.
func (b *Buffer) Height() int { return b.endY - b.startY }

// StartX returns the column where the buffer begins.
func (b *Buffer) StartX() int { return b.startX }

// StartY returns the row where the buffer begins.
func (b *Buffer) StartY() int { return b.startY }

// EndX returns the exclusive column where the buffer ends.
func (b *Buffer) EndX() int { return b.endX }

// EndY returns the exclusive row where the buffer ends.
func (b *Buffer) EndY() int { return b.endY }

// Divider returns the current divider offset from the top of the rect.
func (b *Buffer) Divider() int { return b.divider }

// push appends one trimmed line to a side, failing when that side's
// quota is exhausted. The quota is the space between the side's edge
// and the divider; the occupancy-versus-quota comparison is the guard,
// so a degenerate quota rejects rather than wrapping around.
func (b *Buffer) push(line trim.Line, side grid.Alignment) bool {
	if side == grid.Minus {
		if len(b.minus) >= b.divider {
			return false
		}
		b.minus = append(b.minus, line)
		return true
	}
	if len(b.plus) >= b.Height()-b.divider {
		return false
	}
	b.plus = append(b.plus, line)
	return true
}

// Add trims input with strategy and appends the resulting lines to the
// given side, one at a time. The moment the side's quota runs out, the
// line that failed plus every not-yet-appended line are folded through
// the strategy's Back into a NoSpaceError carrying the reconstructed
// unconsumed input. Lines appended before the failure stay committed —
// partial progress is retained, not rolled back.
func Add[T any](b *Buffer, input T, strategy trim.Strategy[T], side grid.Alignment) error {
	lines := strategy.Trim(input, b.Width(), side)
	for i, line := range lines {
		if !b.push(line, side) {
			return &trim.NoSpaceError[T]{
				Input: strategy.Back(lines[i:], b.Width(), side),
			}
		}
	}
	return nil
}

// AddLines applies Add once per input. For Minus the inputs are
// processed in reverse so multi-entry content still reads top to bottom
// overall, and the result slice is reversed back afterward so each
// entry aligns positionally with its input. Entries succeed or fail
// independently; one failure does not block later entries.
func AddLines[T any](b *Buffer, inputs []T, strategy trim.Strategy[T], side grid.Alignment) []error {
	errs := make([]error, len(inputs))
	if side == grid.Minus {
		for i := len(inputs) - 1; i >= 0; i-- {
			errs[i] = Add(b, inputs[i], strategy, side)
		}
		return errs
	}
	for i := range inputs {
		errs[i] = Add(b, inputs[i], strategy, side)
	}
	return errs
}

// Shove moves the divider toward one side, reapportioning unused slack
// to the other side without discarding any committed line. Toward
// Minus, the divider tightens to the minus side's occupancy:
// divider = min(divider, len(minus)). Toward Plus, the headroom is
// measured from the total height: divider = max(divider, height -
// len(plus)). A shove can turn previously failing Add calls into
// succeeding ones.
func (b *Buffer) Shove(side grid.Alignment) {
	if side == grid.Minus {
		if occ := len(b.minus); occ < b.divider {
			b.divider = occ
		}
		return
	}
	if floor := b.Height() - len(b.plus); floor > b.divider {
		b.divider = floor
	}
}

// Actions flattens the buffer into its positioned-print instruction
// stream: blank fills from the rect top down to the first occupied
// minus row, the minus lines in reverse storage order, the plus lines
// in storage order starting at the divider row, then blank fills to the
// rect bottom. Every row of the rect is emitted exactly once, so a
// render pass repaints the whole region. Rows are absolute coordinates.
func (b *Buffer) Actions() []out.Action {
	var actions []out.Action
	minusFirst := b.startY + b.divider - len(b.minus)
	for y := b.startY; y < minusFirst; y++ {
		actions = append(actions, out.MoveTo{X: b.startX, Y: y}, out.Print{Text: b.blank})
	}
	for i := len(b.minus) - 1; i >= 0; i-- {
		y := minusFirst + (len(b.minus) - 1 - i)
		actions = append(actions, out.MoveTo{X: b.startX, Y: y}, out.Print{Text: b.minus[i].Text()})
	}
	for i, line := range b.plus {
		y := b.startY + b.divider + i
		actions = append(actions, out.MoveTo{X: b.startX, Y: y}, out.Print{Text: line.Text()})
	}
	for y := b.startY + b.divider + len(b.plus); y < b.endY; y++ {
		actions = append(actions, out.MoveTo{X: b.startX, Y: y}, out.Print{Text: b.blank})
	}
	return actions
}

// Print emits the buffer's actions to handler, stopping at the first
// error and propagating it.
func (b *Buffer) Print(handler out.Handler) error {
	for _, a := range b.Actions() {
		if err := handler.Handle(a); err != nil {
			return err
		}
	}
	return nil
}

// PrintSafe emits the buffer's actions to a handler that cannot fail.
func (b *Buffer) PrintSafe(handler out.SafeHandler) {
	for _, a := range b.Actions() {
		handler.SafeHandle(a)
	}
}
