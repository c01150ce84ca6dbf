package grid

import "errors"

// ErrMaxAlreadySet is returned when a second maximum is configured on a
// SplitStrategy. At most one of MaxX/MaxY may be set; trying to set both
// is a programming error reported at configuration time, never deferred
// to Apply.
var ErrMaxAlreadySet = errors.New("grid: a maximum is already set on this strategy")

// maxAxis identifies which axis, if any, a strategy's maximum limits.
type maxAxis int

const (
	maxNone maxAxis = iota
	maxX
	maxY
)

// SplitStrategy describes how to carve one sub-rectangle out of a
// remainder: optional minimum width/height gates, and at most one
// maximum on a single axis with an edge alignment. A strategy is an
// immutable configuration value, stateless across Apply calls; build it
// once and apply it against as many rects as needed.
type SplitStrategy struct {
	minX, minY       int
	hasMinX, hasMinY bool
	axis             maxAxis
	maxSize          int
	align            Alignment
}

// NewSplitStrategy creates an empty strategy. Applied as-is, it consumes
// the entire remainder.
func NewSplitStrategy() SplitStrategy {
	return SplitStrategy{}
}

// WithMinX returns a copy of s requiring the remainder to be strictly
// wider than v columns; otherwise Apply yields nothing.
func (s SplitStrategy) WithMinX(v int) SplitStrategy {
	s.minX = v
	s.hasMinX = true
	return s
}

// WithMinY returns a copy of s requiring the remainder to be strictly
// taller than v rows; otherwise Apply yields nothing.
func (s SplitStrategy) WithMinY(v int) SplitStrategy {
	s.minY = v
	s.hasMinY = true
	return s
}

// WithMaxX returns a copy of s that carves at most size columns, flush
// to the left edge for Minus or the right edge for Plus. Fails with
// ErrMaxAlreadySet if a maximum is already configured.
func (s SplitStrategy) WithMaxX(size int, a Alignment) (SplitStrategy, error) {
	if s.axis != maxNone {
		return s, ErrMaxAlreadySet
	}
	s.axis = maxX
	s.maxSize = size
	s.align = a
	return s, nil
}

// WithMaxY returns a copy of s that carves at most size rows, flush to
// the top edge for Minus or the bottom edge for Plus. Fails with
// ErrMaxAlreadySet if a maximum is already configured.
func (s SplitStrategy) WithMaxY(size int, a Alignment) (SplitStrategy, error) {
	if s.axis != maxNone {
		return s, ErrMaxAlreadySet
	}
	s.axis = maxY
	s.maxSize = size
	s.align = a
	return s, nil
}

// Apply carves a piece out of rect according to the strategy, shrinking
// rect in place, and returns the piece with ok=true. It returns ok=false
// when the remainder is already zero-area or a configured minimum is not
// strictly exceeded (a remainder exactly equal to the minimum fails).
//
// With no maximum configured the entire remainder is consumed and rect
// collapses to a zero-area rect anchored at its own former end. With a
// maximum, the requested size is clamped to what is available on that
// axis, the carve is flush to the aligned edge, and the orthogonal axis
// is copied in full. Repeated application returns adjacent,
// non-overlapping pieces until exhaustion, then ok=false forever after.
func (s SplitStrategy) Apply(rect *Rect) (Rect, bool) {
	if rect.Empty() {
		return Rect{}, false
	}
	if s.hasMinY && rect.EndY <= rect.StartY+s.minY {
		return Rect{}, false
	}
	if s.hasMinX && rect.EndX <= rect.StartX+s.minX {
		return Rect{}, false
	}

	switch s.axis {
	case maxX:
		size := s.maxSize
		if avail := rect.Width(); size > avail {
			size = avail
		}
		if s.align == Minus {
			piece := Rect{StartX: rect.StartX, StartY: rect.StartY, EndX: rect.StartX + size, EndY: rect.EndY}
			rect.StartX += size
			return piece, true
		}
		piece := Rect{StartX: rect.EndX - size, StartY: rect.StartY, EndX: rect.EndX, EndY: rect.EndY}
		rect.EndX -= size
		return piece, true

	case maxY:
		size := s.maxSize
		if avail := rect.Height(); size > avail {
			size = avail
		}
		if s.align == Minus {
			piece := Rect{StartX: rect.StartX, StartY: rect.StartY, EndX: rect.EndX, EndY: rect.StartY + size}
			rect.StartY += size
			return piece, true
		}
		piece := Rect{StartX: rect.StartX, StartY: rect.EndY - size, EndX: rect.EndX, EndY: rect.EndY}
		rect.EndY -= size
		return piece, true

	default:
		piece := *rect
		rect.StartX = rect.EndX
		rect.StartY = rect.EndY
		return piece, true
	}
}
