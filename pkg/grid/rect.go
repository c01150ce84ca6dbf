// Package grid provides the geometric core of the layout engine: an
// integer rectangle type describing a region of the character grid, a
// Frame that owns the full surface, and split strategies that carve
// non-overlapping sub-rectangles out of a shrinking remainder.
//
// All bounds are half-open on both axes: StartX/StartY are inclusive,
// EndX/EndY are exclusive. A rect whose start equals its end on either
// axis has zero area and means "no space remains"; this is a valid
// terminal state, not an error.
package grid

// Rect is an axis-aligned rectangle on the character grid.
// It is a plain value type: copy it freely. Mutation happens only
// through SplitStrategy.Apply or explicit field assignment.
type Rect struct {
	StartX, StartY int
	EndX, EndY     int
}

// NewRect creates a Rect with the given half-open bounds.
func NewRect(startX, startY, endX, endY int) Rect {
	return Rect{StartX: startX, StartY: startY, EndX: endX, EndY: endY}
}

// Width returns the number of columns the rect spans.
func (r Rect) Width() int {
	return r.EndX - r.StartX
}

// Height returns the number of rows the rect spans.
func (r Rect) Height() int {
	return r.EndY - r.StartY
}

// Empty returns true if the rect has zero area on either axis.
func (r Rect) Empty() bool {
	return r.StartX == r.EndX || r.StartY == r.EndY
}

// Extend attempts to fuse other back into r, undoing a single-maximum
// split. It succeeds only when the two rects share the full orthogonal
// span and are edge-adjacent: same StartX/EndX with vertical adjacency,
// or same StartY/EndY with horizontal adjacency. On success r grows to
// the union and Extend returns true; on failure r is untouched and the
// caller keeps other to use or discard as it sees fit.
func (r *Rect) Extend(other Rect) bool {
	if r.StartX == other.StartX && r.EndX == other.EndX {
		switch {
		case r.EndY == other.StartY:
			r.EndY = other.EndY
			return true
		case other.EndY == r.StartY:
			r.StartY = other.StartY
			return true
		}
	}
	if r.StartY == other.StartY && r.EndY == other.EndY {
		switch {
		case r.EndX == other.StartX:
			r.EndX = other.EndX
			return true
		case other.EndX == r.StartX:
			r.StartX = other.StartX
			return true
		}
	}
	return false
}
