package grid

// Frame is the source of record for the full surface. It can always
// reproduce a fresh full-size Rect for a new render pass, no matter how
// much of the previous frame's rect was carved away.
type Frame struct {
	bounds Rect
}

// NewFrame creates a frame with the given half-open bounds. Usually
// startX and startY are 0 and endX/endY are the terminal size.
func NewFrame(startX, startY, endX, endY int) *Frame {
	return &Frame{bounds: NewRect(startX, startY, endX, endY)}
}

// NextFrame returns a fresh copy of the full surface for a new render
// cycle. Carving the returned rect never affects the frame.
func (f *Frame) NextFrame() Rect {
	return f.bounds
}

// Resize replaces the stored bounds. It affects only future NextFrame
// calls, never a Rect already handed out.
func (f *Frame) Resize(bounds Rect) {
	f.bounds = bounds
}

// Bounds returns the current full-surface bounds.
func (f *Frame) Bounds() Rect {
	return f.bounds
}
