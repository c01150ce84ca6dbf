// Package out defines the instruction stream a section buffer emits and
// the sinks that consume it. An Action is one atomic instruction: move
// the cursor to an absolute position, or print text at the current
// position. Sinks range from a string-collecting debug handler to real
// terminal adapters.
package out

// Action is one atomic output instruction. The marker method prevents
// external implementations; the only variants are Print and MoveTo.
type Action interface {
	action() // sealed marker
}

// Print writes Text at the sink's current cursor position.
type Print struct{ Text string }

func (Print) action() {}

// MoveTo sets the absolute cursor position. Coordinates are in the same
// unit space as grid rects: X is the column, Y is the row.
type MoveTo struct{ X, Y int }

func (MoveTo) action() {}

// Handler consumes actions one at a time and may fail per call. A
// caller emitting a stream stops at the first error and propagates it;
// no retry happens inside the core.
type Handler interface {
	Handle(Action) error
}

// SafeHandler is a handler that is statically guaranteed never to fail.
type SafeHandler interface {
	SafeHandle(Action)
}

// safeAdapter lets any SafeHandler satisfy Handler.
type safeAdapter struct{ h SafeHandler }

func (a safeAdapter) Handle(act Action) error {
	a.h.SafeHandle(act)
	return nil
}

// Safe adapts a SafeHandler into a Handler whose Handle never returns
// an error.
func Safe(h SafeHandler) Handler {
	return safeAdapter{h: h}
}
