package out

import (
	"bufio"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// ANSIHandler renders the action stream to any ANSI-capable terminal
// writer. MoveTo becomes a CUP escape sequence (translating the engine's
// 0-based coordinates to the terminal's 1-based ones) and Print is
// written verbatim. Output is buffered; call Flush once the frame's
// actions have all been handled.
type ANSIHandler struct {
	w *bufio.Writer
}

// NewANSIHandler wraps w, typically os.Stdout.
func NewANSIHandler(w io.Writer) *ANSIHandler {
	return &ANSIHandler{w: bufio.NewWriter(w)}
}

// Handle writes one action. Writer errors are propagated verbatim.
func (h *ANSIHandler) Handle(a Action) error {
	switch act := a.(type) {
	case Print:
		_, err := h.w.WriteString(act.Text)
		return err
	case MoveTo:
		_, err := h.w.WriteString(ansi.CursorPosition(act.X+1, act.Y+1))
		return err
	}
	return nil
}

// Flush pushes any buffered output to the underlying writer.
func (h *ANSIHandler) Flush() error {
	return h.w.Flush()
}
