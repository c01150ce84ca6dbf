package out

import "strings"

// StringHandler is the reference debug sink: it ignores MoveTo entirely
// and concatenates each Print payload with a trailing newline. Because
// a section buffer emits exactly one Print per row, top to bottom, the
// collected string is a line-per-row snapshot of the rendered region —
// useful for asserting on the instruction stream without a terminal.
type StringHandler struct {
	b strings.Builder
}

// SafeHandle appends Print payloads and discards cursor movement.
func (h *StringHandler) SafeHandle(a Action) {
	if p, ok := a.(Print); ok {
		h.b.WriteString(p.Text)
		h.b.WriteByte('\n')
	}
}

// String returns everything printed so far.
func (h *StringHandler) String() string {
	return h.b.String()
}

// Reset discards the collected output.
func (h *StringHandler) Reset() {
	h.b.Reset()
}
