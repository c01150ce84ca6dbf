package out

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ScreenHandler renders the action stream onto a tcell Screen. MoveTo
// sets the pen position; Print writes one grapheme cluster per call to
// SetContent, advancing the pen by each cluster's display width so wide
// characters occupy their two cells. Writing never fails once the
// screen exists, so this is a SafeHandler; remember to call Show on the
// screen after the frame's actions have been handled.
type ScreenHandler struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

// NewScreenHandler creates a handler drawing on screen with the given
// style.
func NewScreenHandler(screen tcell.Screen, style tcell.Style) *ScreenHandler {
	return &ScreenHandler{screen: screen, style: style}
}

// SafeHandle applies one action to the screen.
func (h *ScreenHandler) SafeHandle(a Action) {
	switch act := a.(type) {
	case MoveTo:
		h.x, h.y = act.X, act.Y
	case Print:
		gr := uniseg.NewGraphemes(act.Text)
		for gr.Next() {
			runes := gr.Runes()
			var comb []rune
			if len(runes) > 1 {
				comb = runes[1:]
			}
			h.screen.SetContent(h.x, h.y, runes[0], comb, h.style)
			h.x += runewidth.StringWidth(gr.Str())
		}
	}
}
