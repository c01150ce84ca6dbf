package grid

// Alignment selects one of the two fill directions relative to a
// divider or edge: Minus grows toward the low edge (up/left), Plus
// toward the high edge (down/right). Its exact meaning depends on where
// it is used.
type Alignment int

const (
	// Minus aligns to the low edge: up for the y-axis, left for the x-axis.
	Minus Alignment = iota
	// Plus aligns to the high edge: down for the y-axis, right for the x-axis.
	Plus
)

// String returns "Minus" or "Plus".
func (a Alignment) String() string {
	if a == Minus {
		return "Minus"
	}
	return "Plus"
}

// DividerStrategy fixes the initial divider row of a section buffer:
// the cut point between the minus zone (filling upward) and the plus
// zone (filling downward). The marker method prevents external
// implementations.
type DividerStrategy interface {
	divider(height int) int // sealed marker; resolves the offset from the top
}

// Beginning puts the divider at the top: no room for minus content, all
// plus content begins at the first row.
type Beginning struct{}

func (Beginning) divider(int) int { return 0 }

// End puts the divider at the bottom: no room for plus content, all
// minus content ends at the last row.
type End struct{}

func (End) divider(height int) int { return height }

// Halfway puts the divider in the middle, rounding down.
type Halfway struct{}

func (Halfway) divider(height int) int { return height / 2 }

// At puts the divider Pos rows below the top: Pos rows of minus budget,
// height-Pos rows of plus budget.
type At struct{ Pos int }

func (a At) divider(int) int { return a.Pos }

// ResolveDivider returns the divider offset a strategy yields for a
// buffer of the given height.
func ResolveDivider(s DividerStrategy, height int) int {
	return s.divider(height)
}
