package trim

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/grid-ui/pkg/grid"
)

// texts is a test helper that unwraps lines for comparison.
func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}

// assertLines fails the test if the line texts differ from want.
func assertLines(t *testing.T, label string, got []Line, want ...string) {
	t.Helper()
	gotTexts := texts(got)
	if len(gotTexts) != len(want) {
		t.Fatalf("%s: got %d lines %q, want %d %q", label, len(gotTexts), gotTexts, len(want), want)
	}
	for i := range want {
		if gotTexts[i] != want[i] {
			t.Errorf("%s[%d]: got %q, want %q", label, i, gotTexts[i], want[i])
		}
	}
}

// --- Ignore ---

func TestIgnorePassesThroughVerbatim(t *testing.T) {
	long := "This is a really long line that will break things in a terminal setup."
	assertLines(t, "short", Ignore{}.Trim("small", 10, grid.Plus), "small")
	assertLines(t, "exact", Ignore{}.Trim("This fits.", 10, grid.Plus), "This fits.")
	assertLines(t, "long", Ignore{}.Trim(long, 10, grid.Plus), long)
}

func TestIgnoreBackUnwraps(t *testing.T) {
	if got := (Ignore{}).Back([]Line{NewLine("raw")}, 10, grid.Plus); got != "raw" {
		t.Errorf("Back: got %q, want %q", got, "raw")
	}
}

// --- Truncate ---

func TestTruncatePadsShortInput(t *testing.T) {
	assertLines(t, "pad", Truncate{}.Trim("small", 10, grid.Plus), "small     ")
}

func TestTruncateKeepsExactInput(t *testing.T) {
	assertLines(t, "exact", Truncate{}.Trim("This fits.", 10, grid.Plus), "This fits.")
}

func TestTruncateCutsLongInput(t *testing.T) {
	long := "This is a really long line that will break things in a terminal setup."
	assertLines(t, "cut", Truncate{}.Trim(long, 10, grid.Plus), "This is a ")
}

func TestTruncateCountsGraphemesNotBytes(t *testing.T) {
	// Each flag emoji is one grapheme cluster of several runes.
	in := "🇩🇪🇫🇷🇯🇵🇰🇷🇧🇷"
	got := Truncate{}.Trim(in, 3, grid.Plus)
	assertLines(t, "grapheme cut", got, "🇩🇪🇫🇷🇯🇵")
}

func TestTruncateCombiningMarks(t *testing.T) {
	// "e" + combining acute is one user-perceived character.
	in := "éé"
	got := Truncate{}.Trim(in, 4, grid.Plus)
	assertLines(t, "combining pad", got, "éé  ")
}

// --- Split ---

func TestSplitShortInputPads(t *testing.T) {
	assertLines(t, "short", Split{}.Trim("small", 10, grid.Plus), "small     ")
}

func TestSplitExactWidthSingleLine(t *testing.T) {
	assertLines(t, "exact", Split{}.Trim("This fits.", 10, grid.Plus), "This fits.")
}

func TestSplitChunksLongInput(t *testing.T) {
	got := Split{}.Trim("This is a little too big..", 10, grid.Plus)
	assertLines(t, "chunks", got, "This is a ", "little too", " big..    ")
}

func TestSplitEmptyInputYieldsOneBlankLine(t *testing.T) {
	assertLines(t, "empty", Split{}.Trim("", 4, grid.Plus), "    ")
}

func TestSplitZeroWidthYieldsNoLines(t *testing.T) {
	// A zero-area region has no chunk size; Trim must return promptly
	// with nothing rather than looping on a step of zero.
	if got := (Split{}).Trim("a", 0, grid.Plus); len(got) != 0 {
		t.Errorf("width 0: got %d lines, want none", len(got))
	}
	if got := (Split{}).Trim("abc", -1, grid.Minus); len(got) != 0 {
		t.Errorf("negative width: got %d lines, want none", len(got))
	}
}

func TestSplitMinusReversesChunkOrder(t *testing.T) {
	got := Split{}.Trim("This is a little too big..", 10, grid.Minus)
	assertLines(t, "minus chunks", got, " big..    ", "little too", "This is a ")
}

func TestSplitBackPlusConcatenates(t *testing.T) {
	lines := []Line{NewLine("abc"), NewLine("def")}
	if got := (Split{}).Back(lines, 3, grid.Plus); got != "abcdef" {
		t.Errorf("Back plus: got %q", got)
	}
}

func TestSplitBackMinusPrepends(t *testing.T) {
	// Leftovers arrive in the same pre-reversed order Trim produced.
	lines := []Line{NewLine("def"), NewLine("abc")}
	if got := (Split{}).Back(lines, 3, grid.Minus); got != "abcdef" {
		t.Errorf("Back minus: got %q", got)
	}
}

// --- Round trip ---

func TestSplitRoundTripPadsToMultipleOfWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
	}{
		{"hello world, this wraps", 8},
		{"short", 10},
		{"exactly sixteen!", 8},
		{"abc", 1},
	}
	for _, tt := range tests {
		lines := Split{}.Trim(tt.in, tt.width, grid.Plus)
		back := Split{}.Back(lines, tt.width, grid.Plus)
		wantLen := ((len(tt.in) + tt.width - 1) / tt.width) * tt.width
		if len(tt.in) == 0 {
			wantLen = tt.width
		}
		want := tt.in + strings.Repeat(" ", wantLen-len(tt.in))
		if back != want {
			t.Errorf("round trip %q width %d: got %q, want %q", tt.in, tt.width, back, want)
		}
	}
}

func TestSplitRoundTripMinus(t *testing.T) {
	in := "This is a little too big.."
	lines := Split{}.Trim(in, 10, grid.Minus)
	back := Split{}.Back(lines, 10, grid.Minus)
	want := in + strings.Repeat(" ", 30-len(in))
	if back != want {
		t.Errorf("minus round trip: got %q, want %q", back, want)
	}
}

// --- NoSpaceError ---

func TestNoSpaceErrorMessage(t *testing.T) {
	err := &NoSpaceError[string]{Input: "leftover"}
	if !strings.Contains(err.Error(), "leftover") {
		t.Errorf("error should carry the input, got %q", err.Error())
	}
}
