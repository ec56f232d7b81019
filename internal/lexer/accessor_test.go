package lexer

import "testing"

type fakeSource struct {
	text       []byte
	styles     []byte
	lineStarts []int
	lineState  []int
	levels     []int
}

func newFakeSource(text string, lineStarts []int) *fakeSource {
	return &fakeSource{
		text:       []byte(text),
		styles:     make([]byte, len(text)),
		lineStarts: lineStarts,
		lineState:  make([]int, len(lineStarts)),
		levels:     make([]int, len(lineStarts)),
	}
}

func (f *fakeSource) Length() int       { return len(f.text) }
func (f *fakeSource) ByteAt(i int) byte { return f.text[i] }
func (f *fakeSource) StyleAt(i int) byte {
	return f.styles[i]
}
func (f *fakeSource) SetStyleFor(pos, n int, style byte) {
	for i := 0; i < n; i++ {
		f.styles[pos+i] = style
	}
}
func (f *fakeSource) LineFromPosition(pos int) int {
	line := 0
	for i, start := range f.lineStarts {
		if start <= pos {
			line = i
		}
	}
	return line
}
func (f *fakeSource) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(f.lineStarts) {
		return len(f.text)
	}
	return f.lineStarts[line]
}
func (f *fakeSource) LineCount() int { return len(f.lineStarts) }
func (f *fakeSource) GetLineState(line int) int {
	if line < 0 || line >= len(f.lineState) {
		return 0
	}
	return f.lineState[line]
}
func (f *fakeSource) SetLineState(line, state int) bool {
	if line < 0 || line >= len(f.lineState) {
		return false
	}
	changed := f.lineState[line] != state
	f.lineState[line] = state
	return changed
}
func (f *fakeSource) GetLevel(line int) int {
	if line < 0 || line >= len(f.levels) {
		return 0
	}
	return f.levels[line]
}
func (f *fakeSource) SetLevel(line, level int) int {
	if line < 0 || line >= len(f.levels) {
		return 0
	}
	prev := f.levels[line]
	f.levels[line] = level
	return prev
}

func TestColourToStylesInclusiveAndAdvancesSegment(t *testing.T) {
	src := newFakeSource("aabbcc", []int{0})
	acc := NewAccessor(src, 0)

	acc.StartSegment(0)
	acc.ColourTo(1, 5) // "aa"
	acc.StartSegment(2)
	acc.ColourTo(3, 6) // "bb"

	want := []byte{5, 5, 6, 6, 0, 0}
	for i, w := range want {
		if src.styles[i] != w {
			t.Fatalf("styles[%d] = %d, want %d (full: %v)", i, src.styles[i], w, src.styles)
		}
	}
}

func TestLineEndStripsTerminator(t *testing.T) {
	src := newFakeSource("ab\r\ncd", []int{0, 4})
	acc := NewAccessor(src, 0)

	if got := acc.LineEnd(0); got != 2 {
		t.Fatalf("LineEnd(0) = %d, want 2", got)
	}
	if got := acc.LineEnd(1); got != 6 {
		t.Fatalf("LineEnd(1) = %d, want 6", got)
	}
}

func TestMatchAndSafeGetCharAt(t *testing.T) {
	src := newFakeSource("function", []int{0})
	acc := NewAccessor(src, 0)

	if !acc.Match(0, "func") {
		t.Fatal("Match(0, \"func\") = false, want true")
	}
	if acc.Match(5, "func") {
		t.Fatal("Match(5, \"func\") = true, want false (out of range)")
	}
	if got := acc.SafeGetCharAt(100, '\x00'); got != 0 {
		t.Fatalf("SafeGetCharAt past end = %d, want 0", got)
	}
}

func TestSetLineStateRoundTrips(t *testing.T) {
	src := newFakeSource("a\nb", []int{0, 2})
	acc := NewAccessor(src, 0)

	acc.SetLineState(1, 7)
	if got := acc.GetLineState(1); got != 7 {
		t.Fatalf("GetLineState(1) = %d, want 7", got)
	}
}
