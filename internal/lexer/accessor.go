package lexer

// Source is the narrow slice of Document an Accessor reads and writes
// through: text and style bytes, line boundaries, per-line lexer state,
// and fold levels. Document satisfies this directly.
type Source interface {
	Length() int
	ByteAt(pos int) byte
	StyleAt(pos int) byte
	SetStyleFor(pos, n int, style byte)

	LineFromPosition(pos int) int
	LineStart(line int) int
	LineCount() int

	GetLineState(line int) int
	SetLineState(line, state int) bool

	GetLevel(line int) int
	SetLevel(line, level int) int
}

// Accessor is the LexAccessor Document hands to a Lexer's Lex and Fold
// methods. It tracks the current styling segment so a lexer can build up
// a token byte by byte and commit its style in one ColourTo call, the way
// the original LexAccessor/StyleContext pairing works.
type Accessor struct {
	src      Source
	startSeg int
}

// NewAccessor creates an Accessor over src with the styling segment
// starting at startPos.
func NewAccessor(src Source, startPos int) *Accessor {
	return &Accessor{src: src, startSeg: startPos}
}

// CharAt returns the text byte at pos, or 0 past the end of the document.
func (a *Accessor) CharAt(pos int) byte {
	if pos < 0 || pos >= a.src.Length() {
		return 0
	}
	return a.src.ByteAt(pos)
}

// SafeGetCharAt returns the text byte at pos, or def past the end of the
// document (a lexer-chosen sentinel, conventionally 0 or a space).
func (a *Accessor) SafeGetCharAt(pos int, def byte) byte {
	if pos < 0 || pos >= a.src.Length() {
		return def
	}
	return a.src.ByteAt(pos)
}

// StyleAt returns the current style byte at pos.
func (a *Accessor) StyleAt(pos int) byte {
	if pos < 0 || pos >= a.src.Length() {
		return 0
	}
	return a.src.StyleAt(pos)
}

// Length returns the document's length in bytes.
func (a *Accessor) Length() int {
	return a.src.Length()
}

// GetLine returns the line containing pos.
func (a *Accessor) GetLine(pos int) int {
	return a.src.LineFromPosition(pos)
}

// LineStart returns the byte offset of the start of line.
func (a *Accessor) LineStart(line int) int {
	return a.src.LineStart(line)
}

// LineEnd returns the byte offset of the end of line's text, before its
// terminator.
func (a *Accessor) LineEnd(line int) int {
	next := a.src.LineStart(line + 1)
	end := next
	if end > a.src.LineStart(line) && end <= a.src.Length() {
		if end > 0 && a.CharAt(end-1) == '\n' {
			end--
		}
		if end > 0 && a.CharAt(end-1) == '\r' {
			end--
		}
	}
	return end
}

// GetLineState returns the lexer's saved state for line.
func (a *Accessor) GetLineState(line int) int {
	return a.src.GetLineState(line)
}

// SetLineState records the lexer's state for line, for use when a later
// incremental re-lex resumes partway through the document.
func (a *Accessor) SetLineState(line, state int) {
	a.src.SetLineState(line, state)
}

// GetLevel returns the raw fold-level value of line.
func (a *Accessor) GetLevel(line int) int {
	return a.src.GetLevel(line)
}

// SetLevel sets the raw fold-level value of line.
func (a *Accessor) SetLevel(line, level int) int {
	return a.src.SetLevel(line, level)
}

// Match reports whether s occurs at pos.
func (a *Accessor) Match(pos int, s string) bool {
	if pos < 0 || pos+len(s) > a.src.Length() {
		return false
	}
	for i := 0; i < len(s); i++ {
		if a.src.ByteAt(pos+i) != s[i] {
			return false
		}
	}
	return true
}

// StartAt resets the styling segment to pos, discarding any pending
// unflushed span (the lexer is restarting from a clean boundary).
func (a *Accessor) StartAt(pos int) {
	a.startSeg = pos
}

// StartSegment marks pos as the start of the token currently being
// accumulated; the next ColourTo call styles from here.
func (a *Accessor) StartSegment(pos int) {
	a.startSeg = pos
}

// ColourTo applies style to every byte from the current segment start
// through pos inclusive, then advances the segment start past pos.
func (a *Accessor) ColourTo(pos int, style byte) {
	if pos < a.startSeg {
		return
	}
	n := pos - a.startSeg + 1
	a.src.SetStyleFor(a.startSeg, n, style)
	a.startSeg = pos + 1
}

// Flush is a no-op: ColourTo writes styles directly into the document's
// style bytes, so there is never a buffered span left to commit.
func (a *Accessor) Flush() {}
