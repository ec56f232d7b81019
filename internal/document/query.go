package document

import "github.com/dshills/scintilla/internal/charset"

// wordClass maps a byte's classification to the space/word/punctuation
// view word navigation uses: newline characters behave like whitespace for the
// purpose of skipping across line boundaries mid-word-motion.
func (d *Document) wordClass(b byte) charset.Class {
	c := d.classify.Get(b)
	if c == charset.ClassNewline {
		return charset.ClassSpace
	}
	if d.cp == charset.CpUTF8 && b >= 0x80 {
		return charset.ClassWord
	}
	return c
}

// VCHomePosition returns the position of the first non-space, non-tab
// character on position's line (the line end if the line holds only
// blanks), or the line start if position is already at that column
// ("virtual column home": pressing Home a second time goes all the way
// left).
func (d *Document) VCHomePosition(position int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	line := d.cb.LineFromPosition(position)
	start := d.cb.LineStart(line)
	end := d.lineEndLocked(line)
	text := start
	for text < end && (d.cb.ByteAt(text) == ' ' || d.cb.ByteAt(text) == '\t') {
		text++
	}
	if position == text {
		return start
	}
	return text
}

// GetColumn returns the column of pos on its line, expanding tabs to the
// next multiple of the document's tab width and counting each character
// (not byte) as one column.
func (d *Document) GetColumn(pos int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	line := d.cb.LineFromPosition(pos)
	if line < 0 || line >= d.cb.LineCount() {
		return 0
	}
	column := 0
	for i := d.cb.LineStart(line); i < pos; {
		ch := d.cb.ByteAt(i)
		switch {
		case ch == '\t':
			column = nextTab(column, d.tabWidth)
			i++
		case ch == '\r' || ch == '\n':
			return column
		case i >= d.cb.Length():
			return column
		default:
			column++
			i = charset.NextPosition(d.cb, d.cp, i, 1)
		}
	}
	return column
}

// FindColumn returns the position of column on line, expanding tabs the
// same way GetColumn does. A column past the end of the line's text
// returns the line's end position.
func (d *Document) FindColumn(line, column int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if line < 0 || line >= d.cb.LineCount() {
		return d.cb.LineStart(line)
	}
	position := d.cb.LineStart(line)
	current := 0
	for current < column && position < d.cb.Length() {
		ch := d.cb.ByteAt(position)
		switch {
		case ch == '\t':
			current = nextTab(current, d.tabWidth)
			if current > column {
				return position
			}
			position++
		case ch == '\r' || ch == '\n':
			return position
		default:
			current++
			position = charset.NextPosition(d.cb, d.cp, position, 1)
		}
	}
	return position
}

func nextTab(col, tabWidth int) int {
	return (col/tabWidth + 1) * tabWidth
}

// ExtendWordSelect extends pos by one word in direction delta (delta < 0
// backward, otherwise forward), for double-click-and-drag word
// selection. When onlyWordCharacters is set, only ccWord characters
// extend the selection; otherwise the class of the adjacent character
// drives which class is walked (so extending from inside a run of
// punctuation stays in that punctuation run).
func (d *Document) ExtendWordSelect(pos, delta int, onlyWordCharacters bool) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ccStart := charset.ClassWord
	length := d.cb.Length()
	if delta < 0 {
		if !onlyWordCharacters && pos > 0 {
			ccStart = d.wordClass(d.cb.ByteAt(pos - 1))
		}
		for pos > 0 && d.wordClass(d.cb.ByteAt(pos-1)) == ccStart {
			pos--
		}
	} else {
		if !onlyWordCharacters && pos < length {
			ccStart = d.wordClass(d.cb.ByteAt(pos))
		}
		for pos < length && d.wordClass(d.cb.ByteAt(pos)) == ccStart {
			pos++
		}
	}
	return charset.MovePositionOutsideChar(d.cb, d.cp, pos, delta, true)
}

// NextWordStart finds the start of the next word from pos, in a forward
// (delta >= 0) or backward (delta < 0) direction. Forward, the run of the
// class at pos is crossed, then the whitespace after it; backward, the
// whitespace before pos is crossed, then the run of the class found past it.
func (d *Document) NextWordStart(pos, delta int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	length := d.cb.Length()
	if delta < 0 {
		for pos > 0 && d.wordClass(d.cb.ByteAt(pos-1)) == charset.ClassSpace {
			pos--
		}
		if pos > 0 {
			cc := d.wordClass(d.cb.ByteAt(pos - 1))
			for pos > 0 && d.wordClass(d.cb.ByteAt(pos-1)) == cc {
				pos--
			}
		}
	} else {
		if pos < length {
			cc := d.wordClass(d.cb.ByteAt(pos))
			for pos < length && d.wordClass(d.cb.ByteAt(pos)) == cc {
				pos++
			}
		}
		for pos < length && d.wordClass(d.cb.ByteAt(pos)) == charset.ClassSpace {
			pos++
		}
	}
	return pos
}

// NextWordEnd finds the end of the current/next word from pos, in a
// forward (delta >= 0) or backward (delta < 0) direction.
func (d *Document) NextWordEnd(pos, delta int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	length := d.cb.Length()
	if delta < 0 {
		if pos > 0 {
			cc := d.wordClass(d.cb.ByteAt(pos - 1))
			if cc != charset.ClassSpace {
				for pos > 0 && d.wordClass(d.cb.ByteAt(pos-1)) == cc {
					pos--
				}
			}
			for pos > 0 && d.wordClass(d.cb.ByteAt(pos-1)) == charset.ClassSpace {
				pos--
			}
		}
	} else {
		for pos < length && d.wordClass(d.cb.ByteAt(pos)) == charset.ClassSpace {
			pos++
		}
		if pos < length {
			cc := d.wordClass(d.cb.ByteAt(pos))
			for pos < length && d.wordClass(d.cb.ByteAt(pos)) == cc {
				pos++
			}
		}
	}
	return pos
}

func (d *Document) isWordOrPunct(b byte) bool {
	c := d.wordClass(b)
	return c == charset.ClassWord || c == charset.ClassPunctuation
}

// isWordStartAtLocked reports whether pos begins a word-or-punctuation
// run: the byte at pos is word/punct and the byte before it is a
// different class.
func (d *Document) isWordStartAtLocked(pos int) bool {
	if pos <= 0 {
		return true
	}
	if pos >= d.cb.Length() {
		return false
	}
	return d.isWordOrPunct(d.cb.ByteAt(pos)) && d.wordClass(d.cb.ByteAt(pos)) != d.wordClass(d.cb.ByteAt(pos-1))
}

// isWordEndAtLocked reports whether pos ends a word-or-punctuation run:
// the byte before pos is word/punct and the byte at pos is a different
// class.
func (d *Document) isWordEndAtLocked(pos int) bool {
	if pos >= d.cb.Length() {
		return true
	}
	if pos <= 0 {
		return false
	}
	return d.isWordOrPunct(d.cb.ByteAt(pos-1)) && d.wordClass(d.cb.ByteAt(pos-1)) != d.wordClass(d.cb.ByteAt(pos))
}

// IsWordAt reports whether [start, end) is exactly one word-or-punct run:
// both edges show a class transition and start < end.
func (d *Document) IsWordAt(start, end int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return start < end && d.isWordStartAtLocked(start) && d.isWordEndAtLocked(end)
}

// braceOpposite returns the matching brace character for b, or 0 if b is
// not a brace.
func braceOpposite(b byte) byte {
	switch b {
	case '(':
		return ')'
	case ')':
		return '('
	case '[':
		return ']'
	case ']':
		return '['
	case '{':
		return '}'
	case '}':
		return '{'
	case '<':
		return '>'
	case '>':
		return '<'
	default:
		return 0
	}
}

// BraceMatch finds the brace matching the one at position, scanning in
// the direction implied by which half of the pair it is, tracking
// nesting depth, and only counting braces styled the same as the
// starting one once styling has reached that far (braces inside a
// differently-styled string or comment don't count once the lexer has
// actually classified them). Returns -1 if position holds no brace or no
// match is found.
func (d *Document) BraceMatch(position int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if position < 0 || position >= d.cb.Length() {
		return -1
	}
	chBrace := d.cb.ByteAt(position)
	chSeek := braceOpposite(chBrace)
	if chSeek == 0 {
		return -1
	}
	styBrace := d.cb.StyleAt(position)
	direction := -1
	if chBrace == '(' || chBrace == '[' || chBrace == '{' || chBrace == '<' {
		direction = 1
	}
	depth := 1
	pos := charset.NextPosition(d.cb, d.cp, position, direction)
	for pos >= 0 && pos < d.cb.Length() {
		chAtPos := d.cb.ByteAt(pos)
		styAtPos := d.cb.StyleAt(pos)
		if pos > d.endStyled || styAtPos == styBrace {
			if chAtPos == chBrace {
				depth++
			}
			if chAtPos == chSeek {
				depth--
			}
			if depth == 0 {
				return pos
			}
		}
		before := pos
		pos = charset.NextPosition(d.cb, d.cp, pos, direction)
		if pos == before {
			break
		}
	}
	return -1
}
