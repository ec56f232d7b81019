package charset

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ByteReader is the minimal window onto buffer bytes character-boundary
// arithmetic needs. CellBuffer implements it directly.
type ByteReader interface {
	Length() int
	ByteAt(pos int) byte
}

// utf8BytesOfLead maps a UTF-8 lead byte to the total character width it
// announces, 0 for continuation/invalid bytes (treated as width 1).
func utf8BytesOfLead(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0 // continuation byte or invalid lead
	}
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// MovePositionOutsideChar nudges pos so it never sits inside a multi-byte
// character or, when checkLineEnd is set, between the CR and LF of a
// CRLF pair. dir < 0 snaps backward, dir > 0 forward, dir == 0 picks
// whichever neighbor produces the smaller move.
func MovePositionOutsideChar(r ByteReader, cp CodePage, pos int, dir int, checkLineEnd bool) int {
	length := r.Length()
	if pos <= 0 || pos >= length {
		return clampPos(pos, length)
	}

	if checkLineEnd && pos > 0 && pos < length && r.ByteAt(pos-1) == '\r' && r.ByteAt(pos) == '\n' {
		if dir >= 0 {
			return pos + 1
		}
		return pos - 1
	}

	if cp == CpUTF8 {
		return moveOutsideUTF8(r, pos, dir)
	}
	if IsDBCS(cp) {
		return moveOutsideDBCS(r, cp, pos, dir)
	}
	return pos
}

func moveOutsideUTF8(r ByteReader, pos int, dir int) int {
	length := r.Length()
	start := pos
	for start > 0 && isUTF8Continuation(r.ByteAt(start)) {
		start--
	}
	width := utf8BytesOfLead(r.ByteAt(start))
	if width == 0 {
		width = 1
	}
	end := start + width
	if end > length {
		end = length
	}
	if start == pos {
		return pos
	}
	if dir < 0 {
		return start
	}
	if dir > 0 {
		return end
	}
	if pos-start <= end-pos {
		return start
	}
	return end
}

// moveOutsideDBCS anchors at the containing line start (never a trail
// byte) and walks forward in 1- or 2-byte steps to find pos's boundary.
func moveOutsideDBCS(r ByteReader, cp CodePage, pos int, dir int) int {
	lineStart := pos
	for lineStart > 0 {
		b := r.ByteAt(lineStart - 1)
		if b == '\n' || b == '\r' {
			break
		}
		lineStart--
	}

	i := lineStart
	length := r.Length()
	for i < length {
		width := 1
		if IsLeadByte(cp, r.ByteAt(i)) && i+1 < length {
			width = 2
		}
		next := i + width
		if pos == i {
			return pos
		}
		if pos < next {
			if dir < 0 {
				return i
			}
			if dir > 0 {
				return next
			}
			if pos-i <= next-pos {
				return i
			}
			return next
		}
		i = next
	}
	return pos
}

func clampPos(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

// NextPosition returns the next valid character boundary from pos in
// direction dir (>0 forward, <0 backward), one character step.
func NextPosition(r ByteReader, cp CodePage, pos int, dir int) int {
	length := r.Length()
	if dir >= 0 {
		if pos >= length {
			return length
		}
		width := 1
		switch {
		case cp == CpUTF8:
			width = utf8BytesOfLead(r.ByteAt(pos))
			if width == 0 {
				width = 1
			}
		case IsDBCS(cp):
			if IsLeadByte(cp, r.ByteAt(pos)) && pos+1 < length {
				width = 2
			}
		}
		next := pos + width
		if next > length {
			next = length
		}
		return next
	}

	if pos <= 0 {
		return 0
	}
	if cp == CpUTF8 {
		p := pos - 1
		for p > 0 && isUTF8Continuation(r.ByteAt(p)) {
			p--
		}
		return p
	}
	if IsDBCS(cp) {
		return moveOutsideDBCS(r, cp, pos-1, -1)
	}
	return pos - 1
}

// GetCharacterAndWidth returns the codepoint at pos and its byte width.
func GetCharacterAndWidth(r ByteReader, cp CodePage, pos int) (rune, int) {
	length := r.Length()
	if pos < 0 || pos >= length {
		return 0, 0
	}
	b0 := r.ByteAt(pos)

	if cp == CpUTF8 {
		width := utf8BytesOfLead(b0)
		if width == 0 {
			return 0xDC80 + rune(b0), 1
		}
		if pos+width > length {
			return 0xDC80 + rune(b0), 1
		}
		buf := make([]byte, width)
		for i := 0; i < width; i++ {
			buf[i] = r.ByteAt(pos + i)
		}
		cp32, size := utf8.DecodeRune(buf)
		if size != width || cp32 == utf8.RuneError {
			return 0xDC80 + rune(b0), 1
		}
		return cp32, width
	}

	if IsDBCS(cp) && IsLeadByte(cp, b0) && pos+1 < length {
		b1 := r.ByteAt(pos + 1)
		return (rune(b0) << 8) | rune(b1), 2
	}

	return rune(b0), 1
}

// CountCharacters counts code points (DBCS characters, for DBCS pages) in
// [start, end).
func CountCharacters(r ByteReader, cp CodePage, start, end int) int {
	count := 0
	pos := start
	for pos < end {
		_, width := GetCharacterAndWidth(r, cp, pos)
		if width <= 0 {
			width = 1
		}
		pos += width
		count++
	}
	return count
}

// CountUTF16 counts UTF-16 code units in [start, end): BMP characters
// count as 1, supplementary-plane characters as 2. For non-UTF-8 code
// pages this is equivalent to CountCharacters.
func CountUTF16(r ByteReader, cp CodePage, start, end int) int {
	if cp != CpUTF8 {
		return CountCharacters(r, cp, start, end)
	}
	count := 0
	pos := start
	for pos < end {
		cp32, width := GetCharacterAndWidth(r, cp, pos)
		if width <= 0 {
			width = 1
		}
		if cp32 > 0xFFFF {
			count += 2
		} else {
			count++
		}
		pos += width
	}
	return count
}

// CountGraphemeClusters counts user-perceived characters (grapheme
// clusters) in [start, end) of UTF-8 text, using Unicode text
// segmentation rather than raw code point counting. This is additive:
// the core itself only needs CountCharacters, but embedders doing
// cursor movement over combining marks and emoji need cluster counts.
func CountGraphemeClusters(text []byte) int {
	count := 0
	state := -1
	for len(text) > 0 {
		var cluster []byte
		cluster, text, _, state = uniseg.FirstGraphemeCluster(text, state)
		if len(cluster) == 0 {
			break
		}
		count++
	}
	return count
}
