package search

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dshills/scintilla/internal/charset"
)

// Flag controls how FindText interprets its needle.
type Flag int

const (
	MatchCase Flag = 1 << iota
	WholeWord
	WordStart
	Regexp
	Posix
	// Cxx11Regexp selects the ECMAScript-flavored engine the original
	// implementation offers alongside its own hand-rolled regex engine.
	// No ECMAScript engine is wired here (Go's regexp is RE2-flavored,
	// not ECMAScript); findRegex reports ErrRegexCompile when this flag
	// is set, the same "deferred, fails at compile time" resolution
	// DESIGN.md documents for everything this module does not implement.
	Cxx11Regexp
)

func (f Flag) has(x Flag) bool { return f&x != 0 }

var (
	// ErrNotFound is returned when no match exists in the searched range.
	ErrNotFound = errors.New("search: no match")
	// ErrRegexCompile is returned when the pattern fails to compile; the
	// caller leaves the document untouched, per the core's error contract.
	ErrRegexCompile = errors.New("search: regex compile failed")
)

// Source is the narrow view of a document that search needs: byte access
// plus line boundaries for regex anchoring.
type Source interface {
	charset.ByteReader
	LineFromPosition(pos int) int
	LineStart(line int) int
	LineCount() int
}

// Match is one search hit. Groups[0] is the whole match; later entries are
// regex capture groups, [-1,-1] when a group did not participate. Literal
// matches always report a single Groups[0] entry.
type Match struct {
	Position int
	Length   int
	Groups   [][2]int
}

// FindText searches forward over [minPos, maxPos) when minPos <= maxPos,
// or backward over [maxPos, minPos) otherwise, matching the direction rule
// used throughout the document's search API.
func FindText(src Source, minPos, maxPos int, needle []byte, flags Flag, cp charset.CodePage, folder charset.Folder, classify *charset.Classify) (Match, error) {
	if flags.has(Regexp) {
		return findRegex(src, minPos, maxPos, needle, flags)
	}
	return findLiteral(src, minPos, maxPos, needle, flags, cp, folder, classify)
}

func findLiteral(src Source, minPos, maxPos int, needle []byte, flags Flag, cp charset.CodePage, folder charset.Folder, classify *charset.Classify) (Match, error) {
	if len(needle) == 0 {
		return Match{}, ErrNotFound
	}
	forward := minPos <= maxPos
	lo, hi := minPos, maxPos
	if !forward {
		lo, hi = maxPos, minPos
	}
	lo = charset.MovePositionOutsideChar(src, cp, lo, 0, false)
	hi = charset.MovePositionOutsideChar(src, cp, hi, 0, false)

	if flags.has(MatchCase) {
		return literalCaseSensitive(src, lo, hi, needle, forward, flags, cp, classify)
	}
	return literalCaseInsensitive(src, lo, hi, needle, forward, flags, cp, folder, classify)
}

// literalCaseSensitive only starts a match at a character boundary (via
// characterStarts): for DBCS text a byte identical to the needle's first
// byte can appear as a trail byte, which must never count as a hit.
func literalCaseSensitive(src Source, lo, hi int, needle []byte, forward bool, flags Flag, cp charset.CodePage, classify *charset.Classify) (Match, error) {
	n := len(needle)
	starts := characterStarts(src, cp, lo, hi)
	if !forward {
		reverseInts(starts)
	}
	for _, pos := range starts {
		if pos+n > hi {
			continue
		}
		if bytesEqualAt(src, pos, needle) && wordBoundaryOK(src, classify, pos, pos+n, flags) {
			return Match{Position: pos, Length: n, Groups: [][2]int{{pos, pos + n}}}, nil
		}
	}
	return Match{}, ErrNotFound
}

func bytesEqualAt(src Source, pos int, needle []byte) bool {
	if pos < 0 || pos+len(needle) > src.Length() {
		return false
	}
	for i, b := range needle {
		if src.ByteAt(pos+i) != b {
			return false
		}
	}
	return true
}

// wordBoundaryOK reports whether the match spanning [start,end) satisfies
// the requested WholeWord/WordStart boundary rules: the class ({word or
// punct} vs {space or other}) must change across the boundary.
func wordBoundaryOK(src Source, classify *charset.Classify, start, end int, flags Flag) bool {
	if !flags.has(WholeWord) && !flags.has(WordStart) {
		return true
	}
	leftInWord := start > 0 && classify.IsWordOrPunct(src.ByteAt(start-1))
	matchStartsWord := start < src.Length() && classify.IsWordOrPunct(src.ByteAt(start))
	if leftInWord == matchStartsWord {
		return false
	}
	if !flags.has(WholeWord) {
		return true
	}
	matchEndsWord := end > 0 && end <= src.Length() && classify.IsWordOrPunct(src.ByteAt(end-1))
	rightInWord := end < src.Length() && classify.IsWordOrPunct(src.ByteAt(end))
	return matchEndsWord != rightInWord
}

type byteSlice []byte

func (b byteSlice) Length() int       { return len(b) }
func (b byteSlice) ByteAt(i int) byte { return b[i] }

// foldAll folds src one character at a time (per Folder's single-character
// contract), returning the folded bytes.
func foldAll(folder charset.Folder, cp charset.CodePage, src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)*4+4)
	buf := byteSlice(src)
	pos := 0
	for pos < len(src) {
		_, width := charset.GetCharacterAndWidth(buf, cp, pos)
		if width <= 0 {
			width = 1
		}
		end := pos + width
		if end > len(src) {
			end = len(src)
		}
		folded := make([]byte, width*4+4)
		w, err := folder.Fold(folded, src[pos:end])
		if err != nil {
			return nil, err
		}
		dst = append(dst, folded[:w]...)
		pos = end
	}
	return dst, nil
}

func characterStarts(src Source, cp charset.CodePage, lo, hi int) []int {
	var starts []int
	pos := lo
	for pos < hi {
		starts = append(starts, pos)
		_, width := charset.GetCharacterAndWidth(src, cp, pos)
		if width <= 0 {
			width = 1
		}
		pos += width
	}
	return starts
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// matchFoldedAt folds characters starting at pos until it has accumulated
// as many folded bytes as foldedNeedle, then compares.
func matchFoldedAt(src Source, cp charset.CodePage, folder charset.Folder, start, hi int, foldedNeedle []byte) (int, bool) {
	pos := start
	acc := make([]byte, 0, len(foldedNeedle))
	for len(acc) < len(foldedNeedle) {
		if pos >= hi {
			return 0, false
		}
		_, width := charset.GetCharacterAndWidth(src, cp, pos)
		if width <= 0 {
			width = 1
		}
		if pos+width > hi {
			return 0, false
		}
		chunk := make([]byte, width)
		for i := 0; i < width; i++ {
			chunk[i] = src.ByteAt(pos + i)
		}
		folded := make([]byte, width*4+4)
		w, err := folder.Fold(folded, chunk)
		if err != nil {
			return 0, false
		}
		acc = append(acc, folded[:w]...)
		pos += width
	}
	if len(acc) != len(foldedNeedle) {
		return 0, false
	}
	for i := range acc {
		if acc[i] != foldedNeedle[i] {
			return 0, false
		}
	}
	return pos, true
}

func literalCaseInsensitive(src Source, lo, hi int, needle []byte, forward bool, flags Flag, cp charset.CodePage, folder charset.Folder, classify *charset.Classify) (Match, error) {
	foldedNeedle, err := foldAll(folder, cp, needle)
	if err != nil {
		return Match{}, err
	}

	starts := characterStarts(src, cp, lo, hi)
	if !forward {
		reverseInts(starts)
	}
	for _, start := range starts {
		end, ok := matchFoldedAt(src, cp, folder, start, hi, foldedNeedle)
		if ok && wordBoundaryOK(src, classify, start, end, flags) {
			return Match{Position: start, Length: end - start, Groups: [][2]int{{start, end}}}, nil
		}
	}
	return Match{}, ErrNotFound
}

func rangeBytes(src Source, start, end int) []byte {
	if end <= start {
		return nil
	}
	buf := make([]byte, end-start)
	for i := range buf {
		buf[i] = src.ByteAt(start + i)
	}
	return buf
}

// findRegex compiles pattern once (POSIX leftmost-longest, or Go's default
// leftmost-first otherwise) and executes it per line so ^/$ anchor at line
// boundaries. Backward search scans forward on each line, keeping the last
// match found across the whole range.
func findRegex(src Source, minPos, maxPos int, pattern []byte, flags Flag) (Match, error) {
	if flags.has(Cxx11Regexp) {
		return Match{}, fmt.Errorf("%w: ECMAScript regex engine not implemented", ErrRegexCompile)
	}

	forward := minPos <= maxPos
	lo, hi := minPos, maxPos
	if !forward {
		lo, hi = maxPos, minPos
	}

	var re *regexp.Regexp
	var err error
	if flags.has(Posix) {
		re, err = regexp.CompilePOSIX(string(pattern))
	} else {
		re, err = regexp.Compile(string(pattern))
	}
	if err != nil {
		return Match{}, fmt.Errorf("%w: %v", ErrRegexCompile, err)
	}

	startLine := src.LineFromPosition(lo)
	endLine := src.LineFromPosition(hi)

	var best Match
	found := false
	for line := startLine; line <= endLine; line++ {
		lineStart := src.LineStart(line)
		lineEnd := src.LineStart(line + 1)
		if lineEnd > src.Length() {
			lineEnd = src.Length()
		}
		text := rangeBytes(src, lineStart, lineEnd)
		locs := re.FindAllSubmatchIndex(text, -1)
		for _, loc := range locs {
			absStart := lineStart + loc[0]
			absEnd := lineStart + loc[1]
			if absStart < lo || absEnd > hi {
				continue
			}
			groups := make([][2]int, len(loc)/2)
			for g := 0; g < len(loc)/2; g++ {
				if loc[2*g] < 0 {
					groups[g] = [2]int{-1, -1}
				} else {
					groups[g] = [2]int{lineStart + loc[2*g], lineStart + loc[2*g+1]}
				}
			}
			m := Match{Position: absStart, Length: absEnd - absStart, Groups: groups}
			if forward {
				return m, nil
			}
			best, found = m, true
		}
	}
	if found {
		return best, nil
	}
	return Match{}, ErrNotFound
}

// SubstituteByPosition expands template's \0..\9 group references (against
// groups captured by a prior regex Match) and the usual backslash escapes.
func SubstituteByPosition(src Source, template []byte, groups [][2]int) []byte {
	out := make([]byte, 0, len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '\\' || i+1 >= len(template) {
			out = append(out, c)
			continue
		}
		next := template[i+1]
		switch {
		case next >= '0' && next <= '9':
			idx := int(next - '0')
			if idx < len(groups) && groups[idx][0] >= 0 {
				out = append(out, rangeBytes(src, groups[idx][0], groups[idx][1])...)
			}
			i++
		case next == 'n':
			out = append(out, '\n')
			i++
		case next == 'r':
			out = append(out, '\r')
			i++
		case next == 't':
			out = append(out, '\t')
			i++
		case next == 'a':
			out = append(out, '\a')
			i++
		case next == 'f':
			out = append(out, '\f')
			i++
		case next == 'v':
			out = append(out, '\v')
			i++
		case next == 'b':
			out = append(out, '\b')
			i++
		case next == '\\':
			out = append(out, '\\')
			i++
		default:
			// unrecognized escape: keep the backslash literally.
		}
	}
	return out
}
