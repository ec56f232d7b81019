package charset

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// ErrDBCSCaseFoldUnsupported is returned by DBCS-aware folders: the
// engine core does not carry per-code-page case tables, matching the
// original's reliance on platform services for this.
var ErrDBCSCaseFoldUnsupported = errors.New("charset: case folding not supported for this DBCS code page")

// Folder lowercases (folds) a single character for case-insensitive
// comparison. Fold writes the folded form of src into dst and returns the
// number of bytes written, or an error if this folder cannot fold src.
type Folder interface {
	Fold(dst, src []byte) (int, error)
}

// UTF8Folder folds UTF-8 text using Unicode's full case-folding tables.
// Fold expansion (e.g. German ß → "ss") means the folded form can be up
// to 4 bytes wider than the input, per the caller's own buffer sizing.
type UTF8Folder struct {
	caser cases.Caser
}

// NewUTF8Folder returns the default UTF-8 folder.
func NewUTF8Folder() *UTF8Folder {
	return &UTF8Folder{caser: cases.Fold()}
}

// Fold implements Folder.
func (f *UTF8Folder) Fold(dst, src []byte) (int, error) {
	out := f.caser.Bytes(src)
	n := copy(dst, out)
	return n, nil
}

// SingleByteFolder folds bytes through a 256-entry lookup table, used for
// legacy single-byte encodings where every byte is its own character.
type SingleByteFolder struct {
	table [256]byte
}

// NewSingleByteFolder builds a folder from a byte->byte fold table. A nil
// table defaults to ASCII case folding.
func NewSingleByteFolder(table *[256]byte) *SingleByteFolder {
	f := &SingleByteFolder{}
	if table != nil {
		f.table = *table
		return f
	}
	for b := 0; b < 256; b++ {
		c := byte(b)
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		f.table[b] = c
	}
	return f
}

// Fold implements Folder.
func (f *SingleByteFolder) Fold(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if len(dst) < 1 {
		return 0, errors.New("charset: dst too small")
	}
	dst[0] = f.table[src[0]]
	return 1, nil
}

// DBCSFolder always fails, matching the core's documented behavior of
// delegating DBCS case folding to platform services it does not embed.
type DBCSFolder struct {
	CodePage CodePage
}

// Fold implements Folder; it never succeeds.
func (f *DBCSFolder) Fold(dst, src []byte) (int, error) {
	return 0, ErrDBCSCaseFoldUnsupported
}

// FolderFor returns the appropriate Folder for cp.
func FolderFor(cp CodePage) Folder {
	if cp == CpUTF8 {
		return NewUTF8Folder()
	}
	if IsDBCS(cp) {
		return &DBCSFolder{CodePage: cp}
	}
	return NewSingleByteFolder(nil)
}

// charWidth returns the byte width of the character at src[0] under cp,
// used by callers folding one character at a time.
func charWidth(cp CodePage, src []byte) int {
	if len(src) == 0 {
		return 0
	}
	if cp == CpUTF8 {
		_, n := utf8.DecodeRune(src)
		return n
	}
	if IsDBCS(cp) && IsLeadByte(cp, src[0]) && len(src) > 1 {
		return 2
	}
	return 1
}
