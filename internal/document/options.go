package document

import (
	"github.com/dshills/scintilla/internal/charset"
	"github.com/dshills/scintilla/internal/lexer"
)

// Option is a functional option for configuring a Document at New.
type Option func(*Document)

// WithCodePage sets the code page used for character-boundary arithmetic
// and DBCS-aware search. Defaults to charset.CpUTF8.
func WithCodePage(cp charset.CodePage) Option {
	return func(d *Document) {
		d.cp = cp
	}
}

// WithClassify installs a non-default character classification table,
// e.g. one extended with SetClass for language-specific identifier rules.
func WithClassify(c *charset.Classify) Option {
	return func(d *Document) {
		if c != nil {
			d.classify = c
		}
	}
}

// WithFolder installs a non-default case folder. When omitted, the folder
// is derived from the document's code page via charset.FolderFor.
func WithFolder(f charset.Folder) Option {
	return func(d *Document) {
		d.folder = f
	}
}

// WithLexer registers the lexer used by Colourise and EnsureStyledTo.
func WithLexer(l lexer.Lexer) Option {
	return func(d *Document) {
		d.lex = l
	}
}

// WithUTF8LineEnds enables recognizing U+2028, U+2029 and U+0085 as line
// terminators in addition to CR, LF and CRLF.
func WithUTF8LineEnds(on bool) Option {
	return func(d *Document) {
		d.utf8LineEnds = on
	}
}

// WithTabWidth sets the column width of a tab stop used by GetColumn and
// FindColumn. Defaults to 8, matching the original engine.
func WithTabWidth(width int) Option {
	return func(d *Document) {
		if width > 0 {
			d.tabWidth = width
		}
	}
}
