package lexer

// Lexer is implemented by a tokenizer/folder a Document can register.
// Document never calls into more than one Lexer at a time and never
// recurses into it; Document.Colourise drives Lex and then Fold, each
// handed an Accessor scoped to the document being styled.
type Lexer interface {
	// Version reports the interface revision the lexer implements, so a
	// container can warn instead of misbehaving against a newer contract.
	Version() int

	// PropertyNames returns the newline-separated list of property keys
	// this lexer understands.
	PropertyNames() string
	// PropertyType returns the value type of a property (0 boolean,
	// 1 int, 2 string), or -1 if name is not recognized.
	PropertyType(name string) int
	// DescribeProperty returns a human-readable description of name.
	DescribeProperty(name string) string
	// PropertySet records key=val, returning the first document line
	// whose styling is invalidated by the change, or -1 if none.
	PropertySet(key, val string) int

	// WordListSet installs the space-separated words in joined into word
	// list slot, returning the first invalidated line, or -1 if none.
	WordListSet(slot int, joined string) int

	// Lex styles [startPos, startPos+length) via acc.ColourTo, seeded with
	// the style in effect immediately before startPos.
	Lex(startPos, length, initStyle int, acc *Accessor)
	// Fold computes fold levels for [startPos, startPos+length) via
	// acc.SetLevel, seeded with the style in effect immediately before
	// startPos.
	Fold(startPos, length, initStyle int, acc *Accessor)

	// LineEndTypesSupported returns a bitmask of the non-default line-end
	// conventions (e.g. Unicode line separators) this lexer can fold
	// correctly; 0 means CR/LF/CRLF only.
	LineEndTypesSupported() int

	// AllocateSubStyles reserves numStyles sub-styles derived from
	// styleBase (used for semantic highlighting layered on top of a
	// lexer's coarse-grained styles), returning the first allocated
	// style number, or -1 if the lexer has no sub-style support.
	AllocateSubStyles(styleBase, numStyles int) int
	// SubStylesStart returns the first sub-style allocated for styleBase.
	SubStylesStart(styleBase int) int
	// SubStylesLength returns how many sub-styles were allocated for
	// styleBase.
	SubStylesLength(styleBase int) int
	// StyleFromSubStyle maps a sub-style back to the base style it was
	// allocated from.
	StyleFromSubStyle(subStyle int) int
	// PrimaryStyleFromStyle maps any style, sub- or base, to its base
	// style number.
	PrimaryStyleFromStyle(style int) int

	// NameOfStyle returns the lexer's short name for style (e.g. "comment").
	NameOfStyle(style int) string
	// DescriptionOfStyle returns a longer description of style.
	DescriptionOfStyle(style int) string
	// TagsOfStyle returns space-separated semantic tags for style (e.g.
	// "comment documentation").
	TagsOfStyle(style int) string
}
