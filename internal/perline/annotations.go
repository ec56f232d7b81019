package perline

// Annotation is the text and per-byte styles attached below a line.
type Annotation struct {
	Text   string
	Styles []byte // parallel to Text's bytes; may be shorter (padded with 0)
}

func (a Annotation) lines() int {
	if a.Text == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(a.Text); i++ {
		if a.Text[i] == '\n' {
			n++
		}
	}
	return n
}

// Annotations holds an optional multi-line text block per document line,
// with its text interned in a per-manager string table so that the common case of many lines sharing
// one annotation (a batch lint run, say) doesn't duplicate storage.
type Annotations struct {
	values   []Annotation
	interned map[string]string
}

// NewAnnotations creates an Annotations manager for lineCount lines.
func NewAnnotations(lineCount int) *Annotations {
	if lineCount < 1 {
		lineCount = 1
	}
	return &Annotations{
		values:   make([]Annotation, lineCount),
		interned: make(map[string]string),
	}
}

// LineCount returns the number of lines tracked.
func (a *Annotations) LineCount() int {
	return len(a.values)
}

func (a *Annotations) intern(s string) string {
	if s == "" {
		return ""
	}
	if existing, ok := a.interned[s]; ok {
		return existing
	}
	a.interned[s] = s
	return s
}

// Get returns the annotation attached to line.
func (a *Annotations) Get(line int) Annotation {
	if line < 0 || line >= len(a.values) {
		return Annotation{}
	}
	return a.values[line]
}

// LinesAdded returns how many display lines the annotation occupies.
func (a *Annotations) LinesAdded(line int) int {
	return a.Get(line).lines()
}

// Set attaches ann to line, interning its text. Returns the delta in
// annotation-display-lines (new - old), matching the Document
// notification's annotationLinesAdded field.
func (a *Annotations) Set(line int, ann Annotation) int {
	if line < 0 || line >= len(a.values) {
		return 0
	}
	before := a.values[line].lines()
	ann.Text = a.intern(ann.Text)
	a.values[line] = ann
	return ann.lines() - before
}

// Clear removes the annotation on line.
func (a *Annotations) Clear(line int) int {
	return a.Set(line, Annotation{})
}

// InsertLine inserts an empty slot at line.
func (a *Annotations) InsertLine(line int) {
	a.values = growSlice(a.values, line)
}

// RemoveLine drops the slot at line.
func (a *Annotations) RemoveLine(line int) {
	a.values = shrinkSlice(a.values, line)
}
