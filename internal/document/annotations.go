package document

import "github.com/dshills/scintilla/internal/perline"

// GetAnnotation returns the text and per-byte styles attached below line.
func (d *Document) GetAnnotation(line int) (text []byte, styles []byte) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ann := d.annotations.Get(line)
	return []byte(ann.Text), append([]byte(nil), ann.Styles...)
}

// AnnotationLineCount returns the number of display lines text would
// occupy as an annotation, for a caller sizing a margin before calling
// SetAnnotation.
func AnnotationLineCount(text []byte) int {
	if len(text) == 0 {
		return 0
	}
	n := 1
	for _, b := range text {
		if b == '\n' {
			n++
		}
	}
	return n
}

// SetAnnotation attaches text and styles below line, notifying watchers
// with ModChangeAnnotation carrying the change in display-lines the
// annotation occupies.
func (d *Document) SetAnnotation(line int, text, styles []byte) {
	d.mu.Lock()
	delta := d.annotations.Set(line, perline.Annotation{Text: string(text), Styles: append([]byte(nil), styles...)})
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{
		Flags:                ModChangeAnnotation,
		Position:             pos,
		Line:                 line,
		AnnotationLinesAdded: delta,
	})
}

// SetAnnotationStyles rewrites only the per-byte styles of line's
// annotation, leaving its text untouched. Matches the original's
// AnnotationSetStyles, which carries no notification of its own: the
// annotation's text and display-line count are unaffected, and a caller
// restyling in response to a lexer pass would otherwise see its own
// change echoed back as a spurious notification.
func (d *Document) SetAnnotationStyles(line int, styles []byte) {
	d.mu.Lock()
	ann := d.annotations.Get(line)
	ann.Styles = append([]byte(nil), styles...)
	d.annotations.Set(line, ann)
	d.mu.Unlock()
}

// ClearAnnotation removes the annotation on line, notifying watchers with
// ModChangeAnnotation.
func (d *Document) ClearAnnotation(line int) {
	d.mu.Lock()
	delta := d.annotations.Clear(line)
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{
		Flags:                ModChangeAnnotation,
		Position:             pos,
		Line:                 line,
		AnnotationLinesAdded: delta,
	})
}

// ClearAllAnnotations removes every annotation in the document, notifying
// watchers once per line that actually carried one.
func (d *Document) ClearAllAnnotations() {
	d.mu.Lock()
	lineCount := d.cb.LineCount()
	type cleared struct {
		line  int
		pos   int
		delta int
	}
	var changes []cleared
	for line := 0; line < lineCount; line++ {
		before := d.annotations.Get(line)
		if before.Text == "" && len(before.Styles) == 0 {
			continue
		}
		delta := d.annotations.Clear(line)
		changes = append(changes, cleared{line: line, pos: d.cb.LineStart(line), delta: delta})
	}
	var ws []watcherEntry
	if len(changes) > 0 {
		ws = d.watcherSnapshot()
	}
	d.mu.Unlock()
	for _, c := range changes {
		notifyModified(d, ws, ModEvent{
			Flags:                ModChangeAnnotation,
			Position:             c.pos,
			Line:                 c.line,
			AnnotationLinesAdded: c.delta,
		})
	}
}
