package document

import "github.com/dshills/scintilla/internal/perline"

// MarginGetText returns the text and per-byte styles of line's margin
// annotation (the text margin, distinct from the below-line Annotation
// text SetAnnotation manages).
func (d *Document) MarginGetText(line int) (text []byte, styles []byte) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m := d.margin.Get(line)
	return []byte(m.Text), append([]byte(nil), m.Styles...)
}

// MarginSetText sets line's margin text, notifying watchers with
// ModChangeMargin.
func (d *Document) MarginSetText(line int, text []byte) {
	d.mu.Lock()
	m := d.margin.Get(line)
	m.Text = string(text)
	d.margin.Set(line, m)
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeMargin, Position: pos, Line: line})
}

// MarginSetStyle sets a single style byte across the whole of line's
// margin text, notifying watchers with ModChangeMargin.
func (d *Document) MarginSetStyle(line, style int) {
	d.mu.Lock()
	m := d.margin.Get(line)
	styles := make([]byte, len(m.Text))
	for i := range styles {
		styles[i] = byte(style)
	}
	m.Styles = styles
	d.margin.Set(line, m)
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeMargin, Position: pos, Line: line})
}

// MarginSetStyles rewrites the per-byte styles of line's margin text,
// notifying watchers with ModChangeMargin.
func (d *Document) MarginSetStyles(line int, styles []byte) {
	d.mu.Lock()
	m := d.margin.Get(line)
	m.Styles = append([]byte(nil), styles...)
	d.margin.Set(line, m)
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeMargin, Position: pos, Line: line})
}

// MarginClearAll removes every line's margin text, matching the
// original's MarginClearAll.
func (d *Document) MarginClearAll() {
	d.mu.Lock()
	lineCount := d.cb.LineCount()
	type cleared struct {
		line int
		pos  int
	}
	var changes []cleared
	for line := 0; line < lineCount; line++ {
		before := d.margin.Get(line)
		if before.Text == "" && len(before.Styles) == 0 {
			continue
		}
		d.margin.Set(line, perline.Annotation{})
		changes = append(changes, cleared{line: line, pos: d.cb.LineStart(line)})
	}
	var ws []watcherEntry
	if len(changes) > 0 {
		ws = d.watcherSnapshot()
	}
	d.mu.Unlock()
	for _, c := range changes {
		notifyModified(d, ws, ModEvent{Flags: ModChangeMargin, Position: c.pos, Line: c.line})
	}
}
