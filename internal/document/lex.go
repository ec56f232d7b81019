package document

import "github.com/dshills/scintilla/internal/lexer"

// SetLexer installs the lexer used by EnsureStyledTo and Colourise. A nil
// lexer falls back to asking watchers via NotifyStyleNeeded.
func (d *Document) SetLexer(l lexer.Lexer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lex = l
}

// GetEndStyled returns how far into the document styling has been
// computed; bytes past this have not been classified by a lexer yet.
func (d *Document) GetEndStyled() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.endStyled
}

// StartStyling declares that styling from position onward is stale and
// must be recomputed, without touching any style bytes itself.
func (d *Document) StartStyling(position int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.endStyled = position
}

// EnsureStyledTo guarantees endStyled reaches at least pos, either by
// driving the registered lexer over the unstyled gap or, lacking one, by
// asking watchers to style it via NotifyStyleNeeded. Every watcher call
// happens with d.mu released: a watcher answering NotifyStyleNeeded is
// expected to call back into the document (SetStyleFor, Colourise) to
// actually advance endStyled, which the loop below rechecks after each
// call.
func (d *Document) EnsureStyledTo(pos int) {
	d.mu.Lock()
	endStyled := d.endStyled
	lex := d.lex
	d.mu.Unlock()
	if pos <= endStyled {
		return
	}

	if lex != nil {
		lineStyled := d.LineFromPosition(endStyled)
		d.Colourise(d.LineStart(lineStyled), pos)
		return
	}

	d.mu.RLock()
	ws := d.watcherSnapshot()
	d.mu.RUnlock()
	for _, e := range ws {
		d.mu.RLock()
		reached := pos <= d.endStyled
		d.mu.RUnlock()
		if reached {
			return
		}
		e.w.NotifyStyleNeeded(d, pos)
	}
}

// Colourise drives the registered lexer's Lex and Fold over [start, end),
// seeded with the style in effect immediately before start. It is a no-op
// if no lexer is registered, start >= end, or called reentrantly from
// inside a lexer callback (performingStyle guards against a lexer's Fold
// implementation, hunting for a child line's level, recursing back into
// styling). d.mu is released for the whole of the Lex/Fold call: a lexer
// reads and writes styles, fold levels and line state through the
// Accessor it is handed, each of which is one independent locked call
// into Document, never a nested one.
func (d *Document) Colourise(start, end int) {
	d.mu.Lock()
	if d.lex == nil || d.performingStyle {
		d.mu.Unlock()
		return
	}
	if end < 0 {
		end = d.cb.Length()
	}
	length := end - start
	if length <= 0 {
		d.mu.Unlock()
		return
	}
	styleStart := byte(0)
	if start > 0 {
		styleStart = d.cb.StyleAt(start - 1)
	}
	lex := d.lex
	d.performingStyle = true
	d.mu.Unlock()

	acc := lexer.NewAccessor(d, start)
	lex.Lex(start, length, int(styleStart), acc)
	acc.StartAt(start)
	lex.Fold(start, length, int(styleStart), acc)

	d.mu.Lock()
	d.performingStyle = false
	if end > d.endStyled {
		d.endStyled = end
	}
	d.mu.Unlock()
}
