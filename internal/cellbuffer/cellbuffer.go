package cellbuffer

import (
	"github.com/dshills/scintilla/internal/lines"
	"github.com/dshills/scintilla/internal/perline"
	"github.com/dshills/scintilla/internal/splitvector"
	"github.com/dshills/scintilla/internal/undohistory"
)

// CellBuffer owns a document's text and style bytes in two parallel
// SplitVectors, the LineVector derived from the text, and the undo history
// recording every insert and delete. It implements charset.ByteReader.
type CellBuffer struct {
	substance *splitvector.SplitVector[byte]
	style     *splitvector.SplitVector[byte]
	lineVec   *lines.LineVector
	history   *undohistory.History

	perLine  perline.PerLine
	readOnly bool

	utf8LineEnds bool // also treat U+2028, U+2029, U+0085 as terminators
}

// New creates an empty, writable CellBuffer with a single empty line.
func New() *CellBuffer {
	return &CellBuffer{
		substance: splitvector.New[byte](),
		style:     splitvector.New[byte](),
		lineVec:   lines.New(),
		history:   undohistory.New(),
	}
}

// SetPerLine registers the one per-line observer, notified of every
// InsertLine/RemoveLine this buffer performs. Passing nil detaches it.
func (b *CellBuffer) SetPerLine(observer perline.PerLine) {
	b.perLine = observer
}

// SetUTF8LineEnds controls whether U+2028, U+2029 and U+0085 are recognized
// as line terminators in addition to LF, CR and CRLF.
func (b *CellBuffer) SetUTF8LineEnds(on bool) {
	b.utf8LineEnds = on
}

// Length returns the number of bytes of text.
func (b *CellBuffer) Length() int {
	return b.substance.Length()
}

// ByteAt returns the text byte at pos. Satisfies charset.ByteReader.
func (b *CellBuffer) ByteAt(pos int) byte {
	return b.substance.ValueAt(pos)
}

// StyleAt returns the style byte at pos.
func (b *CellBuffer) StyleAt(pos int) byte {
	return b.style.ValueAt(pos)
}

// GetCharRange returns a copy of the text bytes in [pos, pos+n).
func (b *CellBuffer) GetCharRange(pos, n int) []byte {
	src := b.substance.RangePointer(pos, n)
	return append([]byte(nil), src...)
}

// GetStyleRange returns a copy of the style bytes in [pos, pos+n).
func (b *CellBuffer) GetStyleRange(pos, n int) []byte {
	src := b.style.RangePointer(pos, n)
	return append([]byte(nil), src...)
}

// LineCount returns the number of lines.
func (b *CellBuffer) LineCount() int {
	return b.lineVec.LineCount()
}

// LineStart returns the byte offset of the start of line.
func (b *CellBuffer) LineStart(line int) int {
	return b.lineVec.LineStart(line)
}

// LineFromPosition returns the line containing pos.
func (b *CellBuffer) LineFromPosition(pos int) int {
	return b.lineVec.LineFromPosition(pos)
}

// SetReadOnly toggles whether InsertString/DeleteChars are accepted.
func (b *CellBuffer) SetReadOnly(readOnly bool) {
	b.readOnly = readOnly
}

// IsReadOnly reports the current read-only state.
func (b *CellBuffer) IsReadOnly() bool {
	return b.readOnly
}

// InsertString inserts s at pos, recording an undo action. It returns the
// bytes as actually stored in the undo record (which may be a larger,
// coalesced run than s itself). A no-op (nil, false) is returned if the
// buffer is read-only or s is empty.
func (b *CellBuffer) InsertString(pos int, s []byte, mayCoalesce bool) ([]byte, bool) {
	if b.readOnly || len(s) == 0 {
		return nil, false
	}
	b.rawInsert(pos, s)
	stored := b.history.AppendAction(undohistory.Insert, pos, s, mayCoalesce)
	return stored, true
}

// DeleteChars removes the n bytes starting at pos, recording an undo
// action, and returns the bytes removed.
func (b *CellBuffer) DeleteChars(pos, n int, mayCoalesce bool) ([]byte, bool) {
	if b.readOnly || n <= 0 {
		return nil, false
	}
	removed := b.GetCharRange(pos, n)
	b.rawDelete(pos, n)
	b.history.AppendAction(undohistory.Remove, pos, removed, mayCoalesce)
	return removed, true
}

// SetStyleAt sets the style byte at pos. Style is re-derivable by the
// lexer and never recorded in undo history.
func (b *CellBuffer) SetStyleAt(pos int, style byte) {
	b.style.SetValueAt(pos, style)
}

// SetStyleFor sets the style byte for the n bytes starting at pos.
func (b *CellBuffer) SetStyleFor(pos, n int, style byte) {
	for i := 0; i < n; i++ {
		b.style.SetValueAt(pos+i, style)
	}
}

// rawInsert splices s into the substance and style vectors and repairs
// line structure, without touching undo history.
func (b *CellBuffer) rawInsert(pos int, s []byte) {
	b.substance.InsertFromArray(pos, s, 0, len(s))
	b.style.InsertValue(pos, len(s), 0)
	b.maintainLineStructureOnInsert(pos, len(s), s)
}

// rawDelete removes n bytes at pos from the substance and style vectors
// and repairs line structure, without touching undo history.
func (b *CellBuffer) rawDelete(pos, n int) {
	b.maintainLineStructureOnDelete(pos, n)
	b.substance.DeleteRange(pos, n)
	b.style.DeleteRange(pos, n)
}

func (b *CellBuffer) notifyInsertLine(line int) {
	if b.perLine != nil {
		b.perLine.InsertLine(line)
	}
}

func (b *CellBuffer) notifyRemoveLine(line int) {
	if b.perLine != nil {
		b.perLine.RemoveLine(line)
	}
}

// terminatorAt returns the length of the line terminator starting at
// buf[i], or 0 if none starts there. CRLF is reported as one two-byte
// terminator; the Unicode extras are recognized only when utf8Extras is
// set, since they only arise in UTF-8 text.
func terminatorAt(buf []byte, i int, utf8Extras bool) int {
	if i >= len(buf) {
		return 0
	}
	switch buf[i] {
	case '\r':
		if i+1 < len(buf) && buf[i+1] == '\n' {
			return 2
		}
		return 1
	case '\n':
		return 1
	}
	if !utf8Extras {
		return 0
	}
	if buf[i] == 0xE2 && i+2 < len(buf) && buf[i+1] == 0x80 && (buf[i+2] == 0xA8 || buf[i+2] == 0xA9) {
		return 3
	}
	if buf[i] == 0xC2 && i+1 < len(buf) && buf[i+1] == 0x85 {
		return 2
	}
	return 0
}

// maintainLineStructureOnInsert repairs the LineVector after s has already
// been spliced into the substance vector at pos.
func (b *CellBuffer) maintainLineStructureOnInsert(pos, n int, s []byte) {
	// A CR that used to stand alone as its own terminator now pairs with a
	// leading LF in s: the boundary it created is spurious and is replaced
	// by the correctly-placed boundary the scan below creates.
	if pos > 0 && n > 0 && s[0] == '\n' && b.substance.ValueAt(pos-1) == '\r' {
		removeIdx := b.lineVec.LineFromPosition(pos)
		if removeIdx > 0 {
			b.lineVec.RemoveLine(removeIdx)
			b.notifyRemoveLine(removeIdx)
		}
	}

	b.lineVec.AdjustForByteChange(pos, n)

	lineBase := b.lineVec.LineFromPosition(pos)
	k := 0
	for i := 0; i < n; {
		tlen := terminatorAt(s, i, b.utf8LineEnds)
		if tlen == 0 {
			i++
			continue
		}
		if tlen == 1 && s[i] == '\r' && i == n-1 {
			// Trailing lone CR: if it is immediately followed by a
			// surviving LF outside the inserted range, that existing LF's
			// own boundary (already shifted by AdjustForByteChange above)
			// already accounts for the combined terminator.
			if pos+n < b.substance.Length() && b.substance.ValueAt(pos+n) == '\n' {
				i++
				continue
			}
		}
		k++
		newPos := pos + i + tlen
		b.lineVec.InsertLine(lineBase+k, newPos)
		b.notifyInsertLine(lineBase + k)
		i += tlen
	}
}

// maintainLineStructureOnDelete repairs the LineVector for the removal of
// [pos, pos+n) before those bytes are removed from the substance vector.
func (b *CellBuffer) maintainLineStructureOnDelete(pos, n int) {
	end := pos + n
	for {
		line := b.lineVec.LineFromPosition(end)
		start := b.lineVec.LineStart(line)
		if start <= pos {
			break
		}
		b.lineVec.RemoveLine(line)
		b.notifyRemoveLine(line)
	}

	b.lineVec.AdjustForByteChange(pos, -n)

	// Left-edge fixup: a CR surviving right before the cut may have lost
	// its paired LF and needs a boundary of its own again. This runs
	// before the bytes are actually removed, so the surviving byte after
	// the cut is still at pos+n, not pos.
	if pos > 0 && b.substance.ValueAt(pos-1) == '\r' {
		survivorPos := pos + n
		pairsWithSurvivingLF := survivorPos < b.substance.Length() && b.substance.ValueAt(survivorPos) == '\n'
		if !pairsWithSurvivingLF {
			line := b.lineVec.LineFromPosition(pos)
			if b.lineVec.LineStart(line) != pos {
				newLine := b.lineVec.LineFromPosition(pos-1) + 1
				b.lineVec.InsertLine(newLine, pos)
				b.notifyInsertLine(newLine)
			}
		}
	}
}

// SetSavePoint marks the current undo position as the "file on disk" point.
func (b *CellBuffer) SetSavePoint() {
	b.history.SetSavePoint()
}

// IsSavePoint reports whether the buffer is exactly at its save point.
func (b *CellBuffer) IsSavePoint() bool {
	return b.history.IsSavePoint()
}

// TentativeStart marks the current undo position as the start of a
// tentative (IME composition) span.
func (b *CellBuffer) TentativeStart() {
	b.history.TentativeStart()
}

// TentativeCommit ends the tentative span, discarding redo history
// recorded since TentativeStart.
func (b *CellBuffer) TentativeCommit() {
	b.history.TentativeCommit()
}

// IsTentative reports whether a tentative span is currently open.
func (b *CellBuffer) IsTentative() bool {
	return b.history.IsTentative()
}

// BeginUndoAction opens (or extends) a group of edits that undo/redo as a
// single step.
func (b *CellBuffer) BeginUndoAction() {
	b.history.BeginUndoAction()
}

// EndUndoAction closes one level of undo grouping.
func (b *CellBuffer) EndUndoAction() {
	b.history.EndUndoAction()
}

// CanUndo reports whether there is an action to undo.
func (b *CellBuffer) CanUndo() bool {
	return b.history.CanUndo()
}

// CanRedo reports whether there is an action to redo.
func (b *CellBuffer) CanRedo() bool {
	return b.history.CanRedo()
}

// StartUndo returns the number of action records making up the next undo
// step.
func (b *CellBuffer) StartUndo() int {
	return b.history.StartUndo()
}

// StartRedo returns the number of action records making up the next redo
// step.
func (b *CellBuffer) StartRedo() int {
	return b.history.StartRedo()
}

// PerformUndoStep inverts and applies the next recorded action without
// creating a new undo record, then advances the history backward.
func (b *CellBuffer) PerformUndoStep() undohistory.Action {
	step := b.history.GetUndoStep()
	switch step.Kind {
	case undohistory.Insert:
		b.rawDelete(step.Position, len(step.Data))
	case undohistory.Remove:
		b.rawInsert(step.Position, step.Data)
	}
	b.history.CompletedUndoStep()
	return step
}

// PerformRedoStep re-applies the next recorded action without creating a
// new undo record, then advances the history forward.
func (b *CellBuffer) PerformRedoStep() undohistory.Action {
	step := b.history.GetRedoStep()
	switch step.Kind {
	case undohistory.Insert:
		b.rawInsert(step.Position, step.Data)
	case undohistory.Remove:
		b.rawDelete(step.Position, len(step.Data))
	}
	b.history.CompletedRedoStep()
	return step
}
