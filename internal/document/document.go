package document

import (
	"sync"

	"github.com/dshills/scintilla/internal/cellbuffer"
	"github.com/dshills/scintilla/internal/charset"
	"github.com/dshills/scintilla/internal/contraction"
	"github.com/dshills/scintilla/internal/decoration"
	"github.com/dshills/scintilla/internal/lexer"
	"github.com/dshills/scintilla/internal/perline"
)

// Document is the composition root: a CellBuffer plus every per-line and
// whole-document overlay (markers, fold levels, line state, annotations,
// contraction, decorations, search folder/classifier) kept in step with
// it, with watcher notifications and the insertion-check protocol layered
// on top.
//
// Document assumes single-threaded cooperative use per entry point, the
// way the underlying cell buffer and partitioning structures do: mu
// guards the whole struct so a multi-threaded embedder can serialize
// through one Document per goroutine group, but Document issues no
// internal waits and holds its lock only for the duration of one call.
type Document struct {
	mu sync.RWMutex

	cb           *cellbuffer.CellBuffer
	cp           charset.CodePage
	classify     *charset.Classify
	folder       charset.Folder
	tabWidth     int
	utf8LineEnds bool

	markers     *perline.Markers
	levels      *perline.Levels
	lineState   *perline.State
	annotations *perline.Annotations
	margin      *perline.Annotations
	contraction *contraction.State
	decorations *decoration.List

	lex       lexer.Lexer
	endStyled int

	watchers []watcherEntry

	enteredModification int
	inModifyAttempt      bool
	performingStyle      bool

	insertionSet bool
	insertion    []byte
}

// New creates an empty, writable Document with a single empty line.
func New(opts ...Option) *Document {
	d := &Document{
		cp:       charset.CpUTF8,
		classify: charset.NewClassify(),
		tabWidth: 8,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.folder == nil {
		d.folder = charset.FolderFor(d.cp)
	}

	d.cb = cellbuffer.New()
	d.cb.SetUTF8LineEnds(d.utf8LineEnds)
	d.markers = perline.NewMarkers(1)
	d.levels = perline.NewLevels(1)
	d.lineState = perline.NewState(1)
	d.annotations = perline.NewAnnotations(1)
	d.margin = perline.NewAnnotations(1)
	d.contraction = contraction.New(1)
	d.decorations = decoration.New(0)
	d.cb.SetPerLine(d)

	return d
}

// Length returns the number of text bytes in the document.
func (d *Document) Length() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.Length()
}

// CharAt returns the text byte at pos, or 0 if pos is out of range.
func (d *Document) CharAt(pos int) byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if pos < 0 || pos >= d.cb.Length() {
		return 0
	}
	return d.cb.ByteAt(pos)
}

// ByteAt satisfies charset.ByteReader, search.Source and lexer.Source.
func (d *Document) ByteAt(pos int) byte {
	return d.CharAt(pos)
}

// StyleAt returns the style byte at pos, or 0 if pos is out of range.
func (d *Document) StyleAt(pos int) byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if pos < 0 || pos >= d.cb.Length() {
		return 0
	}
	return d.cb.StyleAt(pos)
}

// GetCharRange returns a copy of the text bytes in [pos, pos+n).
func (d *Document) GetCharRange(pos, n int) []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.GetCharRange(pos, n)
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.LineCount()
}

// LineStart returns the byte offset of the start of line.
func (d *Document) LineStart(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.LineStart(line)
}

// LineEnd returns the byte offset of the end of line's text, before its
// terminator.
func (d *Document) LineEnd(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lineEndLocked(line)
}

func (d *Document) lineEndLocked(line int) int {
	end := d.cb.LineStart(line + 1)
	if end > d.cb.LineStart(line) && end <= d.cb.Length() {
		if end > 0 && d.cb.ByteAt(end-1) == '\n' {
			end--
		}
		if end > 0 && d.cb.ByteAt(end-1) == '\r' {
			end--
		}
	}
	return end
}

// LineFromPosition returns the line containing pos. LineOfPosition is an
// alias kept for parity with the external interface's naming.
func (d *Document) LineFromPosition(pos int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.LineFromPosition(pos)
}

// LineOfPosition is an alias for LineFromPosition.
func (d *Document) LineOfPosition(pos int) int {
	return d.LineFromPosition(pos)
}

// InsertLine implements perline.PerLine, fanning the new line out to
// every per-line data manager CellBuffer's LineVector tracks alongside.
// Called only from within a CellBuffer mutation already holding mu.
func (d *Document) InsertLine(line int) {
	d.markers.InsertLine(line)
	d.levels.InsertLine(line)
	d.lineState.InsertLine(line)
	d.annotations.InsertLine(line)
	d.margin.InsertLine(line)
	d.contraction.InsertLine(line)
}

// RemoveLine implements perline.PerLine, the symmetric counterpart of
// InsertLine.
func (d *Document) RemoveLine(line int) {
	d.markers.RemoveLine(line)
	d.levels.RemoveLine(line)
	d.lineState.RemoveLine(line)
	d.annotations.RemoveLine(line)
	d.margin.RemoveLine(line)
	d.contraction.RemoveLine(line)
}

type watcherEntry struct {
	w        Watcher
	userData any
}

// AddWatcher registers w to receive notifications, keyed on the
// (watcher, userData) pair so the same watcher may register more than
// once with distinct userData. Re-adding an identical pair is a no-op
// and reports false.
func (d *Document) AddWatcher(w Watcher, userData any) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.watchers {
		if e.w == w && e.userData == userData {
			return false
		}
	}
	d.watchers = append(d.watchers, watcherEntry{w: w, userData: userData})
	return true
}

// RemoveWatcher deregisters the (watcher, userData) pair previously
// passed to AddWatcher, reporting whether it was found.
func (d *Document) RemoveWatcher(w Watcher, userData any) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, e := range d.watchers {
		if e.w == w && e.userData == userData {
			d.watchers = append(d.watchers[:i], d.watchers[i+1:]...)
			return true
		}
	}
	return false
}
