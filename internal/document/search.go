package document

import "github.com/dshills/scintilla/internal/search"

// FindText searches [minPos, maxPos) forward, or [maxPos, minPos) backward
// when minPos > maxPos, for needle under flags, returning search.ErrNotFound
// if nothing matches or search.ErrRegexCompile if flags carries Regexp and
// needle fails to compile.
func (d *Document) FindText(minPos, maxPos int, needle []byte, flags search.Flag) (search.Match, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return search.FindText(searchSource{d}, minPos, maxPos, needle, flags, d.cp, d.folder, d.classify)
}

// SubstituteByPosition expands a regex replacement template (\0-\9 group
// references, \n, \t, \\) against the byte ranges in groups, as produced by
// a prior FindText call made with the Regexp flag.
func (d *Document) SubstituteByPosition(template []byte, groups [][2]int) []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return search.SubstituteByPosition(searchSource{d}, template, groups)
}

// searchSource adapts Document to search.Source without taking d.mu:
// FindText and SubstituteByPosition already hold the read lock for the
// whole call, on the same goroutine, and RWMutex read-locking is not
// safely reentrant against a concurrent writer queued in between.
type searchSource struct {
	d *Document
}

func (s searchSource) Length() int { return s.d.cb.Length() }

func (s searchSource) ByteAt(pos int) byte {
	if pos < 0 || pos >= s.d.cb.Length() {
		return 0
	}
	return s.d.cb.ByteAt(pos)
}

func (s searchSource) LineFromPosition(pos int) int { return s.d.cb.LineFromPosition(pos) }
func (s searchSource) LineStart(line int) int       { return s.d.cb.LineStart(line) }
func (s searchSource) LineCount() int               { return s.d.cb.LineCount() }
