package decoration

import "github.com/dshills/scintilla/internal/partition"

// Decoration is one indicator's run-length overlay across the document.
type Decoration struct {
	Indicator int
	Runs      *partition.RunStyles
}

// Empty reports whether the decoration carries no non-zero value anywhere,
// making it safe to drop from the list.
func (d *Decoration) Empty() bool {
	return d.Runs.AllSameAs(0)
}

// List holds one Decoration per active indicator, ordered by first use.
// A small current-indicator cache mirrors the teacher's preference for
// keeping the hot path (successive FillRange calls against the same
// indicator, as a squiggly is drawn or cleared) free of a map lookup.
type List struct {
	decorations []*Decoration
	byIndicator map[int]*Decoration
	length      int
	current     *Decoration
}

// New creates an empty decoration list for a document of the given length.
func New(length int) *List {
	return &List{
		byIndicator: make(map[int]*Decoration),
		length:      length,
	}
}

// forIndicator returns the Decoration for indicator, creating it (sized to
// the document's current length) if this is the first use.
func (l *List) forIndicator(indicator int) *Decoration {
	if l.current != nil && l.current.Indicator == indicator {
		return l.current
	}
	d, ok := l.byIndicator[indicator]
	if !ok {
		d = &Decoration{Indicator: indicator, Runs: partition.NewRunStyles()}
		d.Runs.InsertSpace(0, l.length)
		l.byIndicator[indicator] = d
		l.decorations = append(l.decorations, d)
	}
	l.current = d
	return d
}

// Indicators returns the indicator ids currently present, in first-use
// order.
func (l *List) Indicators() []int {
	out := make([]int, 0, len(l.decorations))
	for _, d := range l.decorations {
		out = append(out, d.Indicator)
	}
	return out
}

// ValueAt returns the value of indicator at pos (0 if the indicator has
// never been used).
func (l *List) ValueAt(indicator, pos int) int {
	d, ok := l.byIndicator[indicator]
	if !ok {
		return 0
	}
	return d.Runs.ValueAt(pos)
}

// AllOnFor returns the bitwise OR of every indicator's value at pos,
// indicators 0..31 only (matching the legacy INDIC0_MASK convention).
func (l *List) AllOnFor(pos int) uint32 {
	var mask uint32
	for _, d := range l.decorations {
		if d.Indicator < 0 || d.Indicator >= 32 {
			continue
		}
		if d.Runs.ValueAt(pos) != 0 {
			mask |= 1 << uint(d.Indicator)
		}
	}
	return mask
}

// FillRange sets indicator's value across [pos, pos+length), dropping the
// decoration from the list afterward if it reverts to entirely zero.
func (l *List) FillRange(indicator, value, pos, length int) bool {
	d := l.forIndicator(indicator)
	changed := d.Runs.FillRange(pos, value, length)
	if value == 0 && d.Empty() {
		l.remove(indicator)
	}
	return changed
}

func (l *List) remove(indicator int) {
	d, ok := l.byIndicator[indicator]
	if !ok {
		return
	}
	delete(l.byIndicator, indicator)
	for i, cand := range l.decorations {
		if cand == d {
			l.decorations = append(l.decorations[:i], l.decorations[i+1:]...)
			break
		}
	}
	if l.current == d {
		l.current = nil
	}
}

// InsertSpace widens every decoration by n at pos, as plain text insertion
// does for any RunStyles-backed overlay.
func (l *List) InsertSpace(pos, n int) {
	l.length += n
	for _, d := range l.decorations {
		d.Runs.InsertSpace(pos, n)
	}
}

// DeleteRange shrinks every decoration by the deleted span.
func (l *List) DeleteRange(pos, n int) {
	l.length -= n
	for _, d := range l.decorations {
		d.Runs.DeleteRange(pos, n)
	}
}
