package contraction

import "github.com/dshills/scintilla/internal/partition"

// State maps document lines to display lines.
type State struct {
	lineCount int
	full      bool

	visible     *partition.RunStyles // 1 = visible, 0 = hidden
	expanded    *partition.RunStyles // 1 = expanded, 0 = collapsed
	heights     *partition.RunStyles // display-line height of each doc line
	displayLine *partition.Partitioning
}

// New creates a one-to-one State for lineCount document lines.
func New(lineCount int) *State {
	if lineCount < 1 {
		lineCount = 1
	}
	return &State{lineCount: lineCount}
}

func (s *State) goFull() {
	if s.full {
		return
	}
	s.full = true

	s.visible = partition.NewRunStyles()
	s.visible.InsertSpace(0, s.lineCount)
	s.visible.FillRange(0, 1, s.lineCount)

	s.expanded = partition.NewRunStyles()
	s.expanded.InsertSpace(0, s.lineCount)
	s.expanded.FillRange(0, 1, s.lineCount)

	s.heights = partition.NewRunStyles()
	s.heights.InsertSpace(0, s.lineCount)
	s.heights.FillRange(0, 1, s.lineCount)

	s.displayLine = partition.New()
	s.displayLine.InsertText(0, 1)
	for i := 1; i < s.lineCount; i++ {
		s.displayLine.InsertPartition(i-1, i)
		s.displayLine.InsertText(i, 1)
	}
}

// LineCount returns the number of document lines tracked.
func (s *State) LineCount() int {
	return s.lineCount
}

// IsVisible reports whether line is visible.
func (s *State) IsVisible(line int) bool {
	if !s.full {
		return true
	}
	return s.visible.ValueAt(line) != 0
}

// IsExpanded reports whether line is expanded (not itself folded away by
// a collapsed ancestor header — callers combine this with fold levels).
func (s *State) IsExpanded(line int) bool {
	if !s.full {
		return true
	}
	return s.expanded.ValueAt(line) != 0
}

// GetHeight returns the display-line height of line.
func (s *State) GetHeight(line int) int {
	if !s.full {
		return 1
	}
	return s.heights.ValueAt(line)
}

func (s *State) widthOf(line int) int {
	if !s.IsVisible(line) {
		return 0
	}
	return s.GetHeight(line)
}

// SetVisible sets the visibility of lines [lineStart, lineEnd], returning
// whether anything changed.
func (s *State) SetVisible(lineStart, lineEnd int, visible bool) bool {
	if !s.full {
		if visible {
			return false // already the one-to-one default
		}
		s.goFull()
	}
	changed := false
	for line := lineStart; line <= lineEnd && line < s.lineCount; line++ {
		oldWidth := s.widthOf(line)
		v := 0
		if visible {
			v = 1
		}
		if !s.visible.FillRange(line, v, 1) {
			continue
		}
		changed = true
		if delta := s.widthOf(line) - oldWidth; delta != 0 {
			s.displayLine.InsertText(line, delta)
		}
	}
	return changed
}

// SetExpanded sets whether line is expanded, returning whether it changed.
// Expansion state does not itself change display width; collapsing a
// header line's children is expressed by the caller making those lines
// invisible via SetVisible.
func (s *State) SetExpanded(line int, expanded bool) bool {
	if !s.full {
		if expanded {
			return false
		}
		s.goFull()
	}
	v := 0
	if expanded {
		v = 1
	}
	return s.expanded.FillRange(line, v, 1)
}

// SetHeight sets the display-line height of line, returning whether it
// changed, and keeps the display-line partitioning in step.
func (s *State) SetHeight(line, height int) bool {
	if !s.full {
		if height == 1 {
			return false
		}
		s.goFull()
	}
	oldWidth := s.widthOf(line)
	if !s.heights.FillRange(line, height, 1) {
		return false
	}
	if delta := s.widthOf(line) - oldWidth; delta != 0 {
		s.displayLine.InsertText(line, delta)
	}
	return true
}

// DisplayFromDoc returns the number of display lines before document line n.
func (s *State) DisplayFromDoc(n int) int {
	if !s.full {
		return n
	}
	if n >= s.lineCount {
		return s.displayLine.Total()
	}
	return s.displayLine.PositionFromPartition(n)
}

// DocFromDisplay returns the document line occupying display row d.
func (s *State) DocFromDisplay(d int) int {
	if !s.full {
		return d
	}
	return s.displayLine.PartitionFromPosition(d)
}

// InsertLine inserts a fresh, visible, expanded, height-1 line at index
// line, shifting the display-line mapping accordingly.
func (s *State) InsertLine(line int) {
	if !s.full {
		s.lineCount++
		return
	}
	if line <= 0 {
		s.displayLine.InsertPartition(0, 0)
	} else {
		pos := s.displayLine.PositionFromPartition(line)
		s.displayLine.InsertPartition(line-1, pos)
	}
	s.displayLine.InsertText(line, 1)

	s.visible.InsertSpace(line, 1)
	s.visible.FillRange(line, 1, 1)
	s.expanded.InsertSpace(line, 1)
	s.expanded.FillRange(line, 1, 1)
	s.heights.InsertSpace(line, 1)
	s.heights.FillRange(line, 1, 1)
	s.lineCount++
}

// RemoveLine drops the slot at line, removing its display-row contribution
// from the mapping.
func (s *State) RemoveLine(line int) {
	if !s.full {
		s.lineCount--
		return
	}
	width := s.widthOf(line)
	s.visible.DeleteRange(line, 1)
	s.expanded.DeleteRange(line, 1)
	s.heights.DeleteRange(line, 1)

	if width != 0 {
		s.displayLine.InsertText(line, -width)
	}
	if line >= 1 {
		s.displayLine.RemovePartition(line)
	} else if s.displayLine.Partitions() > 1 {
		s.displayLine.RemovePartition(1)
	}
	s.lineCount--
}
