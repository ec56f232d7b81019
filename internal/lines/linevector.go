package lines

import "github.com/dshills/scintilla/internal/partition"

// LineVector tracks the byte offset of the start of every line.
type LineVector struct {
	starts *partition.Partitioning
}

// New creates a LineVector with a single, empty line.
func New() *LineVector {
	return &LineVector{starts: partition.New()}
}

// LineCount returns the number of lines.
func (v *LineVector) LineCount() int {
	return v.starts.Partitions()
}

// Total returns the buffer length the line vector currently spans.
func (v *LineVector) Total() int {
	return v.starts.Total()
}

// LineStart returns the byte offset of the first character of line.
// line == LineCount() returns Total().
func (v *LineVector) LineStart(line int) int {
	return v.starts.PositionFromPartition(line)
}

// LineFromPosition returns the line containing pos.
func (v *LineVector) LineFromPosition(pos int) int {
	return v.starts.PartitionFromPosition(pos)
}

// InsertLine creates a new line boundary: after the call, LineStart(line)
// == pos, and lines that were >= line shift up by one index.
func (v *LineVector) InsertLine(line, pos int) {
	v.starts.InsertPartition(line-1, pos)
}

// RemoveLine collapses line into its predecessor. line must be >= 1 and
// < LineCount().
func (v *LineVector) RemoveLine(line int) {
	v.starts.RemovePartition(line)
}

// AdjustForByteChange shifts every line start after the line containing
// pos by delta, without creating or removing any line. Used for plain
// text edits that touch no line terminator.
func (v *LineVector) AdjustForByteChange(pos, delta int) {
	if delta == 0 {
		return
	}
	line := v.LineFromPosition(pos)
	v.starts.InsertText(line, delta)
}
