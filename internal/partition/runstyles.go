package partition

// RunStyles is a run-length-coded map from position ranges to small
// integer values, layered over a Partitioning. Invariant: no two adjacent
// runs share a value, and there are no zero-length runs (other than the
// sentinel boundary at Length()).
//
// Values are held in a plain slice rather than a SplitVector: run-count
// churn on FillRange/DeleteRange is already dominated by the boundary
// surgery on starts, so the gap-buffer amortisation SplitVector offers
// the byte-wide substance/style buffers would not pay for its complexity
// here.
type RunStyles struct {
	starts *Partitioning
	values []int
}

// NewRunStyles creates an empty RunStyles with a single run of value 0.
func NewRunStyles() *RunStyles {
	return &RunStyles{
		starts: New(),
		values: []int{0},
	}
}

// Length returns the total length covered.
func (r *RunStyles) Length() int {
	return r.starts.Total()
}

// Runs returns the number of runs.
func (r *RunStyles) Runs() int {
	return r.starts.Partitions()
}

// ValueAt returns the value of the run containing pos.
func (r *RunStyles) ValueAt(pos int) int {
	return r.values[r.starts.PartitionFromPosition(pos)]
}

// StartRun returns the start position of the run containing pos.
func (r *RunStyles) StartRun(pos int) int {
	idx := r.starts.PartitionFromPosition(pos)
	return r.starts.PositionFromPartition(idx)
}

// EndRun returns the end position of the run containing pos.
func (r *RunStyles) EndRun(pos int) int {
	idx := r.starts.PartitionFromPosition(pos)
	return r.starts.PositionFromPartition(idx + 1)
}

// FindNextChange returns the next position at or after pos, capped at end,
// where the run value changes.
func (r *RunStyles) FindNextChange(pos, end int) int {
	next := r.EndRun(pos)
	if next > end {
		return end
	}
	return next
}

// AllSame reports whether the whole vector is a single run.
func (r *RunStyles) AllSame() bool {
	return r.Runs() <= 1
}

// AllSameAs reports whether the whole vector is a single run of value v.
func (r *RunStyles) AllSameAs(v int) bool {
	if !r.AllSame() {
		return false
	}
	return r.Length() == 0 || r.values[0] == v
}

// Find returns the start position of the first run with value v at or
// after from, or -1 if none exists.
func (r *RunStyles) Find(v, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= r.Length() {
		return -1
	}
	idx := r.starts.PartitionFromPosition(from)
	for idx < r.starts.Partitions() {
		if r.values[idx] == v {
			start := r.starts.PositionFromPartition(idx)
			if start < from {
				start = from
			}
			return start
		}
		idx++
	}
	return -1
}

// boundaryIndex returns the partition index starting exactly at pos,
// assuming a boundary there has already been ensured (e.g. via splitAt).
// pos == Length() is a special case: it has no run starting there, so the
// one-past-last index (Partitions()) is returned.
func (r *RunStyles) boundaryIndex(pos int) int {
	if pos >= r.Length() {
		return r.starts.Partitions()
	}
	return r.starts.PartitionFromPosition(pos)
}

// splitAt ensures a partition boundary exists exactly at pos, duplicating
// the value of the run being split so both halves start out equal.
func (r *RunStyles) splitAt(pos int) {
	if pos <= 0 || pos >= r.Length() {
		return
	}
	idx := r.starts.PartitionFromPosition(pos)
	if r.starts.PositionFromPartition(idx) == pos {
		return
	}
	r.starts.InsertPartition(idx, pos)
	r.insertValueAt(idx+1, r.values[idx])
}

func (r *RunStyles) insertValueAt(idx, v int) {
	r.values = append(r.values, 0)
	copy(r.values[idx+1:], r.values[idx:len(r.values)-1])
	r.values[idx] = v
}

func (r *RunStyles) removeValueAt(idx int) {
	r.values = append(r.values[:idx], r.values[idx+1:]...)
}

// mergeWithNeighbors drops the boundary to either side of run idx if that
// neighbor carries the same value, maintaining the no-adjacent-equal-runs
// invariant.
func (r *RunStyles) mergeWithNeighbors(idx int) {
	if idx > 0 && r.values[idx-1] == r.values[idx] {
		r.starts.RemovePartition(idx)
		r.removeValueAt(idx)
		idx--
	}
	if idx+1 < len(r.values) && r.values[idx] == r.values[idx+1] {
		r.starts.RemovePartition(idx + 1)
		r.removeValueAt(idx + 1)
	}
}

// SetValueAt sets the value of a single position.
func (r *RunStyles) SetValueAt(pos, v int) {
	r.FillRange(pos, v, 1)
}

// FillRange sets every position in [pos, pos+length) to v, splitting and
// merging run boundaries as needed. Reports whether anything changed; a
// range that already holds v throughout is trimmed to a no-op.
func (r *RunStyles) FillRange(pos, v, length int) bool {
	if length <= 0 {
		return false
	}
	end := pos + length
	if end > r.Length() {
		end = r.Length()
	}
	for pos < end && r.ValueAt(pos) == v {
		pos++
	}
	for pos < end && r.ValueAt(end-1) == v {
		end--
	}
	if pos >= end {
		return false
	}

	r.splitAt(pos)
	r.splitAt(end)

	startIdx := r.boundaryIndex(pos)
	endIdx := r.boundaryIndex(end)

	for k := endIdx - 1; k > startIdx; k-- {
		r.starts.RemovePartition(k)
		r.removeValueAt(k)
	}
	r.values[startIdx] = v
	r.mergeWithNeighbors(startIdx)
	return true
}

// InsertSpace widens the run containing pos by n positions, as happens
// when plain text (carrying no style change of its own) is inserted.
func (r *RunStyles) InsertSpace(pos, n int) {
	if n <= 0 {
		return
	}
	idx := r.starts.PartitionFromPosition(pos)
	r.starts.InsertText(idx, n)
}

// DeleteRange removes n positions starting at pos, merging across the cut.
func (r *RunStyles) DeleteRange(pos, n int) {
	if n <= 0 {
		return
	}
	total := r.Length()
	end := pos + n
	if end > total {
		end = total
	}
	if pos >= end {
		return
	}
	delCount := end - pos

	r.splitAt(pos)
	r.splitAt(end)

	startIdx := r.boundaryIndex(pos)
	endIdx := r.boundaryIndex(end)
	numParts := r.starts.Partitions()

	switch {
	case endIdx < numParts:
		// A surviving run continues right after 'end': keep its value,
		// discard every run fully inside [pos, end).
		for k := endIdx; k > startIdx; k-- {
			r.starts.RemovePartition(k)
			r.removeValueAt(k - 1)
		}
		r.starts.InsertText(startIdx, -delCount)
		r.mergeWithNeighbors(startIdx)
	case startIdx == 0:
		// Deleting from the very start through Length(): nothing survives.
		oldTotal := r.starts.PositionFromPartition(numParts)
		r.starts.deleteBoundaryRange(1, numParts)
		r.values = r.values[:1]
		r.starts.InsertText(0, pos-oldTotal)
	default:
		// Deleting through Length() with untouched content before pos.
		oldTotal := r.starts.PositionFromPartition(numParts)
		r.starts.deleteBoundaryRange(startIdx, numParts)
		r.values = r.values[:startIdx]
		r.starts.InsertText(startIdx-1, pos-oldTotal)
	}
}
