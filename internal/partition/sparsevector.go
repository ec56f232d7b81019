package partition

// SparseVector is an RLE map from position to an optional value of type T,
// used for per-position annotations that are usually absent. Internally it
// is a Partitioning where every run either carries a value or is "unset";
// adjacent unset runs are merged the same way RunStyles merges equal runs.
type SparseVector[T any] struct {
	starts *Partitioning
	values []T
	set    []bool
}

// NewSparseVector creates an empty SparseVector.
func NewSparseVector[T any]() *SparseVector[T] {
	return &SparseVector[T]{
		starts: New(),
		values: make([]T, 1),
		set:    []bool{false},
	}
}

// Length returns the total length covered.
func (s *SparseVector[T]) Length() int {
	return s.starts.Total()
}

// Runs returns the number of runs (set and unset).
func (s *SparseVector[T]) Runs() int {
	return s.starts.Partitions()
}

// ValueAt returns the value at pos and whether one is set.
func (s *SparseVector[T]) ValueAt(pos int) (T, bool) {
	idx := s.starts.PartitionFromPosition(pos)
	return s.values[idx], s.set[idx]
}

// boundaryIndex mirrors RunStyles.boundaryIndex.
func (s *SparseVector[T]) boundaryIndex(pos int) int {
	if pos >= s.Length() {
		return s.starts.Partitions()
	}
	return s.starts.PartitionFromPosition(pos)
}

func (s *SparseVector[T]) splitAt(pos int) {
	if pos <= 0 || pos >= s.Length() {
		return
	}
	idx := s.starts.PartitionFromPosition(pos)
	if s.starts.PositionFromPartition(idx) == pos {
		return
	}
	s.starts.InsertPartition(idx, pos)
	s.insertEntryAt(idx+1, s.values[idx], s.set[idx])
}

func (s *SparseVector[T]) insertEntryAt(idx int, v T, ok bool) {
	var zero T
	s.values = append(s.values, zero)
	copy(s.values[idx+1:], s.values[idx:len(s.values)-1])
	s.values[idx] = v

	s.set = append(s.set, false)
	copy(s.set[idx+1:], s.set[idx:len(s.set)-1])
	s.set[idx] = ok
}

func (s *SparseVector[T]) removeEntryAt(idx int) {
	s.values = append(s.values[:idx], s.values[idx+1:]...)
	s.set = append(s.set[:idx], s.set[idx+1:]...)
}

func (s *SparseVector[T]) mergeWithNeighbors(idx int) {
	if idx > 0 && s.equalEntries(idx-1, idx) {
		s.starts.RemovePartition(idx)
		s.removeEntryAt(idx)
		idx--
	}
	if idx+1 < len(s.set) && s.equalEntries(idx, idx+1) {
		s.starts.RemovePartition(idx + 1)
		s.removeEntryAt(idx + 1)
	}
}

func (s *SparseVector[T]) equalEntries(i, j int) bool {
	if s.set[i] != s.set[j] {
		return false
	}
	if !s.set[i] {
		return true // both unset, value irrelevant
	}
	return any(s.values[i]) == any(s.values[j])
}

// SetValueAt records v at pos, splitting runs as needed.
func (s *SparseVector[T]) SetValueAt(pos int, v T) {
	s.fill(pos, v, true)
}

// ClearValueAt removes any value at pos, merging it back into the
// surrounding unset space.
func (s *SparseVector[T]) ClearValueAt(pos int) {
	var zero T
	s.fill(pos, zero, false)
}

func (s *SparseVector[T]) fill(pos int, v T, ok bool) {
	if pos < 0 || pos >= s.Length() {
		return
	}
	end := pos + 1
	s.splitAt(pos)
	s.splitAt(end)

	startIdx := s.boundaryIndex(pos)
	endIdx := s.boundaryIndex(end)
	for k := endIdx - 1; k > startIdx; k-- {
		s.starts.RemovePartition(k)
		s.removeEntryAt(k)
	}
	s.values[startIdx] = v
	s.set[startIdx] = ok
	s.mergeWithNeighbors(startIdx)
}

// InsertSpace widens whichever run covers pos by n positions.
func (s *SparseVector[T]) InsertSpace(pos, n int) {
	if n <= 0 {
		return
	}
	idx := s.starts.PartitionFromPosition(pos)
	s.starts.InsertText(idx, n)
}

// DeleteRange removes n positions starting at pos, matching RunStyles'
// collapse-and-reindex behavior across the cut.
func (s *SparseVector[T]) DeleteRange(pos, n int) {
	if n <= 0 {
		return
	}
	total := s.Length()
	end := pos + n
	if end > total {
		end = total
	}
	if pos >= end {
		return
	}
	delCount := end - pos

	s.splitAt(pos)
	s.splitAt(end)

	startIdx := s.boundaryIndex(pos)
	endIdx := s.boundaryIndex(end)
	numParts := s.starts.Partitions()

	switch {
	case endIdx < numParts:
		for k := endIdx; k > startIdx; k-- {
			s.starts.RemovePartition(k)
			s.removeEntryAt(k - 1)
		}
		s.starts.InsertText(startIdx, -delCount)
		s.mergeWithNeighbors(startIdx)
	case startIdx == 0:
		oldTotal := s.starts.PositionFromPartition(numParts)
		s.starts.deleteBoundaryRange(1, numParts)
		s.values = s.values[:1]
		s.set = s.set[:1]
		s.starts.InsertText(0, pos-oldTotal)
	default:
		oldTotal := s.starts.PositionFromPartition(numParts)
		s.starts.deleteBoundaryRange(startIdx, numParts)
		s.values = s.values[:startIdx]
		s.set = s.set[:startIdx]
		s.starts.InsertText(startIdx-1, pos-oldTotal)
	}
}
