package partition

import "github.com/dshills/scintilla/internal/splitvector"

// Partitioning holds n+1 strictly non-decreasing positions dividing
// [0, total) into n runs ("partitions"): starts[0] == 0, starts[n] == total,
// and partition i spans [starts[i], starts[i+1]).
type Partitioning struct {
	starts  *splitvector.SplitVector[int]
	lastHit int
}

// New creates a Partitioning with a single, empty partition.
func New() *Partitioning {
	s := splitvector.New[int]()
	s.Insert(0, 0)
	s.Insert(1, 0)
	return &Partitioning{starts: s}
}

// Partitions returns the number of partitions.
func (p *Partitioning) Partitions() int {
	return p.starts.Length() - 1
}

// Total returns the total length covered by the partitioning.
func (p *Partitioning) Total() int {
	return p.starts.ValueAt(p.starts.Length() - 1)
}

// PositionFromPartition returns the start position of partition i. i may
// range over [0, Partitions()]; i == Partitions() returns Total().
func (p *Partitioning) PositionFromPartition(i int) int {
	return p.starts.ValueAt(i)
}

// PartitionFromPosition returns the index of the partition containing pos.
// If pos falls exactly on a boundary, the partition starting there is
// returned. pos is clamped to [0, Total()]; pos == Total() returns the last
// partition.
func (p *Partitioning) PartitionFromPosition(pos int) int {
	n := p.Partitions()
	if n <= 0 {
		return 0
	}
	if pos < 0 {
		pos = 0
	}
	if total := p.Total(); pos > total {
		pos = total
	}
	if p.lastHit >= 0 && p.lastHit < n {
		s := p.starts.ValueAt(p.lastHit)
		e := p.starts.ValueAt(p.lastHit + 1)
		if pos >= s && (pos < e || (p.lastHit == n-1 && pos == e)) {
			return p.lastHit
		}
	}
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if p.starts.ValueAt(mid+1) <= pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= n {
		lo = n - 1
	}
	p.lastHit = lo
	return lo
}

// InsertText adds delta to every boundary strictly after partition i.
// Negative deltas are allowed; the caller must ensure no boundary becomes
// negative or out of order.
func (p *Partitioning) InsertText(i, delta int) {
	if delta == 0 {
		return
	}
	n := p.starts.Length()
	for k := i + 1; k < n; k++ {
		p.starts.SetValueAt(k, p.starts.ValueAt(k)+delta)
	}
}

// InsertPartition splits partition i into two at pos, which must lie
// within partition i ([starts[i], starts[i+1]]). The new partition i+1
// starts at pos.
func (p *Partitioning) InsertPartition(i, pos int) {
	p.starts.Insert(i+1, pos)
	p.lastHit = 0
}

// RemovePartition merges partition i into partition i-1 by dropping the
// boundary between them. i must be in [1, Partitions()-1].
func (p *Partitioning) RemovePartition(i int) {
	if i <= 0 || i >= p.starts.Length()-1 {
		return
	}
	p.starts.Delete(i)
	p.lastHit = 0
}

// deleteBoundaryRange drops boundaries [i, j) outright, without the
// single-step neighbor-merge semantics of RemovePartition. Boundary 0 and
// the final sentinel are never touched; callers are responsible for
// re-levelling whatever boundary ends up adjoining the gap (typically via
// InsertText) so the sequence stays non-decreasing.
func (p *Partitioning) deleteBoundaryRange(i, j int) {
	if i < 1 {
		i = 1
	}
	if last := p.starts.Length() - 1; j > last {
		j = last
	}
	if j <= i {
		return
	}
	p.starts.DeleteRange(i, j-i)
	p.lastHit = 0
}
