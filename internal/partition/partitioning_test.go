package partition

import "testing"

func TestNewPartitioningSingleEmptyRun(t *testing.T) {
	p := New()
	if p.Partitions() != 1 {
		t.Fatalf("Partitions() = %d, want 1", p.Partitions())
	}
	if p.Total() != 0 {
		t.Fatalf("Total() = %d, want 0", p.Total())
	}
}

func TestInsertPartitionAndLookup(t *testing.T) {
	p := New()
	p.InsertText(0, 10) // grow the single run to [0,10)
	p.InsertPartition(0, 4)
	p.InsertPartition(1, 7)

	if got := p.Partitions(); got != 3 {
		t.Fatalf("Partitions() = %d, want 3", got)
	}
	cases := []struct {
		pos  int
		want int
	}{
		{0, 0}, {3, 0}, {4, 1}, {6, 1}, {7, 2}, {9, 2}, {10, 2},
	}
	for _, c := range cases {
		if got := p.PartitionFromPosition(c.pos); got != c.want {
			t.Errorf("PartitionFromPosition(%d) = %d, want %d", c.pos, got, c.want)
		}
	}
}

func TestRemovePartitionMergesNeighbors(t *testing.T) {
	p := New()
	p.InsertText(0, 10)
	p.InsertPartition(0, 4)
	p.InsertPartition(1, 7)
	p.RemovePartition(1)
	if got := p.Partitions(); got != 2 {
		t.Fatalf("Partitions() = %d, want 2", got)
	}
	if got := p.PositionFromPartition(1); got != 7 {
		t.Fatalf("PositionFromPartition(1) = %d, want 7", got)
	}
}

func TestInsertTextShiftsTrailingBoundaries(t *testing.T) {
	p := New()
	p.InsertText(0, 10)
	p.InsertPartition(0, 4)
	p.InsertText(0, 5) // grow partition 0 by 5
	if got := p.PositionFromPartition(1); got != 9 {
		t.Fatalf("PositionFromPartition(1) = %d, want 9", got)
	}
	if got := p.Total(); got != 15 {
		t.Fatalf("Total() = %d, want 15", got)
	}
}
