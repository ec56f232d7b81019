package partition

import "testing"

// runList reconstructs the {start,value} runs of r for assertions.
func runList(r *RunStyles) []struct{ start, value int } {
	out := make([]struct{ start, value int }, 0, r.Runs())
	for i := 0; i < r.Runs(); i++ {
		out = append(out, struct{ start, value int }{r.starts.PositionFromPartition(i), r.values[i]})
	}
	return out
}

func checkNoAdjacentEqual(t *testing.T, r *RunStyles) {
	t.Helper()
	for i := 1; i < len(r.values); i++ {
		if r.values[i-1] == r.values[i] {
			t.Fatalf("adjacent runs %d and %d both carry value %d: %+v", i-1, i, r.values[i], runList(r))
		}
	}
}

func newFilled(n int) *RunStyles {
	r := NewRunStyles()
	r.InsertSpace(0, n)
	return r
}

func TestNewRunStylesSingleRun(t *testing.T) {
	r := NewRunStyles()
	if r.Length() != 0 || r.Runs() != 1 {
		t.Fatalf("Length()=%d Runs()=%d, want 0,1", r.Length(), r.Runs())
	}
}

func TestInsertSpaceExtendsLastRun(t *testing.T) {
	r := newFilled(10)
	if r.Length() != 10 || r.Runs() != 1 {
		t.Fatalf("Length()=%d Runs()=%d, want 10,1", r.Length(), r.Runs())
	}
}

func TestFillRangeSplitsAndSetsValue(t *testing.T) {
	r := newFilled(10)
	r.FillRange(3, 5, 4) // [3,7) = 5

	if got := r.ValueAt(0); got != 0 {
		t.Fatalf("ValueAt(0) = %d, want 0", got)
	}
	if got := r.ValueAt(3); got != 5 {
		t.Fatalf("ValueAt(3) = %d, want 5", got)
	}
	if got := r.ValueAt(6); got != 5 {
		t.Fatalf("ValueAt(6) = %d, want 5", got)
	}
	if got := r.ValueAt(7); got != 0 {
		t.Fatalf("ValueAt(7) = %d, want 0", got)
	}
	if r.Runs() != 3 {
		t.Fatalf("Runs() = %d, want 3", r.Runs())
	}
	checkNoAdjacentEqual(t, r)
}

func TestFillRangeNoOpWhenAlreadySameValue(t *testing.T) {
	r := newFilled(10)
	changed := r.FillRange(0, 0, 10)
	if changed {
		t.Fatalf("FillRange reported a change filling with the existing value")
	}
	if r.Runs() != 1 {
		t.Fatalf("Runs() = %d, want 1", r.Runs())
	}
}

func TestFillRangeMergesWithEqualNeighbors(t *testing.T) {
	r := newFilled(10)
	r.FillRange(3, 5, 4) // [0,3)=0 [3,7)=5 [7,10)=0
	r.FillRange(3, 0, 4) // refill back to 0, should fully re-merge into one run
	if r.Runs() != 1 {
		t.Fatalf("Runs() = %d, want 1, got %+v", r.Runs(), runList(r))
	}
	checkNoAdjacentEqual(t, r)
}

func TestDeleteRangeInterior(t *testing.T) {
	r := newFilled(10)
	r.FillRange(2, 1, 3) // [0,2)=0 [2,5)=1 [5,10)=0
	r.FillRange(5, 2, 3) // [5,8)=2 [8,10)=0
	r.DeleteRange(3, 4)  // delete [3,7): spans end of run1, all of run2-ish

	if got := r.Length(); got != 6 {
		t.Fatalf("Length() = %d, want 6", got)
	}
	checkNoAdjacentEqual(t, r)
	// Position 3 after deletion was position 7 before: value 2.
	if got := r.ValueAt(3); got != 2 {
		t.Fatalf("ValueAt(3) = %d, want 2, runs=%+v", got, runList(r))
	}
	if got := r.ValueAt(1); got != 0 {
		t.Fatalf("ValueAt(1) = %d, want 0", got)
	}
}

func TestDeleteRangeThroughEndKeepsPrefix(t *testing.T) {
	r := newFilled(10)
	r.FillRange(2, 1, 3) // [0,2)=0 [2,5)=1 [5,10)=0
	r.DeleteRange(4, 100)

	if got := r.Length(); got != 4 {
		t.Fatalf("Length() = %d, want 4", got)
	}
	if got := r.ValueAt(0); got != 0 {
		t.Fatalf("ValueAt(0) = %d, want 0", got)
	}
	if got := r.ValueAt(3); got != 1 {
		t.Fatalf("ValueAt(3) = %d, want 1", got)
	}
	checkNoAdjacentEqual(t, r)
}

func TestDeleteRangeEntireBuffer(t *testing.T) {
	r := newFilled(10)
	r.FillRange(2, 1, 3)
	r.DeleteRange(0, 10)

	if got := r.Length(); got != 0 {
		t.Fatalf("Length() = %d, want 0", got)
	}
	if got := r.Runs(); got != 1 {
		t.Fatalf("Runs() = %d, want 1", got)
	}
}

func TestDeleteRangeClampsPastEnd(t *testing.T) {
	r := newFilled(5)
	r.DeleteRange(3, 1000)
	if got := r.Length(); got != 3 {
		t.Fatalf("Length() = %d, want 3", got)
	}
}

func TestFindLocatesRunByValue(t *testing.T) {
	r := newFilled(10)
	r.FillRange(2, 1, 3)
	r.FillRange(7, 1, 2)

	if got := r.Find(1, 0); got != 2 {
		t.Fatalf("Find(1,0) = %d, want 2", got)
	}
	if got := r.Find(1, 3); got != 3 {
		t.Fatalf("Find(1,3) = %d, want 3", got)
	}
	if got := r.Find(1, 6); got != 7 {
		t.Fatalf("Find(1,6) = %d, want 7", got)
	}
	if got := r.Find(9, 0); got != -1 {
		t.Fatalf("Find(9,0) = %d, want -1", got)
	}
}

func TestAllSameAs(t *testing.T) {
	r := newFilled(10)
	if !r.AllSameAs(0) {
		t.Fatalf("AllSameAs(0) = false on freshly filled run")
	}
	r.FillRange(4, 1, 1)
	if r.AllSameAs(0) {
		t.Fatalf("AllSameAs(0) = true after a split")
	}
}

func TestStartRunEndRun(t *testing.T) {
	r := newFilled(10)
	r.FillRange(3, 5, 4)
	if got := r.StartRun(4); got != 3 {
		t.Fatalf("StartRun(4) = %d, want 3", got)
	}
	if got := r.EndRun(4); got != 7 {
		t.Fatalf("EndRun(4) = %d, want 7", got)
	}
}

func TestSetValueAtSingleCharacter(t *testing.T) {
	r := newFilled(5)
	r.SetValueAt(2, 9)
	if got := r.ValueAt(2); got != 9 {
		t.Fatalf("ValueAt(2) = %d, want 9", got)
	}
	if got := r.Runs(); got != 3 {
		t.Fatalf("Runs() = %d, want 3, runs=%+v", got, runList(r))
	}
}
