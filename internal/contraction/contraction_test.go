package contraction

import "testing"

func TestOneToOneDefaults(t *testing.T) {
	s := New(5)
	for line := 0; line < 5; line++ {
		if !s.IsVisible(line) {
			t.Fatalf("line %d: IsVisible = false, want true", line)
		}
		if !s.IsExpanded(line) {
			t.Fatalf("line %d: IsExpanded = false, want true", line)
		}
		if h := s.GetHeight(line); h != 1 {
			t.Fatalf("line %d: GetHeight = %d, want 1", line, h)
		}
		if d := s.DisplayFromDoc(line); d != line {
			t.Fatalf("DisplayFromDoc(%d) = %d, want %d", line, d, line)
		}
		if doc := s.DocFromDisplay(line); doc != line {
			t.Fatalf("DocFromDisplay(%d) = %d, want %d", line, doc, line)
		}
	}
}

func TestSetVisibleHidesLineAndShrinksDisplayCount(t *testing.T) {
	s := New(5)
	if !s.SetVisible(2, 2, false) {
		t.Fatal("SetVisible(2,2,false) = false, want true")
	}
	if s.IsVisible(2) {
		t.Fatal("line 2 still visible after hiding")
	}
	if total := s.DisplayFromDoc(5); total != 4 {
		t.Fatalf("total display lines = %d, want 4", total)
	}
	if got := s.DocFromDisplay(2); got != 3 {
		t.Fatalf("DocFromDisplay(2) = %d, want 3 (hidden line 2 skipped)", got)
	}
	if got := s.DocFromDisplay(3); got != 4 {
		t.Fatalf("DocFromDisplay(3) = %d, want 4", got)
	}
}

func TestSetVisibleIsNoOpForAlreadyVisibleOneToOne(t *testing.T) {
	s := New(3)
	if s.SetVisible(0, 2, true) {
		t.Fatal("SetVisible(...,true) on fresh one-to-one state reported a change")
	}
}

func TestSetHeightExpandsDisplayTotal(t *testing.T) {
	s := New(3)
	if !s.SetHeight(1, 3) {
		t.Fatal("SetHeight(1,3) = false, want true")
	}
	if total := s.DisplayFromDoc(3); total != 5 {
		t.Fatalf("total display lines = %d, want 5 (1+3+1)", total)
	}
	if got := s.DocFromDisplay(1); got != 1 {
		t.Fatalf("DocFromDisplay(1) = %d, want 1", got)
	}
	if got := s.DocFromDisplay(3); got != 1 {
		t.Fatalf("DocFromDisplay(3) = %d, want 1 (still within line 1's 3 rows)", got)
	}
	if got := s.DocFromDisplay(4); got != 2 {
		t.Fatalf("DocFromDisplay(4) = %d, want 2", got)
	}
}

func TestDocFromDisplayPicksVisibleLineOnHiddenBoundary(t *testing.T) {
	s := New(5)
	s.SetVisible(2, 2, false)
	// display row 2 sits exactly on the boundary shared by the zero-width
	// hidden line 2 and the following visible line 3; DocFromDisplay must
	// resolve to the visible line.
	if got := s.DocFromDisplay(2); got != 3 {
		t.Fatalf("DocFromDisplay(2) = %d, want 3", got)
	}
}

func TestInsertLineShiftsSubsequentLines(t *testing.T) {
	s := New(4)
	s.SetVisible(1, 1, false) // go full, hide line 1
	s.InsertLine(2)

	if s.LineCount() != 5 {
		t.Fatalf("LineCount() = %d, want 5", s.LineCount())
	}
	if !s.IsVisible(2) {
		t.Fatal("newly inserted line is not visible")
	}
	if s.IsVisible(1) {
		t.Fatal("line 1 should still be hidden after inserting a new line after it")
	}
	if total := s.DisplayFromDoc(5); total != 4 {
		t.Fatalf("total display lines = %d, want 4 (5 lines, 1 hidden)", total)
	}
}

func TestRemoveLineDropsItsDisplayContribution(t *testing.T) {
	s := New(5)
	s.SetHeight(2, 3) // line 2 occupies 3 display rows
	s.RemoveLine(2)

	if s.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", s.LineCount())
	}
	if total := s.DisplayFromDoc(4); total != 4 {
		t.Fatalf("total display lines = %d, want 4 (removed line carried its height away)", total)
	}
	for line := 0; line < 4; line++ {
		if h := s.GetHeight(line); h != 1 {
			t.Fatalf("line %d: GetHeight = %d, want 1", line, h)
		}
	}
}

func TestRemoveFirstLine(t *testing.T) {
	s := New(3)
	s.SetVisible(0, 0, false)
	s.RemoveLine(0)

	if s.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", s.LineCount())
	}
	if total := s.DisplayFromDoc(2); total != 2 {
		t.Fatalf("total display lines = %d, want 2", total)
	}
	if !s.IsVisible(0) {
		t.Fatal("remaining first line should be visible")
	}
}
