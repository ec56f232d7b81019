package undohistory

import (
	"bytes"
	"testing"
)

func TestAppendActionCoalescesAdjacentInserts(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), true)
	h.AppendAction(Insert, 1, []byte("b"), true)
	h.AppendAction(Insert, 2, []byte("c"), true)

	if steps := h.StartUndo(); steps != 1 {
		t.Fatalf("StartUndo() = %d, want 1 (all three coalesced into one record)", steps)
	}
	step := h.GetUndoStep()
	if step.Kind != Insert || step.Position != 0 || string(step.Data) != "abc" {
		t.Fatalf("got %+v, want Insert at 0 with data \"abc\"", step)
	}
}

func TestAppendActionDoesNotCoalesceNonAdjacentInserts(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), true)
	h.AppendAction(Insert, 5, []byte("b"), true)

	if steps := h.StartUndo(); steps != 1 {
		t.Fatalf("StartUndo() = %d, want 1 (the non-adjacent insert is its own step)", steps)
	}
	if step := h.GetUndoStep(); step.Position != 5 || string(step.Data) != "b" {
		t.Fatalf("got %+v, want Insert at 5 with data \"b\" (not merged into \"a\")", step)
	}
}

func TestAppendActionCoalescesBackspaceRemoves(t *testing.T) {
	h := New()
	// deleting "c" then "b" then "a" by repeated backspace at a shrinking
	// position, each one byte, each adjoining the previous removal's start.
	h.AppendAction(Remove, 2, []byte("c"), true)
	h.AppendAction(Remove, 1, []byte("b"), true)
	h.AppendAction(Remove, 0, []byte("a"), true)

	if steps := h.StartUndo(); steps != 1 {
		t.Fatalf("StartUndo() = %d, want 1", steps)
	}
	step := h.GetUndoStep()
	if step.Position != 0 || string(step.Data) != "abc" {
		t.Fatalf("got %+v, want Remove at 0 with data \"abc\"", step)
	}
}

func TestAppendActionCoalescesForwardDeleteRemoves(t *testing.T) {
	h := New()
	h.AppendAction(Remove, 0, []byte("a"), true)
	h.AppendAction(Remove, 0, []byte("b"), true)
	h.AppendAction(Remove, 0, []byte("c"), true)

	step := h.GetUndoStep()
	if step.Position != 0 || string(step.Data) != "abc" {
		t.Fatalf("got %+v, want Remove at 0 with data \"abc\"", step)
	}
}

func TestMayCoalesceFalseForcesNewRecord(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), false)
	h.AppendAction(Insert, 1, []byte("b"), false)

	if steps := h.StartUndo(); steps != 1 {
		t.Fatalf("StartUndo() = %d, want 1 (the second insert is its own step)", steps)
	}
	if step := h.GetUndoStep(); step.Position != 1 || string(step.Data) != "b" {
		t.Fatalf("got %+v, want Insert at 1 with data \"b\" (not merged into \"a\")", step)
	}
}

func TestBeginEndUndoActionGroupsStepsAndBlocksCoalescing(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), true)

	h.BeginUndoAction()
	h.AppendAction(Insert, 1, []byte("b"), true) // adjacent, but depth>0 disables coalescing
	h.AppendAction(Insert, 2, []byte("c"), true)
	h.EndUndoAction()

	if steps := h.StartUndo(); steps != 2 {
		t.Fatalf("StartUndo() = %d, want 2 (the grouped pair, separate from the first insert)", steps)
	}
}

func TestNestedBeginEndOnlyClosesOnOutermostEnd(t *testing.T) {
	h := New()
	h.BeginUndoAction()
	h.BeginUndoAction()
	h.AppendAction(Insert, 0, []byte("a"), true)
	h.EndUndoAction()
	if h.UndoSequenceDepth() != 1 {
		t.Fatalf("depth = %d, want 1 after one End of a doubly-nested Begin", h.UndoSequenceDepth())
	}
	h.AppendAction(Insert, 1, []byte("b"), true) // still inside the outer group
	h.EndUndoAction()
	if h.UndoSequenceDepth() != 0 {
		t.Fatalf("depth = %d, want 0", h.UndoSequenceDepth())
	}
	if steps := h.StartUndo(); steps != 2 {
		t.Fatalf("StartUndo() = %d, want 2", steps)
	}
}

func TestSavePointInvalidatedByUndoPastIt(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), false)
	h.SetSavePoint()
	if !h.IsSavePoint() {
		t.Fatal("IsSavePoint() = false immediately after SetSavePoint")
	}
	h.AppendAction(Insert, 1, []byte("b"), false)
	h.CompletedUndoStep() // undo the second insert, back to the save point
	if !h.IsSavePoint() {
		t.Fatal("IsSavePoint() = false, want true: back at the save point")
	}
	h.CompletedUndoStep() // undo past the save point
	h.AppendAction(Insert, 5, []byte("z"), false)
	if h.IsSavePoint() {
		t.Fatal("IsSavePoint() = true, want false: new edit after undoing past save point must invalidate it")
	}
}

func TestSavePointBlocksCoalescingAcrossIt(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), true)
	h.AppendAction(Insert, 1, []byte("b"), true)
	h.AppendAction(Insert, 2, []byte("c"), true)
	h.SetSavePoint()
	h.AppendAction(Insert, 3, []byte("d"), true)
	h.AppendAction(Insert, 4, []byte("e"), true)

	if steps := h.StartUndo(); steps != 1 {
		t.Fatalf("StartUndo() = %d, want 1 (only the record since the save point)", steps)
	}
	step := h.GetUndoStep()
	if step.Position != 3 || string(step.Data) != "de" {
		t.Fatalf("got %+v, want Insert at 3 with data \"de\"", step)
	}
	h.CompletedUndoStep()
	if !h.IsSavePoint() {
		t.Fatal("IsSavePoint() = false, want true: one undo should land exactly back at the save point")
	}
	h.CompletedUndoStep()
	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undoing the pre-save-point record, want true")
	}
}

func TestTentativePointBlocksCoalescingAcrossIt(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), true)
	h.TentativeStart()
	h.AppendAction(Insert, 1, []byte("b"), true)
	h.AppendAction(Insert, 2, []byte("c"), true)

	if steps := h.StartUndo(); steps != 1 {
		t.Fatalf("StartUndo() = %d, want 1 (the two tentative inserts coalesce together)", steps)
	}
	step := h.GetUndoStep()
	if string(step.Data) != "bc" {
		t.Fatalf("got %+v, want data \"bc\"", step)
	}
	h.CompletedUndoStep()
	if steps := h.StartUndo(); steps != 1 {
		t.Fatalf("StartUndo() = %d, want 1 (the pre-tentative insert is its own record)", steps)
	}
	step = h.GetUndoStep()
	if string(step.Data) != "a" {
		t.Fatalf("got %+v, want data \"a\" (must not have merged across the tentative point)", step)
	}
}

func TestTentativeCommitTruncatesRedo(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("a"), false)
	h.TentativeStart()
	h.AppendAction(Insert, 1, []byte("b"), false)
	h.AppendAction(Insert, 2, []byte("c"), false)
	if steps := h.TentativeSteps(); steps != 2 {
		t.Fatalf("TentativeSteps() = %d, want 2", steps)
	}
	h.TentativeCommit()
	if h.IsTentative() {
		t.Fatal("IsTentative() = true after TentativeCommit")
	}
	if h.CanRedo() {
		t.Fatal("CanRedo() = true after TentativeCommit, want false")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := New()
	h.AppendAction(Insert, 0, []byte("ab"), false)
	h.AppendAction(Insert, 2, []byte("cd"), false)

	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("expected CanUndo and no CanRedo right after appending")
	}

	step := h.GetUndoStep()
	if !bytes.Equal(step.Data, []byte("cd")) {
		t.Fatalf("got %q, want cd", step.Data)
	}
	h.CompletedUndoStep()

	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after one undo")
	}
	redoStep := h.GetRedoStep()
	if !bytes.Equal(redoStep.Data, []byte("cd")) {
		t.Fatalf("got %q, want cd", redoStep.Data)
	}
	h.CompletedRedoStep()
	if h.CanRedo() {
		t.Fatal("CanRedo() = true after redoing the only pending step")
	}
}

func TestAppendContainerActionCarriesToken(t *testing.T) {
	h := New()
	h.AppendContainerAction(42, false)
	step := h.GetUndoStep()
	if step.Kind != Container || step.Token != 42 {
		t.Fatalf("got %+v, want Container with token 42", step)
	}
}
