package document

import (
	"testing"

	"github.com/dshills/scintilla/internal/perline"
)

func TestSetLevelNotifiesOnlyWhenChanged(t0 *testing.T) {
	d := New()
	d.InsertString(0, []byte("a\nb\nc\n"), false)
	w := newRecordingWatcher()
	d.AddWatcher(w, nil)

	prev := d.SetLevel(1, perline.LevelBase+2)
	if prev != perline.LevelBase {
		t0.Fatalf("SetLevel returned %d, want %d", prev, perline.LevelBase)
	}
	if w.countWith(ModChangeFold) != 1 {
		t0.Fatalf("ModChangeFold notifications = %d, want 1", w.countWith(ModChangeFold))
	}
	if got := d.GetLevel(1); got != perline.LevelBase+2 {
		t0.Fatalf("GetLevel(1) = %d, want %d", got, perline.LevelBase+2)
	}

	d.SetLevel(1, perline.LevelBase+2)
	if w.countWith(ModChangeFold) != 1 {
		t0.Fatalf("setting the same level again notified again: count = %d", w.countWith(ModChangeFold))
	}
}

func TestGetLastChildStopsAtLowerLevelSibling(t0 *testing.T) {
	d := New()
	d.InsertString(0, []byte("a\nb\nc\nd\n"), false)
	d.SetLevel(0, perline.LevelBase|perline.LevelHeaderFlag)
	d.SetLevel(1, perline.LevelBase+1)
	d.SetLevel(2, perline.LevelBase+1)
	d.SetLevel(3, perline.LevelBase)

	if got := d.GetLastChild(0, -1, -1); got != 2 {
		t0.Fatalf("GetLastChild(0) = %d, want 2", got)
	}
}

func TestGetFoldParentFindsNearestEnclosingHeader(t0 *testing.T) {
	d := New()
	d.InsertString(0, []byte("a\nb\nc\n"), false)
	d.SetLevel(0, perline.LevelBase|perline.LevelHeaderFlag)
	d.SetLevel(1, perline.LevelBase+1)
	d.SetLevel(2, perline.LevelBase+1)

	if got := d.GetFoldParent(2); got != 0 {
		t0.Fatalf("GetFoldParent(2) = %d, want 0", got)
	}
	if got := d.GetFoldParent(0); got != -1 {
		t0.Fatalf("GetFoldParent(0) = %d, want -1", got)
	}
}

func TestGetHighlightDelimitersSpansHeaderToLastChild(t0 *testing.T) {
	d := New()
	d.InsertString(0, []byte("a\nb\nc\nd\n"), false)
	d.SetLevel(0, perline.LevelBase|perline.LevelHeaderFlag)
	d.SetLevel(1, perline.LevelBase+1)
	d.SetLevel(2, perline.LevelBase+1)
	d.SetLevel(3, perline.LevelBase)

	hd := d.GetHighlightDelimiters(1, 1)
	if hd.Empty {
		t0.Fatalf("GetHighlightDelimiters reported Empty for a line inside a fold block")
	}
	if hd.BeginFoldBlock != 0 {
		t0.Fatalf("BeginFoldBlock = %d, want 0", hd.BeginFoldBlock)
	}
	if hd.EndFoldBlock != 2 {
		t0.Fatalf("EndFoldBlock = %d, want 2", hd.EndFoldBlock)
	}
}

func TestGetHighlightDelimitersEmptyOutsideAnyFoldBlock(t0 *testing.T) {
	d := New()
	d.InsertString(0, []byte("a\nb\n"), false)
	hd := d.GetHighlightDelimiters(0, 0)
	if !hd.Empty {
		t0.Fatalf("GetHighlightDelimiters = %#v, want Empty at base level with no headers", hd)
	}
}

func TestSetLineStateNotifiesOnlyWhenChanged(t0 *testing.T) {
	d := New()
	d.InsertString(0, []byte("a\nb\n"), false)
	w := newRecordingWatcher()
	d.AddWatcher(w, nil)

	if changed := d.SetLineState(0, 7); !changed {
		t0.Fatalf("SetLineState(0, 7) reported no change")
	}
	if d.GetLineState(0) != 7 {
		t0.Fatalf("GetLineState(0) = %d, want 7", d.GetLineState(0))
	}
	if changed := d.SetLineState(0, 7); changed {
		t0.Fatalf("SetLineState with the same value reported a change")
	}
	if w.countWith(ModChangeLineState) != 1 {
		t0.Fatalf("ModChangeLineState notifications = %d, want 1", w.countWith(ModChangeLineState))
	}
}
