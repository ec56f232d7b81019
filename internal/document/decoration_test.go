package document

import "testing"

func TestIndicatorFillRangeNotifiesOnlyWhenChanged(t *testing.T) {
	d := New()
	d.InsertString(0, []byte("hello world"), false)
	w := newRecordingWatcher()
	d.AddWatcher(w, nil)

	d.IndicatorFillRange(0, 1, 0, 5)
	if got := d.IndicatorValueAt(0, 2); got != 1 {
		t.Fatalf("IndicatorValueAt(0, 2) = %d, want 1", got)
	}
	if got := d.IndicatorValueAt(0, 6); got != 0 {
		t.Fatalf("IndicatorValueAt(0, 6) = %d, want 0", got)
	}
	if w.countWith(ModChangeIndicator) != 1 {
		t.Fatalf("ModChangeIndicator notifications = %d, want 1", w.countWith(ModChangeIndicator))
	}
	if last := w.last(); !last.Flags.has(ModPerformedUser) {
		t.Fatalf("IndicatorFillRange notification missing ModPerformedUser: %+v", last)
	}

	d.IndicatorFillRange(0, 1, 0, 5)
	if w.countWith(ModChangeIndicator) != 1 {
		t.Fatalf("refilling with the same value notified again: count = %d", w.countWith(ModChangeIndicator))
	}
}

func TestIndicatorAllOnForCombinesIndicators(t *testing.T) {
	d := New()
	d.InsertString(0, []byte("hello world"), false)

	d.IndicatorFillRange(0, 1, 0, 5)
	d.IndicatorFillRange(3, 1, 0, 5)

	if got := d.IndicatorAllOnFor(2); got != (1<<0)|(1<<3) {
		t.Fatalf("IndicatorAllOnFor(2) = %#x, want bits 0 and 3 set", got)
	}
	if got := d.Indicators(); len(got) != 2 {
		t.Fatalf("Indicators() = %v, want 2 entries", got)
	}
}

func TestIndicatorFillRangeDroppingToZeroClearsIndicator(t *testing.T) {
	d := New()
	d.InsertString(0, []byte("hello world"), false)

	d.IndicatorFillRange(0, 1, 0, 5)
	d.IndicatorFillRange(0, 0, 0, 5)

	if got := d.Indicators(); len(got) != 0 {
		t.Fatalf("Indicators() after clearing back to 0 = %v, want empty", got)
	}
}
