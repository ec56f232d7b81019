package document

// AddMark attaches a new handle of markerNumber to line and notifies
// watchers with ModChangeMarker. Returns the new handle, or -1 if line is
// out of range.
func (d *Document) AddMark(line, markerNumber int) int {
	d.mu.Lock()
	if line < 0 || line >= d.cb.LineCount() {
		d.mu.Unlock()
		return -1
	}
	handle := d.markers.Add(line, markerNumber)
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeMarker, Position: pos, Line: line})
	return handle
}

// AddMarkSet attaches one handle per set bit of valueSet to line, as a
// single ModChangeMarker notification.
func (d *Document) AddMarkSet(line, valueSet int) {
	d.mu.Lock()
	if line < 0 || line >= d.cb.LineCount() {
		d.mu.Unlock()
		return
	}
	for i := 0; valueSet != 0; i, valueSet = i+1, valueSet>>1 {
		if valueSet&1 != 0 {
			d.markers.Add(line, i)
		}
	}
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeMarker, Position: pos, Line: line})
}

// DeleteMark removes the first handle of markerNumber on line, if any, and
// notifies watchers with ModChangeMarker.
func (d *Document) DeleteMark(line, markerNumber int) {
	d.mu.Lock()
	handle := -1
	for _, h := range d.markers.HandlesOn(line) {
		if d.markers.NumberFromHandle(h) == markerNumber {
			handle = h
			break
		}
	}
	if handle >= 0 {
		d.markers.Delete(line, handle)
	}
	pos := d.cb.LineStart(line)
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeMarker, Position: pos, Line: line})
}

// DeleteMarkByHandle removes handle from whichever line holds it, wherever
// that is, and notifies watchers with ModChangeMarker carrying no specific
// line (Line: -1), matching the original's DeleteMarkFromHandle.
func (d *Document) DeleteMarkByHandle(handle int) {
	d.mu.Lock()
	line := d.markers.LineFromHandle(handle)
	if line >= 0 {
		d.markers.Delete(line, handle)
	}
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeMarker, Line: -1})
}

// DeleteAllMarks removes every handle carrying markerNumber (every handle
// on every line if markerNumber is negative), notifying watchers once if
// anything changed.
func (d *Document) DeleteAllMarks(markerNumber int) {
	d.mu.Lock()
	before := d.markersTotal()
	d.markers.DeleteAll(markerNumber)
	changed := d.markersTotal() != before
	var ws []watcherEntry
	if changed {
		ws = d.watcherSnapshot()
	}
	d.mu.Unlock()
	if changed {
		notifyModified(d, ws, ModEvent{Flags: ModChangeMarker, Line: -1})
	}
}

// LineFromHandle returns the line currently holding handle, or -1.
func (d *Document) LineFromHandle(handle int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.markers.LineFromHandle(handle)
}

// GetMark returns the bitset of marker numbers present on line.
func (d *Document) GetMark(line int) uint32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.markers.MarkValue(line)
}

// MarkerNext returns the first line at or after lineStart whose bitset
// intersects mask, or -1 if none.
func (d *Document) MarkerNext(lineStart int, mask uint32) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.markers.MarkerNext(lineStart, mask)
}

func (d *Document) markersTotal() int {
	total := 0
	for line := 0; line < d.cb.LineCount(); line++ {
		v := d.markers.MarkValue(line)
		for v != 0 {
			total++
			v &= v - 1
		}
	}
	return total
}
