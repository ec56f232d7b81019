package document

// IndicatorFillRange sets indicator's value across [pos, pos+length),
// notifying watchers with ModChangeIndicator|ModPerformedUser only if the
// fill actually changed something, matching the original's
// DecorationFillRange.
func (d *Document) IndicatorFillRange(indicator, value, pos, length int) {
	d.mu.Lock()
	changed := d.decorations.FillRange(indicator, value, pos, length)
	var ws []watcherEntry
	if changed {
		ws = d.watcherSnapshot()
	}
	d.mu.Unlock()
	if changed {
		notifyModified(d, ws, ModEvent{
			Flags:    ModChangeIndicator | ModPerformedUser,
			Position: pos,
			Length:   length,
		})
	}
}

// IndicatorValueAt returns indicator's value at pos, 0 if indicator has
// never been filled.
func (d *Document) IndicatorValueAt(indicator, pos int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.decorations.ValueAt(indicator, pos)
}

// IndicatorAllOnFor returns the bitwise OR of every indicator 0..31's
// value at pos, the INDIC0_MASK convention used by per-character styling
// queries.
func (d *Document) IndicatorAllOnFor(pos int) uint32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.decorations.AllOnFor(pos)
}

// Indicators returns the indicator ids currently carrying a non-zero
// value anywhere in the document, in first-use order.
func (d *Document) Indicators() []int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.decorations.Indicators()
}
