// Package splitvector provides a gap-buffered contiguous array with
// amortised O(1) edits near the gap.
//
// The vector is split into three regions: a prefix [0, gapStart), a gap
// [gapStart, gapStart+gapLen) holding unused capacity, and a suffix
// [gapStart+gapLen, cap). Logical length is cap - gapLen. Edits near the
// gap are cheap; edits far from the gap require moving it, which costs
// O(distance).
//
// Reads and writes at out-of-range indices fail silently: SetValueAt and
// the Delete family become no-ops, ValueAt returns the zero value of T.
// Callers may rely on this for boundary-safe reads, matching Scintilla's
// SplitVector<T> contract.
package splitvector
