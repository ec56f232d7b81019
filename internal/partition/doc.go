// Package partition implements Partitioning — an ordered sequence of
// monotonically increasing positions dividing a length into runs — and the
// two structures layered on top of it: RunStyles (a run-length-coded map
// from position ranges to small integer values) and SparseVector (an RLE
// map from position to an optional value, used for annotations).
//
// All position↔partition lookups are O(log n) via binary search, with a
// one-entry cache that accelerates repeated nearby queries (the common case
// of a caret moving through adjacent positions).
package partition
