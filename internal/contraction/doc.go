// Package contraction implements ContractionState, the mapping between
// document lines and display lines used for code folding and line
// wrapping. Most documents never fold or wrap a single line, so the
// mapping starts in a one-to-one mode with no auxiliary storage and only
// allocates its full RunStyles/Partitioning machinery on the first call
// that actually hides or resizes a line.
package contraction
