// Package search implements literal and regular-expression search over a
// document's text: case-sensitive and case-folded literal matching with
// whole-word and word-start boundary checks, and a regexp-backed engine
// that honors line-anchored ^/$ semantics and backward search by keeping
// the last forward match found on each candidate line.
package search
