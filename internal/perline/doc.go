// Package perline implements the per-line ancillary data managers that
// CellBuffer keeps in step with the document's line structure: marker
// bitsets, fold levels, scalar line state, and annotation text. Each
// manager satisfies PerLine so a CellBuffer can hold a flat list of
// observers and fan line-structure changes out to all of them uniformly.
package perline
