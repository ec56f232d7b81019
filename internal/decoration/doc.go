// Package decoration implements DecorationList, an ordered collection of
// per-indicator RunStyles overlays (squiggles, find-highlights, hover
// marks) that sit alongside syntax styling and slide with edits the same
// way RunStyles does.
package decoration
