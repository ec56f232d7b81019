// Package cellbuffer holds a document's substance: the text bytes and their
// per-byte style bytes, kept in two parallel gap buffers, plus the line
// starts and undo history derived from them. Inserts and deletes maintain
// line structure incrementally rather than rescanning, and every mutation
// that changes line count is mirrored to a single registered per-line
// observer so markers, fold levels and the rest stay in step.
package cellbuffer
