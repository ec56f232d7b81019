// Package document implements Document, the composition root that ties a
// CellBuffer's text and undo history to the per-line data managers
// (markers, fold levels, line state, annotations), contraction state,
// decorations, character classification, case folding and search into
// the single object an embedder edits against.
//
// A typical embedder opens a document, inserts its file content, then
// edits interactively:
//
//	doc := document.New()
//	doc.InsertString(0, []byte("package main\n"), false)
//	doc.AddWatcher(myWatcher, nil)
//	doc.InsertString(doc.Length(), []byte("func main() {}\n"), false)
//	if doc.CanUndo() {
//	    doc.Undo()
//	}
//
// Document is not safe for concurrent use from multiple goroutines without
// external synchronization beyond what its own mutex provides for simple
// accessor/mutator pairing; see the concurrency note on the struct.
package document
