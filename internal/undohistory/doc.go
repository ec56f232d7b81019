// Package undohistory implements the coalescing undo/redo log shared by
// every CellBuffer mutation: insertions and removals that land next to
// each other merge into a single record, BeginUndoAction/EndUndoAction
// groups multiple records into one user-visible step, SetSavePoint marks
// the "unmodified" action index, and TentativeStart/TentativeCommit give
// IME composition a unit that can be rolled back wholesale.
package undohistory
