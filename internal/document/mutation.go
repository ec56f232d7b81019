package document

import "github.com/dshills/scintilla/internal/undohistory"

// beginModifyAttempt reports whether the document is currently read-only.
// The first caller to find it so while no attempt notification is already
// in flight fires NotifyModifyAttempt on every watcher, with d.mu released
// for the whole of that call: inModifyAttempt guards against a watcher's
// own callback re-entering a mutator and triggering a second notification
// for the same outer call.
func (d *Document) beginModifyAttempt() bool {
	d.mu.Lock()
	readOnly := d.cb.IsReadOnly()
	var ws []watcherEntry
	if readOnly && !d.inModifyAttempt {
		d.inModifyAttempt = true
		ws = d.watcherSnapshot()
	}
	d.mu.Unlock()
	if ws != nil {
		notifyModifyAttempt(d, ws)
		d.mu.Lock()
		d.inModifyAttempt = false
		d.mu.Unlock()
	}
	return readOnly
}

// InsertString inserts s at pos. Watchers see MOD_INSERTCHECK first (a
// watcher may call ChangeInsertion from inside that callback to replace
// the payload), then BEFOREINSERT, then the actual CellBuffer insert,
// then INSERTTEXT. Returns the number of bytes actually inserted, 0 on
// a no-op (read-only, re-entrant call, or an empty/zeroed-out payload).
//
// d.mu is never held while a watcher callback runs: every notification
// point below releases the lock first, since a watcher is free to call
// back into Document (ChangeInsertion, a query, even another edit) on
// the same goroutine, and sync.RWMutex cannot be re-acquired there
// without deadlocking.
func (d *Document) InsertString(pos int, s []byte, mayCoalesce bool) int {
	d.mu.Lock()
	if d.enteredModification != 0 {
		d.mu.Unlock()
		return 0
	}
	d.enteredModification++
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.enteredModification--
		d.mu.Unlock()
	}()

	if d.beginModifyAttempt() || len(s) == 0 {
		return 0
	}

	d.mu.Lock()
	d.insertionSet = false
	d.insertion = nil
	checkWatchers := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, checkWatchers, ModEvent{Flags: ModInsertCheck, Position: pos, Length: len(s), Text: s})

	d.mu.Lock()
	payload := s
	if d.insertionSet {
		payload = d.insertion
	}
	d.mu.Unlock()
	if len(payload) == 0 {
		return 0
	}

	d.mu.Lock()
	beforeWatchers := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, beforeWatchers, ModEvent{Flags: ModBeforeInsert, Position: pos, Length: len(payload)})

	d.mu.Lock()
	hadUndo := d.cb.CanUndo()
	linesBefore := d.cb.LineCount()
	stored, ok := d.cb.InsertString(pos, payload, mayCoalesce)
	if !ok {
		d.mu.Unlock()
		return 0
	}
	linesAdded := d.cb.LineCount() - linesBefore
	_ = stored // stored may be a larger coalesced undo record; notifications report the bytes this call actually inserted
	d.decorations.InsertSpace(pos, len(payload))

	flags := ModInsertText | ModPerformedUser
	if !mayCoalesce || !hadUndo {
		flags |= ModStartAction
	}
	afterWatchers := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, afterWatchers, ModEvent{Flags: flags, Position: pos, Length: len(payload), LinesAdded: linesAdded, Text: payload})
	return len(payload)
}

// DeleteChars removes the n bytes starting at pos. Watchers see
// BEFOREDELETE, then the actual CellBuffer delete, then DELETETEXT.
// Returns the number of bytes actually deleted, 0 on a no-op.
func (d *Document) DeleteChars(pos, n int, mayCoalesce bool) int {
	d.mu.Lock()
	if d.enteredModification != 0 {
		d.mu.Unlock()
		return 0
	}
	d.enteredModification++
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.enteredModification--
		d.mu.Unlock()
	}()

	if d.beginModifyAttempt() || n <= 0 {
		return 0
	}

	d.mu.Lock()
	beforeWatchers := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, beforeWatchers, ModEvent{Flags: ModBeforeDelete, Position: pos, Length: n})

	d.mu.Lock()
	hadUndo := d.cb.CanUndo()
	linesBefore := d.cb.LineCount()
	removed, ok := d.cb.DeleteChars(pos, n, mayCoalesce)
	if !ok {
		d.mu.Unlock()
		return 0
	}
	linesAdded := d.cb.LineCount() - linesBefore

	d.decorations.DeleteRange(pos, n)

	flags := ModDeleteText | ModPerformedUser
	if !mayCoalesce || !hadUndo {
		flags |= ModStartAction
	}
	afterWatchers := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, afterWatchers, ModEvent{Flags: flags, Position: pos, Length: n, LinesAdded: linesAdded, Text: removed})
	return len(removed)
}

// ChangeInsertion substitutes the payload of an insertion in progress. It
// is only meaningful, and only safe, called synchronously from inside a
// Watcher.NotifyModified callback carrying MOD_INSERTCHECK. Called while no
// edit is in progress it is a no-op that returns false; called from any
// other notification of an edit in progress it returns true but has no
// effect on the text.
func (d *Document) ChangeInsertion(s []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enteredModification == 0 {
		return false
	}
	d.insertionSet = true
	d.insertion = append([]byte(nil), s...)
	return true
}

// SetStyleFor sets the style byte for the n bytes starting at pos and
// notifies watchers of the style change.
func (d *Document) SetStyleFor(pos, n int, style byte) {
	d.mu.Lock()
	d.cb.SetStyleFor(pos, n, style)
	if pos+n > d.endStyled {
		d.endStyled = pos + n
	}
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeStyle, Position: pos, Length: n})
}

// SetStyles sets each byte of styles, in order, starting at pos.
func (d *Document) SetStyles(pos int, styles []byte) {
	d.mu.Lock()
	for i, s := range styles {
		d.cb.SetStyleAt(pos+i, s)
	}
	if end := pos + len(styles); end > d.endStyled {
		d.endStyled = end
	}
	ws := d.watcherSnapshot()
	d.mu.Unlock()
	notifyModified(d, ws, ModEvent{Flags: ModChangeStyle, Position: pos, Length: len(styles)})
}

// SetReadOnly toggles whether mutating operations are accepted.
func (d *Document) SetReadOnly(readOnly bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb.SetReadOnly(readOnly)
}

// IsReadOnly reports the current read-only state.
func (d *Document) IsReadOnly() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.IsReadOnly()
}

// BeginUndoAction opens (or extends) a group of edits that undo/redo as
// a single step, carrying MOD_MULTISTEPUNDOREDO on every step within it.
func (d *Document) BeginUndoAction() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb.BeginUndoAction()
}

// EndUndoAction closes one level of undo grouping.
func (d *Document) EndUndoAction() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb.EndUndoAction()
}

// CanUndo reports whether there is an action to undo.
func (d *Document) CanUndo() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.CanUndo()
}

// CanRedo reports whether there is an action to redo.
func (d *Document) CanRedo() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.CanRedo()
}

// SetSavePoint marks the current undo position as the "file on disk"
// point.
func (d *Document) SetSavePoint() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb.SetSavePoint()
}

// IsSavePoint reports whether the document is exactly at its save point.
func (d *Document) IsSavePoint() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.IsSavePoint()
}

// TentativeStart marks the current undo position as the start of a
// tentative (IME composition) span.
func (d *Document) TentativeStart() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb.TentativeStart()
}

// TentativeCommit ends the tentative span, discarding redo history
// recorded since TentativeStart.
func (d *Document) TentativeCommit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb.TentativeCommit()
}

// IsTentative reports whether a tentative span is currently open.
func (d *Document) IsTentative() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cb.IsTentative()
}

// Undo performs one undo step (or, inside a BeginUndoAction group, every
// action recorded in it), returning the number of actions undone.
func (d *Document) Undo() int {
	d.mu.Lock()
	if d.enteredModification != 0 || !d.cb.CanUndo() {
		d.mu.Unlock()
		return 0
	}
	d.enteredModification++
	steps := d.cb.StartUndo()
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.enteredModification--
		d.mu.Unlock()
	}()

	for i := 0; i < steps; i++ {
		d.mu.Lock()
		linesBefore := d.cb.LineCount()
		action := d.cb.PerformUndoStep()
		linesAdded := d.cb.LineCount() - linesBefore

		var flags ModFlags
		switch action.Kind {
		case undohistory.Insert:
			flags = ModDeleteText
			d.decorations.DeleteRange(action.Position, len(action.Data))
		case undohistory.Remove:
			flags = ModInsertText
			d.decorations.InsertSpace(action.Position, len(action.Data))
		}
		flags |= ModPerformedUndo
		if i == 0 {
			flags |= ModStartAction
		}
		if steps > 1 {
			flags |= ModMultiStepUndoRedo
		}
		if i == steps-1 {
			flags |= ModLastStepInUndoRedo
		}
		ws := d.watcherSnapshot()
		d.mu.Unlock()
		notifyModified(d, ws, ModEvent{Flags: flags, Position: action.Position, Length: len(action.Data), LinesAdded: linesAdded, Text: action.Data})
	}
	return steps
}

// Redo re-applies the next undone step, returning the number of actions
// redone.
func (d *Document) Redo() int {
	d.mu.Lock()
	if d.enteredModification != 0 || !d.cb.CanRedo() {
		d.mu.Unlock()
		return 0
	}
	d.enteredModification++
	steps := d.cb.StartRedo()
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.enteredModification--
		d.mu.Unlock()
	}()

	for i := 0; i < steps; i++ {
		d.mu.Lock()
		linesBefore := d.cb.LineCount()
		action := d.cb.PerformRedoStep()
		linesAdded := d.cb.LineCount() - linesBefore

		var flags ModFlags
		switch action.Kind {
		case undohistory.Insert:
			flags = ModInsertText
			d.decorations.InsertSpace(action.Position, len(action.Data))
		case undohistory.Remove:
			flags = ModDeleteText
			d.decorations.DeleteRange(action.Position, len(action.Data))
		}
		flags |= ModPerformedRedo
		if i == 0 {
			flags |= ModStartAction
		}
		if steps > 1 {
			flags |= ModMultiStepUndoRedo
		}
		if i == steps-1 {
			flags |= ModLastStepInUndoRedo
		}
		ws := d.watcherSnapshot()
		d.mu.Unlock()
		notifyModified(d, ws, ModEvent{Flags: flags, Position: action.Position, Length: len(action.Data), LinesAdded: linesAdded, Text: action.Data})
	}
	return steps
}
