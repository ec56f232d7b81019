package document

// ModFlags is the bitmask describing one modification notification,
// mirroring the external interface's notification payload flags.
type ModFlags uint32

const (
	ModInsertText ModFlags = 1 << iota
	ModDeleteText
	ModChangeStyle
	ModChangeFold
	ModBeforeInsert
	ModBeforeDelete
	ModChangeMarker
	ModChangeIndicator
	ModChangeLineState
	ModChangeMargin
	ModChangeAnnotation
	ModContainer
	ModLexerState
	ModInsertCheck

	ModPerformedUser
	ModPerformedUndo
	ModPerformedRedo

	ModStartAction
	ModMultiStepUndoRedo
	ModLastStepInUndoRedo
	ModMultiLineUndoRedo
)

func (f ModFlags) has(x ModFlags) bool { return f&x != 0 }

// ModEvent carries the details of one notification to AddWatcher's
// registrants.
type ModEvent struct {
	Flags                ModFlags
	Position             int
	Length               int
	LinesAdded           int
	Text                 []byte
	FoldLevelNow         int
	FoldLevelPrev        int
	AnnotationLinesAdded int
	Token                int
	Line                 int
}

// Watcher receives Document notifications. A nil method pointer is never
// called; embedders implementing only the notifications they care about
// can leave the others as empty bodies.
type Watcher interface {
	// NotifyModifyAttempt fires when a mutation is attempted on a
	// read-only document, before the mutation is rejected.
	NotifyModifyAttempt(doc *Document)
	// NotifyModified fires for every structural or styling change: three
	// times per insert (ModInsertCheck, ModBeforeInsert, then the After
	// flags), twice per delete (ModBeforeDelete, then the After flags),
	// once per undo/redo step, plus once per out-of-band change (style,
	// fold, marker, ...).
	NotifyModified(doc *Document, evt ModEvent)
	// NotifyStyleNeeded fires when EnsureStyledTo needs bytes styled
	// past pos but no lexer is registered to do it.
	NotifyStyleNeeded(doc *Document, pos int)
	// NotifyErrorOccurred carries a fatal internal error status. Document
	// itself never calls it: no edit path reports an allocation failure.
	NotifyErrorOccurred(doc *Document, status int)
}

// watcherSnapshot copies the current watcher list so it can be iterated
// after d.mu is released: notification callbacks run with no document
// lock held, since a watcher is free to call back into Document (read a
// field, start another edit, or answer MOD_INSERTCHECK), and
// sync.RWMutex is not reentrant on the same goroutine. Called only while
// d.mu is held.
func (d *Document) watcherSnapshot() []watcherEntry {
	if len(d.watchers) == 0 {
		return nil
	}
	return append([]watcherEntry(nil), d.watchers...)
}

func notifyModified(d *Document, watchers []watcherEntry, evt ModEvent) {
	for _, e := range watchers {
		e.w.NotifyModified(d, evt)
	}
}

func notifyModifyAttempt(d *Document, watchers []watcherEntry) {
	for _, e := range watchers {
		e.w.NotifyModifyAttempt(d)
	}
}
