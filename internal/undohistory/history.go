package undohistory

// Kind distinguishes the three action kinds the history records.
type Kind int

const (
	Insert Kind = iota
	Remove
	Container
)

// Action is one recorded mutation.
type Action struct {
	Kind        Kind
	Position    int
	Data        []byte
	Token       int  // caller-supplied id for Container actions
	MayCoalesce bool // whether a later adjacent action may merge into this one
	StartsStep  bool // true if undoing/redoing this action begins a new user-visible step
}

// History is a vector of recorded actions with two cursors: currentAction
// (how many of actions[0:maxAction] are currently applied) and maxAction
// (how many are recorded at all — the redo limit). A fresh AppendAction
// after undoing truncates anything beyond currentAction, discarding stale
// redo history, exactly as a new edit after Ctrl+Z does in any editor.
type History struct {
	actions         []Action
	currentAction   int
	maxAction       int
	savePoint       int
	tentativePoint  int
	depth           int
	forceNoCoalesce bool
	pendingBoundary bool
}

// New creates an empty history.
func New() *History {
	return &History{tentativePoint: -1, pendingBoundary: true}
}

// AppendAction records an insert or remove, coalescing into the previous
// record when the coalescing rules allow it, and returns the bytes as
// actually stored (the caller's data on a fresh record, the merged data
// on a coalesce).
func (h *History) AppendAction(kind Kind, pos int, data []byte, mayCoalesce bool) []byte {
	h.prepareAppend()
	attemptCoalesce := mayCoalesce
	if h.forceNoCoalesce {
		attemptCoalesce = false
		h.forceNoCoalesce = false
	}
	// A record sitting exactly at the save point or tentative point must
	// never be merged into: doing so would erase the boundary the save
	// point or tentative span depends on landing exactly on an action
	// index. This blocks only this call's attempt to merge into that
	// record; the new record written below keeps the caller's own
	// mayCoalesce so later actions can still coalesce into it.
	if h.currentAction == h.savePoint || h.currentAction == h.tentativePoint {
		attemptCoalesce = false
	}

	if h.depth == 0 && attemptCoalesce && len(h.actions) > 0 {
		prev := &h.actions[len(h.actions)-1]
		if prev.MayCoalesce && canCoalesce(prev, kind, pos, data) {
			coalesceInto(prev, kind, pos, data)
			return prev.Data
		}
	}

	h.writeNewAction(kind, pos, data, 0, mayCoalesce)
	return h.actions[len(h.actions)-1].Data
}

// AppendContainerAction records an opaque caller-defined action identified
// by token, used for undo/redo steps the embedder itself knows how to
// invert (e.g. a macro or a non-text document change).
func (h *History) AppendContainerAction(token int, mayCoalesce bool) {
	h.prepareAppend()
	if h.forceNoCoalesce {
		mayCoalesce = false
		h.forceNoCoalesce = false
	}
	h.writeNewAction(Container, 0, nil, token, mayCoalesce)
}

// prepareAppend invalidates the save point if history has diverged from
// it and discards any stale redo history before a new action is written.
func (h *History) prepareAppend() {
	if h.currentAction < h.savePoint {
		h.savePoint = -1
	}
	if h.currentAction < h.maxAction {
		h.actions = h.actions[:h.currentAction]
		h.maxAction = h.currentAction
	}
}

func (h *History) writeNewAction(kind Kind, pos int, data []byte, token int, mayCoalesce bool) {
	boundary := h.depth == 0
	if h.pendingBoundary {
		boundary = true
		h.pendingBoundary = false
	}
	h.actions = append(h.actions, Action{
		Kind:        kind,
		Position:    pos,
		Data:        append([]byte(nil), data...),
		Token:       token,
		MayCoalesce: mayCoalesce,
		StartsStep:  boundary,
	})
	h.currentAction++
	h.maxAction = h.currentAction
}

func canCoalesce(prev *Action, kind Kind, pos int, data []byte) bool {
	if prev.Kind != kind {
		return false
	}
	switch kind {
	case Insert:
		return pos == prev.Position+len(prev.Data)
	case Remove:
		if len(data) > 2 {
			return false
		}
		return pos+len(data) == prev.Position || pos == prev.Position
	default:
		return false
	}
}

func coalesceInto(prev *Action, kind Kind, pos int, data []byte) {
	switch kind {
	case Insert:
		prev.Data = append(prev.Data, data...)
	case Remove:
		if pos == prev.Position {
			prev.Data = append(prev.Data, data...)
			return
		}
		// backspace: pos + len(data) == prev.Position
		prev.Position = pos
		merged := make([]byte, 0, len(data)+len(prev.Data))
		merged = append(merged, data...)
		merged = append(merged, prev.Data...)
		prev.Data = merged
	}
}

// BeginUndoAction opens (or extends, if already open) a group of actions
// that undo/redo as a single user-visible step.
func (h *History) BeginUndoAction() {
	h.depth++
	if h.depth == 1 {
		h.forceNoCoalesce = true
		h.pendingBoundary = true
	}
}

// EndUndoAction closes one level of undo grouping. Grouping closes only
// when the outermost Begin/End pair unwinds.
func (h *History) EndUndoAction() {
	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth == 0 {
		h.forceNoCoalesce = true
	}
}

// UndoSequenceDepth reports the current Begin/End nesting depth.
func (h *History) UndoSequenceDepth() int {
	return h.depth
}

// SetSavePoint marks the current action index as the "file on disk"
// point.
func (h *History) SetSavePoint() {
	h.savePoint = h.currentAction
}

// IsSavePoint reports whether the history is exactly at its save point.
func (h *History) IsSavePoint() bool {
	return h.savePoint == h.currentAction
}

// TentativeStart marks the current action index as the start of a
// tentative (IME composition) span.
func (h *History) TentativeStart() {
	h.tentativePoint = h.currentAction
}

// TentativeCommit ends the tentative span, discarding any redo history
// recorded beyond it.
func (h *History) TentativeCommit() {
	if h.tentativePoint < 0 {
		return
	}
	h.actions = h.actions[:h.currentAction]
	h.maxAction = h.currentAction
	h.tentativePoint = -1
}

// IsTentative reports whether a tentative span is currently open.
func (h *History) IsTentative() bool {
	return h.tentativePoint >= 0
}

// TentativeSteps returns the number of actions recorded since
// TentativeStart, or 0 if no tentative span is open.
func (h *History) TentativeSteps() int {
	if h.tentativePoint < 0 {
		return 0
	}
	return h.currentAction - h.tentativePoint
}

// CanUndo reports whether there is at least one action to undo.
func (h *History) CanUndo() bool {
	return h.currentAction > 0
}

// CanRedo reports whether there is at least one action to redo.
func (h *History) CanRedo() bool {
	return h.currentAction < h.maxAction
}

// StartUndo returns the number of action records making up the current
// undo step — more than one when they were recorded inside a
// BeginUndoAction/EndUndoAction group.
func (h *History) StartUndo() int {
	count := 0
	for i := h.currentAction - 1; i >= 0; i-- {
		count++
		if h.actions[i].StartsStep {
			break
		}
	}
	return count
}

// StartRedo is the symmetric counterpart of StartUndo for the forward
// direction.
func (h *History) StartRedo() int {
	if h.currentAction >= h.maxAction {
		return 0
	}
	count := 1
	for i := h.currentAction + 1; i < h.maxAction && !h.actions[i].StartsStep; i++ {
		count++
	}
	return count
}

// GetUndoStep returns the next action to undo (the one immediately
// before currentAction).
func (h *History) GetUndoStep() Action {
	return h.actions[h.currentAction-1]
}

// CompletedUndoStep advances the history backward after the caller has
// inverted and applied the step returned by GetUndoStep.
func (h *History) CompletedUndoStep() {
	h.currentAction--
}

// GetRedoStep returns the next action to redo (the one at currentAction).
func (h *History) GetRedoStep() Action {
	return h.actions[h.currentAction]
}

// CompletedRedoStep advances the history forward after the caller has
// re-applied the step returned by GetRedoStep.
func (h *History) CompletedRedoStep() {
	h.currentAction++
}
