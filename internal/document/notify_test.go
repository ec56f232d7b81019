package document

// recordingWatcher records every notification it receives, for assertions
// in table-driven tests across the package.
type recordingWatcher struct {
	attempts       int
	events         []ModEvent
	styleNeededAt  []int
	errorsOccurred []int
	onInsertCheck  func(d *Document, evt ModEvent)
	onStyleNeeded  func(pos int)
}

func newRecordingWatcher() *recordingWatcher {
	return &recordingWatcher{}
}

func (w *recordingWatcher) NotifyModifyAttempt(doc *Document) {
	w.attempts++
}

func (w *recordingWatcher) NotifyModified(doc *Document, evt ModEvent) {
	w.events = append(w.events, evt)
	if evt.Flags.has(ModInsertCheck) && w.onInsertCheck != nil {
		w.onInsertCheck(doc, evt)
	}
}

func (w *recordingWatcher) NotifyStyleNeeded(doc *Document, pos int) {
	w.styleNeededAt = append(w.styleNeededAt, pos)
	if w.onStyleNeeded != nil {
		w.onStyleNeeded(pos)
	}
}

func (w *recordingWatcher) NotifyErrorOccurred(doc *Document, status int) {
	w.errorsOccurred = append(w.errorsOccurred, status)
}

func (w *recordingWatcher) last() ModEvent {
	if len(w.events) == 0 {
		return ModEvent{}
	}
	return w.events[len(w.events)-1]
}

func (w *recordingWatcher) countWith(flag ModFlags) int {
	n := 0
	for _, e := range w.events {
		if e.Flags.has(flag) {
			n++
		}
	}
	return n
}
