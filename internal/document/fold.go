package document

import "github.com/dshills/scintilla/internal/perline"

// GetLevel returns the raw fold-level value (number plus flags) of line.
func (d *Document) GetLevel(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.levels.GetLevel(line)
}

// SetLevel sets the raw fold-level value of line and, if it changed,
// notifies watchers with ModChangeFold|ModChangeMarker carrying the old
// and new values. Returns the previous level.
func (d *Document) SetLevel(line, level int) int {
	d.mu.Lock()
	prev := d.levels.SetLevel(line, level)
	changed := prev != level
	var ws []watcherEntry
	var pos int
	if changed {
		pos = d.cb.LineStart(line)
		ws = d.watcherSnapshot()
	}
	d.mu.Unlock()
	if changed {
		notifyModified(d, ws, ModEvent{
			Flags:         ModChangeFold | ModChangeMarker,
			Position:      pos,
			Line:          line,
			FoldLevelNow:  level,
			FoldLevelPrev: prev,
		})
	}
	return prev
}

// GetLastChild returns the last line subordinate to lineParent at level
// (or lineParent's own level if level is -1), not looking past lastLine
// when lastLine >= 0.
func (d *Document) GetLastChild(lineParent, level, lastLine int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.levels.GetLastChild(lineParent, level, lastLine)
}

// GetFoldParent returns the nearest earlier header line whose level is
// strictly less than line's, or -1 if line is not nested.
func (d *Document) GetFoldParent(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.levels.GetFoldParent(line)
}

// GetLineState returns the lexer-carried state word for line.
func (d *Document) GetLineState(line int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lineState.Get(line)
}

// SetLineState records the lexer-carried state word for line, notifying
// watchers with ModChangeLineState if it changed. Returns whether it
// changed.
func (d *Document) SetLineState(line, state int) bool {
	d.mu.Lock()
	changed := d.lineState.Set(line, state)
	var ws []watcherEntry
	var pos int
	if changed {
		pos = d.cb.LineStart(line)
		ws = d.watcherSnapshot()
	}
	d.mu.Unlock()
	if changed {
		notifyModified(d, ws, ModEvent{Flags: ModChangeLineState, Position: pos, Line: line})
	}
	return changed
}

// HighlightDelimiter describes the fold block a line belongs to, for
// indent-guide and brace-fold highlighting: the header line and its last
// subordinate line, plus the nearest lines above/below that line that a
// caller is free to restyle without affecting the highlighted block.
type HighlightDelimiter struct {
	Empty                     bool
	BeginFoldBlock            int
	EndFoldBlock              int
	FirstChangeableLineBefore int
	FirstChangeableLineAfter  int
}

// GetHighlightDelimiters computes the fold block containing line, scanning
// no further than lastLine. It walks outward from line to the enclosing
// header (skipping blank/whitespace-folded lines and headers already
// closed by their own last child), resolves that header's matching
// closing line via GetLastChild, then looks for a block entirely above
// line whose own last child lands exactly on line (the case where line is
// itself a closing line belonging to an earlier block), and finally finds
// the nearest changeable lines bounding the result on each side.
func (d *Document) GetHighlightDelimiters(line, lastLine int) HighlightDelimiter {
	d.mu.RLock()
	defer d.mu.RUnlock()

	level := d.levels.GetLevel(line)
	lookLastLine := line
	if lastLine > lookLastLine {
		lookLastLine = lastLine
	}
	lookLastLine++

	lookLine := line
	lookLineLevel := level
	lookLineLevelNum := lookLineLevel & perline.LevelNumberMask
	for lookLine > 0 && (lookLineLevel&perline.LevelWhiteFlag != 0 ||
		(lookLineLevel&perline.LevelHeaderFlag != 0 && lookLineLevelNum >= d.levels.GetLevel(lookLine+1)&perline.LevelNumberMask)) {
		lookLine--
		lookLineLevel = d.levels.GetLevel(lookLine)
		lookLineLevelNum = lookLineLevel & perline.LevelNumberMask
	}

	beginFoldBlock := d.levels.GetFoldParent(lookLine)
	if lookLineLevel&perline.LevelHeaderFlag != 0 {
		beginFoldBlock = lookLine
	}
	if beginFoldBlock == -1 {
		return HighlightDelimiter{Empty: true}
	}

	endFoldBlock := d.levels.GetLastChild(beginFoldBlock, -1, lookLastLine)
	firstChangeableLineBefore := -1
	if endFoldBlock < line {
		lookLine = beginFoldBlock - 1
		lookLineLevel = d.levels.GetLevel(lookLine)
		lookLineLevelNum = lookLineLevel & perline.LevelNumberMask
		for lookLine >= 0 && lookLineLevelNum >= perline.LevelBase {
			if lookLineLevel&perline.LevelHeaderFlag != 0 {
				if d.levels.GetLastChild(lookLine, -1, lookLastLine) == line {
					beginFoldBlock = lookLine
					endFoldBlock = line
					firstChangeableLineBefore = line - 1
				}
			}
			if lookLine > 0 && lookLineLevelNum == perline.LevelBase &&
				d.levels.GetLevel(lookLine-1)&perline.LevelNumberMask > lookLineLevelNum {
				break
			}
			lookLine--
			lookLineLevel = d.levels.GetLevel(lookLine)
			lookLineLevelNum = lookLineLevel & perline.LevelNumberMask
		}
	}

	if firstChangeableLineBefore == -1 {
		for lookLine = line - 1; lookLine >= beginFoldBlock; lookLine-- {
			lookLineLevel = d.levels.GetLevel(lookLine)
			lookLineLevelNum = lookLineLevel & perline.LevelNumberMask
			if lookLineLevel&perline.LevelWhiteFlag != 0 || lookLineLevelNum > level&perline.LevelNumberMask {
				firstChangeableLineBefore = lookLine
				break
			}
		}
	}
	if firstChangeableLineBefore == -1 {
		firstChangeableLineBefore = beginFoldBlock - 1
	}

	firstChangeableLineAfter := -1
	for lookLine = line + 1; lookLine <= endFoldBlock; lookLine++ {
		lookLineLevel = d.levels.GetLevel(lookLine)
		lookLineLevelNum = lookLineLevel & perline.LevelNumberMask
		if lookLineLevel&perline.LevelHeaderFlag != 0 && lookLineLevelNum < d.levels.GetLevel(lookLine+1)&perline.LevelNumberMask {
			firstChangeableLineAfter = lookLine
			break
		}
	}
	if firstChangeableLineAfter == -1 {
		firstChangeableLineAfter = endFoldBlock + 1
	}

	return HighlightDelimiter{
		BeginFoldBlock:            beginFoldBlock,
		EndFoldBlock:              endFoldBlock,
		FirstChangeableLineBefore: firstChangeableLineBefore,
		FirstChangeableLineAfter:  firstChangeableLineAfter,
	}
}
