// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package parinfer

// noPos marks an unset position. It corresponds to the reference
// implementation's UINT_NULL sentinel, but is kept internal: anything the
// caller can observe uses a nil *int instead (see [Options] and [Result]).
const noPos = -1

// Options configures a single call to [IndentMode], [ParenMode], or
// [SmartMode]. All fields are optional; the zero value runs the
// transformation with no cursor, no prior edits, and no tab stops.
type Options struct {
	// CursorX and CursorLine give the cursor's current column and line
	// (both 0-based). CursorX has no effect without CursorLine. CursorLine
	// alone still selects the line that receives TabStops and, in
	// ParenMode, the line whose paren trail keeps its interior spaces.
	CursorX, CursorLine *int

	// PrevCursorX and PrevCursorLine give the cursor's column and line
	// before the edit that produced Text. SmartMode uses them to detect
	// that the cursor has left an opener it was "holding".
	PrevCursorX, PrevCursorLine *int

	// SelectionStartLine is the line the current selection started on,
	// used to place TabStops relative to the selection rather than the
	// cursor.
	SelectionStartLine *int

	// Changes describes edits already applied to Text since the last
	// call, so ParenMode and SmartMode can tell how far a region shifted
	// horizontally.
	Changes []Change

	// PartialResult, if true, returns the partially processed text (and
	// the position within it) on error instead of the original text.
	PartialResult bool

	// ForceBalance suppresses IndentMode's leading-close-paren signal,
	// aggressively deleting invalid leading close-parens instead of
	// reporting them.
	ForceBalance bool

	// ReturnParens, if true, populates Result.Parens with the full paren
	// tree.
	ReturnParens bool
}

// Change describes a single prior edit to the buffer, used by ParenMode
// and SmartMode to figure out how far an edited region should shift.
type Change struct {
	X, LineNo        int
	OldText, NewText string
}

// change is the normalized, position-indexed form of a [Change], matching
// transformChange in the reference implementation.
type change struct {
	x, lineNo        int
	oldEndX, newEndX int
	newEndLineNo     int
}

// transformChange computes the derived end positions of c.
func transformChange(c Change) change {
	newLines := splitLines(c.NewText)
	oldLines := splitLines(c.OldText)

	lastOldLineLen := len([]rune(oldLines[len(oldLines)-1]))
	lastNewLineLen := len([]rune(newLines[len(newLines)-1]))

	oldEndX := lastOldLineLen
	if len(oldLines) == 1 {
		oldEndX += c.X
	}
	newEndX := lastNewLineLen
	if len(newLines) == 1 {
		newEndX += c.X
	}
	newEndLineNo := c.LineNo + (len(newLines) - 1)

	return change{
		x:            c.X,
		lineNo:       c.LineNo,
		oldEndX:      oldEndX,
		newEndX:      newEndX,
		newEndLineNo: newEndLineNo,
	}
}

// changeIndex is the {lineNo -> {x -> change}} lookup built from
// Options.Changes, keyed by the coordinates of the new edit's end
// (transformChange's lookupLineNo/lookupX).
type changeIndex map[int]map[int]change

func newChangeIndex(changes []Change) changeIndex {
	if len(changes) == 0 {
		return nil
	}
	idx := make(changeIndex, len(changes))
	for _, c := range changes {
		tc := transformChange(c)
		line := idx[tc.newEndLineNo]
		if line == nil {
			line = make(map[int]change)
			idx[tc.newEndLineNo] = line
		}
		line[tc.newEndX] = tc
	}
	return idx
}

func (idx changeIndex) lookup(lineNo, x int) (change, bool) {
	line, ok := idx[lineNo]
	if !ok {
		return change{}, false
	}
	c, ok := line[x]
	return c, ok
}

func intOrNoPos(p *int) int {
	if p == nil {
		return noPos
	}
	return *p
}
