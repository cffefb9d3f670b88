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

import "unicode/utf8"

// isCursorAffected reports whether an edit over the half-open range
// [start, end) on the cursor's line should shift the cursor. The zero-
// width edit at the cursor's exact position only shifts the cursor when
// it sits at the very start of the line; otherwise a caret sitting inside
// an unrelated zero-width edit should not jump.
func (p *proc) isCursorAffected(start, end int) bool {
	if p.cursorX == start && p.cursorX == end {
		return p.cursorX == 0
	}
	return p.cursorX >= end
}

// shiftCursorOnEdit adjusts the tracked cursor position after an edit to
// lineNo's range [start, end) replaced it with replacement, preserving
// where the cursor logically sits relative to the surrounding text.
func (p *proc) shiftCursorOnEdit(lineNo, start, end int, replacement string) {
	oldLength := end - start
	newLength := utf8.RuneCountInString(replacement)
	dx := newLength - oldLength

	if dx != 0 && p.cursorLine == lineNo && p.cursorX != noPos && p.isCursorAffected(start, end) {
		p.cursorX += dx
	}
}

// replaceWithinLine overwrites the [start, end) rune range of lineNo with
// replacement, then shifts the cursor to match. start and end are clamped
// to the line's length, matching the reference's lenient string slicing
// (Python silently returns "" for a slice past the end of the string).
func (p *proc) replaceWithinLine(lineNo, start, end int, replacement string) {
	line := []rune(p.lines[lineNo])
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	p.lines[lineNo] = string(line[:start]) + replacement + string(line[end:])
	p.shiftCursorOnEdit(lineNo, start, end, replacement)
}

// insertWithinLine inserts s at idx on lineNo.
func (p *proc) insertWithinLine(lineNo, idx int, s string) {
	p.replaceWithinLine(lineNo, idx, idx, s)
}

// initLine starts a new output line, resetting the line-scoped fields of
// p the reference zeroes out in initLine.
func (p *proc) initLine(line string) {
	p.x = 0
	p.lineNo++
	p.lines = append(p.lines, line)

	p.indentX = noPos
	p.commentX = noPos
	p.indentDelta = 0
	delete(p.errorPosCache, ErrUnmatchedCloseParen)
	delete(p.errorPosCache, ErrUnmatchedOpenParen)
	delete(p.errorPosCache, ErrLeadingCloseParen)

	p.trackingArgTabStop = argTabStopNone
	p.trackingIndent = !p.isInStr
}

// commitChar writes p.ch to the output if it differs from the original
// input character, and advances p.x past it.
func (p *proc) commitChar(origCh string) {
	ch := p.ch
	if origCh != ch {
		p.replaceWithinLine(p.lineNo, p.x, p.x+utf8.RuneCountInString(origCh), ch)
		p.indentDelta -= utf8.RuneCountInString(origCh) - utf8.RuneCountInString(ch)
	}
	p.x += utf8.RuneCountInString(ch)
}
