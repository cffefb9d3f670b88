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

import "strings"

// parenTrailState is the contiguous trailing range of close parens and
// interior spaces that the engine is still free to rewrite on the
// current line.
type parenTrailState struct {
	lineNo, startX, endX int
	openers              []*opener

	// clamped holds the prefix of openers (and the original range) that
	// the cursor hid from consideration, so Smart Mode can restore them
	// if the cursor moves away.
	clamped struct {
		startX, endX int
		openers      []*opener
	}
}

func (p *proc) resetParenTrail(lineNo, x int) {
	p.trail = parenTrailState{lineNo: lineNo, startX: x, endX: x}
	p.trail.clamped.startX = noPos
	p.trail.clamped.endX = noPos
}

func isCursorLeftOf(cursorX, cursorLine, x, lineNo int) bool {
	return cursorLine == lineNo && x != noPos && cursorX != noPos && cursorX <= x
}

func isCursorRightOf(cursorX, cursorLine, x, lineNo int) bool {
	return cursorLine == lineNo && x != noPos && cursorX != noPos && cursorX > x
}

func (p *proc) isCursorInComment(cursorX, cursorLine int) bool {
	return isCursorRightOf(cursorX, cursorLine, p.commentX, p.lineNo)
}

func (p *proc) handleChangeDelta() {
	if p.changes == nil || !(p.smart || p.mode == modeParen) {
		return
	}
	if c, ok := p.changes.lookup(p.inputLineNo, p.inputX); ok {
		p.indentDelta += c.newEndX - c.oldEndX
	}
}

func (p *proc) isCursorClampingParenTrail(cursorX, cursorLine int) bool {
	return isCursorRightOf(cursorX, cursorLine, p.trail.startX, p.lineNo) && !p.isCursorInComment(cursorX, cursorLine)
}

// clampParenTrailToCursor lets the cursor hide a prefix of the paren
// trail from Indent Mode's rewrite, stashing the hidden openers in
// trail.clamped so popParenTrail can push them back onto the stack.
func (p *proc) clampParenTrailToCursor() {
	startX := p.trail.startX
	endX := p.trail.endX

	if !p.isCursorClampingParenTrail(p.cursorX, p.cursorLine) {
		return
	}

	newStartX := max(startX, p.cursorX)
	newEndX := max(endX, p.cursorX)

	line := []rune(p.lines[p.lineNo])
	removeCount := 0
	for i := startX; i < newStartX; i++ {
		if isCloseParen(line[i]) {
			removeCount++
		}
	}

	openers := p.trail.openers
	p.trail.openers = append([]*opener{}, openers[removeCount:]...)
	p.trail.startX = newStartX
	p.trail.endX = newEndX

	p.trail.clamped.openers = append([]*opener{}, openers[:removeCount]...)
	p.trail.clamped.startX = startX
	p.trail.clamped.endX = endX
}

// popParenTrail pushes the trail's openers back onto the paren stack, so
// the next line's indent point can decide how many of them to close.
func (p *proc) popParenTrail() {
	if p.trail.startX == p.trail.endX {
		return
	}
	openers := p.trail.openers
	for i := len(openers) - 1; i >= 0; i-- {
		p.parenStack = append(p.parenStack, openers[i])
	}
}

// getParentOpenerIndex walks the paren stack from the top down and
// decides which opener (if any) is the current line's parent, given its
// indentation point: an opener whose own children are being re-indented
// "adopts" the current line rather than letting it fragment off as a
// sibling. The reference implementation's silent fallthrough when both
// indentDelta and opener.indentDelta are nonzero during a fragmentation is
// preserved deliberately (see DESIGN.md).
func (p *proc) getParentOpenerIndex(indentX int) int {
	i := 0
	for ; i < len(p.parenStack); i++ {
		o := peekOpener(p.parenStack, i)

		currOutside := o.x < indentX
		prevIndentX := indentX - p.indentDelta
		prevOutside := o.x-o.indentDelta < prevIndentX

		isParent := false
		switch {
		case prevOutside && currOutside:
			isParent = true
		case !prevOutside && !currOutside:
			isParent = false
		case prevOutside && !currOutside:
			// Fragmentation: the line used to be inside this opener but
			// no longer is.
			switch {
			case p.indentDelta == 0:
				// Prevent fragmentation: nothing moved this line itself,
				// so keep it with its original parent.
				isParent = true
			case o.indentDelta == 0:
				// Allow fragmentation: the opener never moved, so the
				// line legitimately left it.
				isParent = false
			default:
				// Both indentDelta and opener.indentDelta are nonzero.
				// The reference allows fragmentation by default here
				// rather than failing; see DESIGN.md Open Questions.
				isParent = false
			}
		case !prevOutside && currOutside:
			// Adoption: the line used to be outside this opener but now
			// falls inside it.
			next := peekOpener(p.parenStack, i+1)
			switch {
			case next != nil && next.indentDelta <= o.indentDelta:
				isParent = indentX+next.indentDelta > o.x
			case next != nil && next.indentDelta > o.indentDelta:
				isParent = true
			case p.indentDelta > o.indentDelta:
				isParent = true
			}
			if isParent {
				o.indentDelta = 0
			}
		}

		if isParent {
			break
		}
	}
	return i
}

// correctParenTrail closes every opener above the line's parent (as
// decided by getParentOpenerIndex) into the paren trail at indentX, the
// Indent Mode counterpart to Paren Mode's correctIndent.
func (p *proc) correctParenTrail(indentX int) {
	var parens strings.Builder

	index := p.getParentOpenerIndex(indentX)
	for i := 0; i < index; i++ {
		o := p.parenStack[len(p.parenStack)-1]
		p.parenStack = p.parenStack[:len(p.parenStack)-1]
		p.trail.openers = append(p.trail.openers, o)
		closeCh := matchParen[o.ch]
		parens.WriteRune(closeCh)

		if p.returnParens {
			p.setCloser(o, p.trail.lineNo, p.trail.startX+i, closeCh)
		}
	}

	if p.trail.lineNo != noPos {
		p.replaceWithinLine(p.trail.lineNo, p.trail.startX, p.trail.endX, parens.String())
		p.trail.endX = p.trail.startX + parens.Len()
		p.rememberParenTrail()
	}
}

// cleanParenTrail removes the interior spaces from a Paren Mode trail,
// leaving only the close parens themselves.
func (p *proc) cleanParenTrail() {
	startX := p.trail.startX
	endX := p.trail.endX

	if startX == endX || p.lineNo != p.trail.lineNo {
		return
	}

	line := []rune(p.lines[p.lineNo])
	var newTrail strings.Builder
	spaceCount := 0
	for i := startX; i < endX; i++ {
		if isCloseParen(line[i]) {
			newTrail.WriteRune(line[i])
		} else {
			spaceCount++
		}
	}

	if spaceCount > 0 {
		p.replaceWithinLine(p.lineNo, startX, endX, newTrail.String())
		p.trail.endX -= spaceCount
	}
}

// appendParenTrail migrates a cursor-held close paren to the end of the
// trail in Paren Mode.
func (p *proc) appendParenTrail() {
	o := p.parenStack[len(p.parenStack)-1]
	p.parenStack = p.parenStack[:len(p.parenStack)-1]
	closeCh := matchParen[o.ch]
	if p.returnParens {
		p.setCloser(o, p.trail.lineNo, p.trail.endX, closeCh)
	}

	p.setMaxIndent(o)
	p.insertWithinLine(p.trail.lineNo, p.trail.endX, string(closeCh))

	p.trail.endX++
	p.trail.openers = append(p.trail.openers, o)
	p.updateRememberedParenTrail()
}

func (p *proc) invalidateParenTrail() {
	p.trail = parenTrailState{lineNo: noPos, startX: noPos, endX: noPos}
	p.trail.clamped.startX = noPos
	p.trail.clamped.endX = noPos
}

func (p *proc) checkUnmatchedOutsideParenTrail() error {
	cache, ok := p.errorPosCache[ErrUnmatchedCloseParen]
	if ok && cache.x < p.trail.startX {
		return p.newError(ErrUnmatchedCloseParen)
	}
	return nil
}

// setMaxIndent records the rightmost column a direct child of o's
// parent may indent to, since o now sits in that parent's paren trail.
func (p *proc) setMaxIndent(o *opener) {
	if o == nil {
		return
	}
	if parent := peekOpener(p.parenStack, 0); parent != nil {
		parent.maxChildIndent = o.x
	} else {
		p.maxIndent = o.x
	}
}

// rememberParenTrail appends the current trail to p.parenTrails for
// editor highlighting, recording which openers' closers belong to it.
func (p *proc) rememberParenTrail() {
	trail := p.trail
	openers := append(append([]*opener{}, trail.clamped.openers...), trail.openers...)
	if len(openers) == 0 {
		return
	}

	isClamped := trail.clamped.startX != noPos
	allClamped := len(trail.openers) == 0

	startX := trail.startX
	if isClamped {
		startX = trail.clamped.startX
	}
	endX := trail.endX
	if allClamped {
		endX = trail.clamped.endX
	}

	shortTrail := ParenTrailRange{LineNo: trail.lineNo, StartX: startX, EndX: endX}
	p.parenTrails = append(p.parenTrails, shortTrail)

	if p.returnParens {
		trailIdx := len(p.parenTrails) - 1
		for _, o := range openers {
			p.nodes[o.nodeIdx].Closer.HasTrail = true
			p.nodes[o.nodeIdx].Closer.TrailIndex = trailIdx
		}
	}
}

func (p *proc) updateRememberedParenTrail() {
	if len(p.parenTrails) == 0 || p.parenTrails[len(p.parenTrails)-1].LineNo != p.trail.lineNo {
		p.rememberParenTrail()
		return
	}
	last := len(p.parenTrails) - 1
	p.parenTrails[last].EndX = p.trail.endX
	if p.returnParens && len(p.trail.openers) > 0 {
		o := p.trail.openers[len(p.trail.openers)-1]
		p.nodes[o.nodeIdx].Closer.HasTrail = true
		p.nodes[o.nodeIdx].Closer.TrailIndex = last
	}
}

// finishNewParenTrail runs once per line, after all characters (including
// the trailing newline) have been processed, if this line owns the
// current paren trail.
func (p *proc) finishNewParenTrail() {
	switch {
	case p.isInStr:
		p.invalidateParenTrail()
	case p.mode == modeIndent:
		p.clampParenTrailToCursor()
		p.popParenTrail()
	case p.mode == modeParen:
		p.setMaxIndent(peekOpener(p.trail.openers, 0))
		if p.lineNo != p.cursorLine {
			p.cleanParenTrail()
		}
		p.rememberParenTrail()
	}
}
