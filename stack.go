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

// peekOpener returns the opener idxFromBack entries down from the top of
// the stack (0 is the top), or nil if the stack is too shallow.
func peekOpener(stack []*opener, idxFromBack int) *opener {
	maxIdx := len(stack) - 1
	i := maxIdx - idxFromBack
	if i < 0 {
		return nil
	}
	return stack[i]
}

func isValidCloseParen(stack []*opener, ch rune) bool {
	if len(stack) == 0 {
		return false
	}
	top := stack[len(stack)-1]
	return top.ch == matchParen[ch]
}

// onOpenParen pushes a new opener for the current code-context open
// paren, and starts looking for its first argument's tab stop.
func (p *proc) onOpenParen() {
	if !p.isInCode {
		return
	}
	o := &opener{
		inputLineNo:    p.inputLineNo,
		inputX:         p.inputX,
		lineNo:         p.lineNo,
		x:              p.x,
		ch:             firstRune(p.ch),
		indentDelta:    p.indentDelta,
		maxChildIndent: noPos,
		nodeIdx:        -1,
	}

	if p.returnParens {
		o.nodeIdx = len(p.nodes)
		p.nodes = append(p.nodes, ParenNode{LineNo: o.lineNo, X: o.x, Ch: o.ch})
		if parent := peekOpener(p.parenStack, 0); parent != nil {
			p.nodes[parent.nodeIdx].Children = append(p.nodes[parent.nodeIdx].Children, o.nodeIdx)
		} else {
			p.rootIdxs = append(p.rootIdxs, o.nodeIdx)
		}
	}

	p.parenStack = append(p.parenStack, o)
	p.trackingArgTabStop = argTabStopSpace
}

func (p *proc) setCloser(o *opener, lineNo, x int, ch rune) {
	if !p.returnParens {
		return
	}
	node := &p.nodes[o.nodeIdx]
	node.Closer = ParenCloser{LineNo: lineNo, X: x, Ch: ch}
}

// onMatchedCloseParen records a close paren against its opener and pops
// the stack. In Smart Mode, if the cursor is holding this opener's line,
// the paren trail collapses to just past this character and the openers
// removed from it are stashed so they can be reinstated if the cursor
// leaves (see checkCursorHolding).
func (p *proc) onMatchedCloseParen() error {
	o := peekOpener(p.parenStack, 0)
	if p.returnParens {
		p.setCloser(o, p.lineNo, p.x, firstRune(p.ch))
	}

	p.trail.endX = p.x + 1
	p.trail.openers = append(p.trail.openers, o)

	if p.mode == modeIndent && p.smart {
		holding, err := p.checkCursorHolding()
		if err != nil {
			return err
		}
		if holding {
			origStartX := p.trail.startX
			origEndX := p.trail.endX
			origOpeners := p.trail.openers
			p.resetParenTrail(p.lineNo, p.x+1)
			p.trail.clamped.startX = origStartX
			p.trail.clamped.endX = origEndX
			p.trail.clamped.openers = origOpeners
		}
	}

	p.parenStack = p.parenStack[:len(p.parenStack)-1]
	p.trackingArgTabStop = argTabStopNone
	return nil
}

// onUnmatchedCloseParen handles a close paren with no matching opener. In
// Paren Mode this is fatal unless Smart Mode recognizes it as a
// deletable leading close-paren; in Indent Mode the position is cached
// and the character is simply dropped.
func (p *proc) onUnmatchedCloseParen() error {
	if p.mode == modeParen {
		trail := p.trail
		inLeadingParenTrail := trail.lineNo == p.lineNo && trail.startX == p.indentX
		canRemove := p.smart && inLeadingParenTrail
		if !canRemove {
			return p.newError(ErrUnmatchedCloseParen)
		}
	} else if p.mode == modeIndent {
		if _, cached := p.errorPosCache[ErrUnmatchedCloseParen]; !cached {
			p.cacheErrorPos(ErrUnmatchedCloseParen)
			if o := peekOpener(p.parenStack, 0); o != nil {
				e := p.cacheErrorPos(ErrUnmatchedOpenParen)
				e.inputLineNo = o.inputLineNo
				e.inputX = o.inputX
				p.errorPosCache[ErrUnmatchedOpenParen] = e
			}
		}
	}

	p.ch = ""
	return nil
}

func (p *proc) onCloseParen() error {
	if !p.isInCode {
		return nil
	}
	if isValidCloseParen(p.parenStack, firstRune(p.ch)) {
		return p.onMatchedCloseParen()
	}
	return p.onUnmatchedCloseParen()
}

// checkCursorHolding reports whether the cursor is "holding" the
// opener currently on top of the stack: sitting within its own line in a
// position that should inhibit Smart Mode from removing its trailing
// parens. If the cursor was holding on the previous pass but isn't now
// (and no pending edits explain the move), this raises the
// releaseCursorHold signal so the caller restarts in Paren Mode.
func (p *proc) checkCursorHolding() (bool, error) {
	o := peekOpener(p.parenStack, 0)
	parent := peekOpener(p.parenStack, 1)
	holdMinX := 0
	if parent != nil {
		holdMinX = parent.x + 1
	}
	holdMaxX := o.x

	holding := p.cursorLine == o.lineNo && holdMinX <= p.cursorX && p.cursorX <= holdMaxX

	shouldCheckPrev := p.changes == nil && p.prevCursorLine != noPos
	if shouldCheckPrev {
		prevHolding := p.prevCursorLine == o.lineNo && holdMinX <= p.prevCursorX && p.prevCursorX <= holdMaxX
		if prevHolding && !holding {
			return false, signalReleaseCursorHold
		}
	}
	return holding, nil
}

// trackArgTabStop advances the two-step search for an opener's first
// argument: after the first whitespace following the opener, state moves
// to "arg"; the first non-whitespace after that records opener.argX.
func (p *proc) trackArgTabStop(state argTabStop) {
	switch state {
	case argTabStopSpace:
		if p.isInCode && p.isWhitespace() {
			p.trackingArgTabStop = argTabStopArg
		}
	case argTabStopArg:
		if !p.isWhitespace() {
			o := peekOpener(p.parenStack, 0)
			o.hasArgX = true
			o.argX = p.x
			p.trackingArgTabStop = argTabStopNone
		}
	}
}
