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

// procMode selects which side of the indentation/paren-structure
// relationship is authoritative.
type procMode int

const (
	modeIndent procMode = iota
	modeParen
)

// argTabStop tracks how close the processor is to the tab stop at an
// opener's first argument: none -> space -> arg -> none (recorded).
type argTabStop int

const (
	argTabStopNone argTabStop = iota
	argTabStopSpace
	argTabStopArg
)

// proc is the mutable state threaded through a single Indent/Paren/Smart
// Mode call. It corresponds to the reference implementation's single
// "result" record, split here into the substructures each component
// owns, even though a single Go value still holds them all (no field
// requires shared ownership across goroutines).
type proc struct {
	mode  procMode
	smart bool

	origText                     string
	origCursorX, origCursorLine  int

	inputLines  []string
	inputLineNo int
	inputX      int

	lines   []string
	lineNo  int
	ch      string
	x       int
	indentX int

	parenStack []*opener

	tabStops []TabStop

	trail       parenTrailState
	parenTrails []ParenTrailRange

	returnParens bool
	nodes        []ParenNode
	rootIdxs     []int

	cursorX, cursorLine         int
	prevCursorX, prevCursorLine int
	selectionStartLine          int

	changes changeIndex

	isInCode    bool
	isEscaping  bool
	isEscaped   bool
	isInStr     bool
	isInComment bool
	commentX    int

	quoteDanger    bool
	trackingIndent bool
	skipChar       bool
	partialResult  bool
	forceBalance   bool

	maxIndent   int
	indentDelta int

	trackingArgTabStop argTabStop

	errorPosCache map[ErrorName]errPos
}

func newProc(text string, opts Options, mode procMode, smart bool) *proc {
	p := &proc{
		mode:               mode,
		smart:              smart,
		origText:           text,
		origCursorX:        noPos,
		origCursorLine:     noPos,
		inputLines:         splitLines(sanitizeNUL(text)),
		inputLineNo:        -1,
		inputX:             -1,
		lineNo:             -1,
		indentX:            noPos,
		returnParens:       opts.ReturnParens,
		cursorX:            noPos,
		cursorLine:         noPos,
		prevCursorX:        noPos,
		prevCursorLine:     noPos,
		selectionStartLine: noPos,
		isInCode:           true,
		commentX:           noPos,
		partialResult:      opts.PartialResult,
		forceBalance:       opts.ForceBalance,
		maxIndent:          noPos,
		errorPosCache:      make(map[ErrorName]errPos),
	}
	for i := range p.inputLines {
		p.inputLines[i] = normalizeColumns(p.inputLines[i])
	}
	p.trail = parenTrailState{lineNo: noPos, startX: noPos, endX: noPos}
	p.trail.clamped.startX = noPos
	p.trail.clamped.endX = noPos

	p.cursorX = intOrNoPos(opts.CursorX)
	p.origCursorX = p.cursorX
	p.cursorLine = intOrNoPos(opts.CursorLine)
	p.origCursorLine = p.cursorLine
	p.prevCursorX = intOrNoPos(opts.PrevCursorX)
	p.prevCursorLine = intOrNoPos(opts.PrevCursorLine)
	p.selectionStartLine = intOrNoPos(opts.SelectionStartLine)

	if len(opts.Changes) > 0 {
		p.changes = newChangeIndex(opts.Changes)
	}
	return p
}

// processChar processes a single input character, the innermost loop of
// the engine: track the indentation point if we're still looking for
// one, dispatch on the character's meaning, then commit whatever the
// processor decided to emit in its place.
func (p *proc) processChar(ch string) error {
	origCh := ch

	p.ch = ch
	p.skipChar = false

	p.handleChangeDelta()

	if p.trackingIndent {
		if err := p.checkIndent(); err != nil {
			return err
		}
	}

	if p.skipChar {
		p.ch = ""
	} else if err := p.onChar(); err != nil {
		return err
	}

	p.commitChar(origCh)
	return nil
}

// processLine processes one input line in full, including the synthetic
// trailing newline, and finalizes any paren trail it owns.
func (p *proc) processLine(lineNo int) error {
	p.initLine(p.inputLines[lineNo])
	p.setTabStops()

	chars := []rune(p.inputLines[lineNo])
	for x, r := range chars {
		p.inputX = x
		if err := p.processChar(string(r)); err != nil {
			return err
		}
	}
	if err := p.processChar("\n"); err != nil {
		return err
	}

	if !p.forceBalance {
		if err := p.checkUnmatchedOutsideParenTrail(); err != nil {
			return err
		}
		if err := p.checkLeadingCloseParen(); err != nil {
			return err
		}
	}

	if p.lineNo == p.trail.lineNo {
		p.finishNewParenTrail()
	}
	return nil
}

// finalizeResult runs after every input line has been processed,
// rejecting unterminated strings/comments/parens and, in Indent Mode,
// forcing any still-open expressions closed into the final line's trail.
func (p *proc) finalizeResult() error {
	if p.quoteDanger {
		return p.newError(ErrQuoteDanger)
	}
	if p.isInStr {
		return p.newError(ErrUnclosedQuote)
	}

	if len(p.parenStack) != 0 && p.mode == modeParen {
		return p.newError(ErrUnclosedParen)
	}

	if p.mode == modeIndent {
		p.initLine("")
		if err := p.onIndent(); err != nil {
			return err
		}
		// The synthetic line only supplies a column-0 indentation point;
		// it is not part of the output.
		p.lines = p.lines[:len(p.lines)-1]
	}

	return nil
}

// processText runs mode over text with opts, restarting once in Paren
// Mode if Smart Mode's processing signaled that the structure should be
// preserved verbatim (a leading close paren, or the cursor releasing an
// opener it was holding).
func processText(text string, opts Options, mode procMode, smart bool) Result {
	p := newProc(text, opts, mode, smart)

	err := p.run()
	if isSignal(err) {
		return processText(text, opts, modeParen, smart)
	}

	success := err == nil
	var perr *Error
	if !success {
		perr = asError(err)
	}
	return p.publicResult(success, perr)
}

func (p *proc) run() error {
	for i := range p.inputLines {
		p.inputLineNo = i
		if err := p.processLine(i); err != nil {
			return err
		}
	}
	return p.finalizeResult()
}

// asError converts an internal error into the public *Error, reporting
// unexpected (non-Parinfer) errors as ErrUnhandled rather than panicking.
func asError(err error) *Error {
	if perr, ok := err.(*Error); ok {
		return perr
	}
	return &Error{Name: ErrUnhandled, Message: err.Error()}
}

// IndentMode treats indentation as authoritative and rewrites each
// expression's trailing parens to match it.
func IndentMode(text string, opts Options) Result {
	return processText(text, opts, modeIndent, false)
}

// ParenMode treats parentheses as authoritative and rewrites indentation
// to match them.
func ParenMode(text string, opts Options) Result {
	return processText(text, opts, modeParen, false)
}

// SmartMode behaves like IndentMode but, absent a selection, also uses
// cursor and edit information to preserve structure across multi-line
// edits, falling back to ParenMode when an edit is too ambiguous to
// interpret any other way.
func SmartMode(text string, opts Options) Result {
	smart := opts.SelectionStartLine == nil
	return processText(text, opts, modeIndent, smart)
}

func (p *proc) publicResult(success bool, perr *Error) Result {
	ending := lineEnding(p.origText)

	res := Result{Success: success}
	if success {
		res.Text = joinLines(p.lines, ending)
		res.CursorX = ptrOrNil(p.cursorX)
		res.CursorLine = ptrOrNil(p.cursorLine)
		res.TabStops = p.tabStops
		res.ParenTrails = p.parenTrails
		if p.returnParens {
			res.Parens, res.ParenRoots = p.nodes, p.rootIdxs
		}
		return res
	}

	res.Error = perr
	if p.partialResult {
		res.Text = joinLines(p.lines, ending)
		res.CursorX = ptrOrNil(p.cursorX)
		res.CursorLine = ptrOrNil(p.cursorLine)
		res.ParenTrails = p.parenTrails
		if p.returnParens {
			res.Parens, res.ParenRoots = p.nodes, p.rootIdxs
		}
	} else {
		res.Text = p.origText
		res.CursorX = ptrOrNil(p.origCursorX)
		res.CursorLine = ptrOrNil(p.origCursorLine)
	}
	return res
}

func joinLines(lines []string, ending string) string {
	out := lines[0]
	for _, l := range lines[1:] {
		out += ending + l
	}
	return out
}

func ptrOrNil(x int) *int {
	if x == noPos {
		return nil
	}
	v := x
	return &v
}
