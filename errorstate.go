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

// cacheErrorPos records the current output and input position under name,
// so a later fatal error (or a later deletion of the offending character)
// can still report where the problem actually started.
func (p *proc) cacheErrorPos(name ErrorName) errPos {
	e := errPos{
		lineNo:      p.lineNo,
		x:           p.x,
		inputLineNo: p.inputLineNo,
		inputX:      p.inputX,
	}
	p.errorPosCache[name] = e
	return e
}

// newError builds the public [Error] for name, preferring a cached
// position (set when the offending character was first seen and possibly
// later deleted) over the processor's current position.
func (p *proc) newError(name ErrorName) *Error {
	lineNo, x := p.errorPos(name)
	e := &Error{
		Name:    name,
		Message: errorMessages[name],
		LineNo:  lineNo,
		X:       x,
	}

	var top *opener
	if len(p.parenStack) > 0 {
		top = p.parenStack[len(p.parenStack)-1]
	}

	switch name {
	case ErrUnmatchedCloseParen:
		if cache, ok := p.errorPosCache[ErrUnmatchedOpenParen]; ok {
			eln, ex := p.posFromCache(cache)
			e.Extra = &ErrorExtra{Name: ErrUnmatchedOpenParen, LineNo: eln, X: ex}
		} else if top != nil {
			eln, ex := p.lineNo, p.x
			if p.partialResult {
				eln, ex = top.lineNo, top.x
			} else {
				eln, ex = top.inputLineNo, top.inputX
			}
			e.Extra = &ErrorExtra{Name: ErrUnmatchedOpenParen, LineNo: eln, X: ex}
		}
	case ErrUnclosedParen:
		if top != nil {
			if p.partialResult {
				e.LineNo, e.X = top.lineNo, top.x
			} else {
				e.LineNo, e.X = top.inputLineNo, top.inputX
			}
		}
	}

	return e
}

// errorPos resolves the reported position for name: the cached position
// if one was recorded, otherwise the processor's current position: output
// coordinates if PartialResult was requested, input coordinates otherwise.
func (p *proc) errorPos(name ErrorName) (lineNo, x int) {
	if cache, ok := p.errorPosCache[name]; ok {
		return p.posFromCache(cache)
	}
	if p.partialResult {
		return p.lineNo, p.x
	}
	return p.inputLineNo, p.inputX
}

func (p *proc) posFromCache(cache errPos) (lineNo, x int) {
	if p.partialResult {
		return cache.lineNo, cache.x
	}
	return cache.inputLineNo, cache.inputX
}
