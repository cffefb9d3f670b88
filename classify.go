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

const (
	blankSpace  = " "
	doubleSpace = "  "
)

// isWhitespace reports whether p.ch is an (unescaped) space or the
// tab-expansion double-space.
func (p *proc) isWhitespace() bool {
	return !p.isEscaped && (p.ch == blankSpace || p.ch == doubleSpace)
}

// isClosable reports whether p.ch can be the last code character of a
// list: anywhere a paren trail restarts once such a character is emitted.
func (p *proc) isClosable() bool {
	closer := isCloseParen(firstRune(p.ch)) && p.ch != "" && !p.isEscaped
	return p.isInCode && !p.isWhitespace() && p.ch != "" && !closer
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func (p *proc) onTab() {
	if p.isInCode {
		p.ch = doubleSpace
	}
}

func (p *proc) onSemicolon() {
	if p.isInCode {
		p.isInComment = true
		p.commentX = p.x
		p.trackingArgTabStop = argTabStopNone
	}
}

func (p *proc) onNewline() {
	p.isInComment = false
	p.ch = ""
}

func (p *proc) onQuote() {
	switch {
	case p.isInStr:
		p.isInStr = false
	case p.isInComment:
		p.quoteDanger = !p.quoteDanger
		if p.quoteDanger {
			p.cacheErrorPos(ErrQuoteDanger)
		}
	default:
		p.isInStr = true
		p.cacheErrorPos(ErrUnclosedQuote)
	}
}

func (p *proc) onBackslash() {
	p.isEscaping = true
}

// afterBackslash commits the character immediately following a backslash
// as escaped, and fails if it is a newline inside code (a hanging
// backslash can never be completed).
func (p *proc) afterBackslash() error {
	p.isEscaping = false
	p.isEscaped = true

	if p.ch == "\n" {
		if p.isInCode {
			return p.newError(ErrEOLBackslash)
		}
		p.onNewline()
	}
	return nil
}

// onChar dispatches a single character event and updates the lexical
// state (isInCode, the paren trail reset, and arg-tab-stop tracking) that
// follows every character regardless of which branch fired.
func (p *proc) onChar() error {
	ch := firstRune(p.ch)
	p.isEscaped = false

	var err error
	switch {
	case p.isEscaping:
		err = p.afterBackslash()
	case isOpenParen(ch):
		p.onOpenParen()
	case isCloseParen(ch):
		err = p.onCloseParen()
	case p.ch == "\"":
		p.onQuote()
	case p.ch == ";":
		p.onSemicolon()
	case p.ch == "\\":
		p.onBackslash()
	case p.ch == "\t":
		p.onTab()
	case p.ch == "\n":
		p.onNewline()
	}
	if err != nil {
		return err
	}

	p.isInCode = !p.isInComment && !p.isInStr

	if p.isClosable() {
		p.resetParenTrail(p.lineNo, p.x+utf8.RuneCountInString(p.ch))
	}

	if p.trackingArgTabStop != argTabStopNone {
		p.trackArgTabStop(p.trackingArgTabStop)
	}
	return nil
}
