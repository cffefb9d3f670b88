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

import "testing"

func TestIsWhitespace(t *testing.T) {
	p := &proc{isInCode: true}
	p.ch = blankSpace
	if !p.isWhitespace() {
		t.Error("single space should be whitespace")
	}
	p.ch = doubleSpace
	if !p.isWhitespace() {
		t.Error("tab-expansion double space should be whitespace")
	}
	p.ch = "a"
	if p.isWhitespace() {
		t.Error("letter should not be whitespace")
	}
	p.ch = blankSpace
	p.isEscaped = true
	if p.isWhitespace() {
		t.Error("escaped space should not count as whitespace")
	}
}

func TestIsClosable(t *testing.T) {
	p := &proc{isInCode: true}
	p.ch = "a"
	if !p.isClosable() {
		t.Error("letter in code should be closable")
	}
	p.ch = ")"
	if p.isClosable() {
		t.Error("close paren itself should not be closable")
	}
	p.ch = blankSpace
	if p.isClosable() {
		t.Error("whitespace should not be closable")
	}
	p.isInCode = false
	p.ch = "a"
	if p.isClosable() {
		t.Error("letter outside code should not be closable")
	}
}

func TestOnQuoteTogglesString(t *testing.T) {
	p := &proc{errorPosCache: make(map[ErrorName]errPos)}
	p.onQuote()
	if !p.isInStr {
		t.Error("first quote should open a string")
	}
	p.onQuote()
	if p.isInStr {
		t.Error("second quote should close the string")
	}
}

func TestOnQuoteInCommentTogglesQuoteDanger(t *testing.T) {
	p := &proc{errorPosCache: make(map[ErrorName]errPos), isInComment: true}
	p.onQuote()
	if !p.quoteDanger {
		t.Error("quote inside comment should raise quote danger")
	}
	p.onQuote()
	if p.quoteDanger {
		t.Error("second quote inside comment should clear quote danger")
	}
}

func TestAfterBackslashRejectsEOLInCode(t *testing.T) {
	p := &proc{errorPosCache: make(map[ErrorName]errPos), isInCode: true}
	p.isEscaping = true
	p.ch = "\n"
	err := p.afterBackslash()
	perr, ok := err.(*Error)
	if !ok || perr.Name != ErrEOLBackslash {
		t.Errorf("afterBackslash() = %v, want *Error{Name: %s}", err, ErrEOLBackslash)
	}
}

func TestAfterBackslashAllowsEOLOutsideCode(t *testing.T) {
	p := &proc{errorPosCache: make(map[ErrorName]errPos), isInCode: false, isInComment: true}
	p.isEscaping = true
	p.ch = "\n"
	if err := p.afterBackslash(); err != nil {
		t.Errorf("afterBackslash() = %v, want nil", err)
	}
	if p.isInComment {
		t.Error("a newline should always end a comment, even when escaped outside code")
	}
}
