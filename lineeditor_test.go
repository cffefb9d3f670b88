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

func TestReplaceWithinLineKeepsCursorPastSameLengthEdit(t *testing.T) {
	p := &proc{lines: []string{"(foo bar)"}, cursorX: 9, cursorLine: 0}
	p.replaceWithinLine(0, 4, 8, " baz")
	if p.lines[0] != "(foo baz)" {
		t.Fatalf("lines[0] = %q, want %q", p.lines[0], "(foo baz)")
	}
	if p.cursorX != 9 {
		t.Errorf("cursorX = %d, want 9 (edit was same length)", p.cursorX)
	}
}

func TestReplaceWithinLineShiftsCursorOnLengthChange(t *testing.T) {
	p := &proc{lines: []string{"(foo)"}, cursorX: 5, cursorLine: 0}
	p.replaceWithinLine(0, 4, 4, " bar")
	if p.lines[0] != "(foo bar)" {
		t.Fatalf("lines[0] = %q, want %q", p.lines[0], "(foo bar)")
	}
	if p.cursorX != 9 {
		t.Errorf("cursorX = %d, want 9 after inserting 4 columns before the cursor", p.cursorX)
	}
}

func TestReplaceWithinLineLeavesCursorBeforeEdit(t *testing.T) {
	p := &proc{lines: []string{"(foo bar)"}, cursorX: 1, cursorLine: 0}
	p.replaceWithinLine(0, 4, 8, " baz")
	if p.cursorX != 1 {
		t.Errorf("cursorX = %d, want unchanged 1", p.cursorX)
	}
}

func TestInsertWithinLine(t *testing.T) {
	p := &proc{lines: []string{"()"}, cursorLine: noPos}
	p.insertWithinLine(0, 1, "foo")
	if p.lines[0] != "(foo)" {
		t.Errorf("lines[0] = %q, want %q", p.lines[0], "(foo)")
	}
}

func TestInitLineResetsLineScopedState(t *testing.T) {
	p := &proc{
		lineNo:        -1,
		errorPosCache: map[ErrorName]errPos{ErrUnmatchedCloseParen: {}, ErrLeadingCloseParen: {}},
		isInStr:       false,
	}
	p.initLine("  (foo)")
	if p.lineNo != 0 {
		t.Errorf("lineNo = %d, want 0", p.lineNo)
	}
	if p.indentX != noPos || p.commentX != noPos {
		t.Errorf("indentX/commentX = %d/%d, want noPos/noPos", p.indentX, p.commentX)
	}
	if _, ok := p.errorPosCache[ErrUnmatchedCloseParen]; ok {
		t.Error("initLine should clear the unmatched-close-paren error cache")
	}
	if !p.trackingIndent {
		t.Error("trackingIndent should be true when not inside a string")
	}
}

func TestCommitCharRecordsReplacement(t *testing.T) {
	p := &proc{lines: []string{"a\tb"}, x: 1}
	p.ch = doubleSpace
	p.commitChar("\t")
	if p.lines[0] != "a  b" {
		t.Errorf("lines[0] = %q, want %q", p.lines[0], "a  b")
	}
	if p.x != 3 {
		t.Errorf("x = %d, want 3", p.x)
	}
}
