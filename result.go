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

// Result is the outcome of a single [IndentMode], [ParenMode], or
// [SmartMode] call.
type Result struct {
	// Text is the transformed text on success. On failure it is the
	// original text, unless Options.PartialResult was set, in which case
	// it is the partially processed text.
	Text string

	// Success reports whether Text is a structurally valid rewrite.
	Success bool

	// CursorX and CursorLine are the cursor's position after any edits
	// made during processing shifted it. They are nil if no cursor
	// position was known.
	CursorX, CursorLine *int

	// Error describes the structural problem found, and is non-nil
	// exactly when Success is false.
	Error *Error

	// TabStops lists the critical indentation columns on the cursor (or
	// selection-start) line, for editor integration.
	TabStops []TabStop

	// ParenTrails lists every paren trail that was finalized during
	// processing, in the order lines were processed.
	ParenTrails []ParenTrailRange

	// Parens is the paren tree's node arena, populated only when
	// Options.ReturnParens was set. Every ParenNode.Children entry is an
	// index into this same slice; ParenRoots lists the indices of the
	// top-level (outermost) nodes. See [Walk] for a traversal helper.
	Parens     []ParenNode
	ParenRoots []int
}

// TabStop is a critical indentation column an editor may want to snap a
// line's indentation to, corresponding to an open paren still on the
// stack at the cursor (or selection-start) line.
type TabStop struct {
	Ch     rune
	X      int
	LineNo int

	// HasArgX reports whether ArgX is meaningful: the x position of the
	// first argument following the opener, absent if no such argument
	// appears before the next tab stop.
	HasArgX bool
	ArgX    int
}

// ParenTrailRange is the half-open [StartX, EndX) range of a finalized
// paren trail on a single line, returned so editors can highlight it.
type ParenTrailRange struct {
	LineNo, StartX, EndX int
}
