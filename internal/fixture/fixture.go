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

// Package fixture provides access to the table of recorded
// Indent/Paren/Smart Mode scenarios used to test the engine.
package fixture

import (
	_ "embed"
	"encoding/json"
)

// Options mirrors the subset of parinfer.Options that a fixture can set;
// nil fields mean the option was left unset.
type Options struct {
	CursorX            *int     `json:"cursorX,omitempty"`
	CursorLine         *int     `json:"cursorLine,omitempty"`
	PrevCursorX        *int     `json:"prevCursorX,omitempty"`
	PrevCursorLine     *int     `json:"prevCursorLine,omitempty"`
	SelectionStartLine *int     `json:"selectionStartLine,omitempty"`
	PartialResult      bool     `json:"partialResult,omitempty"`
	ForceBalance       bool     `json:"forceBalance,omitempty"`
	ReturnParens       bool     `json:"returnParens,omitempty"`
	Changes            []Change `json:"changes,omitempty"`
}

// Change mirrors parinfer.Change.
type Change struct {
	X       int    `json:"x"`
	LineNo  int    `json:"lineNo"`
	OldText string `json:"oldText"`
	NewText string `json:"newText"`
}

// Error mirrors the fields of parinfer.Error a fixture checks.
type Error struct {
	Name   string `json:"name"`
	LineNo int    `json:"lineNo"`
	X      int    `json:"x"`
}

// WantResult is the subset of parinfer.Result a fixture checks; fields left
// as the zero value (and not named in the source JSON) are not asserted by
// callers that only check what they declare.
type WantResult struct {
	Text       string  `json:"text"`
	CursorX    *int    `json:"cursorX,omitempty"`
	CursorLine *int    `json:"cursorLine,omitempty"`
	Error      *Error  `json:"error,omitempty"`
}

// Case is a single named Indent/Paren/Smart Mode test scenario.
type Case struct {
	Name    string     `json:"name"`
	Mode    string     `json:"mode"` // "indent", "paren", or "smart"
	Text    string     `json:"text"`
	Options Options    `json:"options"`
	Want    WantResult `json:"want"`
}

//go:embed cases.json
var casesData []byte

// Load returns the recorded test scenarios.
func Load() ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(casesData, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
