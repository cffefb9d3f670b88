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

import (
	"errors"
	"fmt"
)

// ErrorName identifies the kind of structural problem an [Error] reports.
type ErrorName string

const (
	ErrQuoteDanger         ErrorName = "quote-danger"
	ErrEOLBackslash        ErrorName = "eol-backslash"
	ErrUnclosedQuote       ErrorName = "unclosed-quote"
	ErrUnclosedParen       ErrorName = "unclosed-paren"
	ErrUnmatchedCloseParen ErrorName = "unmatched-close-paren"
	ErrUnmatchedOpenParen  ErrorName = "unmatched-open-paren"
	ErrLeadingCloseParen   ErrorName = "leading-close-paren"
	ErrUnhandled           ErrorName = "unhandled"
)

var errorMessages = map[ErrorName]string{
	ErrQuoteDanger:         "Quotes must balanced inside comment blocks.",
	ErrEOLBackslash:        "Line cannot end in a hanging backslash.",
	ErrUnclosedQuote:       "String is missing a closing quote.",
	ErrUnclosedParen:       "Unclosed open-paren.",
	ErrUnmatchedCloseParen: "Unmatched close-paren.",
	ErrUnmatchedOpenParen:  "Unmatched open-paren.",
	ErrLeadingCloseParen:   "Line cannot lead with a close-paren.",
	ErrUnhandled:           "Unhandled error.",
}

// ErrorExtra locates a secondary position relevant to an [Error], such as
// the opener an unmatched close-paren should have matched.
type ErrorExtra struct {
	Name   ErrorName
	LineNo int
	X      int
}

// Error reports a structural problem found while processing text. It
// satisfies the standard error interface.
type Error struct {
	Name    ErrorName
	Message string
	LineNo  int
	X       int
	Extra   *ErrorExtra
}

func (e *Error) Error() string {
	return fmt.Sprintf("parinfer: %s at line %d, column %d: %s", e.Name, e.LineNo, e.X, e.Message)
}

// errPos records where an error occurred in both the output and input
// coordinate spaces, so it can be reported relative to whichever text the
// caller ends up seeing (see cacheErrorPos in the reference).
type errPos struct {
	lineNo, x           int
	inputLineNo, inputX int
}

// signalLeadingCloseParen and signalReleaseCursorHold are not user-facing
// errors: they are internal control signals that tell [processText] to
// abandon the current pass and restart in Paren Mode. They are plain
// sentinel errors (checked with errors.Is) rather than panics, per the
// reference's note that these should be ordinary control flow in a
// systems language rather than exceptions.
var (
	signalLeadingCloseParen = errors.New("parinfer: leading close paren (internal signal)")
	signalReleaseCursorHold = errors.New("parinfer: release cursor hold (internal signal)")
)

func isSignal(err error) bool {
	return errors.Is(err, signalLeadingCloseParen) || errors.Is(err, signalReleaseCursorHold)
}
