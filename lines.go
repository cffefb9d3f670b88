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

// splitLines splits text on "\n" or "\r\n", matching the reference's
// LINE_ENDING_REGEX. The line endings themselves are discarded; use
// [lineEnding] to pick the right one back up on output.
func splitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// lineEnding reports the line ending to join output lines with. If the
// original text contains any "\r" at all, every output line is joined
// with "\r\n"; otherwise "\n". This matches the reference implementation,
// which assumes CR usage anywhere in the buffer implies CRLF throughout,
// rather than tracking line endings on a per-line basis.
func lineEnding(origText string) string {
	if strings.ContainsRune(origText, '\r') {
		return "\r\n"
	}
	return "\n"
}

// sanitizeNUL replaces NUL bytes with the Unicode replacement character
// before treating text as a sequence of meaningful characters, since a
// literal NUL has no sensible column or paren-matching behavior.
func sanitizeNUL(text string) string {
	if !strings.ContainsRune(text, 0) {
		return text
	}
	return strings.ReplaceAll(text, "\x00", "�")
}
