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

func TestMatchParenIsBidirectional(t *testing.T) {
	pairs := map[rune]rune{'(': ')', '[': ']', '{': '}'}
	for open, close := range pairs {
		if matchParen[open] != close {
			t.Errorf("matchParen[%q] = %q, want %q", open, matchParen[open], close)
		}
		if matchParen[close] != open {
			t.Errorf("matchParen[%q] = %q, want %q", close, matchParen[close], open)
		}
	}
}

func TestIsOpenAndCloseParen(t *testing.T) {
	for _, ch := range []rune{'(', '[', '{'} {
		if !isOpenParen(ch) {
			t.Errorf("isOpenParen(%q) = false, want true", ch)
		}
		if isCloseParen(ch) {
			t.Errorf("isCloseParen(%q) = true, want false", ch)
		}
	}
	for _, ch := range []rune{')', ']', '}'} {
		if !isCloseParen(ch) {
			t.Errorf("isCloseParen(%q) = false, want true", ch)
		}
		if isOpenParen(ch) {
			t.Errorf("isOpenParen(%q) = true, want false", ch)
		}
	}
	if isOpenParen('a') || isCloseParen('a') {
		t.Error("a plain letter should be neither an open nor close paren")
	}
}
