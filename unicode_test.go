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

func TestNormalizeColumnsComposesDecomposedAccents(t *testing.T) {
	decomposed := "é" // "e" + COMBINING ACUTE ACCENT, two runes
	want := "é"        // LATIN SMALL LETTER E WITH ACUTE, one rune

	got := normalizeColumns(decomposed)
	if got != want {
		t.Errorf("normalizeColumns(%q) = %q, want %q", decomposed, got, want)
	}
	if len([]rune(got)) != 1 {
		t.Errorf("normalizeColumns output has %d runes, want 1", len([]rune(got)))
	}
}

func TestNormalizeColumnsLeavesPlainTextAlone(t *testing.T) {
	if got := normalizeColumns("(foo bar)"); got != "(foo bar)" {
		t.Errorf("normalizeColumns(%q) = %q, want unchanged", "(foo bar)", got)
	}
}
