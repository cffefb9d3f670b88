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

import "golang.org/x/text/unicode/norm"

// normalizeColumns folds decomposed combining-mark sequences in line into
// their precomposed form.
//
// The engine's column bookkeeping (Result.CursorX, ParenTrailRange,
// TabStop.X, and so on) counts one rune as one column, which the
// reference implementation also assumes (it counts UTF-16 units). A
// decomposed accent (e.g. "e" + U+0301 COMBINING ACUTE ACCENT) would
// otherwise count as two columns for what a user sees as a single
// character. NFC normalization composes the common cases back into a
// single rune; it does not attempt full grapheme-cluster-aware width
// accounting (emoji, CJK double-width, etc.), which is out of scope for a
// paren-balancing engine.
func normalizeColumns(line string) string {
	return norm.NFC.String(line)
}
