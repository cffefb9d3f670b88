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

// Package parinfer infers and maintains the balance between indentation
// and parenthesis structure in Lisp-family source code.
//
// Given the full text of a buffer plus optional cursor and edit metadata,
// [IndentMode], [ParenMode], and [SmartMode] each produce a structurally
// corrected version of that text:
//
//   - IndentMode treats indentation as authoritative and rewrites the
//     trailing parentheses of each expression to match it.
//   - ParenMode treats parentheses as authoritative and rewrites
//     indentation to match them.
//   - SmartMode is a cursor-aware hybrid of IndentMode that avoids
//     structural churn while the cursor is inside the expression being
//     edited, falling back to ParenMode when an edit is ambiguous.
//
// The package processes whole-buffer text in a single pass; it does not
// tokenize beyond what paren-balancing requires, does not recognize
// language-specific reader syntax, and does not support streaming input.
package parinfer
