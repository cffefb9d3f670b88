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

// Package render writes an HTML fragment that annotates a [parinfer.Result]
// for playground-style debugging: the corrected text wrapped in a <pre>,
// with each paren trail and tab stop highlighted in its own <span>.
//
// This is not part of the engine itself; it is a thin consumer of the
// public Result, kept in its own subpackage so the core package's import
// graph stays free of HTML-escaping dependencies.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go4.org/bytereplacer"

	"github.com/parinfer-go/parinfer"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// Render writes result as an HTML fragment to w. Render does not read
// text; when result.Success is false, the error paragraph reports the
// position recorded in result.Error.
func Render(w io.Writer, text string, result parinfer.Result) error {
	ew := &errWriter{w: w}

	ew.WriteString(`<pre class="parinfer">`)
	lines := strings.Split(strings.ReplaceAll(result.Text, "\r\n", "\n"), "\n")

	trailsByLine := make(map[int][]parinfer.ParenTrailRange)
	for _, t := range result.ParenTrails {
		trailsByLine[t.LineNo] = append(trailsByLine[t.LineNo], t)
	}
	tabStopsByLine := make(map[int][]parinfer.TabStop)
	for _, t := range result.TabStops {
		tabStopsByLine[t.LineNo] = append(tabStopsByLine[t.LineNo], t)
	}

	for lineNo, line := range lines {
		if lineNo > 0 {
			ew.WriteString("\n")
		}
		trails := trailsByLine[lineNo]
		sort.Slice(trails, func(i, j int) bool { return trails[i].StartX < trails[j].StartX })
		renderLine(ew, line, trails, tabStopsByLine[lineNo])
	}
	ew.WriteString(`</pre>`)

	if !result.Success && result.Error != nil {
		fmt.Fprintf(ew, `<p class="parinfer-error">%s at line %d, column %d</p>`,
			htmlEscaper.Replace([]byte(result.Error.Message)), result.Error.LineNo, result.Error.X)
	}

	return ew.err
}

func renderLine(w *errWriter, line string, trails []parinfer.ParenTrailRange, tabStops []parinfer.TabStop) {
	runes := []rune(line)
	isTabStop := make([]bool, len(runes))
	for _, t := range tabStops {
		if t.X >= 0 && t.X < len(runes) {
			isTabStop[t.X] = true
		}
	}

	pos := 0
	for _, tr := range trails {
		if tr.StartX > len(runes) || tr.StartX < pos {
			continue
		}
		if tr.StartX > pos {
			writeSegment(w, runes, pos, tr.StartX, isTabStop)
		}
		end := tr.EndX
		if end > len(runes) {
			end = len(runes)
		}
		w.WriteString(`<span class="pf-trail">`)
		writeSegment(w, runes, tr.StartX, end, isTabStop)
		w.WriteString(`</span>`)
		pos = end
	}
	if pos < len(runes) {
		writeSegment(w, runes, pos, len(runes), isTabStop)
	}
}

func writeSegment(w *errWriter, runes []rune, start, end int, isTabStop []bool) {
	for i := start; i < end; i++ {
		escaped := htmlEscaper.Replace([]byte(string(runes[i])))
		if isTabStop[i] {
			w.WriteString(`<span class="pf-tabstop">`)
			w.Write(escaped)
			w.WriteString(`</span>`)
		} else {
			w.Write(escaped)
		}
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
