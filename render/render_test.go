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

package render_test

import (
	"strings"
	"testing"

	"github.com/parinfer-go/parinfer"
	"github.com/parinfer-go/parinfer/render"
)

func TestRenderHighlightsParenTrail(t *testing.T) {
	result := parinfer.ParenMode("(foo\n  (bar)\n  (baz))", parinfer.Options{})
	if !result.Success {
		t.Fatalf("ParenMode failed: %v", result.Error)
	}

	var buf strings.Builder
	if err := render.Render(&buf, "(foo\n  (bar)\n  (baz))", result); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, `<pre class="parinfer">`) {
		t.Errorf("output missing <pre> wrapper: %s", out)
	}
	if strings.Count(out, `class="pf-trail"`) == 0 {
		t.Errorf("output missing paren-trail spans: %s", out)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	result := parinfer.ParenMode("(foo \"<bar>\")", parinfer.Options{})
	if !result.Success {
		t.Fatalf("ParenMode failed: %v", result.Error)
	}

	var buf strings.Builder
	if err := render.Render(&buf, "(foo \"<bar>\")", result); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<bar>") {
		t.Errorf("expected <bar> to be escaped, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "&lt;bar&gt;") {
		t.Errorf("expected escaped &lt;bar&gt;, got: %s", buf.String())
	}
}

func TestRenderReportsError(t *testing.T) {
	result := parinfer.ParenMode("(foo", parinfer.Options{})
	if result.Success {
		t.Fatal("expected failure")
	}

	var buf strings.Builder
	if err := render.Render(&buf, "(foo", result); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "parinfer-error") {
		t.Errorf("expected error paragraph, got: %s", buf.String())
	}
}
