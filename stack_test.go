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

func TestPeekOpener(t *testing.T) {
	a := &opener{ch: '('}
	b := &opener{ch: '['}
	stack := []*opener{a, b}

	if got := peekOpener(stack, 0); got != b {
		t.Errorf("peekOpener(stack, 0) = %v, want top-of-stack %v", got, b)
	}
	if got := peekOpener(stack, 1); got != a {
		t.Errorf("peekOpener(stack, 1) = %v, want %v", got, a)
	}
	if got := peekOpener(stack, 2); got != nil {
		t.Errorf("peekOpener(stack, 2) = %v, want nil", got)
	}
}

func TestIsValidCloseParen(t *testing.T) {
	stack := []*opener{{ch: '('}}
	if !isValidCloseParen(stack, ')') {
		t.Error("')' should close '('")
	}
	if isValidCloseParen(stack, ']') {
		t.Error("']' should not close '('")
	}
	if isValidCloseParen(nil, ')') {
		t.Error("empty stack should never validate a close paren")
	}
}

func TestTrackArgTabStop(t *testing.T) {
	o := &opener{ch: '('}
	p := &proc{isInCode: true, parenStack: []*opener{o}}

	p.ch = blankSpace
	p.trackArgTabStop(argTabStopSpace)
	if p.trackingArgTabStop != argTabStopArg {
		t.Fatalf("after whitespace, trackingArgTabStop = %v, want argTabStopArg", p.trackingArgTabStop)
	}

	p.ch = "x"
	p.x = 5
	p.trackArgTabStop(argTabStopArg)
	if !o.hasArgX || o.argX != 5 {
		t.Errorf("opener = {hasArgX: %v, argX: %d}, want {true, 5}", o.hasArgX, o.argX)
	}
	if p.trackingArgTabStop != argTabStopNone {
		t.Errorf("trackingArgTabStop = %v, want argTabStopNone after recording argX", p.trackingArgTabStop)
	}
}
