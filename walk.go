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

// A Cursor describes a [ParenNode] encountered during [Walk], identified by
// its index into the [Result.Parens] arena it was walked from.
type Cursor struct {
	arena  []ParenNode
	index  int
	parent int
	depth  int
}

// Index returns the cursor's node's index into the arena passed to [Walk].
func (c *Cursor) Index() int {
	return c.index
}

// Node returns the [ParenNode] the cursor currently refers to.
func (c *Cursor) Node() ParenNode {
	return c.arena[c.index]
}

// ParentIndex returns the arena index of the current node's parent, or -1
// if the current node is a root.
func (c *Cursor) ParentIndex() int {
	return c.parent
}

// Depth returns the current node's nesting depth; roots are depth 0.
func (c *Cursor) Depth() int {
	return c.depth
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each node before the node's
	// children are traversed (pre-order). If Pre returns false, no
	// children are traversed, and Post is not called for that node.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each node after the node's
	// children are traversed (post-order). If Post returns false,
	// traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses a paren tree arena as returned in [Result.Parens], visiting
// every node reachable from roots (typically [Result.ParenRoots]), calling
// [WalkOptions.Pre] and [WalkOptions.Post].
func Walk(arena []ParenNode, roots []int, opts *WalkOptions) {
	type walkFrame struct {
		Cursor
		post bool
	}

	var stack []walkFrame
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, walkFrame{Cursor: Cursor{arena: arena, index: roots[i], parent: -1, depth: 0}})
	}

	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.post {
			if opts.Post != nil {
				*cursor = curr.Cursor
				if !opts.Post(cursor) {
					break
				}
			}
			continue
		}

		if opts.Pre != nil {
			*cursor = curr.Cursor
			if !opts.Pre(cursor) {
				continue
			}
		}
		curr.post = true
		stack = append(stack, curr)

		children := arena[curr.index].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{
				Cursor: Cursor{
					arena:  arena,
					index:  children[i],
					parent: curr.index,
					depth:  curr.depth + 1,
				},
			})
		}
	}
}
