/*
 * Copyright (c) 2024 The jobkit-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package workflows defines the node contract shared by every element of a
// Databricks job definition tree, together with traversal helpers built on
// top of it. The concrete node families live in the clusters, libraries,
// sql and jobs subpackages.
package workflows

// JobNode is a single element of a workflow definition tree. Nodes are
// value objects: once a tree is assembled it is not mutated, so Children
// may be called concurrently from multiple goroutines.
type JobNode interface {
	// Children returns the node's directly-owned children in field
	// declaration order. Absent optional children are omitted, never
	// nil-padded. Leaf nodes return an empty sequence.
	Children() []JobNode
}

// Leaf supplies the empty Children implementation. Leaf node types embed it
// instead of repeating the method.
type Leaf struct{}

func (Leaf) Children() []JobNode { return nil }

// Walk visits n and every descendant depth-first, children in order. The
// callback receives the depth of each node, starting at 0 for n. Returning
// false skips the subtree below the current node.
func Walk(n JobNode, fn func(n JobNode, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n JobNode, depth int, fn func(JobNode, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children() {
		walk(child, depth+1, fn)
	}
}

// CountNodes returns the number of nodes in the tree rooted at n,
// including n itself.
func CountNodes(n JobNode) int {
	count := 0
	Walk(n, func(JobNode, int) bool {
		count++
		return true
	})
	return count
}
