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

package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubLeaf struct {
	Leaf
	name string
}

type stubBranch struct {
	name  string
	nodes []JobNode
}

func (b *stubBranch) Children() []JobNode { return b.nodes }

func TestWalkVisitsDepthFirstInChildOrder(t *testing.T) {
	tree := &stubBranch{name: "root", nodes: []JobNode{
		&stubBranch{name: "a", nodes: []JobNode{
			&stubLeaf{name: "a1"},
			&stubLeaf{name: "a2"},
		}},
		&stubLeaf{name: "b"},
	}}

	var names []string
	var depths []int
	Walk(tree, func(n JobNode, depth int) bool {
		switch v := n.(type) {
		case *stubBranch:
			names = append(names, v.name)
		case *stubLeaf:
			names = append(names, v.name)
		}
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, names)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
}

func TestWalkPrunesSubtreeOnFalse(t *testing.T) {
	tree := &stubBranch{name: "root", nodes: []JobNode{
		&stubBranch{name: "skipped", nodes: []JobNode{&stubLeaf{name: "hidden"}}},
		&stubLeaf{name: "kept"},
	}}

	var names []string
	Walk(tree, func(n JobNode, depth int) bool {
		if b, ok := n.(*stubBranch); ok {
			names = append(names, b.name)
			return b.name != "skipped"
		}
		names = append(names, n.(*stubLeaf).name)
		return true
	})

	assert.Equal(t, []string{"root", "skipped", "kept"}, names)
}

func TestWalkNilNode(t *testing.T) {
	called := false
	Walk(nil, func(JobNode, int) bool {
		called = true
		return true
	})
	if called {
		t.Error("callback must not fire for a nil root")
	}
}

func TestLeafHasNoChildren(t *testing.T) {
	assert.Empty(t, (&stubLeaf{}).Children())
}

func TestCountNodes(t *testing.T) {
	tree := &stubBranch{nodes: []JobNode{
		&stubLeaf{},
		&stubBranch{nodes: []JobNode{&stubLeaf{}}},
	}}
	assert.Equal(t, 4, CountNodes(tree))
	assert.Equal(t, 1, CountNodes(&stubLeaf{}))
}

func TestTreeString(t *testing.T) {
	tree := &stubBranch{nodes: []JobNode{
		&stubLeaf{},
		&stubBranch{nodes: []JobNode{&stubLeaf{}}},
	}}

	expected := "stubBranch\n" +
		"  stubLeaf\n" +
		"  stubBranch\n" +
		"    stubLeaf\n"
	assert.Equal(t, expected, TreeString(tree))
}

func TestNodeName(t *testing.T) {
	assert.Equal(t, "stubLeaf", NodeName(&stubLeaf{}))
}
