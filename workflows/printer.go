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
	"fmt"
	"strings"
)

// NodeName returns the display name of n: the concrete type name without
// package qualifier or pointer marker.
func NodeName(n JobNode) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", n), "*")
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// TreeString renders the tree rooted at n, one node per line, indented two
// spaces per level of depth.
func TreeString(n JobNode) string {
	var sb strings.Builder
	Walk(n, func(n JobNode, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(NodeName(n))
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
