// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

// Cursor is a position in the source code. Line and Column are 1-based.
type Cursor struct {
	Line, Column int
}

// CursorInit points at the first character of the input.
var CursorInit = Cursor{Line: 1, Column: 1}

// AdvancedBy returns the cursor moved past the given content. The cursor is
// assumed to point at the first character of content and the result points
// directly after its last one. A newline advances the line and resets the
// column.
func (c Cursor) AdvancedBy(content string) Cursor {
	for _, r := range content {
		if r == '\n' {
			c.Line++
			c.Column = 1
		} else {
			c.Column++
		}
	}
	return c
}
