// Copyright 2025 EngFlow Inc. All rights reserved.
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

package preprocessor

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Read consumes the raw source stream to exhaustion and returns the cleaned
// text: comments are stripped, string and character literals are copied
// verbatim, whitespace and control characters are normalized to single spaces.
//
// Line structure is preserved. A single-line comment is replaced by one
// newline; a multi-line comment re-emits every newline it spans, so the
// cleaned text never has fewer lines than the input.
//
// A read failure truncates the stream; everything read up to that point is
// still cleaned and returned.
func Read(r io.Reader) string {
	data, _ := io.ReadAll(r)

	var out strings.Builder
	out.Grow(len(data))

	// Suppress spaces at the beginning of the text and after a space, '#'
	// or '/'.
	ignoreSpace := true
	for i := 0; i < len(data); i++ {
		ch := data[i]

		// Bytes outside the ASCII range are dropped, except inside literals
		// where they are copied verbatim.
		if ch >= utf8.RuneSelf {
			continue
		}
		if ch != '\n' && isSpaceOrControl(ch) {
			ch = ' '
		}
		if ch == ' ' && ignoreSpace {
			continue
		}
		ignoreSpace = ch == ' ' || ch == '#' || ch == '/'

		switch {
		case ch == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i++
			}
			out.WriteByte('\n')
		case ch == '/' && i+1 < len(data) && data[i+1] == '*':
			bodyStart := i + 2
			for i = bodyStart; i < len(data); i++ {
				if data[i] == '\n' {
					out.WriteByte('\n')
				} else if data[i] == '/' && i > bodyStart && data[i-1] == '*' {
					break
				}
			}
		case ch == '/':
			// Not a comment. Emit the slash alone; the following byte
			// re-enters the dispatcher, so "/" directly before a literal
			// or another slash keeps its meaning.
			out.WriteByte('/')
		case ch == '"' || ch == '\'':
			i = copyLiteral(&out, data, i, ch)
		default:
			out.WriteByte(ch)
		}
	}

	return out.String()
}

// copyLiteral copies a string or character literal verbatim, delimiters
// included. A backslash escapes the byte after it unconditionally. Returns the
// index of the closing delimiter; an unterminated literal runs to the end of
// data.
func copyLiteral(out *strings.Builder, data []byte, start int, delimiter byte) int {
	out.WriteByte(delimiter)
	i := start + 1
	for ; i < len(data); i++ {
		out.WriteByte(data[i])
		if data[i] == '\\' {
			if i+1 < len(data) {
				i++
				out.WriteByte(data[i])
			}
			continue
		}
		if data[i] == delimiter {
			break
		}
	}
	return i
}

// isSpaceOrControl reports whether the byte is a space or control character
// other than a newline.
func isSpaceOrControl(ch byte) bool {
	return ch == ' ' || ch == 0x7F || (ch < 0x20 && ch != '\n')
}
