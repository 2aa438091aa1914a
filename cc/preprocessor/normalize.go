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

import "strings"

// normalize applies the formatting normalization steps to cleaned text, in
// order: tab expansion, leading-indent trim, collapsing of spaces adjacent to
// newlines, joining of backslash-continued lines, and canonicalization of
// "#if defined(X)" directives into "#ifdef X".
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.TrimLeft(text, " ")
	text = removeSpaceNearNewlines(text)
	text = joinContinuedLines(text)
	text = replaceIfDefined(text)
	return text
}

// removeSpaceNearNewlines drops every space character that directly precedes
// or follows a newline.
func removeSpaceNearNewlines(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' &&
			((len(out) > 0 && out[len(out)-1] == '\n') ||
				(i+1 < len(text) && text[i+1] == '\n')) {
			continue
		}
		out = append(out, text[i])
	}
	return string(out)
}

// joinContinuedLines merges every line ending in a backslash with the line
// after it. The pair of characters is replaced by a single space, unless a
// space already precedes the backslash, and a bare newline is re-inserted
// before the next line break so the total line count stays stable.
//
// Joins are resolved last-to-first, so a run of continued lines collapses
// into one logical line.
func joinContinuedLines(text string) string {
	for {
		loc := strings.LastIndex(text, "\\\n")
		if loc < 0 {
			return text
		}
		text = text[:loc] + text[loc+2:]
		if loc > 0 && text[loc-1] != ' ' {
			text = text[:loc] + " " + text[loc:]
			loc++
		}
		if next := strings.Index(text[loc:], "\n"); next >= 0 {
			at := loc + next
			text = text[:at] + "\n" + text[at:]
		}
	}
}

// replaceIfDefined canonicalizes "#if defined(IDENT)" into "#ifdef IDENT",
// but only when the directive's line ends immediately after the closing
// parenthesis. Compound conditions like "#if defined(A) && defined(B)" are
// left untouched.
func replaceIfDefined(text string) string {
	const prefix = "#if defined("
	for pos := 0; ; pos++ {
		next := strings.Index(text[pos:], prefix)
		if next < 0 {
			return text
		}
		pos += next

		nameBegin := pos + len(prefix)
		closing := strings.Index(text[nameBegin:], ")")
		if closing < 0 {
			return text
		}
		nameEnd := nameBegin + closing
		if nameEnd+1 < len(text) && text[nameEnd+1] == '\n' {
			text = text[:pos] + "#ifdef " + text[nameBegin:nameEnd] + text[nameEnd+1:]
		}
	}
}
