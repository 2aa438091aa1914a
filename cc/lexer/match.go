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

import "strings"

// Match reports whether the leading tokens of the given sequence match the
// pattern. The pattern is a space-separated list of items, each matched
// against one token in order:
//
//   - "%name%" matches any identifier
//   - "%num%" matches any integer literal
//   - "%str%" matches any string literal
//   - "%any%" matches any single token
//   - anything else is compared literally against the token content
//
// Tokens beyond the pattern length are ignored, so a pattern like "%name% ("
// is a prefix test. A sequence shorter than the pattern never matches. Callers
// usually pass significant tokens only; whitespace and comment tokens are
// matched like any other token.
func Match(tokens []Token, pattern string) bool {
	items := strings.Fields(pattern)
	if len(tokens) < len(items) {
		return false
	}

	for i, item := range items {
		token := tokens[i]
		switch item {
		case "%name%":
			if !token.IsIdentifier() {
				return false
			}
		case "%num%":
			if token.Type != TokenType_LiteralInteger {
				return false
			}
		case "%str%":
			if token.Type != TokenType_LiteralString {
				return false
			}
		case "%any%":
			// matches unconditionally
		default:
			if token.Content != item {
				return false
			}
		}
	}
	return true
}
