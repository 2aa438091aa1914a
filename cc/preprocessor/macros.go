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

package preprocessor

import (
	"strings"

	"github.com/EngFlow/cfgscan/cc/lexer"
)

// Upper bound on replacements per macro definition. The occurrence scan always
// moves forward, so expansion terminates even without the bound; the cap keeps
// degenerate inputs (such as self-reproducing macro bodies) from inflating the
// document without limit. Occurrences beyond the cap stay verbatim.
const maxExpansions = 1000

// macroDefinition is one parsed "#define": its name, its parameter names
// (empty for object-like macros) and its body tokens.
type macroDefinition struct {
	name       string
	parameters []string
	body       []lexer.Token
}

func (m macroDefinition) functionLike() bool {
	return len(m.parameters) > 0
}

// ExpandMacros textually expands object-like and function-like macros in a
// single forward pass. Each "#define" line is removed from the document (its
// line break stays, so line counts are preserved) and every later whole-token
// occurrence of the macro name is replaced with the macro body. Function-like
// occurrences additionally require a parenthesized argument list directly
// after the name; an argument count that does not equal the parameter count
// leaves the occurrence unexpanded.
//
// Expansion is not conforming C preprocessing: bodies are substituted as text
// in one pass, without rescanning of the inserted replacement.
func ExpandMacros(code string) string {
	for defpos := strings.Index(code, "#define"); defpos >= 0; {
		// The body runs to the next newline, extended across trailing
		// backslash joins.
		endpos := strings.Index(code[defpos+6:], "\n")
		if endpos < 0 {
			return code[:defpos]
		}
		endpos += defpos + 6
		for endpos >= 0 && code[endpos-1] == '\\' {
			next := strings.Index(code[endpos+1:], "\n")
			if next < 0 {
				endpos = -1
				break
			}
			endpos += 1 + next
		}
		if endpos < 0 {
			return code[:defpos]
		}

		macroText := ""
		if defpos+8 <= endpos {
			macroText = code[defpos+8 : endpos]
		}
		code = code[:defpos] + code[endpos:]

		// Joined continuation pairs vanish from the body; re-insert their
		// line breaks into the document to keep line numbering stable.
		for strings.Contains(macroText, "\\\n") {
			macroText = strings.Replace(macroText, "\\\n", "", 1)
			code = code[:defpos] + "\n" + code[defpos:]
			defpos++
		}

		if macro, ok := parseMacroDefinition(macroText); ok {
			code = expandOccurrences(code, defpos, macro)
		}

		next := strings.Index(code[defpos:], "#define")
		if next < 0 {
			return code
		}
		defpos += next
	}
	return code
}

// parseMacroDefinition parses the text between "#define " and the end of the
// directive line. Reports ok=false when no macro name can be extracted.
func parseMacroDefinition(macroText string) (macroDefinition, bool) {
	tokens := lexer.SignificantTokens([]byte(macroText))
	if len(tokens) == 0 || !tokens[0].IsIdentifier() {
		return macroDefinition{}, false
	}

	macro := macroDefinition{name: tokens[0].Content}
	if lexer.Match(tokens, "%name% ( %name%") && adjacentTokens(tokens[0], tokens[1]) {
		closing := 1
		for _, token := range tokens[2:] {
			closing++
			if token.Content == ")" {
				break
			}
			if token.IsIdentifier() {
				macro.parameters = append(macro.parameters, token.Content)
			}
		}
		// closing indexes the ")" token, or the last token of an
		// unterminated parameter list.
		macro.body = tokens[closing+1:]
	} else {
		macro.body = tokens[1:]
	}
	return macro, true
}

// adjacentTokens reports whether the second token starts directly after the
// first one, with no characters between. A space between a macro name and the
// parenthesis makes the parenthesis part of the body, not a parameter list.
func adjacentTokens(first, second lexer.Token) bool {
	return first.End() == second.Location
}

// expandOccurrences replaces whole-token occurrences of the macro name after
// position defpos.
func expandOccurrences(code string, defpos int, macro macroDefinition) string {
	expansions := 0
	pos1 := defpos
	for pos1 < len(code) && expansions < maxExpansions {
		next := strings.Index(code[pos1:], macro.name)
		if next < 0 {
			break
		}
		pos1 += next

		// The name must not continue an identifier on either side.
		if pos1 > 0 && isIdentifierChar(code[pos1-1]) {
			pos1++
			continue
		}
		pos2 := pos1 + len(macro.name)
		if !macro.functionLike() && pos2 < len(code) && isIdentifierChar(code[pos2]) {
			pos1++
			continue
		}

		var arguments []string
		if macro.functionLike() {
			if pos2 >= len(code) || code[pos2] != '(' {
				pos1++
				continue
			}
			arguments, pos2 = parseArguments(code, pos2)
			if len(arguments) != len(macro.parameters) {
				pos1++
				continue
			}
		}

		replacement := buildReplacement(macro, arguments)
		code = code[:pos1] + replacement + code[pos2:]
		pos1 += len(replacement)
		expansions++
	}
	return code
}

// parseArguments parses a parenthesized, comma-separated argument list
// starting at the opening parenthesis. Top-level commas split arguments;
// nested parentheses are copied verbatim into the current argument. Returns
// the arguments and the position directly after the closing parenthesis. An
// unterminated list ends at the end of the code, with the trailing partial
// argument dropped.
func parseArguments(code string, start int) ([]string, int) {
	var arguments []string
	var current strings.Builder
	level := 0

	pos := start
	for ; pos < len(code); pos++ {
		switch ch := code[pos]; {
		case ch == '(':
			level++
			if level == 1 {
				continue
			}
			current.WriteByte(ch)
		case ch == ')':
			level--
			if level <= 0 {
				arguments = append(arguments, current.String())
				return arguments, pos + 1
			}
			current.WriteByte(ch)
		case ch == ',' && level == 1:
			arguments = append(arguments, current.String())
			current.Reset()
		case level >= 1:
			current.WriteByte(ch)
		}
	}
	return arguments, pos
}

// buildReplacement reconstructs the macro body, substituting parameter tokens
// with the matching argument text. A space is kept between two identifier-like
// tokens so that expansion does not glue names together.
func buildReplacement(macro macroDefinition, arguments []string) string {
	var out strings.Builder
	for i, token := range macro.body {
		text := token.Content
		if token.IsIdentifier() {
			for p, parameter := range macro.parameters {
				if text == parameter {
					text = arguments[p]
					break
				}
			}
		}
		out.WriteString(text)
		if lexer.Match(macro.body[i:], "%name% %name%") {
			out.WriteByte(' ')
		}
	}
	return out.String()
}

// isIdentifierChar reports whether the byte can appear inside an identifier.
func isIdentifierChar(ch byte) bool {
	return ch == '_' ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9')
}
