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

package lexer

type TokenType int

const (
	// Special token type indicating the end of the input stream (or default
	// value when an error is returned).
	TokenType_EOF TokenType = iota

	// Every complete token that is not one of the other types.
	//
	// This is a fallback type. Lexer covers only a subset of C/C++ syntax.
	// Every token without its dedicated TokenType is classified as Unassigned.
	TokenType_Unassigned

	// Single newline character '\n'. Newlines require special handling because
	// they mark the end of a preprocessor directive.
	TokenType_Newline

	// One or more whitespace characters, other than newlines.
	TokenType_Whitespace

	// Line continuation sequence, a backslash '\' followed by a newline
	// character '\n' (with optional whitespace characters between).
	TokenType_ContinueLine

	// Preprocessor directive, a hash '#' followed by the directive name (with
	// optional whitespace characters between), e.g. "#define" or "#  ifdef".
	TokenType_PreprocessorDirective

	// Identifier or keyword, a letter or underscore followed by letters, digits
	// or underscores.
	TokenType_Identifier

	// Integer literal in base decimal, hexadecimal, octal or binary, e.g. 123,
	// 0x1A3F, 0755, 0b1101.
	TokenType_LiteralInteger

	// String literal, enclosed in double quotes, e.g. "example".
	TokenType_LiteralString

	// Character literal, enclosed in single quotes, e.g. 'a' or '\n'.
	TokenType_LiteralChar

	// Single-line comment, starting with // and ending at the end of the line.
	TokenType_CommentSingleLine

	// Multi-line comment, starting with /* and ending with */.
	TokenType_CommentMultiLine

	// Operator or punctuation symbol, e.g. '(', ',', '==', '&&'.
	TokenType_Symbol
)

func (t TokenType) String() string {
	switch t {
	case TokenType_EOF:
		return "end of file"
	case TokenType_Unassigned:
		return "unassigned token"
	case TokenType_Newline:
		return "newline"
	case TokenType_Whitespace:
		return "whitespace"
	case TokenType_ContinueLine:
		return `line continuation backslash '\'`
	case TokenType_PreprocessorDirective:
		return "preprocessor directive"
	case TokenType_Identifier:
		return "identifier"
	case TokenType_LiteralInteger:
		return "integer literal"
	case TokenType_LiteralString:
		return `"string literal"`
	case TokenType_LiteralChar:
		return "character literal"
	case TokenType_CommentSingleLine:
		return "single-line comment"
	case TokenType_CommentMultiLine:
		return "multi-line comment"
	case TokenType_Symbol:
		return "symbol"
	default:
		return "unknown token"
	}
}

type Token struct {
	Type     TokenType
	Location Cursor
	Content  string
}

var TokenEOF = Token{Type: TokenType_EOF}

// End returns the position directly after the token.
func (t Token) End() Cursor {
	return t.Location.AdvancedBy(t.Content)
}

// IsIdentifier reports whether the token is an identifier or keyword.
func (t Token) IsIdentifier() bool {
	return t.Type == TokenType_Identifier
}

// IsSignificant reports whether the token carries code content, that is,
// whether it is not whitespace, a newline, a line continuation or a comment.
func (t Token) IsSignificant() bool {
	switch t.Type {
	case TokenType_Whitespace, TokenType_Newline, TokenType_ContinueLine,
		TokenType_CommentSingleLine, TokenType_CommentMultiLine:
		return false
	default:
		return true
	}
}
