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

// Package preprocessor turns raw C/C++ source text into directive-free code
// variants, one per feasible conditional-compilation configuration, without
// invoking a compiler or resolving build-system symbols.
//
// The pipeline runs in fixed stages: lexical cleaning (Read), formatting
// normalization, textual macro expansion (ExpandMacros), enumeration of the
// configurations implied by #ifdef/#ifndef/#if/#elif/#else/#endif nesting
// (Configurations), and per-configuration code selection (Code).
//
// Processing is deliberately best-effort rather than standard-conforming:
// macro bodies are substituted textually in a single forward pass, #if
// conditions are not evaluated as boolean expressions (bare identifiers and
// the literals 0 and 1 only), and #include directives are passed through
// untouched. Malformed input never fails the pipeline; every stage runs to
// the end of its input and produces some text.
package preprocessor

import (
	"io"
	"strings"
)

// Preprocess runs the whole pipeline on one source file and returns the
// materialized code of every discovered configuration, keyed by configuration.
// The baseline configuration has the empty key.
func Preprocess(r io.Reader) map[string]string {
	processed, configurations := Partition(r)

	result := make(map[string]string, len(configurations))
	for _, configuration := range configurations {
		result[configuration] = Code(processed, configuration)
	}
	return result
}

// Partition runs the pipeline up to configuration enumeration and returns the
// processed text together with the ordered configuration keys, letting the
// caller defer or parallelize the per-configuration selection.
func Partition(r io.Reader) (processed string, configurations []string) {
	processed = ExpandMacros(normalize(Read(r)))
	return processed, Configurations(processed)
}

// textLines splits processed text into lines the way the line-oriented walkers
// consume it: no trailing newline element, empty lines preserved.
func textLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		return lines[:n-1]
	}
	return lines
}
