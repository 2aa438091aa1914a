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
	"slices"
	"strings"
)

// Code materializes the code belonging to one configuration of the processed
// text. Lines of unselected branches and all conditional directive lines are
// blanked rather than removed, so every line keeps its number. Selection is a
// pure function of its inputs; selecting several configurations of the same
// text can run concurrently.
func Code(processed, configuration string) string {
	var out strings.Builder
	out.Grow(len(processed))

	// matching: is the branch at each nesting level currently selected.
	// matched: has any branch of the chain at that level been taken yet,
	// which arbitrates later #elif and #else branches.
	var matching, matched []bool
	match := true

	for _, line := range textLines(processed) {
		symbol := conditionText(line, false)
		negated := conditionText(line, true)

		switch {
		case strings.HasPrefix(line, "#elif "):
			if len(matched) > 0 {
				if matched[len(matched)-1] {
					matching[len(matching)-1] = false
				} else if matchesConfiguration(configuration, parseCondition(symbol)) {
					matching[len(matching)-1] = true
					matched[len(matched)-1] = true
				}
			}
		case symbol != "":
			taken := matchesConfiguration(configuration, parseCondition(symbol))
			matching = append(matching, taken)
			matched = append(matched, taken)
		case negated != "":
			taken := !matchesConfiguration(configuration, parseCondition(negated))
			matching = append(matching, taken)
			matched = append(matched, taken)
		case line == "#else":
			if len(matched) > 0 {
				matching[len(matching)-1] = !matched[len(matched)-1]
			}
		case line == "#endif":
			if len(matched) > 0 {
				matched = matched[:len(matched)-1]
			}
			if len(matching) > 0 {
				matching = matching[:len(matching)-1]
			}
		}

		// Directive lines re-evaluate the overall selection state.
		if strings.HasPrefix(line, "#") {
			match = true
			for _, m := range matching {
				match = match && m
			}
		}
		if !match {
			line = ""
		}
		if strings.HasPrefix(line, "#if") || strings.HasPrefix(line, "#else") ||
			strings.HasPrefix(line, "#elif") || strings.HasPrefix(line, "#endif") {
			line = ""
		}

		out.WriteString(line)
		out.WriteByte('\n')
	}

	return out.String()
}

// matchesConfiguration reports whether a branch condition holds under the
// given configuration key. Forced conditions ignore the key entirely; the
// baseline empty key defines no symbols, so no symbol condition holds under
// it.
func matchesConfiguration(configuration string, cond condition) bool {
	switch cond.kind {
	case conditionForcedFalse:
		return false
	case conditionForcedTrue:
		return true
	}
	if configuration == "" {
		return false
	}
	return slices.Contains(strings.Split(configuration, ";"), cond.name)
}
