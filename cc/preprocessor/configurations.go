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

	"github.com/EngFlow/cfgscan/internal/collections"
)

type conditionKind int

const (
	// Condition on a named preprocessor symbol, as in "#ifdef NAME".
	conditionSymbol conditionKind = iota
	// Unconditionally taken branch, as in "#if 1".
	conditionForcedTrue
	// Unconditionally dead branch, as in "#if 0".
	conditionForcedFalse
)

// condition is one entry of the conditional-compilation stack. The literals
// "0" and "1" get their own kinds, so a symbol literally named "0" or "1"
// cannot be confused with them.
type condition struct {
	kind conditionKind
	name string
}

func parseCondition(raw string) condition {
	switch raw {
	case "0":
		return condition{kind: conditionForcedFalse}
	case "1":
		return condition{kind: conditionForcedTrue}
	default:
		return condition{kind: conditionSymbol, name: raw}
	}
}

// flipped returns the condition describing the "#else" branch of this one.
// A symbol branch flips to forced-true, since the else branch is reachable
// in the baseline where the symbol is undefined.
func (c condition) flipped() condition {
	if c.kind == conditionForcedTrue {
		return condition{kind: conditionForcedFalse}
	}
	return condition{kind: conditionForcedTrue}
}

// conditionText extracts the condition of a conditional directive line. With
// negated=false it recognizes "#ifdef", "#if" and "#elif" lines, with
// negated=true "#ifndef" lines; any other line yields an empty string. The
// directive word is stripped and all remaining spaces removed, so
// "#ifdef  NAME " yields "NAME".
func conditionText(line string, negated bool) string {
	if negated {
		if !strings.HasPrefix(line, "#ifndef ") {
			return ""
		}
	} else {
		if !strings.HasPrefix(line, "#ifdef ") &&
			!strings.HasPrefix(line, "#if ") &&
			!strings.HasPrefix(line, "#elif ") {
			return ""
		}
	}
	rest := line[strings.Index(line, " "):]
	return strings.ReplaceAll(rest, " ", "")
}

// configurationKey joins the symbol names of the stack bottom-to-top with
// ";". Forced-true entries contribute nothing. A forced-false entry anywhere
// makes the branch infeasible and no key is produced; reachable prefixes were
// already recorded when their own entries were pushed.
func configurationKey(stack []condition) (string, bool) {
	var names []string
	for _, cond := range stack {
		switch cond.kind {
		case conditionForcedFalse:
			return "", false
		case conditionForcedTrue:
			continue
		default:
			names = append(names, cond.name)
		}
	}
	return strings.Join(names, ";"), true
}

// Configurations walks the processed text and returns every distinct
// configuration key implied by its conditional directives, in first-seen
// order. The baseline empty key always comes first.
func Configurations(processed string) []string {
	keys := collections.NewOrderedSet("")
	var stack []condition

	for _, line := range textLines(processed) {
		raw := conditionText(line, false) + conditionText(line, true)
		if raw != "" {
			// An #elif replaces the previous branch of its chain instead of
			// nesting below it.
			if len(stack) > 0 && strings.HasPrefix(line, "#elif ") {
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, parseCondition(raw))

			if key, feasible := configurationKey(stack); feasible {
				keys.Add(key)
			}
		}

		if strings.HasPrefix(line, "#else") && len(stack) > 0 {
			stack[len(stack)-1] = stack[len(stack)-1].flipped()
		}
		if strings.HasPrefix(line, "#endif") && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}

	return keys.Values()
}
