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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	testCases := []struct {
		input         string
		configuration string
		expected      string
	}{
		{
			// Baseline: the guarded block is blanked, the rest survives.
			input:         "#ifdef A\nx;\n#endif\ny;\n",
			configuration: "",
			expected:      "\n\n\ny;\n",
		},
		{
			input:         "#ifdef A\nx;\n#endif\ny;\n",
			configuration: "A",
			expected:      "\nx;\n\ny;\n",
		},
		{
			// The #else branch is selected exactly when the #ifdef is not.
			input:         "#ifdef A\nx;\n#else\ny;\n#endif\n",
			configuration: "",
			expected:      "\n\n\ny;\n\n",
		},
		{
			input:         "#ifdef A\nx;\n#else\ny;\n#endif\n",
			configuration: "A",
			expected:      "\nx;\n\n\n\n",
		},
		{
			// In an #elif chain at most one branch is selected.
			input:         "#ifdef A\na;\n#elif B\nb;\n#else\nc;\n#endif\n",
			configuration: "A",
			expected:      "\na;\n\n\n\n\n\n",
		},
		{
			input:         "#ifdef A\na;\n#elif B\nb;\n#else\nc;\n#endif\n",
			configuration: "B",
			expected:      "\n\n\nb;\n\n\n\n",
		},
		{
			input:         "#ifdef A\na;\n#elif B\nb;\n#else\nc;\n#endif\n",
			configuration: "",
			expected:      "\n\n\n\n\nc;\n\n",
		},
		{
			// "#if 0" code is excluded under every configuration.
			input:         "#if 0\nd;\n#endif\n",
			configuration: "",
			expected:      "\n\n\n",
		},
		{
			input:         "#if 0\nd;\n#endif\n",
			configuration: "X",
			expected:      "\n\n\n",
		},
		{
			input:         "#if 1\ne;\n#endif\n",
			configuration: "",
			expected:      "\ne;\n\n",
		},
		{
			// Nested blocks select only when every enclosing level does.
			input:         "#ifdef A\n#ifdef B\nboth;\n#endif\none;\n#endif\n",
			configuration: "A",
			expected:      "\n\n\n\none;\n\n",
		},
		{
			input:         "#ifdef A\n#ifdef B\nboth;\n#endif\none;\n#endif\n",
			configuration: "A;B",
			expected:      "\n\nboth;\n\none;\n\n",
		},
		{
			// An inner match cannot revive an unselected outer block.
			input:         "#ifdef A\n#ifdef B\nboth;\n#endif\none;\n#endif\n",
			configuration: "B",
			expected:      "\n\n\n\n\n\n",
		},
		{
			// #ifndef selects in the baseline and deselects when defined.
			input:         "#ifndef G\nfree;\n#endif\n",
			configuration: "",
			expected:      "\nfree;\n\n",
		},
		{
			input:         "#ifndef G\nfree;\n#endif\n",
			configuration: "G",
			expected:      "\n\n\n",
		},
		{
			// Non-conditional directives pass through.
			input:         "#include <a.h>\nx;\n",
			configuration: "",
			expected:      "#include <a.h>\nx;\n",
		},
		{
			// A stray #endif is ignored.
			input:         "x;\n#endif\ny;\n",
			configuration: "",
			expected:      "x;\n\ny;\n",
		},
		{
			// Only a bare "#endif" closes a block; trailing text keeps the
			// block open, though the line itself is still blanked.
			input:         "#ifdef A\n#endif junk\nx;\n",
			configuration: "",
			expected:      "\n\n\n",
		},
	}

	for _, tc := range testCases {
		result := Code(tc.input, tc.configuration)
		assert.Equal(t, tc.expected, result,
			"input: %q, configuration: %q", tc.input, tc.configuration)
	}
}

func TestCodeKeepsLineCount(t *testing.T) {
	inputs := []string{
		"#ifdef A\nx;\n#else\ny;\n#endif\n",
		"#if 0\na;\nb;\nc;\n#endif\n",
		"plain\ntext\n",
	}

	for _, input := range inputs {
		for _, configuration := range Configurations(input) {
			result := Code(input, configuration)
			assert.Equal(t,
				strings.Count(input, "\n"), strings.Count(result, "\n"),
				"input: %q, configuration: %q", input, configuration)
		}
	}
}

func TestCodeRepeatable(t *testing.T) {
	input := "#ifdef A\nx;\n#elif B\ny;\n#else\nz;\n#endif\n"

	for _, configuration := range Configurations(input) {
		assert.Equal(t,
			Code(input, configuration), Code(input, configuration),
			"configuration: %q", configuration)
	}
}
