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

package collections

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestFilterSlice(t *testing.T) {
	input := []string{"a.cc", "a.h", "b.cc", "notes.txt"}
	expected := []string{"a.cc", "b.cc"}

	result := FilterSlice(input, func(s string) bool {
		return strings.HasSuffix(s, ".cc")
	})

	if !slices.Equal(result, expected) {
		t.Errorf("FilterSlice: expected %v, got %v", expected, result)
	}
}

func TestFilterSliceEmptyResult(t *testing.T) {
	result := FilterSlice([]int{1, 3, 5}, func(i int) bool { return i%2 == 0 })

	if len(result) != 0 {
		t.Errorf("FilterSlice: expected empty result, got %v", result)
	}
}

func ExampleFilterSeq() {
	seq := FilterSeq(
		slices.Values([]int{1, 2, 3, 4}),
		func(x int) bool { return x > 2 },
	)
	fmt.Println(slices.Collect(seq))
	// Output: [3 4]
}
