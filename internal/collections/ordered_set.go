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
	"iter"
	"slices"
)

// OrderedSet is a set of comparable elements that remembers the order in which
// elements were first inserted. Re-inserting an element is a no-op and does not
// change its position.
type OrderedSet[T comparable] struct {
	seen  Set[T]
	elems []T
}

// NewOrderedSet creates a new OrderedSet containing the given elements, in the
// order they are listed.
func NewOrderedSet[T comparable](elems ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{seen: make(Set[T], len(elems))}
	return s.AddSlice(elems)
}

// Add inserts an element into the OrderedSet, unless it is already present.
// Returns the OrderedSet to allow chaining.
func (s *OrderedSet[T]) Add(elem T) *OrderedSet[T] {
	if !s.seen.Contains(elem) {
		s.seen.Add(elem)
		s.elems = append(s.elems, elem)
	}
	return s
}

// AddSlice inserts all elements from the given slice to the OrderedSet.
// Returns the OrderedSet to allow chaining.
func (s *OrderedSet[T]) AddSlice(elems []T) *OrderedSet[T] {
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// Contains checks whether an element exists in the OrderedSet.
func (s *OrderedSet[T]) Contains(elem T) bool {
	return s.seen.Contains(elem)
}

// Len returns the number of distinct elements in the OrderedSet.
func (s *OrderedSet[T]) Len() int {
	return len(s.elems)
}

// All returns a sequence containing all elements in first-insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return slices.Values(s.elems)
}

// Values returns a copy of the elements in first-insertion order.
func (s *OrderedSet[T]) Values() []T {
	return slices.Collect(s.All())
}
