// Copyright 2026 Grigor Iliev <grigor@grigoriliev.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// Histogram maps a measured value to the number of its occurrences
type Histogram map[int]int

// Keys returns the measured values in ascending order
func (h Histogram) Keys() []int {
	return sortedKeys(h)
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	ans := make([]K, 0, len(m))
	for k := range m {
		ans = append(ans, k)
	}
	slices.Sort(ans)
	return ans
}

// LemmaAmbiguity creates a histogram of the number of distinct
// lemmas a word (string) maps to.
func (s *Store) LemmaAmbiguity() Histogram {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans := make(Histogram)
	for word := range s.byWord {
		ans[len(s.findLemmasLocked(word, ""))]++
	}
	return ans
}

// WordAmbiguity creates a histogram of the number of entries
// sharing the same word (string).
func (s *Store) WordAmbiguity() Histogram {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans := make(Histogram)
	for _, entries := range s.byWord {
		ans[len(entries)]++
	}
	return ans
}

// WordsByAmbiguity returns groups of entries sharing the same
// word, where each group has exactly n entries. Groups are
// sorted by their words.
func (s *Store) WordsByAmbiguity(n int) [][]*WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words := make([]string, 0, 20)
	for word, entries := range s.byWord {
		if len(entries) == n {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	ans := make([][]*WordEntry, len(words))
	for i, w := range words {
		ans[i] = slices.Clone(s.byWord[w])
	}
	return ans
}

type Stats struct {
	Words   int `json:"words"`
	Entries int `json:"entries"`
	Lemmas  int `json:"lemmas"`
	Labels  int `json:"labels"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans := Stats{
		Words:   len(s.byWord),
		Entries: s.byID.Len(),
		Labels:  s.byLabel.Len(),
	}
	s.byID.Ascend(func(e *WordEntry) bool {
		if e.IsLemma() {
			ans.Lemmas++
		}
		return true
	})
	return ans
}
