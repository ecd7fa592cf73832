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

import "slices"

// MissingFrom returns lexemes of other whose lemmas (compared by
// word and label) are not present in s.
func (s *Store) MissingFrom(other *Store) []Lexeme {
	ans := make([]Lexeme, 0, 20)
	if other == s {
		return ans
	}
	// other's lock must be released before s is locked
	otherLexemes := slices.Collect(other.AllLexemes())
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lx := range otherLexemes {
		if s.findLemmaLocked(lx.Lemma.Word, lx.Lemma.Label) == nil {
			ans = append(ans, lx)
		}
	}
	return ans
}

// Mismatched returns pairs of lexemes with the same lemma (word and label)
// but with different sets of forms.
func (s *Store) Mismatched(other *Store) []LexemePair {
	ans := make([]LexemePair, 0, 20)
	if other == s {
		return ans
	}
	// other's lock must be released before s is locked
	otherLexemes := slices.Collect(other.AllLexemes())
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lx := range otherLexemes {
		lemma := s.findLemmaLocked(lx.Lemma.Word, lx.Lemma.Label)
		if lemma == nil {
			continue
		}
		own := s.lexemeLocked(lemma)
		if !SameForms(own, lx) {
			ans = append(ans, LexemePair{Own: own, Other: lx})
		}
	}
	return ans
}
