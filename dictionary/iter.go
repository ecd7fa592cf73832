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
	"iter"
)

// AllLexemes iterates over all the lexemes in the order of their
// lemmas' IDs. The store is read-locked while the iteration is
// in progress so the loop body must not modify the store.
// Forms preceding the first lemma (which can only be produced by
// inserting forms with an unknown lemma) are skipped.
func (s *Store) AllLexemes() iter.Seq[Lexeme] {
	return func(yield func(Lexeme) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		var curr *Lexeme
		stopped := false
		s.byID.Ascend(func(e *WordEntry) bool {
			if e.IsLemma() {
				if curr != nil && !yield(*curr) {
					stopped = true
					return false
				}
				curr = &Lexeme{Lemma: e, Forms: make([]*WordEntry, 0, 10)}
				return true
			}
			if curr != nil {
				curr.Forms = append(curr.Forms, e)
			}
			return true
		})
		if !stopped && curr != nil {
			yield(*curr)
		}
	}
}

// AllLemmas iterates over all the lemmas ordered by their IDs.
// The same locking rules as in AllLexemes apply.
func (s *Store) AllLemmas() iter.Seq[*WordEntry] {
	return func(yield func(*WordEntry) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		s.byID.Ascend(func(e *WordEntry) bool {
			if e.IsLemma() {
				return yield(e)
			}
			return true
		})
	}
}

// AllEntries iterates over all the entries ordered by their IDs
func (s *Store) AllEntries() iter.Seq[*WordEntry] {
	return func(yield func(*WordEntry) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		s.byID.Ascend(func(e *WordEntry) bool {
			return yield(e)
		})
	}
}
