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

// Package dictionary provides an in-memory morphological lexicon
// with three synchronized indexes (by word, by label and by entry ID).
package dictionary

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/btree"
	"github.com/grigoriliev/lingua-bg/btb"
	"github.com/grigoriliev/lingua-bg/grammar"
)

const (
	btreeDegree = 32
)

// labelBucket holds all the entries sharing the same label
type labelBucket struct {
	label   grammar.Label
	entries []*WordEntry
}

func bucketLess(a, b *labelBucket) bool {
	return a.label < b.label
}

func entryLess(a, b *WordEntry) bool {
	return a.ID < b.ID
}

// insertSorted keeps the slice ordered by entry ID. Entries usually
// come with increasing IDs so the common path is a plain append.
func insertSorted(entries []*WordEntry, e *WordEntry) []*WordEntry {
	if len(entries) == 0 || entries[len(entries)-1].ID < e.ID {
		return append(entries, e)
	}
	idx, _ := slices.BinarySearchFunc(entries, e.ID, func(x *WordEntry, id int) int {
		return x.ID - id
	})
	return slices.Insert(entries, idx, e)
}

// Store is a dictionary of word entries. It allows a single writer
// and any number of concurrent readers.
//
// Forms of a lexeme are identified by their position in the ID order
// (i.e. they follow their lemma), so a lemma must be inserted first
// and then all its forms before any other lexeme is inserted.
type Store struct {
	mu      sync.RWMutex
	nextID  int
	byWord  map[string][]*WordEntry
	byLabel *btree.BTreeG[*labelBucket]
	byID    *btree.BTreeG[*WordEntry]

	// origin is set for stores loaded from a snapshot
	origin *SnapshotHeader
}

func NewStore() *Store {
	return &Store{
		nextID:  1,
		byWord:  make(map[string][]*WordEntry),
		byLabel: btree.NewG[*labelBucket](btreeDegree, bucketLess),
		byID:    btree.NewG[*WordEntry](btreeDegree, entryLess),
	}
}

// NewEntry creates a new entry with a unique ID. The entry is not
// inserted into the store.
func (s *Store) NewEntry(word string, lemmaID int, label grammar.Label) *WordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newEntryLocked(word, lemmaID, label)
}

func (s *Store) newEntryLocked(word string, lemmaID int, label grammar.Label) *WordEntry {
	e := &WordEntry{ID: s.nextID, Word: word, LemmaID: lemmaID, Label: label}
	s.nextID++
	return e
}

// Insert adds the entry to all the indexes. With duplicateCheck
// enabled, an entry with the same word, lemma ID and label as an
// already stored one is rejected with ErrDuplicateEntry (the stored
// entry is returned along with the error).
// In case the indexes disagree on the duplicity, ErrCorruptIndex
// is returned and nothing is changed. Words rejected by CheckWord
// yield ErrInvalidWord.
func (s *Store) Insert(e *WordEntry, duplicateCheck bool) (*WordEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(e, duplicateCheck)
}

func (s *Store) insertLocked(e *WordEntry, duplicateCheck bool) (*WordEntry, error) {
	if err := CheckWord(e.Word); err != nil {
		return nil, err
	}
	if _, ok := s.byID.Get(e); ok {
		return nil, fmt.Errorf("%w: entry ID %d already used", ErrCorruptIndex, e.ID)
	}
	bucket, hasBucket := s.byLabel.Get(&labelBucket{label: e.Label})
	if duplicateCheck {
		var wordDup, labelDup *WordEntry
		for _, x := range s.byWord[e.Word] {
			if x.LemmaID == e.LemmaID && x.Label == e.Label {
				wordDup = x
				break
			}
		}
		if hasBucket {
			for _, x := range bucket.entries {
				if x.LemmaID == e.LemmaID && x.Word == e.Word {
					labelDup = x
					break
				}
			}
		}
		if (wordDup == nil) != (labelDup == nil) {
			return nil, fmt.Errorf(
				"%w: word and label indexes disagree on entry %s", ErrCorruptIndex, e)
		}
		if wordDup != nil {
			return wordDup, ErrDuplicateEntry
		}
	}
	if !hasBucket {
		bucket = &labelBucket{label: e.Label}
		s.byLabel.ReplaceOrInsert(bucket)
	}
	bucket.entries = insertSorted(bucket.entries, e)
	s.byWord[e.Word] = insertSorted(s.byWord[e.Word], e)
	s.byID.ReplaceOrInsert(e)
	if e.ID >= s.nextID {
		s.nextID = e.ID + 1
	}
	return e, nil
}

// Add creates and inserts a new entry with the duplicate check enabled
func (s *Store) Add(word string, label grammar.Label, lemmaID int) (*WordEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.newEntryLocked(word, lemmaID, label)
	return s.insertLocked(e, true)
}

// Size returns number of distinct words (strings) in the store
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byWord)
}

// TokenCount returns number of all the entries
func (s *Store) TokenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID.Len()
}

func (s *Store) LemmaCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ans int
	for _, entries := range s.byWord {
		for _, e := range entries {
			if e.IsLemma() {
				ans++
			}
		}
	}
	return ans
}

func (s *Store) EntryByID(id int) (*WordEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID.Get(&WordEntry{ID: id})
}

// FindExact returns all the entries of the word ordered by their IDs
func (s *Store) FindExact(word string) []*WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byWord[word])
}

func (s *Store) scanByID(match func(e *WordEntry) bool) []*WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans := make([]*WordEntry, 0, 50)
	s.byID.Ascend(func(e *WordEntry) bool {
		if match(e) {
			ans = append(ans, e)
		}
		return true
	})
	return ans
}

// FindContains returns all the entries with words containing sub
func (s *Store) FindContains(sub string) []*WordEntry {
	return s.scanByID(func(e *WordEntry) bool {
		return strings.Contains(e.Word, sub)
	})
}

// FindEndsWith returns all the entries with words ending with suffix
func (s *Store) FindEndsWith(suffix string) []*WordEntry {
	return s.scanByID(func(e *WordEntry) bool {
		return strings.HasSuffix(e.Word, suffix)
	})
}

// ascendRange calls fn for each bucket with a label within r
func (s *Store) ascendRange(r grammar.LabelRange, fn func(b *labelBucket) bool) {
	s.byLabel.AscendGreaterOrEqual(
		&labelBucket{label: r.First},
		func(b *labelBucket) bool {
			if b.label > r.Last {
				return false
			}
			return fn(b)
		},
	)
}

// Find searches for entries matching the query q. With exactMatch, the
// entry's word must be equal to word, otherwise it must contain it (so an
// empty word matches everything). If class is set (i.e. not ClassNone), only
// entries of the lexical class are searched.
// Results of a non-exact search are ordered by label and ID.
func (s *Store) Find(word string, exactMatch bool, class grammar.LexicalClass, q grammar.Query) []*WordEntry {
	mask, value := q.Compile()
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans := make([]*WordEntry, 0, 50)
	if exactMatch {
		for _, e := range s.byWord[word] {
			if class != grammar.ClassNone {
				if ec, err := e.Label.LexicalClass(); err != nil || ec != class {
					continue
				}
			}
			if e.Label&mask == value {
				ans = append(ans, e)
			}
		}
		return ans
	}
	collect := func(b *labelBucket) bool {
		if b.label&mask != value {
			return true
		}
		for _, e := range b.entries {
			if strings.Contains(e.Word, word) {
				ans = append(ans, e)
			}
		}
		return true
	}
	if class == grammar.ClassNone {
		s.byLabel.Ascend(collect)
		return ans
	}
	for _, r := range grammar.LabelRanges(class) {
		s.ascendRange(r, collect)
	}
	return ans
}

// WordsByType returns all the entries of the grammatical type t
// ordered by label and ID.
func (s *Store) WordsByType(t grammar.Type) []*WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans := make([]*WordEntry, 0, 50)
	s.ascendRange(t.LabelRange(), func(b *labelBucket) bool {
		ans = append(ans, b.entries...)
		return true
	})
	return ans
}

// FindLemma returns a lemma with the word and the label or nil
// if there is no such lemma.
func (s *Store) FindLemma(word string, label grammar.Label) *WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLemmaLocked(word, label)
}

func (s *Store) findLemmaLocked(word string, label grammar.Label) *WordEntry {
	for _, e := range s.byWord[word] {
		if e.IsLemma() && e.Label == label {
			return e
		}
	}
	return nil
}

// FindLemmas returns distinct lemmas of all the entries of the word.
// If tag is not empty, only entries with a tag compatible with it
// (see btb.DifferentTags) are considered.
func (s *Store) FindLemmas(word string, tag string) []*WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLemmasLocked(word, tag)
}

func (s *Store) findLemmasLocked(word string, tag string) []*WordEntry {
	ans := make([]*WordEntry, 0, 5)
	for _, e := range s.byWord[word] {
		if tag != "" && btb.DifferentTags(tag, e.Tag()) {
			continue
		}
		lemmaID := e.LemmaID
		if e.IsLemma() {
			lemmaID = e.ID
		}
		if slices.ContainsFunc(ans, func(x *WordEntry) bool { return x.ID == lemmaID }) {
			continue
		}
		if e.IsLemma() {
			ans = append(ans, e)

		} else if lemma, ok := s.byID.Get(&WordEntry{ID: lemmaID}); ok {
			ans = append(ans, lemma)
		}
	}
	return ans
}

// Lemmas returns entries of the word which are lemmas
func (s *Store) Lemmas(word string) []*WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lemmasLocked(word)
}

func (s *Store) lemmasLocked(word string) []*WordEntry {
	ans := make([]*WordEntry, 0, 3)
	for _, e := range s.byWord[word] {
		if e.IsLemma() {
			ans = append(ans, e)
		}
	}
	return ans
}

// Lexemes returns lexemes of all the lemmas spelled as word
func (s *Store) Lexemes(word string) []Lexeme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lemmas := s.lemmasLocked(word)
	ans := make([]Lexeme, len(lemmas))
	for i, lemma := range lemmas {
		ans[i] = s.lexemeLocked(lemma)
	}
	return ans
}

// LexemeFor reconstructs the lexeme of the lemma. The lemma
// must be an entry of this store.
func (s *Store) LexemeFor(lemma *WordEntry) (Lexeme, error) {
	if !lemma.IsLemma() {
		return Lexeme{}, fmt.Errorf("%w: %s", ErrNotALemma, lemma)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.byID.Get(lemma)
	if !ok || *stored != *lemma {
		return Lexeme{}, fmt.Errorf("%w: %s", ErrUnknownLemma, lemma)
	}
	return s.lexemeLocked(stored), nil
}

// lexemeLocked collects entries following the lemma
// up to the next lemma
func (s *Store) lexemeLocked(lemma *WordEntry) Lexeme {
	ans := Lexeme{Lemma: lemma, Forms: make([]*WordEntry, 0, 10)}
	s.byID.AscendGreaterOrEqual(&WordEntry{ID: lemma.ID + 1}, func(e *WordEntry) bool {
		if e.IsLemma() {
			return false
		}
		ans.Forms = append(ans.Forms, e)
		return true
	})
	return ans
}
