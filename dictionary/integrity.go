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
	"fmt"
	"unicode"
)

type IssueKind string

const (
	IssueNonCyrillic    IssueKind = "non-cyrillic"
	IssueUnknownType    IssueKind = "unknown-type"
	IssueMissingLemma   IssueKind = "missing-lemma"
	IssueClassMismatch  IssueKind = "class-mismatch"
	IssueMalformedLabel IssueKind = "malformed-label"
)

type IntegrityIssue struct {
	EntryID int       `json:"entryId"`
	Word    string    `json:"word"`
	Kind    IssueKind `json:"kind"`
	Detail  string    `json:"detail"`
}

// isBgWord accepts Cyrillic letters and a hyphen
// (e.g. in compound forms like "най-добър")
func isBgWord(w string) bool {
	for _, r := range w {
		if r != '-' && !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}
	return true
}

// CheckIntegrity verifies all the entries and returns found issues
// ordered by entry IDs.
func (s *Store) CheckIntegrity() []IntegrityIssue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans := make([]IntegrityIssue, 0, 10)
	add := func(e *WordEntry, kind IssueKind, detail string) {
		ans = append(ans, IntegrityIssue{EntryID: e.ID, Word: e.Word, Kind: kind, Detail: detail})
	}
	s.byID.Ascend(func(e *WordEntry) bool {
		if !isBgWord(e.Word) {
			add(e, IssueNonCyrillic, "word contains non-Cyrillic characters")
		}
		class, err := e.Label.LexicalClass()
		if err != nil {
			add(e, IssueUnknownType, err.Error())
			return true
		}
		if e.Tag() == "" {
			add(e, IssueMalformedLabel, fmt.Sprintf("label %d cannot be expressed as a tag", uint32(e.Label)))
		}
		if e.IsLemma() {
			return true
		}
		lemma, ok := s.byID.Get(&WordEntry{ID: e.LemmaID})
		if !ok || !lemma.IsLemma() {
			add(e, IssueMissingLemma, fmt.Sprintf("lemma %d not found", e.LemmaID))
			return true
		}
		lemmaClass, err := lemma.Label.LexicalClass()
		if err == nil && lemmaClass != class {
			add(e, IssueClassMismatch, fmt.Sprintf("form is a %s, lemma is a %s", class, lemmaClass))
		}
		return true
	})
	return ans
}
