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

	"github.com/grigoriliev/lingua-bg/btb"
	"github.com/grigoriliev/lingua-bg/grammar"
	"golang.org/x/text/message"
)

// NoLemma is the LemmaID of entries which are lemmas themselves
const NoLemma = -1

// WordEntry is a single word form (or a lemma) along with its
// grammatical label. Entries are created by a Store and must not
// be modified once inserted.
type WordEntry struct {
	ID      int           `json:"id"`
	Word    string        `json:"word"`
	LemmaID int           `json:"lemmaId"`
	Label   grammar.Label `json:"label"`
}

func (e *WordEntry) IsLemma() bool {
	return e.LemmaID == NoLemma
}

// SameAs compares entries by their word and label,
// i.e. it ignores IDs so it can be used to compare
// entries of different stores.
func (e *WordEntry) SameAs(other *WordEntry) bool {
	return e.Word == other.Word && e.Label == other.Label
}

// Tag returns the BTB-TS tag of the entry or an empty string
// if the label cannot be expressed as a tag.
func (e *WordEntry) Tag() string {
	return btb.TagOf(e.Label)
}

func (e *WordEntry) Describe(p *message.Printer) string {
	return grammar.Describe(p, e.Label, e.IsLemma())
}

func (e *WordEntry) String() string {
	return fmt.Sprintf("%s [%d, %s, %s]", e.Word, e.ID, e.Label.Type(), e.Tag())
}

// Lexeme is a lemma with all its forms in their insertion order
type Lexeme struct {
	Lemma *WordEntry   `json:"lemma"`
	Forms []*WordEntry `json:"forms"`
}

// SameAs tests whether both lexemes have the same lemma and
// the same set of forms (regardless of their order).
func (lx Lexeme) SameAs(other Lexeme) bool {
	return lx.Lemma.SameAs(other.Lemma) && SameForms(lx, other)
}

// Size returns number of entries including the lemma
func (lx Lexeme) Size() int {
	return len(lx.Forms) + 1
}

// SameForms compares the sets of forms of two lexemes. Forms are
// compared by their words and labels. Lexemes are expected to
// contain no duplicate forms.
func SameForms(l1, l2 Lexeme) bool {
	if len(l1.Forms) != len(l2.Forms) {
		return false
	}
	for _, f1 := range l1.Forms {
		found := false
		for _, f2 := range l2.Forms {
			if f1.SameAs(f2) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// LexemePair is a result of a comparison of two stores
type LexemePair struct {
	Own   Lexeme `json:"own"`
	Other Lexeme `json:"other"`
}
