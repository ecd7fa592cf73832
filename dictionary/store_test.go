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
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/grigoriliev/lingua-bg/btb"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkLabel(t *testing.T, tag, typ string) grammar.Label {
	l, err := btb.LabelFromTag(tag, grammar.MustParseType(typ))
	require.NoError(t, err)
	return l
}

// addLexeme inserts a lemma and its forms, each word is
// followed by its tag
func addLexeme(t *testing.T, s *Store, typ string, lemma, lemmaTag string, forms ...string) *WordEntry {
	le, err := s.Add(lemma, mkLabel(t, lemmaTag, typ), NoLemma)
	require.NoError(t, err)
	for i := 0; i+1 < len(forms); i += 2 {
		_, err := s.Add(forms[i], mkLabel(t, forms[i+1], typ), le.ID)
		require.NoError(t, err)
	}
	return le
}

// newTestStore creates a store with entries:
// вода(1) водата(2) води(3) | водя(4) води(5) водих(6) |
// котка(7) котки(8) | бял(9) бялата(10) | Иван(11)
func newTestStore(t *testing.T) *Store {
	s := NewStore()
	addLexeme(t, s, "45", "вода", "Ncfsi", "водата", "Ncfsd", "води", "Ncfpi")
	addLexeme(t, s, "150", "водя", "Vpitf-r1s", "води", "Vpitf-r3s", "водих", "Vpitf-o1s")
	addLexeme(t, s, "41", "котка", "Ncfsi", "котки", "Ncfpi")
	addLexeme(t, s, "78", "бял", "Amsi", "бялата", "Afsd")
	addLexeme(t, s, "193", "Иван", "Npmsi")
	return s
}

func ids(entries []*WordEntry) []int {
	ans := make([]int, len(entries))
	for i, e := range entries {
		ans[i] = e.ID
	}
	return ans
}

func TestStoreCounts(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, 10, s.Size())
	assert.Equal(t, 11, s.TokenCount())
	assert.Equal(t, 5, s.LemmaCount())
	st := s.Stats()
	assert.Equal(t, 10, st.Words)
	assert.Equal(t, 11, st.Entries)
	assert.Equal(t, 5, st.Lemmas)
}

func TestNewEntryIDsIncrease(t *testing.T) {
	s := NewStore()
	e1 := s.NewEntry("а", NoLemma, 0)
	e2 := s.NewEntry("б", NoLemma, 0)
	assert.Equal(t, 1, e1.ID)
	assert.Equal(t, 2, e2.ID)

	other := NewStore()
	assert.Equal(t, 1, other.NewEntry("в", NoLemma, 0).ID)
}

func TestInsertionOrderLexeme(t *testing.T) {
	s := newTestStore(t)
	lemma := s.Lemmas("водя")[0]
	lx, err := s.LexemeFor(lemma)
	assert.NoError(t, err)
	assert.Equal(t, []int{5, 6}, ids(lx.Forms))
	assert.Equal(t, "води", lx.Forms[0].Word)
	assert.Equal(t, "водих", lx.Forms[1].Word)

	lemma = s.Lemmas("Иван")[0]
	lx, err = s.LexemeFor(lemma)
	assert.NoError(t, err)
	assert.Empty(t, lx.Forms)
}

func TestDuplicateEntry(t *testing.T) {
	s := NewStore()
	label := mkLabel(t, "Ncfsi", "41")
	e1, err := s.Add("котка", label, NoLemma)
	assert.NoError(t, err)
	e2, err := s.Add("котка", label, NoLemma)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Equal(t, e1, e2)
	assert.Equal(t, 1, s.TokenCount())
	assert.Len(t, s.FindExact("котка"), 1)
}

func TestDuplicateCheckDisabled(t *testing.T) {
	s := NewStore()
	label := mkLabel(t, "Ncfsi", "41")
	_, err := s.Insert(s.NewEntry("котка", NoLemma, label), false)
	assert.NoError(t, err)
	_, err = s.Insert(s.NewEntry("котка", NoLemma, label), false)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.TokenCount())
	assert.Len(t, s.FindExact("котка"), 2)
}

func TestInsertRejectsInvalidWords(t *testing.T) {
	s := NewStore()
	lemma := addLexeme(t, s, "41", "котка", "Ncfsi")
	for _, w := range []string{"", "кот\nки", "котки\r"} {
		_, err := s.Add(w, mkLabel(t, "Ncfpi", "41"), lemma.ID)
		assert.ErrorIs(t, err, ErrInvalidWord, "word %q", w)
		_, err = s.Insert(s.NewEntry(w, lemma.ID, mkLabel(t, "Ncfpi", "41")), false)
		assert.ErrorIs(t, err, ErrInvalidWord, "word %q", w)
	}
	assert.Equal(t, 1, s.TokenCount())
	assert.Equal(t, 1, s.Size())
}

func TestInsertReusedID(t *testing.T) {
	s := NewStore()
	e := s.NewEntry("котка", NoLemma, mkLabel(t, "Ncfsi", "41"))
	_, err := s.Insert(e, false)
	assert.NoError(t, err)
	_, err = s.Insert(e, false)
	assert.ErrorIs(t, err, ErrCorruptIndex)
	assert.Equal(t, 1, s.TokenCount())
}

func TestInsertForeignEntryAdvancesAllocator(t *testing.T) {
	s := NewStore()
	_, err := s.Insert(&WordEntry{ID: 10, Word: "котка", LemmaID: NoLemma, Label: mkLabel(t, "Ncfsi", "41")}, true)
	assert.NoError(t, err)
	assert.Equal(t, 11, s.NewEntry("котки", 10, 0).ID)
}

func TestInsertDetectsDisagreeingIndexes(t *testing.T) {
	s := NewStore()
	label := mkLabel(t, "Ncfsi", "41")
	e, err := s.Add("котка", label, NoLemma)
	require.NoError(t, err)
	// simulate a broken label index
	bucket, ok := s.byLabel.Get(&labelBucket{label: label})
	require.True(t, ok)
	bucket.entries = nil
	_, err = s.Add("котка", label, NoLemma)
	assert.ErrorIs(t, err, ErrCorruptIndex)
	assert.Equal(t, []*WordEntry{e}, s.FindExact("котка"))
}

func TestLexemeForErrors(t *testing.T) {
	s := newTestStore(t)
	form := s.FindExact("водата")[0]
	_, err := s.LexemeFor(form)
	assert.ErrorIs(t, err, ErrNotALemma)

	other := NewStore()
	foreign, err := other.Add("мишка", mkLabel(t, "Ncfsi", "41"), NoLemma)
	require.NoError(t, err)
	_, err = s.LexemeFor(foreign)
	assert.ErrorIs(t, err, ErrUnknownLemma)
}

func TestFindByClassRange(t *testing.T) {
	s := newTestStore(t)
	ans := s.Find("", false, grammar.ClassVerb, grammar.NewQuery())
	assert.ElementsMatch(t, []int{4, 5, 6}, ids(ans))
	for _, e := range ans {
		code := e.Label.Type().Code()
		assert.True(t, code >= 142 && code <= 187)
	}
}

func TestFindNounsIncludesProperNouns(t *testing.T) {
	s := newTestStore(t)
	ans := s.Find("", false, grammar.ClassNoun, grammar.NewQuery())
	assert.ElementsMatch(t, []int{1, 2, 3, 7, 8, 11}, ids(ans))
}

func TestFindWithQuery(t *testing.T) {
	s := newTestStore(t)
	ans := s.Find("", false, grammar.ClassNone, grammar.NewQuery(grammar.QueryWithGender(grammar.GenderFeminine)))
	assert.ElementsMatch(t, []int{1, 2, 3, 7, 8, 10}, ids(ans))

	ans = s.Find("вод", false, grammar.ClassNoun, grammar.NewQuery(grammar.QueryWithNumber(grammar.NumberPlural)))
	assert.Equal(t, []int{3}, ids(ans))
}

func TestFindExactMatch(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []int{3, 5}, ids(s.Find("води", true, grammar.ClassNone, grammar.NewQuery())))
	assert.Equal(t, []int{5}, ids(s.Find("води", true, grammar.ClassVerb, grammar.NewQuery())))
	assert.Empty(t, s.Find("води", true, grammar.ClassAdjective, grammar.NewQuery()))
}

func TestSimpleScans(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []int{3, 5}, ids(s.FindExact("води")))
	assert.Empty(t, s.FindExact("куче"))
	assert.Equal(t, []int{7, 8}, ids(s.FindContains("кот")))
	assert.Equal(t, []int{2, 10}, ids(s.FindEndsWith("та")))
}

func TestFindLemmas(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []int{1, 4}, ids(s.FindLemmas("води", "")))
	assert.Equal(t, []int{1}, ids(s.FindLemmas("води", "N")))
	assert.Equal(t, []int{4}, ids(s.FindLemmas("води", "V")))
	assert.Equal(t, []int{1}, ids(s.FindLemmas("вода", "")))
	assert.Empty(t, s.FindLemmas("куче", ""))
}

func TestFindLemma(t *testing.T) {
	s := newTestStore(t)
	e := s.FindLemma("вода", mkLabel(t, "Ncfsi", "45"))
	require.NotNil(t, e)
	assert.Equal(t, 1, e.ID)
	assert.Nil(t, s.FindLemma("вода", mkLabel(t, "Ncfsd", "45")))
	assert.Nil(t, s.FindLemma("водата", mkLabel(t, "Ncfsd", "45")))
}

func TestLexemesOfWord(t *testing.T) {
	s := newTestStore(t)
	lxs := s.Lexemes("вода")
	require.Len(t, lxs, 1)
	assert.Equal(t, []int{2, 3}, ids(lxs[0].Forms))
	assert.Empty(t, s.Lexemes("води"))
}

func TestWordsByType(t *testing.T) {
	s := newTestStore(t)
	assert.ElementsMatch(t, []int{4, 5, 6}, ids(s.WordsByType(grammar.MustParseType("150"))))
	assert.ElementsMatch(t, []int{1, 2, 3}, ids(s.WordsByType(grammar.MustParseType("45"))))
	assert.Empty(t, s.WordsByType(grammar.MustParseType("45a")))
}

func TestEntryByID(t *testing.T) {
	s := newTestStore(t)
	e, ok := s.EntryByID(9)
	assert.True(t, ok)
	assert.Equal(t, "бял", e.Word)
	_, ok = s.EntryByID(100)
	assert.False(t, ok)
}

func TestAmbiguity(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, Histogram{1: 9, 2: 1}, s.WordAmbiguity())
	assert.Equal(t, Histogram{1: 9, 2: 1}, s.LemmaAmbiguity())
	assert.Equal(t, []int{1, 2}, s.WordAmbiguity().Keys())
	groups := s.WordsByAmbiguity(2)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{3, 5}, ids(groups[0]))
}

func TestAllLexemesRestartable(t *testing.T) {
	s := newTestStore(t)
	collect := func() []int {
		ans := make([]int, 0, 5)
		for lx := range s.AllLexemes() {
			ans = append(ans, lx.Lemma.ID)
		}
		return ans
	}
	assert.Equal(t, []int{1, 4, 7, 9, 11}, collect())
	assert.Equal(t, []int{1, 4, 7, 9, 11}, collect())

	var first []int
	for lx := range s.AllLexemes() {
		first = append(first, ids(lx.Forms)...)
		break
	}
	assert.Equal(t, []int{2, 3}, first)
}

func TestAllLemmas(t *testing.T) {
	s := newTestStore(t)
	lemmas := slices.Collect(s.AllLemmas())
	assert.Equal(t, []int{1, 4, 7, 9, 11}, ids(lemmas))
	// lock must be released after the iteration
	_, err := s.Add("куче", mkLabel(t, "Ncnsi", "60"), NoLemma)
	assert.NoError(t, err)
}

func TestMissingAndMismatched(t *testing.T) {
	s1 := NewStore()
	addLexeme(t, s1, "45", "вода", "Ncfsi", "водата", "Ncfsd", "води", "Ncfpi")
	addLexeme(t, s1, "41", "котка", "Ncfsi", "котки", "Ncfpi")

	s2 := NewStore()
	addLexeme(t, s2, "41", "котка", "Ncfsi", "котки", "Ncfpi")
	addLexeme(t, s2, "45", "вода", "Ncfsi", "води", "Ncfpi", "водата", "Ncfsd")
	addLexeme(t, s2, "78", "бял", "Amsi")

	missing := s1.MissingFrom(s2)
	require.Len(t, missing, 1)
	assert.Equal(t, "бял", missing[0].Lemma.Word)
	assert.Empty(t, s1.Mismatched(s2))

	s3 := NewStore()
	addLexeme(t, s3, "45", "вода", "Ncfsi", "водата", "Ncfsd")
	pairs := s1.Mismatched(s3)
	require.Len(t, pairs, 1)
	assert.Len(t, pairs[0].Own.Forms, 2)
	assert.Len(t, pairs[0].Other.Forms, 1)

	assert.Empty(t, s1.MissingFrom(s1))
}

func TestCompareWithConcurrentWriters(t *testing.T) {
	s1 := newTestStore(t)
	s2 := newTestStore(t)
	label := mkLabel(t, "Ncfsi", "45")
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s1.MissingFrom(s2)
				s1.Mismatched(s2)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s2.MissingFrom(s1)
				s2.Mismatched(s1)
			}
		}()
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s1.Add(fmt.Sprintf("вода%d-%d", i, j), label, NoLemma)
				s2.Add(fmt.Sprintf("вода%d-%d", i, j), label, NoLemma)
			}
		}(i)
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("comparing stores blocked")
	}
	assert.Empty(t, s1.MissingFrom(s2))
	assert.Empty(t, s1.Mismatched(s2))
}

func TestLexemeSameAs(t *testing.T) {
	s1 := NewStore()
	addLexeme(t, s1, "45", "вода", "Ncfsi", "водата", "Ncfsd", "води", "Ncfpi")
	s2 := NewStore()
	addLexeme(t, s2, "41", "котка", "Ncfsi")
	addLexeme(t, s2, "45", "вода", "Ncfsi", "води", "Ncfpi", "водата", "Ncfsd")
	lx1 := s1.Lexemes("вода")[0]
	lx2 := s2.Lexemes("вода")[0]
	assert.True(t, lx1.SameAs(lx2))
	assert.True(t, SameForms(lx1, lx2))
	assert.False(t, lx1.SameAs(s2.Lexemes("котка")[0]))
}

func TestCheckIntegrity(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.CheckIntegrity())

	_, err := s.Add("cat", mkLabel(t, "Ncfsi", "41"), NoLemma)
	require.NoError(t, err)
	_, err = s.Add("котак", mkLabel(t, "Ncmsi", "12"), 999)
	require.NoError(t, err)
	_, err = s.Add("котешка", mkLabel(t, "Afsi", "78"), 7)
	require.NoError(t, err)

	issues := s.CheckIntegrity()
	require.Len(t, issues, 3)
	assert.Equal(t, IssueNonCyrillic, issues[0].Kind)
	assert.Equal(t, "cat", issues[0].Word)
	assert.Equal(t, IssueMissingLemma, issues[1].Kind)
	assert.Equal(t, IssueClassMismatch, issues[2].Kind)
}

func TestLineErrorUnwrap(t *testing.T) {
	err := error(NewLineError(3, ErrResourceFormat))
	assert.ErrorIs(t, err, ErrResourceFormat)
	var le *LineError
	assert.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
}
