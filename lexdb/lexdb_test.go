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

package lexdb

import (
	"strings"
	"testing"

	"github.com/grigoriliev/lingua-bg/btb"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSQL(t *testing.T) {
	q := insertSQL("bg", 3)
	assert.True(t, strings.HasPrefix(q, "INSERT INTO bg_entry (id, word, lemma_id, label, gtype, tag, lex_class) VALUES "))
	assert.Equal(t, 3, strings.Count(q, "(?, ?, ?, ?, ?, ?, ?)"))
}

func TestEntryArgs(t *testing.T) {
	store := dictionary.NewStore()
	label, err := btb.LabelFromTag("Ncfsi", grammar.MustParseType("41"))
	require.NoError(t, err)
	lemma, err := store.Add("котка", label, dictionary.NoLemma)
	require.NoError(t, err)
	label2, err := btb.LabelFromTag("Ncfpi", grammar.MustParseType("41"))
	require.NoError(t, err)
	form, err := store.Add("котки", label2, lemma.ID)
	require.NoError(t, err)

	args := entryArgs(lemma)
	require.Len(t, args, numEntryColumns)
	assert.Nil(t, args[2])
	assert.Equal(t, "41", args[4])
	assert.Equal(t, "Ncfsi", args[5])
	assert.Equal(t, "noun", args[6])

	args = entryArgs(form)
	assert.Equal(t, lemma.ID, args[2])
	assert.Equal(t, uint32(label2), args[3])
}

func TestBuildSearchQuery(t *testing.T) {
	q, args := buildSearchQuery("bg", "води", SearchOptions{})
	assert.Contains(t, q, "FROM bg_entry AS e")
	assert.Contains(t, q, "SELECT f.lemma_id FROM bg_entry AS f WHERE f.word = ?")
	assert.Equal(t, []any{"води", "води"}, args)
	assert.NotContains(t, q, "LIMIT")

	q, args = buildSearchQuery(
		"bg",
		"води",
		SearchOptions{NoLemmas: true, LexClass: grammar.ClassVerb, TagPrefix: "Vp_", Limit: 10},
	)
	assert.NotContains(t, q, "lemma_id FROM")
	assert.Contains(t, q, "e.lex_class = ?")
	assert.True(t, strings.HasSuffix(q, "ORDER BY e.id LIMIT 10"))
	assert.Equal(t, []any{"води", "verb", `Vp\_%`}, args)
}

func TestSearchOptions(t *testing.T) {
	var opts SearchOptions
	for _, opt := range []SearchOption{
		SearchWithLexClass(grammar.ClassNoun),
		SearchWithTagPrefix("Nc"),
		SearchWithLimit(5),
		SearchWithoutLemmas(),
		SearchWithNoOp(),
	} {
		opt(&opts)
	}
	assert.Equal(t, SearchOptions{LexClass: grammar.ClassNoun, TagPrefix: "Nc", Limit: 5, NoLemmas: true}, opts)
}
