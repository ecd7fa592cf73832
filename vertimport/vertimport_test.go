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

package vertimport

import (
	"context"
	"testing"

	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokens = [][3]string{
	{"котка", "котка", "Ncfsi"},
	{"котки", "котка", "Ncfpi"},
	{"котка", "котка", "Ncfsi"},
	{"води", "вода", "Ncfpi"},
	{"води", "водя", "Vpitf-r3s"},
	{",", ",", "Punct"},
	{"водя", "водя", "Vpitf-r1s"},
}

func collect(t *testing.T, maxNumErrors int) (*LexemeCollector, error) {
	lc := NewLexemeCollector(context.Background(), Args{MaxNumErrors: maxNumErrors})
	for i, tk := range testTokens {
		if err := lc.addToken(tk[0], tk[1], tk[2], i+1); err != nil {
			return lc, err
		}
	}
	return lc, nil
}

func TestCollectAndStore(t *testing.T) {
	lc, err := collect(t, 10)
	require.NoError(t, err)
	store := dictionary.NewStore()
	stats, err := lc.Store(store)
	assert.NoError(t, err)
	assert.Equal(t, 7, stats.NumTokens)
	assert.Equal(t, 1, stats.NumInvalidTokens)
	assert.Equal(t, 3, stats.NumLexemes)
	assert.Equal(t, 6, stats.NumEntries)

	lemmas := store.Lemmas("котка")
	require.Len(t, lemmas, 1)
	assert.Equal(t, "Ncfsi", lemmas[0].Tag())
	assert.Equal(t, grammar.MustParseType("53c"), lemmas[0].Label.Type())
	lx, err := store.LexemeFor(lemmas[0])
	require.NoError(t, err)
	require.Len(t, lx.Forms, 1)
	assert.Equal(t, "котки", lx.Forms[0].Word)

	lemmas = store.Lemmas("вода")
	require.Len(t, lemmas, 1)
	assert.Equal(t, "Ncfs", lemmas[0].Tag())

	lemmas = store.Lemmas("водя")
	require.Len(t, lemmas, 1)
	assert.Equal(t, "Vpitf-r1s", lemmas[0].Tag())
	assert.Equal(t, 2, len(store.FindLemmas("води", "")))
}

func TestStoreSkipsExistingLexemes(t *testing.T) {
	lc, err := collect(t, 10)
	require.NoError(t, err)
	store := dictionary.NewStore()
	_, err = lc.Store(store)
	require.NoError(t, err)

	lc, err = collect(t, 10)
	require.NoError(t, err)
	stats, err := lc.Store(store)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.NumDuplicates)
	assert.Equal(t, 0, stats.NumLexemes)
	assert.Equal(t, 6, store.TokenCount())
}

func TestTooManyErrors(t *testing.T) {
	_, err := collect(t, 0)
	assert.ErrorIs(t, err, ErrTooManyParsingErrors)
}

func TestCustomColumns(t *testing.T) {
	args := Args{Columns: &Columns{Word: 0, Lemma: 2, Tag: 1}}
	assert.Equal(t, 2, args.columns().Lemma)
	assert.Equal(t, DefaultColumns, Args{}.columns())
}

func TestEmptyWordToken(t *testing.T) {
	lc := NewLexemeCollector(context.Background(), Args{MaxNumErrors: 10})
	assert.NoError(t, lc.addToken("", "котка", "Ncfsi", 1))
	assert.NoError(t, lc.addToken("котки", "", "Ncfpi", 2))
	assert.NoError(t, lc.addToken("котки", "котка", "Ncfpi", 3))
	store := dictionary.NewStore()
	stats, err := lc.Store(store)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.NumInvalidTokens)
	assert.Equal(t, 1, stats.NumLexemes)
	assert.Len(t, store.FindExact("котки"), 1)
}
