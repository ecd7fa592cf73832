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

package resource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResource = `45
вода	Ncfsi
водата	Ncfsd
води	Ncfpi

котка	Ncfsi
котки	Ncfpi

150
водя	Vpitf-r1s
води	Vpitf-r3s
`

func TestReadLexemes(t *testing.T) {
	var blocks []LexemeBlock
	for chunk := range ReadLexemes(context.Background(), strings.NewReader(testResource)) {
		require.NoError(t, chunk.Error)
		blocks = append(blocks, chunk.Items...)
	}
	require.Len(t, blocks, 3)
	assert.Equal(t, grammar.MustParseType("45"), blocks[0].Type)
	assert.Len(t, blocks[0].Lines, 3)
	assert.Equal(t, 2, blocks[0].FirstLine())
	assert.Equal(t, grammar.MustParseType("45"), blocks[1].Type)
	assert.Equal(t, 6, blocks[1].FirstLine())
	assert.Equal(t, grammar.MustParseType("150"), blocks[2].Type)
	assert.Equal(t, "водя\tVpitf-r1s", blocks[2].Lines[0].Text)
}

func TestReadLexemesMissingHeader(t *testing.T) {
	var lastErr error
	for chunk := range ReadLexemes(context.Background(), strings.NewReader("вода\tNcfsi\n")) {
		lastErr = chunk.Error
	}
	assert.ErrorIs(t, lastErr, dictionary.ErrResourceFormat)
	var le *dictionary.LineError
	require.True(t, errors.As(lastErr, &le))
	assert.Equal(t, 1, le.Line)
}

func TestLoad(t *testing.T) {
	store := dictionary.NewStore()
	stats, err := Load(context.Background(), strings.NewReader(testResource), store)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.NumLexemes)
	assert.Equal(t, 7, stats.NumEntries)
	assert.Equal(t, 0, stats.NumErrors)
	assert.Equal(t, 3, store.LemmaCount())

	lxs := store.Lexemes("водя")
	require.Len(t, lxs, 1)
	require.Len(t, lxs[0].Forms, 1)
	assert.Equal(t, "Vpitf-r3s", lxs[0].Forms[0].Tag())
	assert.Equal(t, grammar.MustParseType("150"), lxs[0].Forms[0].Label.Type())
}

func TestLoadDuplicates(t *testing.T) {
	store := dictionary.NewStore()
	_, err := Load(context.Background(), strings.NewReader(testResource), store)
	require.NoError(t, err)
	stats, err := Load(context.Background(), strings.NewReader(testResource), store)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.NumDuplicates)
	assert.Equal(t, 3, stats.NumSkippedLexemes)
	assert.Equal(t, 0, stats.NumEntries)
	assert.Equal(t, 7, store.TokenCount())
}

const invalidResource = `45
вода	Ncfsi
водата	Vpitf-r1s
води

котка	Nxfsi
котки	Ncfpi

мишка	Ncfsi
`

func TestLoadRecoverableErrors(t *testing.T) {
	store := dictionary.NewStore()
	stats, err := Load(context.Background(), strings.NewReader(invalidResource), store)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.NumErrors)
	assert.Equal(t, 1, stats.NumSkippedLexemes)
	assert.Equal(t, 2, stats.NumLexemes)
	assert.Equal(t, 2, stats.NumEntries)
	assert.Empty(t, store.FindExact("котки"))
	assert.Len(t, store.FindExact("мишка"), 1)
}

func TestLoadEmptyWord(t *testing.T) {
	store := dictionary.NewStore()
	res := "41\nкотка\tNcfsi\n\tNcfpi\nкотки\tNcfpi\n"
	stats, err := Load(context.Background(), strings.NewReader(res), store)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.NumErrors)
	assert.Equal(t, 2, stats.NumEntries)
	assert.Equal(t, 2, store.TokenCount())

	_, err = Load(context.Background(), strings.NewReader(res), dictionary.NewStore(), LoadWithStrictMode())
	assert.ErrorIs(t, err, dictionary.ErrInvalidWord)
}

func TestLoadStrictMode(t *testing.T) {
	store := dictionary.NewStore()
	stats, err := Load(context.Background(), strings.NewReader(invalidResource), store, LoadWithStrictMode())
	assert.ErrorIs(t, err, ErrTooManyErrors)
	assert.ErrorIs(t, err, grammar.ErrLexicalClassMismatch)
	assert.Equal(t, 1, stats.NumErrors)
	var le *dictionary.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
}

func TestLoadMaxErrors(t *testing.T) {
	store := dictionary.NewStore()
	_, err := Load(context.Background(), strings.NewReader(invalidResource), store, LoadWithMaxErrors(1))
	assert.ErrorIs(t, err, ErrTooManyErrors)
	assert.ErrorIs(t, err, dictionary.ErrResourceFormat)

	store = dictionary.NewStore()
	_, err = Load(context.Background(), strings.NewReader(invalidResource), store, LoadWithMaxErrors(3))
	assert.NoError(t, err)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, strings.NewReader(testResource), dictionary.NewStore())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nouns.txt")
	require.NoError(t, os.WriteFile(path, []byte(testResource), 0644))
	store := dictionary.NewStore()
	stats, err := LoadFile(context.Background(), path, store)
	assert.NoError(t, err)
	assert.Equal(t, 7, stats.NumEntries)

	_, err = LoadFile(context.Background(), t.TempDir(), store)
	assert.Error(t, err)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	nouns := filepath.Join(dir, "nouns.txt")
	require.NoError(t, os.WriteFile(nouns, []byte(testResource), 0644))
	adjectives := filepath.Join(dir, "adjectives.txt")
	require.NoError(t, os.WriteFile(adjectives, []byte("78\nбял\tAmsi\nбялата\tAfsd\n"), 0644))
	store := dictionary.NewStore()
	stats, err := LoadFiles(context.Background(), []string{nouns, adjectives}, store)
	assert.NoError(t, err)
	assert.Equal(t, 4, stats.NumLexemes)
	assert.Equal(t, 9, stats.NumEntries)

	_, err = LoadFiles(context.Background(), []string{filepath.Join(dir, "missing.txt")}, store)
	assert.Error(t, err)
}
