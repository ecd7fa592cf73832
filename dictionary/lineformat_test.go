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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	var buff bytes.Buffer
	require.NoError(t, s.Export(&buff))

	s2 := NewStore()
	n, err := s2.Import(&buff)
	assert.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, s.Size(), s2.Size())
	assert.Empty(t, s.MissingFrom(s2))
	assert.Empty(t, s2.MissingFrom(s))
	assert.Empty(t, s.Mismatched(s2))
	for lx := range s.AllLexemes() {
		other := s2.Lexemes(lx.Lemma.Word)
		require.Len(t, other, 1)
		assert.True(t, lx.SameAs(other[0]))
	}
}

func TestExportImportSkipsInvalidForm(t *testing.T) {
	s := NewStore()
	lemma := addLexeme(t, s, "41", "котка", "Ncfsi")
	_, err := s.Add("", mkLabel(t, "Ncfsi", "41"), lemma.ID)
	require.ErrorIs(t, err, ErrInvalidWord)
	_, err = s.Add("котки", mkLabel(t, "Ncfpi", "41"), lemma.ID)
	require.NoError(t, err)

	var buff bytes.Buffer
	require.NoError(t, s.Export(&buff))
	s2 := NewStore()
	n, err := s2.Import(&buff)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, s.TokenCount(), s2.TokenCount())
	assert.Empty(t, s.Mismatched(s2))
}

func TestExportFormat(t *testing.T) {
	s := NewStore()
	addLexeme(t, s, "41", "котка", "Ncfsi", "котки", "Ncfpi")
	var buff bytes.Buffer
	require.NoError(t, s.Export(&buff))
	lines := strings.Split(buff.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "котка", lines[1])
	assert.Equal(t, "котки", lines[3])
	assert.Equal(t, "", lines[5])
	for _, i := range []int{2, 4} {
		_, err := parseLabelLine(lines[i])
		assert.NoError(t, err)
	}
}

func TestImportMalformedLabel(t *testing.T) {
	s := NewStore()
	_, err := s.Import(strings.NewReader("\nкотка\nxyz\n"))
	assert.ErrorIs(t, err, ErrResourceFormat)
	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
}

func TestImportMissingLabel(t *testing.T) {
	s := NewStore()
	n, err := s.Import(strings.NewReader("\nкотка\n1234\nкотки"))
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, ErrResourceFormat)
}

func TestImportFormWithoutLemma(t *testing.T) {
	s := NewStore()
	_, err := s.Import(strings.NewReader("котка\n1234\n"))
	assert.ErrorIs(t, err, ErrResourceFormat)
	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Line)
}

func TestExportImportLemmas(t *testing.T) {
	s := newTestStore(t)
	var buff bytes.Buffer
	require.NoError(t, s.ExportLemmas(&buff))
	data := buff.String()

	s2 := NewStore()
	n, err := s2.ImportLemmas(strings.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, s2.LemmaCount())
	assert.Equal(t, 5, s2.TokenCount())

	// repeated import skips existing lemmas
	n, err = s2.ImportLemmas(strings.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 5, s2.TokenCount())
}

func TestImportLemmasMalformed(t *testing.T) {
	s := NewStore()
	n, err := s.ImportLemmas(strings.NewReader("котка\n-1\n"))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrResourceFormat)
	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Line)
}
