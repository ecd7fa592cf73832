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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

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

func prepareSnapshot(t *testing.T) (string, string) {
	dir := t.TempDir()
	res := filepath.Join(dir, "nouns.txt")
	require.NoError(t, os.WriteFile(res, []byte(testResource), 0644))
	snap := filepath.Join(dir, "lexicon.snap")
	require.NoError(t, runLoad(context.Background(), snap, []string{res}, false, -1))
	return dir, snap
}

func TestLoadExportImport(t *testing.T) {
	dir, snap := prepareSnapshot(t)
	out := filepath.Join(dir, "lexicon.txt")
	require.NoError(t, runExport(snap, out, false))
	snap2 := filepath.Join(dir, "lexicon2.snap")
	require.NoError(t, runImport(snap2, out, false, false))

	var buff bytes.Buffer
	require.NoError(t, runCompare(&buff, snap, snap2))
	assert.Contains(t, buff.String(), "lexemes missing in "+snap+": 0")
	assert.Contains(t, buff.String(), "lexemes missing in "+snap2+": 0")
	assert.Contains(t, buff.String(), "lexemes with different forms: 0")
}

func TestLoadAppend(t *testing.T) {
	dir, snap := prepareSnapshot(t)
	res := filepath.Join(dir, "adjectives.txt")
	require.NoError(t, os.WriteFile(res, []byte("78\nбял\tAmsi\nбялата\tAfsd\n"), 0644))
	require.NoError(t, runLoad(context.Background(), snap, []string{res}, true, -1))
	var buff bytes.Buffer
	require.NoError(t, runStats(&buff, snap, 0))
	assert.Contains(t, buff.String(), "entries: 9\n")
}

func TestStats(t *testing.T) {
	_, snap := prepareSnapshot(t)
	var buff bytes.Buffer
	require.NoError(t, runStats(&buff, snap, 2))
	assert.Contains(t, buff.String(), "entries: 7\n")
	assert.Contains(t, buff.String(), "lemmas: 3\n")
	assert.Contains(t, buff.String(), "words with 2 entries\nводи")
}

func TestCheck(t *testing.T) {
	_, snap := prepareSnapshot(t)
	var buff bytes.Buffer
	numIssues, err := runCheck(&buff, snap)
	require.NoError(t, err)
	assert.Equal(t, 0, numIssues)
	assert.Empty(t, buff.String())
}

func TestDump(t *testing.T) {
	_, snap := prepareSnapshot(t)
	var buff bytes.Buffer
	require.NoError(t, runDump(&buff, snap, "вода"))
	assert.Contains(t, buff.String(), "водата")
}

func TestDBExportRequiresConf(t *testing.T) {
	_, snap := prepareSnapshot(t)
	assert.Error(t, runDBExport(context.Background(), snap, nil, "lexicon", 100))
}
