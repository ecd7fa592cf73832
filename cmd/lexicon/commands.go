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
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/grigoriliev/lingua-bg/db/mysql"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/lexdb"
	"github.com/grigoriliev/lingua-bg/resource"
	"github.com/grigoriliev/lingua-bg/vertimport"
	"github.com/rs/zerolog/log"

	vteDb "github.com/czcorpus/vert-tagextract/v3/db"
)

func saveSnapshot(store *dictionary.Store, path string) error {
	hdr, err := dictionary.WriteSnapshotFile(store, path)
	if err != nil {
		return err
	}
	log.Info().
		Str("path", path).
		Str("snapshotId", hdr.ID).
		Int("numEntries", hdr.NumEntries).
		Msg("snapshot saved")
	return nil
}

// openOrCreate loads the snapshot if it exists and appending is
// requested, otherwise a new store is created
func openOrCreate(snapshotPath string, appendData bool) (*dictionary.Store, error) {
	if !appendData {
		return dictionary.NewStore(), nil
	}
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		log.Warn().Str("path", snapshotPath).Msg("snapshot not found, creating a new one")
		return dictionary.NewStore(), nil
	}
	return dictionary.ReadSnapshotFile(snapshotPath)
}

func runLoad(ctx context.Context, snapshotPath string, resources []string, appendData bool, maxErrors int) error {
	store, err := openOrCreate(snapshotPath, appendData)
	if err != nil {
		return err
	}
	stats, err := resource.LoadFiles(ctx, resources, store, resource.LoadWithMaxErrors(maxErrors))
	if err != nil {
		return err
	}
	fmt.Printf(
		"lexemes: %d, entries: %d, duplicates: %d, errors: %d, skipped lexemes: %d\n",
		stats.NumLexemes, stats.NumEntries, stats.NumDuplicates, stats.NumErrors, stats.NumSkippedLexemes,
	)
	return saveSnapshot(store, snapshotPath)
}

func runVert(ctx context.Context, snapshotPath string, args vertimport.Args, appendData bool) error {
	store, err := openOrCreate(snapshotPath, appendData)
	if err != nil {
		return err
	}
	stats, err := vertimport.ImportVerticals(ctx, store, args)
	if err != nil {
		return err
	}
	fmt.Printf(
		"tokens: %d, invalid tokens: %d, lexemes: %d, entries: %d, duplicates: %d\n",
		stats.NumTokens, stats.NumInvalidTokens, stats.NumLexemes, stats.NumEntries, stats.NumDuplicates,
	)
	return saveSnapshot(store, snapshotPath)
}

func writeToFile(path string, fn func(w io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runExport(snapshotPath, outPath string, lemmasOnly bool) error {
	store, err := dictionary.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return err
	}
	if lemmasOnly {
		return writeToFile(outPath, store.ExportLemmas)
	}
	return writeToFile(outPath, store.Export)
}

func runImport(snapshotPath, inPath string, lemmasOnly, appendData bool) error {
	store, err := openOrCreate(snapshotPath, appendData)
	if err != nil {
		return err
	}
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()
	var numInserted int
	if lemmasOnly {
		numInserted, err = store.ImportLemmas(f)

	} else {
		numInserted, err = store.Import(f)
	}
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", inPath, err)
	}
	fmt.Printf("imported entries: %d\n", numInserted)
	return saveSnapshot(store, snapshotPath)
}

func printHistogram(w io.Writer, title string, h dictionary.Histogram) {
	fmt.Fprintf(w, "%s\n", title)
	for _, k := range h.Keys() {
		fmt.Fprintf(w, "%d\t%d\n", k, h[k])
	}
}

func runStats(w io.Writer, snapshotPath string, showAmbiguous int) error {
	store, err := dictionary.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return err
	}
	st := store.Stats()
	fmt.Fprintf(w, "entries: %d\nwords: %d\nlemmas: %d\nlabels: %d\n\n", st.Entries, st.Words, st.Lemmas, st.Labels)
	printHistogram(w, "number of lemmas per word", store.LemmaAmbiguity())
	fmt.Fprintln(w)
	printHistogram(w, "number of entries per word", store.WordAmbiguity())
	if showAmbiguous > 0 {
		fmt.Fprintf(w, "\nwords with %d entries\n", showAmbiguous)
		for _, group := range store.WordsByAmbiguity(showAmbiguous) {
			items := make([]string, len(group))
			for i, e := range group {
				items[i] = e.String()
			}
			fmt.Fprintln(w, strings.Join(items, "; "))
		}
	}
	return nil
}

// runCheck prints integrity issues and returns their number
func runCheck(w io.Writer, snapshotPath string) (int, error) {
	store, err := dictionary.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return 0, err
	}
	issues := store.CheckIntegrity()
	for _, issue := range issues {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", issue.EntryID, issue.Word, issue.Kind, issue.Detail)
	}
	return len(issues), nil
}

func formatLexeme(lx dictionary.Lexeme) string {
	var ans strings.Builder
	ans.WriteString(lx.Lemma.String())
	for _, f := range lx.Forms {
		ans.WriteString("\n\t")
		ans.WriteString(f.String())
	}
	return ans.String()
}

func runCompare(w io.Writer, snapshotPath, otherPath string) error {
	store, err := dictionary.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return err
	}
	other, err := dictionary.ReadSnapshotFile(otherPath)
	if err != nil {
		return err
	}
	missing := store.MissingFrom(other)
	fmt.Fprintf(w, "lexemes missing in %s: %d\n", snapshotPath, len(missing))
	for _, lx := range missing {
		fmt.Fprintln(w, formatLexeme(lx))
	}
	extra := other.MissingFrom(store)
	fmt.Fprintf(w, "lexemes missing in %s: %d\n", otherPath, len(extra))
	for _, lx := range extra {
		fmt.Fprintln(w, formatLexeme(lx))
	}
	mismatched := store.Mismatched(other)
	fmt.Fprintf(w, "lexemes with different forms: %d\n", len(mismatched))
	for _, pair := range mismatched {
		fmt.Fprintf(w, "%s\n---\n%s\n", formatLexeme(pair.Own), formatLexeme(pair.Other))
	}
	return nil
}

func runDBExport(ctx context.Context, snapshotPath string, dbConf *vteDb.Conf, prefix string, chunkSize int) error {
	if dbConf == nil || dbConf.Type != "mysql" {
		return fmt.Errorf("mysql lexiconDb not configured")
	}
	store, err := dictionary.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return err
	}
	db, err := mysql.OpenImportTunedDB(*dbConf)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		return err
	}
	numExported, err := lexdb.ExportStore(ctx, db, prefix, store, chunkSize)
	if err != nil {
		return err
	}
	log.Info().
		Int("numExported", numExported).
		Str("database", dbConf.Name).
		Str("tablePrefix", prefix).
		Msg("lexicon exported to database")
	return nil
}

func runDump(w io.Writer, snapshotPath, word string) error {
	store, err := dictionary.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return err
	}
	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	dumper.Fdump(w, store.FindExact(word))
	dumper.Fdump(w, store.Lexemes(word))
	return nil
}
