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

// Package lexdb exports a dictionary store into a MySQL table
// and searches the exported data.
package lexdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/grigoriliev/lingua-bg/db/mysql"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/rs/zerolog/log"
)

const (
	DefaultChunkSize = 500
	numEntryColumns  = 7
)

func entryTable(prefix string) string {
	return prefix + "_entry"
}

// CreateTables (re)creates the table for exported entries.
// Any existing data are removed.
func CreateTables(ctx context.Context, db *mysql.Adapter, prefix string) error {
	errMsgTpl := "failed to create lexicon tables: %w"
	tx, err := db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf(errMsgTpl, err)
	}
	table := entryTable(prefix)
	for _, q := range []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s", table),
		fmt.Sprintf(
			"CREATE TABLE %s ("+
				"id INT NOT NULL, "+
				"word VARCHAR(255) NOT NULL, "+
				"lemma_id INT, "+
				"label INT UNSIGNED NOT NULL, "+
				"gtype VARCHAR(8) NOT NULL, "+
				"tag VARCHAR(16) NOT NULL, "+
				"lex_class VARCHAR(20) NOT NULL, "+
				"PRIMARY KEY (id)"+
				") COLLATE utf8mb4_bin",
			table,
		),
		fmt.Sprintf("CREATE INDEX %s_word_idx ON %s(word)", table, table),
		fmt.Sprintf("CREATE INDEX %s_lemma_id_idx ON %s(lemma_id)", table, table),
		fmt.Sprintf("CREATE INDEX %s_label_idx ON %s(label)", table, table),
	} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			tx.Rollback()
			return fmt.Errorf(errMsgTpl, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf(errMsgTpl, err)
	}
	return nil
}

func entryArgs(e *dictionary.WordEntry) []any {
	var lemmaID any
	if !e.IsLemma() {
		lemmaID = e.LemmaID
	}
	var class string
	if c, err := e.Label.LexicalClass(); err == nil {
		class = c.String()
	}
	return []any{e.ID, e.Word, lemmaID, uint32(e.Label), e.Label.Type().String(), e.Tag(), class}
}

func insertSQL(prefix string, numRows int) string {
	placeholders := make([]string, numRows)
	for i := range placeholders {
		placeholders[i] = "(?, ?, ?, ?, ?, ?, ?)"
	}
	return fmt.Sprintf(
		"INSERT INTO %s (id, word, lemma_id, label, gtype, tag, lex_class) VALUES %s",
		entryTable(prefix),
		strings.Join(placeholders, ", "),
	)
}

// InsertEntryChunk inserts entries using a single multi-row statement.
// If it fails, the entries are inserted one by one so the offending
// entry can be identified.
func InsertEntryChunk(ctx context.Context, tx *sql.Tx, prefix string, entries []*dictionary.WordEntry) error {
	if len(entries) == 0 {
		return nil
	}
	args := make([]any, 0, len(entries)*numEntryColumns)
	for _, e := range entries {
		args = append(args, entryArgs(e)...)
	}
	_, err := tx.ExecContext(ctx, insertSQL(prefix, len(entries)), args...)
	if err == nil {
		return nil
	}
	log.Warn().Err(err).Int("chunkSize", len(entries)).Msg("multi-row insert failed, trying row by row")
	q := insertSQL(prefix, 1)
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, q, entryArgs(e)...); err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e, err)
		}
	}
	return nil
}

// ExportStore writes all the store entries into a freshly created
// table. The function returns the number of exported entries.
func ExportStore(
	ctx context.Context,
	db *mysql.Adapter,
	prefix string,
	store *dictionary.Store,
	chunkSize int,
) (int, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if err := CreateTables(ctx, db, prefix); err != nil {
		return 0, err
	}
	tx, err := db.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to export store: %w", err)
	}
	var numExported int
	chunk := make([]*dictionary.WordEntry, 0, chunkSize)
	for e := range store.AllEntries() {
		chunk = append(chunk, e)
		if len(chunk) < chunkSize {
			continue
		}
		if err := InsertEntryChunk(ctx, tx, prefix, chunk); err != nil {
			tx.Rollback()
			return numExported, fmt.Errorf("failed to export store: %w", err)
		}
		numExported += len(chunk)
		chunk = chunk[:0]
		if numExported%(chunkSize*100) == 0 {
			log.Info().Int("numExported", numExported).Msg("exporting entries")
		}
	}
	if err := InsertEntryChunk(ctx, tx, prefix, chunk); err != nil {
		tx.Rollback()
		return numExported, fmt.Errorf("failed to export store: %w", err)
	}
	numExported += len(chunk)
	if err := tx.Commit(); err != nil {
		return numExported, fmt.Errorf("failed to export store: %w", err)
	}
	return numExported, nil
}
