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
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/grigoriliev/lingua-bg/db/mysql"
	"github.com/grigoriliev/lingua-bg/grammar"
)

// Row is an exported entry as stored in the database
type Row struct {
	ID       int           `json:"id"`
	Word     string        `json:"word"`
	LemmaID  *int          `json:"lemmaId,omitempty"`
	Label    grammar.Label `json:"label"`
	Type     string        `json:"type"`
	Tag      string        `json:"tag"`
	LexClass string        `json:"lexClass"`
}

func (r Row) IsLemma() bool {
	return r.LemmaID == nil
}

type SearchOptions struct {
	LexClass  grammar.LexicalClass
	TagPrefix string
	NoLemmas  bool
	Limit     int
}

type SearchOption func(c *SearchOptions)

func SearchWithLexClass(v grammar.LexicalClass) SearchOption {
	return func(c *SearchOptions) {
		c.LexClass = v
	}
}

func SearchWithTagPrefix(v string) SearchOption {
	return func(c *SearchOptions) {
		c.TagPrefix = v
	}
}

// SearchWithoutLemmas disables adding lemmas of the found forms
func SearchWithoutLemmas() SearchOption {
	return func(c *SearchOptions) {
		c.NoLemmas = true
	}
}

func SearchWithLimit(lim int) SearchOption {
	return func(c *SearchOptions) {
		c.Limit = lim
	}
}

func SearchWithNoOp() SearchOption {
	return func(c *SearchOptions) {}
}

func escapeLike(v string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(v)
}

func buildSearchQuery(prefix, word string, opts SearchOptions) (string, []any) {
	table := entryTable(prefix)
	whereSQL := make([]string, 0, 3)
	whereArgs := make([]any, 0, 4)
	if opts.NoLemmas {
		whereSQL = append(whereSQL, "e.word = ?")
		whereArgs = append(whereArgs, word)

	} else {
		whereSQL = append(
			whereSQL,
			fmt.Sprintf(
				"(e.word = ? OR e.id IN (SELECT f.lemma_id FROM %s AS f WHERE f.word = ?))",
				table,
			),
		)
		whereArgs = append(whereArgs, word, word)
	}
	if opts.LexClass != grammar.ClassNone {
		whereSQL = append(whereSQL, "e.lex_class = ?")
		whereArgs = append(whereArgs, opts.LexClass.String())
	}
	if opts.TagPrefix != "" {
		whereSQL = append(whereSQL, "e.tag LIKE ?")
		whereArgs = append(whereArgs, escapeLike(opts.TagPrefix)+"%")
	}
	var limitSQL string
	if opts.Limit > 0 {
		limitSQL = fmt.Sprintf(" LIMIT %d", opts.Limit)
	}
	return fmt.Sprintf(
		"SELECT e.id, e.word, e.lemma_id, e.label, e.gtype, e.tag, e.lex_class "+
			"FROM %s AS e "+
			"WHERE %s "+
			"ORDER BY e.id%s",
		table,
		strings.Join(whereSQL, " AND "),
		limitSQL,
	), whereArgs
}

// SearchWord finds exported entries of the word along
// with the lemmas of the found forms.
func SearchWord(
	ctx context.Context,
	db *mysql.Adapter,
	prefix string,
	word string,
	opts ...SearchOption,
) ([]Row, error) {
	var srchOpts SearchOptions
	for _, opt := range opts {
		opt(&srchOpts)
	}
	q, args := buildSearchQuery(prefix, word, srchOpts)
	rows, err := db.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return []Row{}, fmt.Errorf("failed to search lexicon db: %w", err)
	}
	defer rows.Close()
	ans := make([]Row, 0, 20)
	for rows.Next() {
		var row Row
		var lemmaID sql.NullInt64
		var label uint32
		if err := rows.Scan(
			&row.ID, &row.Word, &lemmaID, &label, &row.Type, &row.Tag, &row.LexClass); err != nil {
			return []Row{}, fmt.Errorf("failed to search lexicon db: %w", err)
		}
		row.Label = grammar.Label(label)
		if lemmaID.Valid {
			v := int(lemmaID.Int64)
			row.LemmaID = &v
		}
		ans = append(ans, row)
	}
	if err := rows.Err(); err != nil {
		return []Row{}, fmt.Errorf("failed to search lexicon db: %w", err)
	}
	return ans, nil
}
