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
	"errors"
	"fmt"

	"github.com/czcorpus/vert-tagextract/v3/proc"
	"github.com/grigoriliev/lingua-bg/btb"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v6"
)

var ErrTooManyParsingErrors = errors.New("too many parsing errors")

// Columns specifies positions of the required positional
// attributes in a vertical file (0 = word)
type Columns struct {
	Word  int `json:"word"`
	Lemma int `json:"lemma"`
	Tag   int `json:"tag"`
}

var DefaultColumns = Columns{Word: 0, Lemma: 1, Tag: 2}

type Args struct {
	Verticals    []string `json:"verticals"`
	Columns      *Columns `json:"columns"`
	MaxNumErrors int      `json:"maxNumErrors"`
}

func (args Args) columns() Columns {
	if args.Columns == nil {
		return DefaultColumns
	}
	return *args.Columns
}

type Stats struct {
	NumTokens        int `json:"numTokens"`
	NumInvalidTokens int `json:"numInvalidTokens"`
	NumLexemes       int `json:"numLexemes"`
	NumEntries       int `json:"numEntries"`
	NumDuplicates    int `json:"numDuplicates"`
}

type lexemeKey struct {
	lemma string
	class grammar.LexicalClass
}

type form struct {
	word  string
	label grammar.Label
}

type lexemeGroup struct {
	lemma string
	forms []form
	seen  map[form]struct{}
}

func (g *lexemeGroup) add(f form) {
	if _, ok := g.seen[f]; ok {
		return
	}
	g.seen[f] = struct{}{}
	g.forms = append(g.forms, f)
}

// lemmaLabel prefers a form spelled as the lemma, otherwise
// the default label of the first form's type is used.
func (g *lexemeGroup) lemmaLabel() (grammar.Label, error) {
	for _, f := range g.forms {
		if f.word == g.lemma {
			return f.label, nil
		}
	}
	return btb.DefaultLabel(g.forms[0].label.Type())
}

// LexemeCollector is a vertigo.LineProcessor grouping tokens
// by their lemma and lexical class.
type LexemeCollector struct {
	ctx    context.Context
	cols   Columns
	groups []*lexemeGroup
	index  map[lexemeKey]*lexemeGroup
	stats  Stats

	maxNumErrors int
}

func NewLexemeCollector(ctx context.Context, args Args) *LexemeCollector {
	return &LexemeCollector{
		ctx:          ctx,
		cols:         args.columns(),
		index:        make(map[lexemeKey]*lexemeGroup),
		maxNumErrors: args.MaxNumErrors,
	}
}

func (lc *LexemeCollector) handleProcError(line int, err error) error {
	log.Warn().Err(err).Int("line", line).Msg("invalid vertical token")
	lc.stats.NumInvalidTokens++
	if lc.stats.NumInvalidTokens > lc.maxNumErrors {
		return ErrTooManyParsingErrors
	}
	return nil
}

func (lc *LexemeCollector) checkStop() error {
	select {
	case <-lc.ctx.Done():
		return fmt.Errorf("received stop signal: %w", lc.ctx.Err())
	default:
	}
	return nil
}

func (lc *LexemeCollector) addToken(word, lemma, tag string, line int) error {
	lc.stats.NumTokens++
	if err := dictionary.CheckWord(word); err != nil {
		return lc.handleProcError(line, err)
	}
	if err := dictionary.CheckWord(lemma); err != nil {
		return lc.handleProcError(line, err)
	}
	label, err := btb.ParseTag(tag)
	if err != nil {
		return lc.handleProcError(line, err)
	}
	class, err := label.LexicalClass()
	if err != nil {
		return lc.handleProcError(line, err)
	}
	key := lexemeKey{lemma: lemma, class: class}
	group, ok := lc.index[key]
	if !ok {
		group = &lexemeGroup{lemma: lemma, seen: make(map[form]struct{})}
		lc.index[key] = group
		lc.groups = append(lc.groups, group)
	}
	group.add(form{word: word, label: label})
	return nil
}

// ProcToken is a part of vertigo.LineProcessor implementation.
func (lc *LexemeCollector) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err := lc.checkStop(); err != nil {
		return err
	}
	if err != nil {
		return lc.handleProcError(line, err)
	}
	return lc.addToken(
		tk.PosAttrByIndex(lc.cols.Word),
		tk.PosAttrByIndex(lc.cols.Lemma),
		tk.PosAttrByIndex(lc.cols.Tag),
		line,
	)
}

func (lc *LexemeCollector) ProcStruct(st *vertigo.Structure, line int, err error) error {
	if err := lc.checkStop(); err != nil {
		return err
	}
	if err != nil {
		return lc.handleProcError(line, err)
	}
	return nil
}

func (lc *LexemeCollector) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return lc.handleProcError(line, err)
	}
	return nil
}

// Store inserts collected lexemes into the store in the order
// of their first occurrence. Lexemes with an already existing
// lemma are skipped.
func (lc *LexemeCollector) Store(store *dictionary.Store) (Stats, error) {
	for _, group := range lc.groups {
		if err := lc.checkStop(); err != nil {
			return lc.stats, err
		}
		lemmaLabel, err := group.lemmaLabel()
		if err != nil {
			log.Warn().Err(err).Str("lemma", group.lemma).Msg("cannot determine lemma label, skipping")
			continue
		}
		lemma, err := store.Add(group.lemma, lemmaLabel, dictionary.NoLemma)
		if errors.Is(err, dictionary.ErrDuplicateEntry) {
			lc.stats.NumDuplicates++
			continue

		} else if err != nil {
			return lc.stats, fmt.Errorf("failed to store lexeme %s: %w", group.lemma, err)
		}
		lc.stats.NumLexemes++
		lc.stats.NumEntries++
		for _, f := range group.forms {
			if f.word == group.lemma && f.label == lemmaLabel {
				continue
			}
			_, err := store.Add(f.word, f.label, lemma.ID)
			if errors.Is(err, dictionary.ErrDuplicateEntry) {
				lc.stats.NumDuplicates++
				continue

			} else if err != nil {
				return lc.stats, fmt.Errorf("failed to store form %s: %w", f.word, err)
			}
			lc.stats.NumEntries++
		}
	}
	return lc.stats, nil
}

// ImportVerticals parses all the vertical files and inserts
// found lexemes into the store.
func ImportVerticals(ctx context.Context, store *dictionary.Store, args Args) (Stats, error) {
	parserConf := &vertigo.ParserConf{
		StructAttrAccumulator: "nil",
		Encoding:              "utf-8",
		LogProgressEachNth:    1000000,
	}
	vertScanner, err := proc.NewMultiFileScanner(args.Verticals...)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open verticals: %w", err)
	}
	defer vertScanner.Close()
	collector := NewLexemeCollector(ctx, args)
	if err := vertigo.ParseVerticalFromScanner(ctx, vertScanner, parserConf, collector); err != nil {
		return collector.stats, fmt.Errorf("failed to parse verticals: %w", err)
	}
	stats, err := collector.Store(store)
	if err != nil {
		return stats, err
	}
	log.Info().
		Int("tokens", stats.NumTokens).
		Int("invalidTokens", stats.NumInvalidTokens).
		Int("lexemes", stats.NumLexemes).
		Int("entries", stats.NumEntries).
		Msg("verticals imported")
	return stats, nil
}
