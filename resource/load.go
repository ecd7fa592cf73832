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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/grigoriliev/lingua-bg/btb"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/rs/zerolog/log"
)

var (
	ErrTooManyErrors = errors.New("too many errors in resource")
)

type LoadStats struct {
	NumLexemes        int `json:"numLexemes"`
	NumEntries        int `json:"numEntries"`
	NumDuplicates     int `json:"numDuplicates"`
	NumErrors         int `json:"numErrors"`
	NumSkippedLexemes int `json:"numSkippedLexemes"`
}

func (ls *LoadStats) Add(other LoadStats) {
	ls.NumLexemes += other.NumLexemes
	ls.NumEntries += other.NumEntries
	ls.NumDuplicates += other.NumDuplicates
	ls.NumErrors += other.NumErrors
	ls.NumSkippedLexemes += other.NumSkippedLexemes
}

type loadOptions struct {
	// maxErrors < 0 means no limit
	maxErrors int
}

type LoadOption func(opts *loadOptions)

// LoadWithMaxErrors makes Load fail once there are more
// than n recoverable errors
func LoadWithMaxErrors(n int) LoadOption {
	return func(opts *loadOptions) {
		opts.maxErrors = n
	}
}

// LoadWithStrictMode makes Load fail on the first error
func LoadWithStrictMode() LoadOption {
	return func(opts *loadOptions) {
		opts.maxErrors = 0
	}
}

// ParseLine parses a word<TAB>tag line into a word and a label
// of the type t.
func ParseLine(line SourceLine, t grammar.Type) (string, grammar.Label, error) {
	word, tag, found := strings.Cut(line.Text, "\t")
	if !found {
		return "", 0, dictionary.NewLineError(
			line.Line, fmt.Errorf("%w: missing tab separator", dictionary.ErrResourceFormat))
	}
	if err := dictionary.CheckWord(word); err != nil {
		return word, 0, dictionary.NewLineError(line.Line, err)
	}
	label, err := btb.LabelFromTag(tag, t)
	if err != nil {
		return word, 0, dictionary.NewLineError(line.Line, fmt.Errorf("word %s: %w", word, err))
	}
	return word, label, nil
}

type loader struct {
	store *dictionary.Store
	opts  loadOptions
	stats LoadStats
}

// recoverable logs err and decides whether the loading can continue
func (ld *loader) recoverable(err error, word string) error {
	ld.stats.NumErrors++
	log.Warn().Err(err).Str("word", word).Msg("skipping invalid resource line")
	if ld.opts.maxErrors >= 0 && ld.stats.NumErrors > ld.opts.maxErrors {
		return fmt.Errorf("%w (%d): %w", ErrTooManyErrors, ld.stats.NumErrors, err)
	}
	return nil
}

func (ld *loader) loadBlock(block LexemeBlock) error {
	if len(block.Lines) == 0 {
		return nil
	}
	word, label, err := ParseLine(block.Lines[0], block.Type)
	if err != nil {
		ld.stats.NumSkippedLexemes++
		return ld.recoverable(err, word)
	}
	lemma, err := ld.store.Add(word, label, dictionary.NoLemma)
	if errors.Is(err, dictionary.ErrDuplicateEntry) {
		// forms must follow their lemma so the whole
		// block is ignored
		ld.stats.NumDuplicates++
		ld.stats.NumSkippedLexemes++
		log.Debug().Int("line", block.FirstLine()).Str("word", word).Msg("duplicate lemma, skipping lexeme")
		return nil

	} else if err != nil {
		return dictionary.NewLineError(block.FirstLine(), err)
	}
	ld.stats.NumLexemes++
	ld.stats.NumEntries++
	for _, line := range block.Lines[1:] {
		word, label, err := ParseLine(line, block.Type)
		if err != nil {
			if err := ld.recoverable(err, word); err != nil {
				return err
			}
			continue
		}
		_, err = ld.store.Add(word, label, lemma.ID)
		if errors.Is(err, dictionary.ErrDuplicateEntry) {
			ld.stats.NumDuplicates++
			continue

		} else if err != nil {
			return dictionary.NewLineError(line.Line, err)
		}
		ld.stats.NumEntries++
	}
	return nil
}

// Load reads a resource from r into the store. Invalid lines are
// logged and skipped (an invalid lemma line means the whole lexeme
// is skipped) unless the limit of errors set by options is exceeded.
// Duplicate entries are counted and ignored.
func Load(ctx context.Context, r io.Reader, store *dictionary.Store, opts ...LoadOption) (LoadStats, error) {
	ld := &loader{store: store, opts: loadOptions{maxErrors: -1}}
	for _, opt := range opts {
		opt(&ld.opts)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for chunk := range ReadLexemes(ctx, r) {
		if chunk.Error != nil {
			return ld.stats, chunk.Error
		}
		for _, block := range chunk.Items {
			if err := ld.loadBlock(block); err != nil {
				return ld.stats, err
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return ld.stats, fmt.Errorf("resource loading interrupted: %w", err)
	}
	return ld.stats, nil
}

func LoadFile(ctx context.Context, path string, store *dictionary.Store, opts ...LoadOption) (LoadStats, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to load resource %s: %w", path, err)
	}
	if !isFile {
		return LoadStats{}, fmt.Errorf("failed to load resource %s: not a file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to load resource %s: %w", path, err)
	}
	defer f.Close()
	stats, err := Load(ctx, f, store, opts...)
	if err != nil {
		return stats, fmt.Errorf("failed to load resource %s: %w", path, err)
	}
	log.Info().
		Str("path", path).
		Int("lexemes", stats.NumLexemes).
		Int("entries", stats.NumEntries).
		Int("errors", stats.NumErrors).
		Msg("resource loaded")
	return stats, nil
}

// LoadFiles loads resources one by one into the store. Loading
// stops at the first failed resource.
func LoadFiles(ctx context.Context, paths []string, store *dictionary.Store, opts ...LoadOption) (LoadStats, error) {
	var total LoadStats
	for _, path := range paths {
		stats, err := LoadFile(ctx, path, store, opts...)
		total.Add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
