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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/grigoriliev/lingua-bg/grammar"
)

// The line format stores each entry as two lines: the word and
// the decimal value of its label. In a full export, each lexeme
// is preceded by an empty line so the first pair after it is
// always a lemma.

func parseLabelLine(line string) (grammar.Label, error) {
	v, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid label value %q", ErrResourceFormat, line)
	}
	return grammar.Label(v), nil
}

func writeEntry(w *bufio.Writer, e *WordEntry) error {
	if _, err := w.WriteString(e.Word); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.WriteString(strconv.FormatUint(uint64(e.Label), 10)); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// ExportLemmas writes all the lemmas (without forms)
// in the line format.
func (s *Store) ExportLemmas(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for lemma := range s.AllLemmas() {
		if err := writeEntry(bw, lemma); err != nil {
			return fmt.Errorf("failed to export lemmas: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to export lemmas: %w", err)
	}
	return nil
}

// ImportLemmas reads lemmas written by ExportLemmas. Lemmas already
// present in the store are skipped. The function returns the number
// of actually inserted lemmas.
func (s *Store) ImportLemmas(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	var numInserted, lineNum int
	s.mu.Lock()
	defer s.mu.Unlock()
	for sc.Scan() {
		lineNum++
		word := sc.Text()
		if word == "" {
			continue
		}
		if !sc.Scan() {
			if sc.Err() != nil {
				break
			}
			return numInserted, NewLineError(
				lineNum, fmt.Errorf("%w: missing label of %s", ErrResourceFormat, word))
		}
		lineNum++
		label, err := parseLabelLine(sc.Text())
		if err != nil {
			return numInserted, NewLineError(lineNum, err)
		}
		e := s.newEntryLocked(word, NoLemma, label)
		_, err = s.insertLocked(e, true)
		if errors.Is(err, ErrDuplicateEntry) {
			continue

		} else if err != nil {
			return numInserted, NewLineError(lineNum, err)
		}
		numInserted++
	}
	if err := sc.Err(); err != nil {
		return numInserted, fmt.Errorf("failed to import lemmas: %w", err)
	}
	return numInserted, nil
}

// Export writes all the lexemes in the line format
func (s *Store) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for e := range s.AllEntries() {
		if e.IsLemma() {
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to export dictionary: %w", err)
			}
		}
		if err := writeEntry(bw, e); err != nil {
			return fmt.Errorf("failed to export dictionary: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to export dictionary: %w", err)
	}
	return nil
}

// Import reads lexemes written by Export. To make the import fast,
// no duplicate check is performed. The store is locked for writing
// during the whole import. The function returns the number of
// inserted entries.
func (s *Store) Import(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	var (
		lemma       *WordEntry
		numInserted int
		lineNum     int
		expectLemma bool
		pending     string
		hasPending  bool
	)
	s.mu.Lock()
	defer s.mu.Unlock()
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if !hasPending {
			if line == "" {
				expectLemma = true
				continue
			}
			pending = line
			hasPending = true
			continue
		}
		label, err := parseLabelLine(line)
		if err != nil {
			return numInserted, NewLineError(lineNum, err)
		}
		hasPending = false
		var e *WordEntry
		if expectLemma {
			e = s.newEntryLocked(pending, NoLemma, label)
			lemma = e
			expectLemma = false

		} else if lemma == nil {
			return numInserted, NewLineError(
				lineNum, fmt.Errorf("%w: form %s precedes any lemma", ErrResourceFormat, pending))

		} else {
			e = s.newEntryLocked(pending, lemma.ID, label)
		}
		if _, err := s.insertLocked(e, false); err != nil {
			return numInserted, NewLineError(lineNum, err)
		}
		numInserted++
	}
	if err := sc.Err(); err != nil {
		return numInserted, fmt.Errorf("failed to import dictionary: %w", err)
	}
	if hasPending {
		return numInserted, NewLineError(
			lineNum, fmt.Errorf("%w: missing label of %s", ErrResourceFormat, pending))
	}
	return numInserted, nil
}
