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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateEntry is a regular outcome of an insert with
	// the duplicate check enabled, it does not mean a failure
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotALemma      = errors.New("entry is not a lemma")
	ErrUnknownLemma   = errors.New("lemma not found in the dictionary")

	// ErrCorruptIndex means the internal indexes disagree.
	// The store should not be used any further.
	ErrCorruptIndex   = errors.New("corrupt dictionary index")
	ErrResourceFormat = errors.New("invalid resource format")

	// ErrInvalidWord is returned for words which cannot be stored,
	// i.e. empty ones and ones containing a line break
	ErrInvalidWord = errors.New("invalid word")
)

// LineError attaches a line number of a processed text
// resource to an error.
type LineError struct {
	Line int
	Err  error
}

func (le *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", le.Line, le.Err)
}

func (le *LineError) Unwrap() error {
	return le.Err
}

func NewLineError(line int, err error) *LineError {
	return &LineError{Line: line, Err: err}
}

// CheckWord tests whether word can be stored. Words are written
// one per line by the line format so they must be non-empty
// and without line breaks.
func CheckWord(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	if strings.ContainsAny(word, "\r\n") {
		return fmt.Errorf("%w: line break in %q", ErrInvalidWord, word)
	}
	return nil
}
