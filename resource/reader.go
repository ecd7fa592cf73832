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

// Package resource loads lexicon source files. A source file consists
// of lexeme blocks separated by blank lines. A block may start with
// a grammatical type header which applies to all the following blocks
// until another header is found. The first line of a block is the
// lemma, the rest are its forms, each line written as word<TAB>tag.
package resource

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/grammar"
)

const (
	procChunkSize = 100
)

type SourceLine struct {
	Line int
	Text string
}

// LexemeBlock is a raw (not yet parsed) lexeme along with
// the grammatical type active for it
type LexemeBlock struct {
	Type  grammar.Type
	Lines []SourceLine
}

func (b LexemeBlock) FirstLine() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return b.Lines[0].Line
}

type LexemeChunk struct {
	Items []LexemeBlock
	Error error
}

// ReadLexemes reads lexeme blocks from r and sends them in chunks
// to the returned channel. Structural errors (e.g. a block preceding
// any type header) are sent as a chunk with Error set and the reading
// ends. The channel is closed once the reading is done or ctx is
// cancelled.
func ReadLexemes(ctx context.Context, r io.Reader) <-chan LexemeChunk {
	ans := make(chan LexemeChunk, 10)
	go func() {
		defer close(ans)
		send := func(chunk LexemeChunk) bool {
			select {
			case <-ctx.Done():
				return false
			case ans <- chunk:
				return true
			}
		}
		scanner := bufio.NewScanner(r)
		var (
			currType grammar.Type
			hasType  bool
			lineNum  int
			block    *LexemeBlock
		)
		chunk := make([]LexemeBlock, 0, procChunkSize)
		flush := func() bool {
			if block != nil {
				chunk = append(chunk, *block)
				block = nil
			}
			if len(chunk) < procChunkSize {
				return true
			}
			ok := send(LexemeChunk{Items: chunk})
			chunk = make([]LexemeBlock, 0, procChunkSize)
			return ok
		}
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()
			if line == "" {
				if !flush() {
					return
				}
				continue
			}
			if block == nil {
				if t, err := grammar.ParseType(line); err == nil {
					currType = t
					hasType = true
					continue
				}
				if !hasType {
					send(LexemeChunk{Error: dictionary.NewLineError(
						lineNum,
						fmt.Errorf("%w: missing grammatical type header", dictionary.ErrResourceFormat),
					)})
					return
				}
				block = &LexemeBlock{Type: currType, Lines: make([]SourceLine, 0, 20)}
			}
			block.Lines = append(block.Lines, SourceLine{Line: lineNum, Text: line})
		}
		if err := scanner.Err(); err != nil {
			send(LexemeChunk{Error: fmt.Errorf("failed to read resource: %w", err)})
			return
		}
		if block != nil {
			chunk = append(chunk, *block)
		}
		if len(chunk) > 0 {
			send(LexemeChunk{Items: chunk})
		}
	}()
	return ans
}
