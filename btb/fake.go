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

package btb

import (
	"fmt"

	"github.com/grigoriliev/lingua-bg/grammar"
)

var (
	fakeMascNoun   = grammar.MustParseType("40c")
	fakeFemNoun    = grammar.MustParseType("53c")
	fakeNeuterNoun = grammar.MustParseType("75c")

	fakeTypes = map[byte]grammar.Type{
		'A': grammar.MustParseType("89c"),
		'P': grammar.MustParseType("130c"),
		'M': grammar.MustParseType("141c"),
		'V': grammar.MustParseType("187c"),
		'D': grammar.MustParseType("188c"),
		'C': grammar.MustParseType("189c"),
	}
)

// FakeType derives a synthetic grammatical type (with the 'c' suffix)
// from a tag. It is used where only positional features of a word are
// known. Nouns are distributed to the masculine, feminine and neuter
// ranges by the gender position of the tag.
func FakeType(tag string) (grammar.Type, error) {
	if tag == "" {
		return 0, fmt.Errorf("%w: empty tag", grammar.ErrMalformedTag)
	}
	if tag[0] == 'N' {
		genderPos := 2
		if isShortNounTag(tag) {
			genderPos = 1
		}
		if len(tag) > genderPos {
			switch tag[genderPos] {
			case 'm':
				return fakeMascNoun, nil
			case 'f':
				return fakeFemNoun, nil
			}
		}
		return fakeNeuterNoun, nil
	}
	if t, ok := fakeTypes[tag[0]]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: no synthetic type for tag %s", grammar.ErrMalformedTag, tag)
}
