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

package grammar

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LexicalClass is a part of speech as implied by a grammatical type.
// The zero value means "no class" and it is used e.g. in queries
// where the class is not restricted.
type LexicalClass int

const (
	ClassNone LexicalClass = iota
	ClassNoun
	ClassAdjective
	ClassPronoun
	ClassNumeral
	ClassVerb
	ClassAdverb
	ClassConjunction
	ClassInterjection
	ClassParticle
	ClassPreposition
)

var classNames = []string{
	"",
	"noun",
	"adjective",
	"pronoun",
	"numeral",
	"verb",
	"adverb",
	"conjunction",
	"interjection",
	"particle",
	"preposition",
}

func (c LexicalClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("LexicalClass(%d)", int(c))
	}
	return classNames[c]
}

func (c LexicalClass) Validate() error {
	if c <= ClassNone || int(c) >= len(classNames) {
		return fmt.Errorf("invalid lexical class %d", int(c))
	}
	return nil
}

func (c LexicalClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ParseLexicalClass accepts a class name (e.g. "verb") in any case.
// An empty string yields ClassNone.
func ParseLexicalClass(s string) (LexicalClass, error) {
	if s == "" {
		return ClassNone, nil
	}
	v := strings.ToLower(s)
	for i := 1; i < len(classNames); i++ {
		if classNames[i] == v {
			return LexicalClass(i), nil
		}
	}
	return ClassNone, fmt.Errorf("unknown lexical class %s", s)
}
