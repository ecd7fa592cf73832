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
	"strconv"
)

const (
	suffixOffset = 21
	codeOffset   = 23

	suffixMask Type = 0b11 << suffixOffset
	codeMask   Type = 0x1ff << codeOffset
	typeMask        = codeMask | suffixMask

	SuffixA Type = 0b01 << suffixOffset
	SuffixB Type = 0b10 << suffixOffset
	// SuffixC marks synthetic ("fake") types which have
	// no canonical entry in the grammar type reference
	SuffixC Type = 0b11 << suffixOffset

	MinCode = 1
	MaxCode = 208
)

// Type is a Bulgarian grammatical type (paradigm code 1-208
// with an optional suffix a, b or c) positioned in the high
// bits of a packed label. Zero value means "no type".
type Type uint32

type codeRange struct {
	first, last int
}

// classRanges are the declared type ranges; interjections,
// particles, prepositions and proper nouns are recognized by
// LexicalClassOf but have no declared range
var classRanges = map[LexicalClass]codeRange{
	ClassNoun:        {1, 75},
	ClassAdjective:   {76, 89},
	ClassPronoun:     {90, 130},
	ClassNumeral:     {131, 141},
	ClassVerb:        {142, 187},
	ClassAdverb:      {188, 188},
	ClassConjunction: {189, 189},
}

func newType(code int, suffix Type) Type {
	return Type(code)<<codeOffset | suffix
}

// NewType creates a type from a numeric code and a suffix
// letter ('a', 'b', 'c' or 0 for no suffix).
func NewType(code int, suffix rune) (Type, error) {
	if code < MinCode || code > MaxCode {
		return 0, fmt.Errorf("%w: code %d out of range", ErrMalformedType, code)
	}
	switch suffix {
	case 0:
		return newType(code, 0), nil
	case 'a':
		return newType(code, SuffixA), nil
	case 'b':
		return newType(code, SuffixB), nil
	case 'c':
		return newType(code, SuffixC), nil
	}
	return 0, fmt.Errorf("%w: invalid suffix %q", ErrMalformedType, suffix)
}

// ParseType parses a textual grammatical type like "12", "76a" or "187c".
// Leading zeros of the code are accepted ("012" is type 12).
func ParseType(s string) (Type, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrMalformedType)
	}
	body := s
	var suffix rune
	if last := s[len(s)-1]; last >= 'a' && last <= 'c' {
		suffix = rune(last)
		body = s[:len(s)-1]
	}
	if body == "" {
		return 0, fmt.Errorf("%w: %s", ErrMalformedType, s)
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return 0, fmt.Errorf("%w: %s", ErrMalformedType, s)
		}
	}
	code, err := strconv.Atoi(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedType, s)
	}
	return NewType(code, suffix)
}

// MustParseType is like ParseType but it panics on invalid input.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Type) Code() int {
	return int((t & codeMask) >> codeOffset)
}

// Suffix returns 'a', 'b', 'c' or 0 if the type has no suffix
func (t Type) Suffix() rune {
	switch t & suffixMask {
	case SuffixA:
		return 'a'
	case SuffixB:
		return 'b'
	case SuffixC:
		return 'c'
	}
	return 0
}

func (t Type) IsFake() bool {
	return t&suffixMask == SuffixC
}

func (t Type) String() string {
	s := strconv.Itoa(t.Code())
	if sfx := t.Suffix(); sfx != 0 {
		s += string(sfx)
	}
	return s
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Next returns the type following t in the order
// (no suffix, a, b, c, next code ...). The second
// value is false if t is the last encodable type.
func (t Type) Next() (Type, bool) {
	t &= typeMask
	if t >= typeMask {
		return 0, false
	}
	return t + 1<<suffixOffset, true
}

// LexicalClass derives the class from the type code.
func (t Type) LexicalClass() (LexicalClass, error) {
	code := t.Code()
	switch {
	case code >= 1 && code <= 75:
		return ClassNoun, nil
	case code >= 76 && code <= 89:
		return ClassAdjective, nil
	case code >= 90 && code <= 130:
		return ClassPronoun, nil
	case code >= 131 && code <= 141:
		return ClassNumeral, nil
	case code >= 142 && code <= 187:
		return ClassVerb, nil
	case code == 188:
		return ClassAdverb, nil
	case code == 189:
		return ClassConjunction, nil
	case code == 190:
		return ClassInterjection, nil
	case code == 191:
		return ClassParticle, nil
	case code == 192:
		return ClassPreposition, nil
	case code >= 193 && code <= 207:
		return ClassNoun, nil
	}
	return ClassNone, fmt.Errorf("%w: unrecognized type %s", ErrMalformedType, t)
}

// IsProperNoun tells whether the type belongs to the proper noun
// range (which is classified as a noun)
func (t Type) IsProperNoun() bool {
	code := t.Code()
	return code >= 193 && code <= 207
}

// RangeFor returns the first and the last type of a lexical class.
// The last type carries the 'c' suffix. Only classes with a declared
// range are supported.
func RangeFor(c LexicalClass) (Type, Type, bool) {
	r, ok := classRanges[c]
	if !ok {
		return 0, 0, false
	}
	return newType(r.first, 0), newType(r.last, SuffixC), true
}

// LabelRange is an inclusive range of packed labels
type LabelRange struct {
	First Label
	Last  Label
}

func typeLabelRange(first, last int) LabelRange {
	return LabelRange{
		First: Label(newType(first, 0)),
		Last:  Label(newType(last, SuffixC)) | fieldsMask,
	}
}

// LabelRange returns the range of all the labels of the type t
func (t Type) LabelRange() LabelRange {
	base := NewLabel(t)
	return LabelRange{First: base, Last: base | fieldsMask}
}

// Contains tests whether l is within the range (inclusive)
func (r LabelRange) Contains(l Label) bool {
	return l >= r.First && l <= r.Last
}

// LabelRanges returns contiguous label ranges covering all the labels
// of the class. Nouns span two ranges (common nouns 1-75 and proper
// nouns 193-207).
func LabelRanges(c LexicalClass) []LabelRange {
	switch c {
	case ClassNoun:
		return []LabelRange{typeLabelRange(1, 75), typeLabelRange(193, 207)}
	case ClassInterjection:
		return []LabelRange{typeLabelRange(190, 190)}
	case ClassParticle:
		return []LabelRange{typeLabelRange(191, 191)}
	case ClassPreposition:
		return []LabelRange{typeLabelRange(192, 192)}
	}
	if r, ok := classRanges[c]; ok {
		return []LabelRange{typeLabelRange(r.first, r.last)}
	}
	return []LabelRange{}
}
