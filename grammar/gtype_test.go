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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTypeRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "12", "76a", "130b", "187c", "193", "208"} {
		tp, err := ParseType(s)
		assert.NoError(t, err)
		assert.Equal(t, s, tp.String())
	}
}

func TestParseTypeLeadingZeros(t *testing.T) {
	tp, err := ParseType("012")
	assert.NoError(t, err)
	assert.Equal(t, MustParseType("12"), tp)
	assert.Equal(t, "12", tp.String())
	tp, err = ParseType("076a")
	assert.NoError(t, err)
	assert.Equal(t, "76a", tp.String())
}

func TestParseTypeInvalid(t *testing.T) {
	for _, s := range []string{"", "0", "000", "209", "0209", "abc", "12d", "a", "-1", "+5", "1 "} {
		_, err := ParseType(s)
		assert.ErrorIs(t, err, ErrMalformedType, "input %q", s)
	}
}

func TestTypeParts(t *testing.T) {
	tp := MustParseType("76a")
	assert.Equal(t, 76, tp.Code())
	assert.Equal(t, 'a', tp.Suffix())
	assert.False(t, tp.IsFake())
	assert.True(t, MustParseType("89c").IsFake())
	assert.Equal(t, rune(0), MustParseType("5").Suffix())
}

func TestTypeNext(t *testing.T) {
	tp := MustParseType("12")
	var ok bool
	for _, expected := range []string{"12a", "12b", "12c", "13"} {
		tp, ok = tp.Next()
		assert.True(t, ok)
		assert.Equal(t, expected, tp.String())
	}
}

func TestTypeNextAtMaximum(t *testing.T) {
	last := newType(511, SuffixC)
	_, ok := last.Next()
	assert.False(t, ok)
	prev := newType(511, SuffixB)
	nxt, ok := prev.Next()
	assert.True(t, ok)
	assert.Equal(t, last, nxt)
}

func TestRangeFor(t *testing.T) {
	first, last, ok := RangeFor(ClassVerb)
	assert.True(t, ok)
	assert.Equal(t, "142", first.String())
	assert.Equal(t, "187c", last.String())

	_, _, ok = RangeFor(ClassInterjection)
	assert.False(t, ok)
	_, _, ok = RangeFor(ClassNone)
	assert.False(t, ok)
}

func TestTypeLexicalClass(t *testing.T) {
	expected := map[string]LexicalClass{
		"1":    ClassNoun,
		"75c":  ClassNoun,
		"76":   ClassAdjective,
		"130b": ClassPronoun,
		"131":  ClassNumeral,
		"187c": ClassVerb,
		"188":  ClassAdverb,
		"189":  ClassConjunction,
		"190":  ClassInterjection,
		"191":  ClassParticle,
		"192":  ClassPreposition,
		"200":  ClassNoun,
	}
	for s, class := range expected {
		c, err := MustParseType(s).LexicalClass()
		assert.NoError(t, err)
		assert.Equal(t, class, c, "type %s", s)
	}
	_, err := MustParseType("208").LexicalClass()
	assert.ErrorIs(t, err, ErrMalformedType)
	_, err = Type(0).LexicalClass()
	assert.ErrorIs(t, err, ErrMalformedType)
}

func TestLabelRangesNoun(t *testing.T) {
	ranges := LabelRanges(ClassNoun)
	assert.Len(t, ranges, 2)
	assert.Equal(t, 1, ranges[0].First.Type().Code())
	assert.Equal(t, "75c", ranges[0].Last.Type().String())
	assert.Equal(t, fieldsMask, ranges[0].Last.Fields())
	assert.Equal(t, 193, ranges[1].First.Type().Code())
	assert.Equal(t, "207c", ranges[1].Last.Type().String())
}

func TestLabelRangesSingleCode(t *testing.T) {
	ranges := LabelRanges(ClassParticle)
	assert.Len(t, ranges, 1)
	assert.Equal(t, "191", ranges[0].First.Type().String())
	assert.Equal(t, "191c", ranges[0].Last.Type().String())
	assert.Empty(t, LabelRanges(ClassNone))
}

func TestParseLexicalClass(t *testing.T) {
	c, err := ParseLexicalClass("Verb")
	assert.NoError(t, err)
	assert.Equal(t, ClassVerb, c)
	c, err = ParseLexicalClass("")
	assert.NoError(t, err)
	assert.Equal(t, ClassNone, c)
	_, err = ParseLexicalClass("gerund")
	assert.Error(t, err)
}
