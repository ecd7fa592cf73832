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

// charTable maps tag characters to category values and back.
// The first character listed for a value is the one used
// when formatting a tag.
type charTable[T comparable] struct {
	category string
	decode   map[byte]T
	encode   map[T]byte
}

type charPair[T comparable] struct {
	c byte
	v T
}

func newCharTable[T comparable](category string, pairs ...charPair[T]) charTable[T] {
	ans := charTable[T]{
		category: category,
		decode:   make(map[byte]T),
		encode:   make(map[T]byte),
	}
	for _, p := range pairs {
		ans.decode[p.c] = p.v
		if _, ok := ans.encode[p.v]; !ok {
			ans.encode[p.v] = p.c
		}
	}
	return ans
}

// value returns the category value for the character c. An unset
// position ('-') yields the zero value unless the table maps it
// explicitly.
func (ct charTable[T]) value(c byte) (T, error) {
	if v, ok := ct.decode[c]; ok {
		return v, nil
	}
	var zero T
	if c == unset {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: invalid %s character %q", grammar.ErrMalformedTag, ct.category, c)
}

func (ct charTable[T]) char(v T) byte {
	if c, ok := ct.encode[v]; ok {
		return c
	}
	return unset
}

const unset byte = '-'

var (
	classChars = newCharTable(
		"lexical class",
		charPair[grammar.LexicalClass]{'N', grammar.ClassNoun},
		charPair[grammar.LexicalClass]{'A', grammar.ClassAdjective},
		charPair[grammar.LexicalClass]{'P', grammar.ClassPronoun},
		charPair[grammar.LexicalClass]{'M', grammar.ClassNumeral},
		charPair[grammar.LexicalClass]{'V', grammar.ClassVerb},
		charPair[grammar.LexicalClass]{'D', grammar.ClassAdverb},
		charPair[grammar.LexicalClass]{'C', grammar.ClassConjunction},
		charPair[grammar.LexicalClass]{'I', grammar.ClassInterjection},
		charPair[grammar.LexicalClass]{'T', grammar.ClassParticle},
		charPair[grammar.LexicalClass]{'R', grammar.ClassPreposition},
	)

	genderChars = newCharTable(
		"gender",
		charPair[grammar.Gender]{'m', grammar.GenderMasculine},
		charPair[grammar.Gender]{'f', grammar.GenderFeminine},
		charPair[grammar.Gender]{'n', grammar.GenderNeuter},
	)

	numberChars = newCharTable(
		"number",
		charPair[grammar.Number]{'s', grammar.NumberSingular},
		charPair[grammar.Number]{'p', grammar.NumberPlural},
		charPair[grammar.Number]{'l', grammar.NumberOnlyPlural},
		charPair[grammar.Number]{'t', grammar.NumberCountForm},
	)

	articleChars = newCharTable(
		"article",
		charPair[grammar.Article]{'i', grammar.ArticleIndefinite},
		charPair[grammar.Article]{'d', grammar.ArticleDefinite},
		charPair[grammar.Article]{'h', grammar.ArticleDefinite},
		charPair[grammar.Article]{'f', grammar.ArticleDefiniteFull},
	)

	personChars = newCharTable(
		"person",
		charPair[grammar.Person]{'1', grammar.PersonFirst},
		charPair[grammar.Person]{'2', grammar.PersonSecond},
		charPair[grammar.Person]{'3', grammar.PersonThird},
	)

	nounTypeChars = newCharTable(
		"noun type",
		charPair[grammar.NounType]{'c', grammar.NounTypeCommon},
		charPair[grammar.NounType]{'p', grammar.NounTypeProper},
	)

	nounCaseChars = newCharTable(
		"noun case",
		charPair[grammar.NounCase]{'v', grammar.NounCaseVocative},
		charPair[grammar.NounCase]{'a', grammar.NounCaseAccusative},
		charPair[grammar.NounCase]{'d', grammar.NounCaseDative},
	)

	pronounTypeChars = newCharTable(
		"pronoun type",
		charPair[grammar.PronounType]{'p', grammar.PronounTypePersonal},
		charPair[grammar.PronounType]{'d', grammar.PronounTypeDemonstrative},
		charPair[grammar.PronounType]{'r', grammar.PronounTypeRelative},
		charPair[grammar.PronounType]{'c', grammar.PronounTypeCollective},
		charPair[grammar.PronounType]{'i', grammar.PronounTypeInterrogative},
		charPair[grammar.PronounType]{'f', grammar.PronounTypeIndefinite},
		charPair[grammar.PronounType]{'n', grammar.PronounTypeNegative},
		charPair[grammar.PronounType]{'s', grammar.PronounTypePossessive},
	)

	// old forms have no BTB representation
	pronounFormChars = newCharTable(
		"pronoun form",
		charPair[grammar.PronounForm]{'l', grammar.PronounFormFull},
		charPair[grammar.PronounForm]{'t', grammar.PronounFormShort},
	)

	pronounCaseChars = newCharTable(
		"pronoun case",
		charPair[grammar.PronounCase]{'o', grammar.PronounCaseNominative},
		charPair[grammar.PronounCase]{'a', grammar.PronounCaseAccusative},
		charPair[grammar.PronounCase]{'d', grammar.PronounCaseDative},
	)

	numeralTypeChars = newCharTable(
		"numeral type",
		charPair[grammar.NumeralType]{'c', grammar.NumeralTypeCardinal},
		charPair[grammar.NumeralType]{'o', grammar.NumeralTypeOrdinal},
		charPair[grammar.NumeralType]{'d', grammar.NumeralTypeAdverbial},
		charPair[grammar.NumeralType]{'y', grammar.NumeralTypeFuzzy},
	)

	verbTypeChars = newCharTable(
		"verb type",
		charPair[grammar.VerbType]{'p', grammar.VerbTypePersonal},
		charPair[grammar.VerbType]{'n', grammar.VerbTypeImpersonal},
		charPair[grammar.VerbType]{'x', grammar.VerbTypeAuxiliary},
		charPair[grammar.VerbType]{'y', grammar.VerbTypeAuxiliary2},
		charPair[grammar.VerbType]{'i', grammar.VerbTypeAuxiliary3},
		charPair[grammar.VerbType]{unset, grammar.VerbTypeNone},
	)

	aspectChars = newCharTable(
		"aspect",
		charPair[grammar.Aspect]{'i', grammar.AspectImperfective},
		charPair[grammar.Aspect]{'p', grammar.AspectPerfective},
	)

	transitivityChars = newCharTable(
		"transitivity",
		charPair[grammar.Transitivity]{'t', grammar.TransitivityTransitive},
		charPair[grammar.Transitivity]{'i', grammar.TransitivityIntransitive},
	)

	verbFormChars = newCharTable(
		"verb form",
		charPair[grammar.VerbForm]{'f', grammar.VerbFormIndicative},
		charPair[grammar.VerbForm]{'z', grammar.VerbFormImperative},
		charPair[grammar.VerbForm]{'u', grammar.VerbFormConditional},
		charPair[grammar.VerbForm]{'c', grammar.VerbFormParticiple},
		charPair[grammar.VerbForm]{'g', grammar.VerbFormGerund},
	)

	voiceChars = newCharTable(
		"voice",
		charPair[grammar.Voice]{'a', grammar.VoiceActive},
		charPair[grammar.Voice]{'v', grammar.VoicePassive},
	)

	tenseChars = newCharTable(
		"tense",
		charPair[grammar.Tense]{'r', grammar.TensePresent},
		charPair[grammar.Tense]{'o', grammar.TenseAorist},
		charPair[grammar.Tense]{'m', grammar.TenseImperfect},
		charPair[grammar.Tense]{'t', grammar.TensePast},
	)
)
