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

const (
	defaultImperfectiveVerbTag = "V-i-f-r1s"
	defaultPerfectiveVerbTag   = "V-p-f-r1s"
)

var imperfectiveVerbCodes = map[int]bool{160: true, 162: true, 166: true, 186: true, 187: true}

var feminineProperNounCodes = map[int]bool{196: true, 204: true, 207: true}

// DefaultLabel creates a label for a lemma of the type t in case
// nothing but the type is known about the word.
func DefaultLabel(t grammar.Type) (grammar.Label, error) {
	code := t.Code()
	l := grammar.NewLabel(t)
	switch {
	case code >= 1 && code <= 75:
		l = l.WithNumber(grammar.NumberSingular).WithNounType(grammar.NounTypeCommon)
		switch {
		case code <= 40:
			l = l.WithGender(grammar.GenderMasculine)
		case code <= 53:
			l = l.WithGender(grammar.GenderFeminine)
		default:
			l = l.WithGender(grammar.GenderNeuter)
		}
		if code == 74 || code == 75 {
			l = l.WithNumber(grammar.NumberOnlyPlural)
		}

	case code >= 76 && code <= 89:
		l = l.WithGender(grammar.GenderMasculine).WithNumber(grammar.NumberSingular)
		if code == 89 && t.Suffix() == 0 {
			l = l.WithArticle(grammar.ArticleDefinite)
		}

	case code >= 90 && code <= 130:
		l = l.WithPronounType(defaultPronounType(code))

	case code >= 131 && code <= 141:
		l = defaultNumeral(l, code, t.Suffix())

	case code >= 142 && code <= 187:
		tag := defaultPerfectiveVerbTag
		if imperfectiveVerbCodes[code] {
			tag = defaultImperfectiveVerbTag
		}
		return LabelFromTag(tag, t)

	case code >= 188 && code <= 192:
		// no category fields

	case code >= 193 && code <= 207:
		l = l.WithNounType(grammar.NounTypeProper).
			WithGender(grammar.GenderMasculine).
			WithNumber(grammar.NumberSingular).
			WithArticle(grammar.ArticleIndefinite)
		if feminineProperNounCodes[code] {
			l = l.WithGender(grammar.GenderFeminine)
		}

	default:
		return 0, fmt.Errorf("%w: no default label for type %s", grammar.ErrMalformedType, t)
	}
	return l, nil
}

func defaultPronounType(code int) grammar.PronounType {
	switch {
	case code <= 97:
		return grammar.PronounTypePersonal
	case code <= 105:
		return grammar.PronounTypeDemonstrative
	case code <= 113:
		return grammar.PronounTypePossessive
	case code <= 117:
		return grammar.PronounTypeInterrogative
	case code <= 120:
		return grammar.PronounTypeRelative
	case code <= 123:
		return grammar.PronounTypeIndefinite
	case code <= 126:
		return grammar.PronounTypeNegative
	}
	return grammar.PronounTypeCollective
}

func defaultNumeral(l grammar.Label, code int, suffix rune) grammar.Label {
	if code <= 139 {
		l = l.WithNumeralType(grammar.NumeralTypeCardinal)
	} else {
		l = l.WithNumeralType(grammar.NumeralTypeOrdinal)
	}
	switch {
	case code == 131:
		return l.WithGender(grammar.GenderMasculine).WithNumber(grammar.NumberSingular)
	case code < 137:
		return l.WithGender(grammar.GenderMasculine).WithNumber(grammar.NumberPlural)
	case code == 137:
		// the variant 137a has no unambiguous gender and number
		if suffix == 0 {
			return l.WithGender(grammar.GenderMasculine).WithNumber(grammar.NumberPlural)
		}
		return l
	case code == 138:
		return l.WithGender(grammar.GenderFeminine).WithNumber(grammar.NumberSingular)
	}
	return l.WithGender(grammar.GenderMasculine).WithNumber(grammar.NumberSingular)
}
