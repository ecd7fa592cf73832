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
	"fmt"
)

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("?%d", v)
	}
	return names[v]
}

func isDeclared(names []string, v int) bool {
	return v >= 0 && v < len(names)
}

func undeclared(category string, v uint32) error {
	return fmt.Errorf("%w: undefined %s value %d", ErrMalformedTag, category, v)
}

// ------------------------ gender

type Gender int

const (
	GenderNone Gender = iota
	GenderMasculine
	GenderFeminine
	GenderNeuter
)

var genderNames = []string{"none", "masculine", "feminine", "neuter"}

func (v Gender) String() string                { return enumName(genderNames, int(v)) }
func (v Gender) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Gender() Gender {
	return Gender(genderField.get(l))
}

func (l Label) WithGender(v Gender) Label {
	if !isDeclared(genderNames, int(v)) {
		return l
	}
	return genderField.set(l, uint32(v))
}

// ------------------------ article

type Article int

const (
	ArticleNone Article = iota
	ArticleIndefinite
	ArticleDefinite
	ArticleDefiniteFull
)

var articleNames = []string{"none", "indefinite", "definite", "full definite"}

func (v Article) String() string                { return enumName(articleNames, int(v)) }
func (v Article) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Article() Article {
	return Article(articleField.get(l))
}

func (l Label) WithArticle(v Article) Label {
	if !isDeclared(articleNames, int(v)) {
		return l
	}
	return articleField.set(l, uint32(v))
}

// ------------------------ number

type Number int

const (
	NumberNone Number = iota
	NumberSingular
	NumberPlural
	NumberCountForm
	NumberOnlyPlural
)

var numberNames = []string{"none", "singular", "plural", "count form", "plurale tantum"}

func (v Number) String() string                { return enumName(numberNames, int(v)) }
func (v Number) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Number() (Number, error) {
	v := numberField.get(l)
	if !isDeclared(numberNames, int(v)) {
		return NumberNone, undeclared("number", v)
	}
	return Number(v), nil
}

func (l Label) WithNumber(v Number) Label {
	if !isDeclared(numberNames, int(v)) {
		return l
	}
	return numberField.set(l, uint32(v))
}

// ------------------------ person

type Person int

const (
	PersonNone Person = iota
	PersonFirst
	PersonSecond
	PersonThird
)

var personNames = []string{"none", "first", "second", "third"}

func (v Person) String() string                { return enumName(personNames, int(v)) }
func (v Person) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Person() Person {
	return Person(personField.get(l))
}

func (l Label) WithPerson(v Person) Label {
	if !isDeclared(personNames, int(v)) {
		return l
	}
	return personField.set(l, uint32(v))
}

// ------------------------ noun type

type NounType int

const (
	NounTypeCommon NounType = iota
	NounTypeProper
)

var nounTypeNames = []string{"common", "proper"}

func (v NounType) String() string                { return enumName(nounTypeNames, int(v)) }
func (v NounType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) NounType() NounType {
	return NounType(nounTypeField.get(l))
}

func (l Label) WithNounType(v NounType) Label {
	if !isDeclared(nounTypeNames, int(v)) {
		return l
	}
	return nounTypeField.set(l, uint32(v))
}

// ------------------------ noun case

type NounCase int

const (
	NounCaseNone NounCase = iota
	NounCaseVocative
	NounCaseAccusative
	NounCaseDative
)

var nounCaseNames = []string{"none", "vocative", "accusative", "dative"}

func (v NounCase) String() string                { return enumName(nounCaseNames, int(v)) }
func (v NounCase) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) NounCase() NounCase {
	return NounCase(caseField.get(l))
}

func (l Label) WithNounCase(v NounCase) Label {
	if !isDeclared(nounCaseNames, int(v)) {
		return l
	}
	return caseField.set(l, uint32(v))
}

// ------------------------ adjective case

type AdjectiveCase int

const (
	AdjectiveCaseNone AdjectiveCase = iota
	AdjectiveCaseExtended
	AdjectiveCaseAccusative
	AdjectiveCaseDative
)

var adjectiveCaseNames = []string{"none", "extended", "accusative", "dative"}

func (v AdjectiveCase) String() string                { return enumName(adjectiveCaseNames, int(v)) }
func (v AdjectiveCase) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) AdjectiveCase() AdjectiveCase {
	return AdjectiveCase(caseField.get(l))
}

func (l Label) WithAdjectiveCase(v AdjectiveCase) Label {
	if !isDeclared(adjectiveCaseNames, int(v)) {
		return l
	}
	return caseField.set(l, uint32(v))
}

// ------------------------ pronoun type

type PronounType int

const (
	PronounTypePersonal PronounType = iota
	PronounTypeDemonstrative
	PronounTypeRelative
	PronounTypeCollective
	PronounTypeInterrogative
	PronounTypeIndefinite
	PronounTypeNegative
	PronounTypePossessive
)

var pronounTypeNames = []string{
	"personal", "demonstrative", "relative", "collective",
	"interrogative", "indefinite", "negative", "possessive",
}

func (v PronounType) String() string                { return enumName(pronounTypeNames, int(v)) }
func (v PronounType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) PronounType() PronounType {
	return PronounType(pronounTypeField.get(l))
}

func (l Label) WithPronounType(v PronounType) Label {
	if !isDeclared(pronounTypeNames, int(v)) {
		return l
	}
	return pronounTypeField.set(l, uint32(v))
}

// ------------------------ pronoun case

type PronounCase int

const (
	PronounCaseNone PronounCase = iota
	PronounCaseNominative
	PronounCaseAccusative
	PronounCaseDative
)

var pronounCaseNames = []string{"none", "nominative", "accusative", "dative"}

func (v PronounCase) String() string                { return enumName(pronounCaseNames, int(v)) }
func (v PronounCase) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) PronounCase() PronounCase {
	return PronounCase(caseField.get(l))
}

func (l Label) WithPronounCase(v PronounCase) Label {
	if !isDeclared(pronounCaseNames, int(v)) {
		return l
	}
	return caseField.set(l, uint32(v))
}

// ------------------------ pronoun form

type PronounForm int

const (
	PronounFormNone PronounForm = iota
	PronounFormFull
	PronounFormShort
	PronounFormOld
)

var pronounFormNames = []string{"none", "full", "short", "old"}

func (v PronounForm) String() string                { return enumName(pronounFormNames, int(v)) }
func (v PronounForm) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) PronounForm() PronounForm {
	return PronounForm(pronounFormField.get(l))
}

func (l Label) WithPronounForm(v PronounForm) Label {
	if !isDeclared(pronounFormNames, int(v)) {
		return l
	}
	return pronounFormField.set(l, uint32(v))
}

// ------------------------ verb type

// VerbType of a verb. Auxiliary verbs share a single bit
// pattern, the concrete variant is derived from the type
// code (142, 143 and 186).
type VerbType int

const (
	VerbTypePersonal VerbType = iota
	VerbTypeImpersonal
	VerbTypeAuxiliary
	VerbTypeNone
	VerbTypeAuxiliary2
	VerbTypeAuxiliary3
)

var verbTypeNames = []string{
	"personal", "impersonal", "auxiliary", "none", "auxiliary 2", "auxiliary 3",
}

func (v VerbType) String() string                { return enumName(verbTypeNames, int(v)) }
func (v VerbType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) VerbType() VerbType {
	v := VerbType(verbTypeField.get(l))
	if v == VerbTypeAuxiliary {
		switch l.Type().Code() {
		case 143:
			return VerbTypeAuxiliary2
		case 186:
			return VerbTypeAuxiliary3
		}
	}
	return v
}

func (l Label) WithVerbType(v VerbType) Label {
	switch v {
	case VerbTypePersonal, VerbTypeImpersonal, VerbTypeAuxiliary, VerbTypeNone:
		return verbTypeField.set(l, uint32(v))
	case VerbTypeAuxiliary2, VerbTypeAuxiliary3:
		return verbTypeField.set(l, uint32(VerbTypeAuxiliary))
	}
	return l
}

// ------------------------ aspect

type Aspect int

const (
	AspectImperfective Aspect = iota
	AspectPerfective
)

var aspectNames = []string{"imperfective", "perfective"}

func (v Aspect) String() string                { return enumName(aspectNames, int(v)) }
func (v Aspect) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Aspect() Aspect {
	return Aspect(aspectField.get(l))
}

func (l Label) WithAspect(v Aspect) Label {
	if !isDeclared(aspectNames, int(v)) {
		return l
	}
	return aspectField.set(l, uint32(v))
}

// ------------------------ transitivity

type Transitivity int

const (
	TransitivityTransitive Transitivity = iota
	TransitivityIntransitive
)

var transitivityNames = []string{"transitive", "intransitive"}

func (v Transitivity) String() string                { return enumName(transitivityNames, int(v)) }
func (v Transitivity) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Transitivity() Transitivity {
	return Transitivity(transitivityField.get(l))
}

func (l Label) WithTransitivity(v Transitivity) Label {
	if !isDeclared(transitivityNames, int(v)) {
		return l
	}
	return transitivityField.set(l, uint32(v))
}

// ------------------------ verb form

type VerbForm int

const (
	VerbFormIndicative VerbForm = iota
	VerbFormImperative
	VerbFormConditional
	VerbFormParticiple
	VerbFormGerund
)

var verbFormNames = []string{"indicative", "imperative", "conditional", "participle", "gerund"}

func (v VerbForm) String() string                { return enumName(verbFormNames, int(v)) }
func (v VerbForm) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) VerbForm() (VerbForm, error) {
	v := verbFormField.get(l)
	if !isDeclared(verbFormNames, int(v)) {
		return VerbFormIndicative, undeclared("verb form", v)
	}
	return VerbForm(v), nil
}

func (l Label) WithVerbForm(v VerbForm) Label {
	if !isDeclared(verbFormNames, int(v)) {
		return l
	}
	return verbFormField.set(l, uint32(v))
}

// ------------------------ voice

type Voice int

const (
	VoiceNone Voice = iota
	VoiceActive
	VoicePassive
)

var voiceNames = []string{"none", "active", "passive"}

func (v Voice) String() string                { return enumName(voiceNames, int(v)) }
func (v Voice) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Voice() (Voice, error) {
	v := voiceField.get(l)
	if !isDeclared(voiceNames, int(v)) {
		return VoiceNone, undeclared("voice", v)
	}
	return Voice(v), nil
}

func (l Label) WithVoice(v Voice) Label {
	if !isDeclared(voiceNames, int(v)) {
		return l
	}
	return voiceField.set(l, uint32(v))
}

// ------------------------ tense

type Tense int

const (
	TenseNone Tense = iota
	TensePresent
	TenseAorist
	TenseImperfect
	TensePast
)

var tenseNames = []string{"none", "present", "aorist", "imperfect", "past"}

func (v Tense) String() string                { return enumName(tenseNames, int(v)) }
func (v Tense) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) Tense() (Tense, error) {
	v := tenseField.get(l)
	if !isDeclared(tenseNames, int(v)) {
		return TenseNone, undeclared("tense", v)
	}
	return Tense(v), nil
}

func (l Label) WithTense(v Tense) Label {
	if !isDeclared(tenseNames, int(v)) {
		return l
	}
	return tenseField.set(l, uint32(v))
}

// ------------------------ numeral type

type NumeralType int

const (
	NumeralTypeNone NumeralType = iota
	NumeralTypeCardinal
	NumeralTypeOrdinal
	NumeralTypeAdverbial
	NumeralTypeFuzzy
)

var numeralTypeNames = []string{"none", "cardinal", "ordinal", "adverbial", "fuzzy"}

func (v NumeralType) String() string                { return enumName(numeralTypeNames, int(v)) }
func (v NumeralType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (l Label) NumeralType() (NumeralType, error) {
	v := numeralTypeField.get(l)
	if !isDeclared(numeralTypeNames, int(v)) {
		return NumeralTypeNone, undeclared("numeral type", v)
	}
	return NumeralType(v), nil
}

func (l Label) WithNumeralType(v NumeralType) Label {
	if !isDeclared(numeralTypeNames, int(v)) {
		return l
	}
	return numeralTypeField.set(l, uint32(v))
}
