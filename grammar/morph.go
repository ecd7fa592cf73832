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

// Morph is a class specific view of the category fields of a label.
// Unlike the packed Label, a Morph value always knows which
// interpretation of the shared bits applies.
type Morph interface {
	Class() LexicalClass
	encode(l Label) Label
}

type NounFeatures struct {
	Type    NounType `json:"type"`
	Gender  Gender   `json:"gender"`
	Number  Number   `json:"number"`
	Article Article  `json:"article"`
	Case    NounCase `json:"case"`
}

func (f NounFeatures) Class() LexicalClass {
	return ClassNoun
}

func (f NounFeatures) encode(l Label) Label {
	return l.WithNounType(f.Type).
		WithGender(f.Gender).
		WithNumber(f.Number).
		WithArticle(f.Article).
		WithNounCase(f.Case)
}

type AdjectiveFeatures struct {
	Gender  Gender        `json:"gender"`
	Number  Number        `json:"number"`
	Article Article       `json:"article"`
	Case    AdjectiveCase `json:"case"`
}

func (f AdjectiveFeatures) Class() LexicalClass {
	return ClassAdjective
}

func (f AdjectiveFeatures) encode(l Label) Label {
	return l.WithGender(f.Gender).
		WithNumber(f.Number).
		WithArticle(f.Article).
		WithAdjectiveCase(f.Case)
}

type PronounFeatures struct {
	Type    PronounType `json:"type"`
	Form    PronounForm `json:"form"`
	Case    PronounCase `json:"case"`
	Number  Number      `json:"number"`
	Person  Person      `json:"person"`
	Gender  Gender      `json:"gender"`
	Article Article     `json:"article"`
}

func (f PronounFeatures) Class() LexicalClass {
	return ClassPronoun
}

func (f PronounFeatures) encode(l Label) Label {
	return l.WithPronounType(f.Type).
		WithPronounForm(f.Form).
		WithPronounCase(f.Case).
		WithNumber(f.Number).
		WithPerson(f.Person).
		WithGender(f.Gender).
		WithArticle(f.Article)
}

type NumeralFeatures struct {
	Type    NumeralType `json:"type"`
	Gender  Gender      `json:"gender"`
	Number  Number      `json:"number"`
	Article Article     `json:"article"`
}

func (f NumeralFeatures) Class() LexicalClass {
	return ClassNumeral
}

func (f NumeralFeatures) encode(l Label) Label {
	return l.WithNumeralType(f.Type).
		WithGender(f.Gender).
		WithNumber(f.Number).
		WithArticle(f.Article)
}

type VerbFeatures struct {
	Type         VerbType     `json:"type"`
	Aspect       Aspect       `json:"aspect"`
	Transitivity Transitivity `json:"transitivity"`
	Form         VerbForm     `json:"form"`
	Voice        Voice        `json:"voice"`
	Tense        Tense        `json:"tense"`
	Person       Person       `json:"person"`
	Number       Number       `json:"number"`
	Gender       Gender       `json:"gender"`
	Article      Article      `json:"article"`
}

func (f VerbFeatures) Class() LexicalClass {
	return ClassVerb
}

func (f VerbFeatures) encode(l Label) Label {
	return l.WithVerbType(f.Type).
		WithAspect(f.Aspect).
		WithTransitivity(f.Transitivity).
		WithVerbForm(f.Form).
		WithVoice(f.Voice).
		WithTense(f.Tense).
		WithPerson(f.Person).
		WithNumber(f.Number).
		WithGender(f.Gender).
		WithArticle(f.Article)
}

// BareFeatures stands for classes without any category
// fields (adverbs, conjunctions, interjections, ...)
type BareFeatures struct {
	LexClass LexicalClass `json:"-"`
}

func (f BareFeatures) Class() LexicalClass {
	return f.LexClass
}

func (f BareFeatures) encode(l Label) Label {
	return l
}

// Decode unpacks the category fields of l according to
// the lexical class implied by its type.
func Decode(l Label) (Morph, error) {
	class, err := l.LexicalClass()
	if err != nil {
		return nil, err
	}
	switch class {
	case ClassNoun:
		num, err := l.Number()
		if err != nil {
			return nil, err
		}
		return NounFeatures{
			Type:    l.NounType(),
			Gender:  l.Gender(),
			Number:  num,
			Article: l.Article(),
			Case:    l.NounCase(),
		}, nil
	case ClassAdjective:
		num, err := l.Number()
		if err != nil {
			return nil, err
		}
		return AdjectiveFeatures{
			Gender:  l.Gender(),
			Number:  num,
			Article: l.Article(),
			Case:    l.AdjectiveCase(),
		}, nil
	case ClassPronoun:
		num, err := l.Number()
		if err != nil {
			return nil, err
		}
		return PronounFeatures{
			Type:    l.PronounType(),
			Form:    l.PronounForm(),
			Case:    l.PronounCase(),
			Number:  num,
			Person:  l.Person(),
			Gender:  l.Gender(),
			Article: l.Article(),
		}, nil
	case ClassNumeral:
		num, err := l.Number()
		if err != nil {
			return nil, err
		}
		nt, err := l.NumeralType()
		if err != nil {
			return nil, err
		}
		return NumeralFeatures{
			Type:    nt,
			Gender:  l.Gender(),
			Number:  num,
			Article: l.Article(),
		}, nil
	case ClassVerb:
		return decodeVerb(l)
	}
	return BareFeatures{LexClass: class}, nil
}

func decodeVerb(l Label) (Morph, error) {
	num, err := l.Number()
	if err != nil {
		return nil, err
	}
	form, err := l.VerbForm()
	if err != nil {
		return nil, err
	}
	voice, err := l.Voice()
	if err != nil {
		return nil, err
	}
	tense, err := l.Tense()
	if err != nil {
		return nil, err
	}
	return VerbFeatures{
		Type:         l.VerbType(),
		Aspect:       l.Aspect(),
		Transitivity: l.Transitivity(),
		Form:         form,
		Voice:        voice,
		Tense:        tense,
		Person:       l.Person(),
		Number:       num,
		Gender:       l.Gender(),
		Article:      l.Article(),
	}, nil
}

// Encode packs m into a label of type t. The class of m must
// match the class implied by t.
func Encode(t Type, m Morph) (Label, error) {
	class, err := t.LexicalClass()
	if err != nil {
		return 0, err
	}
	if class != m.Class() {
		return 0, fmt.Errorf(
			"%w: type %s is a %s, features describe a %s",
			ErrLexicalClassMismatch, t, class, m.Class())
	}
	return m.encode(NewLabel(t)), nil
}
