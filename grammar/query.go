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

// Query is a set of optional category values. A nil field means
// "any value". Fields sharing the same bits (e.g. noun case and
// verb type) should not be combined unless the caller knows
// what it does.
type Query struct {
	Gender        *Gender
	Person        *Person
	Article       *Article
	Number        *Number
	NounType      *NounType
	NounCase      *NounCase
	AdjectiveCase *AdjectiveCase
	PronounType   *PronounType
	PronounCase   *PronounCase
	PronounForm   *PronounForm
	VerbType      *VerbType
	Aspect        *Aspect
	Transitivity  *Transitivity
	VerbForm      *VerbForm
	Voice         *Voice
	Tense         *Tense
	NumeralType   *NumeralType
}

type QueryOption func(q *Query)

func QueryWithGender(v Gender) QueryOption {
	return func(q *Query) { q.Gender = &v }
}

func QueryWithPerson(v Person) QueryOption {
	return func(q *Query) { q.Person = &v }
}

func QueryWithArticle(v Article) QueryOption {
	return func(q *Query) { q.Article = &v }
}

func QueryWithNumber(v Number) QueryOption {
	return func(q *Query) { q.Number = &v }
}

func QueryWithNounType(v NounType) QueryOption {
	return func(q *Query) { q.NounType = &v }
}

func QueryWithNounCase(v NounCase) QueryOption {
	return func(q *Query) { q.NounCase = &v }
}

func QueryWithAdjectiveCase(v AdjectiveCase) QueryOption {
	return func(q *Query) { q.AdjectiveCase = &v }
}

func QueryWithPronounType(v PronounType) QueryOption {
	return func(q *Query) { q.PronounType = &v }
}

func QueryWithPronounCase(v PronounCase) QueryOption {
	return func(q *Query) { q.PronounCase = &v }
}

func QueryWithPronounForm(v PronounForm) QueryOption {
	return func(q *Query) { q.PronounForm = &v }
}

func QueryWithVerbType(v VerbType) QueryOption {
	return func(q *Query) { q.VerbType = &v }
}

func QueryWithAspect(v Aspect) QueryOption {
	return func(q *Query) { q.Aspect = &v }
}

func QueryWithTransitivity(v Transitivity) QueryOption {
	return func(q *Query) { q.Transitivity = &v }
}

func QueryWithVerbForm(v VerbForm) QueryOption {
	return func(q *Query) { q.VerbForm = &v }
}

func QueryWithVoice(v Voice) QueryOption {
	return func(q *Query) { q.Voice = &v }
}

func QueryWithTense(v Tense) QueryOption {
	return func(q *Query) { q.Tense = &v }
}

func QueryWithNumeralType(v NumeralType) QueryOption {
	return func(q *Query) { q.NumeralType = &v }
}

func NewQuery(opts ...QueryOption) Query {
	var q Query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Compile turns the query into a mask/value pair. A label
// matches the query iff label & mask == value.
func (q Query) Compile() (mask Label, value Label) {
	if q.Gender != nil {
		mask |= GenderMask
		value = value.WithGender(*q.Gender)
	}
	if q.Person != nil {
		mask |= PersonMask
		value = value.WithPerson(*q.Person)
	}
	if q.Article != nil {
		mask |= ArticleMask
		value = value.WithArticle(*q.Article)
	}
	if q.Number != nil {
		mask |= NumberMask
		value = value.WithNumber(*q.Number)
	}
	if q.NounType != nil {
		mask |= NounTypeMask
		value = value.WithNounType(*q.NounType)
	}
	if q.NounCase != nil {
		mask |= CaseMask
		value = value.WithNounCase(*q.NounCase)
	}
	if q.AdjectiveCase != nil {
		mask |= CaseMask
		value = value.WithAdjectiveCase(*q.AdjectiveCase)
	}
	if q.PronounType != nil {
		mask |= PronounTypeMask
		value = value.WithPronounType(*q.PronounType)
	}
	if q.PronounCase != nil {
		mask |= CaseMask
		value = value.WithPronounCase(*q.PronounCase)
	}
	if q.PronounForm != nil {
		mask |= PronounFormMask
		value = value.WithPronounForm(*q.PronounForm)
	}
	if q.VerbType != nil {
		mask |= VerbTypeMask
		value = value.WithVerbType(*q.VerbType)
	}
	if q.Aspect != nil {
		mask |= AspectMask
		value = value.WithAspect(*q.Aspect)
	}
	if q.Transitivity != nil {
		mask |= TransitivityMask
		value = value.WithTransitivity(*q.Transitivity)
	}
	if q.VerbForm != nil {
		mask |= VerbFormMask
		value = value.WithVerbForm(*q.VerbForm)
	}
	if q.Voice != nil {
		mask |= VoiceMask
		value = value.WithVoice(*q.Voice)
	}
	if q.Tense != nil {
		mask |= TenseMask
		value = value.WithTense(*q.Tense)
	}
	if q.NumeralType != nil {
		mask |= NumeralTypeMask
		value = value.WithNumeralType(*q.NumeralType)
	}
	return
}

func (q Query) IsEmpty() bool {
	mask, _ := q.Compile()
	return mask == 0
}

func (q Query) Matches(l Label) bool {
	mask, value := q.Compile()
	return l&mask == value
}
