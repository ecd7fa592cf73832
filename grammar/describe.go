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
	"strings"

	"golang.org/x/text/message"
)

type descBuilder struct {
	printer *message.Printer
	items   []string
}

func (b *descBuilder) add(v fmt.Stringer) {
	b.items = append(b.items, b.printer.Sprintf(v.String()))
}

// addSet adds v unless it is the "none" value of its category
func (b *descBuilder) addSet(v fmt.Stringer, none fmt.Stringer) {
	if v.String() != none.String() {
		b.add(v)
	}
}

// Describe produces a human readable (and localized via p)
// description of a label, e.g. "noun, common, masculine, singular".
// Lemmas are marked with a "(lemma)" prefix.
func Describe(p *message.Printer, l Label, isLemma bool) string {
	b := &descBuilder{printer: p}
	m, err := Decode(l)
	if err != nil {
		return p.Sprintf("invalid label %d", uint32(l))
	}
	class := b.printer.Sprintf(m.Class().String())
	switch f := m.(type) {
	case NounFeatures:
		b.add(f.Type)
		b.add(f.Gender)
		b.addSet(f.Article, ArticleNone)
		b.add(f.Number)
		if f.Case != NounCaseNone {
			class += " (" + p.Sprintf(f.Case.String()) + ")"
		}
	case AdjectiveFeatures:
		if f.Number == NumberSingular {
			b.add(f.Gender)
		}
		b.add(f.Number)
		b.add(f.Article)
		if f.Case != AdjectiveCaseNone {
			class += " (" + p.Sprintf(f.Case.String()) + ")"
		}
	case PronounFeatures:
		b.add(f.Type)
		b.addSet(f.Form, PronounFormNone)
		b.addSet(f.Case, PronounCaseNone)
		b.addSet(f.Number, NumberNone)
		b.addSet(f.Person, PersonNone)
		if f.Number == NumberSingular {
			b.addSet(f.Gender, GenderNone)
		}
		b.addSet(f.Article, ArticleNone)
	case NumeralFeatures:
		b.addSet(f.Type, NumeralTypeNone)
		b.addSet(f.Gender, GenderNone)
		b.addSet(f.Number, NumberNone)
		b.addSet(f.Article, ArticleNone)
	case VerbFeatures:
		b.add(f.Type)
		b.add(f.Aspect)
		b.add(f.Transitivity)
		b.add(f.Form)
		b.addSet(f.Voice, VoiceNone)
		b.addSet(f.Tense, TenseNone)
		b.addSet(f.Person, PersonNone)
		b.addSet(f.Number, NumberNone)
		b.addSet(f.Gender, GenderNone)
		b.addSet(f.Article, ArticleNone)
	}
	var ans strings.Builder
	if isLemma {
		ans.WriteString("(")
		ans.WriteString(p.Sprintf("lemma"))
		ans.WriteString(") ")
	}
	ans.WriteString(class)
	for _, item := range b.items {
		ans.WriteString(", ")
		ans.WriteString(item)
	}
	return ans.String()
}
