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

// Label is a packed grammatical label. Bits 21-31 hold
// the grammatical type, bits 0-20 hold category fields.
//
// The field positions are shared among lexical classes
// (e.g. bits 9-10 hold a case for nouns and pronouns but
// a verb type for verbs). There is nothing in the label
// telling which interpretation applies except for the type,
// so a caller must always use accessors matching the label's
// lexical class.
type Label uint32

const (
	fieldsMask Label = 1<<suffixOffset - 1
)

type field struct {
	offset uint
	mask   Label
}

func newField(offset uint, width uint) field {
	return field{offset: offset, mask: Label(1<<width-1) << offset}
}

func (f field) get(l Label) uint32 {
	return uint32((l & f.mask) >> f.offset)
}

func (f field) set(l Label, v uint32) Label {
	return (l &^ f.mask) | (Label(v)<<f.offset)&f.mask
}

var (
	genderField       = newField(0, 2)
	articleField      = newField(2, 2)
	numberField       = newField(4, 3)
	personField       = newField(7, 2)
	numeralTypeField  = newField(7, 3)
	caseField         = newField(9, 2)
	nounTypeField     = newField(11, 1)
	pronounTypeField  = newField(11, 3)
	pronounFormField  = newField(14, 2)
	verbTypeField     = newField(9, 2)
	aspectField       = newField(11, 1)
	transitivityField = newField(12, 1)
	verbFormField     = newField(13, 3)
	voiceField        = newField(16, 2)
	tenseField        = newField(18, 3)
)

// category masks, mainly for building search queries
var (
	GenderMask       = genderField.mask
	ArticleMask      = articleField.mask
	NumberMask       = numberField.mask
	PersonMask       = personField.mask
	NumeralTypeMask  = numeralTypeField.mask
	CaseMask         = caseField.mask
	NounTypeMask     = nounTypeField.mask
	PronounTypeMask  = pronounTypeField.mask
	PronounFormMask  = pronounFormField.mask
	VerbTypeMask     = verbTypeField.mask
	AspectMask       = aspectField.mask
	TransitivityMask = transitivityField.mask
	VerbFormMask     = verbFormField.mask
	VoiceMask        = voiceField.mask
	TenseMask        = tenseField.mask
	TypeMask         = Label(typeMask)
)

// NewLabel creates a label with the type t and no category fields set
func NewLabel(t Type) Label {
	return Label(t & typeMask)
}

func (l Label) Type() Type {
	return Type(l) & typeMask
}

// WithType replaces the type part of the label, category
// fields are preserved.
func (l Label) WithType(t Type) Label {
	return l.Fields() | Label(t&typeMask)
}

// Fields returns the label with the type part cleared
func (l Label) Fields() Label {
	return l & fieldsMask
}

func (l Label) LexicalClass() (LexicalClass, error) {
	return l.Type().LexicalClass()
}

// LexicalClassOf derives the lexical class from the type encoded
// in the label. This must be known before any category accessor is
// called as the same bits mean different things for different classes.
func LexicalClassOf(l Label) (LexicalClass, error) {
	return l.Type().LexicalClass()
}
