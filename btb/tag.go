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

// Package btb converts between BTB-TS positional tags
// (e.g. "Ncmsi", "Vpitf-r3s") and packed grammatical labels.
package btb

import (
	"fmt"
	"strings"

	"github.com/grigoriliev/lingua-bg/grammar"
)

type tagReader struct {
	tag string
	err error
}

func (r *tagReader) at(pos int) byte {
	if pos < len(r.tag) {
		return r.tag[pos]
	}
	return unset
}

// readPos decodes a tag position using ct. After the first
// failure, the reader keeps returning zero values.
func readPos[T comparable](r *tagReader, ct charTable[T], pos int) T {
	var zero T
	if r.err != nil {
		return zero
	}
	v, err := ct.value(r.at(pos))
	if err != nil {
		r.err = fmt.Errorf("%w (tag %s, position %d)", err, r.tag, pos+1)
		return zero
	}
	return v
}

// TagClass returns the lexical class named by the first
// character of the tag.
func TagClass(tag string) (grammar.LexicalClass, error) {
	if tag == "" {
		return grammar.ClassNone, fmt.Errorf("%w: empty tag", grammar.ErrMalformedTag)
	}
	class, err := classChars.value(tag[0])
	if err != nil || class == grammar.ClassNone {
		return grammar.ClassNone, fmt.Errorf("%w: unknown lexical class in tag %s", grammar.ErrMalformedTag, tag)
	}
	return class, nil
}

// isShortNounTag tells whether a noun tag omits the noun type
// position (e.g. "Nmsi" instead of "Ncmsi"). Such tags describe
// common nouns.
func isShortNounTag(tag string) bool {
	if len(tag) < 2 {
		return false
	}
	_, isType := nounTypeChars.decode[tag[1]]
	_, isGender := genderChars.decode[tag[1]]
	return !isType && isGender
}

func tagToMorph(tag string, class grammar.LexicalClass) (grammar.Morph, error) {
	r := &tagReader{tag: tag}
	var ans grammar.Morph
	switch class {
	case grammar.ClassNoun:
		if isShortNounTag(tag) {
			ans = grammar.NounFeatures{
				Type:    grammar.NounTypeCommon,
				Gender:  readPos(r, genderChars, 1),
				Number:  readPos(r, numberChars, 2),
				Article: readPos(r, articleChars, 3),
				Case:    readPos(r, nounCaseChars, 4),
			}
			break
		}
		ans = grammar.NounFeatures{
			Type:    readPos(r, nounTypeChars, 1),
			Gender:  readPos(r, genderChars, 2),
			Number:  readPos(r, numberChars, 3),
			Article: readPos(r, articleChars, 4),
			Case:    readPos(r, nounCaseChars, 5),
		}
	case grammar.ClassAdjective:
		ans = grammar.AdjectiveFeatures{
			Gender:  readPos(r, genderChars, 1),
			Number:  readPos(r, numberChars, 2),
			Article: readPos(r, articleChars, 3),
		}
	case grammar.ClassPronoun:
		// position 3 (P03) is not encoded
		ans = grammar.PronounFeatures{
			Type:    readPos(r, pronounTypeChars, 1),
			Form:    readPos(r, pronounFormChars, 3),
			Case:    readPos(r, pronounCaseChars, 4),
			Number:  readPos(r, numberChars, 5),
			Person:  readPos(r, personChars, 6),
			Gender:  readPos(r, genderChars, 7),
			Article: readPos(r, articleChars, 8),
		}
	case grammar.ClassNumeral:
		ans = grammar.NumeralFeatures{
			Type:    readPos(r, numeralTypeChars, 1),
			Gender:  readPos(r, genderChars, 2),
			Number:  readPos(r, numberChars, 3),
			Article: readPos(r, articleChars, 4),
		}
	case grammar.ClassVerb:
		ans = grammar.VerbFeatures{
			Type:         readPos(r, verbTypeChars, 1),
			Aspect:       readPos(r, aspectChars, 2),
			Transitivity: readPos(r, transitivityChars, 3),
			Form:         readPos(r, verbFormChars, 4),
			Voice:        readPos(r, voiceChars, 5),
			Tense:        readPos(r, tenseChars, 6),
			Person:       readPos(r, personChars, 7),
			Number:       readPos(r, numberChars, 8),
			Gender:       readPos(r, genderChars, 9),
			Article:      readPos(r, articleChars, 10),
		}
	default:
		ans = grammar.BareFeatures{LexClass: class}
	}
	if r.err != nil {
		return nil, r.err
	}
	return ans, nil
}

// LabelFromTag encodes tag into a label of the type t. Positions
// missing at the end of the tag are treated as unset.
func LabelFromTag(tag string, t grammar.Type) (grammar.Label, error) {
	class, err := TagClass(tag)
	if err != nil {
		return 0, err
	}
	typeClass, err := t.LexicalClass()
	if err != nil {
		return 0, err
	}
	if class != typeClass {
		return 0, fmt.Errorf(
			"%w: tag %s does not match type %s (%s)",
			grammar.ErrLexicalClassMismatch, tag, t, typeClass)
	}
	m, err := tagToMorph(tag, class)
	if err != nil {
		return 0, err
	}
	return grammar.Encode(t, m)
}

// ParseTag encodes a tag without a known grammatical type,
// a synthetic type is derived from the tag itself (see FakeType).
func ParseTag(tag string) (grammar.Label, error) {
	t, err := FakeType(tag)
	if err != nil {
		return 0, err
	}
	return LabelFromTag(tag, t)
}

type tagWriter struct {
	buff strings.Builder
}

func (w *tagWriter) put(c byte) *tagWriter {
	w.buff.WriteByte(c)
	return w
}

func (w *tagWriter) String() string {
	return strings.TrimRight(w.buff.String(), string(unset))
}

// LabelToTag formats the label as a BTB-TS tag with trailing
// unset positions removed.
func LabelToTag(l grammar.Label) (string, error) {
	m, err := grammar.Decode(l)
	if err != nil {
		return "", fmt.Errorf("%w: cannot format label %d: %w", grammar.ErrMalformedTag, uint32(l), err)
	}
	w := &tagWriter{}
	w.put(classChars.char(m.Class()))
	switch f := m.(type) {
	case grammar.NounFeatures:
		art := articleChars.char(f.Article)
		if f.Gender == grammar.GenderMasculine && f.Article == grammar.ArticleDefinite {
			art = 'h'
		}
		w.put(nounTypeChars.char(f.Type)).
			put(genderChars.char(f.Gender)).
			put(numberChars.char(f.Number)).
			put(art).
			put(nounCaseChars.char(f.Case))
	case grammar.AdjectiveFeatures:
		w.put(genderChars.char(f.Gender)).
			put(numberChars.char(f.Number)).
			put(articleChars.char(f.Article))
	case grammar.PronounFeatures:
		w.put(pronounTypeChars.char(f.Type)).
			put(unset).
			put(pronounFormChars.char(f.Form)).
			put(pronounCaseChars.char(f.Case)).
			put(numberChars.char(f.Number)).
			put(personChars.char(f.Person)).
			put(genderChars.char(f.Gender)).
			put(articleChars.char(f.Article))
	case grammar.NumeralFeatures:
		w.put(numeralTypeChars.char(f.Type)).
			put(genderChars.char(f.Gender)).
			put(numberChars.char(f.Number)).
			put(articleChars.char(f.Article))
	case grammar.VerbFeatures:
		w.put(verbTypeChars.char(f.Type)).
			put(aspectChars.char(f.Aspect)).
			put(transitivityChars.char(f.Transitivity)).
			put(verbFormChars.char(f.Form)).
			put(voiceChars.char(f.Voice)).
			put(tenseChars.char(f.Tense)).
			put(personChars.char(f.Person)).
			put(numberChars.char(f.Number)).
			put(genderChars.char(f.Gender)).
			put(articleChars.char(f.Article))
	}
	return w.String(), nil
}

// TagOf is like LabelToTag but it returns an empty
// string for labels which cannot be formatted.
func TagOf(l grammar.Label) string {
	tag, err := LabelToTag(l)
	if err != nil {
		return ""
	}
	return tag
}
