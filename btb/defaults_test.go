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
	"testing"

	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/stretchr/testify/assert"
)

func TestFakeType(t *testing.T) {
	expected := map[string]string{
		"Ncmsi": "40c",
		"Ncfsi": "53c",
		"Ncnsi": "75c",
		"Nmsi-": "40c",
		"Nfsi":  "53c",
		"N":     "75c",
		"Amsi":  "89c",
		"Pp":    "130c",
		"Mc":    "141c",
		"Vpitf": "187c",
		"D":     "188c",
		"C":     "189c",
	}
	for tag, typ := range expected {
		tp, err := FakeType(tag)
		assert.NoError(t, err)
		assert.Equal(t, typ, tp.String(), "tag %s", tag)
		assert.True(t, tp.IsFake())
	}
	_, err := FakeType("I")
	assert.ErrorIs(t, err, grammar.ErrMalformedTag)
	_, err = FakeType("")
	assert.ErrorIs(t, err, grammar.ErrMalformedTag)
}

func TestDefaultLabel(t *testing.T) {
	expected := map[string]string{
		"12":   "Ncms",
		"45":   "Ncfs",
		"60":   "Ncns",
		"75":   "Ncnl",
		"76":   "Ams",
		"89":   "Amsd",
		"89a":  "Ams",
		"92":   "Pp",
		"100":  "Pd",
		"110":  "Ps",
		"115":  "Pi",
		"119":  "Pr",
		"122":  "Pf",
		"125":  "Pn",
		"128":  "Pc",
		"131":  "Mcms",
		"135":  "Mcmp",
		"137":  "Mcmp",
		"137a": "Mc",
		"138":  "Mcfs",
		"139":  "Mcms",
		"140":  "Moms",
		"150":  "V-ptf-r1s",
		"160":  "V-itf-r1s",
		"187":  "V-itf-r1s",
		"188":  "D",
		"189":  "C",
		"193":  "Npmsi",
		"196":  "Npfsi",
	}
	for typ, tag := range expected {
		l, err := DefaultLabel(grammar.MustParseType(typ))
		assert.NoError(t, err)
		assert.Equal(t, typ, l.Type().String())
		assert.Equal(t, tag, TagOf(l), "type %s", typ)
	}
}

func TestDefaultLabelUnknownType(t *testing.T) {
	_, err := DefaultLabel(grammar.MustParseType("208"))
	assert.ErrorIs(t, err, grammar.ErrMalformedType)
}
