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

func TestEmptyQuery(t *testing.T) {
	q := NewQuery()
	mask, value := q.Compile()
	assert.Equal(t, Label(0), mask)
	assert.Equal(t, Label(0), value)
	assert.True(t, q.IsEmpty())
	assert.True(t, q.Matches(allFieldsSet))
}

func TestQueryCompile(t *testing.T) {
	q := NewQuery(QueryWithGender(GenderFeminine), QueryWithNumber(NumberPlural))
	mask, value := q.Compile()
	assert.Equal(t, GenderMask|NumberMask, mask)
	assert.Equal(t, Label(0x22), value)
}

func TestQueryZeroValueStillRestricts(t *testing.T) {
	q := NewQuery(QueryWithAspect(AspectImperfective))
	assert.False(t, q.IsEmpty())
	tp := MustParseType("150")
	assert.True(t, q.Matches(NewLabel(tp).WithAspect(AspectImperfective)))
	assert.False(t, q.Matches(NewLabel(tp).WithAspect(AspectPerfective)))
}

func TestQueryMatches(t *testing.T) {
	q := NewQuery(
		QueryWithVerbForm(VerbFormParticiple),
		QueryWithTense(TensePast),
	)
	tp := MustParseType("160")
	l := NewLabel(tp).
		WithVerbForm(VerbFormParticiple).
		WithTense(TensePast).
		WithGender(GenderNeuter).
		WithNumber(NumberSingular)
	assert.True(t, q.Matches(l))
	assert.False(t, q.Matches(l.WithTense(TenseAorist)))
}
