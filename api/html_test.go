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

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Word        string
	Type        string
	Tag         string
	Description string
}

type testLexeme struct {
	Lemma testForm
	Forms []testForm
}

func TestWriteHTMLResponse(t *testing.T) {
	w := httptest.NewRecorder()
	page := struct {
		Lang     string
		Word     string
		NotFound string
		Lexemes  []testLexeme
	}{
		Lang: "bg",
		Word: "котка",
		Lexemes: []testLexeme{
			{
				Lemma: testForm{Word: "котка", Type: "41"},
				Forms: []testForm{{Word: "котки", Tag: "Ncfpi", Description: "<plural>"}},
			},
		},
	}
	require.NoError(t, WriteHTMLResponse(w, http.StatusOK, page))
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `<html lang="bg">`)
	assert.Contains(t, w.Body.String(), "<td>котки</td>")
	assert.Contains(t, w.Body.String(), "&lt;plural&gt;")
}

func TestWriteHTMLResponseNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	page := struct {
		Lang     string
		Word     string
		NotFound string
		Lexemes  []testLexeme
	}{Lang: "en", Word: "xyz", NotFound: "No lexeme found"}
	require.NoError(t, WriteHTMLResponse(w, http.StatusNotFound, page))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No lexeme found")
}
