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

package lookup

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/grigoriliev/lingua-bg/btb"
	"github.com/grigoriliev/lingua-bg/grammar"
)

// Words godoc
// @Summary      Find all the entries spelled exactly as the word
// @Produce      json
// @Param        word path string true "searched word"
// @Param        lang query string false "language of descriptions"
// @Success      200 {object} entriesResponse
// @Failure      404 {object} uniresp.ActionError
// @Router       /words/{word} [get]
func (a *Actions) Words(ctx *gin.Context) {
	word := ctx.Param("word")
	entries := a.store.FindExact(word)
	if len(entries) == 0 {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("word %s not found", word), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		entriesResponse{Query: word, Entries: a.exportEntries(a.printer(ctx), entries)},
	)
}

// Lemmas godoc
// @Summary      Find lemmas of the word
// @Description  Returns lemmas of all the entries spelled as the word. With the tag, only entries with matching tags are considered.
// @Produce      json
// @Param        word path string true "searched word"
// @Param        tag query string false "BTB tag (or its prefix) of the word"
// @Success      200 {object} entriesResponse
// @Router       /lemmas/{word} [get]
func (a *Actions) Lemmas(ctx *gin.Context) {
	word := ctx.Param("word")
	lemmas := a.store.FindLemmas(word, ctx.Query("tag"))
	uniresp.WriteJSONResponse(
		ctx.Writer,
		entriesResponse{Query: word, Entries: a.exportEntries(a.printer(ctx), lemmas)},
	)
}

// Lexemes godoc
// @Summary      Get lexemes of all the lemmas spelled as the word
// @Produce      json
// @Param        word path string true "lemma"
// @Success      200 {array} lexemeInfo
// @Failure      404 {object} uniresp.ActionError
// @Router       /lexemes/{word} [get]
func (a *Actions) Lexemes(ctx *gin.Context) {
	word := ctx.Param("word")
	lexemes := a.store.Lexemes(word)
	if len(lexemes) == 0 {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("lemma %s not found", word), http.StatusNotFound)
		return
	}
	p := a.printer(ctx)
	ans := make([]lexemeInfo, len(lexemes))
	for i, lx := range lexemes {
		ans[i] = a.exportLexeme(p, lx)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Suffix godoc
// @Summary      Find entries ending with the suffix
// @Produce      json
// @Param        suffix path string true "word suffix"
// @Param        limit query int false "max. number of returned entries"
// @Success      200 {object} entriesResponse
// @Router       /suffix/{suffix} [get]
func (a *Actions) Suffix(ctx *gin.Context) {
	limit, ok := a.getLimit(ctx)
	if !ok {
		return
	}
	suffix := ctx.Param("suffix")
	entries := a.store.FindEndsWith(suffix)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		entriesResponse{Query: suffix, Entries: a.exportEntries(a.printer(ctx), entries)},
	)
}

// WordsByType godoc
// @Summary      Find entries of a grammatical type
// @Produce      json
// @Param        type path string true "grammatical type (e.g. 45, 76a)"
// @Param        limit query int false "max. number of returned entries"
// @Success      200 {object} entriesResponse
// @Failure      400 {object} uniresp.ActionError
// @Router       /types/{type} [get]
func (a *Actions) WordsByType(ctx *gin.Context) {
	limit, ok := a.getLimit(ctx)
	if !ok {
		return
	}
	t, err := grammar.ParseType(ctx.Param("type"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, errorStatus(err))
		return
	}
	entries := a.store.WordsByType(t)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		entriesResponse{Query: t.String(), Entries: a.exportEntries(a.printer(ctx), entries)},
	)
}

// Entry godoc
// @Summary      Get an entry by its ID
// @Produce      json
// @Param        id path int true "entry ID"
// @Success      200 {object} entryInfo
// @Failure      400 {object} uniresp.ActionError
// @Failure      404 {object} uniresp.ActionError
// @Router       /entries/{id} [get]
func (a *Actions) Entry(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("invalid entry ID: %w", err), http.StatusBadRequest)
		return
	}
	entry, ok := a.store.EntryByID(id)
	if !ok {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("entry %d not found", id), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, a.exportEntry(a.printer(ctx), entry))
}

type statsResponse struct {
	Size           int   `json:"size"`
	Words          int   `json:"words"`
	Lemmas         int   `json:"lemmas"`
	Labels         int   `json:"labels"`
	LemmaAmbiguity []int `json:"lemmaAmbiguity"`
	WordAmbiguity  []int `json:"wordAmbiguity"`
}

// histogramToList turns a histogram into a list where
// the i-th item is the number of words with i+1 meanings
func histogramToList(h map[int]int) []int {
	maxKey := 0
	for k := range h {
		maxKey = max(maxKey, k)
	}
	ans := make([]int, maxKey)
	for k, v := range h {
		if k > 0 {
			ans[k-1] = v
		}
	}
	return ans
}

// Stats godoc
// @Summary      Get the lexicon statistics
// @Produce      json
// @Success      200 {object} statsResponse
// @Router       /stats [get]
func (a *Actions) Stats(ctx *gin.Context) {
	st := a.store.Stats()
	uniresp.WriteJSONResponse(
		ctx.Writer,
		statsResponse{
			Size:           st.Entries,
			Words:          st.Words,
			Lemmas:         st.Lemmas,
			Labels:         st.Labels,
			LemmaAmbiguity: histogramToList(a.store.LemmaAmbiguity()),
			WordAmbiguity:  histogramToList(a.store.WordAmbiguity()),
		},
	)
}

type tagResponse struct {
	Tag         string               `json:"tag"`
	Label       grammar.Label        `json:"label"`
	Type        grammar.Type         `json:"type"`
	LexClass    grammar.LexicalClass `json:"lexClass"`
	Features    grammar.Morph        `json:"features"`
	Description string               `json:"description"`
}

// DecodeTag godoc
// @Summary      Decode a BTB tag
// @Description  Encodes the tag into a grammatical label with a synthetic type and describes it.
// @Produce      json
// @Param        tag path string true "BTB tag (e.g. Ncmsi)"
// @Success      200 {object} tagResponse
// @Failure      400 {object} uniresp.ActionError
// @Router       /tags/{tag} [get]
func (a *Actions) DecodeTag(ctx *gin.Context) {
	tag := ctx.Param("tag")
	label, err := btb.ParseTag(tag)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, errorStatus(err))
		return
	}
	m, err := grammar.Decode(label)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, errorStatus(err))
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		tagResponse{
			Tag:         btb.TagOf(label),
			Label:       label,
			Type:        label.Type(),
			LexClass:    m.Class(),
			Features:    m,
			Description: grammar.Describe(a.printer(ctx), label, false),
		},
	)
}
