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

// Package lookup provides HTTP actions for querying the lexicon
// and for importing new data into it.
package lookup

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grigoriliev/lingua-bg/db/mysql"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/grigoriliev/lingua-bg/jobs"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultSearchLimit = 100
	maxSearchLimit     = 5000
)

// Conf contains settings the lookup actions need
type Conf struct {
	Language             string
	SnapshotPath         string
	ResourceMaxNumErrors int
	ImportDir            string
	LexiconDBTablePrefix string
}

type Actions struct {
	// ctx controls cancellation of import jobs
	ctx context.Context

	conf Conf

	store *dictionary.Store

	jobActions *jobs.Actions

	// lexDB is an optional SQL export of the lexicon
	lexDB *mysql.Adapter
}

// entryInfo is a JSON representation of a dictionary entry
type entryInfo struct {
	ID          int                  `json:"id"`
	Word        string               `json:"word"`
	LemmaID     int                  `json:"lemmaId,omitempty"`
	Lemma       string               `json:"lemma"`
	Tag         string               `json:"tag"`
	Type        grammar.Type         `json:"type"`
	LexClass    grammar.LexicalClass `json:"lexClass"`
	Description string               `json:"description"`
}

type lexemeInfo struct {
	Lemma entryInfo   `json:"lemma"`
	Forms []entryInfo `json:"forms"`
}

type entriesResponse struct {
	Query   string      `json:"query"`
	Entries []entryInfo `json:"entries"`
}

func (a *Actions) printer(ctx *gin.Context) *message.Printer {
	lang := ctx.Query("lang")
	if lang == "" {
		lang = a.conf.Language
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func (a *Actions) exportEntry(p *message.Printer, e *dictionary.WordEntry) entryInfo {
	ans := entryInfo{
		ID:          e.ID,
		Word:        e.Word,
		Tag:         e.Tag(),
		Type:        e.Label.Type(),
		Description: e.Describe(p),
	}
	ans.LexClass, _ = e.Label.LexicalClass()
	if e.IsLemma() {
		ans.Lemma = e.Word

	} else {
		ans.LemmaID = e.LemmaID
		if lemma, ok := a.store.EntryByID(e.LemmaID); ok {
			ans.Lemma = lemma.Word
		}
	}
	return ans
}

func (a *Actions) exportEntries(p *message.Printer, entries []*dictionary.WordEntry) []entryInfo {
	ans := make([]entryInfo, len(entries))
	for i, e := range entries {
		ans[i] = a.exportEntry(p, e)
	}
	return ans
}

func (a *Actions) exportLexeme(p *message.Printer, lx dictionary.Lexeme) lexemeInfo {
	return lexemeInfo{
		Lemma: a.exportEntry(p, lx.Lemma),
		Forms: a.exportEntries(p, lx.Forms),
	}
}

// errorStatus maps lexicon errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, grammar.ErrMalformedTag),
		errors.Is(err, grammar.ErrMalformedType),
		errors.Is(err, grammar.ErrLexicalClassMismatch):
		return http.StatusBadRequest
	case errors.Is(err, dictionary.ErrUnknownLemma),
		errors.Is(err, dictionary.ErrNotALemma):
		return http.StatusNotFound
	case errors.Is(err, jobs.ErrorQueueFull):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// NewActions is the default factory for Actions. The lexDB
// argument may be nil in which case the SQL search is disabled.
func NewActions(
	ctx context.Context,
	conf Conf,
	store *dictionary.Store,
	jobActions *jobs.Actions,
	lexDB *mysql.Adapter,
) *Actions {
	return &Actions{
		ctx:        ctx,
		conf:       conf,
		store:      store,
		jobActions: jobActions,
		lexDB:      lexDB,
	}
}
