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
	"strings"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/grigoriliev/lingua-bg/grammar"
)

type enumValue interface {
	~int
	String() string
}

// parseEnum finds a category value by its name (e.g. "feminine")
func parseEnum[T enumValue](category, name string) (T, error) {
	for i := 0; ; i++ {
		v := T(i)
		vName := v.String()
		if strings.HasPrefix(vName, "?") {
			break
		}
		if vName == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s value %s", grammar.ErrMalformedTag, category, name)
}

// queryArg parses a single URL argument and adds it to the query options
type queryArg func(ctx *gin.Context, opts []grammar.QueryOption) ([]grammar.QueryOption, error)

func categoryArg[T enumValue](arg string, withFn func(T) grammar.QueryOption) queryArg {
	return func(ctx *gin.Context, opts []grammar.QueryOption) ([]grammar.QueryOption, error) {
		v := ctx.Query(arg)
		if v == "" {
			return opts, nil
		}
		parsed, err := parseEnum[T](arg, v)
		if err != nil {
			return opts, err
		}
		return append(opts, withFn(parsed)), nil
	}
}

var queryArgs = []queryArg{
	categoryArg("gender", grammar.QueryWithGender),
	categoryArg("person", grammar.QueryWithPerson),
	categoryArg("article", grammar.QueryWithArticle),
	categoryArg("number", grammar.QueryWithNumber),
	categoryArg("nounType", grammar.QueryWithNounType),
	categoryArg("nounCase", grammar.QueryWithNounCase),
	categoryArg("adjectiveCase", grammar.QueryWithAdjectiveCase),
	categoryArg("pronounType", grammar.QueryWithPronounType),
	categoryArg("pronounCase", grammar.QueryWithPronounCase),
	categoryArg("pronounForm", grammar.QueryWithPronounForm),
	categoryArg("verbType", grammar.QueryWithVerbType),
	categoryArg("aspect", grammar.QueryWithAspect),
	categoryArg("transitivity", grammar.QueryWithTransitivity),
	categoryArg("verbForm", grammar.QueryWithVerbForm),
	categoryArg("voice", grammar.QueryWithVoice),
	categoryArg("tense", grammar.QueryWithTense),
	categoryArg("numeralType", grammar.QueryWithNumeralType),
}

// queryFromArgs builds a grammatical query from URL arguments
// named after the categories (gender=feminine&number=plural).
func queryFromArgs(ctx *gin.Context) (grammar.Query, error) {
	opts := make([]grammar.QueryOption, 0, 5)
	var err error
	for _, parse := range queryArgs {
		opts, err = parse(ctx, opts)
		if err != nil {
			return grammar.Query{}, err
		}
	}
	return grammar.NewQuery(opts...), nil
}

func (a *Actions) getLimit(ctx *gin.Context) (int, bool) {
	limit, ok := unireq.GetURLIntArgOrFail(ctx, "limit", defaultSearchLimit)
	if !ok {
		return 0, false
	}
	if limit <= 0 || limit > maxSearchLimit {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("limit must be from interval [1, %d]", maxSearchLimit),
			http.StatusBadRequest,
		)
		return 0, false
	}
	return limit, true
}

type searchResponse struct {
	Query   string      `json:"query"`
	Exact   bool        `json:"exact"`
	Total   int         `json:"total"`
	Entries []entryInfo `json:"entries"`
}

// Search godoc
// @Summary      Search entries by a word and grammatical categories
// @Description  Searches for entries containing (or, with exact=1, equal to) the q word. Additional arguments restrict the lexical class and values of grammatical categories.
// @Produce      json
// @Param        q query string false "searched word (or its part)"
// @Param        exact query int false "exact match (1)"
// @Param        class query string false "lexical class (e.g. noun, verb)"
// @Param        gender query string false "gender (masculine, feminine, neuter)"
// @Param        number query string false "number (singular, plural, count form, plurale tantum)"
// @Param        article query string false "article (indefinite, definite, full definite)"
// @Param        person query string false "person (first, second, third)"
// @Param        tense query string false "verb tense"
// @Param        limit query int false "max. number of returned entries"
// @Success      200 {object} searchResponse
// @Failure      400 {object} uniresp.ActionError
// @Router       /search [get]
func (a *Actions) Search(ctx *gin.Context) {
	limit, ok := a.getLimit(ctx)
	if !ok {
		return
	}
	class, err := grammar.ParseLexicalClass(ctx.Query("class"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	q, err := queryFromArgs(ctx)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, errorStatus(err))
		return
	}
	word := ctx.Query("q")
	exact := ctx.Query("exact") == "1"
	if word == "" && class == grammar.ClassNone && q.IsEmpty() {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("at least one search criterion must be specified"), http.StatusBadRequest)
		return
	}
	entries := a.store.Find(word, exact, class, q)
	ans := searchResponse{Query: word, Exact: exact, Total: len(entries)}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	ans.Entries = a.exportEntries(a.printer(ctx), entries)
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
