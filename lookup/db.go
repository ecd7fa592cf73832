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
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/grigoriliev/lingua-bg/lexdb"
)

// DBWords godoc
// @Summary      Search the word in the SQL export of the lexicon
// @Produce      json
// @Param        word path string true "searched word"
// @Param        class query string false "lexical class"
// @Param        tag query string false "tag prefix"
// @Param        noLemmas query int false "do not add lemmas of found forms (1)"
// @Param        limit query int false "max. number of returned rows"
// @Success      200 {object} map[string]any
// @Failure      400 {object} uniresp.ActionError
// @Router       /db/words/{word} [get]
func (a *Actions) DBWords(ctx *gin.Context) {
	limit, ok := a.getLimit(ctx)
	if !ok {
		return
	}
	class, err := grammar.ParseLexicalClass(ctx.Query("class"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	noLemmasOpt := lexdb.SearchWithNoOp()
	if ctx.Query("noLemmas") == "1" {
		noLemmasOpt = lexdb.SearchWithoutLemmas()
	}
	rows, err := lexdb.SearchWord(
		ctx,
		a.lexDB,
		a.conf.LexiconDBTablePrefix,
		ctx.Param("word"),
		lexdb.SearchWithLexClass(class),
		lexdb.SearchWithTagPrefix(ctx.Query("tag")),
		lexdb.SearchWithLimit(limit),
		noLemmasOpt,
	)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	ans := map[string]any{
		"matches": rows,
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
