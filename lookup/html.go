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

	"github.com/gin-gonic/gin"
	"github.com/grigoriliev/lingua-bg/api"
	"github.com/rs/zerolog/log"
)

type lexemesPage struct {
	Lang     string
	Word     string
	NotFound string
	Lexemes  []lexemeInfo
}

// LexemesHTML godoc
// @Summary      Show lexemes of the word as an HTML page
// @Produce      html
// @Param        word path string true "lemma"
// @Param        lang query string false "language of descriptions"
// @Success      200 {string} string
// @Router       /lexemes/{word}/html [get]
func (a *Actions) LexemesHTML(ctx *gin.Context) {
	word := ctx.Param("word")
	p := a.printer(ctx)
	lexemes := a.store.Lexemes(word)
	page := lexemesPage{
		Lang:     ctx.DefaultQuery("lang", a.conf.Language),
		Word:     word,
		NotFound: p.Sprintf("No lexeme found"),
		Lexemes:  make([]lexemeInfo, len(lexemes)),
	}
	for i, lx := range lexemes {
		page.Lexemes[i] = a.exportLexeme(p, lx)
	}
	status := http.StatusOK
	if len(lexemes) == 0 {
		status = http.StatusNotFound
	}
	if err := api.WriteHTMLResponse(ctx.Writer, status, page); err != nil {
		log.Error().Err(err).Str("word", word).Msg("failed to render lexemes")
	}
}
