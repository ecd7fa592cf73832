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
	"html/template"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	lexemesPage = `<!DOCTYPE html>
<html lang="{{ .Lang }}">
	<head>
		<meta charset="UTF-8">
		<title>{{ .Word }}</title>
		<style type="text/css">
		body {
			font-size: 1.1em;
			width: 50em;
			margin: 0 auto;
			font-family: sans-serif;
		}
		h1 {
			font-size: 1.7em;
		}
		td {
			padding: 0.2em 1em 0.2em 0;
		}
		</style>
	</head>
	<body>
		<h1>{{ .Word }}</h1>
		{{- if not .Lexemes }}
		<p>{{ .NotFound }}</p>
		{{- end }}
		{{- range .Lexemes }}
		<section>
			<h2>{{ .Lemma.Word }} <small>{{ .Lemma.Type }}</small></h2>
			<p>{{ .Lemma.Description }}</p>
			<table>
			{{- range .Forms }}
			<tr><td>{{ .Word }}</td><td><code>{{ .Tag }}</code></td><td>{{ .Description }}</td></tr>
			{{- end }}
			</table>
		</section>
		{{- end }}
	</body>
</html>`
)

var (
	initOnce sync.Once
	tpl      *template.Template
)

func compileLexemesPage() {
	initOnce.Do(func() {
		var err error
		tpl, err = template.New("lexemes").Parse(lexemesPage)
		if err != nil {
			log.Fatal().Msg("Failed to parse the template")
		}
	})
}

// WriteHTMLResponse renders a page with lexemes. The data is expected
// to provide Lang, Word, NotFound and Lexemes fields.
func WriteHTMLResponse(w http.ResponseWriter, status int, data any) error {
	compileLexemesPage()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return tpl.Execute(w, data)
}
