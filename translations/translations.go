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

package translations

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var bulgarian = map[string]string{
	// lexical classes
	"noun":         "съществително",
	"adjective":    "прилагателно",
	"pronoun":      "местоимение",
	"numeral":      "числително",
	"verb":         "глагол",
	"adverb":       "наречие",
	"conjunction":  "съюз",
	"interjection": "междуметие",
	"particle":     "частица",
	"preposition":  "предлог",
	"lemma":        "лема",

	// categories
	"masculine":      "мъжки род",
	"feminine":       "женски род",
	"neuter":         "среден род",
	"indefinite":     "неопределен",
	"definite":       "кратък член",
	"full definite":  "пълен член",
	"singular":       "единствено число",
	"plural":         "множествено число",
	"count form":     "бройна форма",
	"plurale tantum": "само множествено число",
	"first":          "първо лице",
	"second":         "второ лице",
	"third":          "трето лице",
	"common":         "нарицателно",
	"proper":         "собствено",
	"vocative":       "звателна форма",
	"accusative":     "винителен падеж",
	"dative":         "дателен падеж",
	"nominative":     "именителен падеж",
	"extended":       "разширена форма",
	"personal":       "лично",
	"demonstrative":  "показателно",
	"relative":       "относително",
	"collective":     "обобщително",
	"interrogative":  "въпросително",
	"negative":       "отрицателно",
	"possessive":     "притежателно",
	"full":           "пълна форма",
	"short":          "кратка форма",
	"old":            "остаряла форма",
	"impersonal":     "безлично",
	"auxiliary":      "спомагателен",
	"auxiliary 2":    "спомагателен 2",
	"auxiliary 3":    "спомагателен 3",
	"imperfective":   "несвършен вид",
	"perfective":     "свършен вид",
	"transitive":     "преходен",
	"intransitive":   "непреходен",
	"indicative":     "изявително наклонение",
	"imperative":     "повелително наклонение",
	"conditional":    "условно наклонение",
	"participle":     "причастие",
	"gerund":         "деепричастие",
	"active":         "деятелен залог",
	"passive":        "страдателен залог",
	"present":        "сегашно време",
	"aorist":         "минало свършено време",
	"imperfect":      "минало несвършено време",
	"past":           "минало време",
	"cardinal":       "бройно",
	"ordinal":        "редно",
	"adverbial":      "наречно",
	"fuzzy":          "неопределено бройно",

	"invalid label %d": "невалиден етикет %d",
	"No lexeme found":  "Няма намерена лексема",

	// jobs
	"Import of a lexicon resource":             "Импорт на лексикален ресурс",
	"Import of lexemes from a vertical corpus": "Импорт на лексеми от вертикален корпус",
	"Saving of a lexicon snapshot":             "Запис на снимка на речника",
	"Unknown job":                              "Неизвестна задача",
	"Job is running or waiting in the queue":   "Задачата се изпълнява или чака в опашката",
	"Job finished without errors":              "Задачата приключи без грешки",
	"Job finished with error: %s":              "Задачата приключи с грешка: %s",
}

func init() {
	for key, msg := range bulgarian {
		message.SetString(language.Bulgarian, key, msg)
	}
}
