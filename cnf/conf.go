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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/grigoriliev/lingua-bg/jobs"
	"github.com/rs/zerolog/log"

	vteDb "github.com/czcorpus/vert-tagextract/v3/db"
)

const (
	dfltServerReadTimeoutSecs  = 10
	dfltServerWriteTimeoutSecs = 10
	dfltLanguage               = "en"
	dfltResourceMaxNumErrors   = 100
	dfltLexiconDBTablePrefix   = "lexicon"
	dfltListenAddress          = "127.0.0.1"
	dfltListenPort             = 8090
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string              `json:"listenAddress"`
	ListenPort             int                 `json:"listenPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	Logging                logging.LoggingConf `json:"logging"`
	Language               string              `json:"language"`

	// SnapshotPath is a lexicon snapshot loaded on startup. In case
	// it does not exist, the lexicon is built from Resources and
	// then saved to the path.
	SnapshotPath         string   `json:"snapshotPath"`
	Resources            []string `json:"resources"`
	ResourceMaxNumErrors int      `json:"resourceMaxNumErrors"`

	// ImportDir is the only directory HTTP import jobs can read
	// files from. Without it, the imports are disabled.
	ImportDir            string      `json:"importDir"`
	LexiconDB            *vteDb.Conf `json:"lexiconDb"`
	LexiconDBTablePrefix string      `json:"lexiconDbTablePrefix"`
	Jobs                 *jobs.Conf  `json:"jobs"`
	srcPath              string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// HasLexiconDB tests whether a MySQL export of the lexicon
// is configured
func (conf *Conf) HasLexiconDB() bool {
	return conf.LexiconDB != nil && conf.LexiconDB.Type == "mysql"
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ApplyDefaults(conf *Conf) {
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
		log.Warn().Msgf("listenAddress not specified, using default: %s", dfltListenAddress)
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Warn().Msgf("listenPort not specified, using default: %d", dfltListenPort)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.Language == "" {
		conf.Language = dfltLanguage
		log.Warn().Msgf("language not specified, using default: %s", conf.Language)
	}
	if conf.ResourceMaxNumErrors == 0 {
		conf.ResourceMaxNumErrors = dfltResourceMaxNumErrors
		log.Warn().Msgf(
			"resourceMaxNumErrors not specified, using default: %d",
			dfltResourceMaxNumErrors,
		)
	}
	if conf.ImportDir == "" {
		log.Warn().Msg("importDir not specified, HTTP imports are disabled")
	}
	if conf.LexiconDB != nil && conf.LexiconDBTablePrefix == "" {
		conf.LexiconDBTablePrefix = dfltLexiconDBTablePrefix
		log.Warn().Msgf(
			"lexiconDbTablePrefix not specified, using default: %s",
			dfltLexiconDBTablePrefix,
		)
	}
	if conf.Jobs == nil {
		conf.Jobs = &jobs.Conf{}
	}
	if conf.Jobs.MaxQueueSize == 0 {
		conf.Jobs.MaxQueueSize = jobs.DefaultMaxQueueSize
		log.Warn().Msgf("jobs.maxQueueSize not specified, using default %d", jobs.DefaultMaxQueueSize)
	}
}
