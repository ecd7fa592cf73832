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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/grigoriliev/lingua-bg/cnf"
	"github.com/grigoriliev/lingua-bg/db/mysql"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/docs"
	"github.com/grigoriliev/lingua-bg/general"
	"github.com/grigoriliev/lingua-bg/jobs"
	"github.com/grigoriliev/lingua-bg/lookup"
	"github.com/grigoriliev/lingua-bg/resource"
	"github.com/grigoriliev/lingua-bg/root"

	_ "github.com/grigoriliev/lingua-bg/translations"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// openLexicon loads the lexicon snapshot or (if there is no snapshot yet)
// builds the lexicon from configured resources and saves it as a snapshot
func openLexicon(ctx context.Context, conf *cnf.Conf) (*dictionary.Store, error) {
	if conf.SnapshotPath != "" {
		isFile, err := fs.IsFile(conf.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open lexicon: %w", err)
		}
		if isFile {
			store, err := dictionary.ReadSnapshotFile(conf.SnapshotPath)
			if err != nil {
				return nil, fmt.Errorf("failed to open lexicon: %w", err)
			}
			origin, _ := store.Origin()
			log.Info().
				Str("path", conf.SnapshotPath).
				Str("snapshotId", origin.ID).
				Int("numEntries", store.Size()).
				Msg("loaded lexicon snapshot")
			return store, nil
		}
	}
	store := dictionary.NewStore()
	stats, err := resource.LoadFiles(
		ctx,
		conf.Resources,
		store,
		resource.LoadWithMaxErrors(conf.ResourceMaxNumErrors),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	log.Info().
		Int("lexemes", stats.NumLexemes).
		Int("entries", stats.NumEntries).
		Int("errors", stats.NumErrors).
		Msg("lexicon built from resources")
	if conf.SnapshotPath != "" {
		hdr, err := dictionary.WriteSnapshotFile(store, conf.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("failed to save lexicon snapshot: %w", err)
		}
		log.Info().Str("snapshotId", hdr.ID).Msg("saved lexicon snapshot")
	}
	return store, nil
}

// @title           lingua-bg - Bulgarian morphological lexicon
// @description     A lexicon of Bulgarian word forms with their lemmas and grammatical labels. It provides lookups by a word, a lemma, a grammatical type and grammatical categories.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost
// @BasePath  /
func main() {
	version := general.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lingua-bg - Bulgarian morphological lexicon server\n\nUsage:\n\t%s [options] start [config.json]\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("lingua-bg %s\n", version)
		return

	} else if action != "start" {
		log.Fatal().Msgf("Unknown action %s", action)
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.Logging)
	log.Info().Msg("Starting lingua-bg")
	cnf.ApplyDefaults(conf)

	docs.SwaggerInfo.Version = version.Version
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	store, err := openLexicon(ctx, conf)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	var lexDB *mysql.Adapter
	if conf.HasLexiconDB() {
		lexDB, err = mysql.OpenDB(*conf.LexiconDB)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer lexDB.Close()
		log.Info().Msgf("lexicon SQL database: %s@%s", conf.LexiconDB.Name, conf.LexiconDB.Host)

	} else if conf.LexiconDB != nil {
		log.Fatal().Msg("only mysql lexicon database is supported")
	}

	if !conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	rootActions := root.Actions{Version: version, Conf: conf, Store: store}
	jobActions := jobs.NewActions(conf.Jobs, conf.Language, ctx)
	lookupActions := lookup.NewActions(
		ctx,
		lookup.Conf{
			Language:             conf.Language,
			SnapshotPath:         conf.SnapshotPath,
			ResourceMaxNumErrors: conf.ResourceMaxNumErrors,
			ImportDir:            conf.ImportDir,
			LexiconDBTablePrefix: conf.LexiconDBTablePrefix,
		},
		store,
		jobActions,
		lexDB,
	)

	engine.GET(
		"/", rootActions.RootAction)
	engine.GET(
		"/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET(
		"/words/:word", lookupActions.Words)
	engine.GET(
		"/lemmas/:word", lookupActions.Lemmas)
	engine.GET(
		"/lexemes/:word", lookupActions.Lexemes)
	engine.GET(
		"/lexemes/:word/html", lookupActions.LexemesHTML)
	engine.GET(
		"/search", lookupActions.Search)
	engine.GET(
		"/suffix/:suffix", lookupActions.Suffix)
	engine.GET(
		"/types/:type", lookupActions.WordsByType)
	engine.GET(
		"/entries/:id", lookupActions.Entry)
	engine.GET(
		"/stats", lookupActions.Stats)
	engine.GET(
		"/tags/:tag", lookupActions.DecodeTag)
	engine.POST(
		"/imports", lookupActions.Import)
	if lexDB != nil {
		engine.GET(
			"/db/words/:word", lookupActions.DBWords)
	}

	engine.GET(
		"/jobs", jobActions.JobList)
	engine.GET(
		"/jobs/:jobId", jobActions.JobInfo)

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Send()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown request received")

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
}
