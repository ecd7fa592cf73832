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
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/grigoriliev/lingua-bg/cnf"
	"github.com/grigoriliev/lingua-bg/general"
	"github.com/grigoriliev/lingua-bg/lexdb"
	"github.com/grigoriliev/lingua-bg/vertimport"
	"github.com/rs/zerolog/log"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type command struct {
	flags *flag.FlagSet
	args  string
	run   func(fs *flag.FlagSet)
}

func loadConf(path string) *cnf.Conf {
	conf := cnf.LoadConfig(path)
	logging.SetupLogging(conf.Logging)
	cnf.ApplyDefaults(conf)
	return conf
}

// snapshotPath returns the path from the -snapshot flag or,
// if not set, from the config
func snapshotPath(override string, conf *cnf.Conf) string {
	if override != "" {
		return override
	}
	if conf.SnapshotPath == "" {
		log.Fatal().Msg("snapshot path not specified (use either -snapshot or snapshotPath in config)")
	}
	return conf.SnapshotPath
}

// restArgs returns positional arguments following the config path
func restArgs(fs *flag.FlagSet) []string {
	if fs.NArg() < 2 {
		return []string{}
	}
	return fs.Args()[1:]
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commands := make(map[string]*command)
	order := make([]string, 0, 12)
	register := func(name, args string, run func(fs *flag.FlagSet)) *flag.FlagSet {
		fs := flag.NewFlagSet(name, flag.ExitOnError)
		fs.Usage = func() {
			fmt.Fprintf(os.Stderr, "\t%s %s [options] %s\n\n", filepath.Base(os.Args[0]), name, args)
			fs.PrintDefaults()
		}
		commands[name] = &command{flags: fs, args: args, run: run}
		order = append(order, name)
		return fs
	}

	var (
		snapshot      string
		appendData    bool
		maxErrors     int
		strict        bool
		lemmasOnly    bool
		wordCol       int
		lemmaCol      int
		tagCol        int
		chunkSize     int
		showAmbiguous int
	)
	addSnapshotFlag := func(fs *flag.FlagSet) {
		fs.StringVar(&snapshot, "snapshot", "", "path to the lexicon snapshot (overrides snapshotPath in config)")
	}

	loadCmd := register("load", "[config.json] [resource...]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		resources := restArgs(fs)
		if len(resources) == 0 {
			resources = conf.Resources
		}
		numErrors := conf.ResourceMaxNumErrors
		if maxErrors != 0 {
			numErrors = maxErrors
		}
		if strict {
			numErrors = 0
		}
		if err := runLoad(ctx, snapshotPath(snapshot, conf), resources, appendData, numErrors); err != nil {
			log.Fatal().Err(err).Msg("failed to load resources")
		}
	})
	addSnapshotFlag(loadCmd)
	loadCmd.BoolVar(&appendData, "append", false, "add resources to an existing snapshot")
	loadCmd.IntVar(&maxErrors, "max-errors", 0, "max. number of tolerated invalid lines (-1 = unlimited, 0 = use config)")
	loadCmd.BoolVar(&strict, "strict", false, "stop on first invalid line")

	vertCmd := register("vert", "[config.json] [vertical...]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		args := vertimport.Args{
			Verticals:    restArgs(fs),
			Columns:      &vertimport.Columns{Word: wordCol, Lemma: lemmaCol, Tag: tagCol},
			MaxNumErrors: maxErrors,
		}
		if err := runVert(ctx, snapshotPath(snapshot, conf), args, appendData); err != nil {
			log.Fatal().Err(err).Msg("failed to import verticals")
		}
	})
	addSnapshotFlag(vertCmd)
	vertCmd.BoolVar(&appendData, "append", false, "add lexemes to an existing snapshot")
	vertCmd.IntVar(&maxErrors, "max-errors", 0, "max. number of tolerated invalid tokens")
	vertCmd.IntVar(&wordCol, "word-col", vertimport.DefaultColumns.Word, "index of the word column")
	vertCmd.IntVar(&lemmaCol, "lemma-col", vertimport.DefaultColumns.Lemma, "index of the lemma column")
	vertCmd.IntVar(&tagCol, "tag-col", vertimport.DefaultColumns.Tag, "index of the tag column")

	exportCmd := register("export", "[config.json] [output file]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		if err := runExport(snapshotPath(snapshot, conf), fs.Arg(1), false); err != nil {
			log.Fatal().Err(err).Msg("failed to export lexicon")
		}
	})
	addSnapshotFlag(exportCmd)

	exportLemmasCmd := register("export-lemmas", "[config.json] [output file]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		if err := runExport(snapshotPath(snapshot, conf), fs.Arg(1), true); err != nil {
			log.Fatal().Err(err).Msg("failed to export lemmas")
		}
	})
	addSnapshotFlag(exportLemmasCmd)

	importCmd := register("import", "[config.json] [input file]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		if err := runImport(snapshotPath(snapshot, conf), fs.Arg(1), lemmasOnly, appendData); err != nil {
			log.Fatal().Err(err).Msg("failed to import lexicon")
		}
	})
	addSnapshotFlag(importCmd)
	importCmd.BoolVar(&lemmasOnly, "lemmas", false, "the input contains only lemmas (see export-lemmas)")
	importCmd.BoolVar(&appendData, "append", false, "add data to an existing snapshot")

	statsCmd := register("stats", "[config.json]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		if err := runStats(os.Stdout, snapshotPath(snapshot, conf), showAmbiguous); err != nil {
			log.Fatal().Err(err).Msg("failed to calculate statistics")
		}
	})
	addSnapshotFlag(statsCmd)
	statsCmd.IntVar(&showAmbiguous, "ambiguous", 0, "list words with the specified number of entries")

	checkCmd := register("check", "[config.json]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		numIssues, err := runCheck(os.Stdout, snapshotPath(snapshot, conf))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to check lexicon")
		}
		if numIssues > 0 {
			log.Warn().Int("numIssues", numIssues).Msg("integrity issues found")
			os.Exit(1)
		}
	})
	addSnapshotFlag(checkCmd)

	compareCmd := register("compare", "[config.json] [other snapshot]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		if err := runCompare(os.Stdout, snapshotPath(snapshot, conf), fs.Arg(1)); err != nil {
			log.Fatal().Err(err).Msg("failed to compare lexicons")
		}
	})
	addSnapshotFlag(compareCmd)

	dbExportCmd := register("dbexport", "[config.json]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		err := runDBExport(ctx, snapshotPath(snapshot, conf), conf.LexiconDB, conf.LexiconDBTablePrefix, chunkSize)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to export lexicon to database")
		}
	})
	addSnapshotFlag(dbExportCmd)
	dbExportCmd.IntVar(&chunkSize, "chunk-size", lexdb.DefaultChunkSize, "number of rows inserted at once")

	dumpCmd := register("dump", "[config.json] [word]", func(fs *flag.FlagSet) {
		conf := loadConf(fs.Arg(0))
		if err := runDump(os.Stdout, snapshotPath(snapshot, conf), fs.Arg(1)); err != nil {
			log.Fatal().Err(err).Msg("failed to dump word")
		}
	})
	addSnapshotFlag(dumpCmd)

	register("version", "", func(fs *flag.FlagSet) {
		ver := general.VersionInfo{Version: version, BuildDate: buildDate, GitCommit: gitCommit}
		fmt.Printf("lexicon %s\n", ver)
	})

	generalUsage := func() {
		fmt.Fprintf(os.Stderr, "lexicon - build and maintain the Bulgarian morphological lexicon\n\nUsage:\n")
		for _, name := range order {
			fmt.Fprintf(os.Stderr, "\t%s %s [options] %s\n", filepath.Base(os.Args[0]), name, commands[name].args)
		}
		fmt.Fprintf(os.Stderr, "\t%s help [command]\n", filepath.Base(os.Args[0]))
	}

	var action string
	if len(os.Args) > 1 {
		action = os.Args[1]
	}
	if action == "help" {
		if len(os.Args) > 2 {
			if cmd, ok := commands[os.Args[2]]; ok {
				cmd.flags.Usage()
				return
			}
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[2])
		}
		generalUsage()
		return
	}
	cmd, ok := commands[action]
	if !ok {
		generalUsage()
		os.Exit(1)
	}
	cmd.flags.Parse(os.Args[2:])
	cmd.run(cmd.flags)
}
