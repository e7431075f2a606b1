// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
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
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/ohshitgorillas/entroppy-go/cnf"
	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/debugtrace"
	"github.com/ohshitgorillas/entroppy-go/internal/dictutil"
	"github.com/ohshitgorillas/entroppy-go/internal/metrics"
	"github.com/ohshitgorillas/entroppy-go/internal/platform"
	"github.com/ohshitgorillas/entroppy-go/internal/report"
	"github.com/ohshitgorillas/entroppy-go/internal/scanio"
	"github.com/ohshitgorillas/entroppy-go/internal/solver"
	"github.com/ohshitgorillas/entroppy-go/internal/store"
	"github.com/ohshitgorillas/entroppy-go/internal/typogen"
)

var (
	version   string
	build     string
	gitCommit string
)

func dumpTemplate() {
	b, err := cnf.Dump(cnf.Template())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to dump a new config")
	}
	fmt.Println(string(b))
}

// corpusHash fingerprints the resolved source word list, so `resume` can
// tell whether a cached run's graveyard still applies.
func corpusHash(sourceWords []string) string {
	sorted := make([]string, len(sourceWords))
	copy(sorted, sourceWords)
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:])
}

func runGenerate(confPath string, resume bool) {
	conf, err := cnf.LoadConf(confPath)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	rankedWords, err := scanio.ReadLines(conf.RankedWordsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", conf.RankedWordsPath).Msg("failed to read ranked word list")
	}

	loaded, err := dictutil.Load(dictutil.LoadOptions{
		RankedWordList: rankedWords,
		TopN:           conf.TopN,
		IncludePath:    conf.IncludePath,
		ExcludePath:    conf.ExcludePath,
		AdjacentPath:   conf.AdjacentPath,
		MinWordLength:  conf.MinWordLength,
		MaxWordLength:  conf.MaxWordLength,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary inputs")
	}

	hash := corpusHash(loaded.SourceWords)
	cache := store.New(store.Config{
		Driver:   conf.Cache.Driver,
		Path:     conf.Cache.Path,
		Host:     conf.Cache.Host,
		User:     conf.Cache.User,
		Password: conf.Cache.Password,
		DBName:   conf.Cache.DBName,
	})
	if err := cache.Initialize(resume); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize run-cache")
	}
	defer cache.Close()

	rawTypoMap := typogen.BuildTypoMap(loaded.SourceWords, typogen.AdjacencyMap(loaded.AdjacencyMap))
	state := solver.NewDictionaryState(rawTypoMap)

	if resume {
		rows, err := cache.LoadRun(hash)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load cached run")
		}
		seedGraveyard(state, rows)
		log.Info().Int("rows", len(rows)).Msg("resumed from cached run")
	}

	ctx := solver.NewContext(
		solver.WordSets{
			Validation:         loaded.ValidationSet,
			FilteredValidation: loaded.FilteredValidationSet,
			Source:             loaded.SourceWordsSet,
			User:                loaded.UserWords,
		},
		loaded.ExclusionMatcher,
		conf.MinTypoLength,
		conf.MinWordLength,
		conf.FreqRatio,
		conf.TypoFreqThreshold,
		loaded.FrequencyTable,
	)

	dbg := debugtrace.NewMatcher(conf.Debug.Words, conf.Debug.TypoPatterns)

	plat, err := platform.New(conf.Platform, conf.MaxCorrections, conf.MaxEntriesPerFile)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	var collector *metrics.Collector
	if conf.MetricsAddr != "" {
		collector = metrics.NewCollector(prometheus.DefaultRegisterer)
		go func() {
			if err := metrics.ServeAdmin(conf.MetricsAddr); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	progress := make(chan solver.Status, 1)
	done := make(chan struct{})
	var converged bool
	var solveErr error
	var iterations int
	go func() {
		defer close(done)
		converged, solveErr = solver.Run(state, ctx, plat, dbg, conf.MaxIterations, progress)
	}()

	t0 := time.Now()
loop:
	for {
		select {
		case st, ok := <-progress:
			if !ok {
				break loop
			}
			iterations = st.Iteration
			log.Debug().Int("iteration", st.Iteration).Bool("converged", st.Converged).Msg("iteration complete")
			if collector != nil {
				collector.Observe(st.Iteration, st.Counts, state.GraveyardByReason())
			}
		case sig := <-signalChan:
			log.Warn().Str("signal", sig.String()).Msg("received shutdown signal, finishing current iteration")
		}
	}
	<-done
	if solveErr != nil {
		log.Fatal().Err(solveErr).Msg("solver failed")
	}

	rankEntries := buildRankEntries(state, loaded.UserWords)
	ranked := plat.Rank(rankEntries, loaded.FrequencyTable)
	if collector != nil {
		collector.ObserveAccepted(len(ranked))
	}
	if err := plat.Emit(ranked, conf.OutputPath); err != nil {
		log.Fatal().Err(err).Msg("failed to emit output")
	}

	runID := uuid.NewString()
	if err := cache.SaveRun(runID, hash, store.RowsFromState(state)); err != nil {
		log.Fatal().Err(err).Msg("failed to save run-cache")
	}
	if err := cache.Commit(); err != nil {
		log.Fatal().Err(err).Msg("failed to commit run-cache")
	}

	summary := report.Summary{
		Iterations:         iterations,
		Converged:          converged,
		Counts:             state.Snapshot(),
		ByReason:           state.GraveyardByReason(),
		EstimateEspansoRAM: conf.Platform == "espanso",
	}
	if err := report.Write(os.Stdout, summary); err != nil {
		log.Fatal().Err(err).Msg("failed to write summary")
	}
	log.Info().Dur("elapsed", time.Since(t0)).Str("run_id", runID).Msg("finished")
}

// seedGraveyard pre-populates rejected triples from a prior run so the
// solver does not spend iterations rediscovering the same conflicts.
func seedGraveyard(state *solver.DictionaryState, rows []store.Row) {
	for _, r := range rows {
		if r.Kind != store.RowGraveyard {
			continue
		}
		c := solver.Correction{Typo: r.Typo, Word: r.Word, Boundary: boundary.Parse(r.Boundary)}
		state.Graveyard(c, solver.RejectionReason(r.Reason), r.Blocker)
	}
	state.ClearDirty()
}

func buildRankEntries(state *solver.DictionaryState, userWords map[string]struct{}) []platform.RankEntry {
	var out []platform.RankEntry
	for _, c := range state.ActiveCorrections() {
		_, isUser := userWords[c.Word]
		out = append(out, platform.RankEntry{Correction: c, IsUserWord: isUser})
	}
	for _, p := range state.ActivePatterns() {
		occurrences := state.PatternReplacementsFor(p)
		words := make([]string, len(occurrences))
		for i, occ := range occurrences {
			words[i] = occ.Word
		}
		out = append(out, platform.RankEntry{Correction: p, IsPattern: true, ReplacedWords: words})
	}
	return out
}

func main() {
	flag.Usage = func() {
		fmt.Println("\n+-------------------------------------------------------------+")
		fmt.Println("| entroppy - a generator of autocorrect dictionaries            |")
		fmt.Println("|       for espanso and QMK from a ranked word list            |")
		fmt.Printf("|                       version %s                         |\n", version)
		fmt.Println("+-------------------------------------------------------------+")
		fmt.Printf("\nSupported platforms:\n%s\n", strings.Join(platform.Names(), ", "))
		fmt.Println("\nUsage:")
		fmt.Println("entroppy generate config.json\n\t(run a fresh solve, dropping any cached prior run)")
		fmt.Println("entroppy resume config.json\n\t(run a solve, reusing a prior run's cached graveyard)")
		fmt.Println("entroppy template\n\t(print a sample config to stdout)")
		fmt.Println("entroppy version\n\tshow detailed version information")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}

	generateCommand := flag.NewFlagSet("generate", flag.ExitOnError)
	generateCommand.Usage = func() { fmt.Println("Usage: entroppy generate conf.json") }
	resumeCommand := flag.NewFlagSet("resume", flag.ExitOnError)
	resumeCommand.Usage = func() { fmt.Println("Usage: entroppy resume conf.json") }
	templateCommand := flag.NewFlagSet("template", flag.ExitOnError)
	templateCommand.Usage = func() { fmt.Println("Usage: entroppy template [> conf.json]") }
	flag.Parse()

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCommand.Parse(os.Args[2:])
		runGenerate(generateCommand.Arg(0), false)
	case "resume":
		resumeCommand.Parse(os.Args[2:])
		runGenerate(resumeCommand.Arg(0), true)
	case "template":
		templateCommand.Parse(os.Args[2:])
		dumpTemplate()
	case "version":
		fmt.Printf("entroppy %s\nbuild date: %s\nlast commit: %s\n", version, build, gitCommit)
	default:
		log.Fatal().Str("command", os.Args[1]).Msg("unknown command")
	}
}
