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

package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/debugtrace"
)

// DefaultMaxIterations is the solver's iteration cap (§4.6).
const DefaultMaxIterations = 10

// Platform is the minimal surface the scheduler needs from a back end to
// run §4.5: how it matches (for intra-group and cross-boundary substring
// resolution) and how it renders a typo/boundary pair into the string it
// will actually compare for conflicts. internal/platform's espanso and
// qmk implementations satisfy this.
type Platform interface {
	MatchDirection() MatchDirection
	FormatTrigger(typo string, b boundary.Boundary) string
}

// Status reports one iteration's outcome on the progress channel passed
// to Run, letting a CLI print a live line per iteration without coupling the
// driver to any particular output format.
type Status struct {
	Iteration int
	Counts    Counts
	Converged bool
}

// Run drives the solver to a fixed point: passes §4.2 through §4.5, in
// order, once per iteration, until the counts reported by state.Snapshot
// stop changing or maxIterations is reached. progress may be nil; if
// non-nil, one Status is sent after each iteration; the send blocks
// until received, so the caller must keep it drained or sized to
// maxIterations.
//
// An InvariantViolation panicking out of a pass or out of the
// end-of-iteration invariant check is treated as fatal: it is recovered
// and returned as an error wrapping the violation with the iteration
// number, and the solve stops. Any other panic is re-panicked.
func Run(state *DictionaryState, ctx *Context, platform Platform, dbg *debugtrace.Matcher, maxIterations int, progress chan<- Status) (converged bool, err error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	if progress != nil {
		defer close(progress)
	}

	prev := state.Snapshot()
	for i := 1; i <= maxIterations; i++ {
		state.CurrentIteration = i
		if runErr := runIteration(state, ctx, platform, dbg); runErr != nil {
			return false, runErr
		}

		cur := state.Snapshot()
		state.ClearDirty()
		converged = cur == prev
		if progress != nil {
			progress <- Status{Iteration: i, Counts: cur, Converged: converged}
		}
		log.Debug().Int("iteration", i).Int("active_corrections", cur.ActiveCorrections).
			Int("active_patterns", cur.ActivePatterns).Int("graveyard", cur.Graveyard).
			Bool("converged", converged).Msg("solver iteration complete")
		if converged {
			return true, nil
		}
		prev = cur
	}
	return false, nil
}

func runIteration(state *DictionaryState, ctx *Context, platform Platform, dbg *debugtrace.Matcher) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*InvariantViolation); ok {
				err = fmt.Errorf("iteration %d: %w", state.CurrentIteration, iv)
				return
			}
			panic(r)
		}
	}()

	if candidateErr := RunCandidatePass(state, ctx, dbg); candidateErr != nil {
		return candidateErr
	}
	RunPatternPass(state, ctx)
	RunIntraGroupPass(state, platform.MatchDirection())
	RunPlatformSubstringPass(state, buildFormattedEntries(state, platform), platform.MatchDirection())
	state.CheckInvariants()
	return nil
}

// buildFormattedEntries renders every active correction and active
// pattern through the platform's formatter, consulting and populating
// state's formatted-string cache so unchanged triples across iterations
// are not re-rendered.
func buildFormattedEntries(state *DictionaryState, platform Platform) []FormattedEntry {
	active := state.ActiveCorrections()
	patterns := state.ActivePatterns()
	entries := make([]FormattedEntry, 0, len(active)+len(patterns))
	for _, c := range append(append([]Correction{}, active...), patterns...) {
		formatted, ok := state.CachedFormat(c)
		if !ok {
			formatted = platform.FormatTrigger(c.Typo, c.Boundary)
			state.SetCachedFormat(c, formatted)
		}
		entries = append(entries, FormattedEntry{Correction: c, Formatted: formatted})
	}
	return entries
}
