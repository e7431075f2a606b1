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
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/debugtrace"
)

// userWordElevationLength is the typo length at or below which a
// correction into a user word is elevated straight to BOTH, skipping the
// normal boundary-selection order. Such corrections are exempt from
// pattern replacement in the generalization pass: see
// IsElevatedUserWordCorrection.
const userWordElevationLength = 2

// IsElevatedUserWordCorrection reports whether c is a short user-word
// correction that RunCandidatePass already forced to BOTH. The pattern
// generalization pass excludes these from its candidate grouping.
func IsElevatedUserWordCorrection(c Correction, userWords map[string]struct{}) bool {
	if c.Boundary != boundary.BOTH || len(c.Typo) > userWordElevationLength {
		return false
	}
	_, ok := userWords[c.Word]
	return ok
}

// candidateOutcome is what a single typo resolves to once collision
// resolution, length gates, exclusion rules, and boundary selection have
// all run. Exactly one of Correction or Reason is populated.
type candidateOutcome struct {
	Typo       string
	Correction *Correction
	Reason     RejectionReason
	Blocker    string
}

// RunCandidatePass implements §4.2: for every raw typo, resolve which
// word it corrects to (arbitrating collisions by frequency ratio),
// choose the least restrictive boundary that does not cause a false
// trigger, and either add the resulting correction to the active set or
// graveyard it with a reason.
//
// Per-typo resolution only reads ctx (a frozen snapshot); results are
// collected and applied to state sequentially afterwards, so the worker
// fan-out never touches shared mutable state directly.
func RunCandidatePass(state *DictionaryState, ctx *Context, dbg *debugtrace.Matcher) error {
	typos := make([]string, 0, len(state.RawTypoMap))
	for t := range state.RawTypoMap {
		typos = append(typos, t)
	}
	sort.Strings(typos)

	outcomes := make([]candidateOutcome, len(typos))
	g := new(errgroup.Group)
	for i, typo := range typos {
		i, typo := i, typo
		words := state.RawTypoMap[typo]
		g.Go(func() error {
			outcomes[i] = resolveCandidate(ctx, typo, words, dbg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, outcome := range outcomes {
		applyCandidateOutcome(state, outcome)
	}
	return nil
}

func applyCandidateOutcome(state *DictionaryState, outcome candidateOutcome) {
	if outcome.Correction != nil {
		c := *outcome.Correction
		if state.IsGraveyarded(c) {
			return
		}
		state.AddActiveCorrection(c)
		state.LogEvent("candidate", "accepted correction", &c)
		return
	}
	if outcome.Reason == "" {
		return
	}
	c := Correction{Typo: outcome.Typo}
	state.Graveyard(c, outcome.Reason, outcome.Blocker)
	state.LogEvent("candidate", string(outcome.Reason), &c)
}

func resolveCandidate(ctx *Context, typo string, wordList []string, dbg *debugtrace.Matcher) candidateOutcome {
	unique := dedupeWords(wordList)

	var word string
	var collisionRatio float64 = -1
	if len(unique) == 1 {
		word = unique[0]
	} else {
		winner, ratio := ctx.FrequencyTable.CollisionWinner(unique)
		word, collisionRatio = winner, ratio
	}
	_, isUserWord := ctx.Words.User[word]
	elevated := isUserWord && len(typo) <= userWordElevationLength

	if !elevated && collisionRatio >= 0 && collisionRatio < ctx.FreqRatio {
		return candidateOutcome{Typo: typo, Reason: ReasonCollisionAmbiguous, Blocker: word}
	}

	if !elevated && len(typo) < ctx.MinTypoLength && len(word) > ctx.MinWordLength {
		return candidateOutcome{Typo: typo, Reason: ReasonTooShort, Blocker: word}
	}

	if ctx.ExclusionMatcher != nil && ctx.ExclusionMatcher.ShouldExclude(typo, word, boundary.NONE) {
		return candidateOutcome{Typo: typo, Reason: ReasonExcludedByPattern, Blocker: word}
	}

	if elevated {
		return candidateOutcome{
			Typo:       typo,
			Correction: &Correction{Typo: typo, Word: word, Boundary: boundary.BOTH},
		}
	}

	chosen, ok := chooseBoundaryForTypo(ctx, typo, word)
	if !ok {
		// every boundary, including BOTH, caused a trigger somewhere:
		// BOTH is still the safest available fallback.
		chosen = boundary.BOTH
	}
	if dbg.MatchesTriple(typo, word, chosen) {
		log.Debug().Str("typo", typo).Str("word", word).Str("boundary", chosen.String()).
			Msg("candidate pass resolved traced typo")
	}
	return candidateOutcome{
		Typo:       typo,
		Correction: &Correction{Typo: typo, Word: word, Boundary: chosen},
	}
}

func dedupeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// chooseBoundaryForTypo tries boundaries from least to most restrictive,
// in the order determined by typo's structural relation to word, and
// returns the first one that would not cause a false trigger against
// the target word, the validation set, or the source words. ok is false
// only when every boundary in the order (BOTH included) would trigger,
// in which case the caller falls back to BOTH regardless.
func chooseBoundaryForTypo(ctx *Context, typo, word string) (chosen boundary.Boundary, ok bool) {
	order := boundary.SelectionOrder(boundary.ClassifyRelation(typo, word))
	for _, b := range order {
		if !wouldCauseFalseTrigger(ctx, typo, word, b) {
			return b, true
		}
	}
	return boundary.BOTH, false
}

// wouldCauseFalseTrigger mirrors the inverse of the boundary-relation
// table: a boundary causes a false trigger if it would let the typo
// match somewhere it appears that is not the intended correction site.
func wouldCauseFalseTrigger(ctx *Context, typo, word string, b boundary.Boundary) bool {
	if b == boundary.BOTH {
		return false
	}

	targetKind := boundary.ClassifyRelation(typo, word)
	targetPrefix := targetKind == boundary.KindPrefix
	targetSuffix := targetKind == boundary.KindSuffix
	targetSubstring := targetKind == boundary.KindMiddle

	prefixElsewhere := ctx.ValidationIndex.IsPrefixOfOther(typo) || ctx.SourceIndex.IsPrefixOfOther(typo)
	suffixElsewhere := ctx.ValidationIndex.IsSuffixOfOther(typo) || ctx.SourceIndex.IsSuffixOfOther(typo)
	substringElsewhere := ctx.ValidationIndex.IsNonIdenticalSubstring(typo) || ctx.SourceIndex.IsNonIdenticalSubstring(typo)

	switch b {
	case boundary.NONE:
		return targetSubstring || substringElsewhere || targetPrefix || targetSuffix || prefixElsewhere || suffixElsewhere
	case boundary.LEFT:
		return targetPrefix || prefixElsewhere
	case boundary.RIGHT:
		return targetSuffix || suffixElsewhere
	default:
		return true
	}
}
