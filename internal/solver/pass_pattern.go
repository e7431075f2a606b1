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

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
)

// minOtherPartLength is the minimum length the kept pattern side of a
// typo/word pair must have; cuts that would leave a shorter pattern are
// never proposed.
const minOtherPartLength = 2

// patternKey identifies a candidate generalized rule: a typo pattern, a
// word pattern, and the structural side (prefix or suffix) it was cut
// from. The boundary each candidate is eventually published with is
// decided separately, by EscalationOrder.
type patternKey struct {
	typoPattern string
	wordPattern string
	kind        boundary.Kind // KindPrefix or KindSuffix only
}

// RunPatternPass implements §4.3: extract prefix/suffix patterns shared
// by two or more active corrections, validate each candidate, and
// replace the covered corrections with a single generalized pattern
// entry. Corrections RunCandidatePass already elevated to a standalone
// BOTH user-word trigger are exempt from grouping (Open Question
// decision: short elevated user-word corrections never generalize).
func RunPatternPass(state *DictionaryState, ctx *Context) {
	active := state.ActiveCorrections()
	candidates := make(map[patternKey][]Correction)

	for _, c := range active {
		if IsElevatedUserWordCorrection(c, ctx.Words.User) {
			continue
		}
		for _, cand := range extractPatternCandidates(c) {
			candidates[cand] = append(candidates[cand], c)
		}
	}

	keys := make([]patternKey, 0, len(candidates))
	for k, occurrences := range candidates {
		if len(occurrences) >= 2 {
			keys = append(keys, k)
		}
	}
	// Shorter patterns are more general and are tried first; once a
	// correction is claimed by a committed pattern it is no longer
	// available to a longer candidate that happens to share the same
	// occurrences.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i].typoPattern) != len(keys[j].typoPattern) {
			return len(keys[i].typoPattern) < len(keys[j].typoPattern)
		}
		if keys[i].typoPattern != keys[j].typoPattern {
			return keys[i].typoPattern < keys[j].typoPattern
		}
		return keys[i].wordPattern < keys[j].wordPattern
	})

	directPairs := make(map[[2]string]struct{}, len(active))
	for _, c := range active {
		directPairs[[2]string{c.Typo, c.Word}] = struct{}{}
	}

	claimed := make(map[Correction]struct{})
	for _, k := range keys {
		if len(k.typoPattern) < ctx.MinTypoLength {
			continue
		}
		occurrences := unclaimed(dedupeCorrections(candidates[k]), claimed)
		if len(occurrences) < 2 {
			continue
		}
		if validatePattern(state, ctx, k, occurrences, directPairs) {
			for _, occ := range occurrences {
				claimed[occ] = struct{}{}
			}
		}
	}
}

func unclaimed(cs []Correction, claimed map[Correction]struct{}) []Correction {
	out := make([]Correction, 0, len(cs))
	for _, c := range cs {
		if _, ok := claimed[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// extractPatternCandidates proposes every prefix and suffix pattern cut
// point for c that keeps at least minOtherPartLength characters on the
// pattern side, mirroring the "strip a common affix" extraction every
// implementation of this pass uses. A suffix pattern only makes sense
// for a correction whose own boundary already permits a right-side
// match (RIGHT, BOTH, or NONE); a prefix pattern likewise requires
// LEFT, BOTH, or NONE. A correction pinned to the opposite boundary
// never contributes a candidate on that side.
func extractPatternCandidates(c Correction) []patternKey {
	var out []patternKey
	typo, word := c.Typo, c.Word

	allowSuffix := c.Boundary == boundary.RIGHT || c.Boundary == boundary.BOTH || c.Boundary == boundary.NONE
	allowPrefix := c.Boundary == boundary.LEFT || c.Boundary == boundary.BOTH || c.Boundary == boundary.NONE

	maxCut := len(typo) - minOtherPartLength
	if wordCut := len(word) - minOtherPartLength; wordCut < maxCut {
		maxCut = wordCut
	}
	for cut := 1; cut <= maxCut; cut++ {
		if allowSuffix {
			out = append(out, patternKey{
				typoPattern: typo[cut:],
				wordPattern: word[cut:],
				kind:        boundary.KindSuffix,
			})
		}
		if allowPrefix {
			out = append(out, patternKey{
				typoPattern: typo[:len(typo)-cut],
				wordPattern: word[:len(word)-cut],
				kind:        boundary.KindPrefix,
			})
		}
	}
	return out
}

func dedupeCorrections(cs []Correction) []Correction {
	seen := make(map[Correction]struct{}, len(cs))
	out := make([]Correction, 0, len(cs))
	for _, c := range cs {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// validatePattern runs the §4.3 validation checks in order and, if the
// pattern survives all of them, commits it and removes its occurrences
// from the active correction set.
func validatePattern(
	state *DictionaryState,
	ctx *Context,
	k patternKey,
	occurrences []Correction,
	directPairs map[[2]string]struct{},
) bool {
	// 1. Reproducibility: every occurrence's typo/word must actually be
	// reconstructible by re-attaching the stripped affix.
	for _, occ := range occurrences {
		if !reconstructs(k, occ) {
			state.LogEvent("pattern", "rejected: not reproducible", nil)
			return false
		}
	}

	// 2. Source-word corruption: the pattern's typo side must not, on
	// its own, already be an exact validation or source word (applying
	// it would corrupt a correctly spelled word).
	if _, ok := ctx.Words.FilteredValidation[k.typoPattern]; ok {
		state.LogEvent("pattern", "rejected: typo pattern corrupts a validation word", nil)
		return false
	}
	if _, ok := ctx.Words.Source[k.typoPattern]; ok {
		state.LogEvent("pattern", "rejected: typo pattern corrupts a source word", nil)
		return false
	}

	// 3. Validation-word conflict: the pattern's typo side must not
	// silently match some other, unrelated validation/source word as a
	// prefix/suffix/substring (the same false-trigger family §4.2
	// checks for individual corrections).
	escalationOrder := boundary.EscalationOrder(k.kind)
	chosenBoundary, ok := chooseFirstSafeBoundary(ctx, k.typoPattern, escalationOrder)
	if !ok {
		state.LogEvent("pattern", "rejected: no boundary avoids false triggers", nil)
		return false
	}

	// 4. Cross-correction conflict: the generalized (typo_pattern,
	// word_pattern) pair itself must not collide with some other direct
	// correction's exact (typo, word) pair (one not among the
	// occurrences this pattern is about to subsume) — that correction
	// would otherwise silently disagree with what the pattern implies.
	occurrenceSet := make(map[Correction]struct{}, len(occurrences))
	for _, occ := range occurrences {
		occurrenceSet[occ] = struct{}{}
	}
	if _, exists := directPairs[[2]string{k.typoPattern, k.wordPattern}]; exists {
		if _, isOccurrence := occurrenceSet[Correction{Typo: k.typoPattern, Word: k.wordPattern, Boundary: chosenBoundary}]; !isOccurrence {
			state.LogEvent("pattern", "rejected: cross-boundary conflict with direct correction", nil)
			return false
		}
	}

	pattern := Correction{
		Typo:     k.typoPattern,
		Word:     k.wordPattern,
		Boundary: chosenBoundary,
	}
	if state.IsGraveyarded(pattern) {
		state.LogEvent("pattern", "rejected: pattern previously graveyarded", &pattern)
		return false
	}
	state.CommitPattern(pattern, occurrences)
	state.LogEvent("pattern", "committed generalized pattern", &pattern)
	return true
}

// reconstructs reports whether reattaching the stripped affix to the
// pattern's typo/word sides yields exactly occ's own typo/word, which is
// what makes the pattern a faithful generalization of occ rather than a
// coincidental string match.
func reconstructs(k patternKey, occ Correction) bool {
	switch k.kind {
	case boundary.KindSuffix:
		if len(occ.Typo) < len(k.typoPattern) || len(occ.Word) < len(k.wordPattern) {
			return false
		}
		return occ.Typo[len(occ.Typo)-len(k.typoPattern):] == k.typoPattern &&
			occ.Word[len(occ.Word)-len(k.wordPattern):] == k.wordPattern
	case boundary.KindPrefix:
		if len(occ.Typo) < len(k.typoPattern) || len(occ.Word) < len(k.wordPattern) {
			return false
		}
		return occ.Typo[:len(k.typoPattern)] == k.typoPattern &&
			occ.Word[:len(k.wordPattern)] == k.wordPattern
	default:
		return false
	}
}

// chooseFirstSafeBoundary tries order in sequence and returns the first
// boundary that does not cause typoPattern to false-trigger against the
// validation/source indexes. Patterns never escalate to BOTH (a pattern
// boundary is never BOTH by construction), so if every candidate in
// order would false-trigger, the pattern is rejected entirely.
func chooseFirstSafeBoundary(ctx *Context, typoPattern string, order []boundary.Boundary) (boundary.Boundary, bool) {
	for _, b := range order {
		if !patternWouldFalseTrigger(ctx, typoPattern, b) {
			return b, true
		}
	}
	return boundary.NONE, false
}

func patternWouldFalseTrigger(ctx *Context, typoPattern string, b boundary.Boundary) bool {
	prefixElsewhere := ctx.ValidationIndex.IsPrefixOfOther(typoPattern) || ctx.SourceIndex.IsPrefixOfOther(typoPattern)
	suffixElsewhere := ctx.ValidationIndex.IsSuffixOfOther(typoPattern) || ctx.SourceIndex.IsSuffixOfOther(typoPattern)
	substringElsewhere := ctx.ValidationIndex.IsNonIdenticalSubstring(typoPattern) || ctx.SourceIndex.IsNonIdenticalSubstring(typoPattern)

	switch b {
	case boundary.NONE:
		return substringElsewhere || prefixElsewhere || suffixElsewhere
	case boundary.LEFT:
		return prefixElsewhere
	case boundary.RIGHT:
		return suffixElsewhere
	default:
		return true
	}
}
