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

// Package wordfreq supplies corpus-frequency lookups for the
// collision-resolution step in spec.md §4.2, plus a string-similarity
// helper, PhoneticTiebreak, which that step does not call. Words are loaded already ranked by descending corpus frequency
// (one per line, most frequent first) the way the "top_n" config key's
// source list is naturally shaped; frequency is approximated as the
// inverse of rank, which is enough to compare two candidates in a
// deterministic order without requiring a real corpus-frequency corpus
// at solve time.
package wordfreq

import (
	"math"

	"github.com/antzucaro/matchr"
)

// Table is a ranked word-frequency lookup, built once from a rank-
// ordered word list and shared read-only across the solve.
type Table struct {
	rank map[string]int
	size int
}

// NewTable builds a Table from a rank-ordered word list (index 0 = most
// frequent).
func NewTable(rankedWords []string) *Table {
	t := &Table{rank: make(map[string]int, len(rankedWords)), size: len(rankedWords)}
	for i, w := range rankedWords {
		t.rank[w] = i
	}
	return t
}

// Frequency returns a monotonically-decreasing score for word: higher
// for more frequent (lower-rank) words, 0 for words absent from the
// table entirely.
func (t *Table) Frequency(word string) float64 {
	if t == nil {
		return 0
	}
	r, ok := t.rank[word]
	if !ok {
		return 0
	}
	return 1.0 / float64(r+1)
}

// CollisionWinner picks the frequency-leading word among candidates and
// returns it along with the top-two-frequency ratio used by §4.2's
// freq_ratio gate. When the runner-up frequency is exactly zero, the
// ratio gate treats the case as "always accept" — Open Question (b) in
// SPEC_FULL.md's Open Question Decisions — so the returned ratio is
// +Inf rather than dividing by an implicit epsilon.
func (t *Table) CollisionWinner(candidates []string) (winner string, ratio float64) {
	type scored struct {
		word string
		freq float64
	}
	scoredList := make([]scored, len(candidates))
	for i, c := range candidates {
		scoredList[i] = scored{c, t.Frequency(c)}
	}
	// selection sort by freq desc. It is not stable and uses no
	// secondary key, so among candidates of equal frequency the winner
	// depends on the incoming candidate order.
	for i := 0; i < len(scoredList); i++ {
		best := i
		for j := i + 1; j < len(scoredList); j++ {
			if scoredList[j].freq > scoredList[best].freq {
				best = j
			}
		}
		scoredList[i], scoredList[best] = scoredList[best], scoredList[i]
	}
	if len(scoredList) == 0 {
		return "", 0
	}
	if len(scoredList) == 1 {
		return scoredList[0].word, math.Inf(1)
	}
	f1, f2 := scoredList[0].freq, scoredList[1].freq
	if f2 == 0 {
		return scoredList[0].word, math.Inf(1)
	}
	return scoredList[0].word, f1 / f2
}

// PhoneticTiebreak breaks a near-tie between two candidate words for the
// same typo using Jaro-Winkler similarity against the typo itself,
// returning a when the two scores are equal. CollisionWinner does not
// call it.
func PhoneticTiebreak(typo, a, b string) string {
	simA := matchr.JaroWinkler(typo, a, true)
	simB := matchr.JaroWinkler(typo, b, true)
	if simA >= simB {
		return a
	}
	return b
}
