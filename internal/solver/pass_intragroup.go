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
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
)

// MatchDirection tells the intra-group and platform passes which side
// of a substring relationship the platform's matcher actually replaces
// first: espanso scans left to right (the leftmost, i.e. shortest-
// prefix, match wins), QMK's dictionary compiler effectively resolves
// right to left.
type MatchDirection int

const (
	// LeftToRight is espanso's matching direction.
	LeftToRight MatchDirection = iota
	// RightToLeft is QMK's matching direction.
	RightToLeft
)

// RunIntraGroupPass implements §4.4: within each boundary group of
// active corrections (same Boundary value), resolve every pair whose
// typo is a plain substring of another typo in the same group. If
// replacing the shorter typo inside the longer one reproduces the
// longer correction's own word, the two agree and the longer entry is
// redundant (the shorter one already fires for that occurrence), so the
// longer is graveyarded. If it does not reproduce the longer word, the
// two disagree about what the shared substring means; the shorter typo
// would fire first and corrupt the longer correction, so the shorter
// one is the hazard and is graveyarded, keeping the longer.
//
// Groups are processed concurrently (read-only against the snapshot
// taken at the start of the pass); conflicts found are applied to state
// sequentially afterwards.
func RunIntraGroupPass(state *DictionaryState, direction MatchDirection) {
	active := state.ActiveCorrections()
	groups := make(map[boundary.Boundary][]Correction)
	for _, c := range active {
		groups[c.Boundary] = append(groups[c.Boundary], c)
	}

	boundaries := make([]boundary.Boundary, 0, len(groups))
	for b := range groups {
		boundaries = append(boundaries, b)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i] < boundaries[j] })

	toRemove := make([][]Correction, len(boundaries))
	g := new(errgroup.Group)
	for i, b := range boundaries {
		i, group := i, groups[b]
		g.Go(func() error {
			toRemove[i] = findIntraGroupConflicts(group, direction)
			return nil
		})
	}
	_ = g.Wait() // findIntraGroupConflicts never errors

	for _, removals := range toRemove {
		for _, c := range removals {
			state.Graveyard(c, ReasonBlockedByConflict, c.Word)
			state.LogEvent("intragroup", "removed: substring conflict within boundary group", &c)
		}
	}
}

// findIntraGroupConflicts sorts group by typo length ascending and, for
// every pair where the shorter typo is a substring of the longer one,
// checks whether applying the shorter correction inside the longer
// typo reproduces the longer correction's word. Agreement graveyards
// the now-redundant longer entry; disagreement graveyards the shorter
// entry, since it is the one that would fire first and corrupt the
// longer correction's intended result.
func findIntraGroupConflicts(group []Correction, direction MatchDirection) []Correction {
	sorted := make([]Correction, len(group))
	copy(sorted, group)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].Typo) != len(sorted[j].Typo) {
			return len(sorted[i].Typo) < len(sorted[j].Typo)
		}
		return sorted[i].Typo < sorted[j].Typo
	})

	removedSet := make(map[Correction]struct{})
	var removed []Correction
	for i := 0; i < len(sorted); i++ {
		shorter := sorted[i]
		if _, gone := removedSet[shorter]; gone {
			continue
		}
		for j := i + 1; j < len(sorted); j++ {
			longer := sorted[j]
			if _, gone := removedSet[longer]; gone {
				continue
			}
			if len(shorter.Typo) == len(longer.Typo) || !strings.Contains(longer.Typo, shorter.Typo) {
				continue
			}
			agree := wouldReproduce(shorter, longer, direction)
			loser := conflictLoser(shorter, longer, agree)
			removedSet[loser] = struct{}{}
			removed = append(removed, loser)
			if loser == shorter {
				break
			}
		}
	}
	return removed
}

// wouldReproduce checks whether replacing the first (LeftToRight) or
// last (RightToLeft) occurrence of shorter.Typo within longer.Typo with
// shorter.Word yields exactly longer.Word — i.e. the two corrections
// actually agree, and no conflict exists.
func wouldReproduce(shorter, longer Correction, direction MatchDirection) bool {
	idx := substringIndex(longer.Typo, shorter.Typo, direction)
	if idx < 0 {
		return false
	}
	expected := longer.Typo[:idx] + shorter.Word + longer.Typo[idx+len(shorter.Typo):]
	return expected == longer.Word
}

func substringIndex(haystack, needle string, direction MatchDirection) int {
	if direction == RightToLeft {
		return strings.LastIndex(haystack, needle)
	}
	return strings.Index(haystack, needle)
}

// conflictLoser decides which of the pair to remove. On agreement the
// longer entry is redundant, since the shorter correction already
// produces its word as a substring match. On disagreement the shorter
// entry is the hazard: an autocorrect engine applies the shorter
// trigger whenever it appears as a substring, so it fires first and
// corrupts the longer correction's intended result.
func conflictLoser(shorter, longer Correction, agree bool) Correction {
	if agree {
		return longer
	}
	return shorter
}
