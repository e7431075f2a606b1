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

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
)

// boundaryPriority ranks boundaries by restrictiveness for the tie-break
// rule in resolvePlatformPair: when two conflicting triggers belong to
// the same word, the more restrictive one is removed.
var boundaryPriority = map[boundary.Boundary]int{
	boundary.NONE:  0,
	boundary.LEFT:  1,
	boundary.RIGHT: 1,
	boundary.BOTH:  2,
}

// FormattedEntry pairs a correction (or pattern) with the platform-
// specific trigger string it formats to, which is what §4.5 actually
// compares for substring conflicts — not the raw typo.
type FormattedEntry struct {
	Correction Correction
	Formatted  string
}

// RunPlatformSubstringPass implements §4.5: after every active
// correction and pattern has been formatted into its platform-specific
// trigger (colon notation for QMK, the bare typo for espanso — see
// internal/platform), find every pair where one formatted trigger is a
// substring of another and remove the one a real autocorrect engine
// would never actually fire, bucketing by length so no formatted
// trigger is compared against another of equal or longer length.
func RunPlatformSubstringPass(state *DictionaryState, entries []FormattedEntry, direction MatchDirection) {
	buckets := make(map[int][]FormattedEntry)
	for _, e := range entries {
		buckets[len(e.Formatted)] = append(buckets[len(e.Formatted)], e)
	}
	lengths := make([]int, 0, len(buckets))
	for l := range buckets {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	// byFirstChar accumulates shorter formatted triggers, seen in
	// earlier (smaller-length) buckets, indexed by first byte. A shorter
	// trigger can start at any position of a longer one, so each longer
	// trigger scans the lists of every distinct byte it contains.
	byFirstChar := make(map[byte][]FormattedEntry)
	removed := make(map[Correction]struct{})

	for _, l := range lengths {
		bucket := buckets[l]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Formatted < bucket[j].Formatted })
		for _, longer := range bucket {
			if len(longer.Formatted) == 0 {
				continue
			}
			scanned := make(map[byte]struct{}, len(longer.Formatted))
		scan:
			for i := 0; i < len(longer.Formatted); i++ {
				key := longer.Formatted[i]
				if _, done := scanned[key]; done {
					continue
				}
				scanned[key] = struct{}{}
				for _, shorter := range byFirstChar[key] {
					if _, gone := removed[shorter.Correction]; gone {
						continue
					}
					if _, gone := removed[longer.Correction]; gone {
						break scan
					}
					if !isPlatformSubstring(shorter.Formatted, longer.Formatted) {
						continue
					}
					loser := resolvePlatformPair(shorter, longer, direction)
					removed[loser.Correction] = struct{}{}
				}
			}
		}
		for _, e := range bucket {
			key := byte(0)
			if len(e.Formatted) > 0 {
				key = e.Formatted[0]
			}
			byFirstChar[key] = append(byFirstChar[key], e)
		}
	}

	for c := range removed {
		state.Graveyard(c, ReasonPlatformConstraint, c.Word)
		state.LogEvent("platform", "removed: cross-boundary platform substring conflict", &c)
	}
}

// isPlatformSubstring reports whether shorter occurs inside longer,
// with prefix/suffix fast paths since boundary markers make those the
// overwhelmingly common case.
func isPlatformSubstring(shorter, longer string) bool {
	if shorter == "" || longer == "" || shorter == longer {
		return false
	}
	if strings.HasPrefix(longer, shorter) || strings.HasSuffix(longer, shorter) {
		return true
	}
	return strings.Contains(longer, shorter)
}

// resolvePlatformPair decides which of two conflicting formatted
// triggers to remove. If both map to the same word, the more
// restrictive boundary loses (it is redundant once the less
// restrictive one already covers the same word). Otherwise the shorter
// one is removed on both platforms: QMK's compiler rejects any
// substring relationship outright, and espanso matches left to right,
// so the shorter trigger would always fire first and mask the longer
// one. direction does not change the outcome.
func resolvePlatformPair(shorter, longer FormattedEntry, direction MatchDirection) FormattedEntry {
	if shorter.Correction.Word == longer.Correction.Word {
		if boundaryPriority[longer.Correction.Boundary] > boundaryPriority[shorter.Correction.Boundary] {
			return longer
		}
		return shorter
	}
	_ = direction // both platforms currently resolve the same way: drop the shorter
	return shorter
}
