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

package platform

import (
	"sort"

	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

// StandardRank implements spec.md §4.7's 3-tier sort, shared by every
// Platform: tier 0 user-word corrections, tier 1 patterns scored by
// Σ wordfreq(replaced_word), tier 2 direct corrections scored by
// wordfreq(word). Descending score within a tier; truncated to
// maxCorrections (0 or negative means unlimited).
func StandardRank(entries []RankEntry, freq *wordfreq.Table, maxCorrections int) []RankEntry {
	scored := make([]struct {
		entry RankEntry
		tier  int
		score float64
	}, len(entries))

	for i, e := range entries {
		tier, score := tierAndScore(e, freq)
		scored[i].entry = e
		scored[i].tier = tier
		scored[i].score = score
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].tier != scored[j].tier {
			return scored[i].tier < scored[j].tier
		}
		return scored[i].score > scored[j].score
	})

	out := make([]RankEntry, len(scored))
	for i, s := range scored {
		out[i] = s.entry
	}
	if maxCorrections > 0 && len(out) > maxCorrections {
		out = out[:maxCorrections]
	}
	return out
}

func tierAndScore(e RankEntry, freq *wordfreq.Table) (tier int, score float64) {
	if e.IsUserWord {
		return 0, freq.Frequency(e.Correction.Word)
	}
	if e.IsPattern {
		var total float64
		for _, w := range e.ReplacedWords {
			total += freq.Frequency(w)
		}
		return 1, total
	}
	return 2, freq.Frequency(e.Correction.Word)
}
