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

package typogen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contains(items []string, s string) bool {
	for _, v := range items {
		if v == s {
			return true
		}
	}
	return false
}

func TestTranspositionCandidates(t *testing.T) {
	cands := Candidates("the", nil)
	assert.True(t, contains(cands, "hte"))
	assert.True(t, contains(cands, "teh"))
}

func TestDeletionRequiresMinLength(t *testing.T) {
	// "the" has length 3, too short for deletion.
	cands := Candidates("the", nil)
	assert.False(t, contains(cands, "he"))
	assert.False(t, contains(cands, "th"))

	// "four" has length 4, deletion applies.
	cands = Candidates("four", nil)
	assert.True(t, contains(cands, "our"))
	assert.True(t, contains(cands, "for"))
	assert.True(t, contains(cands, "fou"))
}

func TestNoSelfTypo(t *testing.T) {
	cands := Candidates("aa", nil)
	for _, c := range cands {
		assert.NotEqual(t, "aa", c)
	}
}

func TestInsertionAndSubstitutionRequireAdjacency(t *testing.T) {
	adj := AdjacencyMap{'e': []byte{'w', 'r'}}
	cands := Candidates("the", adj)
	assert.True(t, contains(cands, "thwe"))
	assert.True(t, contains(cands, "thre"))
	assert.True(t, contains(cands, "thw"))
	assert.True(t, contains(cands, "thr"))

	noAdj := Candidates("the", nil)
	assert.False(t, contains(noAdj, "thw"))
}

func TestBuildTypoMapGroupsBySharedTypo(t *testing.T) {
	m := BuildTypoMap([]string{"form", "from"}, nil)
	// "form" transposed at position 2 -> "from", and vice versa, so
	// each word appears as a candidate typo of the other.
	assert.Contains(t, m["from"], "form")
	assert.Contains(t, m["form"], "from")
}

func TestCandidatesDeduplicated(t *testing.T) {
	adj := AdjacencyMap{'o': []byte{'o'}}
	cands := Candidates("too", adj)
	seen := make(map[string]int)
	for _, c := range cands {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "candidate %q should be deduplicated", c)
	}
}
