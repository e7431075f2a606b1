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

package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexExactWord(t *testing.T) {
	idx := NewIndex([]string{"the", "tree", "treehouse"})
	assert.True(t, idx.IsExactWord("the"))
	assert.False(t, idx.IsExactWord("th"))
}

func TestIndexPrefixOfOther(t *testing.T) {
	idx := NewIndex([]string{"tree", "treehouse"})
	assert.True(t, idx.IsPrefixOfOther("tree"))
	assert.False(t, idx.IsPrefixOfOther("treehouse")) // not a prefix of another word
	assert.False(t, idx.IsPrefixOfOther("xyz"))
}

func TestIndexSuffixOfOther(t *testing.T) {
	idx := NewIndex([]string{"house", "treehouse"})
	assert.True(t, idx.IsSuffixOfOther("house"))
	assert.False(t, idx.IsSuffixOfOther("treehouse"))
}

func TestIndexNonIdenticalSubstring(t *testing.T) {
	idx := NewIndex([]string{"treehouse"})
	assert.True(t, idx.IsNonIdenticalSubstring("eeho"))
	assert.False(t, idx.IsNonIdenticalSubstring("treehouse")) // identical, excluded
	assert.False(t, idx.IsNonIdenticalSubstring("xyz"))
}

func TestIndexBatchChecks(t *testing.T) {
	idx := NewIndex([]string{"tree", "treehouse", "house"})
	prefixes := idx.BatchCheckPrefix([]string{"tree", "house"})
	assert.True(t, prefixes["tree"])
	assert.False(t, prefixes["house"])

	suffixes := idx.BatchCheckSuffix([]string{"house", "tree"})
	assert.True(t, suffixes["house"])
	assert.False(t, suffixes["tree"])

	substrings := idx.BatchCheckSubstring([]string{"eeho", "zzz"})
	assert.True(t, substrings["eeho"])
	assert.False(t, substrings["zzz"])
}
