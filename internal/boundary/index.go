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

// Index answers the three false-trigger questions §4.2 and §4.3 need
// against a fixed word set, without ever falling back to a linear scan
// of the set itself: is s a prefix of some word, a suffix of some word,
// or a non-identical substring of some word. It is built once from a
// snapshot of the relevant word set (validation,
// filtered validation, or source words) and is read-only afterwards, so
// it is safe to share across parallel workers.
type Index struct {
	prefixes   map[string]map[string]struct{}
	suffixes   map[string]map[string]struct{}
	substrings map[string]struct{}
	words      map[string]struct{}
}

// NewIndex builds prefix, suffix and substring indexes from words. The
// build is O(total chars^2) in the word set, same as every other
// implementation of this index; it runs once per index, never per query.
func NewIndex(words []string) *Index {
	idx := &Index{
		prefixes:   make(map[string]map[string]struct{}),
		suffixes:   make(map[string]map[string]struct{}),
		substrings: make(map[string]struct{}),
		words:      make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		idx.words[w] = struct{}{}
		idx.addWord(w)
	}
	return idx
}

func (idx *Index) addWord(w string) {
	for i := 1; i <= len(w); i++ {
		prefix := w[:i]
		set, ok := idx.prefixes[prefix]
		if !ok {
			set = make(map[string]struct{})
			idx.prefixes[prefix] = set
		}
		set[w] = struct{}{}
	}
	for i := 0; i < len(w); i++ {
		suffix := w[i:]
		set, ok := idx.suffixes[suffix]
		if !ok {
			set = make(map[string]struct{})
			idx.suffixes[suffix] = set
		}
		set[w] = struct{}{}
	}
	for i := 0; i < len(w); i++ {
		for j := i + 1; j <= len(w); j++ {
			if i == 0 && j == len(w) {
				continue // exclude the identical-word "substring"
			}
			idx.substrings[w[i:j]] = struct{}{}
		}
	}
}

// IsExactWord reports whether s is itself a member of the indexed set.
func (idx *Index) IsExactWord(s string) bool {
	_, ok := idx.words[s]
	return ok
}

// IsPrefixOfOther reports whether s is a prefix of some word other than
// s itself.
func (idx *Index) IsPrefixOfOther(s string) bool {
	words, ok := idx.prefixes[s]
	if !ok {
		return false
	}
	for w := range words {
		if w != s {
			return true
		}
	}
	return false
}

// IsSuffixOfOther reports whether s is a suffix of some word other than
// s itself.
func (idx *Index) IsSuffixOfOther(s string) bool {
	words, ok := idx.suffixes[s]
	if !ok {
		return false
	}
	for w := range words {
		if w != s {
			return true
		}
	}
	return false
}

// IsNonIdenticalSubstring reports whether s occurs as a substring of
// some word, at a position that does not make s equal to that word.
func (idx *Index) IsNonIdenticalSubstring(s string) bool {
	_, ok := idx.substrings[s]
	return ok
}

// BatchCheckPrefix runs IsPrefixOfOther for many candidates at once,
// matching the batch-query contract §3 asks indexes to support.
func (idx *Index) BatchCheckPrefix(candidates []string) map[string]bool {
	out := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		out[c] = idx.IsPrefixOfOther(c)
	}
	return out
}

// BatchCheckSuffix runs IsSuffixOfOther for many candidates at once.
func (idx *Index) BatchCheckSuffix(candidates []string) map[string]bool {
	out := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		out[c] = idx.IsSuffixOfOther(c)
	}
	return out
}

// BatchCheckSubstring runs IsNonIdenticalSubstring for many candidates
// at once.
func (idx *Index) BatchCheckSubstring(candidates []string) map[string]bool {
	out := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		out[c] = idx.IsNonIdenticalSubstring(c)
	}
	return out
}
