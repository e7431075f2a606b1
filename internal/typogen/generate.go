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

// Package typogen implements stage 2 (spec.md §4.1): enumerating
// candidate typos for a source word via transposition, deletion,
// insertion and substitution, optionally guided by a keyboard adjacency
// map.
package typogen

// AdjacencyMap maps a character to the set of characters adjacent to it
// on the keyboard layout used to seed insertion/substitution typos.
type AdjacencyMap map[byte][]byte

// Candidates returns the deduplicated multiset of candidate typos for
// word, per the four generators in §4.1. word must already be lowercase
// ASCII; the generators operate byte-wise.
func Candidates(word string, adj AdjacencyMap) []string {
	if len(word) == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	emit := func(s string) {
		if s == word {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	transpositions(word, emit)
	deletions(word, emit)
	if adj != nil {
		insertions(word, adj, emit)
		substitutions(word, adj, emit)
	}
	return out
}

// transpositions swaps word[i] and word[i+1] for every i < len(word)-1.
func transpositions(word string, emit func(string)) {
	for i := 0; i < len(word)-1; i++ {
		b := []byte(word)
		b[i], b[i+1] = b[i+1], b[i]
		emit(string(b))
	}
}

// deletions removes word[i], only when len(word) >= 4.
func deletions(word string, emit func(string)) {
	if len(word) < 4 {
		return
	}
	for i := 0; i < len(word); i++ {
		emit(word[:i] + word[i+1:])
	}
}

// insertions emits word with an adjacent character spliced in just
// before or just after position i, for every i whose character has
// adjacency entries.
func insertions(word string, adj AdjacencyMap, emit func(string)) {
	for i := 0; i < len(word); i++ {
		neighbors, ok := adj[word[i]]
		if !ok {
			continue
		}
		for _, c := range neighbors {
			// after position i
			emit(word[:i+1] + string(c) + word[i+1:])
			// before position i
			emit(word[:i] + string(c) + word[i:])
		}
	}
}

// substitutions replaces word[i] with each adjacent character.
func substitutions(word string, adj AdjacencyMap, emit func(string)) {
	for i := 0; i < len(word); i++ {
		neighbors, ok := adj[word[i]]
		if !ok {
			continue
		}
		for _, c := range neighbors {
			emit(word[:i] + string(c) + word[i+1:])
		}
	}
}

// BuildTypoMap runs Candidates over every source word and groups the
// results as typo -> [candidate correct words], the raw_typo_map §3
// describes. The same typo may be produced by more than one source
// word; all candidate words are retained (collision resolution happens
// downstream, in the solver's candidate-selection pass).
func BuildTypoMap(sourceWords []string, adj AdjacencyMap) map[string][]string {
	out := make(map[string][]string)
	for _, w := range sourceWords {
		for _, typo := range Candidates(w, adj) {
			out[typo] = append(out[typo], w)
		}
	}
	return out
}
