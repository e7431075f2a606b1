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

// Package debugtrace lets an operator ask "why did this typo/word end
// up the way it did" without re-running the solver under a debugger.
// It is additive instrumentation (see SPEC_FULL.md's Supplemented
// Features #1): every solver pass may consult a Matcher to decide
// whether to emit a structured trace event, but the matcher never
// changes solver semantics.
package debugtrace

import (
	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/exclude"
)

// Matcher decides whether a given word or (typo, word, boundary) triple
// was asked about by the operator via the debug.words / debug.typoPatterns
// config keys. It
// reuses the same exact/wildcard/boundary-qualified pattern grammar as
// exclude.Matcher, since the two concerns only differ in what happens
// on a match (skip vs. trace).
type Matcher struct {
	words   map[string]struct{}
	pattern *exclude.Matcher
	active  bool
}

// NewMatcher builds a tracer from a set of exact debug words and a list
// of typo patterns (same grammar exclude.NewMatcher accepts).
func NewMatcher(debugWords []string, debugTypoPatterns []string) *Matcher {
	words := make(map[string]struct{}, len(debugWords))
	for _, w := range debugWords {
		words[w] = struct{}{}
	}
	return &Matcher{
		words:   words,
		pattern: exclude.NewMatcher(debugTypoPatterns),
		active:  len(debugWords) > 0 || len(debugTypoPatterns) > 0,
	}
}

// Active reports whether any debug target was configured at all, so
// callers can skip building trace strings entirely on the hot path.
func (m *Matcher) Active() bool {
	return m != nil && m.active
}

// MatchesWord reports whether word was named exactly via debug.words.
func (m *Matcher) MatchesWord(word string) bool {
	if m == nil {
		return false
	}
	_, ok := m.words[word]
	return ok
}

// MatchesTriple reports whether the triple matches a debug.typoPatterns
// pattern or names the word via debug.words.
func (m *Matcher) MatchesTriple(typo, word string, b boundary.Boundary) bool {
	if m == nil {
		return false
	}
	if m.MatchesWord(word) {
		return true
	}
	return m.pattern.ShouldExclude(typo, word, b)
}
