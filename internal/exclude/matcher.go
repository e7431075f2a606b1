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

// Package exclude implements the exclusion pattern matcher described in
// spec.md §4.2: exact typo, "typo -> word" rules (either side may carry
// a single '*' wildcard), and boundary-qualified typos via leading/
// trailing ':' markers.
package exclude

import (
	"strings"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
)

// Rule is a single parsed exclusion entry.
type Rule struct {
	// TypoPattern and WordPattern are the raw (possibly wildcarded)
	// sides of the rule. WordPattern is empty for an exact-typo-only
	// rule.
	TypoPattern string
	WordPattern string
	// Boundary, if non-nil, restricts this rule to a specific boundary
	// qualifier parsed off the typo side via ':' markers.
	Boundary *boundary.Boundary
}

// Matcher evaluates Correction-shaped queries against a set of parsed
// exclusion rules.
type Matcher struct {
	rules []Rule
}

// NewMatcher parses each raw line in patterns (already stripped of
// comments and blank lines by the caller) into a Rule.
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{rules: make([]Rule, 0, len(patterns))}
	for _, p := range patterns {
		m.rules = append(m.rules, parseRule(p))
	}
	return m
}

func parseRule(raw string) Rule {
	typoSide := raw
	wordSide := ""
	if idx := strings.Index(raw, " -> "); idx >= 0 {
		typoSide = raw[:idx]
		wordSide = raw[idx+len(" -> "):]
	}

	var b *boundary.Boundary
	left := strings.HasPrefix(typoSide, ":")
	right := strings.HasSuffix(typoSide, ":")
	switch {
	case left && right && len(typoSide) >= 2:
		v := boundary.BOTH
		b = &v
		typoSide = typoSide[1 : len(typoSide)-1]
	case left:
		v := boundary.LEFT
		b = &v
		typoSide = typoSide[1:]
	case right:
		v := boundary.RIGHT
		b = &v
		typoSide = typoSide[:len(typoSide)-1]
	}

	return Rule{TypoPattern: typoSide, WordPattern: wordSide, Boundary: b}
}

// ShouldExclude reports whether the given (typo, word, boundary) triple
// matches any exclusion rule. A rule whose WordPattern is empty only
// constrains the typo side. A rule with a Boundary qualifier only
// applies when the candidate boundary matches exactly.
func (m *Matcher) ShouldExclude(typo, word string, b boundary.Boundary) bool {
	for _, rule := range m.rules {
		if rule.Boundary != nil && *rule.Boundary != b {
			continue
		}
		if !wildcardMatch(rule.TypoPattern, typo) {
			continue
		}
		if rule.WordPattern != "" && !wildcardMatch(rule.WordPattern, word) {
			continue
		}
		return true
	}
	return false
}

// wildcardMatch supports a single '*' anywhere in pattern: a leading
// '*' is a suffix match, a trailing '*' is a prefix match, one in the
// middle requires pattern's prefix and suffix both to occur (prefix at
// the start, suffix at the end, possibly with content, i.e. "*" acting
// as a middle wildcard over the full string), and no '*' means exact
// equality.
func wildcardMatch(pattern, s string) bool {
	star := strings.IndexByte(pattern, '*')
	if star < 0 {
		return pattern == s
	}
	prefix := pattern[:star]
	suffix := pattern[star+1:]
	if len(s) < len(prefix)+len(suffix) {
		return false
	}
	return strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix)
}
