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

// Package boundary defines the Boundary enumeration and the strictness
// ordering the solver uses to escalate a trigger from "matches anywhere"
// to "standalone word only".
package boundary

import "fmt"

// Boundary specifies where a trigger is permitted to fire.
type Boundary int

const (
	// NONE may match anywhere within a larger word.
	NONE Boundary = iota
	// LEFT requires the trigger to start a word.
	LEFT
	// RIGHT requires the trigger to end a word.
	RIGHT
	// BOTH requires the trigger to be a standalone word.
	BOTH
)

func (b Boundary) String() string {
	switch b {
	case NONE:
		return "none"
	case LEFT:
		return "left"
	case RIGHT:
		return "right"
	case BOTH:
		return "both"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// Parse converts a Boundary's String() form back into a Boundary,
// defaulting to NONE for anything unrecognized (used when reloading
// persisted run-cache rows).
func Parse(s string) Boundary {
	switch s {
	case "left":
		return LEFT
	case "right":
		return RIGHT
	case "both":
		return BOTH
	default:
		return NONE
	}
}

// rank gives the strictness order NONE < LEFT = RIGHT < BOTH used by
// ChooseStrictest. LEFT and RIGHT are incomparable except that both are
// stricter than NONE and less strict than BOTH.
func (b Boundary) rank() int {
	switch b {
	case NONE:
		return 0
	case LEFT, RIGHT:
		return 1
	case BOTH:
		return 2
	default:
		return -1
	}
}

// Less reports whether b is strictly less strict than other under the
// NONE < LEFT = RIGHT < BOTH order. LEFT and RIGHT never compare less
// than one another.
func (b Boundary) Less(other Boundary) bool {
	if (b == LEFT && other == RIGHT) || (b == RIGHT && other == LEFT) {
		return false
	}
	return b.rank() < other.rank()
}

// ChooseStrictest returns the strictest boundary among the given set,
// per the law choose_strictest({LEFT, RIGHT}) = BOTH.
func ChooseStrictest(bs ...Boundary) Boundary {
	if len(bs) == 0 {
		return NONE
	}
	hasLeft, hasRight, hasBoth, hasNone := false, false, false, false
	for _, b := range bs {
		switch b {
		case LEFT:
			hasLeft = true
		case RIGHT:
			hasRight = true
		case BOTH:
			hasBoth = true
		case NONE:
			hasNone = true
		}
	}
	if hasBoth || (hasLeft && hasRight) {
		return BOTH
	}
	if hasLeft {
		return LEFT
	}
	if hasRight {
		return RIGHT
	}
	if hasNone {
		return NONE
	}
	return NONE
}

// Kind classifies the structural role a correction's typo plays against
// its word, which determines both the boundary-selection order in §4.2
// and the pattern type in §4.3.
type Kind int

const (
	// KindOther is neither a clean prefix, suffix, nor middle substring
	// relationship between typo and word.
	KindOther Kind = iota
	KindPrefix
	KindSuffix
	KindMiddle
)

// ClassifyRelation determines how typo relates to word: prefix, suffix,
// true-middle substring, or neither. A prefix relation takes priority
// over a suffix one when typo is both (e.g. "ab" in "abab"); typo ==
// word yields KindOther.
func ClassifyRelation(typo, word string) Kind {
	if typo == word || typo == "" || word == "" {
		return KindOther
	}
	isPrefix := len(typo) < len(word) && word[:len(typo)] == typo
	isSuffix := len(typo) < len(word) && word[len(word)-len(typo):] == typo
	switch {
	case isPrefix:
		return KindPrefix
	case isSuffix:
		return KindSuffix
	default:
		// middle substring: typo occurs somewhere inside word but is
		// neither a prefix nor a suffix of it.
		if len(typo) < len(word) && indexOf(word, typo) >= 0 {
			return KindMiddle
		}
		return KindOther
	}
}

func indexOf(haystack, needle string) int {
	n, m := len(haystack), len(needle)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if haystack[i:i+m] == needle {
			return i
		}
	}
	return -1
}

// SelectionOrder returns the ordered list of boundaries §4.2 says to try
// for a typo/word pair of the given relation kind.
func SelectionOrder(k Kind) []Boundary {
	switch k {
	case KindPrefix:
		return []Boundary{NONE, LEFT, BOTH}
	case KindSuffix:
		return []Boundary{NONE, RIGHT, BOTH}
	case KindMiddle:
		return []Boundary{NONE, BOTH}
	default:
		return []Boundary{NONE, LEFT, RIGHT, BOTH}
	}
}

// PatternBoundary is the restriction of Boundary that excludes BOTH: a
// pattern covers many contexts and is never itself a standalone trigger.
// Constructing one from a Boundary of BOTH panics, enforcing the
// invariant at the type level as §9 of the design notes recommends.
type PatternBoundary struct {
	b Boundary
}

// NewPatternBoundary validates b is not BOTH and wraps it.
func NewPatternBoundary(b Boundary) PatternBoundary {
	if b == BOTH {
		panic("boundary: a pattern boundary may never be BOTH")
	}
	return PatternBoundary{b: b}
}

// Value unwraps the underlying Boundary.
func (p PatternBoundary) Value() Boundary { return p.b }

// EscalationOrder returns the boundaries a pattern of the given
// structural kind may try, in the order §4.3 prescribes.
func EscalationOrder(k Kind) []Boundary {
	switch k {
	case KindPrefix:
		return []Boundary{NONE, LEFT}
	case KindSuffix:
		return []Boundary{NONE, RIGHT}
	default:
		return []Boundary{NONE}
	}
}
