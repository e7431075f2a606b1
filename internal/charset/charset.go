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

// Package charset enforces a platform's allowed_chars constraint
// (spec.md §4.7). QMK's colon-notation trigger format is rendered by
// boundary.FormatColonNotation, not here.
package charset

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Set is a platform's allowed character set. A nil Set allows any
// character (spec.md's `allowed_chars: ANY`).
type Set struct {
	filter runes.Set
}

// QMK is the firmware's hard constraint: lowercase ASCII letters and
// the apostrophe, the only glyphs its keymap autocorrect table can
// encode.
var QMK = NewSet("abcdefghijklmnopqrstuvwxyz'")

// NewSet builds a Set admitting exactly the runes in allowed.
func NewSet(allowed string) *Set {
	members := make(map[rune]bool, len(allowed))
	for _, r := range allowed {
		members[r] = true
	}
	return &Set{filter: runes.Predicate(func(r rune) bool { return members[r] })}
}

// Allows reports whether every rune in s is a member of the set. A nil
// Set (ANY) always allows.
func (cs *Set) Allows(s string) bool {
	if cs == nil {
		return true
	}
	for _, r := range s {
		if !cs.filter.Contains(r) {
			return false
		}
	}
	return true
}

var diacriticStrip = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases s and strips diacritics, the normalization QMK's word
// list expects since its matcher is case-insensitive and has no
// accented-letter support.
func Fold(s string) string {
	stripped, _, err := transform.String(diacriticStrip, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(stripped)
}
