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

// Package platform implements the spec.md §4.7 collaborator surface: a
// Platform renders the solver's accepted corrections and patterns into
// an autocorrect engine's own trigger format and ranks/truncates them to
// fit its capacity.
package platform

import (
	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/charset"
	"github.com/ohshitgorillas/entroppy-go/internal/solver"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

// RankEntry is one accepted correction or pattern on its way to a
// Platform's Rank/Emit pipeline.
type RankEntry struct {
	Correction solver.Correction

	// IsPattern marks entries produced by RunPatternPass's commits
	// rather than a single direct correction.
	IsPattern bool

	// ReplacedWords lists the words a pattern actually subsumed (its
	// occurrences' Word fields, one per occurrence, not deduplicated),
	// used for tier-1 scoring:
	// Σ wordfreq(replaced_word). Empty for direct corrections.
	ReplacedWords []string

	// IsUserWord marks an entry whose Word came from the include list,
	// promoting it to tier 0 regardless of pattern/direct status.
	IsUserWord bool
}

// Platform is the spec.md §4.7 contract. Concrete platforms (espanso,
// qmk) are registered in Registry and selected by name from CLI/config.
type Platform interface {
	Name() string
	MatchDirection() solver.MatchDirection
	AllowedChars() *charset.Set
	MaxCorrections() int
	FormatTrigger(typo string, b boundary.Boundary) string
	Rank(entries []RankEntry, freq *wordfreq.Table) []RankEntry
	Emit(ranked []RankEntry, outputPath string) error
}
