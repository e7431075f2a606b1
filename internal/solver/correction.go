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

// Package solver implements the iterative correction solver: candidate
// selection, pattern generalization, intra-group conflict removal and
// platform substring conflict removal over a shared DictionaryState.
package solver

import (
	"fmt"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
)

// Correction is the immutable value triple (typo, word, boundary).
// Equality is by value, so it is usable as a map key directly.
type Correction struct {
	Typo     string
	Word     string
	Boundary boundary.Boundary
}

func (c Correction) String() string {
	return fmt.Sprintf("(%s -> %s, %s)", c.Typo, c.Word, c.Boundary)
}

// RejectionReason classifies why a triple was moved to the graveyard.
type RejectionReason string

const (
	ReasonCollisionAmbiguous       RejectionReason = "COLLISION_AMBIGUOUS"
	ReasonTooShort                 RejectionReason = "TOO_SHORT"
	ReasonBlockedByConflict        RejectionReason = "BLOCKED_BY_CONFLICT"
	ReasonPlatformConstraint       RejectionReason = "PLATFORM_CONSTRAINT"
	ReasonPatternValidationFailed  RejectionReason = "PATTERN_VALIDATION_FAILED"
	ReasonExcludedByPattern        RejectionReason = "EXCLUDED_BY_PATTERN"
	ReasonFalseTrigger             RejectionReason = "FALSE_TRIGGER"
)

// GraveyardEntry annotates a rejected triple with why it was rejected,
// a human-readable blocker (e.g. an offending word), and the iteration
// in which the rejection happened.
type GraveyardEntry struct {
	Reason    RejectionReason
	Blocker   string
	Iteration int
}
