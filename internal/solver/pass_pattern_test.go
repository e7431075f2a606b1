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

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

func TestRunPatternPassGeneralizesSharedSuffix(t *testing.T) {
	ranked := []string{"walking", "talking", "jumping"}
	ctx := NewContext(
		WordSets{Validation: toSet(ranked), FilteredValidation: toSet(ranked), Source: toSet(ranked), User: map[string]struct{}{}},
		nil, 3, 2, 2.0, 0, wordfreq.NewTable(ranked),
	)
	state := NewDictionaryState(nil)
	state.AddActiveCorrection(Correction{Typo: "walkign", Word: "walking", Boundary: boundary.NONE})
	state.AddActiveCorrection(Correction{Typo: "talkign", Word: "talking", Boundary: boundary.NONE})

	RunPatternPass(state, ctx)

	assert.Empty(t, state.ActiveCorrections())
	patterns := state.ActivePatterns()
	require.Len(t, patterns, 1)
	assert.Equal(t, "ign", patterns[0].Typo)
	assert.Equal(t, "ing", patterns[0].Word)
}

func TestRunPatternPassLeavesSingleOccurrenceUngeneralized(t *testing.T) {
	ranked := []string{"walking"}
	ctx := NewContext(
		WordSets{Validation: toSet(ranked), FilteredValidation: toSet(ranked), Source: toSet(ranked), User: map[string]struct{}{}},
		nil, 3, 2, 2.0, 0, wordfreq.NewTable(ranked),
	)
	state := NewDictionaryState(nil)
	state.AddActiveCorrection(Correction{Typo: "walkign", Word: "walking", Boundary: boundary.NONE})

	RunPatternPass(state, ctx)

	assert.Len(t, state.ActiveCorrections(), 1)
	assert.Empty(t, state.ActivePatterns())
}

func TestRunPatternPassExemptsElevatedUserWordCorrections(t *testing.T) {
	ranked := []string{"hi", "hey"}
	ctx := NewContext(
		WordSets{Validation: toSet(ranked), FilteredValidation: toSet(ranked), Source: toSet(ranked), User: toSet([]string{"hi", "hey"})},
		nil, 3, 2, 2.0, 0, wordfreq.NewTable(ranked),
	)
	state := NewDictionaryState(nil)
	state.AddActiveCorrection(Correction{Typo: "ih", Word: "hi", Boundary: boundary.BOTH})
	state.AddActiveCorrection(Correction{Typo: "he", Word: "hey", Boundary: boundary.BOTH})

	RunPatternPass(state, ctx)

	assert.Len(t, state.ActiveCorrections(), 2)
	assert.Empty(t, state.ActivePatterns())
}
