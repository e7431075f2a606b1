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
)

func TestRunPlatformSubstringPassRemovesShorterOnDistinctWords(t *testing.T) {
	state := NewDictionaryState(nil)
	shorter := Correction{Typo: "teh", Word: "the", Boundary: boundary.NONE}
	longer := Correction{Typo: "tehouse", Word: "treehouse", Boundary: boundary.NONE}
	state.AddActiveCorrection(shorter)
	state.AddActiveCorrection(longer)

	entries := []FormattedEntry{
		{Correction: shorter, Formatted: "teh"},
		{Correction: longer, Formatted: "tehouse"},
	}
	RunPlatformSubstringPass(state, entries, RightToLeft)

	active := state.ActiveCorrections()
	require.Len(t, active, 1)
	assert.Equal(t, longer, active[0])
	entry, ok := state.GraveyardEntryFor(shorter)
	require.True(t, ok)
	assert.Equal(t, ReasonPlatformConstraint, entry.Reason)
}

func TestRunPlatformSubstringPassPrefersLessRestrictiveBoundaryOnSameWord(t *testing.T) {
	state := NewDictionaryState(nil)
	loose := Correction{Typo: "xform", Word: "transform", Boundary: boundary.NONE}
	strict := Correction{Typo: "xformx", Word: "transform", Boundary: boundary.BOTH}
	state.AddActiveCorrection(loose)
	state.AddActiveCorrection(strict)

	entries := []FormattedEntry{
		{Correction: loose, Formatted: "xform"},
		{Correction: strict, Formatted: "xformx"},
	}
	RunPlatformSubstringPass(state, entries, LeftToRight)

	active := state.ActiveCorrections()
	require.Len(t, active, 1)
	assert.Equal(t, loose, active[0])
	entry, ok := state.GraveyardEntryFor(strict)
	require.True(t, ok)
	assert.Equal(t, ReasonPlatformConstraint, entry.Reason)
}

func TestRunPlatformSubstringPassIgnoresUnrelatedTriggers(t *testing.T) {
	state := NewDictionaryState(nil)
	a := Correction{Typo: "abc", Word: "about", Boundary: boundary.NONE}
	b := Correction{Typo: "xyz", Word: "extras", Boundary: boundary.NONE}
	state.AddActiveCorrection(a)
	state.AddActiveCorrection(b)

	entries := []FormattedEntry{
		{Correction: a, Formatted: "abc"},
		{Correction: b, Formatted: "xyz"},
	}
	RunPlatformSubstringPass(state, entries, LeftToRight)

	assert.Len(t, state.ActiveCorrections(), 2)
}
