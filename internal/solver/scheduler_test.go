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
	"github.com/ohshitgorillas/entroppy-go/internal/debugtrace"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

// fakePlatform renders a typo with a boundary marker suffix, enough to
// exercise the formatting and caching paths without depending on
// internal/platform.
type fakePlatform struct {
	direction MatchDirection
}

func (p fakePlatform) MatchDirection() MatchDirection { return p.direction }

func (p fakePlatform) FormatTrigger(typo string, b boundary.Boundary) string {
	return typo + ":" + b.String()
}

func TestRunConvergesWithinMaxIterations(t *testing.T) {
	ranked := []string{"walking", "talking", "the", "they"}
	ctx := NewContext(
		WordSets{
			Validation:         toSet(ranked),
			FilteredValidation: toSet(ranked),
			Source:             toSet(ranked),
			User:               map[string]struct{}{},
		},
		nil, 3, 2, 2.0, 0, wordfreq.NewTable(ranked),
	)
	state := NewDictionaryState(map[string][]string{
		"walkign": {"walking"},
		"talkign": {"talking"},
		"teh":     {"the"},
		"tehy":    {"they"},
	})

	converged, err := Run(state, ctx, fakePlatform{direction: LeftToRight}, debugtrace.NewMatcher(nil, nil), 0, nil)
	require.NoError(t, err)
	assert.True(t, converged)

	counts := state.Snapshot()
	assert.Greater(t, counts.ActiveCorrections+counts.ActivePatterns, 0)
}

func TestRunSendsProgressPerIteration(t *testing.T) {
	ranked := []string{"the"}
	ctx := NewContext(
		WordSets{
			Validation:         toSet(ranked),
			FilteredValidation: toSet(ranked),
			Source:             toSet(ranked),
			User:               map[string]struct{}{},
		},
		nil, 3, 2, 2.0, 0, wordfreq.NewTable(ranked),
	)
	state := NewDictionaryState(map[string][]string{"teh": {"the"}})

	progress := make(chan Status, DefaultMaxIterations)
	converged, err := Run(state, ctx, fakePlatform{direction: LeftToRight}, debugtrace.NewMatcher(nil, nil), 0, progress)
	require.NoError(t, err)
	assert.True(t, converged)

	var last Status
	count := 0
	for s := range progress {
		last = s
		count++
	}
	assert.Greater(t, count, 0)
	assert.True(t, last.Converged)
}
