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

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohshitgorillas/entroppy-go/internal/solver"
)

func TestWriteIncludesCountsAndReasonBreakdown(t *testing.T) {
	var b strings.Builder
	err := Write(&b, Summary{
		Iterations: 4,
		Converged:  true,
		Counts:     solver.Counts{ActiveCorrections: 10, ActivePatterns: 3, Graveyard: 7},
		ByReason:   map[solver.RejectionReason]int{solver.ReasonTooShort: 5, solver.ReasonCollisionAmbiguous: 2},
	})
	require.NoError(t, err)
	out := b.String()
	assert.Contains(t, out, "converged")
	assert.Contains(t, out, "active corrections: 10")
	assert.Contains(t, out, "TOO_SHORT")
	assert.NotContains(t, out, "espanso RAM")
}

func TestWriteIncludesEspansoRAMEstimateWhenRequested(t *testing.T) {
	var b strings.Builder
	err := Write(&b, Summary{
		Counts:             solver.Counts{ActiveCorrections: 100},
		EstimateEspansoRAM: true,
	})
	require.NoError(t, err)
	assert.Contains(t, b.String(), "estimated espanso RAM")
}
