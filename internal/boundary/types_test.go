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

package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRoundTripsThroughParse(t *testing.T) {
	for _, b := range []Boundary{NONE, LEFT, RIGHT, BOTH} {
		assert.Equal(t, b, Parse(b.String()))
	}
}

func TestParseDefaultsToNoneForUnrecognized(t *testing.T) {
	assert.Equal(t, NONE, Parse("garbage"))
	assert.Equal(t, NONE, Parse(""))
}

func TestLessOrdersByStrictness(t *testing.T) {
	assert.True(t, NONE.Less(LEFT))
	assert.True(t, NONE.Less(RIGHT))
	assert.True(t, NONE.Less(BOTH))
	assert.True(t, LEFT.Less(BOTH))
	assert.True(t, RIGHT.Less(BOTH))
	assert.False(t, LEFT.Less(RIGHT))
	assert.False(t, RIGHT.Less(LEFT))
	assert.False(t, BOTH.Less(NONE))
}

func TestChooseStrictestCombinesLeftAndRightIntoBoth(t *testing.T) {
	assert.Equal(t, BOTH, ChooseStrictest(LEFT, RIGHT))
	assert.Equal(t, BOTH, ChooseStrictest(LEFT, RIGHT, NONE))
	assert.Equal(t, LEFT, ChooseStrictest(NONE, LEFT))
	assert.Equal(t, RIGHT, ChooseStrictest(NONE, RIGHT))
	assert.Equal(t, NONE, ChooseStrictest(NONE))
	assert.Equal(t, NONE, ChooseStrictest())
	assert.Equal(t, BOTH, ChooseStrictest(BOTH))
}

func TestClassifyRelation(t *testing.T) {
	assert.Equal(t, KindPrefix, ClassifyRelation("teh", "tehouse"))
	assert.Equal(t, KindSuffix, ClassifyRelation("use", "tehouse"))
	assert.Equal(t, KindMiddle, ClassifyRelation("hou", "tehouse"))
	assert.Equal(t, KindOther, ClassifyRelation("xyz", "tehouse"))
	assert.Equal(t, KindOther, ClassifyRelation("same", "same"))
	assert.Equal(t, KindOther, ClassifyRelation("", "word"))
}

func TestSelectionOrderPerKind(t *testing.T) {
	assert.Equal(t, []Boundary{NONE, LEFT, BOTH}, SelectionOrder(KindPrefix))
	assert.Equal(t, []Boundary{NONE, RIGHT, BOTH}, SelectionOrder(KindSuffix))
	assert.Equal(t, []Boundary{NONE, BOTH}, SelectionOrder(KindMiddle))
	assert.Equal(t, []Boundary{NONE, LEFT, RIGHT, BOTH}, SelectionOrder(KindOther))
}

func TestEscalationOrderPerKind(t *testing.T) {
	assert.Equal(t, []Boundary{NONE, LEFT}, EscalationOrder(KindPrefix))
	assert.Equal(t, []Boundary{NONE, RIGHT}, EscalationOrder(KindSuffix))
	assert.Equal(t, []Boundary{NONE}, EscalationOrder(KindMiddle))
}

func TestNewPatternBoundaryPanicsOnBoth(t *testing.T) {
	assert.Panics(t, func() { NewPatternBoundary(BOTH) })
	assert.NotPanics(t, func() {
		p := NewPatternBoundary(LEFT)
		assert.Equal(t, LEFT, p.Value())
	})
}
