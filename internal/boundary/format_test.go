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

func TestFormatColonNotation(t *testing.T) {
	assert.Equal(t, "teh", FormatColonNotation("teh", NONE))
	assert.Equal(t, ":teh", FormatColonNotation("teh", LEFT))
	assert.Equal(t, "teh:", FormatColonNotation("teh", RIGHT))
	assert.Equal(t, ":teh:", FormatColonNotation("teh", BOTH))
}

func TestMarkerFactoryResolvesKnownNames(t *testing.T) {
	assert.Equal(t, ":x", MarkerFactory(MarkerColonLeft).Mark("x"))
	assert.Equal(t, "x:", MarkerFactory(MarkerColonRight).Mark("x"))
	assert.Equal(t, ":x:", MarkerFactory(MarkerColonBoth).Mark("x"))
	assert.Equal(t, "x", MarkerFactory(MarkerIdentity).Mark("x"))
	assert.Equal(t, "x", MarkerFactory("").Mark("x"))
}

func TestMarkerFactoryFallsBackToIdentityForUnknownName(t *testing.T) {
	assert.Equal(t, "x", MarkerFactory("bogus").Mark("x"))
}

func TestMarkerChainAppliesStepsInOrder(t *testing.T) {
	chain := NewMarkerChain(colonLeft{}, colonRight{})
	assert.Equal(t, ":x:", chain.Mark("x"))
}

func TestMarkerChainWithNoStepsIsIdentity(t *testing.T) {
	chain := NewMarkerChain()
	assert.Equal(t, "x", chain.Mark("x"))
}
