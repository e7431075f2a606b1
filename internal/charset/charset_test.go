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

package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQMKAllowsLowercaseAndApostrophe(t *testing.T) {
	assert.True(t, QMK.Allows("don't"))
	assert.True(t, QMK.Allows("teh"))
}

func TestQMKRejectsDigitsAndUppercase(t *testing.T) {
	assert.False(t, QMK.Allows("Teh"))
	assert.False(t, QMK.Allows("teh2"))
}

func TestNilSetAllowsAnything(t *testing.T) {
	var cs *Set
	assert.True(t, cs.Allows("Anything Goes 123!"))
}

func TestFoldLowercasesAndStripsDiacritics(t *testing.T) {
	assert.Equal(t, "cafe", Fold("CAFÉ"))
	assert.Equal(t, "teh", Fold("TEH"))
}
