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

package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
)

func TestShouldExcludeExactTypo(t *testing.T) {
	m := NewMatcher([]string{"teh"})
	assert.True(t, m.ShouldExclude("teh", "the", boundary.NONE))
	assert.False(t, m.ShouldExclude("hte", "the", boundary.NONE))
}

func TestShouldExcludeTypoToWordRule(t *testing.T) {
	m := NewMatcher([]string{"teh -> the"})
	assert.True(t, m.ShouldExclude("teh", "the", boundary.NONE))
	assert.False(t, m.ShouldExclude("teh", "tehran", boundary.NONE))
}

func TestShouldExcludeWildcardOnEitherSide(t *testing.T) {
	m := NewMatcher([]string{"te* -> the"})
	assert.True(t, m.ShouldExclude("teh", "the", boundary.NONE))
	assert.True(t, m.ShouldExclude("teeh", "the", boundary.NONE))
	assert.False(t, m.ShouldExclude("xeh", "the", boundary.NONE))
}

func TestShouldExcludeBoundaryQualifiedRule(t *testing.T) {
	m := NewMatcher([]string{":teh"})
	assert.True(t, m.ShouldExclude("teh", "the", boundary.LEFT))
	assert.False(t, m.ShouldExclude("teh", "the", boundary.NONE))

	mRight := NewMatcher([]string{"teh:"})
	assert.True(t, mRight.ShouldExclude("teh", "the", boundary.RIGHT))
	assert.False(t, mRight.ShouldExclude("teh", "the", boundary.LEFT))

	mBoth := NewMatcher([]string{":teh:"})
	assert.True(t, mBoth.ShouldExclude("teh", "the", boundary.BOTH))
	assert.False(t, mBoth.ShouldExclude("teh", "the", boundary.RIGHT))
}

func TestWildcardMatchMiddleStar(t *testing.T) {
	assert.True(t, wildcardMatch("a*z", "abcz"))
	assert.True(t, wildcardMatch("a*z", "az"))
	assert.False(t, wildcardMatch("a*z", "ab"))
	assert.True(t, wildcardMatch("exact", "exact"))
	assert.False(t, wildcardMatch("exact", "exacty"))
}

func TestEmptyMatcherExcludesNothing(t *testing.T) {
	m := NewMatcher(nil)
	assert.False(t, m.ShouldExclude("teh", "the", boundary.NONE))
}
