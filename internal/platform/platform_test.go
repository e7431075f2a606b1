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

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/solver"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

func TestNewResolvesRegisteredPlatforms(t *testing.T) {
	esp, err := New("espanso", 100, 500)
	require.NoError(t, err)
	assert.Equal(t, "espanso", esp.Name())

	qmk, err := New("qmk", 100, 0)
	require.NoError(t, err)
	assert.Equal(t, "qmk", qmk.Name())
}

func TestNewRejectsUnknownPlatform(t *testing.T) {
	_, err := New("palm-pilot-graffiti", 10, 10)
	assert.Error(t, err)
}

func TestQMKFormatTriggerUsesColonNotation(t *testing.T) {
	q := &QMK{}
	assert.Equal(t, ":teh", q.FormatTrigger("teh", boundary.LEFT))
	assert.Equal(t, "teh:", q.FormatTrigger("teh", boundary.RIGHT))
	assert.Equal(t, ":teh:", q.FormatTrigger("teh", boundary.BOTH))
	assert.Equal(t, "teh", q.FormatTrigger("teh", boundary.NONE))
}

func TestQMKRankDropsDisallowedCharacters(t *testing.T) {
	q := &QMK{MaxCorrectionsLimit: 0}
	freq := wordfreq.NewTable([]string{"the"})
	entries := []RankEntry{
		{Correction: solver.Correction{Typo: "teh", Word: "the", Boundary: boundary.NONE}},
		{Correction: solver.Correction{Typo: "Teh2", Word: "the", Boundary: boundary.NONE}},
	}
	ranked := q.Rank(entries, freq)
	require.Len(t, ranked, 1)
	assert.Equal(t, "teh", ranked[0].Correction.Typo)
}

func TestEspansoFormatTriggerIsBareTypo(t *testing.T) {
	e := &Espanso{}
	assert.Equal(t, "teh", e.FormatTrigger("teh", boundary.BOTH))
}

func TestEspansoEmitWritesShardFiles(t *testing.T) {
	dir := t.TempDir()
	e := &Espanso{MaxEntriesPerFile: 1}
	entries := []RankEntry{
		{Correction: solver.Correction{Typo: "teh", Word: "the", Boundary: boundary.NONE}},
		{Correction: solver.Correction{Typo: "taht", Word: "that", Boundary: boundary.BOTH}},
	}
	require.NoError(t, e.Emit(entries, dir))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(files), 2)

	content, err := os.ReadFile(filepath.Join(dir, "typos_t.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "matches:")
}

func TestStandardRankOrdersByTierThenScore(t *testing.T) {
	freq := wordfreq.NewTable([]string{"common", "rare", "userword"})
	entries := []RankEntry{
		{Correction: solver.Correction{Typo: "x1", Word: "rare"}},
		{Correction: solver.Correction{Typo: "x2", Word: "common"}},
		{Correction: solver.Correction{Typo: "x3", Word: "userword"}, IsUserWord: true},
	}
	ranked := StandardRank(entries, freq, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "userword", ranked[0].Correction.Word)
	assert.Equal(t, "common", ranked[1].Correction.Word)
	assert.Equal(t, "rare", ranked[2].Correction.Word)
}
