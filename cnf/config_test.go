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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfApplyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"top_n": 1000}`), 0644))

	c, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, c.TopN)
	assert.Equal(t, dfltMinWordLength, c.MinWordLength)
	assert.Equal(t, dfltMaxWordLength, c.MaxWordLength)
	assert.Equal(t, dfltMinTypoLength, c.MinTypoLength)
	assert.Equal(t, dfltFreqRatio, c.FreqRatio)
	assert.Equal(t, dfltMaxEntriesPerFile, c.MaxEntriesPerFile)
	assert.Equal(t, dfltMaxIterations, c.MaxIterations)
	assert.Equal(t, dfltPlatform, c.Platform)
	assert.Greater(t, c.Jobs, 0)
}

func TestLoadConfPreservesExplicitValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"top_n": 1000,
		"min_word_length": 3,
		"platform": "qmk",
		"jobs": 4
	}`), 0644))

	c, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.MinWordLength)
	assert.Equal(t, "qmk", c.Platform)
	assert.Equal(t, 4, c.Jobs)
}

func TestLoadConfMissingFileReturnsError(t *testing.T) {
	_, err := LoadConf("/nonexistent/path/conf.json")
	assert.Error(t, err)
}

func TestValidateRequiresTopNOrInclude(t *testing.T) {
	c := &Config{}
	assert.Error(t, c.Validate())

	c2 := &Config{TopN: 100}
	assert.NoError(t, c2.Validate())

	c3 := &Config{IncludePath: "include.txt"}
	assert.NoError(t, c3.Validate())
}

func TestTemplateProducesValidConfig(t *testing.T) {
	c := Template()
	require.NoError(t, c.Validate())
	assert.NotEmpty(t, c.RankedWordsPath)
	assert.Equal(t, dfltPlatform, c.Platform)
}

func TestDumpProducesReadableJSON(t *testing.T) {
	c := Template()
	out, err := Dump(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"top_n\"")
}
