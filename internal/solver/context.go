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
	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/exclude"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

// WordSets bundles the word collections loaded by stage 1. It is built
// once by the dictionary-loading collaborator and is treated as
// read-only for the remainder of the run, matching §3's ownership rule:
// "Indices borrow from (or are built from snapshots of) word sets owned
// by the dictionary-loading collaborator."
type WordSets struct {
	Validation         map[string]struct{}
	FilteredValidation map[string]struct{}
	Source             map[string]struct{}
	User                map[string]struct{}
}

// Context is the frozen view workers receive: plain values, no shared
// mutable heap state, safe to copy across a goroutine or process
// boundary. The driver builds one for the whole solve and passes it to
// every iteration.
type Context struct {
	Words             WordSets
	ValidationIndex   *boundary.Index
	SourceIndex       *boundary.Index
	ExclusionMatcher  *exclude.Matcher
	MinTypoLength     int
	MinWordLength     int
	FreqRatio         float64
	TypoFreqThreshold float64
	FrequencyTable    *wordfreq.Table
}

// NewContext builds a Context from word sets and config thresholds,
// constructing fresh boundary indexes over the validation and source
// sets. The indexes are built once here, from the word sets, which the
// solver passes never mutate; they are not rebuilt between iterations.
func NewContext(
	words WordSets,
	exclusionMatcher *exclude.Matcher,
	minTypoLength, minWordLength int,
	freqRatio, typoFreqThreshold float64,
	frequencyTable *wordfreq.Table,
) *Context {
	return &Context{
		Words:             words,
		ValidationIndex:   boundary.NewIndex(setToSlice(words.FilteredValidation)),
		SourceIndex:       boundary.NewIndex(setToSlice(words.Source)),
		ExclusionMatcher:  exclusionMatcher,
		MinTypoLength:     minTypoLength,
		MinWordLength:     minWordLength,
		FreqRatio:         freqRatio,
		TypoFreqThreshold: typoFreqThreshold,
		FrequencyTable:    frequencyTable,
	}
}

func setToSlice(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	return out
}
