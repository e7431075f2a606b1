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

package dictutil

import (
	"fmt"
	"strings"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/exclude"
	"github.com/ohshitgorillas/entroppy-go/internal/scanio"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

// Loaded is the full result of stage 1: every word collection and
// collaborator the rest of the pipeline needs.
type Loaded struct {
	ValidationSet         map[string]struct{}
	FilteredValidationSet map[string]struct{}
	SourceWords           []string
	SourceWordsSet        map[string]struct{}
	UserWords             map[string]struct{}
	AdjacencyMap          map[byte][]byte
	ExclusionMatcher      *exclude.Matcher
	FrequencyTable        *wordfreq.Table
}

// LoadOptions configures stage 1. Paths left empty are simply skipped:
// adjacency and exclusions are both optional per spec.md §6.
type LoadOptions struct {
	// RankedWordList is the frequency-ranked word list (most frequent
	// first) feeding both SourceWords (when TopN > 0) and the
	// validation set.
	RankedWordList []string
	TopN           int
	IncludePath    string
	ExcludePath    string
	AdjacentPath   string
	MinWordLength  int
	MaxWordLength  int
}

// Load runs stage 1 end to end.
func Load(opts LoadOptions) (*Loaded, error) {
	if opts.TopN <= 0 && opts.IncludePath == "" {
		return nil, fmt.Errorf("configuration error: neither top_n nor include was provided")
	}

	validation := make(map[string]struct{}, len(opts.RankedWordList))
	for _, w := range opts.RankedWordList {
		validation[w] = struct{}{}
	}

	var sourceWords []string
	seenSource := make(map[string]struct{})
	if opts.TopN > 0 {
		n := opts.TopN
		if n > len(opts.RankedWordList) {
			n = len(opts.RankedWordList)
		}
		for _, w := range opts.RankedWordList[:n] {
			if withinLength(w, opts.MinWordLength, opts.MaxWordLength) {
				if _, ok := seenSource[w]; !ok {
					seenSource[w] = struct{}{}
					sourceWords = append(sourceWords, w)
				}
			}
		}
	}

	userWords := make(map[string]struct{})
	if opts.IncludePath != "" {
		lines, err := scanio.ReadLines(opts.IncludePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read include file: %w", err)
		}
		for _, w := range lines {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			userWords[w] = struct{}{}
			validation[w] = struct{}{}
			if _, ok := seenSource[w]; !ok && withinLength(w, opts.MinWordLength, opts.MaxWordLength) {
				seenSource[w] = struct{}{}
				sourceWords = append(sourceWords, w)
			}
		}
	}

	var exclusionPatterns []string
	if opts.ExcludePath != "" {
		lines, err := scanio.ReadLines(opts.ExcludePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read exclude file: %w", err)
		}
		exclusionPatterns = lines
	}
	exclusionMatcher := exclude.NewMatcher(exclusionPatterns)

	adjacency := make(map[byte][]byte)
	if opts.AdjacentPath != "" {
		lines, err := scanio.ReadLines(opts.AdjacentPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read adjacent_letters file: %w", err)
		}
		for _, line := range lines {
			key, chars, ok := parseAdjacencyLine(line)
			if !ok {
				continue
			}
			adjacency[key] = chars
		}
	}

	filtered := make(map[string]struct{}, len(validation))
	for w := range validation {
		if !isExcludedWord(w, exclusionMatcher) {
			filtered[w] = struct{}{}
		}
	}

	sourceSet := make(map[string]struct{}, len(sourceWords))
	for _, w := range sourceWords {
		sourceSet[w] = struct{}{}
	}

	return &Loaded{
		ValidationSet:         validation,
		FilteredValidationSet: filtered,
		SourceWords:           sourceWords,
		SourceWordsSet:        sourceSet,
		UserWords:             userWords,
		AdjacencyMap:          adjacency,
		ExclusionMatcher:      exclusionMatcher,
		FrequencyTable:        wordfreq.NewTable(opts.RankedWordList),
	}, nil
}

func withinLength(w string, min, max int) bool {
	if min > 0 && len(w) < min {
		return false
	}
	if max > 0 && len(w) > max {
		return false
	}
	return true
}

// isExcludedWord checks a whole-word exclusion (boundary BOTH, word ==
// typo) against the matcher, which is the filtering §2 stage 1 asks for
// when deriving filtered_validation_set from validation_set.
func isExcludedWord(w string, m *exclude.Matcher) bool {
	return m.ShouldExclude(w, w, boundary.BOTH)
}

// parseAdjacencyLine parses a "key -> chars" line, e.g. "e -> wr" means
// 'w' and 'r' are adjacent to 'e'.
func parseAdjacencyLine(line string) (byte, []byte, bool) {
	idx := strings.Index(line, " -> ")
	if idx < 0 {
		return 0, nil, false
	}
	key := strings.TrimSpace(line[:idx])
	rest := strings.TrimSpace(line[idx+len(" -> "):])
	if len(key) != 1 || rest == "" {
		return 0, nil, false
	}
	return key[0], []byte(rest), true
}
