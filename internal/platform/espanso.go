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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/charset"
	"github.com/ohshitgorillas/entroppy-go/internal/solver"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

// Espanso is the LTR YAML target: espanso's own match-list dictionaries,
// sharded one file per leading trigger letter to keep any single shard
// small enough for espanso to reload quickly.
type Espanso struct {
	MaxCorrectionsLimit int
	MaxEntriesPerFile   int
}

const defaultMaxEntriesPerFile = 500

func (p *Espanso) Name() string                         { return "espanso" }
func (p *Espanso) MatchDirection() solver.MatchDirection { return solver.LeftToRight }
func (p *Espanso) AllowedChars() *charset.Set            { return nil } // ANY
func (p *Espanso) MaxCorrections() int                   { return p.MaxCorrectionsLimit }

func (p *Espanso) FormatTrigger(typo string, _ boundary.Boundary) string {
	// espanso's boundary behavior is carried by separate YAML fields
	// (word/left_word/right_word), not baked into the trigger string
	// itself, so the trigger is always just the bare typo.
	return typo
}

func (p *Espanso) Rank(entries []RankEntry, freq *wordfreq.Table) []RankEntry {
	return StandardRank(entries, freq, p.MaxCorrectionsLimit)
}

type espansoMatch struct {
	Trigger        string `yaml:"trigger"`
	Replace        string `yaml:"replace"`
	PropagateCase  bool   `yaml:"propagate_case"`
	Word           bool   `yaml:"word,omitempty"`
	LeftWord       bool   `yaml:"left_word,omitempty"`
	RightWord      bool   `yaml:"right_word,omitempty"`
}

type espansoFile struct {
	Matches []espansoMatch `yaml:"matches"`
}

func toEspansoMatch(c solver.Correction) espansoMatch {
	m := espansoMatch{Trigger: c.Typo, Replace: c.Word, PropagateCase: true}
	switch c.Boundary {
	case boundary.BOTH:
		m.Word = true
	case boundary.LEFT:
		m.LeftWord = true
	case boundary.RIGHT:
		m.RightWord = true
	}
	return m
}

// shardKey buckets a trigger by its leading rune: a letter's own
// lowercase shard, or "symbols" for anything else.
func shardKey(typo string) string {
	if typo == "" {
		return "symbols"
	}
	r := []rune(typo)[0]
	if unicode.IsLetter(r) {
		return string(unicode.ToLower(r))
	}
	return "symbols"
}

// Emit writes one or more typos_<shard>[_N].yml files under outputPath,
// preserving ranked order within each shard and splitting a shard's
// matches into files of at most MaxEntriesPerFile entries.
func (p *Espanso) Emit(ranked []RankEntry, outputPath string) error {
	maxPerFile := p.MaxEntriesPerFile
	if maxPerFile <= 0 {
		maxPerFile = defaultMaxEntriesPerFile
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("creating espanso output dir: %w", err)
	}

	shards := make(map[string][]espansoMatch)
	var keys []string
	for _, e := range ranked {
		k := shardKey(e.Correction.Typo)
		if _, seen := shards[k]; !seen {
			keys = append(keys, k)
		}
		shards[k] = append(shards[k], toEspansoMatch(e.Correction))
	}
	sort.Strings(keys)

	for _, k := range keys {
		matches := shards[k]
		for chunkIdx, start := 0, 0; start < len(matches); chunkIdx, start = chunkIdx+1, start+maxPerFile {
			end := start + maxPerFile
			if end > len(matches) {
				end = len(matches)
			}
			name := fmt.Sprintf("typos_%s.yml", k)
			if chunkIdx > 0 {
				name = fmt.Sprintf("typos_%s_%d.yml", k, chunkIdx+1)
			}
			if err := writeEspansoShard(filepath.Join(outputPath, name), matches[start:end]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEspansoShard(path string, matches []espansoMatch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating shard %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(espansoFile{Matches: matches})
}
