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

// Package cnf loads entroppy's JSON configuration the way
// vert-tagextract's cnf.LoadConf loads VTEConf: a single flat
// JSON-tagged struct, defaults patched in after unmarshalling.
package cnf

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bytedance/sonic"
)

// CacheConf configures the optional sqlite/mysql run-cache store.
type CacheConf struct {
	Driver   string `json:"driver,omitempty"` // "sqlite" | "mysql" | "" (disabled)
	Path     string `json:"path,omitempty"`
	Host     string `json:"host,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	DBName   string `json:"dbName,omitempty"`
}

// DebugConf configures the debug word/typo tracing supplement
// (internal/debugtrace).
type DebugConf struct {
	Words        []string `json:"words,omitempty"`
	TypoPatterns []string `json:"typoPatterns,omitempty"`
}

// Config is entroppy's full configuration surface, covering every key
// in spec.md §6's table plus the ambient/supplemented additions
// (run-cache, metrics, debug tracing).
type Config struct {
	// Stage 1 inputs
	TopN            int    `json:"top_n"`
	IncludePath     string `json:"include,omitempty"`
	ExcludePath     string `json:"exclude,omitempty"`
	AdjacentPath    string `json:"adjacent_letters,omitempty"`
	RankedWordsPath string `json:"ranked_words"`

	MinWordLength int `json:"min_word_length"`
	MaxWordLength int `json:"max_word_length"`
	MinTypoLength int `json:"min_typo_length"`

	FreqRatio         float64 `json:"freq_ratio"`
	TypoFreqThreshold float64 `json:"typo_freq_threshold"`

	MaxEntriesPerFile int `json:"max_entries_per_file"`
	MaxCorrections    int `json:"max_corrections"`

	Platform string `json:"platform"`

	Jobs          int `json:"jobs"`
	MaxIterations int `json:"max_iterations"`

	OutputPath string `json:"output_path"`

	Cache       CacheConf `json:"cache"`
	MetricsAddr string    `json:"metrics_addr,omitempty"`
	Debug       DebugConf `json:"debug"`
}

const (
	dfltMinWordLength     = 3
	dfltMaxWordLength     = 10
	dfltMinTypoLength     = 4
	dfltFreqRatio         = 10.0
	dfltMaxEntriesPerFile = 500
	dfltMaxIterations     = 10
	dfltPlatform          = "espanso"
)

// applyDefaults patches zero-valued fields the same way VTEConf's
// UpgradeLegacy-style helpers backfill defaults after unmarshalling,
// rather than requiring every key in a user's config file.
func (c *Config) applyDefaults() {
	if c.MinWordLength == 0 {
		c.MinWordLength = dfltMinWordLength
	}
	if c.MaxWordLength == 0 {
		c.MaxWordLength = dfltMaxWordLength
	}
	if c.MinTypoLength == 0 {
		c.MinTypoLength = dfltMinTypoLength
	}
	if c.FreqRatio == 0 {
		c.FreqRatio = dfltFreqRatio
	}
	if c.MaxEntriesPerFile == 0 {
		c.MaxEntriesPerFile = dfltMaxEntriesPerFile
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = dfltMaxIterations
	}
	if c.Platform == "" {
		c.Platform = dfltPlatform
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.NumCPU()
	}
}

// Validate enforces spec.md §6's exit-code-on-configuration-error rule:
// no top_n and no include is a hard configuration error.
func (c *Config) Validate() error {
	if c.TopN <= 0 && c.IncludePath == "" {
		return fmt.Errorf("configuration error: either top_n or include must be set")
	}
	return nil
}

// LoadConf reads and parses a JSON configuration file, applying
// defaults and validating it, mirroring cnf.LoadConf's
// read-then-unmarshal shape but using sonic in place of encoding/json
// for the teacher's declared high-performance JSON preference.
func LoadConf(confPath string) (*Config, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", confPath, err)
	}
	var c Config
	if err := sonic.Unmarshal(rawData, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", confPath, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Template returns a skeleton configuration, defaults applied, suitable
// for the `entroppy template` subcommand to dump to stdout.
func Template() *Config {
	c := &Config{
		TopN:            50000,
		RankedWordsPath: "wordlist.txt",
		IncludePath:     "include.txt",
		ExcludePath:     "exclude.txt",
		AdjacentPath:    "adjacent_letters.txt",
		OutputPath:      "out/",
	}
	c.applyDefaults()
	return c
}

// Dump renders c as indented JSON, matching vte.go's
// json.MarshalIndent use for the template subcommand.
func Dump(c *Config) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(c, "", "  ")
}
