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
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/ohshitgorillas/entroppy-go/internal/boundary"
	"github.com/ohshitgorillas/entroppy-go/internal/charset"
	"github.com/ohshitgorillas/entroppy-go/internal/solver"
	"github.com/ohshitgorillas/entroppy-go/internal/wordfreq"
)

// QMK is the RTL flat-text target: a single `formatted_typo -> word`
// table consumed by the firmware's autocorrect table compiler, which
// only accepts lowercase ASCII letters and the apostrophe.
type QMK struct {
	MaxCorrectionsLimit int
}

func (p *QMK) Name() string                         { return "qmk" }
func (p *QMK) MatchDirection() solver.MatchDirection { return solver.RightToLeft }
func (p *QMK) AllowedChars() *charset.Set            { return charset.QMK }
func (p *QMK) MaxCorrections() int                   { return p.MaxCorrectionsLimit }

func (p *QMK) FormatTrigger(typo string, b boundary.Boundary) string {
	return boundary.FormatColonNotation(typo, b)
}

func (p *QMK) Rank(entries []RankEntry, freq *wordfreq.Table) []RankEntry {
	filtered := make([]RankEntry, 0, len(entries))
	for _, e := range entries {
		if p.AllowedChars().Allows(e.Correction.Typo) && p.AllowedChars().Allows(e.Correction.Word) {
			filtered = append(filtered, e)
		}
	}
	return StandardRank(filtered, freq, p.MaxCorrectionsLimit)
}

// Emit writes ranked as a single flat-text file, one correction per
// line, sorted by correct-word ascending as spec.md §6 requires.
func (p *QMK) Emit(ranked []RankEntry, outputPath string) error {
	sorted := make([]RankEntry, len(ranked))
	copy(sorted, ranked)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Correction.Word < sorted[j].Correction.Word
	})

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating qmk output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()
	for _, e := range sorted {
		formatted := p.FormatTrigger(e.Correction.Typo, e.Correction.Boundary)
		if _, err := fmt.Fprintf(w, "%s -> %s\n", formatted, e.Correction.Word); err != nil {
			return fmt.Errorf("writing qmk entry: %w", err)
		}
	}
	return nil
}
