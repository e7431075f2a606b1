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

// Package report writes the human-readable end-of-solve summary spec.md
// §7 requires ("a short summary of counts"), extended with a per-reason
// breakdown table and, for the espanso platform, a shard RAM estimate.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/ohshitgorillas/entroppy-go/internal/solver"
)

// espansoBytesPerEntry approximates espanso's in-memory footprint per
// loaded match: trigger + replacement strings, plus struct/map overhead
// for the match record and its YAML-derived fields.
const espansoBytesPerEntry = 256

// espansoInflationFactor accounts for espanso's own parsed representation
// being considerably larger than the raw YAML bytes it was loaded from.
const espansoInflationFactor = 3.0

// Summary is the data a solve run hands to Write.
type Summary struct {
	Iterations int
	Converged  bool
	Counts     solver.Counts
	ByReason   map[solver.RejectionReason]int
	// EstimateEspansoRAM, when true, appends a RAM estimate computed
	// from Counts.ActiveCorrections + Counts.ActivePatterns.
	EstimateEspansoRAM bool
}

// Write renders s as plain text to w.
func Write(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "entroppy solve summary\n"); err != nil {
		return err
	}
	status := "did not converge"
	if s.Converged {
		status = "converged"
	}
	if _, err := fmt.Fprintf(w, "  iterations run: %d (%s)\n", s.Iterations, status); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  active corrections: %d\n", s.Counts.ActiveCorrections); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  active patterns:    %d\n", s.Counts.ActivePatterns); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  graveyarded:         %d\n", s.Counts.Graveyard); err != nil {
		return err
	}

	if len(s.ByReason) > 0 {
		if _, err := fmt.Fprintf(w, "\n  graveyard by reason:\n"); err != nil {
			return err
		}
		reasons := make([]string, 0, len(s.ByReason))
		for r := range s.ByReason {
			reasons = append(reasons, string(r))
		}
		sort.Strings(reasons)
		for _, r := range reasons {
			if _, err := fmt.Fprintf(w, "    %-28s %d\n", r, s.ByReason[solver.RejectionReason(r)]); err != nil {
				return err
			}
		}
	}

	if s.EstimateEspansoRAM {
		total := s.Counts.ActiveCorrections + s.Counts.ActivePatterns
		estimate := float64(total) * espansoBytesPerEntry * espansoInflationFactor
		if _, err := fmt.Fprintf(w, "\n  estimated espanso RAM: ~%.1f KiB for %d entries\n", estimate/1024, total); err != nil {
			return err
		}
	}
	return nil
}
