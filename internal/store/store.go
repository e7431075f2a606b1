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

// Package store persists a solve's outcome (active corrections, active
// patterns, and graveyard entries) keyed by a hash of its input corpus,
// so a later `entroppy resume` run with an unchanged source can seed
// its graveyard with the triples already rejected. Backed by sqlite or mysql, selected
// the way the teacher's db/factory picks a Writer.
package store

import "github.com/ohshitgorillas/entroppy-go/internal/solver"

// Row is one persisted outcome from a prior solve.
type Row struct {
	RunID      string
	CorpusHash string
	Kind       RowKind
	Typo       string
	Word       string
	Boundary   string
	Reason     string // set only for Kind == RowGraveyard
	Blocker    string // set only for Kind == RowGraveyard
}

// RowKind discriminates the three DictionaryState collections a Row can
// represent.
type RowKind string

const (
	RowCorrection RowKind = "correction"
	RowPattern    RowKind = "pattern"
	RowGraveyard  RowKind = "graveyard"
)

// Cache is the run-cache's storage contract, mirroring db.Writer's
// lifecycle (Initialize/Commit/Rollback/Close) adapted to a single
// key-value shaped schema instead of corpus attribute tables.
type Cache interface {
	DatabaseExists() bool
	Initialize(appendMode bool) error
	LoadRun(corpusHash string) ([]Row, error)
	SaveRun(runID, corpusHash string, rows []Row) error
	Commit() error
	Rollback() error
	Close()
}

// RowsFromState converts a solved DictionaryState into persistable Rows
// for SaveRun.
func RowsFromState(state *solver.DictionaryState) []Row {
	var rows []Row
	for _, c := range state.ActiveCorrections() {
		rows = append(rows, Row{Kind: RowCorrection, Typo: c.Typo, Word: c.Word, Boundary: c.Boundary.String()})
	}
	for _, p := range state.ActivePatterns() {
		rows = append(rows, Row{Kind: RowPattern, Typo: p.Typo, Word: p.Word, Boundary: p.Boundary.String()})
	}
	for c, entry := range state.GraveyardSnapshot() {
		rows = append(rows, Row{
			Kind:     RowGraveyard,
			Typo:     c.Typo,
			Word:     c.Word,
			Boundary: c.Boundary.String(),
			Reason:   string(entry.Reason),
			Blocker:  entry.Blocker,
		})
	}
	return rows
}
