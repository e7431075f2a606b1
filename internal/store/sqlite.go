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

package store

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache is the default run-cache backend, a single-file sqlite3
// database, mirroring db/sqlite.Writer's Initialize/schema/tx lifecycle
// but with a single runs table instead of corpus attribute tables.
type SQLiteCache struct {
	Path string

	database *sql.DB
	tx       *sql.Tx
}

func (c *SQLiteCache) DatabaseExists() bool {
	_, err := os.Stat(c.Path)
	return err == nil
}

func (c *SQLiteCache) Initialize(appendMode bool) error {
	existed := c.DatabaseExists()
	database, err := sql.Open("sqlite3", c.Path)
	if err != nil {
		return fmt.Errorf("opening run-cache database: %w", err)
	}
	c.database = database

	if !appendMode && existed {
		log.Warn().Str("path", c.Path).Msg("run-cache database already exists, dropping")
		if _, err := c.database.Exec("DROP TABLE IF EXISTS runs"); err != nil {
			return fmt.Errorf("dropping run-cache table: %w", err)
		}
	}
	if _, err := c.database.Exec(createRunsTableSQL); err != nil {
		return fmt.Errorf("creating run-cache schema: %w", err)
	}

	c.tx, err = c.database.Begin()
	return err
}

const createRunsTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT NOT NULL,
	corpus_hash TEXT NOT NULL,
	kind        TEXT NOT NULL,
	typo        TEXT NOT NULL,
	word        TEXT NOT NULL,
	boundary    TEXT NOT NULL,
	reason      TEXT NOT NULL DEFAULT '',
	blocker     TEXT NOT NULL DEFAULT ''
)`

func (c *SQLiteCache) LoadRun(corpusHash string) ([]Row, error) {
	rows, err := c.database.Query(
		`SELECT run_id, corpus_hash, kind, typo, word, boundary, reason, blocker
		 FROM runs WHERE corpus_hash = ?`, corpusHash,
	)
	if err != nil {
		return nil, fmt.Errorf("loading run-cache rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var kind string
		if err := rows.Scan(&r.RunID, &r.CorpusHash, &kind, &r.Typo, &r.Word, &r.Boundary, &r.Reason, &r.Blocker); err != nil {
			return nil, fmt.Errorf("scanning run-cache row: %w", err)
		}
		r.Kind = RowKind(kind)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (c *SQLiteCache) SaveRun(runID, corpusHash string, entries []Row) error {
	if c.tx == nil {
		return fmt.Errorf("cannot save run - no transaction active")
	}
	stmt, err := c.tx.Prepare(
		`INSERT INTO runs (run_id, corpus_hash, kind, typo, word, boundary, reason, blocker)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("preparing run-cache insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(runID, corpusHash, string(e.Kind), e.Typo, e.Word, e.Boundary, e.Reason, e.Blocker); err != nil {
			return fmt.Errorf("inserting run-cache row: %w", err)
		}
	}
	return nil
}

func (c *SQLiteCache) Commit() error   { return c.tx.Commit() }
func (c *SQLiteCache) Rollback() error { return c.tx.Rollback() }

func (c *SQLiteCache) Close() {
	if c.database == nil {
		return
	}
	if err := c.database.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing run-cache database")
	}
}
