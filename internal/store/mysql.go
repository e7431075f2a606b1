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
	"time"

	"github.com/rs/zerolog/log"

	"github.com/go-sql-driver/mysql"
)

// MySQLCache is the optional second run-cache backend, selected by the
// `cache.driver` config key, mirroring db/mysql.Writer's connection and
// schema-management idiom.
type MySQLCache struct {
	Host, User, Password, DBName string

	database *sql.DB
	tx       *sql.Tx
}

func (c *MySQLCache) dsn() string {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = c.Host
	mconf.User = c.User
	mconf.Passwd = c.Password
	mconf.DBName = c.DBName
	mconf.ParseTime = true
	mconf.Loc = time.Local
	return mconf.FormatDSN()
}

func (c *MySQLCache) connect() error {
	if c.database != nil {
		return nil
	}
	database, err := sql.Open("mysql", c.dsn())
	if err != nil {
		return fmt.Errorf("opening run-cache database: %w", err)
	}
	c.database = database
	return nil
}

func (c *MySQLCache) DatabaseExists() bool {
	if c.connect() != nil {
		return false
	}
	row := c.database.QueryRow(
		`SELECT COUNT(*) > 0 FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = 'runs'`,
		c.DBName,
	)
	var ans bool
	if err := row.Scan(&ans); err != nil {
		return false
	}
	return ans
}

const createRunsTableMySQL = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      VARCHAR(64) NOT NULL,
	corpus_hash VARCHAR(64) NOT NULL,
	kind        VARCHAR(16) NOT NULL,
	typo        VARCHAR(255) NOT NULL,
	word        VARCHAR(255) NOT NULL,
	boundary    VARCHAR(8) NOT NULL,
	reason      VARCHAR(64) NOT NULL DEFAULT '',
	blocker     VARCHAR(255) NOT NULL DEFAULT '',
	KEY corpus_hash_idx (corpus_hash)
)`

func (c *MySQLCache) Initialize(appendMode bool) error {
	if err := c.connect(); err != nil {
		return err
	}
	existed := c.DatabaseExists()
	if !appendMode && existed {
		log.Warn().Str("db", c.DBName).Msg("run-cache table already exists, dropping")
		if _, err := c.database.Exec("DROP TABLE IF EXISTS runs"); err != nil {
			return fmt.Errorf("dropping run-cache table: %w", err)
		}
	}
	if _, err := c.database.Exec(createRunsTableMySQL); err != nil {
		return fmt.Errorf("creating run-cache schema: %w", err)
	}
	var err error
	c.tx, err = c.database.Begin()
	return err
}

func (c *MySQLCache) LoadRun(corpusHash string) ([]Row, error) {
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

func (c *MySQLCache) SaveRun(runID, corpusHash string, entries []Row) error {
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

func (c *MySQLCache) Commit() error   { return c.tx.Commit() }
func (c *MySQLCache) Rollback() error { return c.tx.Rollback() }

func (c *MySQLCache) Close() {
	if c.database == nil {
		return
	}
	if err := c.database.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing run-cache database")
	}
}
