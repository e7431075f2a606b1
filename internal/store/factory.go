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

// NullCache is returned for an unconfigured or unrecognized driver; it
// makes the run-cache an optional feature rather than a hard
// dependency, the way db/factory.NullWriter keeps vert-tagextract
// running with no database configured at all.
type NullCache struct{}

func (NullCache) DatabaseExists() bool { return false }
func (NullCache) Initialize(bool) error { return nil }
func (NullCache) LoadRun(string) ([]Row, error) { return nil, nil }
func (NullCache) SaveRun(string, string, []Row) error { return nil }
func (NullCache) Commit() error   { return nil }
func (NullCache) Rollback() error { return nil }
func (NullCache) Close()          {}

// Config carries the subset of cnf.Config needed to construct a Cache.
type Config struct {
	Driver   string // "sqlite" | "mysql" | "" (disabled)
	Path     string // sqlite file path
	Host     string
	User     string
	Password string
	DBName   string
}

// New resolves cfg.Driver to a concrete Cache, matching
// db/factory.NewDatabaseWriter's switch-on-driver-name idiom.
func New(cfg Config) Cache {
	switch cfg.Driver {
	case "sqlite":
		return &SQLiteCache{Path: cfg.Path}
	case "mysql":
		return &MySQLCache{Host: cfg.Host, User: cfg.User, Password: cfg.Password, DBName: cfg.DBName}
	default:
		return NullCache{}
	}
}
