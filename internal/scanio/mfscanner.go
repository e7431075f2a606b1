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

// Package scanio provides line-oriented scanning shared by every input
// file stage 1 reads (user word lists, exclusion patterns, adjacency
// maps): one or more files, UTF-8, '#' comments, blank lines ignored.
package scanio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MultiFileScanner wraps multiple files and provides a unified scanning
// interface, reading through them sequentially as if they were one.
type MultiFileScanner struct {
	filePaths    []string
	currentIndex int
	currentFile  *os.File
	scanner      *bufio.Scanner
	err          error
}

// NewMultiFileScanner creates a scanner that reads through multiple
// files sequentially.
func NewMultiFileScanner(filePaths ...string) (*MultiFileScanner, error) {
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("at least one file path required")
	}
	mfs := &MultiFileScanner{filePaths: filePaths, currentIndex: -1}
	if !mfs.openNextFile() {
		return nil, mfs.err
	}
	return mfs, nil
}

func (mfs *MultiFileScanner) openNextFile() bool {
	if mfs.currentFile != nil {
		mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.scanner = nil
	}
	mfs.currentIndex++
	if mfs.currentIndex >= len(mfs.filePaths) {
		return false
	}
	file, err := os.Open(mfs.filePaths[mfs.currentIndex])
	if err != nil {
		mfs.err = err
		return false
	}
	mfs.currentFile = file
	mfs.scanner = bufio.NewScanner(file)
	return true
}

// Scan advances to the next line, returning false when finished or on
// error.
func (mfs *MultiFileScanner) Scan() bool {
	if mfs.scanner == nil {
		return false
	}
	if mfs.scanner.Scan() {
		return true
	}
	if err := mfs.scanner.Err(); err != nil {
		mfs.err = err
		return false
	}
	return mfs.openNextFile() && mfs.Scan()
}

// Text returns the current line.
func (mfs *MultiFileScanner) Text() string {
	if mfs.scanner == nil {
		return ""
	}
	return mfs.scanner.Text()
}

// Err returns the first error encountered during scanning.
func (mfs *MultiFileScanner) Err() error {
	return mfs.err
}

// Close closes any open file handle.
func (mfs *MultiFileScanner) Close() error {
	if mfs.currentFile != nil {
		err := mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.scanner = nil
		return err
	}
	return nil
}

// ReadLines reads every non-comment, non-blank line from one or more
// files, trimming surrounding whitespace. This is the shape every
// §6 input file format (include, exclude, adjacent_letters) shares.
func ReadLines(filePaths ...string) ([]string, error) {
	mfs, err := NewMultiFileScanner(filePaths...)
	if err != nil {
		return nil, err
	}
	defer mfs.Close()
	var out []string
	for mfs.Scan() {
		line := strings.TrimSpace(mfs.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := mfs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
