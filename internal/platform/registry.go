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

import "fmt"

// factories mirrors db/colgen.FuncList's name-keyed factory map idiom:
// a platform is selected by the config's `platform` key, not wired up
// through build tags or reflection.
var factories = map[string]func(maxCorrections, maxEntriesPerFile int) Platform{
	"espanso": func(maxCorrections, maxEntriesPerFile int) Platform {
		return &Espanso{MaxCorrectionsLimit: maxCorrections, MaxEntriesPerFile: maxEntriesPerFile}
	},
	"qmk": func(maxCorrections, _ int) Platform {
		return &QMK{MaxCorrectionsLimit: maxCorrections}
	},
}

// New resolves name to a configured Platform.
func New(name string, maxCorrections, maxEntriesPerFile int) (Platform, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown platform: %s", name)
	}
	return factory(maxCorrections, maxEntriesPerFile), nil
}

// Names lists every registered platform name, for the CLI's usage
// banner (spec.md's "custom flag.Usage closure ... supported platforms
// list").
func Names() []string {
	names := make([]string, 0, len(factories))
	for k := range factories {
		names = append(names, k)
	}
	return names
}
