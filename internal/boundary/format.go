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

package boundary

import "github.com/rs/zerolog/log"

// Marker is a single step that wraps a trigger string with a boundary
// marker appropriate to one side. Platforms compose these into a chain
// the same way ptcount/modders composes string transformers: each step
// is independent and stateless, the chain just folds them left to right.
type Marker interface {
	Mark(trigger string) string
}

const (
	MarkerColonLeft   = "colonLeft"
	MarkerColonRight  = "colonRight"
	MarkerColonBoth   = "colonBoth"
	MarkerIdentity    = "identity"
)

type colonLeft struct{}

func (colonLeft) Mark(s string) string { return ":" + s }

type colonRight struct{}

func (colonRight) Mark(s string) string { return s + ":" }

type colonBoth struct{}

func (colonBoth) Mark(s string) string { return ":" + s + ":" }

type identity struct{}

func (identity) Mark(s string) string { return s }

// MarkerChain applies zero or more Markers in sequence.
type MarkerChain struct {
	steps []Marker
}

// NewMarkerChain builds a chain from the given steps.
func NewMarkerChain(steps ...Marker) *MarkerChain {
	return &MarkerChain{steps: steps}
}

// Mark runs every step over s in order.
func (c *MarkerChain) Mark(s string) string {
	ans := s
	for _, step := range c.steps {
		ans = step.Mark(ans)
	}
	return ans
}

// MarkerFactory resolves a marker by name, falling back to the identity
// marker and logging a warning for unknown names, matching
// ptcount/modders.StringTransformerFactory's behavior for this teacher.
func MarkerFactory(name string) Marker {
	switch name {
	case MarkerColonLeft:
		return colonLeft{}
	case MarkerColonRight:
		return colonRight{}
	case MarkerColonBoth:
		return colonBoth{}
	case "", MarkerIdentity:
		return identity{}
	}
	log.Warn().Str("marker", name).Msg("unknown boundary marker, using identity")
	return identity{}
}

// FormatColonNotation renders typo+boundary using QMK's RTL colon
// notation: ":typo" (LEFT), "typo:" (RIGHT), ":typo:" (BOTH), "typo"
// (NONE). This is the formatter wired to the QMK platform's own
// format_trigger contract (§4.7); the chain mechanism
// above exists so other platforms' formatting, which also amounts to
// "wrap with zero or more markers", reuses the same idiom.
func FormatColonNotation(typo string, b Boundary) string {
	switch b {
	case LEFT:
		return colonLeft{}.Mark(typo)
	case RIGHT:
		return colonRight{}.Mark(typo)
	case BOTH:
		return colonBoth{}.Mark(typo)
	default:
		return typo
	}
}
