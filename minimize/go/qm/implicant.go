// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package qm

import "fmt"

// Implicant is a prime implicant found by Simplify: a literal pattern and the input
// minterms (ones and don't-cares) it was built from.
type Implicant struct {
	Pattern  Pattern
	Minterms MintermSet
}

// Covers returns true if `m` is one of the input minterms merged into the implicant.
func (imp Implicant) Covers(m uint32) bool {
	return imp.Minterms.Contains(m)
}

// Literals returns the number of fixed positions of the implicant, i.e. the number of
// literals of its product term.
func (imp Implicant) Literals() int {
	return imp.Pattern.FixedCount()
}

func (imp Implicant) String() string {
	return fmt.Sprintf("%s %s", imp.Pattern, imp.Minterms)
}

// Result holds the output of SimplifyWithParameters.
type Result struct {
	// Implicants lists the implicants in a deterministic order: the terms of the last
	// round first, then the unmerged terms of every earlier round, latest round first.
	Implicants []Implicant
	// Rounds is the number of merge rounds that produced at least one merged term.
	Rounds int
	// Merges is the number of distinct merged terms built over all rounds.
	Merges int
	// Truncated is true when Parameters.MaxRounds stopped the minimization early, in
	// which case the implicants of the last round may not be prime.
	Truncated bool
}

// Patterns returns the literal patterns of the implicants.
func (r *Result) Patterns() []Pattern {
	return Patterns(r.Implicants)
}

// Covered returns the union of the minterms of all implicants.
func (r *Result) Covered() MintermSet {
	var s MintermSet
	for _, imp := range r.Implicants {
		s = s.Union(imp.Minterms)
	}
	return s
}

// Covering returns the implicants that cover at least one of `ones`, dropping those
// built from don't-cares only. This does not select a minimal cover.
func (r *Result) Covering(ones []uint32) []Implicant {
	required := NewMintermSet(ones...)
	var result []Implicant
	for _, imp := range r.Implicants {
		if imp.Minterms.Intersects(required) {
			result = append(result, imp)
		}
	}
	return result
}

// Patterns returns the literal patterns of `implicants`, in the same order.
func Patterns(implicants []Implicant) []Pattern {
	result := make([]Pattern, 0, len(implicants))
	for _, imp := range implicants {
		result = append(result, imp.Pattern)
	}
	return result
}
