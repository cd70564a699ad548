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


// Package qm computes the prime implicants of a Boolean function with the
// Quine-McCluskey tabular method.
//
// A function over `varCount` variables is given by the minterms where it is true
// (ones) and the minterms where its value does not matter (don't-cares). A minterm
// is read as a `varCount`-bit number, most significant bit first, so with three
// variables the minterm 6 is the assignment `110`.
//
// `Simplify` returns every prime implicant. Selecting a minimal cover among them is
// left to the caller.
package qm

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/golang/glog"
)

// MaxVarCount is the largest number of variables supported. Minterms are uint32.
const MaxVarCount = 32

var (
	// ErrInvalidVarCount holds the error when the number of variables is not in
	// [1,MaxVarCount].
	ErrInvalidVarCount = errors.New("invalid number of variables")
	// ErrMintermOutOfRange holds the error when a minterm does not fit in the number of
	// variables.
	ErrMintermOutOfRange = errors.New("minterm out of range")
)

// Parameters tunes SimplifyWithParameters. The zero value gives the default behavior.
type Parameters struct {
	// TruncateMinterms accepts minterms that do not fit in `varCount` bits. Their
	// pattern is decoded from the low `varCount` bits while the raw value is kept in
	// the implicant minterms. By default such minterms are rejected with
	// ErrMintermOutOfRange.
	TruncateMinterms bool
	// MaxRounds stops the minimization after that many merge rounds. The implicants
	// of the last round are then returned as is and Result.Truncated is set.
	// 0 means no limit.
	MaxRounds int
}

// Simplify returns the prime implicants of the function over `varCount` variables that
// is true on `ones` and unspecified on `dontCares`.
//
// The implicants are not split by what they cover: an implicant may cover don't-cares
// only. See Result.Covering.
func Simplify(varCount int, ones, dontCares []uint32) ([]Implicant, error) {
	res, err := SimplifyWithParameters(varCount, ones, dontCares, nil)
	if err != nil {
		return nil, err
	}
	return res.Implicants, nil
}

// SimplifyWithParameters is the same as Simplify except it takes Parameters and returns
// the full Result. A nil `params` uses the defaults.
func SimplifyWithParameters(varCount int, ones, dontCares []uint32, params *Parameters) (*Result, error) {
	if params == nil {
		params = &Parameters{}
	}
	if varCount < 1 || varCount > MaxVarCount {
		return nil, fmt.Errorf("varCount=%v must be in [1,%v]: %w", varCount, MaxVarCount, ErrInvalidVarCount)
	}
	if err := checkRange(varCount, ones, "one", params.TruncateMinterms); err != nil {
		return nil, err
	}
	if err := checkRange(varCount, dontCares, "don't-care", params.TruncateMinterms); err != nil {
		return nil, err
	}

	all := make([]uint32, 0, len(ones)+len(dontCares))
	all = append(all, ones...)
	all = append(all, dontCares...)
	minterms := NewMintermSet(all...).Values()

	terms := make([]*term, 0, len(minterms))
	for _, m := range minterms {
		terms = append(terms, newTerm(varCount, m))
	}
	sortByWeight(terms)

	return minimize(terms, params.MaxRounds), nil
}

func checkRange(varCount int, minterms []uint32, kind string, truncate bool) error {
	limit := uint64(1) << uint(varCount)
	for _, m := range minterms {
		if uint64(m) < limit {
			continue
		}
		if !truncate {
			return fmt.Errorf("%s %v does not fit in %v variables: %w", kind, m, varCount, ErrMintermOutOfRange)
		}
		log.Warningf("%s %v does not fit in %v variables, decoding its low bits only", kind, m, varCount)
	}
	return nil
}

// minimize runs merge rounds over `terms` until a round merges nothing. `terms` must be
// sorted by weight.
func minimize(terms []*term, maxRounds int) *Result {
	res := &Result{}
	// unmerged[r] holds the terms of round r that took part in no merge.
	var unmerged [][]*term
	for {
		if log.V(2) {
			for _, t := range terms {
				log.Infof("round %d term: %v", res.Rounds, t)
			}
		}
		merged, included := mergeRound(terms)
		if len(merged) == 0 {
			break
		}
		if maxRounds > 0 && res.Rounds >= maxRounds {
			res.Truncated = true
			break
		}
		var left []*term
		for i, t := range terms {
			if !included[i] {
				left = append(left, t)
			}
		}
		log.V(1).Infof("round %d: %d terms, %d merged, %d unmerged", res.Rounds, len(terms), len(merged), len(left))
		unmerged = append(unmerged, left)
		res.Rounds++
		res.Merges += len(merged)

		sortByWeight(merged)
		terms = merged
	}

	for _, t := range terms {
		res.Implicants = append(res.Implicants, t.implicant())
	}
	for r := len(unmerged) - 1; r >= 0; r-- {
		for _, t := range unmerged[r] {
			res.Implicants = append(res.Implicants, t.implicant())
		}
	}
	log.V(1).Infof("%d implicants after %d rounds", len(res.Implicants), res.Rounds)
	return res
}

// mergeRound merges every pair of terms of adjacent weights that differ in a single
// position. It returns the distinct merged terms, in the order they were first built,
// and for each input term whether it took part in a merge.
func mergeRound(terms []*term) ([]*term, []bool) {
	included := make([]bool, len(terms))
	seen := make(map[string]bool)
	var merged []*term
	for i, t := range terms {
		for j := i + 1; j < len(terms); j++ {
			other := terms[j]
			if other.weight < t.weight {
				log.Fatalf("terms are not sorted by weight: %v before %v", t, other)
			}
			if other.weight-t.weight > 1 {
				break
			}
			if other.weight-t.weight != 1 || !t.mergeable(other) {
				continue
			}
			included[i] = true
			included[j] = true
			m := t.merge(other)
			k := m.minterms.key()
			if seen[k] {
				continue
			}
			seen[k] = true
			merged = append(merged, m)
		}
	}
	return merged, included
}

func sortByWeight(terms []*term) {
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].weight < terms[j].weight
	})
}
