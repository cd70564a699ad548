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

import (
	"fmt"

	log "github.com/golang/glog"
)

// term is a row of a Quine-McCluskey table: a partially specified assignment of
// `varCount` variables together with the input minterms it subsumes.
//
// Terms are never modified once built. merge returns a new term.
type term struct {
	varCount int
	// weight is the number of true literals of the originating minterm. For a merged
	// term it is the smallest weight of its operands.
	weight   int
	minterms MintermSet
	literals Pattern
}

// newTerm decodes `minterm` as a `varCount`-bit number, most significant bit first.
// Bits above `varCount` are ignored.
func newTerm(varCount int, minterm uint32) *term {
	literals := make(Pattern, varCount)
	weight := 0
	for i := range literals {
		b := bitAt(minterm, varCount, i)
		if b {
			weight++
		}
		literals[i] = LiteralOf(b)
	}
	return &term{
		varCount: varCount,
		weight:   weight,
		minterms: NewMintermSet(minterm),
		literals: literals,
	}
}

// mergeable returns true if `t` and `other` have the same unconstrained positions and
// differ in exactly one fixed position.
func (t *term) mergeable(other *term) bool {
	if t.varCount != other.varCount {
		return false
	}
	diff := false
	for i, l := range t.literals {
		o := other.literals[i]
		if l.Fixed() != o.Fixed() {
			return false
		}
		if l == o {
			continue
		}
		if diff {
			return false
		}
		diff = true
	}
	return diff
}

// merge returns the term covering both `t` and `other`. Positions where the operands
// disagree become Unconstrained.
//
// Both terms must be built for the same number of variables. Callers check
// mergeable first.
func (t *term) merge(other *term) *term {
	if t.varCount != other.varCount {
		log.Fatalf("cannot merge terms over a different number of variables: %v != %v", t.varCount, other.varCount)
	}
	literals := make(Pattern, t.varCount)
	for i, l := range t.literals {
		if l == other.literals[i] {
			literals[i] = l
		}
	}
	return &term{
		varCount: t.varCount,
		weight:   min(t.weight, other.weight),
		minterms: t.minterms.Union(other.minterms),
		literals: literals,
	}
}

func (t *term) implicant() Implicant {
	p := make(Pattern, len(t.literals))
	copy(p, t.literals)
	return Implicant{Pattern: p, Minterms: t.minterms}
}

func (t *term) String() string {
	return fmt.Sprintf("%s w=%d %s", t.literals, t.weight, t.minterms)
}
