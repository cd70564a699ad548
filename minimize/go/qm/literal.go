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

import "strings"

// Literal is the assignment of a single variable inside a term. The zero value is
// Unconstrained, meaning the variable has been generalized away.
type Literal int8

const (
	// Unconstrained marks a variable position that imposes no constraint.
	Unconstrained Literal = iota
	// False marks a variable fixed to false.
	False
	// True marks a variable fixed to true.
	True
)

// LiteralOf returns the fixed literal for `b`.
func LiteralOf(b bool) Literal {
	if b {
		return True
	}
	return False
}

// Fixed returns true if the literal is either True or False.
func (l Literal) Fixed() bool {
	return l == True || l == False
}

// Value returns the fixed value of the literal, and returns false if the literal
// is Unconstrained.
func (l Literal) Value() (bool, bool) {
	if !l.Fixed() {
		return false, false
	}
	return l == True, true
}

// Not returns the negation of the literal. Unconstrained is its own negation.
func (l Literal) Not() Literal {
	switch l {
	case True:
		return False
	case False:
		return True
	default:
		return Unconstrained
	}
}

// String renders the literal as `1`, `0` or `-`.
func (l Literal) String() string {
	switch l {
	case True:
		return "1"
	case False:
		return "0"
	default:
		return "-"
	}
}

// Pattern is a literal per variable, most significant variable first.
type Pattern []Literal

// String renders the pattern in the usual tabular notation, e.g. `1-0`.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, l := range p {
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Equal returns true if both patterns have the same length and literals.
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Matches returns true if every fixed position of the pattern equals the
// corresponding bit of `m`, where `m` is read as a len(p)-bit number, most
// significant bit first.
func (p Pattern) Matches(m uint32) bool {
	for i, l := range p {
		v, ok := l.Value()
		if !ok {
			continue
		}
		if bitAt(m, len(p), i) != v {
			return false
		}
	}
	return true
}

// FixedCount returns the number of positions fixed to True or False.
func (p Pattern) FixedCount() int {
	n := 0
	for _, l := range p {
		if l.Fixed() {
			n++
		}
	}
	return n
}

// bitAt returns the bit of `m` at position `i` when `m` is read as a
// `width`-bit number with position 0 being the most significant bit.
func bitAt(m uint32, width, i int) bool {
	return (m>>uint(width-1-i))&1 == 1
}
