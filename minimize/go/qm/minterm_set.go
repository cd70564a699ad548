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
	"sort"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// MintermRange stores the closed range of minterms `[Start,End]`. If `Start` is greater
// than `End`, the range is considered empty.
type MintermRange struct {
	Start uint32
	End   uint32
}

// Len returns the number of minterms in the range.
func (r MintermRange) Len() int {
	if r.Start > r.End {
		return 0
	}
	return int(r.End-r.Start) + 1
}

// MintermSet stores an ordered list of MintermRanges. It represents a set of minterm
// indices as a sorted and non-adjacent list of ranges, which stays short for the
// minterm sets produced by merging (a merged term covers 2^k minterms, often
// contiguous ones).
//
// A MintermSet is a value: no method modifies the receiver.
type MintermSet struct {
	ranges []MintermRange
}

// joinRanges sorts the ranges of the set and combines two consecutive ranges if they
// overlap or the start of the second is exactly one more than the end of the first.
// Empty ranges are dropped.
func (s *MintermSet) joinRanges() {
	var rs []MintermRange
	for _, r := range s.ranges {
		if r.Start <= r.End {
			rs = append(rs, r)
		}
	}
	s.ranges = rs
	if len(s.ranges) == 0 {
		return
	}
	sort.Slice(s.ranges, func(i, j int) bool {
		if s.ranges[i].Start != s.ranges[j].Start {
			return s.ranges[i].Start < s.ranges[j].Start
		}
		return s.ranges[i].End < s.ranges[j].End
	})
	joined := []MintermRange{s.ranges[0]}
	for i := 1; i < len(s.ranges); i++ {
		last := &joined[len(joined)-1]
		// uint64 so that End == MaxUint32 does not wrap.
		if uint64(last.End)+1 >= uint64(s.ranges[i].Start) {
			if last.End < s.ranges[i].End {
				last.End = s.ranges[i].End
			}
		} else {
			joined = append(joined, s.ranges[i])
		}
	}
	s.ranges = joined
}

// NewMintermSet creates a set from `values`. `values` need not be sorted and can
// repeat.
func NewMintermSet(values ...uint32) MintermSet {
	var s MintermSet
	for _, v := range values {
		s.ranges = append(s.ranges, MintermRange{v, v})
	}
	s.joinRanges()
	return s
}

// FromRanges creates a set from the union of the unordered `ranges`.
func FromRanges(ranges []MintermRange) MintermSet {
	rs := make([]MintermRange, len(ranges))
	copy(rs, ranges)
	s := MintermSet{rs}
	s.joinRanges()
	return s
}

// Union returns the set of minterms present in `s` or `other`.
func (s MintermSet) Union(other MintermSet) MintermSet {
	rs := make([]MintermRange, 0, len(s.ranges)+len(other.ranges))
	rs = append(rs, s.ranges...)
	rs = append(rs, other.ranges...)
	u := MintermSet{rs}
	u.joinRanges()
	return u
}

// Intersects returns true if `s` and `other` share at least one minterm.
func (s MintermSet) Intersects(other MintermSet) bool {
	i, j := 0, 0
	for i < len(s.ranges) && j < len(other.ranges) {
		a, b := s.ranges[i], other.ranges[j]
		if a.End < b.Start {
			i++
			continue
		}
		if b.End < a.Start {
			j++
			continue
		}
		return true
	}
	return false
}

// Contains returns true if `m` is in the set.
func (s MintermSet) Contains(m uint32) bool {
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].End >= m
	})
	return i < len(s.ranges) && s.ranges[i].Start <= m
}

// Len returns the number of minterms in the set.
func (s MintermSet) Len() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Len()
	}
	return n
}

// IsEmpty returns true if the set holds no minterm.
func (s MintermSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Equal returns true if both sets hold the same minterms.
func (s MintermSet) Equal(other MintermSet) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i := range s.ranges {
		if s.ranges[i] != other.ranges[i] {
			return false
		}
	}
	return true
}

// Values returns the minterms of the set in ascending order.
func (s MintermSet) Values() []uint32 {
	result := make([]uint32, 0, s.Len())
	for _, r := range s.ranges {
		for v := uint64(r.Start); v <= uint64(r.End); v++ {
			result = append(result, uint32(v))
		}
	}
	return result
}

// Ranges returns a copy of the sorted ranges of the set.
func (s MintermSet) Ranges() []MintermRange {
	rs := make([]MintermRange, len(s.ranges))
	copy(rs, s.ranges)
	return rs
}

// Min returns the smallest minterm of the set, and returns false if the set is empty.
func (s MintermSet) Min() (uint32, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	return s.ranges[0].Start, true
}

// Max returns the largest minterm of the set, and returns false if the set is empty.
func (s MintermSet) Max() (uint32, bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	return s.ranges[len(s.ranges)-1].End, true
}

// String renders the set as `{0,2,4-7}`.
func (s MintermSet) String() string {
	parts := make([]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		if r.Start == r.End {
			parts = append(parts, fmt.Sprintf("%d", r.Start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", r.Start, r.End))
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// key returns a canonical encoding of the set: two sets have the same key iff they
// hold the same minterms. Each range is written as the varint pair
// (start, end-start).
func (s MintermSet) key() string {
	b := make([]byte, 0, 2*len(s.ranges))
	for _, r := range s.ranges {
		b = protowire.AppendVarint(b, uint64(r.Start))
		b = protowire.AppendVarint(b, uint64(r.End-r.Start))
	}
	return string(b)
}
