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


package qm_test

import (
	"fmt"
	"strings"

	"github.com/boolsimp/boolsimp/minimize/go/qm"
)

func ExampleSimplify() {
	// f(a, b, c) is true on 000, 010, 100 and 110.
	implicants, err := qm.Simplify(3, []uint32{0, 2, 4, 6}, nil)
	if err != nil {
		fmt.Printf("Simplify returned with error: %v\n", err)
		return
	}
	for _, imp := range implicants {
		fmt.Println(imp)
	}
	// Output:
	// --0 {0,2,4,6}
}

func ExampleSimplifyWithParameters() {
	ones := []uint32{4, 8, 10, 11, 12, 15}
	dontCares := []uint32{9, 14}

	res, err := qm.SimplifyWithParameters(4, ones, dontCares, &qm.Parameters{})
	if err != nil {
		fmt.Printf("SimplifyWithParameters returned with error: %v\n", err)
		return
	}
	fmt.Printf("rounds: %d, merged terms: %d\n", res.Rounds, res.Merges)
	for _, imp := range res.Covering(ones) {
		fmt.Println(imp)
	}
	// Output:
	// rounds: 2, merged terms: 13
	// 10-- {8-11}
	// 1--0 {8,10,12,14}
	// 1-1- {10-11,14-15}
	// -100 {4,12}
}

// productTerm renders a pattern as a product of named variables, a trailing `'`
// marking a negated variable.
func productTerm(p qm.Pattern, names []string) string {
	var sb strings.Builder
	for i, l := range p {
		v, ok := l.Value()
		if !ok {
			continue
		}
		sb.WriteString(names[i])
		if !v {
			sb.WriteString("'")
		}
	}
	if sb.Len() == 0 {
		return "1"
	}
	return sb.String()
}

func ExamplePatterns() {
	implicants, err := qm.Simplify(3, []uint32{0, 1, 5, 7}, nil)
	if err != nil {
		fmt.Printf("Simplify returned with error: %v\n", err)
		return
	}
	var terms []string
	for _, p := range qm.Patterns(implicants) {
		terms = append(terms, productTerm(p, []string{"a", "b", "c"}))
	}
	fmt.Println(strings.Join(terms, " + "))
	// Output:
	// a'b' + b'c + ac
}

func ExampleMintermSet() {
	s := qm.NewMintermSet(7, 1, 2, 3).Union(qm.NewMintermSet(5))
	fmt.Println(s, s.Len(), s.Contains(4))
	// Output:
	// {1-3,5,7} 5 false
}
