/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package digit

// NthRadix returns the digit of |n| at the zero-based position i, counted
// from the most significant digit, in the given base. The second return
// value is false when i is negative or beyond the last digit. NthRadix
// panics if base is outside [2, MaxBase].
func NthRadix[T Integer](n T, i int, base int) (uint8, bool) {
	checkBase(base)
	l := LenRadix(n, base)
	if i < 0 || i >= l {
		return 0, false
	}
	u, _ := magnitude(n)
	b := uint64(base)
	return uint8(u / upow(b, l-1-i) % b), true
}

// ContainsRadix reports whether d appears among the digits of |n| in the
// given base. Zero has the single digit 0. ContainsRadix panics if base is
// outside [2, MaxBase].
func ContainsRadix[T Integer](n T, d uint8, base int) bool {
	checkBase(base)
	u, _ := magnitude(n)
	if u == 0 {
		return d == 0
	}
	b := uint64(base)
	for u > 0 {
		if uint8(u%b) == d {
			return true
		}
		u /= b
	}
	return false
}

// Nth returns the decimal digit of |n| at the zero-based position i, counted
// from the most significant digit.
//
//	Nth(12345, 0) == (1, true)
//	Nth(12345, 4) == (5, true)
//	Nth(12345, 5) == (0, false)
func Nth[T Integer](n T, i int) (uint8, bool) {
	return NthRadix(n, i, 10)
}

// Contains reports whether d appears among the decimal digits of |n|.
//
//	Contains(12345, 3) == true
//	Contains(12345, 9) == false
func Contains[T Integer](n T, d uint8) bool {
	return ContainsRadix(n, d, 10)
}
