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

import "math/bits"

// SumRadix returns the sum of the digits of |n| in the given base. The result
// is a uint64 regardless of T: the largest possible digit sum (64 digits of
// 255) is nowhere near the uint64 range. SumRadix panics if base is outside
// [2, MaxBase].
func SumRadix[T Integer](n T, base int) uint64 {
	checkBase(base)
	u, _ := magnitude(n)
	b := uint64(base)
	var sum uint64
	for u > 0 {
		sum += u % b
		u /= b
	}
	return sum
}

// ProductRadix returns the product of the digits of |n| in the given base.
// A zero value has the single digit 0, so its product is 0, and any zero
// digit anywhere in the decomposition absorbs the product to 0. The product
// of the digits of a 64-bit magnitude always fits in a uint64. ProductRadix
// panics if base is outside [2, MaxBase].
func ProductRadix[T Integer](n T, base int) uint64 {
	checkBase(base)
	u, _ := magnitude(n)
	if u == 0 {
		return 0
	}
	b := uint64(base)
	prod := uint64(1)
	for u > 0 {
		prod *= u % b
		u /= b
	}
	return prod
}

// LenRadix returns the number of digits of |n| in the given base. Zero has
// length 1. LenRadix panics if base is outside [2, MaxBase].
func LenRadix[T Integer](n T, base int) int {
	checkBase(base)
	u, _ := magnitude(n)
	if u == 0 {
		return 1
	}
	b := uint64(base)
	cnt := 0
	for u > 0 {
		u /= b
		cnt++
	}
	return cnt
}

// Sum returns the sum of the decimal digits of |n|.
//
//	Sum(123) == 6
func Sum[T Integer](n T) uint64 {
	return SumRadix(n, 10)
}

// Product returns the product of the decimal digits of |n|.
//
//	Product(1234) == 24
//	Product(103) == 0
func Product[T Integer](n T) uint64 {
	return ProductRadix(n, 10)
}

var pow10 = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// Len returns the number of decimal digits of |n|. Zero has length 1.
//
// Len avoids the division loop: bits.Len64 gives an estimate that a single
// power-of-ten comparison corrects, exact for every magnitude up to and
// including math.MaxUint64 (length 20).
func Len[T Integer](n T) int {
	u, _ := magnitude(n)
	if u == 0 {
		return 1
	}
	t := bits.Len64(u) * 1233 >> 12
	if u < pow10[t] {
		return t
	}
	return t + 1
}
