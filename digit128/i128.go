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

package digit128

import num "github.com/shabbyrobe/go-num"

// DigitsRadixI128 decomposes |n| into its digits in the given base, most
// significant digit first. Zero decomposes to [0], never an empty slice.
func DigitsRadixI128(n num.I128, base int) []uint8 {
	checkBase(base)
	u, _ := magI128(n)
	return digitsU(u, base)
}

// FromDigitsRadixI128 reconstructs an I128 from a most-significant-first
// digit sequence. An empty sequence yields zero. Digit values are used as
// given, without range checks against base, and a magnitude exceeding the
// I128 range wraps in two's complement.
func FromDigitsRadixI128(ds []uint8, base int) num.I128 {
	checkBase(base)
	return fromDigitsU(ds, base).AsI128()
}

// SumRadixI128 returns the sum of the digits of |n| in the given base.
func SumRadixI128(n num.I128, base int) uint64 {
	checkBase(base)
	u, _ := magI128(n)
	return sumU(u, base)
}

// ProductRadixI128 returns the product of the digits of |n| in the given
// base. The result is a U128 because a 128-bit magnitude can have a digit
// product beyond 64 bits; a product beyond 128 bits wraps.
func ProductRadixI128(n num.I128, base int) num.U128 {
	checkBase(base)
	u, _ := magI128(n)
	return productU(u, base)
}

// LenRadixI128 returns the number of digits of |n| in the given base. Zero
// has length 1.
func LenRadixI128(n num.I128, base int) int {
	checkBase(base)
	u, _ := magI128(n)
	return lenU(u, base)
}

// ReverseRadixI128 reverses the digit order of |n| in the given base and
// reattaches the original sign. Trailing zeros of the original contribute
// nothing to the reversal. Zero reverses to zero.
func ReverseRadixI128(n num.I128, base int) num.I128 {
	checkBase(base)
	u, neg := magI128(n)
	return signedI128(reverseU(u, base), neg)
}

// IsPalindromeRadixI128 reports whether the digits of n in the given base
// read the same in both directions. Sign is preserved by reversal, so the
// test is meaningful for negative values.
func IsPalindromeRadixI128(n num.I128, base int) bool {
	return n == ReverseRadixI128(n, base)
}

// NthRadixI128 returns the digit of |n| at the zero-based position i,
// counted from the most significant digit, in the given base. The boolean is
// false when i is negative or beyond the last digit.
func NthRadixI128(n num.I128, i int, base int) (uint8, bool) {
	checkBase(base)
	u, _ := magI128(n)
	return nthU(u, i, base)
}

// ContainsRadixI128 reports whether d appears among the digits of |n| in the
// given base.
func ContainsRadixI128(n num.I128, d uint8, base int) bool {
	checkBase(base)
	u, _ := magI128(n)
	return containsU(u, d, base)
}

// ConcatRadixI128 appends the digits of |b| after the digits of a in the
// given base. The sign of the result follows a; b contributes digits only.
// Concatenating b == 0 appends one 0 digit. A result beyond the I128 range
// wraps.
func ConcatRadixI128(a, b num.I128, base int) num.I128 {
	checkBase(base)
	ua, neg := magI128(a)
	ub, _ := magI128(b)
	return signedI128(ua.Mul(upow128(base, lenU(ub, base))).Add(ub), neg)
}

// MakeMaxRadixI128 returns the largest value obtainable by permuting the
// digits of |n| in the given base. The sign of n is discarded, so the result
// is always non-negative.
func MakeMaxRadixI128(n num.I128, base int) num.I128 {
	ds := DigitsRadixI128(n, base)
	sortDesc(ds)
	return fromDigitsU(ds, base).AsI128()
}

// MakeMinRadixI128 returns the smallest value obtainable by permuting the
// digits of |n| in the given base. The sign of n is discarded, so the result
// is always non-negative.
func MakeMinRadixI128(n num.I128, base int) num.I128 {
	ds := DigitsRadixI128(n, base)
	sortAsc(ds)
	return fromDigitsU(ds, base).AsI128()
}

// Decimal shortcuts, each exactly the radix form with base 10.

func DigitsI128(n num.I128) []uint8 { return DigitsRadixI128(n, 10) }

func FromDigitsI128(ds []uint8) num.I128 { return FromDigitsRadixI128(ds, 10) }

func SumI128(n num.I128) uint64 { return SumRadixI128(n, 10) }

func ProductI128(n num.I128) num.U128 { return ProductRadixI128(n, 10) }

func LenI128(n num.I128) int { return LenRadixI128(n, 10) }

func ReverseI128(n num.I128) num.I128 { return ReverseRadixI128(n, 10) }

func IsPalindromeI128(n num.I128) bool { return IsPalindromeRadixI128(n, 10) }

func NthI128(n num.I128, i int) (uint8, bool) { return NthRadixI128(n, i, 10) }

func ContainsI128(n num.I128, d uint8) bool { return ContainsRadixI128(n, d, 10) }

func ConcatI128(a, b num.I128) num.I128 { return ConcatRadixI128(a, b, 10) }

func MakeMaxI128(n num.I128) num.I128 { return MakeMaxRadixI128(n, 10) }

func MakeMinI128(n num.I128) num.I128 { return MakeMinRadixI128(n, 10) }
