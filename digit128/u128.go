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

// DigitsRadixU128 decomposes n into its digits in the given base, most
// significant digit first. Zero decomposes to [0], never an empty slice.
func DigitsRadixU128(n num.U128, base int) []uint8 {
	checkBase(base)
	return digitsU(n, base)
}

// FromDigitsRadixU128 reconstructs a U128 from a most-significant-first digit
// sequence. An empty sequence yields zero. Digit values are used as given,
// without range checks against base, and a magnitude exceeding 128 bits
// wraps.
func FromDigitsRadixU128(ds []uint8, base int) num.U128 {
	checkBase(base)
	return fromDigitsU(ds, base)
}

// SumRadixU128 returns the sum of the digits of n in the given base. The
// largest possible sum (128 digits of 255) fits comfortably in a uint64.
func SumRadixU128(n num.U128, base int) uint64 {
	checkBase(base)
	return sumU(n, base)
}

// ProductRadixU128 returns the product of the digits of n in the given base.
// The result is a U128 because a 128-bit magnitude can have a digit product
// beyond 64 bits; a product beyond 128 bits wraps.
func ProductRadixU128(n num.U128, base int) num.U128 {
	checkBase(base)
	return productU(n, base)
}

// LenRadixU128 returns the number of digits of n in the given base. Zero has
// length 1.
func LenRadixU128(n num.U128, base int) int {
	checkBase(base)
	return lenU(n, base)
}

// ReverseRadixU128 reverses the digit order of n in the given base. Trailing
// zeros of the original contribute nothing to the reversal. Zero reverses to
// zero.
func ReverseRadixU128(n num.U128, base int) num.U128 {
	checkBase(base)
	return reverseU(n, base)
}

// IsPalindromeRadixU128 reports whether the digits of n in the given base
// read the same in both directions.
func IsPalindromeRadixU128(n num.U128, base int) bool {
	return n == ReverseRadixU128(n, base)
}

// NthRadixU128 returns the digit of n at the zero-based position i, counted
// from the most significant digit, in the given base. The boolean is false
// when i is negative or beyond the last digit.
func NthRadixU128(n num.U128, i int, base int) (uint8, bool) {
	checkBase(base)
	return nthU(n, i, base)
}

// ContainsRadixU128 reports whether d appears among the digits of n in the
// given base.
func ContainsRadixU128(n num.U128, d uint8, base int) bool {
	checkBase(base)
	return containsU(n, d, base)
}

// ConcatRadixU128 appends the digits of b after the digits of a in the given
// base. Concatenating b == 0 appends one 0 digit. A result beyond 128 bits
// wraps.
func ConcatRadixU128(a, b num.U128, base int) num.U128 {
	checkBase(base)
	return a.Mul(upow128(base, lenU(b, base))).Add(b)
}

// MakeMaxRadixU128 returns the largest value obtainable by permuting the
// digits of n in the given base.
func MakeMaxRadixU128(n num.U128, base int) num.U128 {
	ds := DigitsRadixU128(n, base)
	sortDesc(ds)
	return fromDigitsU(ds, base)
}

// MakeMinRadixU128 returns the smallest value obtainable by permuting the
// digits of n in the given base. Leading zeros in the ascending arrangement
// vanish from the result.
func MakeMinRadixU128(n num.U128, base int) num.U128 {
	ds := DigitsRadixU128(n, base)
	sortAsc(ds)
	return fromDigitsU(ds, base)
}

// Decimal shortcuts, each exactly the radix form with base 10.

func DigitsU128(n num.U128) []uint8 { return DigitsRadixU128(n, 10) }

func FromDigitsU128(ds []uint8) num.U128 { return FromDigitsRadixU128(ds, 10) }

func SumU128(n num.U128) uint64 { return SumRadixU128(n, 10) }

func ProductU128(n num.U128) num.U128 { return ProductRadixU128(n, 10) }

func LenU128(n num.U128) int { return LenRadixU128(n, 10) }

func ReverseU128(n num.U128) num.U128 { return ReverseRadixU128(n, 10) }

func IsPalindromeU128(n num.U128) bool { return IsPalindromeRadixU128(n, 10) }

func NthU128(n num.U128, i int) (uint8, bool) { return NthRadixU128(n, i, 10) }

func ContainsU128(n num.U128, d uint8) bool { return ContainsRadixU128(n, d, 10) }

func ConcatU128(a, b num.U128) num.U128 { return ConcatRadixU128(a, b, 10) }

func MakeMaxU128(n num.U128) num.U128 { return MakeMaxRadixU128(n, 10) }

func MakeMinU128(n num.U128) num.U128 { return MakeMinRadixU128(n, 10) }
