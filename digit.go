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

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Integer is the set of integer types accepted by the operations in this
// package: all built-in signed and unsigned widths, including the
// platform-native int and uint.
type Integer interface {
	constraints.Integer
}

// MaxBase is the largest supported base. Digit values are uint8 ordinals, so
// a base above 256 cannot be represented.
const MaxBase = 256

func checkBase(base int) {
	if base < 2 || base > MaxBase {
		panic("digit: illegal base " + strconv.Itoa(base))
	}
}

// magnitude returns |n| in the unsigned domain along with the sign of n.
// Negating within uint64 keeps the minimum signed values exact, e.g.
// |math.MinInt64| = 1<<63.
func magnitude[T Integer](n T) (uint64, bool) {
	u := uint64(n)
	if n < 0 {
		return -u, true
	}
	return u, false
}

func upow(base uint64, e int) uint64 {
	r := uint64(1)
	for ; e > 0; e-- {
		r *= base
	}
	return r
}

// DigitsRadix decomposes |n| into its digits in the given base, most
// significant digit first. Zero decomposes to [0], never an empty slice.
// DigitsRadix panics if base is outside [2, MaxBase].
func DigitsRadix[T Integer](n T, base int) []uint8 {
	checkBase(base)
	u, _ := magnitude(n)
	if u == 0 {
		return []uint8{0}
	}
	// 64 digits covers the widest magnitude in the smallest base.
	var buf [64]uint8
	b := uint64(base)
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = uint8(u % b)
		u /= b
	}
	return append([]uint8(nil), buf[i:]...)
}

// FromDigitsRadix reconstructs an integer from a most-significant-first digit
// sequence, as the sum of ds[i] * base^(len-1-i). An empty sequence yields
// zero. Digit values are used as given, without range checks against base,
// and a magnitude exceeding T's range wraps in T's width following Go's
// integer conversion semantics. FromDigitsRadix panics if base is outside
// [2, MaxBase].
func FromDigitsRadix[T Integer](ds []uint8, base int) T {
	checkBase(base)
	var acc uint64
	b := uint64(base)
	for _, d := range ds {
		acc = acc*b + uint64(d)
	}
	return T(acc)
}

// Digits decomposes |n| into its decimal digits, most significant first.
//
//	Digits(12345) == []uint8{1, 2, 3, 4, 5}
//	Digits(-123) == []uint8{1, 2, 3}
//	Digits(0) == []uint8{0}
func Digits[T Integer](n T) []uint8 {
	return DigitsRadix(n, 10)
}

// FromDigits reconstructs an integer from its decimal digits, most
// significant first. See FromDigitsRadix for the overflow contract.
//
//	FromDigits[int]([]uint8{1, 2, 3}) == 123
func FromDigits[T Integer](ds []uint8) T {
	return FromDigitsRadix[T](ds, 10)
}
