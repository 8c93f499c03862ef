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

// Package digit128 provides the digit operations of the parent digit package
// for 128-bit integers, using the num.U128 and num.I128 types. The unsigned
// and signed variants are separate function families selected by type, in the
// manner of strconv's FormatUint/FormatInt: the U128 family needs no sign
// handling, the I128 family decomposes the magnitude and reattaches the sign
// where the operation preserves it.
//
// Digit values are uint8 ordinals and bases range from 2 to MaxBase, matching
// the parent package, as does the base policy: an illegal base panics.
// Reconstruction and concatenation overflow wraps at 128 bits, following
// num's two's-complement arithmetic.
package digit128

import (
	"slices"
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

// MaxBase is the largest supported base. Digit values are uint8 ordinals, so
// a base above 256 cannot be represented.
const MaxBase = 256

func checkBase(base int) {
	if base < 2 || base > MaxBase {
		panic("digit128: illegal base " + strconv.Itoa(base))
	}
}

func upow128(base int, e int) num.U128 {
	b := num.U128From64(uint64(base))
	r := num.U128From64(1)
	for ; e > 0; e-- {
		r = r.Mul(b)
	}
	return r
}

// magI128 returns |n| as a U128 along with the sign of n. Negation wraps for
// the minimum I128, and the unsigned reinterpretation of that wrap is exactly
// the magnitude 1<<127, so the minimum is handled without a special case.
func magI128(n num.I128) (num.U128, bool) {
	if n.Sign() < 0 {
		return n.Neg().AsU128(), true
	}
	return n.AsU128(), false
}

func signedI128(u num.U128, neg bool) num.I128 {
	v := u.AsI128()
	if neg {
		v = v.Neg()
	}
	return v
}

func digitsU(u num.U128, base int) []uint8 {
	if u.IsZero() {
		return []uint8{0}
	}
	// 128 digits covers the widest magnitude in the smallest base.
	var buf [128]uint8
	b := num.U128From64(uint64(base))
	i := len(buf)
	for !u.IsZero() {
		var r num.U128
		u, r = u.QuoRem(b)
		i--
		buf[i] = uint8(r.AsUint64())
	}
	return append([]uint8(nil), buf[i:]...)
}

func fromDigitsU(ds []uint8, base int) num.U128 {
	var acc num.U128
	b := num.U128From64(uint64(base))
	for _, d := range ds {
		acc = acc.Mul(b).Add(num.U128From64(uint64(d)))
	}
	return acc
}

func sumU(u num.U128, base int) uint64 {
	b := num.U128From64(uint64(base))
	var sum uint64
	for !u.IsZero() {
		var r num.U128
		u, r = u.QuoRem(b)
		sum += r.AsUint64()
	}
	return sum
}

func productU(u num.U128, base int) num.U128 {
	if u.IsZero() {
		return num.U128{}
	}
	b := num.U128From64(uint64(base))
	prod := num.U128From64(1)
	for !u.IsZero() {
		var r num.U128
		u, r = u.QuoRem(b)
		prod = prod.Mul(r)
	}
	return prod
}

func lenU(u num.U128, base int) int {
	if u.IsZero() {
		return 1
	}
	b := num.U128From64(uint64(base))
	cnt := 0
	for !u.IsZero() {
		u, _ = u.QuoRem(b)
		cnt++
	}
	return cnt
}

func reverseU(u num.U128, base int) num.U128 {
	b := num.U128From64(uint64(base))
	var rev num.U128
	for !u.IsZero() {
		var r num.U128
		u, r = u.QuoRem(b)
		rev = rev.Mul(b).Add(r)
	}
	return rev
}

func nthU(u num.U128, i int, base int) (uint8, bool) {
	l := lenU(u, base)
	if i < 0 || i >= l {
		return 0, false
	}
	b := num.U128From64(uint64(base))
	q, _ := u.QuoRem(upow128(base, l-1-i))
	_, r := q.QuoRem(b)
	return uint8(r.AsUint64()), true
}

func sortAsc(ds []uint8) {
	slices.Sort(ds)
}

func sortDesc(ds []uint8) {
	slices.Sort(ds)
	slices.Reverse(ds)
}

func containsU(u num.U128, d uint8, base int) bool {
	if u.IsZero() {
		return d == 0
	}
	b := num.U128From64(uint64(base))
	for !u.IsZero() {
		var r num.U128
		u, r = u.QuoRem(b)
		if uint8(r.AsUint64()) == d {
			return true
		}
	}
	return false
}
