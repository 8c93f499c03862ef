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

package bigdigit

import (
	"math/big"
	"slices"
)

// Sum returns the sum of the digits of |x| in the given radix. The result is
// a big.Int because the input magnitude is unbounded.
func Sum(x *big.Int, radix int) (*big.Int, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	var bigRadix, mod, v big.Int
	sum := new(big.Int)
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	for v.Sign() != 0 {
		v.DivMod(&v, &bigRadix, &mod)
		sum.Add(sum, &mod)
	}
	return sum, nil
}

// Product returns the product of the digits of |x| in the given radix. Zero
// has the single digit 0, so its product is 0, and any zero digit absorbs
// the product to 0.
func Product(x *big.Int, radix int) (*big.Int, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	if x.Sign() == 0 {
		return new(big.Int), nil
	}
	var bigRadix, mod, v big.Int
	prod := big.NewInt(1)
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	for v.Sign() != 0 {
		v.DivMod(&v, &bigRadix, &mod)
		prod.Mul(prod, &mod)
	}
	return prod, nil
}

// Reverse reverses the digit order of |x| in the given radix and reattaches
// the original sign. Trailing zeros of the original contribute nothing to
// the reversal: 1200 reversed in radix 10 is 21. Zero reverses to zero.
func Reverse(x *big.Int, radix int) (*big.Int, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	var bigRadix, mod, v big.Int
	rev := new(big.Int)
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	for v.Sign() != 0 {
		v.DivMod(&v, &bigRadix, &mod)
		rev.Mul(rev, &bigRadix)
		rev.Add(rev, &mod)
	}
	if x.Sign() < 0 {
		rev.Neg(rev)
	}
	return rev, nil
}

// IsPalindrome reports whether the digits of x in the given radix read the
// same in both directions. Sign is preserved by reversal, so the test is
// meaningful for negative values.
func IsPalindrome(x *big.Int, radix int) (bool, error) {
	rev, err := Reverse(x, radix)
	if err != nil {
		return false, err
	}
	return x.Cmp(rev) == 0, nil
}

// Nth returns the digit of |x| at the zero-based position i, counted from
// the most significant digit, in the given radix. The boolean is false when
// i is negative or beyond the last digit.
func Nth(x *big.Int, i int, radix int) (uint16, bool, error) {
	l, err := Len(x, radix)
	if err != nil {
		return 0, false, err
	}
	if i < 0 || i >= l {
		return 0, false, nil
	}
	var bigRadix, v big.Int
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	p := new(big.Int).Exp(&bigRadix, big.NewInt(int64(l-1-i)), nil)
	v.Quo(&v, p)
	v.Mod(&v, &bigRadix)
	return uint16(v.Uint64()), true, nil
}

// Contains reports whether d appears among the digits of |x| in the given
// radix. Zero has the single digit 0.
func Contains(x *big.Int, d uint16, radix int) (bool, error) {
	if err := checkRadix(radix); err != nil {
		return false, err
	}
	if x.Sign() == 0 {
		return d == 0, nil
	}
	var bigRadix, mod, v big.Int
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	for v.Sign() != 0 {
		v.DivMod(&v, &bigRadix, &mod)
		if uint16(mod.Uint64()) == d {
			return true, nil
		}
	}
	return false, nil
}

// Concat appends the digits of |b| after the digits of a in the given radix:
// a * radix^Len(b), plus |b| when a is non-negative, minus |b| when a is
// negative. The sign of the result follows a; b contributes digits only.
// Concatenating b == 0 appends one 0 digit, so it is not a no-op.
func Concat(a, b *big.Int, radix int) (*big.Int, error) {
	shift, err := Len(b, radix)
	if err != nil {
		return nil, err
	}
	var bigRadix, mb big.Int
	bigRadix.SetUint64(uint64(radix))
	mb.Abs(b)
	ret := new(big.Int).Exp(&bigRadix, big.NewInt(int64(shift)), nil)
	ret.Mul(ret, a)
	if a.Sign() < 0 {
		ret.Sub(ret, &mb)
	} else {
		ret.Add(ret, &mb)
	}
	return ret, nil
}

// MakeMax returns the largest value obtainable by permuting the digits of
// |x| in the given radix. The sign of x is discarded: a digit arrangement is
// a property of the magnitude, so the result is always non-negative.
func MakeMax(x *big.Int, radix int) (*big.Int, error) {
	ds, err := Digits(x, radix)
	if err != nil {
		return nil, err
	}
	slices.Sort(ds)
	slices.Reverse(ds)
	return FromDigits(ds, radix)
}

// MakeMin returns the smallest value obtainable by permuting the digits of
// |x| in the given radix. Leading zeros in the ascending arrangement
// contribute nothing positionally, so they vanish from the result. The sign
// of x is discarded.
func MakeMin(x *big.Int, radix int) (*big.Int, error) {
	ds, err := Digits(x, radix)
	if err != nil {
		return nil, err
	}
	slices.Sort(ds)
	return FromDigits(ds, radix)
}
