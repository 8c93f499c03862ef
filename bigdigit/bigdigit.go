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

// Package bigdigit provides the digit operations of the parent digit package
// over math/big integers, for magnitudes wider than the built-in integer
// types. Digit values are uint16 ordinals and the radix ranges from 2 to
// MaxRadix. Functions never mutate their *big.Int arguments and return
// freshly allocated results.
package bigdigit

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
)

// MaxRadix is the largest supported radix. Digit values are uint16 ordinals,
// so a radix above 65536 cannot be represented.
const MaxRadix = 65536

var (
	// ErrRadixRange is returned when a radix lies outside [2, MaxRadix].
	ErrRadixRange = errors.New("radix must be between 2 and 65536, inclusive")

	// ErrDigitRange is returned by FromDigits when a digit value is not
	// below the radix.
	ErrDigitRange = errors.New("digit value out of range for radix")
)

func checkRadix(radix int) error {
	if radix < 2 || radix > MaxRadix {
		return fmt.Errorf("%w: got %d", ErrRadixRange, radix)
	}
	return nil
}

// Digits decomposes |x| into its digits in the given radix, most significant
// digit in element 0. Zero decomposes to [0], never an empty slice.
func Digits(x *big.Int, radix int) ([]uint16, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	if x.Sign() == 0 {
		return []uint16{0}, nil
	}
	var bigRadix, mod, v big.Int
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	ds := make([]uint16, 0, 32)
	for v.Sign() != 0 {
		v.DivMod(&v, &bigRadix, &mod)
		ds = append(ds, uint16(mod.Uint64()))
	}
	slices.Reverse(ds)
	return ds, nil
}

// FromDigits constructs a big.Int from a digit sequence, where each element
// represents one digit in the given radix. The sequence is arranged with the
// most significant digit in element 0, down to the least significant digit in
// element len-1. It is an error for the sequence to contain a value that is
// not below the radix. An empty sequence yields zero.
func FromDigits(ds []uint16, radix int) (*big.Int, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	var bigRadix, bv, x big.Int
	maxv := uint16(radix - 1)
	bigRadix.SetUint64(uint64(radix))
	for i, d := range ds {
		if d > maxv {
			return nil, fmt.Errorf("%w: got %d at %d - expected 0..%d", ErrDigitRange, d, i, maxv)
		}
		bv.SetUint64(uint64(d))
		x.Mul(&x, &bigRadix)
		x.Add(&x, &bv)
	}
	return &x, nil
}

// Fill populates r with digits representing |x| in the specified radix.
// The slice is arranged with the most significant digit in element 0 and is
// filled from the least significant digit upwards, zero-padding the most
// significant positions. If the supplied slice is too short to hold every
// digit of x, an error is returned.
func Fill(x *big.Int, r []uint16, radix int) ([]uint16, error) {
	if err := checkRadix(radix); err != nil {
		return r, err
	}
	var bigRadix, mod, v big.Int
	m := len(r)
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	for i := range r {
		v.DivMod(&v, &bigRadix, &mod)
		r[m-i-1] = uint16(mod.Uint64())
	}
	if v.Sign() != 0 {
		return r, fmt.Errorf("destination slice too small: %s remains after conversion", &v)
	}
	return r, nil
}

// Len returns the number of digits of |x| in the given radix. Zero has
// length 1.
func Len(x *big.Int, radix int) (int, error) {
	if err := checkRadix(radix); err != nil {
		return 0, err
	}
	if x.Sign() == 0 {
		return 1, nil
	}
	var bigRadix, v big.Int
	v.Abs(x)
	bigRadix.SetUint64(uint64(radix))
	cnt := 0
	for v.Sign() != 0 {
		v.Quo(&v, &bigRadix)
		cnt++
	}
	return cnt, nil
}
