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

import "slices"

// MakeMaxRadix returns the largest value obtainable by permuting the digits
// of |n| in the given base. The sign of n is discarded: a digit arrangement
// is a property of the magnitude, so the result is always non-negative.
// MakeMaxRadix panics if base is outside [2, MaxBase].
func MakeMaxRadix[T Integer](n T, base int) T {
	ds := DigitsRadix(n, base)
	slices.Sort(ds)
	slices.Reverse(ds)
	return FromDigitsRadix[T](ds, base)
}

// MakeMinRadix returns the smallest value obtainable by permuting the digits
// of |n| in the given base. Leading zeros in the ascending arrangement
// contribute nothing positionally, so they vanish from the result. The sign
// of n is discarded. MakeMinRadix panics if base is outside [2, MaxBase].
func MakeMinRadix[T Integer](n T, base int) T {
	ds := DigitsRadix(n, base)
	slices.Sort(ds)
	return FromDigitsRadix[T](ds, base)
}

// MakeMax returns the largest value obtainable by permuting the decimal
// digits of |n|.
//
//	MakeMax(2026) == 6220
//	MakeMax(-2026) == 6220
func MakeMax[T Integer](n T) T {
	return MakeMaxRadix(n, 10)
}

// MakeMin returns the smallest value obtainable by permuting the decimal
// digits of |n|.
//
//	MakeMin(2026) == 226
//	MakeMin(0) == 0
func MakeMin[T Integer](n T) T {
	return MakeMinRadix(n, 10)
}
