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

// ConcatRadix appends the digits of |b| after the digits of a in the given
// base: a * base^LenRadix(b, base), plus |b| when a is non-negative, minus
// |b| when a is negative. The sign of the result follows a; b contributes
// digits only. Concatenating b == 0 appends one 0 digit, so it is not a
// no-op. A result exceeding T's range wraps in T's width. ConcatRadix panics
// if base is outside [2, MaxBase].
func ConcatRadix[T Integer](a, b T, base int) T {
	checkBase(base)
	ua, neg := magnitude(a)
	ub, _ := magnitude(b)
	r := ua*upow(uint64(base), LenRadix(b, base)) + ub
	if neg {
		return -T(r)
	}
	return T(r)
}

// Concat appends the decimal digits of |b| after the digits of a.
//
//	Concat(12, 34) == 1234
//	Concat(-12, 34) == -1234
//	Concat(12, 0) == 120
func Concat[T Integer](a, b T) T {
	return ConcatRadix(a, b, 10)
}
