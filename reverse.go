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

// ReverseRadix reverses the digit order of |n| in the given base and
// reattaches the original sign. Trailing zeros of the original become leading
// zeros of the reversal and so contribute nothing: 1200 reversed in base 10
// is 21, not 0021. Zero reverses to zero. A reversal whose magnitude exceeds
// T's range wraps in T's width. ReverseRadix panics if base is outside
// [2, MaxBase].
func ReverseRadix[T Integer](n T, base int) T {
	checkBase(base)
	u, neg := magnitude(n)
	b := uint64(base)
	var rev uint64
	for u > 0 {
		rev = rev*b + u%b
		u /= b
	}
	if neg {
		return -T(rev)
	}
	return T(rev)
}

// IsPalindromeRadix reports whether the digits of n in the given base read
// the same in both directions. Sign is preserved by reversal, so the test is
// meaningful for negative values: -121 is a palindrome, -12 is not.
// IsPalindromeRadix panics if base is outside [2, MaxBase].
func IsPalindromeRadix[T Integer](n T, base int) bool {
	return n == ReverseRadix(n, base)
}

// Reverse reverses the decimal digit order of |n| and reattaches the sign.
//
//	Reverse(123) == 321
//	Reverse(-123) == -321
//	Reverse(1200) == 21
func Reverse[T Integer](n T) T {
	return ReverseRadix(n, 10)
}

// IsPalindrome reports whether the decimal digits of n read the same in both
// directions.
//
//	IsPalindrome(121) == true
//	IsPalindrome(123) == false
//	IsPalindrome(-121) == true
func IsPalindrome[T Integer](n T) bool {
	return IsPalindromeRadix(n, 10)
}
