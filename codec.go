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
	"fmt"
	"strings"
	"unicode/utf8"
)

// Codec supports the conversion of an arbitrary alphabet into ordinal
// digit values from 0 to length of alphabet-1.
// Element 'rtd' (rune-to-digit) supports the mapping from runes to digit values.
// Element 'dtr' (digit-to-rune) supports the mapping from digit values back to runes.
type Codec struct {
	rtd map[rune]uint8
	dtr []rune
}

// NewCodec builds a Codec from the set of unique characters taken from the string s.
// The string contains arbitrary Utf-8 characters.
// It is an error to try to construct a codec from an alphabet with more than MaxBase characters.
func NewCodec(s string) (Codec, error) {
	var ret Codec
	ret.rtd = make(map[rune]uint8)
	ret.dtr = make([]rune, utf8.RuneCountInString(s))

	var i uint32
	for _, rv := range s {
		// duplicates are tolerated, but ignored.
		if _, ok := ret.rtd[rv]; !ok {
			if i == MaxBase {
				return ret, fmt.Errorf("alphabet must contain no more than %d characters", MaxBase)
			}
			ret.dtr[i] = rv
			ret.rtd[rv] = uint8(i)
			i++
		}
	}
	// shrink dtr to unique characters
	ret.dtr = ret.dtr[0:i]
	return ret, nil
}

// Radix returns the size of the alphabet supported by the Codec.
func (c *Codec) Radix() int {
	return len(c.dtr)
}

// Encode the supplied string as a digit sequence giving the position of each
// character in the alphabet.
// It is an error for the supplied string to contain characters that are not
// in the alphabet.
func (c *Codec) Encode(s string) ([]uint8, error) {
	ret := make([]uint8, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		d, ok := c.rtd[rv]
		if !ok {
			return ret, fmt.Errorf("character at position %d is not in alphabet", len(ret))
		}
		ret = append(ret, d)
	}
	return ret, nil
}

// Decode constructs a string from a digit sequence where each value specifies
// the position of the character in the alphabet.
// It is an error for the sequence to contain values outside the boundary of
// the alphabet.
func (c *Codec) Decode(ds []uint8) (string, error) {
	var ret strings.Builder
	for i, d := range ds {
		if int(d) > len(c.dtr)-1 {
			return "", fmt.Errorf("digit at position %d out of range: %d not in [0..%d]", i, d, len(c.dtr)-1)
		}
		ret.WriteRune(c.dtr[d])
	}
	return ret.String(), nil
}

// Format renders the digits of n through the Codec's alphabet, the base being
// the Codec's radix. Negative values are prefixed with '-', so a '-' in the
// alphabet itself makes the output ambiguous.
func Format[T Integer](n T, c *Codec) (string, error) {
	if c.Radix() < 2 {
		return "", fmt.Errorf("alphabet must contain at least 2 characters, got %d", c.Radix())
	}
	s, err := c.Decode(DigitsRadix(n, c.Radix()))
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "-" + s, nil
	}
	return s, nil
}

// Parse is the inverse of Format: it reads a string of alphabet characters,
// with an optional leading '-', as an integer in the Codec's radix. An empty
// string parses to zero. A magnitude exceeding T's range wraps in T's width.
func Parse[T Integer](s string, c *Codec) (T, error) {
	if c.Radix() < 2 {
		return 0, fmt.Errorf("alphabet must contain at least 2 characters, got %d", c.Radix())
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	ds, err := c.Encode(s)
	if err != nil {
		return 0, err
	}
	v := FromDigitsRadix[T](ds, c.Radix())
	if neg {
		return -v, nil
	}
	return v, nil
}
