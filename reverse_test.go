package digit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	testSpec := []struct {
		n    int64
		want int64
	}{
		{123, 321},
		{-123, -321},
		{1200, 21},
		{0, 0},
		{5, 5},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			require.Equal(t, spec.want, Reverse(spec.n))
		})
	}
}

func TestReverseRadix(t *testing.T) {
	// 6 is 110 in base 2, reversed 011 is 3
	require.Equal(t, 3, ReverseRadix(6, 2))
	// trailing zeros collapse in any base: 4 is 100, reversed 001 is 1
	require.Equal(t, 1, ReverseRadix(4, 2))
	require.Equal(t, int64(-3), ReverseRadix(int64(-6), 2))
}

func TestIsPalindrome(t *testing.T) {
	testSpec := []struct {
		n    int64
		want bool
	}{
		{121, true},
		{123, false},
		{0, true},
		{8, true},
		{-121, true},
		{-12, false},
		{1001, true},
		{1200, false},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			require.Equal(t, spec.want, IsPalindrome(spec.n))
		})
	}
}

func TestIsPalindromeRadix(t *testing.T) {
	// 5 is 101 in base 2, 6 is 110
	require.True(t, IsPalindromeRadix(5, 2))
	require.False(t, IsPalindromeRadix(6, 2))
	// 9 is 1001 in base 2 but a single digit in base 16
	require.True(t, IsPalindromeRadix(9, 2))
	require.True(t, IsPalindromeRadix(9, 16))
}
