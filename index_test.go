package digit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNth(t *testing.T) {
	testSpec := []struct {
		n      int64
		i      int
		want   uint8
		wantOK bool
	}{
		{12345, 0, 1, true},
		{12345, 4, 5, true},
		{12345, 5, 0, false},
		{12345, 100, 0, false},
		{12345, -1, 0, false},
		{0, 0, 0, true},
		{-12345, 0, 1, true},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			d, ok := Nth(spec.n, spec.i)
			require.Equal(t, spec.wantOK, ok)
			require.Equal(t, spec.want, d)
		})
	}
}

func TestNthRadix(t *testing.T) {
	// 255 is [15, 15] in base 16
	d, ok := NthRadix(255, 0, 16)
	require.True(t, ok)
	require.Equal(t, uint8(15), d)

	// 6 is [1, 1, 0] in base 2
	d, ok = NthRadix(6, 2, 2)
	require.True(t, ok)
	require.Equal(t, uint8(0), d)

	_, ok = NthRadix(6, 3, 2)
	require.False(t, ok)
}

func TestContains(t *testing.T) {
	testSpec := []struct {
		n    int64
		d    uint8
		want bool
	}{
		{12345, 3, true},
		{12345, 9, false},
		{0, 0, true},
		{0, 1, false},
		{-123, 2, true},
		{103, 0, true},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			require.Equal(t, spec.want, Contains(spec.n, spec.d))
		})
	}
}

func TestContainsRadix(t *testing.T) {
	// 6 is [1, 1, 0] in base 2
	require.True(t, ContainsRadix(6, 0, 2))
	require.True(t, ContainsRadix(6, 1, 2))
	require.False(t, ContainsRadix(7, 0, 2))
	require.True(t, ContainsRadix(255, 15, 16))
}
