package digit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeMax(t *testing.T) {
	testSpec := []struct {
		n    int64
		want int64
	}{
		{2026, 6220},
		{111, 111},
		{0, 0},
		{-2026, 6220},
		{102, 210},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			require.Equal(t, spec.want, MakeMax(spec.n))
		})
	}
}

func TestMakeMin(t *testing.T) {
	testSpec := []struct {
		n    int64
		want int64
	}{
		{2026, 226},
		{2001, 12},
		{0, 0},
		{-5, 5},
		{111, 111},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			require.Equal(t, spec.want, MakeMin(spec.n))
		})
	}
}

func TestMakeMaxMinRadix(t *testing.T) {
	// 6 is 110 in base 2: descending 110 is 6, ascending 011 is 3
	require.Equal(t, 6, MakeMaxRadix(6, 2))
	require.Equal(t, 3, MakeMinRadix(6, 2))
	// 0x1f0: descending 0xf10 == 3856, ascending 0x01f == 31
	require.Equal(t, 3856, MakeMaxRadix(496, 16))
	require.Equal(t, 31, MakeMinRadix(496, 16))
}
