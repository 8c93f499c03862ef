package digit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	testSpec := []struct {
		a, b int64
		want int64
	}{
		{12, 34, 1234},
		{-12, 34, -1234},
		{12, -34, 1234},
		{-12, -34, -1234},
		{12, 0, 120},
		{0, 12, 12},
		{0, 0, 0},
		{-1, 0, -10},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			require.Equal(t, spec.want, Concat(spec.a, spec.b))
		})
	}
}

func TestConcatRadix(t *testing.T) {
	// 101 ++ 11 in base 2 is 10111, i.e. 5 ++ 3 == 23
	require.Equal(t, 23, ConcatRadix(5, 3, 2))
	// appending zero appends exactly one 0 digit
	require.Equal(t, 10, ConcatRadix(5, 0, 2))
	require.Equal(t, int64(-23), ConcatRadix(int64(-5), 3, 2))
	// 0xf ++ 0xf == 0xff
	require.Equal(t, 255, ConcatRadix(15, 15, 16))
}
