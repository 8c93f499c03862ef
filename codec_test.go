package digit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var testCodec = []struct {
	alphabet string
	radix    int
	input    string
	output   []uint8
}{
	{
		"0123456789abcdefghijklmnopqrstuvwxyz ",
		37,
		"hello world",
		[]uint8{17, 14, 21, 21, 24, 36, 32, 24, 27, 21, 13},
	},
	{
		"hello world",
		8,
		"hello world",
		[]uint8{0, 1, 2, 2, 3, 4, 5, 3, 6, 2, 7},
	},
	{
		"hello world⌘-",
		10,
		"⌘ - hello world",
		[]uint8{8, 4, 9, 4, 0, 1, 2, 2, 3, 4, 5, 3, 6, 2, 7},
	},
}

func TestCodec(t *testing.T) {
	for idx, spec := range testCodec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			c, err := NewCodec(spec.alphabet)
			require.NoError(t, err)
			require.Equal(t, spec.radix, c.Radix())

			es, err := c.Encode(spec.input)
			require.NoError(t, err)
			require.Equal(t, spec.output, es)

			ds, err := c.Decode(es)
			require.NoError(t, err)
			require.Equal(t, spec.input, ds)
		})
	}
}

func TestCodecErrors(t *testing.T) {
	c, err := NewCodec("01234")
	require.NoError(t, err)

	_, err = c.Encode("012x")
	require.Error(t, err)

	_, err = c.Decode([]uint8{0, 5})
	require.Error(t, err)
}

func TestCodecAlphabetTooBig(t *testing.T) {
	var sb strings.Builder
	for r := rune(0x100); r < 0x100+257; r++ {
		sb.WriteRune(r)
	}
	_, err := NewCodec(sb.String())
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	hex, err := NewCodec("0123456789abcdef")
	require.NoError(t, err)

	testSpec := []struct {
		n    int64
		want string
	}{
		{255, "ff"},
		{-255, "-ff"},
		{0, "0"},
		{4096, "1000"},
	}
	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			s, err := Format(spec.n, &hex)
			require.NoError(t, err)
			require.Equal(t, spec.want, s)

			back, err := Parse[int64](s, &hex)
			require.NoError(t, err)
			require.Equal(t, spec.n, back)
		})
	}

	bin, err := NewCodec("01")
	require.NoError(t, err)
	s, err := Format(6, &bin)
	require.NoError(t, err)
	require.Equal(t, "110", s)
}

func TestFormatTinyAlphabet(t *testing.T) {
	c, err := NewCodec("x")
	require.NoError(t, err)

	_, err = Format(42, &c)
	require.Error(t, err)

	_, err = Parse[int]("x", &c)
	require.Error(t, err)
}
