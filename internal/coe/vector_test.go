package coe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/ir"
)

func TestAssembleFullColorHex(t *testing.T) {
	g, err := ir.NewGrid(2, 1, []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	})
	require.NoError(t, err)

	enc := NewEncoder(color.ModeFullColor, color.AlphaNone, color.DefaultThreshold)
	words := make([]Word, g.Len())
	enc.EncodeRange(words, g, 0, g.Len())

	vec, err := Assemble(words, 2, 1, SpaceSeparated, NewFormatter(Hexadecimal, enc.Width(), false))
	require.NoError(t, err)
	assert.Equal(t, "FF0000 00FF00;\n", vec)
}

func TestAssembleMonochromeThreshold(t *testing.T) {
	g, err := ir.NewGrid(1, 2, []byte{
		200, 200, 200, 200,
		10, 10, 10, 10,
	})
	require.NoError(t, err)

	enc := NewEncoder(color.ModeMonochrome1, color.AlphaThreshold, 127)
	words := make([]Word, g.Len())
	enc.EncodeRange(words, g, 0, g.Len())

	vec, err := Assemble(words, 1, 2, SpaceSeparated, NewFormatter(Binary, enc.Width(), false))
	require.NoError(t, err)
	assert.Equal(t, "11,\n0;\n", vec)
}

func TestAssembleCommaStyle(t *testing.T) {
	f := NewFormatter(Decimal, 8, false)
	vec, err := Assemble([]Word{1, 2, 3, 4, 5, 6}, 3, 2, CommaSeparated, f)
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,\n4,5,6;\n", vec)

	vec, err = Assemble([]Word{1, 2, 3, 4, 5, 6}, 3, 2, SpaceSeparated, f)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3,\n4 5 6;\n", vec)
}

func TestAssembleSingleWord(t *testing.T) {
	vec, err := Assemble([]Word{7}, 1, 1, CommaSeparated, NewFormatter(Decimal, 8, false))
	require.NoError(t, err)
	assert.Equal(t, "7;\n", vec)
}

func TestAssembleRejectsCountMismatch(t *testing.T) {
	f := NewFormatter(Decimal, 8, false)
	_, err := Assemble([]Word{1, 2, 3}, 2, 2, SpaceSeparated, f)
	assert.Error(t, err)
	_, err = Assemble(nil, 0, 0, SpaceSeparated, f)
	assert.Error(t, err)
}

func TestVectorBuilderFull(t *testing.T) {
	b := NewVectorBuilder(1, 1, SpaceSeparated, NewFormatter(Decimal, 8, false))
	require.NoError(t, b.Append(1))
	assert.True(t, b.Complete())
	assert.ErrorIs(t, b.Append(2), ErrVectorFull)
	assert.Equal(t, 1, b.Len())
}

// In a W x H image there are W-1 in-row separators per row, H-1 row
// breaks and exactly one terminator at the very end.
func TestSeparatorLaw(t *testing.T) {
	dims := [][2]int{{1, 1}, {1, 5}, {5, 1}, {4, 3}, {7, 9}}
	for _, style := range []Style{SpaceSeparated, CommaSeparated} {
		for _, d := range dims {
			w, h := d[0], d[1]
			words := make([]Word, w*h)
			for i := range words {
				words[i] = Word(i % 256)
			}
			vec, err := Assemble(words, w, h, style, NewFormatter(Hexadecimal, 8, false))
			require.NoError(t, err)

			assert.Equal(t, 1, strings.Count(vec, ";"), "%dx%d", w, h)
			assert.True(t, strings.HasSuffix(vec, ";\n"))
			assert.Equal(t, h-1, strings.Count(vec, ",\n"), "%dx%d", w, h)

			rows := strings.Split(strings.TrimSuffix(vec, ";\n"), ",\n")
			require.Len(t, rows, h)
			entries := 0
			for _, row := range rows {
				cols := strings.Split(row, style.Separator())
				assert.Len(t, cols, w)
				entries += len(cols)
			}
			assert.Equal(t, w*h, entries)
		}
	}
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("comma")
	require.NoError(t, err)
	assert.Equal(t, CommaSeparated, s)
	s, err = ParseStyle("Space")
	require.NoError(t, err)
	assert.Equal(t, SpaceSeparated, s)
	_, err = ParseStyle("tab")
	assert.Error(t, err)
}
