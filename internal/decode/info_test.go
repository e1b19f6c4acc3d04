package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info, err := GetInfo(encodePNG(t, testImage()))
	require.NoError(t, err)

	assert.Equal(t, 3, info.Width)
	assert.Equal(t, 2, info.Height)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, "NRGBA", info.ColorModel)
}

func TestGetInfoErrors(t *testing.T) {
	_, err := GetInfo(nil)
	assert.ErrorIs(t, err, ErrEmptyData)

	_, err = GetInfo([]byte{0x00, 0x01, 0x02})
	assert.Error(t, err)
}
