package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSize(t *testing.T) {
	assert.Equal(t, DefaultSize, ClampSize(0))
	assert.Equal(t, MinSize, ClampSize(10))
	assert.Equal(t, 300, ClampSize(300))
	assert.Equal(t, MaxSize, ClampSize(5000))
}

func TestGenerateQRCode(t *testing.T) {
	data, err := NewQRService().GenerateQRCode("https://forms.gle/golden-triangle-tour-booking", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	_, err = NewQRService().GenerateQRCode("", 200)
	assert.Error(t, err)
}
