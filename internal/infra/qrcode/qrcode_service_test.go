package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestQRCodeService_GenerateCardQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	image, err := service.GenerateCardQR("eyJjYXJkIjoidGVzdCJ9.c2lnbmF0dXJl.1700000000")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(image, pngMagic))

	decoded, err := png.Decode(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, 256, decoded.Bounds().Dx())
	assert.Equal(t, 256, decoded.Bounds().Dy())
}

func TestQRCodeService_EmptyToken(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateCardQR("")

	require.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	image, err := service.GenerateCardQR("fallback-level-token")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(image, pngMagic))
}
