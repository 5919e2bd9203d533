// utils/images_test.go
package utils

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 20, G: 20, B: 120, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestDecodeBase64Image(t *testing.T) {
	raw := pngBytes(t, 4, 4)
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("accepted prefixes", func(t *testing.T) {
		for _, prefix := range []string{"data:image/png;base64", "data:image/jpg;base64", "data:image/jpeg;base64"} {
			got, err := DecodeBase64Image(prefix + "," + encoded)
			require.NoError(t, err, prefix)
			assert.Equal(t, raw, got)
		}
	})

	t.Run("rejected inputs", func(t *testing.T) {
		for _, src := range []string{
			"",
			encoded,
			"data:image/gif;base64," + encoded,
			"data:image/png;base64,@@not-base64@@",
			"data:image/png;base64,",
		} {
			_, err := DecodeBase64Image(src)
			assert.Error(t, err, src)
		}
	})
}

func TestCreateImageThumbnail(t *testing.T) {
	t.Run("landscape fits inside bounding box", func(t *testing.T) {
		thumb, err := CreateImageThumbnail(pngBytes(t, 600, 300), 300, 300)
		require.NoError(t, err)

		img, err := imaging.Decode(bytes.NewReader(thumb))
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 150, img.Bounds().Dy())
	})

	t.Run("portrait fits inside bounding box", func(t *testing.T) {
		thumb, err := CreateImageThumbnail(pngBytes(t, 200, 800), 300, 300)
		require.NoError(t, err)

		img, err := imaging.Decode(bytes.NewReader(thumb))
		require.NoError(t, err)
		assert.Equal(t, 75, img.Bounds().Dx())
		assert.Equal(t, 300, img.Bounds().Dy())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := CreateImageThumbnail(nil, 300, 300)
		assert.Error(t, err)

		_, err = CreateImageThumbnail([]byte("not an image"), 300, 300)
		assert.Error(t, err)
	})
}

func TestParseFileNameStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"blue jeans.png", "blue jeans"},
		{"outfit.final.png", "outfit.final"},
		{"noext", "noext"},
		{"dir/nested/shirt.jpeg", "shirt"},
		{".png", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFileNameStem(tt.in), tt.in)
	}
}
