package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tonematch/internal/model"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 7), B: 0xa4, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// pngHeader returns a PNG that declares the given dimensions but carries no
// pixel data.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 0 // grayscale

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := encodePNG(t, 40, 30)

	img, err := Decode(data, "face.png", model.SourceFile)
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 40, img.Width)
	assert.Equal(t, 30, img.Height)
	assert.Equal(t, model.SourceFile, img.Source)
	assert.Equal(t, "face.png", img.Name)
	assert.Equal(t, data, img.Data)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "garbage", data: []byte("definitely not an image")},
		{name: "truncated png", data: encodePNG(t, 40, 30)[:100]},
		{name: "header only", data: pngHeader(64, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data, "x", model.SourceFile)
			assert.Error(t, err)
		})
	}
}

func TestToJPEG_Resizes(t *testing.T) {
	img, err := Decode(encodePNG(t, 200, 100), "wide.png", model.SourceFile)
	require.NoError(t, err)

	out, err := ToJPEG(img, 50)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 50, decoded.Bounds().Dx())
	assert.Equal(t, 25, decoded.Bounds().Dy())
}

func TestToJPEG_KeepsSmallImages(t *testing.T) {
	img, err := Decode(encodePNG(t, 20, 40), "tall.png", model.SourceFile)
	require.NoError(t, err)

	out, err := ToJPEG(img, 800)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, decoded.Bounds().Dx())
	assert.Equal(t, 40, decoded.Bounds().Dy())
}

func TestHasSupportedExtension(t *testing.T) {
	assert.True(t, HasSupportedExtension("me.JPG"))
	assert.True(t, HasSupportedExtension("/tmp/me.webp"))
	assert.False(t, HasSupportedExtension("notes.txt"))
	assert.False(t, HasSupportedExtension("noext"))
}

func TestDecode_RejectsHugeDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
	}{
		{name: "square", w: 16000, h: 16000},
		{name: "wide", w: 1 << 20, h: 64},
		{name: "just over", w: 8001, h: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(pngHeader(tt.w, tt.h), "huge.png", model.SourceFile)
			assert.ErrorIs(t, err, ErrTooLarge)
		})
	}
}
