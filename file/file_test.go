package file

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePNGAddsResolution(t *testing.T) {
	img := imaging.New(30, 20, color.White)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img, 300))

	dpi, err := ReadDPI(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 300, dpi)

	// still a valid png with the same pixels
	decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), decoded.Bounds())
	r, g, b, _ := decoded.At(3, 3).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestPhysChunkPixelsPerMetre(t *testing.T) {
	chunk := physChunk(300)

	assert := assert.New(t)
	assert.Len(chunk, 4+4+9+4)
	assert.Equal("pHYs", string(chunk[4:8]))
	// 300 / 0.0254 = 11811.02
	assert.Equal([]byte{0, 0, 0x2e, 0x23}, chunk[8:12])
	assert.Equal([]byte{0, 0, 0x2e, 0x23}, chunk[12:16])
	assert.Equal(byte(1), chunk[16])
}

func TestReadDPIWithoutPhys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(4, 4, color.Black)))

	dpi, err := ReadDPI(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 0, dpi)
}

func TestReadDPIRejectsNonPNG(t *testing.T) {
	_, err := ReadDPI(bytes.NewReader([]byte("GIF89a......")))
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, SavePNG(path, imaging.New(10, 10, color.White), 300))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	dpi, err := ReadDPI(f)
	require.NoError(t, err)
	assert.Equal(t, 300, dpi)
}

func TestSavePNGBadDirectory(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "sheet.png"), imaging.New(1, 1, color.White), 300)
	assert.Error(t, err)
}
