package card

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontUsesFirstUsablePath(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.ttf")
	good := filepath.Join(dir, "good.ttf")
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0644))
	require.NoError(t, os.WriteFile(good, goregular.TTF, 0644))

	src := LoadFont([]string{filepath.Join(dir, "missing.ttf"), broken, good}, 60)

	assert := assert.New(t)
	assert.Equal(good, src.Name)
	assert.False(src.Fallback)
	assert.NotNil(src.Face)
}

func TestLoadFontFallsBackToBuiltIn(t *testing.T) {
	src := LoadFont([]string{filepath.Join(t.TempDir(), "missing.ttf")}, 60)

	assert := assert.New(t)
	assert.Equal(GoRegular, src.Name)
	assert.True(src.Fallback)
	assert.NotNil(src.Face)
}

func TestLoadFontWithNoPaths(t *testing.T) {
	src := LoadFont(nil, 60)
	assert.Equal(t, GoRegular, src.Name)
	assert.True(t, src.Fallback)
}

// collection wraps one TrueType font in a single-font .ttc. Table offsets in
// a collection count from the start of the file, so they shift by the
// collection header size.
func collection(ttf []byte) []byte {
	const header = 16
	res := make([]byte, 0, header+len(ttf))
	res = append(res, "ttcf"...)
	res = binary.BigEndian.AppendUint32(res, 0x00010000)
	res = binary.BigEndian.AppendUint32(res, 1)
	res = binary.BigEndian.AppendUint32(res, header)
	res = append(res, ttf...)

	font := res[header:]
	numTables := int(binary.BigEndian.Uint16(font[4:]))
	for i := 0; i < numTables; i++ {
		entry := font[12+16*i:]
		offset := binary.BigEndian.Uint32(entry[8:])
		binary.BigEndian.PutUint32(entry[8:], offset+header)
	}
	return res
}

func TestLoadFontReadsCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Helvetica.ttc")
	require.NoError(t, os.WriteFile(path, collection(goregular.TTF), 0644))

	src := LoadFont([]string{path}, 60)

	assert := assert.New(t)
	assert.Equal(path, src.Name)
	assert.False(src.Fallback)
	adv, ok := src.Face.GlyphAdvance('C')
	assert.True(ok)
	assert.Greater(adv.Ceil(), 0)
}
