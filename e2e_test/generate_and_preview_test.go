//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/deck"
	"github.com/jsphweid/stavecards/file"
	"github.com/jsphweid/stavecards/model"
	"github.com/jsphweid/stavecards/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workDir string

func writeStave(path string) {
	img := image.NewNRGBA(image.Rect(0, 0, 800, 400))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i := 0; i < 5; i++ {
		top := 120 + i*40
		draw.Draw(img, image.Rect(0, top, 800, top+4), image.NewUniform(color.Black), image.Point{}, draw.Src)
	}
	f, err := os.Create(path)
	if err != nil {
		panic(err.Error())
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err.Error())
	}
}

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "flashcards-e2e")
	if err != nil {
		panic(err.Error())
	}
	workDir = dir
	writeStave(filepath.Join(dir, constants.TrebleBackground))
	writeStave(filepath.Join(dir, constants.BassBackground))

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func TestGenerateE2E(t *testing.T) {
	var out bytes.Buffer
	paths, err := deck.Generate(&out, workDir)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{filepath.Join(workDir, "flashcards_sheet_1.png")}, paths)
	assert.Contains(out.String(), "Total flashcards: 26")
	assert.Contains(out.String(), "Saved: flashcards_sheet_1.png")

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	dpi, err := file.ReadDPI(f)
	require.NoError(t, err)
	assert.Equal(300, dpi)

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(image.Pt(3507, 2480), img.Bounds().Size())
}

func TestPreviewE2E(t *testing.T) {
	d, err := deck.Load(workDir)
	require.NoError(t, err)
	router := preview.NewRouter(d)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert := assert.New(t)
	assert.Equal(200, w.Code)
	var catalog model.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	assert.Equal("A", catalog.Treble[12].Name)
	assert.Equal("C", catalog.Bass[12].Name)

	req = httptest.NewRequest(http.MethodGet, "/cards/bass/6.png", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(200, w.Code)
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(image.Pt(814, 318), img.Bounds().Size())
}
