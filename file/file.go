package file

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"io"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const MetersPerInch = 0.0254

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// 8 byte signature, then IHDR: 4 length + 4 type + 13 data + 4 crc
const ihdrEnd = 8 + 4 + 4 + 13 + 4

func physChunk(dpi int) []byte {
	ppm := uint32(math.Round(float64(dpi) / MetersPerInch))
	data := make([]byte, 9)
	binary.BigEndian.PutUint32(data[0:4], ppm)
	binary.BigEndian.PutUint32(data[4:8], ppm)
	data[8] = 1 // unit is the metre

	chunk := make([]byte, 0, 4+4+len(data)+4)
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(data)))
	chunk = append(chunk, "pHYs"...)
	chunk = append(chunk, data...)
	crc := crc32.NewIEEE()
	crc.Write(chunk[4:])
	return binary.BigEndian.AppendUint32(chunk, crc.Sum32())
}

// WritePNG encodes img and tags it with dpi so it prints at the intended
// physical size.
func WritePNG(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return errors.Wrap(err, "could not encode png")
	}
	encoded := buf.Bytes()
	if len(encoded) < ihdrEnd || !bytes.Equal(encoded[:8], pngSignature) {
		return errors.New("encoder did not produce a png")
	}

	// pHYs has to come before the first IDAT; straight after IHDR is safe
	for _, part := range [][]byte{encoded[:ihdrEnd], physChunk(dpi), encoded[ihdrEnd:]} {
		if _, err := w.Write(part); err != nil {
			return errors.Wrap(err, "could not write png")
		}
	}
	return nil
}

func SavePNG(path string, img image.Image, dpi int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", path)
	}
	if err := WritePNG(f, img, dpi); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not save %v", path)
	}
	return errors.Wrapf(f.Close(), "could not close %v", path)
}

// ReadDPI returns the horizontal resolution stored in a png's pHYs chunk,
// or 0 when there is none or the unit is unknown.
func ReadDPI(r io.Reader) (int, error) {
	sig := make([]byte, 8)
	if _, err := io.ReadFull(r, sig); err != nil {
		return 0, errors.Wrap(err, "could not read png signature")
	}
	if !bytes.Equal(sig, pngSignature) {
		return 0, errors.New("not a png")
	}

	header := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, header); err != nil {
			return 0, errors.Wrap(err, "could not read chunk header")
		}
		length := binary.BigEndian.Uint32(header[:4])
		kind := string(header[4:8])
		switch kind {
		case "pHYs":
			data := make([]byte, length)
			if _, err := io.ReadFull(r, data); err != nil {
				return 0, errors.Wrap(err, "could not read pHYs")
			}
			if length < 9 || data[8] != 1 {
				return 0, nil
			}
			ppm := binary.BigEndian.Uint32(data[:4])
			return int(math.Round(float64(ppm) * MetersPerInch)), nil
		case "IDAT", "IEND":
			return 0, nil
		}
		// skip data and crc
		if _, err := io.CopyN(io.Discard, r, int64(length)+4); err != nil {
			return 0, errors.Wrapf(err, "could not skip %v chunk", kind)
		}
	}
}
