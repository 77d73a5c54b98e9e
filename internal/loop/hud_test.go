package loop

import (
	"image/color"
	"testing"

	"github.com/user-none/minarch/internal/render"
)

func TestWriteHUDPixelRGBA8888UsesNativeByteOrder(t *testing.T) {
	dst := make([]byte, 4)
	writeHUDPixel(dst, render.RGBA8888, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
	if dst[0] != 0x30 || dst[1] != 0x20 || dst[2] != 0x10 || dst[3] != 0xFF {
		t.Fatalf("expected B,G,R,A = 30,20,10,ff; got % x", dst)
	}
}

func TestWriteHUDPixelRGB565PureRed(t *testing.T) {
	dst := make([]byte, 2)
	writeHUDPixel(dst, render.RGB565, color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF})
	v := uint16(dst[0]) | uint16(dst[1])<<8
	if v != 0xF800 {
		t.Fatalf("expected pure red RGB565 0xf800, got %#x", v)
	}
}

func TestHUDDrawWritesGlyphPixels(t *testing.T) {
	h := &HUD{Enabled: true}
	w, hgt, pitch := 64, 16, 64*4
	pixels := make([]byte, pitch*hgt)
	for i := range pixels {
		pixels[i] = 0xAB
	}
	stats := NewStats()
	h.Draw(pixels, w, hgt, pitch, render.RGBA8888, stats)

	allUnchanged := true
	for _, b := range pixels {
		if b != 0xAB {
			allUnchanged = false
			break
		}
	}
	if allUnchanged {
		t.Fatal("expected HUD.Draw to write at least one non-black glyph pixel")
	}
}

func TestHUDDrawDisabledIsNoop(t *testing.T) {
	h := &HUD{Enabled: false}
	pixels := []byte{1, 2, 3, 4}
	h.Draw(pixels, 1, 1, 4, render.RGBA8888, NewStats())
	if pixels[0] != 1 || pixels[1] != 2 || pixels[2] != 3 || pixels[3] != 4 {
		t.Fatal("expected disabled HUD to leave pixels untouched")
	}
}
