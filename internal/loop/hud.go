package loop

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/user-none/minarch/internal/render"
	"github.com/user-none/minarch/internal/scaler"
)

// HUD renders the debug overlay directly into the source pixel buffer
// before scaling, as a tiny bitmap font drawn straight into the source
// image. No example repo in
// the retrieved pack carries a bitmap-font library of its own; the
// ebiten-adjacent x/image toolkit ships basicfont.Face7x13, so the HUD
// is built on that rather than a hand-rolled glyph table.
type HUD struct {
	Enabled bool
}

// Draw composites "FPS:%.0f CPU:%.0f%%" into the top-left corner of
// pixels, which is w x h pixels at the given pitch and format. Pixels
// exactly matching the panel's black background are left untouched so
// the overlay doesn't paint a solid rectangle over the game image.
func (h *HUD) Draw(pixels []byte, w, h, pitch int, format render.PixelFormat, stats *Stats) {
	if !h.Enabled || w <= 0 || h <= 0 {
		return
	}
	text := fmt.Sprintf("FPS:%.0f CPU:%.0f%%", stats.FPS(), stats.CPUPercent())

	panel := image.NewRGBA(image.Rect(0, 0, 7*len(text)+2, 13))
	draw.Draw(panel, panel.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  panel,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(1, 10),
	}
	d.DrawString(text)

	ow, oh := panel.Bounds().Dx(), panel.Bounds().Dy()
	if ow > w {
		ow = w
	}
	if oh > h {
		oh = h
	}
	bpp := format.BytesPerPixel()
	for y := 0; y < oh; y++ {
		rowOff := y * pitch
		for x := 0; x < ow; x++ {
			c := panel.RGBAAt(x, y)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				continue
			}
			off := rowOff + x*bpp
			if off+bpp > len(pixels) {
				continue
			}
			writeHUDPixel(pixels[off:], format, c)
		}
	}
}

func writeHUDPixel(dst []byte, format render.PixelFormat, c color.RGBA) {
	switch format {
	case render.RGB565:
		v := scaler.RGBA8888ToRGB565(c.R, c.G, c.B)
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	case render.RGBA8888:
		// Native word order is libretro's XRGB8888 (0xAARRGGBB), which in
		// little-endian memory is B,G,R,A -- see internal/platform's
		// convertToRGBA for the same convention on the presentation side.
		dst[0] = c.B
		dst[1] = c.G
		dst[2] = c.R
		dst[3] = 0xFF
	}
}
