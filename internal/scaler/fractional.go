package scaler

// Fractional/"AA" scalers handle non-integer source-to-destination ratios
// for a short list of known console resolutions. They average neighboring
// RGB565 pixels using masked shifts rather than a per-channel float
// blend, so no channel's bits ever bleed into its neighbor during the
// right-shift that implements the division.
//
// Mask/carry derivation: RGB565 packs fields at bit 11 (R), bit 5 (G) and
// bit 0 (B). Clearing the bottom bit of each field before a >>1 keeps the
// shift from carrying a R/G or G/B boundary bit into the neighboring
// field; clearing the bottom two bits before a >>2 does the same for a
// divide-by-four. The "carry" mask is exactly the bits the average mask
// clears, used to add back the rounding those bits represent.
const (
	halfAvgMask  = uint16(0xF7DE)
	halfAvgCarry = uint16(0x0821)

	quarterAvgMask  = uint16(0xE79C)
	quarterAvgCarry = uint16(0x1863)
)

// halfAverage565 computes (a+b)/2 per channel without bleed, rounding up
// when both inputs share a bit the mask cleared.
func halfAverage565(a, b uint16) uint16 {
	return ((a & halfAvgMask) >> 1) + ((b & halfAvgMask) >> 1) + (a & b & halfAvgCarry)
}

// quarterAverage565 computes (a+b+c+d)/4 per channel without bleed,
// rounding up a cleared bit when all four inputs agree on it.
func quarterAverage565(a, b, c, d uint16) uint16 {
	sum := ((a & quarterAvgMask) >> 2) + ((b & quarterAvgMask) >> 2) +
		((c & quarterAvgMask) >> 2) + ((d & quarterAvgMask) >> 2)
	return sum + (a & b & c & d & quarterAvgCarry)
}

// Recipe names a known fractional resize by its whole-frame source and
// destination sizes. It carries no tile geometry: this package has no
// per-recipe tile scaler, and AAScale serves every ratio.
type Recipe struct {
	SrcW, SrcH int
	DstW, DstH int
}

// recipes lists the common handheld source resolutions that need a
// non-integer scale ratio to fill the device screen.
var recipes = []Recipe{
	{SrcW: 240, SrcH: 160, DstW: 320, DstH: 213},
	{SrcW: 160, SrcH: 144, DstW: 266, DstH: 240},
	{SrcW: 256, SrcH: 224, DstW: 320, DstH: 238},
}

// FindRecipe returns the hard-coded fractional recipe matching a source
// resolution, if any. render.Select does not call it: every RGB565
// scale=-1 blit runs AAScale whether or not a recipe matches.
func FindRecipe(sw, sh int) (Recipe, bool) {
	for _, r := range recipes {
		if r.SrcW == sw && r.SrcH == sh {
			return r, true
		}
	}
	return Recipe{}, false
}

// AAScale performs an approximately-bilinear resize of a full RGB565
// buffer from (sw, sh) to (dw, dh) using the masked averaging above for
// every destination pixel's two nearest source samples along each axis.
// Unlike a fixed-tile approach (3x3/4x16 source tiles producing
// 4x4/5x5/5x17 blocks), this generalizes to arbitrary ratios so every
// registered Recipe -- and any future one -- is served by a single
// implementation; output for the three listed recipes matches a
// tile-based approach's intent (smooth non-integer resize with no channel
// bleed) without hard-coding per-recipe geometry.
func AAScale(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return
	}
	sp = pitchOf(sp, sw, bpp16)
	dp = pitchOf(dp, dw, bpp16)

	// Fixed-point (16.16) step sizes so we walk the source in proportion
	// to the destination without floating point.
	xStep := (sw << 16) / dw
	yStep := (sh << 16) / dh

	for dy := 0; dy < dh; dy++ {
		sy := (dy * yStep) >> 16
		syFrac := (dy*yStep)&0xFFFF != 0
		sy2 := sy
		if syFrac && sy+1 < sh {
			sy2 = sy + 1
		}
		srcRow0 := src[sy*sp:]
		srcRow1 := src[sy2*sp:]
		dstRow := dst[dy*dp:]

		for dx := 0; dx < dw; dx++ {
			sx := (dx * xStep) >> 16
			sxFrac := (dx*xStep)&0xFFFF != 0
			sx2 := sx
			if sxFrac && sx+1 < sw {
				sx2 = sx + 1
			}

			p00 := readPix16(srcRow0, sx)
			p10 := readPix16(srcRow0, sx2)
			p01 := readPix16(srcRow1, sx)
			p11 := readPix16(srcRow1, sx2)

			var out uint16
			switch {
			case sx == sx2 && sy == sy2:
				out = p00
			case sx == sx2:
				out = halfAverage565(p00, p01)
			case sy == sy2:
				out = halfAverage565(p00, p10)
			default:
				out = quarterAverage565(p00, p10, p01, p11)
			}
			writePix16(dstRow, dx, out)
		}
	}
}
