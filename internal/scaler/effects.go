package scaler

import "encoding/binary"

// RGB565 channel extraction, matching the original cR/cG/cB macros.
func c565R(p uint16) int { return int(p&0xF800) >> 11 }
func c565G(p uint16) int { return int(p&0x07E0) >> 5 }
func c565B(p uint16) int { return int(p & 0x001F) }

func pack565(r, g, b int) uint16 {
	return uint16(r&0x1F)<<11 | uint16(g&0x3F)<<5 | uint16(b&0x1F)
}

// weight23 blends 2/5 of a with 3/5 of b (original Weight2_3 macro).
func weight23(a, b uint16) uint16 {
	r := ((c565R(a) << 1) + c565R(b)*3) / 5
	g := ((c565G(a) << 1) + c565G(b)*3) / 5
	bl := ((c565B(a) << 1) + c565B(b)*3) / 5
	return pack565(r, g, bl)
}

// weight31 blends 3/4 of a with 1/4 of b (original Weight3_1 macro,
// optimized with a shift since the denominator is a power of two).
func weight31(a, b uint16) uint16 {
	r := (c565R(b) + c565R(a)*3) >> 2
	g := (c565G(b) + c565G(a)*3) >> 2
	bl := (c565B(b) + c565B(a)*3) >> 2
	return pack565(r, g, bl)
}

// weight32 blends 3/5 of a with 2/5 of b (original Weight3_2 macro).
func weight32(a, b uint16) uint16 {
	r := ((c565R(b) << 1) + c565R(a)*3) / 5
	g := ((c565G(b) << 1) + c565G(a)*3) / 5
	bl := ((c565B(b) << 1) + c565B(a)*3) / 5
	return pack565(r, g, bl)
}

const black565 = uint16(0x0000)

func readPix16(buf []byte, i int) uint16 { return binary.LittleEndian.Uint16(buf[i*2:]) }
func writePix16(buf []byte, i int, v uint16) {
	binary.LittleEndian.PutUint16(buf[i*2:], v)
}

// Scale1xLine is the 1x scanline effect: even source rows copy straight
// through, odd rows blend 3:1 toward black, per scale1x_line.
func Scale1xLine(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
	if sw == 0 || sh == 0 {
		return
	}
	sp = pitchOf(sp, sw, bpp16)
	dp = pitchOf(dp, sw, bpp16)
	for y := 0; y+1 < sh; y += 2 {
		evenSrc := src[y*sp : y*sp+sw*bpp16]
		copy(dst[y*dp:y*dp+sw*bpp16], evenSrc)
		oddSrc := src[(y+1)*sp:]
		oddDst := dst[(y+1)*dp:]
		for x := 0; x < sw; x++ {
			s := readPix16(oddSrc, x)
			writePix16(oddDst, x, weight31(s, black565))
		}
	}
}

// Scale2xLine doubles every row horizontally and vertically, alternating
// a full-brightness row with a 3:2-blended row for a scanline look.
func Scale2xLine(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
	scaleLineEffect(src, dst, sw, sh, sp, dp, 2)
}

// Scale3xLine triples rows: a blended top row, then two full-brightness
// rows, matching scale3x_line's row1/row2/row3 layout.
func Scale3xLine(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
	scaleLineEffect(src, dst, sw, sh, sp, dp, 3)
}

// Scale4xLine quadruples rows, alternating full/blended/full/blended.
func Scale4xLine(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
	scaleLineEffect(src, dst, sw, sh, sp, dp, 4)
}

// scaleLineEffect implements the shared shape of scale{2,3,4}x_line: each
// source pixel is horizontally replicated n times and vertically
// replicated n times, with alternating rows blended toward black to
// suggest scanline falloff. n==2 blends every other row; n==3 blends only
// the first of three rows; n==4 alternates full/blend/full/blend, exactly
// mirroring the per-function row layout in the original C source.
func scaleLineEffect(src, dst []byte, sw, sh, sp, dp, n int) {
	if sw == 0 || sh == 0 {
		return
	}
	sp = pitchOf(sp, sw, bpp16)
	dw2 := sw * n
	dp = pitchOf(dp, dw2, bpp16)

	for y := 0; y < sh; y++ {
		srcRow := src[y*sp:]
		dstBase := y * n * dp
		for x := 0; x < sw; x++ {
			c1 := readPix16(srcRow, x)
			c2 := weight32(c1, black565)
			for row := 0; row < n; row++ {
				v := c1
				switch n {
				case 2:
					if row == 1 {
						v = c2
					}
				case 3:
					if row == 0 {
						v = c2
					}
				case 4:
					if row%2 == 1 {
						v = c2
					}
				}
				rowBuf := dst[dstBase+row*dp:]
				for i := 0; i < n; i++ {
					writePix16(rowBuf, x*n+i, v)
				}
			}
		}
	}
}

// Scale2xGrid adds a shadow-mask style vertical/horizontal modulation:
// row1 is fully blended, row2's first column stays blended and the second
// stays bright, per scale2x_grid.
func Scale2xGrid(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
	if sw == 0 || sh == 0 {
		return
	}
	sp = pitchOf(sp, sw, bpp16)
	dw2 := sw * 2
	dp = pitchOf(dp, dw2, bpp16)

	for y := 0; y < sh; y++ {
		srcRow := src[y*sp:]
		row0 := dst[y*2*dp:]
		row1 := dst[y*2*dp+dp:]
		for x := 0; x < sw; x++ {
			c1 := readPix16(srcRow, x)
			c2 := weight31(c1, black565)
			writePix16(row0, x*2, c2)
			writePix16(row0, x*2+1, c2)
			writePix16(row1, x*2, c2)
			writePix16(row1, x*2+1, c1)
		}
	}
}

// Scale3xGrid is the 3x shadow-mask variant, per scale3x_grid.
func Scale3xGrid(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
	if sw == 0 || sh == 0 {
		return
	}
	sp = pitchOf(sp, sw, bpp16)
	dw2 := sw * 3
	dp = pitchOf(dp, dw2, bpp16)

	for y := 0; y < sh; y++ {
		srcRow := src[y*sp:]
		row0 := dst[y*3*dp:]
		row1 := dst[y*3*dp+dp:]
		row2 := dst[y*3*dp+2*dp:]
		for x := 0; x < sw; x++ {
			c1 := readPix16(srcRow, x)
			c2 := weight32(c1, black565)
			c3 := weight23(c1, black565)

			writePix16(row0, x*3, c2)
			writePix16(row0, x*3+1, c1)
			writePix16(row0, x*3+2, c1)

			writePix16(row1, x*3, c2)
			writePix16(row1, x*3+1, c1)
			writePix16(row1, x*3+2, c1)

			writePix16(row2, x*3, c3)
			writePix16(row2, x*3+1, c2)
			writePix16(row2, x*3+2, c2)
		}
	}
}
