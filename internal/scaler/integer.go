package scaler

// bpp16 and bpp32 are the byte widths of the two supported pixel formats.
const (
	bpp16 = 2
	bpp32 = 4
)

// scaleRow copies pixel src[x] (a bpp-byte block) into xmul consecutive
// bpp-byte blocks of dst, for every source column. This is the scalar
// equivalent of the original C scaler's packed-word duplication trick
// (scale2x_c16 reads two 16-bit pixels as one 32-bit word and duplicates
// each half in place) -- operating on whole pixels instead of packed pairs
// produces byte-identical output and is what the NEON fallback path in
// this package also reduces to once alignment fails.
func scaleRow(src, dst []byte, sw, xmul, bpp int) {
	for x := 0; x < sw; x++ {
		pix := src[x*bpp : x*bpp+bpp]
		base := x * xmul * bpp
		for i := 0; i < xmul; i++ {
			copy(dst[base+i*bpp:base+i*bpp+bpp], pix)
		}
	}
}

// scaleNxBlock is the shared body for every integer scaleXxY_* function:
// compute the horizontally-scaled row once per source row, then replicate
// it ymul times into the destination. When xmul==1 the horizontal pass
// degenerates to a straight copy.
func scaleNxBlock(src, dst []byte, sw, sh, sp, dw, dh, dp, xmul, ymul, bpp int) {
	if sw == 0 || sh == 0 || xmul == 0 || ymul == 0 {
		return
	}
	sp = pitchOf(sp, sw, bpp)
	dw2 := sw * xmul
	dp = pitchOf(dp, dw2, bpp)

	// Fast path: 1x1 with contiguous rows on both sides collapses to one
	// bulk copy, mirroring scale1x_c16/c32's single memcpy special case.
	if xmul == 1 && ymul == 1 {
		swl := sw * bpp
		if sp == swl && dp == swl {
			copy(dst[:swl*sh], src[:swl*sh])
			return
		}
	}

	rowLen := dw2 * bpp
	for y := 0; y < sh; y++ {
		srcRow := src[y*sp : y*sp+sw*bpp]
		dstBase := y * ymul * dp
		firstRow := dst[dstBase : dstBase+rowLen]
		if xmul == 1 {
			copy(firstRow, srcRow)
		} else {
			scaleRow(srcRow, firstRow, sw, xmul, bpp)
		}
		for r := 1; r < ymul; r++ {
			copy(dst[dstBase+r*dp:dstBase+r*dp+rowLen], firstRow)
		}
	}
}

// New16 returns the integer nearest-neighbor scaler for the given
// (xmul, ymul) pair operating on RGB565 pixels. xmul/ymul must each be in
// 1..6; values outside that range, or combinations the original table
// leaves undefined (see Dispatch16), behave as a no-op when routed through
// Dispatch16/Dispatch32 -- New16/New32 themselves will happily run any
// positive factor, since the jagged-table restriction is a property of the
// *dispatcher*, not of the underlying scaling math.
func New16(xmul, ymul int) Func {
	return func(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
		scaleNxBlock(src, dst, sw, sh, sp, dw, dh, dp, xmul, ymul, bpp16)
	}
}

// New32 is New16 for RGBA8888 pixels.
func New32(xmul, ymul int) Func {
	return func(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
		scaleNxBlock(src, dst, sw, sh, sp, dw, dh, dp, xmul, ymul, bpp32)
	}
}
